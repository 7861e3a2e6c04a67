package models

import (
	"fmt"
	"time"
)

type BookingStatus string

const (
	BookingRequested      BookingStatus = "requested"
	BookingPendingPayment BookingStatus = "pending_payment"
	BookingConfirmed      BookingStatus = "confirmed"
	BookingInProgress     BookingStatus = "in_progress"
	BookingCompleted      BookingStatus = "completed"
	BookingCancelled      BookingStatus = "cancelled"
	BookingRefunded       BookingStatus = "refunded"
)

const (
	PaymentPaid     = "paid"
	PaymentPending  = "pending"
	PaymentRefunded = "refunded"
)

type Booking struct {
	ID                 string             `json:"id"`
	BookingID          string             `json:"booking_id"`
	ExternalID         string             `json:"external_id,omitempty"`
	ReferenceCode      string             `json:"reference_code"`
	Lab                BookingLab         `json:"lab"`
	User               BookingUser        `json:"user"`
	Schedule           BookingSchedule    `json:"schedule"`
	Purpose            Purpose            `json:"purpose"`
	Participants       Participants       `json:"participants"`
	Pricing            BookingPricing     `json:"pricing"`
	Status             BookingStatus      `json:"status"`
	StatusHistory      []StatusChange     `json:"status_history"`
	CancellationPolicy CancellationPolicy `json:"cancellation_policy"`
}

type BookingLab struct {
	ID         string `json:"id"`
	ProviderID string `json:"provider_id,omitempty"`
	Name       string `json:"name"`
	Code       string `json:"code,omitempty"`
}

type BookingUser struct {
	ID       string `json:"id"`
	ClientID string `json:"client_id,omitempty"`
	Name     string `json:"name"`
	Email    string `json:"email,omitempty"`
	Company  string `json:"company,omitempty"`
}

// BookingSchedule pins a booking to a calendar date ("2006-01-02") and a
// same-day [StartTime, EndTime) interval in "HH:MM".
type BookingSchedule struct {
	Date          string  `json:"date"`
	StartTime     string  `json:"start_time"`
	EndTime       string  `json:"end_time"`
	DurationHours float64 `json:"duration_hours"`
	Timezone      string  `json:"timezone,omitempty"`
}

// StartAt resolves the booking start to a wall-clock instant.
func (s BookingSchedule) StartAt() (time.Time, error) {
	return parseDateTime(s.Date, s.StartTime)
}

// EndAt resolves the booking end to a wall-clock instant.
func (s BookingSchedule) EndAt() (time.Time, error) {
	return parseDateTime(s.Date, s.EndTime)
}

func parseDateTime(date, clock string) (time.Time, error) {
	t, err := time.Parse("2006-01-02 15:04", date+" "+clock)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid schedule %s %s: %w", date, clock, err)
	}
	return t, nil
}

type Purpose struct {
	Category    string `json:"category,omitempty"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

type Participants struct {
	Total       int `json:"total"`
	Instructors int `json:"instructors,omitempty"`
	Students    int `json:"students,omitempty"`
}

type BookingPricing struct {
	BaseRate      float64 `json:"base_rate"`
	Hours         float64 `json:"hours"`
	Subtotal      float64 `json:"subtotal"`
	Taxes         Taxes   `json:"taxes"`
	TotalAmount   float64 `json:"total_amount"`
	Currency      string  `json:"currency"`
	PaymentStatus string  `json:"payment_status"`
	PaymentMethod string  `json:"payment_method,omitempty"`
}

type Taxes struct {
	Percentage float64 `json:"percentage"`
	Amount     float64 `json:"amount"`
}

// StatusChange is one entry of the append-only booking history.
type StatusChange struct {
	Status    BookingStatus `json:"status"`
	Timestamp time.Time     `json:"timestamp"`
	Actor     string        `json:"actor,omitempty"`
	Notes     string        `json:"notes,omitempty"`
}

type CancellationPolicy struct {
	Allowed          bool      `json:"allowed"`
	Deadline         time.Time `json:"deadline"`
	RefundPercentage int       `json:"refund_percentage"`
}

// HasID reports whether id refers to this booking by any of its identifiers.
func (b *Booking) HasID(id string) bool {
	return b.ID == id || b.BookingID == id || (b.ExternalID != "" && b.ExternalID == id)
}

// ForLab reports whether the booking belongs to the lab identified by labID
// (primary or provider identifier).
func (b *Booking) ForLab(labID string) bool {
	return b.Lab.ID == labID || (b.Lab.ProviderID != "" && b.Lab.ProviderID == labID)
}
