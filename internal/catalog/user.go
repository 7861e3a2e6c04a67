package catalog

import (
	"sort"
	"time"

	"labcatalog/internal/models"
)

// UserBookingsQuery selects which of a user's bookings to return.
type UserBookingsQuery struct {
	Status          string
	IncludePast     bool
	IncludeUpcoming bool
}

// UserBooking is a booking annotated with its temporal relation to "now".
// A booking in progress is neither past nor upcoming.
type UserBooking struct {
	models.Booking
	IsPast     bool `json:"is_past"`
	IsUpcoming bool `json:"is_upcoming"`
}

type UserStats struct {
	TotalBookings    int            `json:"total_bookings"`
	PastBookings     int            `json:"past_bookings"`
	UpcomingBookings int            `json:"upcoming_bookings"`
	ByStatus         map[string]int `json:"by_status"`
	TotalSpent       float64        `json:"total_spent"`
}

// UserBookings splits a user's bookings by temporal relation to now, applies
// the query's include flags and status filter, and derives per-user stats.
// Stats always cover the user's full history regardless of the filters.
func (c *Catalog) UserBookings(userID string, q UserBookingsQuery, now time.Time) ([]UserBooking, UserStats) {
	stats := UserStats{ByStatus: map[string]int{}}

	var out []UserBooking
	for _, b := range c.bookings {
		if b.User.ID != userID {
			continue
		}

		past := isPast(b, now)
		upcoming := isUpcoming(b, now)

		stats.TotalBookings++
		stats.ByStatus[string(b.Status)]++
		if past {
			stats.PastBookings++
		}
		if upcoming {
			stats.UpcomingBookings++
		}
		if b.Pricing.PaymentStatus == models.PaymentPaid {
			stats.TotalSpent += b.Pricing.TotalAmount
		}

		if past && !q.IncludePast {
			continue
		}
		if upcoming && !q.IncludeUpcoming {
			continue
		}
		if q.Status != "" && string(b.Status) != q.Status {
			continue
		}

		out = append(out, UserBooking{Booking: b, IsPast: past, IsUpcoming: upcoming})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return bookingSortKey(out[i].Booking) > bookingSortKey(out[j].Booking)
	})

	return out, stats
}

func isPast(b models.Booking, now time.Time) bool {
	end, err := b.Schedule.EndAt()
	return err == nil && end.Before(now)
}

func isUpcoming(b models.Booking, now time.Time) bool {
	start, err := b.Schedule.StartAt()
	return err == nil && start.After(now)
}
