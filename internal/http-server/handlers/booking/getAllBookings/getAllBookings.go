package getAllBookings

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/render"

	"labcatalog/internal/catalog"
	"labcatalog/internal/lib/api/response"
	"labcatalog/internal/models"
)

type LabRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Code string `json:"code,omitempty"`
}

type UserRef struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Company string `json:"company,omitempty"`
}

type ScheduleSummary struct {
	Date      string  `json:"date"`
	StartTime string  `json:"start_time"`
	EndTime   string  `json:"end_time"`
	Duration  float64 `json:"duration"`
}

type BookingSummary struct {
	ID            string               `json:"id"`
	BookingID     string               `json:"booking_id"`
	Reference     string               `json:"reference"`
	Lab           LabRef               `json:"lab"`
	User          UserRef              `json:"user"`
	Schedule      ScheduleSummary      `json:"schedule"`
	Status        models.BookingStatus `json:"status"`
	PaymentStatus string               `json:"payment_status"`
	TotalAmount   float64              `json:"total_amount"`
	Currency      string               `json:"currency"`
}

type FiltersApplied struct {
	UserID    string `json:"user_id,omitempty"`
	Status    string `json:"status,omitempty"`
	LabID     string `json:"lab_id,omitempty"`
	StartDate string `json:"start_date,omitempty"`
	EndDate   string `json:"end_date,omitempty"`
}

type BookingsResponse struct {
	response.Response
	Data       []BookingSummary   `json:"data"`
	Pagination catalog.Pagination `json:"pagination"`
	Filters    FiltersApplied     `json:"filters_applied"`
}

type BookingsFilterer interface {
	FilterBookings(f catalog.BookingFilter) []models.Booking
}

func New(log *slog.Logger, bookings BookingsFilterer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.getAllBookings.New"

		log = log.With(slog.String("op", op))

		q := r.URL.Query()

		filter := catalog.BookingFilter{
			UserID:    q.Get("userId"),
			Status:    q.Get("status"),
			LabID:     q.Get("labId"),
			StartDate: q.Get("start_date"),
			EndDate:   q.Get("end_date"),
		}

		page := intOrDefault(q.Get("page"), 1)
		limit := intOrDefault(q.Get("limit"), 10)

		filtered := bookings.FilterBookings(filter)

		summaries := make([]BookingSummary, 0, len(filtered))
		for _, b := range filtered {
			summaries = append(summaries, summarize(b))
		}

		pageItems, pagination := catalog.Paginate(summaries, page, limit)

		log.Info("bookings listed",
			slog.Int("matched", len(filtered)),
			slog.Int("returned", len(pageItems)),
		)

		render.JSON(w, r, BookingsResponse{
			Response:   response.OK(),
			Data:       pageItems,
			Pagination: pagination,
			Filters: FiltersApplied{
				UserID:    filter.UserID,
				Status:    filter.Status,
				LabID:     filter.LabID,
				StartDate: filter.StartDate,
				EndDate:   filter.EndDate,
			},
		})
	}
}

func summarize(b models.Booking) BookingSummary {
	return BookingSummary{
		ID:        b.ID,
		BookingID: b.BookingID,
		Reference: b.ReferenceCode,
		Lab:       LabRef{ID: b.Lab.ID, Name: b.Lab.Name, Code: b.Lab.Code},
		User:      UserRef{ID: b.User.ID, Name: b.User.Name, Company: b.User.Company},
		Schedule: ScheduleSummary{
			Date:      b.Schedule.Date,
			StartTime: b.Schedule.StartTime,
			EndTime:   b.Schedule.EndTime,
			Duration:  b.Schedule.DurationHours,
		},
		Status:        b.Status,
		PaymentStatus: b.Pricing.PaymentStatus,
		TotalAmount:   b.Pricing.TotalAmount,
		Currency:      b.Pricing.Currency,
	}
}

func intOrDefault(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}
