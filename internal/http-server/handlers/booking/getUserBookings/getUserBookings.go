package getUserBookings

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"labcatalog/internal/catalog"
	"labcatalog/internal/lib/api/response"
	"labcatalog/internal/models"
)

type LabRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type ScheduleSummary struct {
	Date      string  `json:"date"`
	StartTime string  `json:"start_time"`
	EndTime   string  `json:"end_time"`
	Duration  float64 `json:"duration"`
}

type UserBookingSummary struct {
	ID            string               `json:"id"`
	BookingID     string               `json:"booking_id"`
	Lab           LabRef               `json:"lab"`
	Schedule      ScheduleSummary      `json:"schedule"`
	Status        models.BookingStatus `json:"status"`
	PaymentStatus string               `json:"payment_status"`
	TotalAmount   float64              `json:"total_amount"`
	Currency      string               `json:"currency"`
	IsPast        bool                 `json:"is_past"`
	IsUpcoming    bool                 `json:"is_upcoming"`
}

type FiltersApplied struct {
	Status          string `json:"status,omitempty"`
	IncludePast     bool   `json:"include_past"`
	IncludeUpcoming bool   `json:"include_upcoming"`
}

type UserBookingsResponse struct {
	response.Response
	UserID     string               `json:"user_id"`
	Data       []UserBookingSummary `json:"data"`
	Statistics catalog.UserStats    `json:"statistics"`
	Filters    FiltersApplied       `json:"filters"`
}

type UserBookingsProvider interface {
	UserBookings(userID string, q catalog.UserBookingsQuery, now time.Time) ([]catalog.UserBooking, catalog.UserStats)
}

func New(log *slog.Logger, bookings UserBookingsProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.getUserBookings.New"

		log = log.With(slog.String("op", op))

		userID := chi.URLParam(r, "userId")
		if userID == "" {
			log.Error("user id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("user id is required"))
			return
		}

		log = log.With(slog.String("user_id", userID))

		query := catalog.UserBookingsQuery{
			Status:          r.URL.Query().Get("status"),
			IncludePast:     boolOrDefault(r.URL.Query().Get("include_past"), true),
			IncludeUpcoming: boolOrDefault(r.URL.Query().Get("include_upcoming"), true),
		}

		list, stats := bookings.UserBookings(userID, query, time.Now())

		summaries := make([]UserBookingSummary, 0, len(list))
		for _, ub := range list {
			summaries = append(summaries, UserBookingSummary{
				ID:        ub.ID,
				BookingID: ub.BookingID,
				Lab:       LabRef{ID: ub.Lab.ID, Name: ub.Lab.Name},
				Schedule: ScheduleSummary{
					Date:      ub.Schedule.Date,
					StartTime: ub.Schedule.StartTime,
					EndTime:   ub.Schedule.EndTime,
					Duration:  ub.Schedule.DurationHours,
				},
				Status:        ub.Status,
				PaymentStatus: ub.Pricing.PaymentStatus,
				TotalAmount:   ub.Pricing.TotalAmount,
				Currency:      ub.Pricing.Currency,
				IsPast:        ub.IsPast,
				IsUpcoming:    ub.IsUpcoming,
			})
		}

		log.Info("user bookings retrieved", slog.Int("count", len(summaries)))

		render.JSON(w, r, UserBookingsResponse{
			Response:   response.OK(),
			UserID:     userID,
			Data:       summaries,
			Statistics: stats,
			Filters: FiltersApplied{
				Status:          query.Status,
				IncludePast:     query.IncludePast,
				IncludeUpcoming: query.IncludeUpcoming,
			},
		})
	}
}

func boolOrDefault(s string, def bool) bool {
	switch s {
	case "true":
		return true
	case "false":
		return false
	default:
		return def
	}
}
