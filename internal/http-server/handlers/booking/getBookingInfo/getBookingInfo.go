package getBookingInfo

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"labcatalog/internal/catalog"
	"labcatalog/internal/lib/api/response"
	"labcatalog/internal/lib/logger/sl"
	"labcatalog/internal/models"
)

type LabDetails struct {
	Name     string          `json:"name"`
	Location models.Location `json:"location"`
	Images   []string        `json:"images,omitempty"`
}

type BookingDetails struct {
	models.Booking
	LabDetails *LabDetails `json:"lab_details"`
}

type BookingInfoResponse struct {
	response.Response
	Data BookingDetails `json:"data"`
}

type BookingGetter interface {
	BookingByID(id string) (*models.Booking, error)
	LabByID(id string) (*models.Lab, error)
}

func New(log *slog.Logger, bookings BookingGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.getBookingInfo.New"

		log = log.With(slog.String("op", op))

		bookingID := chi.URLParam(r, "bookingId")
		if bookingID == "" {
			log.Error("booking id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("booking id is required"))
			return
		}

		log = log.With(slog.String("booking_id", bookingID))

		booking, err := bookings.BookingByID(bookingID)
		if err != nil {
			if errors.Is(err, catalog.ErrBookingNotFound) {
				log.Info("booking not found")
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("booking not found"))
				return
			}

			log.Error("failed to get booking", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Internal())
			return
		}

		details := BookingDetails{Booking: *booking}

		// The denormalized lab reference can outlive the lab itself.
		if lab, err := bookings.LabByID(booking.Lab.ID); err == nil {
			details.LabDetails = &LabDetails{
				Name:     lab.Name,
				Location: lab.Location,
				Images:   lab.Images,
			}
		}

		log.Info("booking info retrieved")

		render.JSON(w, r, BookingInfoResponse{
			Response: response.OK(),
			Data:     details,
		})
	}
}
