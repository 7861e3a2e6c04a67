package getLabInfo

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"labcatalog/internal/catalog"
	"labcatalog/internal/lib/api/response"
	"labcatalog/internal/lib/logger/sl"
	"labcatalog/internal/models"
)

const CodeLabNotFound = "LAB_NOT_FOUND"

type SimilarLab struct {
	ID         string           `json:"id"`
	Name       string           `json:"name"`
	Category   string           `json:"category"`
	Capacity   int              `json:"capacity"`
	HourlyRate float64          `json:"hourly_rate,omitempty"`
	Status     models.LabStatus `json:"status"`
}

type LabDetails struct {
	models.Lab
	UpcomingBookings []catalog.UpcomingBooking `json:"upcoming_bookings"`
	SimilarLabs      []SimilarLab              `json:"similar_labs"`
}

type LabInfoResponse struct {
	response.Response
	Data LabDetails `json:"data"`
}

type NotFoundResponse struct {
	response.Response
	Suggestions []catalog.LabSuggestion `json:"suggestions,omitempty"`
}

type LabGetter interface {
	LabByID(id string) (*models.Lab, error)
	UpcomingLabBookings(labID string, now time.Time, n int) []catalog.UpcomingBooking
	SimilarLabs(lab *models.Lab, n int) []models.Lab
	LabSuggestions(n int) []catalog.LabSuggestion
}

func New(log *slog.Logger, labs LabGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.lab.getLabInfo.New"

		log = log.With(slog.String("op", op))

		labID := chi.URLParam(r, "id")
		if labID == "" {
			log.Error("lab id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("lab id is required"))
			return
		}

		log = log.With(slog.String("lab_id", labID))

		lab, err := labs.LabByID(labID)
		if err != nil {
			if errors.Is(err, catalog.ErrLabNotFound) {
				log.Info("lab not found")
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, NotFoundResponse{
					Response:    response.ErrorCode("lab not found", CodeLabNotFound),
					Suggestions: labs.LabSuggestions(3),
				})
				return
			}

			log.Error("failed to get lab", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Internal())
			return
		}

		similar := make([]SimilarLab, 0, 2)
		for _, s := range labs.SimilarLabs(lab, 2) {
			rate, _ := s.HourlyRate()
			similar = append(similar, SimilarLab{
				ID:         s.ID,
				Name:       s.Name,
				Category:   s.Category,
				Capacity:   s.Capacity.MaxStudents,
				HourlyRate: rate,
				Status:     s.Status,
			})
		}

		log.Info("lab info retrieved")

		render.JSON(w, r, LabInfoResponse{
			Response: response.OK(),
			Data: LabDetails{
				Lab:              *lab,
				UpcomingBookings: labs.UpcomingLabBookings(lab.ID, time.Now(), 3),
				SimilarLabs:      similar,
			},
		})
	}
}
