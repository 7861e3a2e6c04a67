package getLabSchedule

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

type ScheduleResponse struct {
	response.Response
	LabID     string                  `json:"lab_id"`
	LabName   string                  `json:"lab_name"`
	Schedule  models.WeekSchedule     `json:"schedule"`
	Next7Days []catalog.DayProjection `json:"next_7_days"`
}

type LabGetter interface {
	LabByID(id string) (*models.Lab, error)
}

func New(log *slog.Logger, labs LabGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.lab.getLabSchedule.New"

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
				render.JSON(w, r, response.Error("lab not found"))
				return
			}

			log.Error("failed to get lab", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Internal())
			return
		}

		log.Info("schedule retrieved")

		render.JSON(w, r, ScheduleResponse{
			Response:  response.OK(),
			LabID:     lab.ID,
			LabName:   lab.Name,
			Schedule:  lab.Schedule,
			Next7Days: catalog.WeekAhead(lab, time.Now()),
		})
	}
}
