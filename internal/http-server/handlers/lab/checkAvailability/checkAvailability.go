package checkAvailability

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"labcatalog/internal/catalog"
	"labcatalog/internal/lib/api/response"
	"labcatalog/internal/lib/logger/sl"
	"labcatalog/internal/models"
)

// SlotQuery is the interval form of the request. All three parameters must
// be present together; with none supplied the handler reports the lab's
// instantaneous availability instead.
type SlotQuery struct {
	Date      string `validate:"required,datetime=2006-01-02"`
	StartTime string `validate:"required,datetime=15:04"`
	EndTime   string `validate:"required,datetime=15:04"`
}

type LabDetails struct {
	Status             models.LabStatus `json:"status"`
	Capacity           int              `json:"capacity"`
	RequiresInstructor bool             `json:"requires_instructor"`
	HourlyRate         float64          `json:"hourly_rate,omitempty"`
	Currency           string           `json:"currency,omitempty"`
	ConventionCovered  bool             `json:"convention_covered,omitempty"`
}

type VerdictResponse struct {
	response.Response
	LabID          string             `json:"lab_id"`
	LabName        string             `json:"lab_name"`
	Date           string             `json:"date"`
	StartTime      string             `json:"start_time"`
	EndTime        string             `json:"end_time"`
	Available      bool               `json:"available"`
	Reason         string             `json:"reason,omitempty"`
	AvailableSlots []string           `json:"available_slots,omitempty"`
	NextOpenDay    string             `json:"next_open_day,omitempty"`
	Details        LabDetails         `json:"details"`
	Conflicts      []catalog.Conflict `json:"conflicts,omitempty"`
}

type CurrentResponse struct {
	response.Response
	LabID               string                      `json:"lab_id"`
	LabName             string                      `json:"lab_name"`
	CurrentStatus       models.LabStatus            `json:"current_status"`
	CurrentAvailability catalog.CurrentAvailability `json:"current_availability"`
	ScheduleToday       models.DaySchedule          `json:"schedule_today"`
}

type AvailabilityChecker interface {
	LabByID(id string) (*models.Lab, error)
	CheckSlot(req catalog.SlotRequest) (*catalog.SlotVerdict, error)
}

func New(log *slog.Logger, checker AvailabilityChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.lab.checkAvailability.New"

		log = log.With(slog.String("op", op))

		labID := chi.URLParam(r, "labId")
		if labID == "" {
			log.Error("lab id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("lab id is required"))
			return
		}

		log = log.With(slog.String("lab_id", labID))

		q := SlotQuery{
			Date:      r.URL.Query().Get("date"),
			StartTime: r.URL.Query().Get("startTime"),
			EndTime:   r.URL.Query().Get("endTime"),
		}

		if q.Date == "" && q.StartTime == "" && q.EndTime == "" {
			respondCurrent(w, r, log, checker, labID)
			return
		}

		if err := validator.New().Struct(q); err != nil {
			var validateErr validator.ValidationErrors
			if errors.As(err, &validateErr) {
				log.Error("invalid availability query", sl.Err(err))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.ValidationError(validateErr))
				return
			}
		}

		verdict, err := checker.CheckSlot(catalog.SlotRequest{
			LabID:     labID,
			Date:      q.Date,
			StartTime: q.StartTime,
			EndTime:   q.EndTime,
		})
		if err != nil {
			switch {
			case errors.Is(err, catalog.ErrLabNotFound):
				log.Info("lab not found")
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("lab not found"))
			case errors.Is(err, catalog.ErrValidation):
				log.Error("invalid availability request", sl.Err(err))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("invalid date or time interval"))
			default:
				log.Error("failed to check availability", sl.Err(err))
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Internal())
			}
			return
		}

		log.Info("availability checked",
			slog.Bool("available", verdict.Available),
			slog.Int("conflicts", len(verdict.Conflicts)),
		)

		rate, currency := verdict.Lab.HourlyRate()

		resp := VerdictResponse{
			Response:    response.OK(),
			LabID:       labID,
			LabName:     verdict.Lab.Name,
			Date:        q.Date,
			StartTime:   q.StartTime,
			EndTime:     q.EndTime,
			Available:   verdict.Available,
			Reason:      verdict.Reason,
			NextOpenDay: verdict.NextOpenDay,
			Conflicts:   verdict.Conflicts,
			Details: LabDetails{
				Status:             verdict.Lab.Status,
				Capacity:           verdict.Lab.Capacity.MaxStudents,
				RequiresInstructor: verdict.Lab.Requirements.RequiresInstructor,
				HourlyRate:         rate,
				Currency:           currency,
				ConventionCovered:  verdict.Lab.CoveredByConvention(),
			},
		}
		for _, slot := range verdict.OpenSlots {
			resp.AvailableSlots = append(resp.AvailableSlots, slot.String())
		}

		render.JSON(w, r, resp)
	}
}

func respondCurrent(w http.ResponseWriter, r *http.Request, log *slog.Logger, checker AvailabilityChecker, labID string) {
	lab, err := checker.LabByID(labID)
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

	now := time.Now()

	log.Info("current availability reported")

	render.JSON(w, r, CurrentResponse{
		Response:            response.OK(),
		LabID:               lab.ID,
		LabName:             lab.Name,
		CurrentStatus:       lab.Status,
		CurrentAvailability: catalog.Availability(lab, now),
		ScheduleToday:       lab.Schedule.Day(now.Weekday()),
	})
}
