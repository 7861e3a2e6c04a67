package getAllLabs

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/render"

	"labcatalog/internal/catalog"
	"labcatalog/internal/lib/api/response"
	"labcatalog/internal/models"
)

type PricingSummary struct {
	Hourly    float64 `json:"hourly"`
	Currency  string  `json:"currency"`
	Formatted string  `json:"formatted"`
}

type MetadataSummary struct {
	Rating        float64 `json:"rating"`
	TotalBookings int     `json:"total_bookings"`
}

// LabSummary is the list-view shape: identity, headline attributes and the
// computed current availability.
type LabSummary struct {
	ID                  string                      `json:"id"`
	ProviderID          string                      `json:"provider_id"`
	Name                string                      `json:"name"`
	Description         string                      `json:"description"`
	Type                string                      `json:"type"`
	Category            string                      `json:"category"`
	Status              models.LabStatus            `json:"status"`
	Capacity            int                         `json:"capacity"`
	Location            string                      `json:"location"`
	Pricing             *PricingSummary             `json:"pricing,omitempty"`
	ConventionCovered   bool                        `json:"convention_covered,omitempty"`
	CurrentAvailability catalog.CurrentAvailability `json:"current_availability"`
	Features            []string                    `json:"features"`
	Images              []string                    `json:"images,omitempty"`
	Metadata            MetadataSummary             `json:"metadata"`
}

type FiltersApplied struct {
	Status      string `json:"status,omitempty"`
	Category    string `json:"category,omitempty"`
	Type        string `json:"type,omitempty"`
	MinCapacity string `json:"min_capacity,omitempty"`
	MaxCapacity string `json:"max_capacity,omitempty"`
	Features    string `json:"features,omitempty"`
}

type LabsResponse struct {
	response.Response
	Data       []LabSummary       `json:"data"`
	Pagination catalog.Pagination `json:"pagination"`
	Filters    FiltersApplied     `json:"filters_applied"`
}

type LabsFilterer interface {
	FilterLabs(f catalog.LabFilter) []models.Lab
}

func New(log *slog.Logger, labs LabsFilterer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.lab.getAllLabs.New"

		log = log.With(slog.String("op", op))

		q := r.URL.Query()

		filter := catalog.LabFilter{
			Status:   q.Get("status"),
			Category: q.Get("category"),
			Type:     q.Get("type"),
		}
		if features := q.Get("features"); features != "" {
			filter.Features = strings.Split(features, ",")
		}

		var err error
		if filter.MinCapacity, err = optionalInt(q.Get("min_capacity")); err != nil {
			log.Error("invalid min_capacity", slog.String("value", q.Get("min_capacity")))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid min_capacity"))
			return
		}
		if filter.MaxCapacity, err = optionalInt(q.Get("max_capacity")); err != nil {
			log.Error("invalid max_capacity", slog.String("value", q.Get("max_capacity")))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid max_capacity"))
			return
		}

		page := intOrDefault(q.Get("page"), 1)
		limit := intOrDefault(q.Get("limit"), 10)

		filtered := labs.FilterLabs(filter)

		now := time.Now()
		summaries := make([]LabSummary, 0, len(filtered))
		for i := range filtered {
			summaries = append(summaries, summarize(&filtered[i], now))
		}

		pageItems, pagination := catalog.Paginate(summaries, page, limit)

		log.Info("labs listed",
			slog.Int("matched", len(filtered)),
			slog.Int("returned", len(pageItems)),
		)

		render.JSON(w, r, LabsResponse{
			Response:   response.OK(),
			Data:       pageItems,
			Pagination: pagination,
			Filters: FiltersApplied{
				Status:      filter.Status,
				Category:    filter.Category,
				Type:        filter.Type,
				MinCapacity: q.Get("min_capacity"),
				MaxCapacity: q.Get("max_capacity"),
				Features:    q.Get("features"),
			},
		})
	}
}

func summarize(lab *models.Lab, now time.Time) LabSummary {
	s := LabSummary{
		ID:                  lab.ID,
		ProviderID:          lab.ProviderID,
		Name:                lab.Name,
		Description:         lab.Description,
		Type:                lab.Type,
		Category:            lab.Category,
		Status:              lab.Status,
		Capacity:            lab.Capacity.MaxStudents,
		Location:            lab.Location.Building,
		ConventionCovered:   lab.CoveredByConvention(),
		CurrentAvailability: catalog.Availability(lab, now),
		Features:            lab.Features,
		Images:              lab.Images,
		Metadata: MetadataSummary{
			Rating:        lab.Metadata.Rating,
			TotalBookings: lab.Metadata.TotalBookings,
		},
	}

	if len(s.Features) > 5 {
		s.Features = s.Features[:5]
	}

	if lab.Pricing != nil {
		symbol := "$"
		if lab.Pricing.Currency != "USD" {
			symbol = "€"
		}
		s.Pricing = &PricingSummary{
			Hourly:    lab.Pricing.Rates.Hourly,
			Currency:  lab.Pricing.Currency,
			Formatted: fmt.Sprintf("%s%.2f/h", symbol, lab.Pricing.Rates.Hourly),
		}
	}

	return s
}

func optionalInt(s string) (*int, error) {
	if s == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil, err
	}
	return &n, nil
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
