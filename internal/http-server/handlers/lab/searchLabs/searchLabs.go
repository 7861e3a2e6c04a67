package searchLabs

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"labcatalog/internal/catalog"
	"labcatalog/internal/lib/api/response"
	"labcatalog/internal/models"
)

type SearchResult struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Category    string           `json:"category"`
	Status      models.LabStatus `json:"status"`
	Capacity    int              `json:"capacity"`
	HourlyRate  float64          `json:"hourly_rate,omitempty"`
	Currency    string           `json:"currency,omitempty"`
	Matched     string           `json:"matched"`
}

type SearchResponse struct {
	response.Response
	Query string         `json:"query"`
	Count int            `json:"count"`
	Data  []SearchResult `json:"data"`
}

type LabSearcher interface {
	SearchLabs(q string) []catalog.SearchMatch
}

func New(log *slog.Logger, labs LabSearcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.lab.searchLabs.New"

		log = log.With(slog.String("op", op))

		query := r.URL.Query().Get("q")

		matches := labs.SearchLabs(query)

		results := make([]SearchResult, 0, len(matches))
		for _, m := range matches {
			rate, currency := m.Lab.HourlyRate()
			results = append(results, SearchResult{
				ID:          m.Lab.ID,
				Name:        m.Lab.Name,
				Description: truncate(m.Lab.Description, 100),
				Category:    m.Lab.Category,
				Status:      m.Lab.Status,
				Capacity:    m.Lab.Capacity.MaxStudents,
				HourlyRate:  rate,
				Currency:    currency,
				Matched:     m.Matched,
			})
		}

		log.Info("search completed",
			slog.String("query", query),
			slog.Int("count", len(results)),
		)

		render.JSON(w, r, SearchResponse{
			Response: response.OK(),
			Query:    query,
			Count:    len(results),
			Data:     results,
		})
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
