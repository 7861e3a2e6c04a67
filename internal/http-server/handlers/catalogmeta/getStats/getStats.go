package getStats

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"

	"labcatalog/internal/catalog"
	"labcatalog/internal/lib/api/response"
)

type StatsResponse struct {
	response.Response
	Data        catalog.Report `json:"data"`
	GeneratedAt time.Time      `json:"generated_at"`
}

type StatsProvider interface {
	Stats() catalog.Report
}

func New(log *slog.Logger, stats StatsProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.catalogmeta.getStats.New"

		log = log.With(slog.String("op", op))

		report := stats.Stats()

		log.Info("stats generated",
			slog.Int("labs", report.Labs.Total),
			slog.Int("bookings", report.Bookings.Total),
		)

		render.JSON(w, r, StatsResponse{
			Response:    response.OK(),
			Data:        report,
			GeneratedAt: time.Now().UTC(),
		})
	}
}
