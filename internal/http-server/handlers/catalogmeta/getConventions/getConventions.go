package getConventions

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"labcatalog/internal/catalog"
	"labcatalog/internal/lib/api/response"
)

type ConventionsResponse struct {
	response.Response
	Count int                      `json:"count"`
	Data  []catalog.ConventionView `json:"data"`
}

type ConventionsProvider interface {
	Conventions() []catalog.ConventionView
}

func New(log *slog.Logger, conventions ConventionsProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.catalogmeta.getConventions.New"

		log = log.With(slog.String("op", op))

		list := conventions.Conventions()

		log.Info("conventions listed", slog.Int("count", len(list)))

		render.JSON(w, r, ConventionsResponse{
			Response: response.OK(),
			Count:    len(list),
			Data:     list,
		})
	}
}
