package getCategories

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"labcatalog/internal/catalog"
	"labcatalog/internal/lib/api/response"
)

type CategoriesResponse struct {
	response.Response
	Count int                       `json:"count"`
	Data  []catalog.CategorySummary `json:"data"`
}

type CategoriesProvider interface {
	Categories() []catalog.CategorySummary
}

func New(log *slog.Logger, categories CategoriesProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.catalogmeta.getCategories.New"

		log = log.With(slog.String("op", op))

		list := categories.Categories()

		log.Info("categories listed", slog.Int("count", len(list)))

		render.JSON(w, r, CategoriesResponse{
			Response: response.OK(),
			Count:    len(list),
			Data:     list,
		})
	}
}
