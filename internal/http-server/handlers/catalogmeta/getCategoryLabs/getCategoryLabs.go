package getCategoryLabs

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"labcatalog/internal/catalog"
	"labcatalog/internal/lib/api/response"
	"labcatalog/internal/models"
)

type CategoryLab struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Status      models.LabStatus `json:"status"`
	Capacity    int              `json:"capacity"`
	Pricing     *models.Rates    `json:"pricing,omitempty"`
	Features    []string         `json:"features"`
	Images      []string         `json:"images,omitempty"`
}

type CategoryLabsResponse struct {
	response.Response
	Category string        `json:"category"`
	Count    int           `json:"count"`
	Data     []CategoryLab `json:"data"`
}

type NotFoundResponse struct {
	response.Response
	AvailableCategories []string `json:"available_categories"`
}

type CategoryLabsProvider interface {
	FilterLabs(f catalog.LabFilter) []models.Lab
	Categories() []catalog.CategorySummary
}

func New(log *slog.Logger, labs CategoryLabsProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.catalogmeta.getCategoryLabs.New"

		log = log.With(slog.String("op", op))

		category := chi.URLParam(r, "category")
		if category == "" {
			log.Error("category is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("category is required"))
			return
		}

		log = log.With(slog.String("category", category))

		matched := labs.FilterLabs(catalog.LabFilter{Category: category})
		if len(matched) == 0 {
			available := make([]string, 0)
			for _, c := range labs.Categories() {
				available = append(available, c.Category)
			}

			log.Info("category has no labs")
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, NotFoundResponse{
				Response:            response.Error("no labs found in category: " + category),
				AvailableCategories: available,
			})
			return
		}

		data := make([]CategoryLab, 0, len(matched))
		for _, lab := range matched {
			cl := CategoryLab{
				ID:          lab.ID,
				Name:        lab.Name,
				Description: lab.Description,
				Status:      lab.Status,
				Capacity:    lab.Capacity.MaxStudents,
				Features:    lab.Features,
				Images:      lab.Images,
			}
			if lab.Pricing != nil {
				rates := lab.Pricing.Rates
				cl.Pricing = &rates
			}
			data = append(data, cl)
		}

		log.Info("category labs listed", slog.Int("count", len(data)))

		render.JSON(w, r, CategoryLabsResponse{
			Response: response.OK(),
			Category: category,
			Count:    len(data),
			Data:     data,
		})
	}
}
