package handler

import (
	"net/http"
	"strconv"

	"kirana/internal/model"
	"kirana/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// ProductHandler handles product-related HTTP requests.
type ProductHandler struct {
	service service.CatalogService
	logger  zerolog.Logger
}

// NewProductHandler creates a new product handler.
func NewProductHandler(service service.CatalogService, logger zerolog.Logger) *ProductHandler {
	return &ProductHandler{
		service: service,
		logger:  logger.With().Str("handler", "product").Logger(),
	}
}

// List handles GET /api/products requests with an optional categoryId filter.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	categoryID, err := parseCategoryID(r.URL.Query().Get("categoryId"))
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}

	products, err := h.service.ListProducts(r.Context(), categoryID)
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, products)
}

// GetBySlug handles GET /api/products/{slug} requests.
func (h *ProductHandler) GetBySlug(w http.ResponseWriter, r *http.Request) {
	product, err := h.service.GetProduct(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, product)
}

// parseCategoryID returns nil for an absent parameter. Anything else must be plain
// decimal digits naming a positive value that fits the INTEGER id column.
func parseCategoryID(raw string) (*int, error) {
	if raw == "" {
		return nil, nil
	}

	for _, c := range raw {
		if c < '0' || c > '9' {
			return nil, model.ErrInvalidCategoryID
		}
	}

	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || id < 1 {
		return nil, model.ErrInvalidCategoryID
	}

	v := int(id)
	return &v, nil
}
