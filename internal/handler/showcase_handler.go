package handler

import (
	"net/http"

	"kirana/internal/service"

	"github.com/rs/zerolog"
)

// ShowcaseHandler serves the price ticker, company journey and store locations.
type ShowcaseHandler struct {
	service service.ShowcaseService
	logger  zerolog.Logger
}

// NewShowcaseHandler creates a new showcase handler.
func NewShowcaseHandler(service service.ShowcaseService, logger zerolog.Logger) *ShowcaseHandler {
	return &ShowcaseHandler{
		service: service,
		logger:  logger.With().Str("handler", "showcase").Logger(),
	}
}

// Prices handles GET /api/prices requests.
func (h *ShowcaseHandler) Prices(w http.ResponseWriter, r *http.Request) {
	prices, err := h.service.ListPrices(r.Context())
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, prices)
}

// Journey handles GET /api/journey requests.
func (h *ShowcaseHandler) Journey(w http.ResponseWriter, r *http.Request) {
	milestones, err := h.service.ListJourney(r.Context())
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, milestones)
}

// Locations handles GET /api/locations requests.
func (h *ShowcaseHandler) Locations(w http.ResponseWriter, r *http.Request) {
	locations, err := h.service.ListLocations(r.Context())
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, locations)
}
