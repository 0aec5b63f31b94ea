package handler

import (
	"errors"
	"net/http"

	"kirana/internal/static"

	"github.com/rs/zerolog"
)

// StaticHandler serves the allow-listed SEO files.
type StaticHandler struct {
	source static.Source
	logger zerolog.Logger
}

// NewStaticHandler creates a new static file handler.
func NewStaticHandler(source static.Source, logger zerolog.Logger) *StaticHandler {
	return &StaticHandler{
		source: source,
		logger: logger.With().Str("handler", "static").Logger(),
	}
}

// Serve returns a handler for the named file with its fixed content type.
func (h *StaticHandler) Serve(name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		contentType, ok := static.ContentType(name)
		if !ok {
			writeError(w, r, http.StatusNotFound, "Not found")
			return
		}

		data, err := h.source.Load(r.Context(), name)
		if err != nil {
			if errors.Is(err, static.ErrNotFound) {
				writeError(w, r, http.StatusNotFound, "Not found")
				return
			}
			h.logger.Error().Err(err).Str("file", name).Msg("failed to load static file")
			writeError(w, r, http.StatusInternalServerError, "Internal server error")
			return
		}

		w.Header().Set("Content-Type", contentType)
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write(data); err != nil {
			h.logger.Debug().Err(err).Str("file", name).Msg("failed to write static file")
		}
	}
}
