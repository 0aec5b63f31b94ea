package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"kirana/internal/middleware"
	"kirana/internal/model"

	"github.com/rs/zerolog"
)

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Headers are already sent; nothing useful left to tell the client.
		return
	}
}

// writeError writes a {"message": ...} body with the given status code.
func writeError(w http.ResponseWriter, r *http.Request, status int, message string) {
	writeJSON(w, status, model.ErrorResponse{
		Message:   message,
		RequestID: middleware.RequestIDFromContext(r.Context()),
	})
}

// writeServiceError maps a service error onto a status code. Domain errors carry
// a client-safe message; anything else is logged and reported as a generic 500.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, logger zerolog.Logger) {
	var domainErr *model.DomainError
	if errors.As(err, &domainErr) {
		status := http.StatusBadRequest
		switch domainErr.Code {
		case model.ErrCodeCategoryNotFound, model.ErrCodeProductNotFound:
			status = http.StatusNotFound
		}
		logger.Debug().Str("code", domainErr.Code).Str("path", r.URL.Path).Msg("request rejected")
		writeError(w, r, status, domainErr.Message)
		return
	}

	logger.Error().
		Err(err).
		Str("path", r.URL.Path).
		Str("request_id", middleware.RequestIDFromContext(r.Context())).
		Msg("handler error")
	writeError(w, r, http.StatusInternalServerError, "Internal server error")
}

// NotFound answers requests that match no route.
func NotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, http.StatusNotFound, "Not found")
}

// MethodNotAllowed answers requests whose path matches but method does not.
func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, http.StatusMethodNotAllowed, "Method not allowed")
}

// Health reports that the process is serving requests.
func Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}
