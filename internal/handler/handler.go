package handler

import (
	"encoding/json"
	"net/http"

	"products-api/internal/model"

	"github.com/rs/zerolog"
)

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Log the error but don't expose it to the client
		return
	}
}

// writeError writes an error response with the given status code and message.
func writeError(w http.ResponseWriter, status int, message string, logger zerolog.Logger) {
	logger.Error().Str("error", message).Int("status", status).Msg("handler error")
	writeJSON(w, status, model.ErrorResponse{Message: message})
}

// writeInternalError writes a 500 response carrying the underlying error text.
func writeInternalError(w http.ResponseWriter, message string, err error, logger zerolog.Logger) {
	logger.Error().Err(err).Str("message", message).Msg("handler error")
	writeJSON(w, http.StatusInternalServerError, model.ErrorResponse{
		Message: message,
		Error:   err.Error(),
	})
}

// writeValidationError writes a 400 response carrying the full error list.
func writeValidationError(w http.ResponseWriter, errs []string, logger zerolog.Logger) {
	logger.Debug().Strs("errors", errs).Msg("validation failed")
	writeJSON(w, http.StatusBadRequest, model.ErrorResponse{
		Message: "Invalid input",
		Errors:  errs,
	})
}
