package rest

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/mydictionary/backend/internal/domain"
)

// searchEnvelope is the response shape shared by the dictionary and favorite
// search endpoints. StatusCode mirrors the HTTP status so thin clients can
// dispatch on the body alone.
type searchEnvelope struct {
	StatusCode int                     `json:"status_code"`
	Message    string                  `json:"message"`
	Data       []domain.WordDefinition `json:"data"`
}

// apiResponse is the envelope for favorites mutations and listings.
type apiResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// validationResponse carries field-level messages for a 422.
type validationResponse struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors"`
}

func writeSearchResult(w http.ResponseWriter, defs []domain.WordDefinition) {
	writeJSON(w, http.StatusOK, searchEnvelope{
		StatusCode: http.StatusOK,
		Message:    "success",
		Data:       defs,
	})
}

func writeSearchNotFound(w http.ResponseWriter, word string) {
	writeJSON(w, http.StatusNotFound, searchEnvelope{
		StatusCode: http.StatusNotFound,
		Message:    "no definitions found for " + word,
		Data:       []domain.WordDefinition{},
	})
}

// handleError maps domain errors to HTTP responses. Upstream failures keep
// their underlying message; everything unexpected becomes an opaque 500.
func handleError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		fields := make(map[string]string, len(ve.Errors))
		for _, fe := range ve.Errors {
			fields[fe.Field] = fe.Message
		}
		writeJSON(w, http.StatusUnprocessableEntity, validationResponse{
			Success: false,
			Message: "validation failed",
			Errors:  fields,
		})
		return
	}

	switch {
	case errors.Is(err, domain.ErrUnauthorized):
		writeJSON(w, http.StatusUnauthorized, apiResponse{Success: false, Message: "unauthorized"})
	case errors.Is(err, domain.ErrNotFound):
		writeJSON(w, http.StatusNotFound, apiResponse{Success: false, Message: "not found"})
	case errors.Is(err, domain.ErrUpstream):
		writeJSON(w, http.StatusInternalServerError, apiResponse{Success: false, Message: err.Error()})
	default:
		log.ErrorContext(r.Context(), "request failed",
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()),
		)
		writeJSON(w, http.StatusInternalServerError, apiResponse{Success: false, Message: "internal server error"})
	}
}
