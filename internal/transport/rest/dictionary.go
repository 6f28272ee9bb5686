package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/mydictionary/backend/internal/domain"
)

type dictionaryService interface {
	Lookup(ctx context.Context, word string) (*domain.WordDefinition, error)
}

// DictionaryHandler serves live word lookups.
type DictionaryHandler struct {
	log *slog.Logger
	svc dictionaryService
}

// NewDictionaryHandler creates a DictionaryHandler.
func NewDictionaryHandler(logger *slog.Logger, svc dictionaryService) *DictionaryHandler {
	return &DictionaryHandler{
		log: logger.With("handler", "dictionary"),
		svc: svc,
	}
}

// Search handles GET /dictionary/search?q={word}.
func (h *DictionaryHandler) Search(w http.ResponseWriter, r *http.Request) {
	word := r.URL.Query().Get("q")

	def, err := h.svc.Lookup(r.Context(), word)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeSearchNotFound(w, word)
			return
		}
		handleError(w, r, h.log, err)
		return
	}

	writeSearchResult(w, []domain.WordDefinition{*def})
}
