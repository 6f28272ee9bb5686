package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/mydictionary/backend/internal/domain"
	"github.com/mydictionary/backend/internal/service/favorite"
)

type favoriteService interface {
	Create(ctx context.Context, in favorite.CreateInput) (*favorite.EnrichedFavorite, error)
	List(ctx context.Context) ([]favorite.EnrichedFavorite, error)
	Search(ctx context.Context, word string) (*domain.WordDefinition, error)
	UpdateNote(ctx context.Context, id uuid.UUID, in favorite.UpdateNoteInput) (*domain.Favorite, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Trashed(ctx context.Context) ([]favorite.EnrichedFavorite, error)
	Restore(ctx context.Context, id uuid.UUID) (*domain.Favorite, error)
	Purge(ctx context.Context, id uuid.UUID) error
	RestoreAll(ctx context.Context) (int64, error)
	PurgeAll(ctx context.Context) (int64, error)
}

// FavoriteHandler serves the favorites lifecycle endpoints.
type FavoriteHandler struct {
	log *slog.Logger
	svc favoriteService
}

// NewFavoriteHandler creates a FavoriteHandler.
func NewFavoriteHandler(logger *slog.Logger, svc favoriteService) *FavoriteHandler {
	return &FavoriteHandler{
		log: logger.With("handler", "favorite"),
		svc: svc,
	}
}

// List handles GET /favorites.
func (h *FavoriteHandler) List(w http.ResponseWriter, r *http.Request) {
	favs, err := h.svc.List(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, apiResponse{Success: true, Data: favs})
}

// Search handles GET /favorites/search?word={word}.
func (h *FavoriteHandler) Search(w http.ResponseWriter, r *http.Request) {
	word := r.URL.Query().Get("word")

	def, err := h.svc.Search(r.Context(), word)
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

// Create handles POST /favorites.
func (h *FavoriteHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in favorite.CreateInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeJSON(w, http.StatusBadRequest, apiResponse{Success: false, Message: "invalid request body"})
		return
	}

	created, err := h.svc.Create(r.Context(), in)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, apiResponse{
		Success: true,
		Message: "word added to favorites",
		Data:    created,
	})
}

// UpdateNote handles PUT /favorites/{id}.
func (h *FavoriteHandler) UpdateNote(w http.ResponseWriter, r *http.Request) {
	id, ok := favoriteID(w, r)
	if !ok {
		return
	}

	var in favorite.UpdateNoteInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeJSON(w, http.StatusBadRequest, apiResponse{Success: false, Message: "invalid request body"})
		return
	}

	updated, err := h.svc.UpdateNote(r.Context(), id, in)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, apiResponse{Success: true, Message: "note updated", Data: updated})
}

// Delete handles DELETE /favorites/{id} (soft delete).
func (h *FavoriteHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := favoriteID(w, r)
	if !ok {
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, apiResponse{Success: true, Message: "favorite moved to trash"})
}

// Trashed handles GET /favorites/trashed.
func (h *FavoriteHandler) Trashed(w http.ResponseWriter, r *http.Request) {
	favs, err := h.svc.Trashed(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, apiResponse{Success: true, Data: favs})
}

// Restore handles POST /favorites/{id}/restore.
func (h *FavoriteHandler) Restore(w http.ResponseWriter, r *http.Request) {
	id, ok := favoriteID(w, r)
	if !ok {
		return
	}

	restored, err := h.svc.Restore(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, apiResponse{Success: true, Message: "favorite restored", Data: restored})
}

// Purge handles DELETE /favorites/{id}/force.
func (h *FavoriteHandler) Purge(w http.ResponseWriter, r *http.Request) {
	id, ok := favoriteID(w, r)
	if !ok {
		return
	}

	if err := h.svc.Purge(r.Context(), id); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, apiResponse{Success: true, Message: "favorite permanently deleted"})
}

// RestoreAll handles POST /favorites/restore-all.
func (h *FavoriteHandler) RestoreAll(w http.ResponseWriter, r *http.Request) {
	n, err := h.svc.RestoreAll(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, apiResponse{
		Success: true,
		Message: "all trashed favorites restored",
		Data:    map[string]int64{"restored": n},
	})
}

// PurgeAll handles DELETE /favorites/force-delete-all.
func (h *FavoriteHandler) PurgeAll(w http.ResponseWriter, r *http.Request) {
	n, err := h.svc.PurgeAll(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, apiResponse{
		Success: true,
		Message: "trash emptied",
		Data:    map[string]int64{"deleted": n},
	})
}

// favoriteID parses the {id} path parameter. A malformed id is reported as
// not found, the same as a missing record.
func favoriteID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusNotFound, apiResponse{Success: false, Message: "not found"})
		return uuid.Nil, false
	}
	return id, true
}
