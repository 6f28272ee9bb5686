package favorite

import (
	"context"

	"github.com/google/uuid"

	"github.com/mydictionary/backend/internal/domain"
)

// UpdateNote replaces the note of an active favorite.
// Returns domain.ErrNotFound if the favorite is missing, trashed, or owned
// by someone else.
func (s *Service) UpdateNote(ctx context.Context, id uuid.UUID, in UpdateNoteInput) (*domain.Favorite, error) {
	ownerID, err := ownerFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	return s.repo.UpdateNote(ctx, ownerID, id, in.Note)
}
