package favorite

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/mydictionary/backend/internal/domain"
)

// Delete moves an active favorite to the trash. Deleting an already-trashed
// or foreign favorite yields domain.ErrNotFound.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	ownerID, err := ownerFromCtx(ctx)
	if err != nil {
		return err
	}

	return s.repo.SoftDelete(ctx, ownerID, id)
}

// Restore returns a trashed favorite to the active state with its word and
// note intact.
func (s *Service) Restore(ctx context.Context, id uuid.UUID) (*domain.Favorite, error) {
	ownerID, err := ownerFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	return s.repo.Restore(ctx, ownerID, id)
}

// Purge permanently removes a trashed favorite. Once purged, subsequent
// restore or purge of the same id yields domain.ErrNotFound.
func (s *Service) Purge(ctx context.Context, id uuid.UUID) error {
	ownerID, err := ownerFromCtx(ctx)
	if err != nil {
		return err
	}

	return s.repo.Purge(ctx, ownerID, id)
}

// RestoreAll returns every trashed favorite of the owner to the active state
// and reports the number restored. An empty trash restores zero without error.
func (s *Service) RestoreAll(ctx context.Context) (int64, error) {
	ownerID, err := ownerFromCtx(ctx)
	if err != nil {
		return 0, err
	}

	n, err := s.repo.RestoreAll(ctx, ownerID)
	if err != nil {
		return 0, err
	}

	s.log.InfoContext(ctx, "restored all trashed favorites", slog.Int64("count", n))
	return n, nil
}

// PurgeAll permanently removes every trashed favorite of the owner and
// reports the number purged.
func (s *Service) PurgeAll(ctx context.Context) (int64, error) {
	ownerID, err := ownerFromCtx(ctx)
	if err != nil {
		return 0, err
	}

	n, err := s.repo.PurgeAll(ctx, ownerID)
	if err != nil {
		return 0, err
	}

	s.log.InfoContext(ctx, "purged all trashed favorites", slog.Int64("count", n))
	return n, nil
}
