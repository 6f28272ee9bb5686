package favorite

import (
	"context"
	"log/slog"

	"github.com/mydictionary/backend/internal/domain"
)

// List returns the owner's active favorites, newest first, each enriched
// with its live word definition where the lookup succeeds.
func (s *Service) List(ctx context.Context) ([]EnrichedFavorite, error) {
	ownerID, err := ownerFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	favs, err := s.repo.ListActive(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	return s.enrich(ctx, favs), nil
}

// Trashed returns the owner's soft-deleted favorites, most recently trashed
// first, enriched the same way as List.
func (s *Service) Trashed(ctx context.Context) ([]EnrichedFavorite, error) {
	ownerID, err := ownerFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	favs, err := s.repo.ListTrashed(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	return s.enrich(ctx, favs), nil
}

// enrich attaches live definitions to each favorite. A failed lookup leaves
// WordDetails nil for that favorite and never drops it from the result.
func (s *Service) enrich(ctx context.Context, favs []domain.Favorite) []EnrichedFavorite {
	out := make([]EnrichedFavorite, 0, len(favs))
	for _, fav := range favs {
		e := EnrichedFavorite{Favorite: fav}
		if def, err := s.lookup.Lookup(ctx, fav.Word); err != nil {
			s.log.WarnContext(ctx, "favorite enrichment failed",
				slog.String("favorite_id", fav.ID.String()),
				slog.String("word", fav.Word),
				slog.String("error", err.Error()),
			)
		} else {
			e.WordDetails = def
		}
		out = append(out, e)
	}
	return out
}
