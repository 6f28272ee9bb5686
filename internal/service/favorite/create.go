package favorite

import (
	"context"
	"log/slog"
)

// Create saves a new favorite for the authenticated owner and attaches the
// live word definition to the result when the upstream lookup succeeds.
// A failed lookup never fails the create; the favorite is stored regardless.
func (s *Service) Create(ctx context.Context, in CreateInput) (*EnrichedFavorite, error) {
	ownerID, err := ownerFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	if err := in.Validate(); err != nil {
		return nil, err
	}

	fav, err := s.repo.Create(ctx, ownerID, in.Word, in.Note)
	if err != nil {
		return nil, err
	}

	out := &EnrichedFavorite{Favorite: *fav}
	if def, err := s.lookup.Lookup(ctx, fav.Word); err != nil {
		s.log.WarnContext(ctx, "favorite created without definition",
			slog.String("word", fav.Word),
			slog.String("error", err.Error()),
		)
	} else {
		out.WordDetails = def
	}

	return out, nil
}
