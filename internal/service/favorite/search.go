package favorite

import (
	"context"

	"github.com/mydictionary/backend/internal/domain"
)

// Search looks up the live definition of a word on behalf of the
// authenticated owner. It shares validation with Create but touches no
// persisted state.
func (s *Service) Search(ctx context.Context, word string) (*domain.WordDefinition, error) {
	if _, err := ownerFromCtx(ctx); err != nil {
		return nil, err
	}

	return s.lookup.Lookup(ctx, word)
}
