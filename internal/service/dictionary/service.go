// Package dictionary implements word lookup against the upstream dictionary
// API and the normalization of raw lexical entries into a single
// domain.WordDefinition.
package dictionary

import (
	"context"
	"log/slog"

	"github.com/mydictionary/backend/internal/provider"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type entryFetcher interface {
	FetchEntries(ctx context.Context, word string) ([]provider.LexicalEntry, error)
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements dictionary lookup business logic.
type Service struct {
	log     *slog.Logger
	fetcher entryFetcher
}

// NewService creates a new Dictionary service.
func NewService(logger *slog.Logger, fetcher entryFetcher) *Service {
	return &Service{
		log:     logger.With("service", "dictionary"),
		fetcher: fetcher,
	}
}
