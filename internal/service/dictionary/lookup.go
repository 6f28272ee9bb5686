package dictionary

import (
	"context"
	"log/slog"
	"strings"

	"github.com/mydictionary/backend/internal/domain"
)

// Lookup fetches all upstream lexical entries for word and normalizes them
// into a single WordDefinition.
//
// Returns domain.ErrNotFound when the upstream has no definitions and a
// domain.UpstreamError on transport, timeout or decode failure. The result
// is never cached; every call re-fetches.
func (s *Service) Lookup(ctx context.Context, word string) (*domain.WordDefinition, error) {
	word = strings.TrimSpace(word)
	if word == "" {
		return nil, domain.NewValidationError("word", "required")
	}
	if len(word) > 255 {
		return nil, domain.NewValidationError("word", "too long (max 255)")
	}

	entries, err := s.fetcher.FetchEntries(ctx, word)
	if err != nil {
		return nil, err
	}

	def := Normalize(entries)

	s.log.DebugContext(ctx, "lookup normalized",
		slog.String("word", word),
		slog.Int("entries", len(entries)),
		slog.Int("parts_of_speech", len(def.PartsOfSpeech)),
		slog.Int("phonetics", len(def.Phonetics)),
	)

	return &def, nil
}
