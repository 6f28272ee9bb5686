package favorite

import "github.com/mydictionary/backend/internal/domain"

// EnrichedFavorite is a favorite with its live word definition attached.
// WordDetails is nil when the upstream lookup failed or found nothing; the
// favorite itself is always present. Never persisted.
type EnrichedFavorite struct {
	domain.Favorite
	WordDetails *domain.WordDefinition `json:"word_details"`
}
