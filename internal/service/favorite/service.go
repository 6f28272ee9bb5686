// Package favorite implements the favorites lifecycle: create, list, soft
// delete, restore, and permanent removal, scoped to the authenticated owner.
package favorite

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/mydictionary/backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type favoriteRepo interface {
	Create(ctx context.Context, ownerID uuid.UUID, word string, note *string) (*domain.Favorite, error)
	ListActive(ctx context.Context, ownerID uuid.UUID) ([]domain.Favorite, error)
	GetActiveByID(ctx context.Context, ownerID, id uuid.UUID) (*domain.Favorite, error)
	UpdateNote(ctx context.Context, ownerID, id uuid.UUID, note *string) (*domain.Favorite, error)
	SoftDelete(ctx context.Context, ownerID, id uuid.UUID) error
	ListTrashed(ctx context.Context, ownerID uuid.UUID) ([]domain.Favorite, error)
	Restore(ctx context.Context, ownerID, id uuid.UUID) (*domain.Favorite, error)
	Purge(ctx context.Context, ownerID, id uuid.UUID) error
	RestoreAll(ctx context.Context, ownerID uuid.UUID) (int64, error)
	PurgeAll(ctx context.Context, ownerID uuid.UUID) (int64, error)
}

type definitionLookup interface {
	Lookup(ctx context.Context, word string) (*domain.WordDefinition, error)
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements favorites business logic.
type Service struct {
	log    *slog.Logger
	repo   favoriteRepo
	lookup definitionLookup
}

// NewService creates a new Favorite service.
func NewService(logger *slog.Logger, repo favoriteRepo, lookup definitionLookup) *Service {
	return &Service{
		log:    logger.With("service", "favorite"),
		repo:   repo,
		lookup: lookup,
	}
}
