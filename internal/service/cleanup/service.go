// Package cleanup implements the retention sweeper: favorites older than a
// configurable threshold are soft-deleted in a single transactional batch,
// with optional dry-run, interactive confirmation, and owner notification.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/mydictionary/backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type favoriteRepo interface {
	FindOlderThan(ctx context.Context, cutoff time.Time) ([]domain.Favorite, error)
	SoftDelete(ctx context.Context, ownerID, id uuid.UUID) error
}

type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type retentionNotifier interface {
	Notify(ctx context.Context, notice domain.RetentionNotice) error
}

// confirmer asks for explicit approval before a destructive run. A declined
// confirmation cancels the sweep without error.
type confirmer interface {
	Confirm(ctx context.Context, question string) (bool, error)
}

// ---------------------------------------------------------------------------
// Sweeper
// ---------------------------------------------------------------------------

// Sweeper implements the retention sweep over stale favorites.
type Sweeper struct {
	log       *slog.Logger
	favorites favoriteRepo
	users     userRepo
	tx        txManager
	notifier  retentionNotifier
	confirm   confirmer

	now func() time.Time
}

// NewSweeper creates a new retention sweeper.
func NewSweeper(
	logger *slog.Logger,
	favorites favoriteRepo,
	users userRepo,
	tx txManager,
	notifier retentionNotifier,
	confirm confirmer,
) *Sweeper {
	return &Sweeper{
		log:       logger.With("service", "cleanup"),
		favorites: favorites,
		users:     users,
		tx:        tx,
		notifier:  notifier,
		confirm:   confirm,
		now:       time.Now,
	}
}
