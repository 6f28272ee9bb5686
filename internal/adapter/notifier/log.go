// Package notifier delivers retention notices to owners. The log notifier
// writes each notice to the structured log; a mail or push implementation
// can replace it behind the same method set.
package notifier

import (
	"context"
	"log/slog"

	"github.com/mydictionary/backend/internal/domain"
)

// LogNotifier emits retention notices as structured log records.
type LogNotifier struct {
	log *slog.Logger
}

// NewLogNotifier creates a notifier that logs instead of delivering.
func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{log: logger.With("component", "notifier")}
}

// Notify records the retention notice for one owner.
func (n *LogNotifier) Notify(ctx context.Context, notice domain.RetentionNotice) error {
	n.log.InfoContext(ctx, "retention notice",
		slog.String("owner_id", notice.OwnerID.String()),
		slog.String("email", notice.Email),
		slog.Int("favorite_count", notice.FavoriteCount),
		slog.Int("oldest_age_days", notice.OldestAgeDays),
		slog.String("message", notice.Message),
	)
	return nil
}
