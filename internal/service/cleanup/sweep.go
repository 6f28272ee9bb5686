package cleanup

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/mydictionary/backend/internal/domain"
)

// Sweep selects active favorites older than the threshold and soft-deletes
// them inside one transaction.
//
// Individual delete failures are collected in Report.Errors and do not stop
// the rest of the batch; a transaction infrastructure failure aborts the
// whole batch with zero deletions and a non-nil error. DryRun and a declined
// confirmation both return before any mutation.
func (s *Sweeper) Sweep(ctx context.Context, opts Options) (*Report, error) {
	if opts.ThresholdDays <= 0 {
		return nil, domain.NewValidationError("days", "must be positive")
	}

	cutoff := s.now().AddDate(0, 0, -opts.ThresholdDays)

	favs, err := s.favorites.FindOlderThan(ctx, cutoff)
	if err != nil {
		return nil, fmt.Errorf("find stale favorites: %w", err)
	}

	report := &Report{
		Cutoff:       cutoff,
		TotalChecked: len(favs),
		Groups:       groupByOwner(favs),
	}
	report.AffectedOwners = len(report.Groups)

	if len(favs) == 0 {
		s.log.InfoContext(ctx, "retention sweep: nothing to do",
			slog.Time("cutoff", cutoff))
		return report, nil
	}

	if opts.DryRun {
		s.log.InfoContext(ctx, "retention sweep: dry run",
			slog.Int("total_checked", report.TotalChecked),
			slog.Int("affected_users", report.AffectedOwners),
			slog.Time("cutoff", cutoff),
		)
		return report, nil
	}

	if !opts.Force {
		question := fmt.Sprintf("Soft-delete %d favorites of %d users older than %s?",
			report.TotalChecked, report.AffectedOwners, cutoff.Format("2006-01-02"))
		ok, err := s.confirm.Confirm(ctx, question)
		if err != nil {
			return nil, fmt.Errorf("confirm sweep: %w", err)
		}
		if !ok {
			report.Cancelled = true
			s.log.InfoContext(ctx, "retention sweep cancelled by operator")
			return report, nil
		}
	}

	failed := map[uuid.UUID]bool{}
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		for _, f := range favs {
			if err := s.favorites.SoftDelete(txCtx, f.OwnerID, f.ID); err != nil {
				failed[f.ID] = true
				report.Errors = append(report.Errors, SweepError{
					FavoriteID: f.ID,
					OwnerID:    f.OwnerID,
					Message:    err.Error(),
				})
				continue
			}
			report.DeletedCount++
		}
		return nil
	})
	if err != nil {
		report.DeletedCount = 0
		return nil, fmt.Errorf("sweep transaction: %w", err)
	}

	if opts.Notify {
		s.notifyOwners(ctx, report, failed)
	}

	s.log.InfoContext(ctx, "retention sweep completed",
		slog.Int("total_checked", report.TotalChecked),
		slog.Int("deleted_count", report.DeletedCount),
		slog.Int("affected_users", report.AffectedOwners),
		slog.Int("errors", len(report.Errors)),
		slog.Time("cutoff", cutoff),
	)

	return report, nil
}

// notifyOwners sends one retention notice per owner whose favorites were
// actually deleted. Owners that cannot be resolved are skipped and recorded
// in Report.Errors.
func (s *Sweeper) notifyOwners(ctx context.Context, report *Report, failed map[uuid.UUID]bool) {
	now := s.now()

	for _, g := range report.Groups {
		deleted := make([]domain.Favorite, 0, len(g.Favorites))
		for _, f := range g.Favorites {
			if !failed[f.ID] {
				deleted = append(deleted, f)
			}
		}
		if len(deleted) == 0 {
			continue
		}

		owner, err := s.users.GetByID(ctx, g.OwnerID)
		if err != nil {
			if !errors.Is(err, domain.ErrNotFound) {
				s.log.WarnContext(ctx, "resolve owner for notification",
					slog.String("owner_id", g.OwnerID.String()),
					slog.String("error", err.Error()),
				)
			}
			report.Errors = append(report.Errors, SweepError{
				OwnerID: g.OwnerID,
				Message: fmt.Sprintf("notify: %v", err),
			})
			continue
		}

		// Favorites are ordered oldest first within a group.
		notice := domain.RetentionNotice{
			OwnerID:       owner.ID,
			Email:         owner.Email,
			Name:          owner.Name,
			FavoriteCount: len(deleted),
			OldestAgeDays: deleted[0].AgeDays(now),
			Message: fmt.Sprintf("%d of your favorites were moved to the trash after %s",
				len(deleted), report.Cutoff.Format("2006-01-02")),
		}
		if err := s.notifier.Notify(ctx, notice); err != nil {
			report.Errors = append(report.Errors, SweepError{
				OwnerID: g.OwnerID,
				Message: fmt.Sprintf("notify: %v", err),
			})
		}
	}
}
