package cleanup

import (
	"time"

	"github.com/google/uuid"

	"github.com/mydictionary/backend/internal/domain"
)

// Options configures a single sweep run.
type Options struct {
	// ThresholdDays is the retention window: active favorites created more
	// than this many days ago are eligible for deletion.
	ThresholdDays int
	// DryRun selects and reports the eligible set without mutating anything.
	DryRun bool
	// Notify sends each affected owner a retention notice after deletion.
	Notify bool
	// Force skips the interactive confirmation.
	Force bool
}

// OwnerGroup holds the eligible favorites of one owner, in created_at order.
type OwnerGroup struct {
	OwnerID   uuid.UUID
	Favorites []domain.Favorite
}

// SweepError records one per-record or per-owner failure inside a sweep.
// Failures are accumulated, never silently dropped.
type SweepError struct {
	FavoriteID uuid.UUID
	OwnerID    uuid.UUID
	Message    string
}

// Report is the outcome of one sweep run.
type Report struct {
	Cutoff         time.Time
	TotalChecked   int
	DeletedCount   int
	AffectedOwners int
	// Cancelled is set when the operator declined the confirmation; a
	// cancelled sweep mutates nothing.
	Cancelled bool
	Groups    []OwnerGroup
	Errors    []SweepError
}

// groupByOwner splits favorites into per-owner groups, preserving the order
// in which owners first appear.
func groupByOwner(favs []domain.Favorite) []OwnerGroup {
	index := map[uuid.UUID]int{}
	groups := []OwnerGroup{}
	for _, f := range favs {
		i, ok := index[f.OwnerID]
		if !ok {
			i = len(groups)
			index[f.OwnerID] = i
			groups = append(groups, OwnerGroup{OwnerID: f.OwnerID})
		}
		groups[i].Favorites = append(groups[i].Favorites, f)
	}
	return groups
}
