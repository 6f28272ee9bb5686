package domain

import "github.com/google/uuid"

// RetentionNotice tells one owner that their stale favorites were moved to
// the trash by the retention sweep.
type RetentionNotice struct {
	OwnerID       uuid.UUID
	Email         string
	Name          string
	FavoriteCount int
	OldestAgeDays int
	Message       string
}
