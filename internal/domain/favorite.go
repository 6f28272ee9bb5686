package domain

import (
	"time"

	"github.com/google/uuid"
)

// Favorite is a word saved by a user, with an optional personal note.
// A favorite supports a soft-delete lifecycle: active favorites have a nil
// DeletedAt; trashed favorites carry the deletion timestamp and can be
// restored or purged.
type Favorite struct {
	ID        uuid.UUID  `json:"id"`
	OwnerID   uuid.UUID  `json:"user_id"`
	Word      string     `json:"word"`
	Note      *string    `json:"note"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
}

// IsTrashed returns true if the favorite has been soft-deleted.
func (f *Favorite) IsTrashed() bool {
	return f.DeletedAt != nil
}

// AgeDays returns the whole number of days since the favorite was created.
func (f *Favorite) AgeDays(now time.Time) int {
	return int(now.Sub(f.CreatedAt).Hours() / 24)
}
