package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is an application account that owns favorites. Authentication and
// registration happen outside this service; users are referenced here only
// as favorite owners and notification recipients.
type User struct {
	ID        uuid.UUID
	Email     string
	Name      string
	CreatedAt time.Time
}
