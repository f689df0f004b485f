package entity

import (
	"time"

	"github.com/google/uuid"
)

// AdminInvite is a one-time code that allows a registration with the admin role.
// Only the bcrypt hash of the code is stored.
type AdminInvite struct {
	ID        uuid.UUID
	CodeHash  string
	CreatedBy uuid.UUID
	ExpiresAt time.Time
	ClaimedBy *uuid.UUID
	ClaimedAt *time.Time
	CreatedAt time.Time
}

// IsUsable reports whether the invite is unclaimed and unexpired at now.
func (i *AdminInvite) IsUsable(now time.Time) bool {
	return i.ClaimedBy == nil && now.Before(i.ExpiresAt)
}
