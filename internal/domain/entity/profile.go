package entity

import (
	"time"

	"github.com/google/uuid"
)

// Profile is the application-side record of an account. Its ID is the auth user's ID.
// Role is fixed at registration.
type Profile struct {
	ID        uuid.UUID
	FullName  string
	Role      Role
	CreatedAt time.Time
}

// IsAdmin reports whether the profile carries the admin role.
func (p *Profile) IsAdmin() bool {
	return p != nil && p.Role == RoleAdmin
}
