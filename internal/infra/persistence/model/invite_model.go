package model

import (
	"time"

	"github.com/google/uuid"
)

// AdminInviteModel is the GORM-specific struct for the 'admin_invites' table.
type AdminInviteModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	CodeHash  string     `gorm:"type:text;not null"`
	CreatedBy uuid.UUID  `gorm:"type:uuid;not null"`
	ExpiresAt time.Time  `gorm:"not null;index"`
	ClaimedBy *uuid.UUID `gorm:"type:uuid"`
	ClaimedAt *time.Time
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (AdminInviteModel) TableName() string {
	return "admin_invites"
}
