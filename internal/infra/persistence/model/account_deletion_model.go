package model

import (
	"time"

	"github.com/google/uuid"
)

// AccountDeletionModel is the GORM-specific struct for the 'account_deletions' outbox table.
type AccountDeletionModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index"`
	RequestedBy uuid.UUID `gorm:"type:uuid;not null"`
	Status      string    `gorm:"type:text;not null;default:'pending';index"`
	Attempts    int       `gorm:"not null;default:0"`
	LastError   string    `gorm:"type:text;not null;default:''"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (AccountDeletionModel) TableName() string {
	return "account_deletions"
}
