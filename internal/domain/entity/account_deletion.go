package entity

import (
	"time"

	"github.com/google/uuid"
)

// DeletionStatus tracks removal of the auth account after its data is gone.
type DeletionStatus string

const (
	DeletionPending DeletionStatus = "pending"
	DeletionDone    DeletionStatus = "done"
)

// AccountDeletion is the outbox row written in the same transaction that removes
// a user's businesses, canvases and profile. The auth account is removed afterwards.
type AccountDeletion struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	RequestedBy uuid.UUID
	Status      DeletionStatus
	Attempts    int
	LastError   string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
