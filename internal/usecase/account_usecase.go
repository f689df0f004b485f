package usecase

import (
	"context"

	"github.com/google/uuid"
)

// DeleteUserOutput reports how far the cascade got. AccountDeleted is false when the
// data was removed but the auth account removal is still pending a retry.
type DeleteUserOutput struct {
	UserID         uuid.UUID
	AccountDeleted bool
}

// RetryOutput summarizes one pass over pending deletions.
type RetryOutput struct {
	Attempted int
	Completed int
	Failed    int
}

// AccountUsecase removes users and everything they own.
type AccountUsecase interface {
	DeleteUser(ctx context.Context, actorID, targetID uuid.UUID) (*DeleteUserOutput, error)
	RetryPendingDeletions(ctx context.Context) (*RetryOutput, error)
}
