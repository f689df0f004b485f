package repository

import (
	"context"

	"github.com/Abros3006/business-tracker/internal/domain/entity"

	"github.com/google/uuid"
)

// AccountDeletionRepository persists the deletion outbox.
type AccountDeletionRepository interface {
	// Create stores a pending deletion.
	Create(ctx context.Context, deletion *entity.AccountDeletion) error

	// FindPending returns pending deletions with fewer than maxAttempts attempts, oldest first.
	FindPending(ctx context.Context, maxAttempts, limit int) ([]*entity.AccountDeletion, error)

	// MarkDone flags the deletion as complete.
	MarkDone(ctx context.Context, id uuid.UUID) error

	// RecordFailure increments attempts and stores the failure reason.
	RecordFailure(ctx context.Context, id uuid.UUID, reason string) error
}
