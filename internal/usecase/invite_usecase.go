package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// IssuedInvite carries the plaintext code. It is shown once and never stored.
type IssuedInvite struct {
	ID        uuid.UUID
	Code      string
	ExpiresAt time.Time
}

// InviteUsecase issues admin registration codes.
type InviteUsecase interface {
	IssueAdminInvite(ctx context.Context, adminID uuid.UUID, ttl time.Duration) (*IssuedInvite, error)
}
