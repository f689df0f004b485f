package repository

import (
	"context"
	"errors"
	"time"

	"github.com/Abros3006/business-tracker/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrInviteAlreadyClaimed is returned when a concurrent registration claimed the invite first.
var ErrInviteAlreadyClaimed = errors.New("invite already claimed")

// InviteRepository persists admin invites.
type InviteRepository interface {
	// Create stores a new invite.
	Create(ctx context.Context, invite *entity.AdminInvite) error

	// FindUsable returns the unclaimed invites that have not expired at now.
	FindUsable(ctx context.Context, now time.Time) ([]*entity.AdminInvite, error)

	// Claim marks the invite as used by userID. It returns ErrInviteAlreadyClaimed when
	// the invite is no longer unclaimed.
	Claim(ctx context.Context, inviteID, userID uuid.UUID, at time.Time) error
}
