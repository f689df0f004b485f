package service

import (
	"context"
	"errors"

	"github.com/Abros3006/business-tracker/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrSessionNotFound is returned when a session id is unknown or expired.
var ErrSessionNotFound = errors.New("session not found")

// SessionStore is the single holder of session state. The route guard, the shell
// and the session stream all read from it.
type SessionStore interface {
	// Save stores session under session.ID until its TTL elapses.
	Save(ctx context.Context, session *entity.Session) error

	// Get returns the session stored under id or ErrSessionNotFound.
	Get(ctx context.Context, id string) (*entity.Session, error)

	// Delete removes the session stored under id. Deleting a missing session is not an error.
	Delete(ctx context.Context, id string) error

	// DeleteByUser removes every session belonging to userID.
	DeleteByUser(ctx context.Context, userID uuid.UUID) error

	// Publish fans event out to every subscriber of event.UserID.
	Publish(ctx context.Context, event entity.SessionEvent) error

	// Subscribe streams events for userID until ctx is done or the returned cancel func is called.
	// The channel is closed once the subscription is released.
	Subscribe(ctx context.Context, userID uuid.UUID) (<-chan entity.SessionEvent, func(), error)
}
