package entity

import (
	"time"

	"github.com/google/uuid"
)

// AuthUser is the account as known to the hosted auth service.
type AuthUser struct {
	ID        uuid.UUID
	Email     string
	CreatedAt time.Time
}

// AuthSession is the token pair issued by the hosted auth service.
type AuthSession struct {
	AccessToken  string
	RefreshToken string
	ExpiresAt    time.Time
	User         AuthUser
}

// Session is the server-side record behind the session cookie.
type Session struct {
	ID           string    `json:"id"`
	UserID       uuid.UUID `json:"user_id"`
	Email        string    `json:"email"`
	Role         Role      `json:"role"`
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	ExpiresAt    time.Time `json:"expires_at"`
	CreatedAt    time.Time `json:"created_at"`
}

// NeedsRefresh reports whether the access token expires within skew of now.
func (s *Session) NeedsRefresh(now time.Time, skew time.Duration) bool {
	return !s.ExpiresAt.IsZero() && now.Add(skew).After(s.ExpiresAt)
}

// SessionEventType enumerates session state transitions.
type SessionEventType string

const (
	SessionSignedIn       SessionEventType = "signed_in"
	SessionSignedOut      SessionEventType = "signed_out"
	SessionTokenRefreshed SessionEventType = "token_refreshed"
)

// SessionEvent is delivered to every observer of a user's session state.
type SessionEvent struct {
	Type       SessionEventType `json:"type"`
	UserID     uuid.UUID        `json:"user_id"`
	SessionID  string           `json:"session_id,omitempty"`
	Redirect   string           `json:"redirect,omitempty"`
	OccurredAt time.Time        `json:"occurred_at"`
}
