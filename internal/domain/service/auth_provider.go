package service

import (
	"context"

	"github.com/Abros3006/business-tracker/internal/domain/entity"

	"github.com/google/uuid"
)

// AuthProvider is the hosted auth service. Credential checks, token issuance,
// refresh and reset e-mails all happen on its side.
type AuthProvider interface {
	// SignIn exchanges email and password for a session.
	SignIn(ctx context.Context, email, password string) (*entity.AuthSession, error)

	// SignUp creates an account. The returned session may be empty when e-mail confirmation is on.
	SignUp(ctx context.Context, email, password string, metadata map[string]any) (*entity.AuthSession, error)

	// SignOut revokes the refresh tokens behind accessToken.
	SignOut(ctx context.Context, accessToken string) error

	// Refresh exchanges a refresh token for a new session.
	Refresh(ctx context.Context, refreshToken string) (*entity.AuthSession, error)

	// GetUser returns the account owning accessToken.
	GetUser(ctx context.Context, accessToken string) (*entity.AuthUser, error)

	// RecoverPassword asks the auth service to send a reset e-mail that links back to redirectTo.
	RecoverPassword(ctx context.Context, email, redirectTo string) error

	// DeleteUser removes the account. It requires the service role key.
	DeleteUser(ctx context.Context, userID uuid.UUID) error
}
