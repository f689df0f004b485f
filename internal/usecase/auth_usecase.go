// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"github.com/Abros3006/business-tracker/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// LoginInput carries the credentials and the role selected on the login form.
type LoginInput struct {
	Email    string
	Password string
	Role     entity.Role
}

// RegisterInput defines the data required to register a new account.
// AdminCode is required when Role is admin.
type RegisterInput struct {
	Email     string
	Password  string
	FullName  string
	Role      entity.Role
	AdminCode string
}

// PasswordResetInput requests a reset e-mail.
type PasswordResetInput struct {
	Email string
}

// --- Output DTOs ---

// LoginOutput is returned after a role-checked sign in. Session is already stored.
type LoginOutput struct {
	Session  *entity.Session
	Profile  *entity.Profile
	Redirect string
}

// RegisterOutput returns the newly created account. Registration does not sign in.
type RegisterOutput struct {
	UserID   uuid.UUID
	Email    string
	Role     entity.Role
	Redirect string
}

// LogoutOutput tells the client where to go after signing out.
type LogoutOutput struct {
	Redirect string
}

// AuthUsecase defines the account entry points: login, registration, logout and password reset.
type AuthUsecase interface {
	Login(ctx context.Context, input LoginInput) (*LoginOutput, error)
	Register(ctx context.Context, input RegisterInput) (*RegisterOutput, error)
	// Logout never fails; provider errors are logged.
	Logout(ctx context.Context, sessionID string) *LogoutOutput
	RequestPasswordReset(ctx context.Context, input PasswordResetInput) error
}
