package usecase

import (
	"context"

	"github.com/Abros3006/business-tracker/internal/domain/entity"

	"github.com/google/uuid"
)

// NavItem is one entry of the persistent navigation.
type NavItem struct {
	Label  string `json:"label"`
	Path   string `json:"path"`
	Action string `json:"action,omitempty"` // "sign_out" for the sign-out control
}

// ShellUser is the signed-in user as shown in the navigation chrome.
type ShellUser struct {
	ID       uuid.UUID   `json:"id"`
	Email    string      `json:"email"`
	FullName string      `json:"full_name,omitempty"`
	Role     entity.Role `json:"role"`
}

// ShellOutput describes the navigation chrome for the current visitor.
type ShellOutput struct {
	SignedIn   bool       `json:"signed_in"`
	User       *ShellUser `json:"user,omitempty"`
	Navigation []NavItem  `json:"navigation"`
}

// SessionUsecase resolves session cookies and exposes session state changes.
type SessionUsecase interface {
	// Resolve returns the live session behind sessionID, refreshing it when its access
	// token is about to expire. Any failure is reported as ErrUnauthorized.
	Resolve(ctx context.Context, sessionID string) (*entity.Session, error)

	// Shell returns signed-in or anonymous navigation for sessionID.
	Shell(ctx context.Context, sessionID string) *ShellOutput

	// Watch streams session changes for userID until ctx ends or release is called.
	Watch(ctx context.Context, userID uuid.UUID) (events <-chan entity.SessionEvent, release func(), err error)
}
