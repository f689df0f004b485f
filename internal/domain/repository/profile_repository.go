package repository

import (
	"context"
	"errors"

	"github.com/Abros3006/business-tracker/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	// ErrProfileNotFound is returned when no profile matches the lookup.
	ErrProfileNotFound = errors.New("profile not found")
	// ErrDuplicateProfile is returned when a profile already exists for the account.
	ErrDuplicateProfile = errors.New("profile already exists")
)

// ProfileRepository persists application profiles.
type ProfileRepository interface {
	// FindByID retrieves a profile by the auth user id.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Profile, error)

	// FindAll returns every profile, newest first.
	FindAll(ctx context.Context) ([]*entity.Profile, error)

	// Create inserts a profile created at registration.
	Create(ctx context.Context, profile *entity.Profile) error

	// Delete removes a profile. It returns ErrProfileNotFound when nothing was deleted.
	Delete(ctx context.Context, id uuid.UUID) error

	// Count returns the number of profiles.
	Count(ctx context.Context) (int64, error)
}
