// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"github.com/Abros3006/business-tracker/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	// ErrBusinessNotFound is returned when no business matches the lookup.
	ErrBusinessNotFound = errors.New("business not found")
	// ErrDuplicateBusiness is returned when an owner already has a business.
	ErrDuplicateBusiness = errors.New("owner already has a business")
)

// BusinessRepository persists business listings.
type BusinessRepository interface {
	// FindAll returns every business, newest first. Owner names are joined in when withOwner is set.
	FindAll(ctx context.Context, withOwner bool) ([]*entity.Business, error)

	// FindByID returns a single business.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Business, error)

	// FindByOwner returns the businesses owned by ownerID, newest first.
	FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Business, error)

	// FindOneByOwner returns the owner's business or ErrBusinessNotFound.
	FindOneByOwner(ctx context.Context, ownerID uuid.UUID) (*entity.Business, error)

	// Create inserts a business and fills in server-assigned fields.
	Create(ctx context.Context, business *entity.Business) error

	// UpdateDetails overwrites the owner-editable fields of business id.
	UpdateDetails(ctx context.Context, id uuid.UUID, details *entity.BusinessDetails) error

	// DeleteByOwner removes every business owned by ownerID and returns their ids.
	DeleteByOwner(ctx context.Context, ownerID uuid.UUID) ([]uuid.UUID, error)

	// IncrementVisitorCount adds one to the visitor counter.
	IncrementVisitorCount(ctx context.Context, id uuid.UUID) error

	// CountAll returns the total and featured business counts.
	CountAll(ctx context.Context) (total int64, featured int64, err error)
}
