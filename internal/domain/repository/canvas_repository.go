package repository

import (
	"context"
	"errors"

	"github.com/Abros3006/business-tracker/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrCanvasNotFound is returned when a business has no canvas of the requested kind yet.
var ErrCanvasNotFound = errors.New("canvas not found")

// CanvasRepository persists both canvas kinds. At most one canvas of each kind exists per business.
type CanvasRepository interface {
	// FindByBusiness returns the canvas of kind attached to businessID.
	FindByBusiness(ctx context.Context, kind entity.CanvasKind, businessID uuid.UUID) (*entity.Canvas, error)

	// Upsert inserts the canvas or, when one exists for the business, overwrites it and
	// refreshes updated_at. The storage layer decides which.
	Upsert(ctx context.Context, canvas *entity.Canvas) error

	// DeleteByBusinesses removes canvases of both kinds for the given businesses.
	DeleteByBusinesses(ctx context.Context, businessIDs []uuid.UUID) error
}
