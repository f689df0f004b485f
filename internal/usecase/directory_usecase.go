package usecase

import (
	"context"

	"github.com/Abros3006/business-tracker/internal/domain/entity"

	"github.com/google/uuid"
)

// DirectoryQuery holds the client-side filters of the directory views.
type DirectoryQuery struct {
	Search   string
	Industry string
}

// DirectoryResult is the filtered directory. Degraded is set when the fetch failed
// and an empty list is shown instead.
type DirectoryResult struct {
	Businesses []*entity.Business
	Industries []string
	Total      int
	Degraded   bool
}

// BusinessProfile is the public detail view of one business.
type BusinessProfile struct {
	Business   *entity.Business
	EmbedURL   string // empty when the video link is missing or not embeddable
	ProfileURL string
}

// DirectoryUsecase serves the public read-only views.
type DirectoryUsecase interface {
	ListBusinesses(ctx context.Context, query DirectoryQuery) *DirectoryResult
	Industries(ctx context.Context) ([]string, error)
	GetBusiness(ctx context.Context, id uuid.UUID) (*BusinessProfile, error)
	BusinessQRCode(ctx context.Context, id uuid.UUID) ([]byte, error)
	RecordVisit(ctx context.Context, id uuid.UUID) error
}
