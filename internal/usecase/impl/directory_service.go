package impl

import (
	"context"
	"log/slog"
	"time"

	"github.com/Abros3006/business-tracker/config"
	deliverycontext "github.com/Abros3006/business-tracker/internal/delivery/context"
	"github.com/Abros3006/business-tracker/internal/domain/directory"
	"github.com/Abros3006/business-tracker/internal/domain/entity"
	domainerrors "github.com/Abros3006/business-tracker/internal/domain/errors"
	"github.com/Abros3006/business-tracker/internal/domain/repository"
	"github.com/Abros3006/business-tracker/internal/domain/service"
	"github.com/Abros3006/business-tracker/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// directoryService implements the DirectoryUsecase interface.
type directoryService struct {
	businessRepo repository.BusinessRepository
	qrcode       service.QRCodeService
	notifier     *eventNotifier
	embedOrigin  string
	logger       *slog.Logger
}

// DirectoryServiceParams holds dependencies for DirectoryService, injected by Fx.
type DirectoryServiceParams struct {
	fx.In

	BusinessRepo repository.BusinessRepository
	QRCode       service.QRCodeService
	Publisher    service.EventPublisher
	Config       *config.Config
	Logger       *slog.Logger
}

// NewDirectoryService is the constructor for directoryService.
func NewDirectoryService(params DirectoryServiceParams) usecase.DirectoryUsecase {
	origin := ""
	if site := params.Config.Site; site != nil {
		origin = site.EmbedOrigin
		if origin == "" {
			origin = site.PublicURL
		}
	}

	return &directoryService{
		businessRepo: params.BusinessRepo,
		qrcode:       params.QRCode,
		notifier: &eventNotifier{
			publisher: params.Publisher,
			now:       time.Now,
		},
		embedOrigin: origin,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *directoryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListBusinesses loads the whole directory and filters it in process. A failed load
// yields an empty, degraded result instead of an error.
func (srv *directoryService) ListBusinesses(ctx context.Context, query usecase.DirectoryQuery) *usecase.DirectoryResult {
	businesses, err := srv.businessRepo.FindAll(ctx, false)
	if err != nil {
		srv.log(ctx).Error("Failed to load business directory", slog.Any("error", err))

		return &usecase.DirectoryResult{
			Businesses: []*entity.Business{},
			Industries: []string{},
			Degraded:   true,
		}
	}

	filtered := directory.Filter(businesses, query.Search, query.Industry)

	return &usecase.DirectoryResult{
		Businesses: filtered,
		Industries: directory.Industries(businesses),
		Total:      len(filtered),
	}
}

// Industries returns the industry facet of the full directory.
func (srv *directoryService) Industries(ctx context.Context) ([]string, error) {
	businesses, err := srv.businessRepo.FindAll(ctx, false)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load industries")
	}

	return directory.Industries(businesses), nil
}

// GetBusiness returns the public profile of one business. Every failure looks like not found.
func (srv *directoryService) GetBusiness(ctx context.Context, id uuid.UUID) (*usecase.BusinessProfile, error) {
	business, err := srv.businessRepo.FindByID(ctx, id)
	if err != nil {
		if !errors.Is(err, repository.ErrBusinessNotFound) {
			srv.log(ctx).Error("Failed to load business", slog.String("business_id", id.String()), slog.Any("error", err))
		}

		return nil, errors.Wrap(domainerrors.ErrBusinessNotFound, "business lookup failed")
	}

	profile := &usecase.BusinessProfile{
		Business:   business,
		ProfileURL: srv.qrcode.ProfileURL(business.ID),
	}
	if business.YouTubeVideoURL != nil {
		if embed, ok := directory.YouTubeEmbedURL(*business.YouTubeVideoURL, srv.embedOrigin); ok {
			profile.EmbedURL = embed
		}
	}

	srv.notifier.domainEvent(ctx, srv.log(ctx), service.EventBusinessViewed, forBusiness(business.ID))

	return profile, nil
}

// BusinessQRCode renders the share code of an existing business.
func (srv *directoryService) BusinessQRCode(ctx context.Context, id uuid.UUID) ([]byte, error) {
	if _, err := srv.businessRepo.FindByID(ctx, id); err != nil {
		return nil, errors.Wrap(domainerrors.ErrBusinessNotFound, "business lookup failed")
	}

	png, err := srv.qrcode.BusinessProfileQR(id)
	if err != nil {
		return nil, errors.Wrap(err, "render qr code")
	}

	return png, nil
}

// RecordVisit bumps the visitor counter.
func (srv *directoryService) RecordVisit(ctx context.Context, id uuid.UUID) error {
	if err := srv.businessRepo.IncrementVisitorCount(ctx, id); err != nil {
		if errors.Is(err, repository.ErrBusinessNotFound) {
			return errors.Wrap(domainerrors.ErrBusinessNotFound, "record visit")
		}

		return errors.Wrap(err, "record visit")
	}

	return nil
}
