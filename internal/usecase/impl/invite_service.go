package impl

import (
	"context"
	"crypto/rand"
	"log/slog"
	"time"

	"github.com/Abros3006/business-tracker/config"
	deliverycontext "github.com/Abros3006/business-tracker/internal/delivery/context"
	"github.com/Abros3006/business-tracker/internal/domain/entity"
	domainerrors "github.com/Abros3006/business-tracker/internal/domain/errors"
	"github.com/Abros3006/business-tracker/internal/domain/repository"
	"github.com/Abros3006/business-tracker/internal/domain/service"
	"github.com/Abros3006/business-tracker/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultInviteTTL = 72 * time.Hour
	maxInviteTTL     = 30 * 24 * time.Hour
)

// inviteService implements the InviteUsecase interface.
type inviteService struct {
	profileRepo repository.ProfileRepository
	inviteRepo  repository.InviteRepository
	hasher      service.SecretHasher
	defaultTTL  time.Duration
	logger      *slog.Logger
	now         func() time.Time
	newCode     func() string
}

// InviteServiceParams holds dependencies for InviteService, injected by Fx.
type InviteServiceParams struct {
	fx.In

	ProfileRepo repository.ProfileRepository
	InviteRepo  repository.InviteRepository
	Hasher      service.SecretHasher
	Config      *config.Config
	Logger      *slog.Logger
}

// NewInviteService is the constructor for inviteService.
func NewInviteService(params InviteServiceParams) usecase.InviteUsecase {
	ttl := defaultInviteTTL
	if params.Config.Invite != nil && params.Config.Invite.DefaultTTL > 0 {
		ttl = params.Config.Invite.DefaultTTL
	}

	return &inviteService{
		profileRepo: params.ProfileRepo,
		inviteRepo:  params.InviteRepo,
		hasher:      params.Hasher,
		defaultTTL:  ttl,
		logger:      params.Logger,
		now:         time.Now,
		newCode:     rand.Text,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *inviteService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// IssueAdminInvite stores the hash of a fresh code and returns the code once.
func (srv *inviteService) IssueAdminInvite(ctx context.Context, adminID uuid.UUID, ttl time.Duration) (*usecase.IssuedInvite, error) {
	admin, err := srv.profileRepo.FindByID(ctx, adminID)
	if err != nil || !admin.IsAdmin() {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "only admins can issue invites")
	}

	if ttl <= 0 {
		ttl = srv.defaultTTL
	}
	if ttl > maxInviteTTL {
		return nil, domainerrors.ErrValidationFailed.WithDetails("invite lifetime is too long")
	}

	code := srv.newCode()
	hash, err := srv.hasher.Hash(code)
	if err != nil {
		return nil, errors.Wrap(err, "hash invite code")
	}

	invite := &entity.AdminInvite{
		CodeHash:  hash,
		CreatedBy: adminID,
		ExpiresAt: srv.now().UTC().Add(ttl),
	}
	if err := srv.inviteRepo.Create(ctx, invite); err != nil {
		return nil, errors.Wrap(err, "store invite")
	}

	srv.log(ctx).Info("Admin invite issued",
		slog.String("invite_id", invite.ID.String()),
		slog.String("created_by", adminID.String()),
	)

	return &usecase.IssuedInvite{
		ID:        invite.ID,
		Code:      code,
		ExpiresAt: invite.ExpiresAt,
	}, nil
}
