// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"time"

	"github.com/Abros3006/business-tracker/config"
	deliverycontext "github.com/Abros3006/business-tracker/internal/delivery/context"
	"github.com/Abros3006/business-tracker/internal/domain/constants"
	"github.com/Abros3006/business-tracker/internal/domain/entity"
	domainerrors "github.com/Abros3006/business-tracker/internal/domain/errors"
	"github.com/Abros3006/business-tracker/internal/domain/repository"
	"github.com/Abros3006/business-tracker/internal/domain/service"
	"github.com/Abros3006/business-tracker/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultRefreshSkew = time.Minute

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	store       service.SessionStore
	provider    service.AuthProvider
	verifier    service.TokenVerifier
	profileRepo repository.ProfileRepository
	notifier    *eventNotifier
	refreshSkew time.Duration
	logger      *slog.Logger
	now         func() time.Time
}

// SessionServiceParams holds dependencies for SessionService, injected by Fx.
type SessionServiceParams struct {
	fx.In

	Store       service.SessionStore
	Provider    service.AuthProvider
	Verifier    service.TokenVerifier
	ProfileRepo repository.ProfileRepository
	Metrics     service.MetricsRecorder
	Config      *config.Config
	Logger      *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(params SessionServiceParams) usecase.SessionUsecase {
	skew := defaultRefreshSkew
	if params.Config != nil && params.Config.Session != nil && params.Config.Session.RefreshSkew > 0 {
		skew = params.Config.Session.RefreshSkew
	}

	return &sessionService{
		store:       params.Store,
		provider:    params.Provider,
		verifier:    params.Verifier,
		profileRepo: params.ProfileRepo,
		notifier: &eventNotifier{
			store:   params.Store,
			metrics: params.Metrics,
			now:     time.Now,
		},
		refreshSkew: skew,
		logger:      params.Logger,
		now:         time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Resolve returns the live session behind sessionID.
func (srv *sessionService) Resolve(ctx context.Context, sessionID string) (*entity.Session, error) {
	if sessionID == "" {
		return nil, domainerrors.ErrUnauthorized
	}

	session, err := srv.store.Get(ctx, sessionID)
	if err != nil {
		if !errors.Is(err, service.ErrSessionNotFound) {
			srv.log(ctx).Warn("Session lookup failed", slog.Any("error", err))
		}

		return nil, errors.Wrap(domainerrors.ErrUnauthorized, "session lookup failed")
	}

	if session.NeedsRefresh(srv.now(), srv.refreshSkew) {
		if err := srv.refresh(ctx, session); err != nil {
			srv.log(ctx).Info("Session refresh failed, signing out",
				slog.String("user_id", session.UserID.String()),
				slog.Any("error", err),
			)
			srv.drop(ctx, session)

			return nil, errors.Wrap(domainerrors.ErrUnauthorized, "session refresh failed")
		}
	}

	claims, err := srv.verifier.Verify(session.AccessToken)
	if err != nil || claims.UserID != session.UserID {
		srv.log(ctx).Warn("Stored access token rejected",
			slog.String("user_id", session.UserID.String()),
			slog.Any("error", err),
		)
		srv.drop(ctx, session)

		return nil, errors.Wrap(domainerrors.ErrUnauthorized, "access token rejected")
	}

	return session, nil
}

func (srv *sessionService) refresh(ctx context.Context, session *entity.Session) error {
	if session.RefreshToken == "" {
		return errors.New("session has no refresh token")
	}

	refreshed, err := srv.provider.Refresh(ctx, session.RefreshToken)
	if err != nil {
		return errors.Wrap(err, "provider refresh")
	}
	if refreshed.User.ID != uuid.Nil && refreshed.User.ID != session.UserID {
		return errors.New("refreshed session belongs to another user")
	}

	if err := srv.confirmAccount(ctx, session, refreshed.AccessToken); err != nil {
		return err
	}

	session.AccessToken = refreshed.AccessToken
	if refreshed.RefreshToken != "" {
		session.RefreshToken = refreshed.RefreshToken
	}
	session.ExpiresAt = refreshed.ExpiresAt

	if err := srv.store.Save(ctx, session); err != nil {
		return errors.Wrap(err, "store refreshed session")
	}

	srv.notifier.sessionChanged(ctx, srv.log(ctx), entity.SessionTokenRefreshed, session.UserID, session.ID)

	return nil
}

// confirmAccount asks the auth service whether the account behind a freshly
// refreshed token still exists, and picks up a changed e-mail address.
// Only a definite rejection ends the session; an unreachable provider does not.
func (srv *sessionService) confirmAccount(ctx context.Context, session *entity.Session, accessToken string) error {
	account, err := srv.provider.GetUser(ctx, accessToken)
	if err != nil {
		if errors.Is(err, domainerrors.ErrUnauthorized) {
			return errors.Wrap(err, "account lookup")
		}

		srv.log(ctx).Warn("Account lookup after refresh failed, keeping session",
			slog.String("user_id", session.UserID.String()),
			slog.Any("error", err),
		)

		return nil
	}

	if account.ID != session.UserID {
		return errors.New("refreshed token belongs to another account")
	}
	if account.Email != "" {
		session.Email = account.Email
	}

	return nil
}

// drop removes a session that can no longer be used and tells its observers.
func (srv *sessionService) drop(ctx context.Context, session *entity.Session) {
	if err := srv.store.Delete(ctx, session.ID); err != nil {
		srv.log(ctx).Warn("Failed to delete stale session", slog.Any("error", err))
	}
	srv.notifier.sessionChanged(ctx, srv.log(ctx), entity.SessionSignedOut, session.UserID, session.ID)
}

// Shell returns the navigation chrome for the visitor behind sessionID.
func (srv *sessionService) Shell(ctx context.Context, sessionID string) *usecase.ShellOutput {
	session, err := srv.Resolve(ctx, sessionID)
	if err != nil {
		return &usecase.ShellOutput{
			SignedIn:   false,
			Navigation: anonymousNavigation(),
		}
	}

	user := &usecase.ShellUser{
		ID:    session.UserID,
		Email: session.Email,
		Role:  session.Role,
	}
	if profile, err := srv.profileRepo.FindByID(ctx, session.UserID); err == nil {
		user.FullName = profile.FullName
	}

	return &usecase.ShellOutput{
		SignedIn:   true,
		User:       user,
		Navigation: signedInNavigation(),
	}
}

// Watch streams session changes of userID.
func (srv *sessionService) Watch(ctx context.Context, userID uuid.UUID) (<-chan entity.SessionEvent, func(), error) {
	events, release, err := srv.store.Subscribe(ctx, userID)
	if err != nil {
		return nil, nil, errors.Wrap(err, "subscribe to session events")
	}

	return events, release, nil
}

func anonymousNavigation() []usecase.NavItem {
	return []usecase.NavItem{
		{Label: "Home", Path: constants.LandingPath},
		{Label: "Businesses", Path: "/businesses"},
		{Label: "Sign in", Path: constants.LoginPath},
		{Label: "Register", Path: "/register"},
	}
}

func signedInNavigation() []usecase.NavItem {
	return []usecase.NavItem{
		{Label: "Home", Path: constants.LandingPath},
		{Label: "Businesses", Path: "/businesses"},
		{Label: "Dashboard", Path: constants.DashboardPath},
		{Label: "Manage", Path: constants.ManagePath},
		{Label: "Sign out", Path: constants.LandingPath, Action: "sign_out"},
	}
}
