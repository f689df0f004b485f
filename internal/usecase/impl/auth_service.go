package impl

import (
	"context"
	"crypto/rand"
	"log/slog"
	"strings"
	"time"

	"github.com/Abros3006/business-tracker/config"
	deliverycontext "github.com/Abros3006/business-tracker/internal/delivery/context"
	"github.com/Abros3006/business-tracker/internal/domain/constants"
	"github.com/Abros3006/business-tracker/internal/domain/entity"
	domainerrors "github.com/Abros3006/business-tracker/internal/domain/errors"
	"github.com/Abros3006/business-tracker/internal/domain/repository"
	"github.com/Abros3006/business-tracker/internal/domain/service"
	"github.com/Abros3006/business-tracker/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Login outcomes recorded by the metrics recorder.
const (
	loginInvalidCredentials = "invalid_credentials"
	loginProfileError       = "profile_error"
	loginRoleMismatch       = "role_mismatch"
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager   repository.TransactionManager
	profileRepo repository.ProfileRepository
	inviteRepo  repository.InviteRepository
	provider    service.AuthProvider
	store       service.SessionStore
	hasher      service.SecretHasher
	metrics     service.MetricsRecorder
	notifier    *eventNotifier
	resetURL    string
	logger      *slog.Logger
	now         func() time.Time
	newID       func() string
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	ProfileRepo repository.ProfileRepository
	InviteRepo  repository.InviteRepository
	Provider    service.AuthProvider
	Store       service.SessionStore
	Hasher      service.SecretHasher
	Metrics     service.MetricsRecorder
	Config      *config.Config
	Logger      *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		txManager:   params.TxManager,
		profileRepo: params.ProfileRepo,
		inviteRepo:  params.InviteRepo,
		provider:    params.Provider,
		store:       params.Store,
		hasher:      params.Hasher,
		metrics:     params.Metrics,
		notifier: &eventNotifier{
			store:   params.Store,
			metrics: params.Metrics,
			now:     time.Now,
		},
		resetURL: passwordResetURL(params.Config),
		logger:   params.Logger,
		now:      time.Now,
		newID:    rand.Text,
	}
}

func passwordResetURL(cfg *config.Config) string {
	if cfg == nil || cfg.Site == nil {
		return ""
	}

	return strings.TrimRight(cfg.Site.PublicURL, "/") + cfg.Site.PasswordResetPath
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login signs in at the provider and only keeps the session when the stored profile
// role equals the role selected on the form.
func (srv *authService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	if !input.Role.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("select a role before signing in")
	}

	authSession, err := srv.provider.SignIn(ctx, input.Email, input.Password)
	if err != nil {
		if errors.Is(err, domainerrors.ErrInvalidCredentials) {
			srv.metrics.RecordLogin(loginInvalidCredentials)
		}

		return nil, errors.Wrap(err, "sign in")
	}

	profile, err := srv.profileRepo.FindByID(ctx, authSession.User.ID)
	if err != nil {
		srv.log(ctx).Warn("Profile lookup failed after sign in",
			slog.String("user_id", authSession.User.ID.String()),
			slog.Any("error", err),
		)
		srv.signOutQuietly(ctx, authSession.AccessToken)
		srv.metrics.RecordLogin(loginProfileError)

		return nil, errors.Wrap(domainerrors.ErrProfileFetchFailed, err.Error())
	}

	if profile.Role != input.Role {
		srv.log(ctx).Info("Login role mismatch",
			slog.String("user_id", profile.ID.String()),
			slog.String("selected_role", input.Role.String()),
		)
		srv.signOutQuietly(ctx, authSession.AccessToken)
		srv.metrics.RecordLogin(loginRoleMismatch)

		return nil, domainerrors.NewRoleMismatchError(input.Role.String())
	}

	session := &entity.Session{
		ID:           srv.newID(),
		UserID:       authSession.User.ID,
		Email:        authSession.User.Email,
		Role:         profile.Role,
		AccessToken:  authSession.AccessToken,
		RefreshToken: authSession.RefreshToken,
		ExpiresAt:    authSession.ExpiresAt,
		CreatedAt:    srv.now().UTC(),
	}
	if err := srv.store.Save(ctx, session); err != nil {
		srv.signOutQuietly(ctx, authSession.AccessToken)
		srv.metrics.RecordLogin(service.OutcomeFailure)

		return nil, errors.Wrap(err, "store session")
	}

	srv.notifier.sessionChanged(ctx, srv.log(ctx), entity.SessionSignedIn, session.UserID, session.ID)
	srv.metrics.RecordLogin(service.OutcomeSuccess)

	return &usecase.LoginOutput{
		Session:  session,
		Profile:  profile,
		Redirect: constants.DashboardPath,
	}, nil
}

// Register creates the account and its profile. Admin registrations must present a
// usable invite code, checked before the provider is contacted.
func (srv *authService) Register(ctx context.Context, input usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	if !input.Role.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("role must be admin or student")
	}

	var invite *entity.AdminInvite
	if input.Role == entity.RoleAdmin {
		matched, err := srv.matchInvite(ctx, input.AdminCode)
		if err != nil {
			return nil, err
		}
		invite = matched
	}

	authSession, err := srv.provider.SignUp(ctx, input.Email, input.Password, map[string]any{
		"full_name": input.FullName,
		"role":      input.Role.String(),
	})
	if err != nil {
		return nil, errors.Wrap(err, "sign up")
	}

	userID := authSession.User.ID
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.ProfileRepo().Create(ctx, &entity.Profile{
			ID:       userID,
			FullName: input.FullName,
			Role:     input.Role,
		}); err != nil {
			return errors.Wrap(domainerrors.ErrProfileCreationFailed, err.Error())
		}

		if invite != nil {
			if err := repoFactory.InviteRepo().Claim(ctx, invite.ID, userID, srv.now().UTC()); err != nil {
				if errors.Is(err, repository.ErrInviteAlreadyClaimed) {
					return errors.Wrap(domainerrors.ErrInvalidAdminCode, "invite claimed concurrently")
				}

				return errors.Wrap(err, "claim invite")
			}
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Registration failed after sign up",
			slog.String("user_id", userID.String()),
			slog.Any("error", err),
		)
		srv.signOutQuietly(ctx, authSession.AccessToken)

		return nil, errors.Wrap(err, "failed to execute registration transaction")
	}

	srv.log(ctx).Info("Account registered",
		slog.String("user_id", userID.String()),
		slog.String("role", input.Role.String()),
	)

	return &usecase.RegisterOutput{
		UserID:   userID,
		Email:    authSession.User.Email,
		Role:     input.Role,
		Redirect: constants.LoginPath,
	}, nil
}

func (srv *authService) matchInvite(ctx context.Context, code string) (*entity.AdminInvite, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, domainerrors.ErrInvalidAdminCode.WithDetails("an admin code is required")
	}

	now := srv.now().UTC()
	invites, err := srv.inviteRepo.FindUsable(ctx, now)
	if err != nil {
		return nil, errors.Wrap(err, "load admin invites")
	}

	for _, invite := range invites {
		if invite.IsUsable(now) && srv.hasher.Check(code, invite.CodeHash) {
			return invite, nil
		}
	}

	return nil, domainerrors.ErrInvalidAdminCode
}

// Logout ends the session. It always lands on the landing page.
func (srv *authService) Logout(ctx context.Context, sessionID string) *usecase.LogoutOutput {
	output := &usecase.LogoutOutput{Redirect: constants.LandingPath}
	if sessionID == "" {
		return output
	}

	session, err := srv.store.Get(ctx, sessionID)
	if err != nil {
		if !errors.Is(err, service.ErrSessionNotFound) {
			srv.log(ctx).Warn("Session lookup failed during sign out", slog.Any("error", err))
		}

		return output
	}

	srv.signOutQuietly(ctx, session.AccessToken)

	if err := srv.store.Delete(ctx, session.ID); err != nil {
		srv.log(ctx).Warn("Failed to delete session during sign out", slog.Any("error", err))
	}
	srv.notifier.sessionChanged(ctx, srv.log(ctx), entity.SessionSignedOut, session.UserID, session.ID)

	return output
}

// RequestPasswordReset asks the provider for a reset e-mail. Only rate limiting is
// reported; every other outcome looks the same to the caller.
func (srv *authService) RequestPasswordReset(ctx context.Context, input usecase.PasswordResetInput) error {
	err := srv.provider.RecoverPassword(ctx, input.Email, srv.resetURL)
	if err == nil {
		return nil
	}

	if errors.Is(err, domainerrors.ErrRateLimited) {
		return errors.Wrap(err, "password reset")
	}

	srv.log(ctx).Warn("Password reset request failed", slog.Any("error", err))

	return nil
}

func (srv *authService) signOutQuietly(ctx context.Context, accessToken string) {
	if accessToken == "" {
		return
	}
	if err := srv.provider.SignOut(ctx, accessToken); err != nil {
		srv.log(ctx).Warn("Provider sign out failed", slog.Any("error", err))
	}
}
