package impl

import (
	"context"
	"testing"
	"time"

	"github.com/Abros3006/business-tracker/internal/domain/entity"
	domainerrors "github.com/Abros3006/business-tracker/internal/domain/errors"
	"github.com/Abros3006/business-tracker/internal/domain/repository"
	mockRepo "github.com/Abros3006/business-tracker/internal/mocks/repository"
	mockSvc "github.com/Abros3006/business-tracker/internal/mocks/service"
	"github.com/Abros3006/business-tracker/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type authFixture struct {
	service     *authService
	txManager   *mockRepo.MockTransactionManager
	profileRepo *mockRepo.MockProfileRepository
	inviteRepo  *mockRepo.MockInviteRepository
	provider    *mockSvc.MockAuthProvider
	store       *mockSvc.MockSessionStore
	hasher      *mockSvc.MockSecretHasher
	metrics     *recordingMetrics
	now         time.Time
}

func createTestAuthService(t *testing.T) *authFixture {
	t.Helper()

	fx := &authFixture{
		txManager:   mockRepo.NewMockTransactionManager(t),
		profileRepo: mockRepo.NewMockProfileRepository(t),
		inviteRepo:  mockRepo.NewMockInviteRepository(t),
		provider:    mockSvc.NewMockAuthProvider(t),
		store:       mockSvc.NewMockSessionStore(t),
		hasher:      mockSvc.NewMockSecretHasher(t),
		metrics:     newRecordingMetrics(),
		now:         time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}

	fx.service = NewAuthService(AuthServiceParams{
		TxManager:   fx.txManager,
		ProfileRepo: fx.profileRepo,
		InviteRepo:  fx.inviteRepo,
		Provider:    fx.provider,
		Store:       fx.store,
		Hasher:      fx.hasher,
		Metrics:     fx.metrics,
		Config:      newTestConfig(),
		Logger:      newDiscardLogger(),
	}).(*authService)
	fx.service.now = func() time.Time { return fx.now }
	fx.service.notifier.now = fx.service.now
	fx.service.newID = func() string { return "session-1" }

	return fx
}

func authSessionFor(userID uuid.UUID) *entity.AuthSession {
	return &entity.AuthSession{
		AccessToken:  "access",
		RefreshToken: "refresh",
		ExpiresAt:    time.Date(2026, 3, 1, 13, 0, 0, 0, time.UTC),
		User:         entity.AuthUser{ID: userID, Email: "ada@example.com"},
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	userID := uuid.New()
	profile := &entity.Profile{ID: userID, FullName: "Ada", Role: entity.RoleStudent}

	fx.provider.EXPECT().SignIn(ctx, "ada@example.com", "secret1").Return(authSessionFor(userID), nil)
	fx.profileRepo.EXPECT().FindByID(ctx, userID).Return(profile, nil)
	fx.store.EXPECT().Save(ctx, mock.MatchedBy(func(s *entity.Session) bool {
		return s.ID == "session-1" && s.UserID == userID && s.Role == entity.RoleStudent && s.AccessToken == "access"
	})).Return(nil)
	fx.store.EXPECT().Publish(ctx, mock.MatchedBy(func(e entity.SessionEvent) bool {
		return e.Type == entity.SessionSignedIn && e.UserID == userID
	})).Return(nil)

	out, err := fx.service.Login(ctx, usecase.LoginInput{Email: "ada@example.com", Password: "secret1", Role: entity.RoleStudent})

	require.NoError(t, err)
	assert.Equal(t, "/dashboard", out.Redirect)
	assert.Equal(t, profile, out.Profile)
	assert.Equal(t, "session-1", out.Session.ID)
	assert.Equal(t, 1, fx.metrics.logins["success"])
	assert.Equal(t, 1, fx.metrics.sessionEvents["signed_in"])
}

func TestAuthService_Login_RoleMismatchSignsOut(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.provider.EXPECT().SignIn(ctx, "ada@example.com", "secret1").Return(authSessionFor(userID), nil)
	fx.profileRepo.EXPECT().FindByID(ctx, userID).Return(&entity.Profile{ID: userID, Role: entity.RoleStudent}, nil)
	fx.provider.EXPECT().SignOut(ctx, "access").Return(nil)

	out, err := fx.service.Login(ctx, usecase.LoginInput{Email: "ada@example.com", Password: "secret1", Role: entity.RoleAdmin})

	require.Error(t, err)
	assert.Nil(t, out)
	assert.True(t, errors.Is(err, domainerrors.ErrRoleMismatch))
	appErr, ok := domainerrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, "Invalid credentials for admin login", appErr.Message())
	fx.store.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	assert.Equal(t, 1, fx.metrics.logins["role_mismatch"])
}

func TestAuthService_Login_ProfileFetchFailed(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.provider.EXPECT().SignIn(ctx, "ada@example.com", "secret1").Return(authSessionFor(userID), nil)
	fx.profileRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrProfileNotFound)
	fx.provider.EXPECT().SignOut(ctx, "access").Return(errors.New("provider down"))

	_, err := fx.service.Login(ctx, usecase.LoginInput{Email: "ada@example.com", Password: "secret1", Role: entity.RoleStudent})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrProfileFetchFailed))
	fx.store.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestAuthService_Login_InvalidCredentials(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.provider.EXPECT().SignIn(ctx, "ada@example.com", "wrong").Return(nil, domainerrors.ErrInvalidCredentials)

	_, err := fx.service.Login(ctx, usecase.LoginInput{Email: "ada@example.com", Password: "wrong", Role: entity.RoleStudent})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
	assert.Equal(t, 1, fx.metrics.logins["invalid_credentials"])
}

func TestAuthService_Login_RoleRequired(t *testing.T) {
	fx := createTestAuthService(t)

	_, err := fx.service.Login(context.Background(), usecase.LoginInput{Email: "ada@example.com", Password: "secret1"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	fx.provider.AssertNotCalled(t, "SignIn", mock.Anything, mock.Anything, mock.Anything)
}

func TestAuthService_Login_StoreFailure(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.provider.EXPECT().SignIn(ctx, "ada@example.com", "secret1").Return(authSessionFor(userID), nil)
	fx.profileRepo.EXPECT().FindByID(ctx, userID).Return(&entity.Profile{ID: userID, Role: entity.RoleStudent}, nil)
	fx.store.EXPECT().Save(ctx, mock.Anything).Return(errors.New("redis down"))
	fx.provider.EXPECT().SignOut(ctx, "access").Return(nil)

	_, err := fx.service.Login(ctx, usecase.LoginInput{Email: "ada@example.com", Password: "secret1", Role: entity.RoleStudent})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "store session")
}

func TestAuthService_Register_Student(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.provider.EXPECT().SignUp(ctx, "ada@example.com", "secret1", map[string]any{
		"full_name": "Ada",
		"role":      "student",
	}).Return(authSessionFor(userID), nil)

	factory := mockRepo.NewMockRepositoryFactory(t)
	txProfiles := mockRepo.NewMockProfileRepository(t)
	factory.EXPECT().ProfileRepo().Return(txProfiles)
	txProfiles.EXPECT().Create(ctx, &entity.Profile{ID: userID, FullName: "Ada", Role: entity.RoleStudent}).Return(nil)
	expectTx(t, fx.txManager, factory)

	out, err := fx.service.Register(ctx, usecase.RegisterInput{
		Email: "ada@example.com", Password: "secret1", FullName: "Ada", Role: entity.RoleStudent,
	})

	require.NoError(t, err)
	assert.Equal(t, userID, out.UserID)
	assert.Equal(t, "/login", out.Redirect)
	assert.Equal(t, entity.RoleStudent, out.Role)
}

func TestAuthService_Register_AdminWithoutCodeNeverSignsUp(t *testing.T) {
	fx := createTestAuthService(t)

	_, err := fx.service.Register(context.Background(), usecase.RegisterInput{
		Email: "root@example.com", Password: "secret1", FullName: "Root", Role: entity.RoleAdmin,
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidAdminCode))
	fx.provider.AssertNotCalled(t, "SignUp", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestAuthService_Register_AdminWithWrongCode(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	invite := &entity.AdminInvite{ID: uuid.New(), CodeHash: "hash", ExpiresAt: fx.now.Add(time.Hour)}

	fx.inviteRepo.EXPECT().FindUsable(ctx, fx.now).Return([]*entity.AdminInvite{invite}, nil)
	fx.hasher.EXPECT().Check("guess", "hash").Return(false)

	_, err := fx.service.Register(ctx, usecase.RegisterInput{
		Email: "root@example.com", Password: "secret1", FullName: "Root", Role: entity.RoleAdmin, AdminCode: "guess",
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidAdminCode))
	assert.Equal(t, 403, domainerrors.HTTPStatus(err))
	fx.provider.AssertNotCalled(t, "SignUp", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestAuthService_Register_AdminClaimsInvite(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	userID := uuid.New()
	invite := &entity.AdminInvite{ID: uuid.New(), CodeHash: "hash", ExpiresAt: fx.now.Add(time.Hour)}

	fx.inviteRepo.EXPECT().FindUsable(ctx, fx.now).Return([]*entity.AdminInvite{invite}, nil)
	fx.hasher.EXPECT().Check("CODE", "hash").Return(true)
	fx.provider.EXPECT().SignUp(ctx, "root@example.com", "secret1", mock.Anything).Return(authSessionFor(userID), nil)

	factory := mockRepo.NewMockRepositoryFactory(t)
	txProfiles := mockRepo.NewMockProfileRepository(t)
	txInvites := mockRepo.NewMockInviteRepository(t)
	factory.EXPECT().ProfileRepo().Return(txProfiles)
	factory.EXPECT().InviteRepo().Return(txInvites)
	txProfiles.EXPECT().Create(ctx, mock.MatchedBy(func(p *entity.Profile) bool { return p.Role == entity.RoleAdmin })).Return(nil)
	txInvites.EXPECT().Claim(ctx, invite.ID, userID, fx.now).Return(nil)
	expectTx(t, fx.txManager, factory)

	out, err := fx.service.Register(ctx, usecase.RegisterInput{
		Email: "root@example.com", Password: "secret1", FullName: "Root", Role: entity.RoleAdmin, AdminCode: " CODE ",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, out.Role)
}

func TestAuthService_Register_ProfileCreationFailsSignsOut(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.provider.EXPECT().SignUp(ctx, "ada@example.com", "secret1", mock.Anything).Return(authSessionFor(userID), nil)
	fx.provider.EXPECT().SignOut(ctx, "access").Return(nil)

	factory := mockRepo.NewMockRepositoryFactory(t)
	txProfiles := mockRepo.NewMockProfileRepository(t)
	factory.EXPECT().ProfileRepo().Return(txProfiles)
	txProfiles.EXPECT().Create(ctx, mock.Anything).Return(repository.ErrDuplicateProfile)
	expectTx(t, fx.txManager, factory)

	_, err := fx.service.Register(ctx, usecase.RegisterInput{
		Email: "ada@example.com", Password: "secret1", FullName: "Ada", Role: entity.RoleStudent,
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrProfileCreationFailed))
}

func TestAuthService_Register_EmailTaken(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.provider.EXPECT().SignUp(ctx, "ada@example.com", "secret1", mock.Anything).Return(nil, domainerrors.ErrEmailAlreadyRegistered)

	_, err := fx.service.Register(ctx, usecase.RegisterInput{
		Email: "ada@example.com", Password: "secret1", FullName: "Ada", Role: entity.RoleStudent,
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrEmailAlreadyRegistered))
	fx.txManager.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestAuthService_Logout(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	userID := uuid.New()
	session := &entity.Session{ID: "session-1", UserID: userID, AccessToken: "access"}

	fx.store.EXPECT().Get(ctx, "session-1").Return(session, nil)
	fx.provider.EXPECT().SignOut(ctx, "access").Return(errors.New("provider down"))
	fx.store.EXPECT().Delete(ctx, "session-1").Return(nil)
	fx.store.EXPECT().Publish(ctx, mock.MatchedBy(func(e entity.SessionEvent) bool {
		return e.Type == entity.SessionSignedOut && e.Redirect == "/login" && e.UserID == userID
	})).Return(nil)

	out := fx.service.Logout(ctx, "session-1")

	assert.Equal(t, "/", out.Redirect)
}

func TestAuthService_Logout_UnknownSession(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.store.EXPECT().Get(ctx, "gone").Return(nil, errors.New("session not found"))

	assert.Equal(t, "/", fx.service.Logout(ctx, "gone").Redirect)
	assert.Equal(t, "/", fx.service.Logout(ctx, "").Redirect)
}

func TestAuthService_RequestPasswordReset(t *testing.T) {
	ctx := context.Background()
	const resetURL = "https://showcase.example/reset-password"

	t.Run("success", func(t *testing.T) {
		fx := createTestAuthService(t)
		fx.provider.EXPECT().RecoverPassword(ctx, "ada@example.com", resetURL).Return(nil)

		require.NoError(t, fx.service.RequestPasswordReset(ctx, usecase.PasswordResetInput{Email: "ada@example.com"}))
	})

	t.Run("provider failure is hidden", func(t *testing.T) {
		fx := createTestAuthService(t)
		fx.provider.EXPECT().RecoverPassword(ctx, "nobody@example.com", resetURL).Return(domainerrors.ErrAuthProviderUnavailable)

		require.NoError(t, fx.service.RequestPasswordReset(ctx, usecase.PasswordResetInput{Email: "nobody@example.com"}))
	})

	t.Run("rate limit surfaces", func(t *testing.T) {
		fx := createTestAuthService(t)
		fx.provider.EXPECT().RecoverPassword(ctx, "ada@example.com", resetURL).Return(domainerrors.ErrRateLimited)

		err := fx.service.RequestPasswordReset(ctx, usecase.PasswordResetInput{Email: "ada@example.com"})
		assert.True(t, errors.Is(err, domainerrors.ErrRateLimited))
	})
}
