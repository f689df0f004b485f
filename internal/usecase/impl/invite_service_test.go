package impl

import (
	"context"
	"testing"
	"time"

	"github.com/Abros3006/business-tracker/internal/domain/entity"
	domainerrors "github.com/Abros3006/business-tracker/internal/domain/errors"
	mockRepo "github.com/Abros3006/business-tracker/internal/mocks/repository"
	mockSvc "github.com/Abros3006/business-tracker/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type inviteFixture struct {
	service     *inviteService
	profileRepo *mockRepo.MockProfileRepository
	inviteRepo  *mockRepo.MockInviteRepository
	hasher      *mockSvc.MockSecretHasher
	now         time.Time
}

func createTestInviteService(t *testing.T) *inviteFixture {
	t.Helper()

	fx := &inviteFixture{
		profileRepo: mockRepo.NewMockProfileRepository(t),
		inviteRepo:  mockRepo.NewMockInviteRepository(t),
		hasher:      mockSvc.NewMockSecretHasher(t),
		now:         time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
	}
	fx.service = NewInviteService(InviteServiceParams{
		ProfileRepo: fx.profileRepo,
		InviteRepo:  fx.inviteRepo,
		Hasher:      fx.hasher,
		Config:      newTestConfig(),
		Logger:      newDiscardLogger(),
	}).(*inviteService)
	fx.service.now = func() time.Time { return fx.now }
	fx.service.newCode = func() string { return "K7QW2M4XJ9" }

	return fx
}

func TestInviteService_IssueAdminInvite(t *testing.T) {
	fx := createTestInviteService(t)
	ctx := context.Background()
	adminID, inviteID := uuid.New(), uuid.New()

	fx.profileRepo.EXPECT().FindByID(ctx, adminID).Return(&entity.Profile{ID: adminID, Role: entity.RoleAdmin}, nil)
	fx.hasher.EXPECT().Hash("K7QW2M4XJ9").Return("$2a$04$hash", nil)
	fx.inviteRepo.EXPECT().Create(ctx, mock.MatchedBy(func(inv *entity.AdminInvite) bool {
		return inv.CodeHash == "$2a$04$hash" && inv.CreatedBy == adminID
	})).RunAndReturn(func(_ context.Context, inv *entity.AdminInvite) error {
		inv.ID = inviteID

		return nil
	})

	issued, err := fx.service.IssueAdminInvite(ctx, adminID, 0)

	require.NoError(t, err)
	assert.Equal(t, inviteID, issued.ID)
	assert.Equal(t, "K7QW2M4XJ9", issued.Code)
	assert.Equal(t, fx.now.Add(defaultInviteTTL), issued.ExpiresAt)
}

func TestInviteService_IssueAdminInvite_CustomTTL(t *testing.T) {
	fx := createTestInviteService(t)
	ctx := context.Background()
	adminID := uuid.New()

	fx.profileRepo.EXPECT().FindByID(ctx, adminID).Return(&entity.Profile{ID: adminID, Role: entity.RoleAdmin}, nil)
	fx.hasher.EXPECT().Hash(mock.Anything).Return("hash", nil)
	fx.inviteRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)

	issued, err := fx.service.IssueAdminInvite(ctx, adminID, 2*time.Hour)

	require.NoError(t, err)
	assert.Equal(t, fx.now.Add(2*time.Hour), issued.ExpiresAt)
}

func TestInviteService_IssueAdminInvite_Rejections(t *testing.T) {
	ctx := context.Background()

	t.Run("student", func(t *testing.T) {
		fx := createTestInviteService(t)
		studentID := uuid.New()
		fx.profileRepo.EXPECT().FindByID(ctx, studentID).Return(&entity.Profile{ID: studentID, Role: entity.RoleStudent}, nil)

		_, err := fx.service.IssueAdminInvite(ctx, studentID, 0)

		assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
	})

	t.Run("lifetime too long", func(t *testing.T) {
		fx := createTestInviteService(t)
		adminID := uuid.New()
		fx.profileRepo.EXPECT().FindByID(ctx, adminID).Return(&entity.Profile{ID: adminID, Role: entity.RoleAdmin}, nil)

		_, err := fx.service.IssueAdminInvite(ctx, adminID, 31*24*time.Hour)

		assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	})

	t.Run("store failure", func(t *testing.T) {
		fx := createTestInviteService(t)
		adminID := uuid.New()
		fx.profileRepo.EXPECT().FindByID(ctx, adminID).Return(&entity.Profile{ID: adminID, Role: entity.RoleAdmin}, nil)
		fx.hasher.EXPECT().Hash(mock.Anything).Return("hash", nil)
		fx.inviteRepo.EXPECT().Create(ctx, mock.Anything).Return(errors.New("insert failed"))

		_, err := fx.service.IssueAdminInvite(ctx, adminID, 0)

		require.Error(t, err)
	})
}
