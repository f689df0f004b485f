package postgres

import (
	"context"
	"time"

	"github.com/Abros3006/business-tracker/internal/domain/entity"
	domainerrors "github.com/Abros3006/business-tracker/internal/domain/errors"
	"github.com/Abros3006/business-tracker/internal/domain/repository"
	"github.com/Abros3006/business-tracker/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// inviteRepository implements the repository.InviteRepository interface.
type inviteRepository struct {
	db *gorm.DB
}

// NewInviteRepository is the constructor for inviteRepository.
func NewInviteRepository(db *gorm.DB) repository.InviteRepository {
	return &inviteRepository{
		db: db,
	}
}

// Create persists a new admin invite.
func (repo *inviteRepository) Create(ctx context.Context, invite *entity.AdminInvite) error {
	inviteM := fromInviteDomain(invite)

	if err := repo.db.WithContext(ctx).Create(inviteM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create admin invite")
	}

	invite.ID = inviteM.ID
	invite.CreatedAt = inviteM.CreatedAt

	return nil
}

// FindUsable retrieves unclaimed invites that are still valid at now.
func (repo *inviteRepository) FindUsable(ctx context.Context, now time.Time) ([]*entity.AdminInvite, error) {
	var inviteModels []*model.AdminInviteModel

	if err := repo.db.WithContext(ctx).
		Where("claimed_by IS NULL AND expires_at > ?", now).
		Order("created_at DESC").
		Find(&inviteModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find usable invites")
	}

	invites := make([]*entity.AdminInvite, 0, len(inviteModels))
	for _, inviteM := range inviteModels {
		invites = append(invites, toInviteDomain(inviteM))
	}

	return invites, nil
}

// Claim marks an unclaimed invite as used. The claimed_by guard makes it single-use
// under concurrent registrations.
func (repo *inviteRepository) Claim(ctx context.Context, inviteID, userID uuid.UUID, at time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.AdminInviteModel{}).
		Where("id = ? AND claimed_by IS NULL", inviteID).
		Updates(map[string]any{
			"claimed_by": userID,
			"claimed_at": at,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to claim invite")
	}

	if result.RowsAffected == 0 {
		return repository.ErrInviteAlreadyClaimed
	}

	return nil
}

// --- Mapper Functions ---

func toInviteDomain(data *model.AdminInviteModel) *entity.AdminInvite {
	if data == nil {
		return nil
	}

	return &entity.AdminInvite{
		ID:        data.ID,
		CodeHash:  data.CodeHash,
		CreatedBy: data.CreatedBy,
		ExpiresAt: data.ExpiresAt,
		ClaimedBy: data.ClaimedBy,
		ClaimedAt: data.ClaimedAt,
		CreatedAt: data.CreatedAt,
	}
}

func fromInviteDomain(data *entity.AdminInvite) *model.AdminInviteModel {
	if data == nil {
		return nil
	}

	return &model.AdminInviteModel{
		ID:        data.ID,
		CodeHash:  data.CodeHash,
		CreatedBy: data.CreatedBy,
		ExpiresAt: data.ExpiresAt,
		ClaimedBy: data.ClaimedBy,
		ClaimedAt: data.ClaimedAt,
		CreatedAt: data.CreatedAt,
	}
}
