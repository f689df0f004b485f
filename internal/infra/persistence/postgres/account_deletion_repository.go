package postgres

import (
	"context"

	"github.com/Abros3006/business-tracker/internal/domain/entity"
	domainerrors "github.com/Abros3006/business-tracker/internal/domain/errors"
	"github.com/Abros3006/business-tracker/internal/domain/repository"
	"github.com/Abros3006/business-tracker/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const maxLastErrorLength = 1000

// accountDeletionRepository implements the repository.AccountDeletionRepository interface.
type accountDeletionRepository struct {
	db *gorm.DB
}

// NewAccountDeletionRepository is the constructor for accountDeletionRepository.
func NewAccountDeletionRepository(db *gorm.DB) repository.AccountDeletionRepository {
	return &accountDeletionRepository{
		db: db,
	}
}

// Create persists a pending deletion.
func (repo *accountDeletionRepository) Create(ctx context.Context, deletion *entity.AccountDeletion) error {
	deletionM := fromAccountDeletionDomain(deletion)

	if err := repo.db.WithContext(ctx).Create(deletionM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to record account deletion")
	}

	deletion.ID = deletionM.ID
	deletion.CreatedAt = deletionM.CreatedAt
	deletion.UpdatedAt = deletionM.UpdatedAt

	return nil
}

// FindPending retrieves pending deletions that still have attempts left, oldest first.
func (repo *accountDeletionRepository) FindPending(ctx context.Context, maxAttempts, limit int) ([]*entity.AccountDeletion, error) {
	var deletionModels []*model.AccountDeletionModel

	if err := repo.db.WithContext(ctx).
		Where("status = ? AND attempts < ?", string(entity.DeletionPending), maxAttempts).
		Order("created_at ASC").
		Limit(limit).
		Find(&deletionModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find pending account deletions")
	}

	deletions := make([]*entity.AccountDeletion, 0, len(deletionModels))
	for _, deletionM := range deletionModels {
		deletions = append(deletions, toAccountDeletionDomain(deletionM))
	}

	return deletions, nil
}

// MarkDone flags a deletion as complete.
func (repo *accountDeletionRepository) MarkDone(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.AccountDeletionModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":     string(entity.DeletionDone),
			"last_error": "",
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to mark account deletion done")
	}

	return nil
}

// RecordFailure counts a failed attempt and keeps its reason.
func (repo *accountDeletionRepository) RecordFailure(ctx context.Context, id uuid.UUID, reason string) error {
	if len(reason) > maxLastErrorLength {
		reason = reason[:maxLastErrorLength]
	}

	result := repo.db.WithContext(ctx).
		Model(&model.AccountDeletionModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"attempts":   gorm.Expr("attempts + 1"),
			"last_error": reason,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to record account deletion failure")
	}

	return nil
}

// --- Mapper Functions ---

func toAccountDeletionDomain(data *model.AccountDeletionModel) *entity.AccountDeletion {
	if data == nil {
		return nil
	}

	return &entity.AccountDeletion{
		ID:          data.ID,
		UserID:      data.UserID,
		RequestedBy: data.RequestedBy,
		Status:      entity.DeletionStatus(data.Status),
		Attempts:    data.Attempts,
		LastError:   data.LastError,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromAccountDeletionDomain(data *entity.AccountDeletion) *model.AccountDeletionModel {
	if data == nil {
		return nil
	}

	status := data.Status
	if status == "" {
		status = entity.DeletionPending
	}

	return &model.AccountDeletionModel{
		ID:          data.ID,
		UserID:      data.UserID,
		RequestedBy: data.RequestedBy,
		Status:      string(status),
		Attempts:    data.Attempts,
		LastError:   data.LastError,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
