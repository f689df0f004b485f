package postgres

import (
	"context"

	"github.com/Abros3006/business-tracker/internal/domain/entity"
	domainerrors "github.com/Abros3006/business-tracker/internal/domain/errors"
	"github.com/Abros3006/business-tracker/internal/domain/repository"
	"github.com/Abros3006/business-tracker/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// businessRepository implements the repository.BusinessRepository interface.
type businessRepository struct {
	db *gorm.DB
}

// NewBusinessRepository is the constructor for businessRepository.
func NewBusinessRepository(db *gorm.DB) repository.BusinessRepository {
	return &businessRepository{
		db: db,
	}
}

// FindAll retrieves every business, newest first.
func (repo *businessRepository) FindAll(ctx context.Context, withOwner bool) ([]*entity.Business, error) {
	if withOwner {
		var rows []*model.BusinessWithOwner
		if err := repo.db.WithContext(ctx).
			Table("businesses").
			Select("businesses.*, profiles.full_name AS owner_name").
			Joins("LEFT JOIN profiles ON profiles.id = businesses.owner_id").
			Order("businesses.created_at DESC").
			Scan(&rows).Error; err != nil {
			return nil, errors.Wrap(err, "failed to find businesses with owners")
		}

		businesses := make([]*entity.Business, 0, len(rows))
		for _, row := range rows {
			business := toBusinessDomain(&row.BusinessModel)
			business.OwnerName = row.OwnerName
			businesses = append(businesses, business)
		}

		return businesses, nil
	}

	var businessModels []*model.BusinessModel
	if err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&businessModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find businesses")
	}

	return toBusinessDomains(businessModels), nil
}

// FindByID retrieves a business by its unique ID.
func (repo *businessRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Business, error) {
	var businessM model.BusinessModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&businessM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBusinessNotFound
		}

		return nil, errors.Wrap(err, "failed to find business by ID")
	}

	return toBusinessDomain(&businessM), nil
}

// FindByOwner retrieves the businesses of an owner, newest first.
func (repo *businessRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Business, error) {
	var businessModels []*model.BusinessModel

	if err := repo.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&businessModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find businesses by owner")
	}

	return toBusinessDomains(businessModels), nil
}

// FindOneByOwner retrieves the single business of an owner.
func (repo *businessRepository) FindOneByOwner(ctx context.Context, ownerID uuid.UUID) (*entity.Business, error) {
	var businessM model.BusinessModel

	if err := repo.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		First(&businessM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBusinessNotFound
		}

		return nil, errors.Wrap(err, "failed to find business by owner")
	}

	return toBusinessDomain(&businessM), nil
}

// Create persists a new business.
func (repo *businessRepository) Create(ctx context.Context, business *entity.Business) error {
	businessM := fromBusinessDomain(business)

	if err := repo.db.WithContext(ctx).Create(businessM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateBusiness
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required business information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create business")
	}

	business.ID = businessM.ID
	business.CreatedAt = businessM.CreatedAt

	return nil
}

// UpdateDetails overwrites the owner-editable columns.
func (repo *businessRepository) UpdateDetails(ctx context.Context, id uuid.UUID, details *entity.BusinessDetails) error {
	updates := map[string]any{
		"name":              details.Name,
		"description":       details.Description,
		"industry":          details.Industry,
		"youtube_video_url": details.YouTubeVideoURL,
		"website_url":       details.WebsiteURL,
		"email":             details.Email,
		"phone":             details.Phone,
	}
	if details.SocialLinks != nil {
		updates["social_links"] = toJSONMap(details.SocialLinks)
	}

	result := repo.db.WithContext(ctx).
		Model(&model.BusinessModel{}).
		Where("id = ?", id).
		Updates(updates)

	if result.Error != nil {
		if isNotNullConstraintViolation(result.Error) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required business information")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update business")
	}

	if result.RowsAffected == 0 {
		return repository.ErrBusinessNotFound
	}

	return nil
}

// DeleteByOwner removes every business of an owner and returns the removed ids.
func (repo *businessRepository) DeleteByOwner(ctx context.Context, ownerID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID

	if err := repo.db.WithContext(ctx).
		Model(&model.BusinessModel{}).
		Where("owner_id = ?", ownerID).
		Pluck("id", &ids).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list businesses by owner")
	}

	if len(ids) == 0 {
		return ids, nil
	}

	if err := repo.db.WithContext(ctx).
		Where("id IN ?", ids).
		Delete(&model.BusinessModel{}).Error; err != nil {
		return nil, errors.Wrap(err, "failed to delete businesses by owner")
	}

	return ids, nil
}

// IncrementVisitorCount adds one visit to a business.
func (repo *businessRepository) IncrementVisitorCount(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.BusinessModel{}).
		Where("id = ?", id).
		UpdateColumn("visitor_count", gorm.Expr("visitor_count + ?", 1))

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to increment visitor count")
	}

	if result.RowsAffected == 0 {
		return repository.ErrBusinessNotFound
	}

	return nil
}

// CountAll returns total and featured business counts in one query.
func (repo *businessRepository) CountAll(ctx context.Context) (int64, int64, error) {
	var counts struct {
		Total    int64
		Featured int64
	}

	if err := repo.db.WithContext(ctx).
		Model(&model.BusinessModel{}).
		Select("COUNT(*) AS total, COUNT(*) FILTER (WHERE featured) AS featured").
		Scan(&counts).Error; err != nil {
		return 0, 0, errors.Wrap(err, "failed to count businesses")
	}

	return counts.Total, counts.Featured, nil
}

// --- Mapper Functions ---

func toBusinessDomains(data []*model.BusinessModel) []*entity.Business {
	businesses := make([]*entity.Business, 0, len(data))
	for _, businessM := range data {
		businesses = append(businesses, toBusinessDomain(businessM))
	}

	return businesses
}

// toBusinessDomain converts a GORM BusinessModel to a domain Business entity.
func toBusinessDomain(data *model.BusinessModel) *entity.Business {
	if data == nil {
		return nil
	}

	return &entity.Business{
		ID:              data.ID,
		Name:            data.Name,
		Description:     data.Description,
		Industry:        data.Industry,
		YouTubeVideoURL: data.YouTubeVideoURL,
		WebsiteURL:      data.WebsiteURL,
		Email:           data.Email,
		Phone:           data.Phone,
		SocialLinks:     fromJSONMap(data.SocialLinks),
		Featured:        data.Featured,
		Rating:          data.Rating,
		TotalRatings:    data.TotalRatings,
		VisitorCount:    data.VisitorCount,
		OwnerID:         data.OwnerID,
		CreatedAt:       data.CreatedAt,
	}
}

// fromBusinessDomain converts a domain Business entity to a GORM BusinessModel.
func fromBusinessDomain(data *entity.Business) *model.BusinessModel {
	if data == nil {
		return nil
	}

	return &model.BusinessModel{
		ID:              data.ID,
		Name:            data.Name,
		Description:     data.Description,
		Industry:        data.Industry,
		YouTubeVideoURL: data.YouTubeVideoURL,
		WebsiteURL:      data.WebsiteURL,
		Email:           data.Email,
		Phone:           data.Phone,
		SocialLinks:     toJSONMap(data.SocialLinks),
		Featured:        data.Featured,
		Rating:          data.Rating,
		TotalRatings:    data.TotalRatings,
		VisitorCount:    data.VisitorCount,
		OwnerID:         data.OwnerID,
		CreatedAt:       data.CreatedAt,
	}
}

func toJSONMap(links map[string]string) datatypes.JSONMap {
	out := make(datatypes.JSONMap, len(links))
	for k, v := range links {
		out[k] = v
	}

	return out
}

// fromJSONMap keeps only string values; anything else in the column is ignored.
func fromJSONMap(data datatypes.JSONMap) map[string]string {
	out := make(map[string]string, len(data))
	for k, v := range data {
		if s, ok := v.(string); ok {
			out[k] = s
		}
	}

	return out
}
