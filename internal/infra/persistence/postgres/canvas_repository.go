package postgres

import (
	"context"
	"time"

	"github.com/Abros3006/business-tracker/internal/domain/entity"
	domainerrors "github.com/Abros3006/business-tracker/internal/domain/errors"
	"github.com/Abros3006/business-tracker/internal/domain/repository"
	"github.com/Abros3006/business-tracker/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// canvasRepository implements the repository.CanvasRepository interface
// over the business_model_canvas and value_proposition_canvas tables.
type canvasRepository struct {
	db *gorm.DB
}

// NewCanvasRepository is the constructor for canvasRepository.
func NewCanvasRepository(db *gorm.DB) repository.CanvasRepository {
	return &canvasRepository{
		db: db,
	}
}

// FindByBusiness retrieves the canvas of kind attached to a business.
func (repo *canvasRepository) FindByBusiness(ctx context.Context, kind entity.CanvasKind, businessID uuid.UUID) (*entity.Canvas, error) {
	var (
		err    error
		canvas *entity.Canvas
	)

	switch kind {
	case entity.CanvasBusinessModel:
		var canvasM model.BusinessModelCanvasModel
		err = repo.db.WithContext(ctx).Where("business_id = ?", businessID).First(&canvasM).Error
		canvas = toBMCDomain(&canvasM)
	case entity.CanvasValueProposition:
		var canvasM model.ValuePropositionCanvasModel
		err = repo.db.WithContext(ctx).Where("business_id = ?", businessID).First(&canvasM).Error
		canvas = toVPCDomain(&canvasM)
	default:
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown canvas kind")
	}

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCanvasNotFound
		}

		return nil, errors.Wrapf(err, "failed to find %s canvas", kind)
	}

	return canvas, nil
}

// Upsert writes the canvas with one INSERT ... ON CONFLICT (business_id) DO UPDATE.
func (repo *canvasRepository) Upsert(ctx context.Context, canvas *entity.Canvas) error {
	now := time.Now()
	onConflict := clause.OnConflict{
		Columns:   []clause.Column{{Name: "business_id"}},
		DoUpdates: clause.AssignmentColumns(append(canvas.Kind.Fields(), "updated_at")),
	}

	var (
		err                  error
		id                   uuid.UUID
		createdAt, updatedAt time.Time
	)

	switch canvas.Kind {
	case entity.CanvasBusinessModel:
		canvasM := fromBMCDomain(canvas)
		canvasM.UpdatedAt = now
		err = repo.db.WithContext(ctx).Clauses(onConflict).Create(canvasM).Error
		id, createdAt, updatedAt = canvasM.ID, canvasM.CreatedAt, canvasM.UpdatedAt
	case entity.CanvasValueProposition:
		canvasM := fromVPCDomain(canvas)
		canvasM.UpdatedAt = now
		err = repo.db.WithContext(ctx).Clauses(onConflict).Create(canvasM).Error
		id, createdAt, updatedAt = canvasM.ID, canvasM.CreatedAt, canvasM.UpdatedAt
	default:
		return domainerrors.ErrValidationFailed.WrapMessage("unknown canvas kind")
	}

	if err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrBusinessNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to save canvas")
	}

	canvas.ID = id
	if canvas.CreatedAt.IsZero() {
		canvas.CreatedAt = createdAt
	}
	canvas.UpdatedAt = updatedAt

	return nil
}

// DeleteByBusinesses removes both canvas kinds for the given businesses.
func (repo *canvasRepository) DeleteByBusinesses(ctx context.Context, businessIDs []uuid.UUID) error {
	if len(businessIDs) == 0 {
		return nil
	}

	if err := repo.db.WithContext(ctx).
		Where("business_id IN ?", businessIDs).
		Delete(&model.BusinessModelCanvasModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete business model canvases")
	}

	if err := repo.db.WithContext(ctx).
		Where("business_id IN ?", businessIDs).
		Delete(&model.ValuePropositionCanvasModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete value proposition canvases")
	}

	return nil
}

// --- Mapper Functions ---

func linesOf(fields map[string]entity.Lines, name string) pq.StringArray {
	lines := fields[name]
	if lines == nil {
		return pq.StringArray{}
	}

	return pq.StringArray(lines)
}

func canvasFrom(kind entity.CanvasKind, id, businessID uuid.UUID, createdAt, updatedAt time.Time, columns map[string]pq.StringArray) *entity.Canvas {
	canvas := entity.NewCanvas(kind, businessID)
	canvas.ID = id
	canvas.CreatedAt = createdAt
	canvas.UpdatedAt = updatedAt
	for name, values := range columns {
		canvas.Fields[name] = entity.Lines(values).Normalize()
	}

	return canvas
}

func toBMCDomain(data *model.BusinessModelCanvasModel) *entity.Canvas {
	return canvasFrom(entity.CanvasBusinessModel, data.ID, data.BusinessID, data.CreatedAt, data.UpdatedAt, map[string]pq.StringArray{
		"key_partners":           data.KeyPartners,
		"key_activities":         data.KeyActivities,
		"key_resources":          data.KeyResources,
		"value_propositions":     data.ValuePropositions,
		"customer_relationships": data.CustomerRelationships,
		"channels":               data.Channels,
		"customer_segments":      data.CustomerSegments,
		"cost_structure":         data.CostStructure,
		"revenue_streams":        data.RevenueStreams,
	})
}

func fromBMCDomain(data *entity.Canvas) *model.BusinessModelCanvasModel {
	return &model.BusinessModelCanvasModel{
		ID:                    data.ID,
		BusinessID:            data.BusinessID,
		KeyPartners:           linesOf(data.Fields, "key_partners"),
		KeyActivities:         linesOf(data.Fields, "key_activities"),
		KeyResources:          linesOf(data.Fields, "key_resources"),
		ValuePropositions:     linesOf(data.Fields, "value_propositions"),
		CustomerRelationships: linesOf(data.Fields, "customer_relationships"),
		Channels:              linesOf(data.Fields, "channels"),
		CustomerSegments:      linesOf(data.Fields, "customer_segments"),
		CostStructure:         linesOf(data.Fields, "cost_structure"),
		RevenueStreams:        linesOf(data.Fields, "revenue_streams"),
		CreatedAt:             data.CreatedAt,
		UpdatedAt:             data.UpdatedAt,
	}
}

func toVPCDomain(data *model.ValuePropositionCanvasModel) *entity.Canvas {
	return canvasFrom(entity.CanvasValueProposition, data.ID, data.BusinessID, data.CreatedAt, data.UpdatedAt, map[string]pq.StringArray{
		"customer_jobs":     data.CustomerJobs,
		"pains":             data.Pains,
		"gains":             data.Gains,
		"products_services": data.ProductsServices,
		"pain_relievers":    data.PainRelievers,
		"gain_creators":     data.GainCreators,
	})
}

func fromVPCDomain(data *entity.Canvas) *model.ValuePropositionCanvasModel {
	return &model.ValuePropositionCanvasModel{
		ID:               data.ID,
		BusinessID:       data.BusinessID,
		CustomerJobs:     linesOf(data.Fields, "customer_jobs"),
		Pains:            linesOf(data.Fields, "pains"),
		Gains:            linesOf(data.Fields, "gains"),
		ProductsServices: linesOf(data.Fields, "products_services"),
		PainRelievers:    linesOf(data.Fields, "pain_relievers"),
		GainCreators:     linesOf(data.Fields, "gain_creators"),
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}
