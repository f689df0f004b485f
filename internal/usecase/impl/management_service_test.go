package impl

import (
	"context"
	"testing"
	"time"

	"github.com/Abros3006/business-tracker/internal/domain/entity"
	domainerrors "github.com/Abros3006/business-tracker/internal/domain/errors"
	"github.com/Abros3006/business-tracker/internal/domain/repository"
	"github.com/Abros3006/business-tracker/internal/domain/service"
	mockRepo "github.com/Abros3006/business-tracker/internal/mocks/repository"
	mockSvc "github.com/Abros3006/business-tracker/internal/mocks/service"
	"github.com/Abros3006/business-tracker/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type managementFixture struct {
	service      usecase.ManagementUsecase
	businessRepo *mockRepo.MockBusinessRepository
	canvasRepo   *mockRepo.MockCanvasRepository
	publisher    *mockSvc.MockEventPublisher
}

func createTestManagementService(t *testing.T) *managementFixture {
	t.Helper()

	fx := &managementFixture{
		businessRepo: mockRepo.NewMockBusinessRepository(t),
		canvasRepo:   mockRepo.NewMockCanvasRepository(t),
		publisher:    mockSvc.NewMockEventPublisher(t),
	}
	fx.service = NewManagementService(ManagementServiceParams{
		BusinessRepo: fx.businessRepo,
		CanvasRepo:   fx.canvasRepo,
		Publisher:    fx.publisher,
		Logger:       newDiscardLogger(),
	})

	return fx
}

func (fx *managementFixture) expectEvent(eventType service.EventType) {
	fx.publisher.EXPECT().Publish(mock.Anything, mock.MatchedBy(func(e *service.DomainEvent) bool {
		return e.Type == eventType
	})).Return(nil).Once()
}

func sampleDetails() *entity.BusinessDetails {
	return &entity.BusinessDetails{
		Name:        "Bean There",
		Description: "Campus coffee cart",
		Industry:    "Food",
	}
}

func TestManagementService_GetWorkspace_NoBusiness(t *testing.T) {
	fx := createTestManagementService(t)
	ctx := context.Background()
	ownerID := uuid.New()

	fx.businessRepo.EXPECT().FindOneByOwner(ctx, ownerID).Return(nil, repository.ErrBusinessNotFound)

	ws, err := fx.service.GetWorkspace(ctx, ownerID)

	require.NoError(t, err)
	assert.Equal(t, usecase.WorkspaceNoBusiness, ws.State)
	assert.Nil(t, ws.Business)
}

func TestManagementService_GetWorkspace_HasBusiness(t *testing.T) {
	fx := createTestManagementService(t)
	ctx := context.Background()
	ownerID := uuid.New()
	business := &entity.Business{ID: uuid.New(), OwnerID: ownerID, Name: "Bean There"}
	bmc := entity.NewCanvas(entity.CanvasBusinessModel, business.ID)

	fx.businessRepo.EXPECT().FindOneByOwner(ctx, ownerID).Return(business, nil)
	fx.canvasRepo.EXPECT().FindByBusiness(ctx, entity.CanvasBusinessModel, business.ID).Return(bmc, nil)
	fx.canvasRepo.EXPECT().FindByBusiness(ctx, entity.CanvasValueProposition, business.ID).Return(nil, repository.ErrCanvasNotFound)

	ws, err := fx.service.GetWorkspace(ctx, ownerID)

	require.NoError(t, err)
	assert.Equal(t, usecase.WorkspaceHasBusiness, ws.State)
	assert.Equal(t, business, ws.Business)
	assert.Equal(t, bmc, ws.BusinessModelCanvas)
	assert.Nil(t, ws.ValuePropositionCanvas)
}

func TestManagementService_GetWorkspace_CanvasFailure(t *testing.T) {
	fx := createTestManagementService(t)
	ctx := context.Background()
	ownerID := uuid.New()
	business := &entity.Business{ID: uuid.New(), OwnerID: ownerID}

	fx.businessRepo.EXPECT().FindOneByOwner(ctx, ownerID).Return(business, nil)
	fx.canvasRepo.EXPECT().FindByBusiness(ctx, entity.CanvasBusinessModel, business.ID).Return(nil, errors.New("timeout"))

	_, err := fx.service.GetWorkspace(ctx, ownerID)

	require.Error(t, err)
}

func TestManagementService_CreateBusiness(t *testing.T) {
	fx := createTestManagementService(t)
	ctx := context.Background()
	ownerID := uuid.New()
	var createdID uuid.UUID

	fx.businessRepo.EXPECT().FindOneByOwner(ctx, ownerID).Return(nil, repository.ErrBusinessNotFound)
	fx.businessRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Business")).
		RunAndReturn(func(_ context.Context, b *entity.Business) error {
			assert.Equal(t, ownerID, b.OwnerID)
			assert.Equal(t, "Bean There", b.Name)
			assert.False(t, b.Featured)
			b.ID = uuid.New()
			createdID = b.ID

			return nil
		})
	fx.businessRepo.EXPECT().FindByID(ctx, mock.AnythingOfType("uuid.UUID")).
		RunAndReturn(func(_ context.Context, id uuid.UUID) (*entity.Business, error) {
			return &entity.Business{ID: id, OwnerID: ownerID, Name: "Bean There", CreatedAt: time.Now()}, nil
		})
	fx.expectEvent(service.EventBusinessCreated)

	ws, err := fx.service.CreateBusiness(ctx, ownerID, sampleDetails())

	require.NoError(t, err)
	assert.Equal(t, usecase.WorkspaceHasBusiness, ws.State)
	assert.Equal(t, createdID, ws.Business.ID)
}

func TestManagementService_CreateBusiness_AlreadyExists(t *testing.T) {
	fx := createTestManagementService(t)
	ctx := context.Background()
	ownerID := uuid.New()

	fx.businessRepo.EXPECT().FindOneByOwner(ctx, ownerID).Return(&entity.Business{ID: uuid.New()}, nil)

	_, err := fx.service.CreateBusiness(ctx, ownerID, sampleDetails())

	assert.True(t, errors.Is(err, domainerrors.ErrBusinessAlreadyExists))
	fx.businessRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestManagementService_CreateBusiness_LostRace(t *testing.T) {
	fx := createTestManagementService(t)
	ctx := context.Background()
	ownerID := uuid.New()

	fx.businessRepo.EXPECT().FindOneByOwner(ctx, ownerID).Return(nil, repository.ErrBusinessNotFound)
	fx.businessRepo.EXPECT().Create(ctx, mock.Anything).Return(repository.ErrDuplicateBusiness)

	_, err := fx.service.CreateBusiness(ctx, ownerID, sampleDetails())

	assert.True(t, errors.Is(err, domainerrors.ErrBusinessAlreadyExists))
	assert.Equal(t, 409, domainerrors.HTTPStatus(err))
}

func TestManagementService_UpdateBusiness(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		fx := createTestManagementService(t)
		ownerID := uuid.New()
		business := &entity.Business{ID: uuid.New(), OwnerID: ownerID}
		details := sampleDetails()
		details.Name = "Bean Here"

		fx.businessRepo.EXPECT().FindOneByOwner(ctx, ownerID).Return(business, nil)
		fx.businessRepo.EXPECT().UpdateDetails(ctx, business.ID, details).Return(nil)
		fx.businessRepo.EXPECT().FindByID(ctx, business.ID).Return(&entity.Business{ID: business.ID, Name: "Bean Here"}, nil)
		fx.expectEvent(service.EventBusinessUpdated)

		updated, err := fx.service.UpdateBusiness(ctx, ownerID, details)

		require.NoError(t, err)
		assert.Equal(t, "Bean Here", updated.Name)
	})

	t.Run("no business yet", func(t *testing.T) {
		fx := createTestManagementService(t)
		ownerID := uuid.New()

		fx.businessRepo.EXPECT().FindOneByOwner(ctx, ownerID).Return(nil, repository.ErrBusinessNotFound)

		_, err := fx.service.UpdateBusiness(ctx, ownerID, sampleDetails())

		assert.True(t, errors.Is(err, domainerrors.ErrBusinessNotFound))
	})
}

func TestManagementService_SaveCanvas(t *testing.T) {
	fx := createTestManagementService(t)
	ctx := context.Background()
	ownerID := uuid.New()
	business := &entity.Business{ID: uuid.New(), OwnerID: ownerID}
	var upserted *entity.Canvas

	fx.businessRepo.EXPECT().FindOneByOwner(ctx, ownerID).Return(business, nil)
	fx.canvasRepo.EXPECT().Upsert(ctx, mock.AnythingOfType("*entity.Canvas")).
		RunAndReturn(func(_ context.Context, c *entity.Canvas) error {
			upserted = c

			return nil
		})
	fx.canvasRepo.EXPECT().FindByBusiness(ctx, entity.CanvasValueProposition, business.ID).
		RunAndReturn(func(context.Context, entity.CanvasKind, uuid.UUID) (*entity.Canvas, error) {
			return upserted, nil
		})
	fx.expectEvent(service.EventCanvasSaved)

	saved, err := fx.service.SaveCanvas(ctx, ownerID, usecase.SaveCanvasInput{
		Kind: entity.CanvasValueProposition,
		Text: map[string]string{
			"pains": "  slow mornings \n\n   \nlong queues\r\n",
			"gains": "ignored",
		},
		Fields: map[string][]string{
			"gains": {"fresh coffee", " "},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, business.ID, saved.BusinessID)
	assert.Equal(t, entity.Lines{"slow mornings", "long queues"}, saved.Field("pains"))
	assert.Equal(t, entity.Lines{"fresh coffee"}, saved.Field("gains"))
	assert.Empty(t, saved.Field("customer_jobs"))
	assert.Len(t, saved.Fields, len(entity.CanvasValueProposition.Fields()))
}

func TestManagementService_SaveCanvas_Rejections(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown kind", func(t *testing.T) {
		fx := createTestManagementService(t)

		_, err := fx.service.SaveCanvas(ctx, uuid.New(), usecase.SaveCanvasInput{Kind: "swot"})

		assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	})

	t.Run("unknown field", func(t *testing.T) {
		fx := createTestManagementService(t)
		ownerID := uuid.New()

		fx.businessRepo.EXPECT().FindOneByOwner(ctx, ownerID).Return(&entity.Business{ID: uuid.New()}, nil)

		_, err := fx.service.SaveCanvas(ctx, ownerID, usecase.SaveCanvasInput{
			Kind:   entity.CanvasBusinessModel,
			Fields: map[string][]string{"pains": {"wrong canvas"}},
		})

		assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
		fx.canvasRepo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
	})

	t.Run("business removed underneath", func(t *testing.T) {
		fx := createTestManagementService(t)
		ownerID := uuid.New()

		fx.businessRepo.EXPECT().FindOneByOwner(ctx, ownerID).Return(&entity.Business{ID: uuid.New()}, nil)
		fx.canvasRepo.EXPECT().Upsert(ctx, mock.Anything).Return(repository.ErrBusinessNotFound)

		_, err := fx.service.SaveCanvas(ctx, ownerID, usecase.SaveCanvasInput{Kind: entity.CanvasBusinessModel})

		assert.True(t, errors.Is(err, domainerrors.ErrBusinessNotFound))
	})
}

func TestManagementService_EditCanvasField(t *testing.T) {
	ctx := context.Background()

	existing := func(businessID uuid.UUID) *entity.Canvas {
		c := entity.NewCanvas(entity.CanvasBusinessModel, businessID)
		require.NoError(t, c.SetField("channels", entity.Lines{"instagram", "market stall", "website"}))

		return c
	}

	tests := []struct {
		name  string
		input usecase.EditCanvasFieldInput
		want  entity.Lines
	}{
		{
			name:  "append",
			input: usecase.EditCanvasFieldInput{Op: usecase.LineOpAdd, Index: -1, Value: " flyers "},
			want:  entity.Lines{"instagram", "market stall", "website", "flyers"},
		},
		{
			name:  "insert at front",
			input: usecase.EditCanvasFieldInput{Op: usecase.LineOpAdd, Index: 0, Value: "word of mouth"},
			want:  entity.Lines{"word of mouth", "instagram", "market stall", "website"},
		},
		{
			name:  "remove",
			input: usecase.EditCanvasFieldInput{Op: usecase.LineOpRemove, Index: 1},
			want:  entity.Lines{"instagram", "website"},
		},
		{
			name:  "move",
			input: usecase.EditCanvasFieldInput{Op: usecase.LineOpMove, From: 2, To: 0},
			want:  entity.Lines{"website", "instagram", "market stall"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestManagementService(t)
			ownerID := uuid.New()
			business := &entity.Business{ID: uuid.New(), OwnerID: ownerID}
			var upserted *entity.Canvas

			fx.businessRepo.EXPECT().FindOneByOwner(ctx, ownerID).Return(business, nil)
			fx.canvasRepo.EXPECT().FindByBusiness(ctx, entity.CanvasBusinessModel, business.ID).Return(existing(business.ID), nil).Once()
			fx.canvasRepo.EXPECT().Upsert(ctx, mock.Anything).RunAndReturn(func(_ context.Context, c *entity.Canvas) error {
				upserted = c

				return nil
			})
			fx.canvasRepo.EXPECT().FindByBusiness(ctx, entity.CanvasBusinessModel, business.ID).
				RunAndReturn(func(context.Context, entity.CanvasKind, uuid.UUID) (*entity.Canvas, error) {
					return upserted, nil
				}).Once()
			fx.expectEvent(service.EventCanvasSaved)

			input := tt.input
			input.Kind = entity.CanvasBusinessModel
			input.Field = "channels"

			saved, err := fx.service.EditCanvasField(ctx, ownerID, input)

			require.NoError(t, err)
			assert.Equal(t, tt.want, saved.Field("channels"))
		})
	}
}

func TestManagementService_EditCanvasField_FirstEditCreatesCanvas(t *testing.T) {
	fx := createTestManagementService(t)
	ctx := context.Background()
	ownerID := uuid.New()
	business := &entity.Business{ID: uuid.New(), OwnerID: ownerID}

	fx.businessRepo.EXPECT().FindOneByOwner(ctx, ownerID).Return(business, nil)
	fx.canvasRepo.EXPECT().FindByBusiness(ctx, entity.CanvasValueProposition, business.ID).Return(nil, repository.ErrCanvasNotFound).Once()
	fx.canvasRepo.EXPECT().Upsert(ctx, mock.MatchedBy(func(c *entity.Canvas) bool {
		return c.BusinessID == business.ID && len(c.Field("customer_jobs")) == 1
	})).Return(nil)
	fx.canvasRepo.EXPECT().FindByBusiness(ctx, entity.CanvasValueProposition, business.ID).Return(&entity.Canvas{BusinessID: business.ID, Kind: entity.CanvasValueProposition}, nil).Once()
	fx.expectEvent(service.EventCanvasSaved)

	_, err := fx.service.EditCanvasField(ctx, ownerID, usecase.EditCanvasFieldInput{
		Kind:  entity.CanvasValueProposition,
		Field: "customer_jobs",
		Op:    usecase.LineOpAdd,
		Index: -1,
		Value: "grab breakfast between lectures",
	})

	require.NoError(t, err)
}

func TestManagementService_EditCanvasField_Invalid(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown field", func(t *testing.T) {
		fx := createTestManagementService(t)

		_, err := fx.service.EditCanvasField(ctx, uuid.New(), usecase.EditCanvasFieldInput{
			Kind: entity.CanvasBusinessModel, Field: "pains", Op: usecase.LineOpAdd, Value: "x",
		})

		assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	})

	t.Run("index out of range", func(t *testing.T) {
		fx := createTestManagementService(t)
		ownerID := uuid.New()
		business := &entity.Business{ID: uuid.New(), OwnerID: ownerID}

		fx.businessRepo.EXPECT().FindOneByOwner(ctx, ownerID).Return(business, nil)
		fx.canvasRepo.EXPECT().FindByBusiness(ctx, entity.CanvasBusinessModel, business.ID).Return(nil, repository.ErrCanvasNotFound)

		_, err := fx.service.EditCanvasField(ctx, ownerID, usecase.EditCanvasFieldInput{
			Kind: entity.CanvasBusinessModel, Field: "channels", Op: usecase.LineOpRemove, Index: 0,
		})

		assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
		fx.canvasRepo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
	})

	t.Run("blank line", func(t *testing.T) {
		fx := createTestManagementService(t)
		ownerID := uuid.New()
		business := &entity.Business{ID: uuid.New(), OwnerID: ownerID}

		fx.businessRepo.EXPECT().FindOneByOwner(ctx, ownerID).Return(business, nil)
		fx.canvasRepo.EXPECT().FindByBusiness(ctx, entity.CanvasBusinessModel, business.ID).Return(nil, repository.ErrCanvasNotFound)

		_, err := fx.service.EditCanvasField(ctx, ownerID, usecase.EditCanvasFieldInput{
			Kind: entity.CanvasBusinessModel, Field: "channels", Op: usecase.LineOpAdd, Index: -1, Value: "   ",
		})

		assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	})
}
