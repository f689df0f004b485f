package impl

import (
	"context"
	"log/slog"
	"time"

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

// managementService implements the ManagementUsecase interface.
type managementService struct {
	businessRepo repository.BusinessRepository
	canvasRepo   repository.CanvasRepository
	notifier     *eventNotifier
	logger       *slog.Logger
}

// ManagementServiceParams holds dependencies for ManagementService, injected by Fx.
type ManagementServiceParams struct {
	fx.In

	BusinessRepo repository.BusinessRepository
	CanvasRepo   repository.CanvasRepository
	Publisher    service.EventPublisher
	Logger       *slog.Logger
}

// NewManagementService is the constructor for managementService.
func NewManagementService(params ManagementServiceParams) usecase.ManagementUsecase {
	return &managementService{
		businessRepo: params.BusinessRepo,
		canvasRepo:   params.CanvasRepo,
		notifier: &eventNotifier{
			publisher: params.Publisher,
			now:       time.Now,
		},
		logger: params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *managementService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetWorkspace reports the owner's state and, once a business exists, its canvases.
func (srv *managementService) GetWorkspace(ctx context.Context, ownerID uuid.UUID) (*usecase.Workspace, error) {
	business, err := srv.businessRepo.FindOneByOwner(ctx, ownerID)
	if errors.Is(err, repository.ErrBusinessNotFound) {
		return &usecase.Workspace{State: usecase.WorkspaceNoBusiness}, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load owner business")
	}

	workspace := &usecase.Workspace{
		State:    usecase.WorkspaceHasBusiness,
		Business: business,
	}

	if workspace.BusinessModelCanvas, err = srv.findCanvas(ctx, entity.CanvasBusinessModel, business.ID); err != nil {
		return nil, err
	}
	if workspace.ValuePropositionCanvas, err = srv.findCanvas(ctx, entity.CanvasValueProposition, business.ID); err != nil {
		return nil, err
	}

	return workspace, nil
}

// findCanvas returns nil without error when the canvas was never saved.
func (srv *managementService) findCanvas(ctx context.Context, kind entity.CanvasKind, businessID uuid.UUID) (*entity.Canvas, error) {
	canvas, err := srv.canvasRepo.FindByBusiness(ctx, kind, businessID)
	if errors.Is(err, repository.ErrCanvasNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load %s canvas", kind)
	}

	return canvas, nil
}

// CreateBusiness moves the owner from NoBusiness to HasBusiness.
func (srv *managementService) CreateBusiness(ctx context.Context, ownerID uuid.UUID, details *entity.BusinessDetails) (*usecase.Workspace, error) {
	_, err := srv.businessRepo.FindOneByOwner(ctx, ownerID)
	if err == nil {
		return nil, domainerrors.ErrBusinessAlreadyExists
	}
	if !errors.Is(err, repository.ErrBusinessNotFound) {
		return nil, errors.Wrap(err, "failed to check existing business")
	}

	business := entity.NewBusiness(ownerID, details)
	if err := srv.businessRepo.Create(ctx, business); err != nil {
		if errors.Is(err, repository.ErrDuplicateBusiness) {
			return nil, errors.Wrap(domainerrors.ErrBusinessAlreadyExists, "concurrent create")
		}

		return nil, errors.Wrap(err, "failed to create business")
	}

	// re-read for server-assigned defaults
	created, err := srv.businessRepo.FindByID(ctx, business.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to reload created business")
	}

	srv.log(ctx).Info("Business created",
		slog.String("business_id", created.ID.String()),
		slog.String("owner_id", ownerID.String()),
	)
	srv.notifier.domainEvent(ctx, srv.log(ctx), service.EventBusinessCreated, forBusiness(created.ID))

	return &usecase.Workspace{
		State:    usecase.WorkspaceHasBusiness,
		Business: created,
	}, nil
}

// UpdateBusiness overwrites the owner's business details.
func (srv *managementService) UpdateBusiness(ctx context.Context, ownerID uuid.UUID, details *entity.BusinessDetails) (*entity.Business, error) {
	business, err := srv.ownedBusiness(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	if err := srv.businessRepo.UpdateDetails(ctx, business.ID, details); err != nil {
		if errors.Is(err, repository.ErrBusinessNotFound) {
			return nil, errors.Wrap(domainerrors.ErrBusinessNotFound, "business removed during update")
		}

		return nil, errors.Wrap(err, "failed to update business")
	}

	updated, err := srv.businessRepo.FindByID(ctx, business.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to reload updated business")
	}

	srv.notifier.domainEvent(ctx, srv.log(ctx), service.EventBusinessUpdated, forBusiness(updated.ID))

	return updated, nil
}

// SaveCanvas replaces every field of one canvas with a single upsert.
func (srv *managementService) SaveCanvas(ctx context.Context, ownerID uuid.UUID, input usecase.SaveCanvasInput) (*entity.Canvas, error) {
	if !input.Kind.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown canvas kind")
	}

	business, err := srv.ownedBusiness(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	canvas := entity.NewCanvas(input.Kind, business.ID)
	for name, text := range input.Text {
		if err := canvas.SetField(name, entity.ParseLines(text)); err != nil {
			return nil, domainerrors.ErrValidationFailed.WithDetails("unknown field " + name)
		}
	}
	for name, lines := range input.Fields {
		if err := canvas.SetField(name, entity.Lines(lines)); err != nil {
			return nil, domainerrors.ErrValidationFailed.WithDetails("unknown field " + name)
		}
	}

	return srv.persistCanvas(ctx, canvas)
}

// EditCanvasField applies one list edit to one field and saves the canvas.
func (srv *managementService) EditCanvasField(ctx context.Context, ownerID uuid.UUID, input usecase.EditCanvasFieldInput) (*entity.Canvas, error) {
	if !input.Kind.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown canvas kind")
	}
	if !input.Kind.HasField(input.Field) {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown field " + input.Field)
	}

	business, err := srv.ownedBusiness(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	canvas, err := srv.findCanvas(ctx, input.Kind, business.ID)
	if err != nil {
		return nil, err
	}
	if canvas == nil {
		canvas = entity.NewCanvas(input.Kind, business.ID)
	}

	current := canvas.Field(input.Field)
	var edited entity.Lines
	switch input.Op {
	case usecase.LineOpAdd:
		edited, err = current.Insert(input.Index, input.Value)
	case usecase.LineOpRemove:
		edited, err = current.Remove(input.Index)
	case usecase.LineOpMove:
		edited, err = current.Move(input.From, input.To)
	default:
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown operation " + string(input.Op))
	}
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	if err := canvas.SetField(input.Field, edited); err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return srv.persistCanvas(ctx, canvas)
}

func (srv *managementService) persistCanvas(ctx context.Context, canvas *entity.Canvas) (*entity.Canvas, error) {
	if err := srv.canvasRepo.Upsert(ctx, canvas); err != nil {
		if errors.Is(err, repository.ErrBusinessNotFound) {
			return nil, errors.Wrap(domainerrors.ErrBusinessNotFound, "save canvas")
		}

		return nil, errors.Wrapf(err, "failed to save %s canvas", canvas.Kind)
	}

	// the stored row keeps its original created_at across upserts
	saved, err := srv.canvasRepo.FindByBusiness(ctx, canvas.Kind, canvas.BusinessID)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to reload %s canvas", canvas.Kind)
	}

	srv.notifier.domainEvent(ctx, srv.log(ctx), service.EventCanvasSaved, func(event *service.DomainEvent) {
		event.BusinessID = saved.BusinessID.String()
		event.Attributes = map[string]string{"canvas_kind": string(saved.Kind)}
	})

	return saved, nil
}

func (srv *managementService) ownedBusiness(ctx context.Context, ownerID uuid.UUID) (*entity.Business, error) {
	business, err := srv.businessRepo.FindOneByOwner(ctx, ownerID)
	if errors.Is(err, repository.ErrBusinessNotFound) {
		return nil, errors.Wrap(domainerrors.ErrBusinessNotFound, "owner has no business yet")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load owner business")
	}

	return business, nil
}
