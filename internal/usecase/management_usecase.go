package usecase

import (
	"context"

	"github.com/Abros3006/business-tracker/internal/domain/entity"

	"github.com/google/uuid"
)

// WorkspaceState is the owner's position in the NoBusiness -> HasBusiness machine.
type WorkspaceState string

const (
	WorkspaceNoBusiness  WorkspaceState = "no_business"
	WorkspaceHasBusiness WorkspaceState = "has_business"
)

// Workspace is everything the management view needs for one owner.
type Workspace struct {
	State                  WorkspaceState
	Business               *entity.Business
	BusinessModelCanvas    *entity.Canvas // nil until first saved
	ValuePropositionCanvas *entity.Canvas // nil until first saved
}

// SaveCanvasInput replaces canvas fields. Fields takes precedence over Text for the same name.
// Fields missing from both maps are saved empty.
type SaveCanvasInput struct {
	Kind   entity.CanvasKind
	Fields map[string][]string
	Text   map[string]string
}

// LineOp names a list-editing operation on a canvas field.
type LineOp string

const (
	LineOpAdd    LineOp = "add"
	LineOpRemove LineOp = "remove"
	LineOpMove   LineOp = "move"
)

// EditCanvasFieldInput is one list edit on one canvas field.
type EditCanvasFieldInput struct {
	Kind  entity.CanvasKind
	Field string
	Op    LineOp
	Value string // add
	Index int    // add (-1 appends), remove
	From  int    // move
	To    int    // move
}

// ManagementUsecase drives the owner's management view.
type ManagementUsecase interface {
	GetWorkspace(ctx context.Context, ownerID uuid.UUID) (*Workspace, error)
	CreateBusiness(ctx context.Context, ownerID uuid.UUID, details *entity.BusinessDetails) (*Workspace, error)
	UpdateBusiness(ctx context.Context, ownerID uuid.UUID, details *entity.BusinessDetails) (*entity.Business, error)
	SaveCanvas(ctx context.Context, ownerID uuid.UUID, input SaveCanvasInput) (*entity.Canvas, error)
	EditCanvasField(ctx context.Context, ownerID uuid.UUID, input EditCanvasFieldInput) (*entity.Canvas, error)
}
