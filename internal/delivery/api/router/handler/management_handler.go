package handler

import (
	"log/slog"
	"net/http"

	"github.com/Abros3006/business-tracker/internal/delivery/api/middleware"
	"github.com/Abros3006/business-tracker/internal/delivery/api/response"
	"github.com/Abros3006/business-tracker/internal/delivery/api/validator"
	"github.com/Abros3006/business-tracker/internal/domain/entity"
	"github.com/Abros3006/business-tracker/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ManagementHandlerParams holds dependencies for ManagementHandler, injected by Fx.
type ManagementHandlerParams struct {
	fx.In

	ManagementUC usecase.ManagementUsecase
	Logger       *slog.Logger
}

// ManagementHandler serves the owner's business and canvas editing.
type ManagementHandler struct {
	managementUC usecase.ManagementUsecase
	logger       *slog.Logger
}

// NewManagementHandler is the constructor for ManagementHandler
func NewManagementHandler(params ManagementHandlerParams) *ManagementHandler {
	return &ManagementHandler{
		managementUC: params.ManagementUC,
		logger:       params.Logger,
	}
}

// SaveCanvasRequest replaces a canvas. Fields wins over Text for the same name.
type SaveCanvasRequest struct {
	Fields map[string][]string `json:"fields"`
	Text   map[string]string   `json:"text"`
}

// EditCanvasFieldRequest is one list edit. Index defaults to append for add.
type EditCanvasFieldRequest struct {
	Op    string `json:"op" validate:"required,oneof=add remove move"`
	Value string `json:"value" validate:"required_if=Op add"`
	Index *int   `json:"index" validate:"required_if=Op remove"`
	From  *int   `json:"from" validate:"required_if=Op move"`
	To    *int   `json:"to" validate:"required_if=Op move"`
}

// GetWorkspace returns the owner's state, business and canvases.
func (h *ManagementHandler) GetWorkspace(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Please sign in to continue")
	}

	workspace, err := h.managementUC.GetWorkspace(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toWorkspaceResponse(workspace))
}

// CreateBusiness creates the owner's only business.
func (h *ManagementHandler) CreateBusiness(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Please sign in to continue")
	}

	var req BusinessDetailsRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid business input")
	}
	req.normalize()

	if err := c.Validate(&req); err != nil {
		return response.BadRequestWithDetails(c, "VALIDATION_ERROR", "Please check the highlighted fields", validator.Fields(err))
	}

	workspace, err := h.managementUC.CreateBusiness(c.Request().Context(), userID, req.toEntity())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toWorkspaceResponse(workspace))
}

// UpdateBusiness edits the owner's business.
func (h *ManagementHandler) UpdateBusiness(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Please sign in to continue")
	}

	var req BusinessDetailsRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid business input")
	}
	req.normalize()

	if err := c.Validate(&req); err != nil {
		return response.BadRequestWithDetails(c, "VALIDATION_ERROR", "Please check the highlighted fields", validator.Fields(err))
	}

	business, err := h.managementUC.UpdateBusiness(c.Request().Context(), userID, req.toEntity())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toBusinessResponse(business))
}

// SaveCanvas replaces every field of one canvas.
func (h *ManagementHandler) SaveCanvas(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Please sign in to continue")
	}

	var req SaveCanvasRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid canvas input")
	}

	canvas, err := h.managementUC.SaveCanvas(c.Request().Context(), userID, usecase.SaveCanvasInput{
		Kind:   entity.CanvasKind(c.Param("kind")),
		Fields: req.Fields,
		Text:   req.Text,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toCanvasResponse(canvas))
}

// EditCanvasField adds, removes or moves one line of a canvas field.
func (h *ManagementHandler) EditCanvasField(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Please sign in to continue")
	}

	var req EditCanvasFieldRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid canvas edit")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequestWithDetails(c, "VALIDATION_ERROR", "Invalid canvas edit", validator.Fields(err))
	}

	canvas, err := h.managementUC.EditCanvasField(c.Request().Context(), userID, usecase.EditCanvasFieldInput{
		Kind:  entity.CanvasKind(c.Param("kind")),
		Field: c.Param("field"),
		Op:    usecase.LineOp(req.Op),
		Value: req.Value,
		Index: intOr(req.Index, -1),
		From:  intOr(req.From, 0),
		To:    intOr(req.To, 0),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toCanvasResponse(canvas))
}

func intOr(v *int, fallback int) int {
	if v == nil {
		return fallback
	}

	return *v
}
