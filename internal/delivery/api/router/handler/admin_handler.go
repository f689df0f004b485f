package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/Abros3006/business-tracker/internal/delivery/api/middleware"
	"github.com/Abros3006/business-tracker/internal/delivery/api/response"
	"github.com/Abros3006/business-tracker/internal/delivery/api/validator"
	"github.com/Abros3006/business-tracker/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AdminHandlerParams holds dependencies for AdminHandler, injected by Fx.
type AdminHandlerParams struct {
	fx.In

	AccountUC usecase.AccountUsecase
	InviteUC  usecase.InviteUsecase
	Logger    *slog.Logger
}

// AdminHandler serves admin-only user management
type AdminHandler struct {
	accountUC usecase.AccountUsecase
	inviteUC  usecase.InviteUsecase
	logger    *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler
func NewAdminHandler(params AdminHandlerParams) *AdminHandler {
	return &AdminHandler{
		accountUC: params.AccountUC,
		inviteUC:  params.InviteUC,
		logger:    params.Logger,
	}
}

// IssueInviteRequest optionally overrides the invite lifetime, in hours.
type IssueInviteRequest struct {
	TTLHours int `json:"ttl_hours" validate:"omitempty,min=1,max=720"`
}

// InviteResponse carries the plaintext code. It is shown only once.
type InviteResponse struct {
	ID        uuid.UUID `json:"id"`
	Code      string    `json:"code"`
	ExpiresAt time.Time `json:"expires_at"`
}

// DeleteUserResponse reports the cascade outcome.
type DeleteUserResponse struct {
	UserID         uuid.UUID `json:"user_id"`
	AccountDeleted bool      `json:"account_deleted"`
}

// DeleteUser removes a user with their businesses and canvases.
func (h *AdminHandler) DeleteUser(c echo.Context) error {
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Please sign in to continue")
	}

	targetID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid user ID")
	}

	out, err := h.accountUC.DeleteUser(c.Request().Context(), actorID, targetID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	status := http.StatusOK
	if !out.AccountDeleted {
		status = http.StatusAccepted
	}

	return response.Success(c, status, DeleteUserResponse{
		UserID:         out.UserID,
		AccountDeleted: out.AccountDeleted,
	})
}

// IssueInvite creates a one-time admin registration code.
func (h *AdminHandler) IssueInvite(c echo.Context) error {
	adminID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Please sign in to continue")
	}

	var req IssueInviteRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid invite input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequestWithDetails(c, "VALIDATION_ERROR", "Invalid invite lifetime", validator.Fields(err))
	}

	invite, err := h.inviteUC.IssueAdminInvite(c.Request().Context(), adminID, time.Duration(req.TTLHours)*time.Hour)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, InviteResponse{
		ID:        invite.ID,
		Code:      invite.Code,
		ExpiresAt: invite.ExpiresAt,
	})
}
