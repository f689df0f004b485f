package handler

import (
	"log/slog"
	"net/http"

	"github.com/Abros3006/business-tracker/internal/delivery/api/middleware"
	"github.com/Abros3006/business-tracker/internal/delivery/api/response"
	"github.com/Abros3006/business-tracker/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const dashboardUnavailableNotice = "Dashboard data could not be loaded right now. Please try again shortly."

// DashboardHandlerParams holds dependencies for DashboardHandler, injected by Fx.
type DashboardHandlerParams struct {
	fx.In

	DashboardUC usecase.DashboardUsecase
	Logger      *slog.Logger
}

// DashboardHandler serves the role-conditional dashboard
type DashboardHandler struct {
	dashboardUC usecase.DashboardUsecase
	logger      *slog.Logger
}

// NewDashboardHandler is the constructor for DashboardHandler
func NewDashboardHandler(params DashboardHandlerParams) *DashboardHandler {
	return &DashboardHandler{
		dashboardUC: params.DashboardUC,
		logger:      params.Logger,
	}
}

// GetDashboard handles GET /dashboard?tab=overview|users
func (h *DashboardHandler) GetDashboard(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Please sign in to continue")
	}

	tab := usecase.DashboardTab(c.QueryParam("tab"))
	if tab != usecase.TabUsers {
		tab = usecase.TabOverview
	}

	dashboard, err := h.dashboardUC.Load(c.Request().Context(), userID, tab)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if dashboard.Degraded {
		return response.SuccessWithNotice(c, http.StatusOK, toDashboardResponse(dashboard), dashboardUnavailableNotice)
	}

	return response.Success(c, http.StatusOK, toDashboardResponse(dashboard))
}
