package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/Abros3006/business-tracker/internal/infra/session"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const healthCheckTimeout = 2 * time.Second

// HealthHandlerParams holds dependencies for HealthHandler, injected by Fx.
type HealthHandlerParams struct {
	fx.In

	DB     *gorm.DB
	Store  session.Store
	Logger *slog.Logger
}

// HealthHandler reports whether the database and the session store answer.
type HealthHandler struct {
	db     *gorm.DB
	store  session.Store
	logger *slog.Logger
}

// NewHealthHandler is the constructor for HealthHandler
func NewHealthHandler(params HealthHandlerParams) *HealthHandler {
	return &HealthHandler{
		db:     params.DB,
		store:  params.Store,
		logger: params.Logger,
	}
}

// HealthResponse lists each dependency as "ok" or "unavailable".
type HealthResponse struct {
	Status   string            `json:"status"`
	Services map[string]string `json:"services"`
}

// HealthCheck pings Postgres and the session store.
func (h *HealthHandler) HealthCheck(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), healthCheckTimeout)
	defer cancel()

	resp := HealthResponse{
		Status: "ok",
		Services: map[string]string{
			"database":      "ok",
			"session_store": "ok",
		},
	}

	if err := h.pingDB(ctx); err != nil {
		h.logger.Warn("Database health check failed", slog.Any("error", err))
		resp.Services["database"] = "unavailable"
		resp.Status = "degraded"
	}

	if err := h.store.Ping(ctx); err != nil {
		h.logger.Warn("Session store health check failed", slog.Any("error", err))
		resp.Services["session_store"] = "unavailable"
		resp.Status = "degraded"
	}

	status := http.StatusOK
	if resp.Status != "ok" {
		status = http.StatusServiceUnavailable
	}

	return c.JSON(status, resp)
}

func (h *HealthHandler) pingDB(ctx context.Context) error {
	sqlDB, err := h.db.DB()
	if err != nil {
		return err
	}

	return sqlDB.PingContext(ctx)
}
