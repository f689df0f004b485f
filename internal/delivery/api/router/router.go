// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"github.com/Abros3006/business-tracker/config"
	"github.com/Abros3006/business-tracker/internal/delivery/api/middleware"
	"github.com/Abros3006/business-tracker/internal/delivery/api/router/handler"
	"github.com/Abros3006/business-tracker/internal/domain/entity"
	"github.com/Abros3006/business-tracker/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const defaultMetricsPath = "/metrics"

type RouterParams struct {
	fx.In

	AuthHandler       *handler.AuthHandler
	ShellHandler      *handler.ShellHandler
	DirectoryHandler  *handler.DirectoryHandler
	ManagementHandler *handler.ManagementHandler
	DashboardHandler  *handler.DashboardHandler
	AdminHandler      *handler.AdminHandler
	HealthHandler     *handler.HealthHandler
	SessionMiddleware *middleware.SessionMiddleware
	Metrics           *metrics.Metrics `optional:"true"`
	Config            *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler       *handler.AuthHandler
	shellHandler      *handler.ShellHandler
	directoryHandler  *handler.DirectoryHandler
	managementHandler *handler.ManagementHandler
	dashboardHandler  *handler.DashboardHandler
	adminHandler      *handler.AdminHandler
	healthHandler     *handler.HealthHandler
	session           *middleware.SessionMiddleware
	metrics           *metrics.Metrics
	config            *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:       params.AuthHandler,
		shellHandler:      params.ShellHandler,
		directoryHandler:  params.DirectoryHandler,
		managementHandler: params.ManagementHandler,
		dashboardHandler:  params.DashboardHandler,
		adminHandler:      params.AdminHandler,
		healthHandler:     params.HealthHandler,
		session:           params.SessionMiddleware,
		metrics:           params.Metrics,
		config:            params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", r.healthHandler.HealthCheck)

	apiV1 := e.Group("/api/v1")

	// Auth routes, rate limited per client IP
	authGroup := apiV1.Group("/auth")
	{
		limiter := middleware.NewAuthRateLimiter(r.config)
		authGroup.POST("/login", r.authHandler.Login, limiter)
		authGroup.POST("/register", r.authHandler.Register, limiter)
		authGroup.POST("/password-reset", r.authHandler.RequestPasswordReset, limiter)
		authGroup.POST("/logout", r.authHandler.Logout)
	}

	// Chrome
	apiV1.GET("/shell", r.shellHandler.GetShell)
	apiV1.GET("/session/stream", r.shellHandler.Stream, r.session.RequireSession)

	// Public directory
	apiV1.GET("/industries", r.directoryHandler.ListIndustries)
	businessesGroup := apiV1.Group("/businesses")
	{
		businessesGroup.GET("", r.directoryHandler.ListBusinesses)
		businessesGroup.GET("/:id", r.directoryHandler.GetBusiness)
		businessesGroup.GET("/:id/qrcode", r.directoryHandler.GetBusinessQRCode)
	}

	// Dashboard for any signed-in user
	dashboardGroup := apiV1.Group("/dashboard", r.session.RequireSession)
	{
		dashboardGroup.GET("", r.dashboardHandler.GetDashboard)
	}

	// Owner's business management
	manageGroup := apiV1.Group("/business/manage", r.session.RequireSession)
	{
		manageGroup.GET("", r.managementHandler.GetWorkspace)
		manageGroup.POST("", r.managementHandler.CreateBusiness)
		manageGroup.PUT("", r.managementHandler.UpdateBusiness)
		manageGroup.PUT("/canvas/:kind", r.managementHandler.SaveCanvas)
		manageGroup.PATCH("/canvas/:kind/fields/:field", r.managementHandler.EditCanvasField)
	}

	// Admin routes: first check the session, then the role
	adminGroup := apiV1.Group("/admin", r.session.RequireSession, r.session.RequireRole(entity.RoleAdmin))
	{
		adminGroup.DELETE("/users/:id", r.adminHandler.DeleteUser)
		adminGroup.POST("/invites", r.adminHandler.IssueInvite)
	}
}

// RegisterMetricsRoute exposes Prometheus metrics when enabled.
func (r *router) RegisterMetricsRoute(e *echo.Echo) {
	if r.metrics == nil || r.config.Metrics == nil || !r.config.Metrics.Enabled {
		return
	}

	path := r.config.Metrics.Path
	if path == "" {
		path = defaultMetricsPath
	}

	e.GET(path, echo.WrapHandler(r.metrics.Handler()))
}
