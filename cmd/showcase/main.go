package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/Abros3006/business-tracker/config"
	"github.com/Abros3006/business-tracker/internal/delivery"
	"github.com/Abros3006/business-tracker/internal/delivery/api"
	apimiddleware "github.com/Abros3006/business-tracker/internal/delivery/api/middleware"
	"github.com/Abros3006/business-tracker/internal/delivery/api/router/handler"
	"github.com/Abros3006/business-tracker/internal/delivery/middleware"
	"github.com/Abros3006/business-tracker/internal/domain/service"
	"github.com/Abros3006/business-tracker/internal/infra/auth"
	logs "github.com/Abros3006/business-tracker/internal/infra/log"
	"github.com/Abros3006/business-tracker/internal/infra/metrics"
	"github.com/Abros3006/business-tracker/internal/infra/persistence/migrations"
	"github.com/Abros3006/business-tracker/internal/infra/persistence/postgres"
	"github.com/Abros3006/business-tracker/internal/infra/pubsub"
	"github.com/Abros3006/business-tracker/internal/infra/qrcode"
	"github.com/Abros3006/business-tracker/internal/infra/session"
	"github.com/Abros3006/business-tracker/internal/infra/supabase"
	"github.com/Abros3006/business-tracker/internal/usecase/impl"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			migrations.RunOnStart,
			registerDBMetrics,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
		session.New,
		// usecases depend on the domain interface, health checks on the pingable store
		func(store session.Store) service.SessionStore { return store },
		fx.Annotate(
			metrics.New,
			fx.As(fx.Self()),
			fx.As(new(service.MetricsRecorder)),
			fx.As(new(middleware.HTTPObserver)),
		),
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewBusinessRepository,
			postgres.NewProfileRepository,
			postgres.NewCanvasRepository,
			postgres.NewInviteRepository,
			postgres.NewAccountDeletionRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTVerifier,
			supabase.NewAuthProvider,
			qrcode.New,
			pubsub.NewEventPublisher,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewSessionService,
			impl.NewAuthService,
			impl.NewDirectoryService,
			impl.NewManagementService,
			impl.NewDashboardService,
			impl.NewAccountService,
			impl.NewInviteService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			apimiddleware.NewSessionMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewShellHandler,
			handler.NewDirectoryHandler,
			handler.NewManagementHandler,
			handler.NewDashboardHandler,
			handler.NewAdminHandler,
			handler.NewHealthHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// registerDBMetrics exports connection pool stats next to the HTTP metrics.
func registerDBMetrics(m *metrics.Metrics, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return errors.Wrap(err, "failed to get sql.DB for metrics")
	}

	return m.RegisterDB(sqlDB, "primary")
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
