package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/Abros3006/business-tracker/config"
	"github.com/Abros3006/business-tracker/internal/delivery"
	"github.com/Abros3006/business-tracker/internal/delivery/worker"
	"github.com/Abros3006/business-tracker/internal/delivery/worker/handler"
	"github.com/Abros3006/business-tracker/internal/domain/service"
	logs "github.com/Abros3006/business-tracker/internal/infra/log"
	"github.com/Abros3006/business-tracker/internal/infra/metrics"
	"github.com/Abros3006/business-tracker/internal/infra/persistence/postgres"
	"github.com/Abros3006/business-tracker/internal/infra/pubsub"
	"github.com/Abros3006/business-tracker/internal/infra/qrcode"
	"github.com/Abros3006/business-tracker/internal/infra/session"
	"github.com/Abros3006/business-tracker/internal/infra/supabase"
	"github.com/Abros3006/business-tracker/internal/usecase/impl"

	"go.uber.org/fx"
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
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
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
		// deletions revoke sessions, so the worker shares the API's store
		func(store session.Store) service.SessionStore { return store },
		fx.Annotate(
			metrics.New,
			fx.As(fx.Self()),
			fx.As(new(service.MetricsRecorder)),
		),
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewBusinessRepository,
			postgres.NewProfileRepository,
			postgres.NewAccountDeletionRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			supabase.NewAuthProvider,
			qrcode.New,
			pubsub.NewEventPublisher,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewDirectoryService,
			impl.NewAccountService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewPushHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				worker.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				worker.NewScheduler,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
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
