package worker

import (
	"context"
	"log/slog"
	"sync"

	"github.com/Abros3006/business-tracker/config"
	"github.com/Abros3006/business-tracker/internal/delivery"
	deliverycontext "github.com/Abros3006/business-tracker/internal/delivery/context"
	"github.com/Abros3006/business-tracker/internal/domain/lifecycle"
	"github.com/Abros3006/business-tracker/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"
	"go.uber.org/fx"
)

// SchedulerParams holds dependencies for the job scheduler
type SchedulerParams struct {
	fx.In

	Lc        fx.Lifecycle
	Cfg       *config.Config
	Logger    *slog.Logger
	AccountUC usecase.AccountUsecase
}

// scheduler runs periodic maintenance jobs.
type scheduler struct {
	cron      *cron.Cron
	accountUC usecase.AccountUsecase
	logger    *slog.Logger
	stopOnce  sync.Once
}

// NewScheduler registers the pending-deletion retry job on worker.deletionRetryCron.
func NewScheduler(params SchedulerParams) (delivery.Delivery, error) {
	s := newScheduler(params.AccountUC, params.Logger)

	spec := params.Cfg.Worker.DeletionRetryCron
	if _, err := s.cron.AddFunc(spec, s.retryPendingDeletions); err != nil {
		return nil, errors.Wrapf(err, "invalid deletion retry schedule %q", spec)
	}

	params.Lc.Append(fx.Hook{
		OnStop: s.stop,
	})

	return s, nil
}

func newScheduler(accountUC usecase.AccountUsecase, logger *slog.Logger) *scheduler {
	cronLogger := &slogCronLogger{logger: logger}

	return &scheduler{
		cron: cron.New(cron.WithChain(
			cron.Recover(cronLogger),
			cron.SkipIfStillRunning(cronLogger),
		), cron.WithLogger(cronLogger)),
		accountUC: accountUC,
		logger:    logger,
	}
}

// Serve starts the scheduler and blocks until ctx ends.
func (s *scheduler) Serve(ctx context.Context) error {
	s.logger.Info("Starting job scheduler", slog.Int("jobs", len(s.cron.Entries())))
	s.cron.Start()

	<-ctx.Done()

	return nil
}

func (s *scheduler) stop(ctx context.Context) error {
	var err error
	s.stopOnce.Do(func() {
		s.logger.Info("Stopping job scheduler")

		shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
		defer cancel()

		select {
		case <-s.cron.Stop().Done():
		case <-shutdownCtx.Done():
			err = errors.Wrap(shutdownCtx.Err(), "running jobs did not finish")
		}
	})

	return err
}

func (s *scheduler) retryPendingDeletions() {
	requestID := uuid.New().String()
	logger := s.logger.With(slog.String("request_id", requestID), slog.String("job", "retry_pending_deletions"))

	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout*6)
	defer cancel()
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, logger)

	out, err := s.accountUC.RetryPendingDeletions(ctx)
	if err != nil {
		logger.Error("Pending deletion retry failed", slog.Any("error", err))

		return
	}

	logger.Debug("Pending deletion retry finished",
		slog.Int("attempted", out.Attempted),
		slog.Int("completed", out.Completed),
		slog.Int("failed", out.Failed),
	)
}

// slogCronLogger adapts slog to cron.Logger.
type slogCronLogger struct {
	logger *slog.Logger
}

func (l *slogCronLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Debug("[cron] "+msg, keysAndValues...)
}

func (l *slogCronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.logger.Error("[cron] "+msg, append(keysAndValues, slog.Any("error", err))...)
}
