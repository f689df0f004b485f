package impl

import (
	"context"
	"log/slog"
	"time"

	"github.com/Abros3006/business-tracker/config"
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

const (
	defaultMaxDeletionAttempts = 10
	defaultDeletionBatchSize   = 50

	deletionDone    = "done"
	deletionPending = "pending"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	txManager    repository.TransactionManager
	profileRepo  repository.ProfileRepository
	deletionRepo repository.AccountDeletionRepository
	provider     service.AuthProvider
	store        service.SessionStore
	metrics      service.MetricsRecorder
	notifier     *eventNotifier
	maxAttempts  int
	batchSize    int
	logger       *slog.Logger
}

// AccountServiceParams holds dependencies for AccountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	ProfileRepo  repository.ProfileRepository
	DeletionRepo repository.AccountDeletionRepository
	Provider     service.AuthProvider
	Store        service.SessionStore
	Publisher    service.EventPublisher
	Metrics      service.MetricsRecorder
	Config       *config.Config
	Logger       *slog.Logger
}

// NewAccountService is the constructor for accountService.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	maxAttempts, batchSize := defaultMaxDeletionAttempts, defaultDeletionBatchSize
	if w := params.Config.Worker; w != nil {
		if w.MaxDeletionAttempts > 0 {
			maxAttempts = w.MaxDeletionAttempts
		}
		if w.DeletionBatchSize > 0 {
			batchSize = w.DeletionBatchSize
		}
	}

	return &accountService{
		txManager:    params.TxManager,
		profileRepo:  params.ProfileRepo,
		deletionRepo: params.DeletionRepo,
		provider:     params.Provider,
		store:        params.Store,
		metrics:      params.Metrics,
		notifier: &eventNotifier{
			store:     params.Store,
			publisher: params.Publisher,
			metrics:   params.Metrics,
			now:       time.Now,
		},
		maxAttempts: maxAttempts,
		batchSize:   batchSize,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// DeleteUser removes the target's canvases, businesses and profile in one transaction,
// together with an outbox row. The auth account is removed after commit; when that
// fails the row stays pending for the worker.
func (srv *accountService) DeleteUser(ctx context.Context, actorID, targetID uuid.UUID) (*usecase.DeleteUserOutput, error) {
	actor, err := srv.profileRepo.FindByID(ctx, actorID)
	if err != nil || !actor.IsAdmin() {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "only admins can delete users")
	}
	if actorID == targetID {
		return nil, domainerrors.ErrCannotDeleteSelf
	}

	deletion := &entity.AccountDeletion{
		UserID:      targetID,
		RequestedBy: actorID,
		Status:      entity.DeletionPending,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		businessRepo := repoFactory.BusinessRepo()

		owned, err := businessRepo.FindByOwner(ctx, targetID)
		if err != nil {
			return errors.Wrap(err, "find businesses")
		}

		ids := make([]uuid.UUID, 0, len(owned))
		for _, b := range owned {
			ids = append(ids, b.ID)
		}

		if err := repoFactory.CanvasRepo().DeleteByBusinesses(ctx, ids); err != nil {
			return errors.Wrap(err, "delete canvases")
		}
		if _, err := businessRepo.DeleteByOwner(ctx, targetID); err != nil {
			return errors.Wrap(err, "delete businesses")
		}

		if err := repoFactory.ProfileRepo().Delete(ctx, targetID); err != nil {
			if errors.Is(err, repository.ErrProfileNotFound) {
				return errors.Wrap(domainerrors.ErrProfileNotFound, "delete profile")
			}

			return errors.Wrap(err, "delete profile")
		}

		return errors.Wrap(repoFactory.AccountDeletionRepo().Create(ctx, deletion), "record deletion")
	})
	if err != nil {
		srv.log(ctx).Error("User deletion rolled back",
			slog.String("target_id", targetID.String()),
			slog.Any("error", err),
		)

		return nil, errors.Wrap(err, "failed to execute user deletion transaction")
	}

	srv.log(ctx).Info("User data deleted",
		slog.String("target_id", targetID.String()),
		slog.String("actor_id", actorID.String()),
	)

	srv.revokeSessions(ctx, targetID)

	return &usecase.DeleteUserOutput{
		UserID:         targetID,
		AccountDeleted: srv.removeAccount(ctx, deletion),
	}, nil
}

// RetryPendingDeletions retries auth account removal for pending outbox rows.
func (srv *accountService) RetryPendingDeletions(ctx context.Context) (*usecase.RetryOutput, error) {
	pending, err := srv.deletionRepo.FindPending(ctx, srv.maxAttempts, srv.batchSize)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load pending deletions")
	}

	output := &usecase.RetryOutput{}
	for _, deletion := range pending {
		if ctx.Err() != nil {
			break
		}

		output.Attempted++
		if srv.removeAccount(ctx, deletion) {
			output.Completed++
		} else {
			output.Failed++
		}
	}

	if output.Attempted > 0 {
		srv.log(ctx).Info("Pending deletions processed",
			slog.Int("attempted", output.Attempted),
			slog.Int("completed", output.Completed),
			slog.Int("failed", output.Failed),
		)
	}

	return output, nil
}

// removeAccount deletes the auth account behind deletion and settles the outbox row.
// It reports whether the account is gone.
func (srv *accountService) removeAccount(ctx context.Context, deletion *entity.AccountDeletion) bool {
	logger := srv.log(ctx).With(slog.String("target_id", deletion.UserID.String()))

	if err := srv.provider.DeleteUser(ctx, deletion.UserID); err != nil {
		logger.Warn("Auth account removal failed, left pending", slog.Any("error", err))
		srv.metrics.RecordDeletion(deletionPending)

		if recErr := srv.deletionRepo.RecordFailure(ctx, deletion.ID, err.Error()); recErr != nil {
			logger.Error("Failed to record deletion failure", slog.Any("error", recErr))
		}

		return false
	}

	if err := srv.deletionRepo.MarkDone(ctx, deletion.ID); err != nil {
		logger.Error("Failed to mark deletion done", slog.Any("error", err))
	}
	srv.metrics.RecordDeletion(deletionDone)
	srv.notifier.domainEvent(ctx, logger, service.EventUserDeleted, forUser(deletion.UserID))

	return true
}

// revokeSessions drops every stored session of a user whose data is gone.
// It runs once the cascade commits, whatever the auth provider later says.
func (srv *accountService) revokeSessions(ctx context.Context, userID uuid.UUID) {
	logger := srv.log(ctx).With(slog.String("target_id", userID.String()))

	if err := srv.store.DeleteByUser(ctx, userID); err != nil {
		logger.Warn("Failed to drop sessions of deleted user", slog.Any("error", err))
	}
	srv.notifier.sessionChanged(ctx, logger, entity.SessionSignedOut, userID, "")
}
