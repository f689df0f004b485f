package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "github.com/Abros3006/business-tracker/internal/delivery/context"
	"github.com/Abros3006/business-tracker/internal/domain/constants"
	"github.com/Abros3006/business-tracker/internal/domain/entity"
	"github.com/Abros3006/business-tracker/internal/domain/service"

	"github.com/google/uuid"
)

// eventNotifier fans out session transitions and domain events. Failures are logged:
// the state change they describe has already happened.
type eventNotifier struct {
	store     service.SessionStore
	publisher service.EventPublisher
	metrics   service.MetricsRecorder
	now       func() time.Time
}

func (n *eventNotifier) sessionChanged(ctx context.Context, logger *slog.Logger, eventType entity.SessionEventType, userID uuid.UUID, sessionID string) {
	event := entity.SessionEvent{
		Type:       eventType,
		UserID:     userID,
		SessionID:  sessionID,
		OccurredAt: n.now().UTC(),
	}
	if eventType == entity.SessionSignedOut {
		event.Redirect = constants.LoginPath
	}

	if err := n.store.Publish(ctx, event); err != nil {
		logger.Warn("Failed to publish session event",
			slog.String("type", string(eventType)),
			slog.String("user_id", userID.String()),
			slog.Any("error", err),
		)

		return
	}
	n.metrics.RecordSessionEvent(string(eventType))
}

func (n *eventNotifier) domainEvent(ctx context.Context, logger *slog.Logger, eventType service.EventType, decorate func(*service.DomainEvent)) {
	if n.publisher == nil {
		return
	}

	event := service.NewDomainEvent(eventType, deliverycontext.GetRequestIDFromContext(ctx))
	if decorate != nil {
		decorate(event)
	}

	if err := n.publisher.Publish(ctx, event); err != nil {
		logger.Warn("Failed to publish domain event",
			slog.String("event_type", string(eventType)),
			slog.String("business_id", event.BusinessID),
			slog.Any("error", err),
		)
	}
}

func forBusiness(id uuid.UUID) func(*service.DomainEvent) {
	return func(event *service.DomainEvent) {
		event.BusinessID = id.String()
	}
}

func forUser(id uuid.UUID) func(*service.DomainEvent) {
	return func(event *service.DomainEvent) {
		event.UserID = id.String()
	}
}
