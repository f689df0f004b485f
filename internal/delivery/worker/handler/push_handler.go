package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/Abros3006/business-tracker/config"
	deliverycontext "github.com/Abros3006/business-tracker/internal/delivery/context"
	domainerrors "github.com/Abros3006/business-tracker/internal/domain/errors"
	"github.com/Abros3006/business-tracker/internal/domain/service"
	"github.com/Abros3006/business-tracker/internal/infra/pubsub"
	"github.com/Abros3006/business-tracker/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// Event outcomes recorded by the metrics recorder.
const (
	resultProcessed = "processed"
	resultIgnored   = "ignored"
	resultDropped   = "dropped"
	resultRetry     = "retry"
)

var errMalformed = errors.New("malformed message")

// retryableError wraps an error to indicate it should trigger a Pub/Sub retry
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *retryableError) Unwrap() error {
	return e.err
}

// newRetryableError wraps an error as retryable
func newRetryableError(err error) error {
	return &retryableError{err: err}
}

// isRetryableError checks if an error is retryable
func isRetryableError(err error) bool {
	var re *retryableError

	return errors.As(err, &re)
}

// tokenValidator matches idtoken.Validate.
type tokenValidator func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

// PushHandler handles Pub/Sub push messages carrying domain events
type PushHandler struct {
	verifyPushAuth      bool
	audience            string
	serviceAccountEmail string
	validate            tokenValidator
	directoryUC         usecase.DirectoryUsecase
	metrics             service.MetricsRecorder
	logger              *slog.Logger
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config      *config.Config
	Logger      *slog.Logger
	DirectoryUC usecase.DirectoryUsecase
	Metrics     service.MetricsRecorder
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	h := &PushHandler{
		validate:    idtoken.Validate,
		directoryUC: params.DirectoryUC,
		metrics:     params.Metrics,
		logger:      params.Logger,
	}

	if worker := params.Config.Worker; worker != nil {
		h.verifyPushAuth = worker.PushAuth.Enabled
		h.audience = worker.PushAuth.Audience
		h.serviceAccountEmail = worker.PushAuth.ServiceAccountEmail
	}

	return h
}

// HandlePush acknowledges with 204 for processed, ignored and malformed messages, and
// answers 500 when the message should be redelivered.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyPushAuth {
		if err := h.verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var envelope pubsub.PushEnvelope
	if err := c.Bind(&envelope); err != nil {
		return h.drop(c, "", errors.Wrap(errMalformed, err.Error()))
	}

	event, err := decodeEvent(&envelope)
	if err != nil {
		return h.drop(c, "", err)
	}

	requestID := h.extractRequestID(ctx, &envelope, event)
	reqLogger := h.logger.With(
		slog.String("request_id", requestID),
		slog.String("event_id", event.ID),
		slog.String("event_type", string(event.Type)),
	)
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	result, err := h.dispatch(ctx, event)
	switch {
	case err == nil:
		h.metrics.RecordEvent(string(event.Type), result)
		reqLogger.Debug("[Worker] Event handled", slog.String("result", result))

		return c.NoContent(http.StatusNoContent)

	case isRetryableError(err):
		h.metrics.RecordEvent(string(event.Type), resultRetry)
		reqLogger.Error("[Worker] Event failed, requesting redelivery", slog.Any("error", err))

		return c.NoContent(http.StatusInternalServerError)

	default:
		return h.drop(c, string(event.Type), err)
	}
}

func (h *PushHandler) drop(c echo.Context, eventType string, err error) error {
	if eventType == "" {
		eventType = "unknown"
	}
	h.metrics.RecordEvent(eventType, resultDropped)
	deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).
		Warn("[Worker] Dropping message", slog.String("event_type", eventType), slog.Any("error", err))

	return c.NoContent(http.StatusNoContent)
}

func decodeEvent(envelope *pubsub.PushEnvelope) (*service.DomainEvent, error) {
	data, err := base64.StdEncoding.DecodeString(envelope.Message.Data)
	if err != nil {
		return nil, errors.Wrap(errMalformed, "data is not base64")
	}

	var event service.DomainEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return nil, errors.Wrap(errMalformed, "data is not a domain event")
	}

	if event.Type == "" {
		// older publishers only set the attribute
		event.Type = service.EventType(envelope.Message.Attributes["event_type"])
	}
	if event.Type == "" {
		return nil, errors.Wrap(errMalformed, "missing event type")
	}

	if event.ID == "" {
		event.ID = envelope.Message.MessageID
	}

	return &event, nil
}

// dispatch runs the side effect for event and returns the outcome label.
func (h *PushHandler) dispatch(ctx context.Context, event *service.DomainEvent) (string, error) {
	switch event.Type {
	case service.EventBusinessViewed:
		businessID, err := uuid.Parse(event.BusinessID)
		if err != nil {
			return "", errors.Wrap(errMalformed, "invalid business id")
		}

		if err := h.directoryUC.RecordVisit(ctx, businessID); err != nil {
			if errors.Is(err, domainerrors.ErrBusinessNotFound) {
				// deleted after the view was published
				return resultIgnored, nil
			}

			return "", newRetryableError(err)
		}

		return resultProcessed, nil

	default:
		deliverycontext.GetLoggerOrDefault(ctx, h.logger).Info("[Worker] Event acknowledged")

		return resultIgnored, nil
	}
}

// extractRequestID extracts request_id from message attributes, event, or generates a new one
func (h *PushHandler) extractRequestID(ctx context.Context, envelope *pubsub.PushEnvelope, event *service.DomainEvent) string {
	// 1. Try message attributes (from Pub/Sub)
	if requestID, ok := envelope.Message.Attributes["request_id"]; ok && requestID != "" {
		return requestID
	}

	// 2. Try event field (from JSON payload)
	if event.RequestID != "" {
		return event.RequestID
	}

	// 3. Try existing context (from RequestIDMiddleware via X-Request-Id header)
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	// 4. Generate new UUID as fallback
	return uuid.New().String()
}

// verifyPubSubToken verifies the OIDC token Google attaches to authenticated push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func (h *PushHandler) verifyPubSubToken(req *http.Request) error {
	token, ok := strings.CutPrefix(req.Header.Get("Authorization"), "Bearer ")
	if !ok || token == "" {
		return errors.New("missing bearer token")
	}

	audience := h.audience
	if audience == "" {
		// the push endpoint URL is the default audience
		scheme := "https"
		if req.TLS == nil {
			scheme = "http"
		}
		audience = fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)
	}

	payload, err := h.validate(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	if h.serviceAccountEmail != "" {
		if email, _ := payload.Claims["email"].(string); email != h.serviceAccountEmail {
			return errors.Errorf("unexpected service account: %s", email)
		}
	}

	return nil
}
