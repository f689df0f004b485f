package service

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// EventType names an asynchronous domain event.
type EventType string

const (
	EventBusinessCreated EventType = "business.created"
	EventBusinessUpdated EventType = "business.updated"
	EventBusinessViewed  EventType = "business.viewed"
	EventCanvasSaved     EventType = "canvas.saved"
	EventUserDeleted     EventType = "user.deleted"
)

// DomainEvent is the payload handed to the worker through the message queue.
type DomainEvent struct {
	ID         string            `json:"id"`
	Type       EventType         `json:"type"`
	RequestID  string            `json:"request_id,omitempty"` // For distributed tracing
	BusinessID string            `json:"business_id,omitempty"`
	UserID     string            `json:"user_id,omitempty"`
	Attributes map[string]string `json:"attributes,omitempty"`
	OccurredAt time.Time         `json:"occurred_at"`
}

// NewDomainEvent stamps a new event with an id and the current time.
func NewDomainEvent(eventType EventType, requestID string) *DomainEvent {
	return &DomainEvent{
		ID:         uuid.New().String(),
		Type:       eventType,
		RequestID:  requestID,
		OccurredAt: time.Now().UTC(),
	}
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// Publish sends event for async processing.
	Publish(ctx context.Context, event *DomainEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
