package pubsub

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/Abros3006/business-tracker/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/streadway/amqp"
)

// amqpPublisher publishes events to a RabbitMQ topic exchange. The routing key is the
// event type, so consumers bind with patterns such as "business.*".
type amqpPublisher struct {
	mu       sync.Mutex
	conn     *amqp.Connection
	channel  *amqp.Channel
	exchange string
	logger   *slog.Logger
}

// NewAMQPPublisher dials url and declares a durable topic exchange.
func NewAMQPPublisher(url, exchange string, logger *slog.Logger) (service.EventPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, errors.Wrap(err, "amqp dial")
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()

		return nil, errors.Wrap(err, "amqp channel")
	}

	if err := ch.ExchangeDeclare(
		exchange,
		amqp.ExchangeTopic,
		true,
		false,
		false,
		false,
		nil,
	); err != nil {
		ch.Close()
		conn.Close()

		return nil, errors.Wrapf(err, "declare exchange %s", exchange)
	}

	return &amqpPublisher{
		conn:     conn,
		channel:  ch,
		exchange: exchange,
		logger:   logger,
	}, nil
}

// Publish sends a persistent JSON message routed by event type.
func (p *amqpPublisher) Publish(_ context.Context, event *service.DomainEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	headers := amqp.Table{}
	for k, v := range eventAttributes(event) {
		headers[k] = v
	}

	// amqp.Channel is not safe for concurrent publishes
	p.mu.Lock()
	defer p.mu.Unlock()

	err = p.channel.Publish(
		p.exchange,
		string(event.Type),
		false,
		false,
		amqp.Publishing{
			ContentType:   "application/json",
			Body:          body,
			DeliveryMode:  amqp.Persistent,
			MessageId:     event.ID,
			CorrelationId: event.RequestID,
			Timestamp:     event.OccurredAt,
			Headers:       headers,
		},
	)
	if err != nil {
		return errors.Wrapf(err, "publish %s", event.Type)
	}

	p.logger.Debug("[AMQP] Event published",
		slog.String("exchange", p.exchange),
		slog.String("event_type", string(event.Type)),
		slog.String("event_id", event.ID),
	)

	return nil
}

// Close closes the channel and the connection.
func (p *amqpPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	var chErr error
	if p.channel != nil {
		chErr = p.channel.Close()
	}
	if p.conn != nil {
		if err := p.conn.Close(); err != nil {
			return errors.WithStack(err)
		}
	}

	return errors.WithStack(chErr)
}
