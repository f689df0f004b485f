package session

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/Abros3006/business-tracker/internal/domain/entity"
	"github.com/Abros3006/business-tracker/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const (
	sessionKeyPrefix  = "session:"
	userKeyPrefix     = "session:user:"
	eventChannelBase  = "session:events:"
	subscribeDeadline = 5 * time.Second
)

// RedisStore keeps sessions as JSON values with a TTL, indexes them per user and
// fans out session events over Redis pub/sub.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
	now    func() time.Time
}

// NewRedisStore creates a RedisStore.
func NewRedisStore(client *redis.Client, ttl time.Duration, logger *slog.Logger) *RedisStore {
	return &RedisStore{
		client: client,
		ttl:    ttl,
		logger: logger,
		now:    time.Now,
	}
}

func sessionKey(id string) string { return sessionKeyPrefix + id }

func userKey(userID uuid.UUID) string { return userKeyPrefix + userID.String() }

func eventChannel(userID uuid.UUID) string { return eventChannelBase + userID.String() }

// Ping checks the connection.
func (s *RedisStore) Ping(ctx context.Context) error {
	return errors.Wrap(s.client.Ping(ctx).Err(), "ping redis")
}

// Save stores the session and indexes it under its user.
func (s *RedisStore) Save(ctx context.Context, session *entity.Session) error {
	if session.CreatedAt.IsZero() {
		session.CreatedAt = s.now()
	}

	payload, err := json.Marshal(session)
	if err != nil {
		return errors.Wrap(err, "encode session")
	}

	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, sessionKey(session.ID), payload, s.ttl)
		pipe.SAdd(ctx, userKey(session.UserID), session.ID)
		pipe.Expire(ctx, userKey(session.UserID), s.ttl)

		return nil
	})

	return errors.Wrap(err, "save session")
}

// Get loads a session.
func (s *RedisStore) Get(ctx context.Context, id string) (*entity.Session, error) {
	raw, err := s.client.Get(ctx, sessionKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, service.ErrSessionNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "get session")
	}

	var session entity.Session
	if err := json.Unmarshal(raw, &session); err != nil {
		return nil, errors.Wrap(err, "decode session")
	}

	return &session, nil
}

// Delete removes one session.
func (s *RedisStore) Delete(ctx context.Context, id string) error {
	session, err := s.Get(ctx, id)
	if errors.Is(err, service.ErrSessionNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, sessionKey(id))
		pipe.SRem(ctx, userKey(session.UserID), id)

		return nil
	})

	return errors.Wrap(err, "delete session")
}

// DeleteByUser removes every session of a user.
func (s *RedisStore) DeleteByUser(ctx context.Context, userID uuid.UUID) error {
	ids, err := s.client.SMembers(ctx, userKey(userID)).Result()
	if err != nil {
		return errors.Wrap(err, "list user sessions")
	}

	keys := make([]string, 0, len(ids)+1)
	for _, id := range ids {
		keys = append(keys, sessionKey(id))
	}
	keys = append(keys, userKey(userID))

	return errors.Wrap(s.client.Del(ctx, keys...).Err(), "delete user sessions")
}

// Publish sends event to the user's channel.
func (s *RedisStore) Publish(ctx context.Context, event entity.SessionEvent) error {
	if event.OccurredAt.IsZero() {
		event.OccurredAt = s.now()
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return errors.Wrap(err, "encode session event")
	}

	return errors.Wrap(s.client.Publish(ctx, eventChannel(event.UserID), payload).Err(), "publish session event")
}

// Subscribe listens on the user's channel. The subscription is confirmed before it returns,
// so an event published afterwards is never missed.
func (s *RedisStore) Subscribe(ctx context.Context, userID uuid.UUID) (<-chan entity.SessionEvent, func(), error) {
	pubsub := s.client.Subscribe(ctx, eventChannel(userID))

	confirmCtx, cancelConfirm := context.WithTimeout(ctx, subscribeDeadline)
	defer cancelConfirm()
	if _, err := pubsub.Receive(confirmCtx); err != nil {
		_ = pubsub.Close()

		return nil, nil, errors.Wrap(err, "subscribe session events")
	}

	out := make(chan entity.SessionEvent, subscriberBuffer)
	done := make(chan struct{})
	var once sync.Once
	release := func() {
		once.Do(func() { close(done) })
	}

	go func() {
		defer close(out)
		defer func() { _ = pubsub.Close() }()

		messages := pubsub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case <-done:
				return
			case msg, ok := <-messages:
				if !ok {
					return
				}

				var event entity.SessionEvent
				if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
					s.logger.Warn("dropping malformed session event", slog.String("channel", msg.Channel), slog.Any("error", err))

					continue
				}

				select {
				case out <- event:
				case <-ctx.Done():
					return
				case <-done:
					return
				}
			}
		}
	}()

	return out, release, nil
}
