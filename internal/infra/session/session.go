// Package session holds server-side session state and the per-user session event stream.
package session

import (
	"context"
	"log/slog"

	"github.com/Abros3006/business-tracker/config"
	"github.com/Abros3006/business-tracker/internal/domain/lifecycle"
	"github.com/Abros3006/business-tracker/internal/domain/service"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const subscriberBuffer = 8

// Store is a SessionStore that can report its own health.
type Store interface {
	service.SessionStore
	Ping(ctx context.Context) error
}

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New returns the Redis store when redis.addr is configured and the in-process store otherwise.
func New(params Params) (Store, error) {
	ttl := params.Config.Session.TTL

	if params.Config.Redis == nil || params.Config.Redis.Addr == "" {
		params.Logger.Warn("redis is not configured, sessions are kept in memory")

		return NewMemoryStore(ttl), nil
	}

	client := NewRedisClient(params.Config.Redis)
	store := NewRedisStore(client, ttl, params.Logger)

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			return store.Ping(ctx)
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return store, nil
}

// NewRedisClient builds a go-redis client from config.
func NewRedisClient(cfg *config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Username:     cfg.Username,
		Password:     cfg.Password,
		DB:           cfg.DB,
		MaxRetries:   cfg.MaxRetries,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.Timeout,
		WriteTimeout: cfg.Timeout,
	})
}
