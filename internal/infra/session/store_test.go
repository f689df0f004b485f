package session

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/Abros3006/business-tracker/internal/domain/entity"
	"github.com/Abros3006/business-tracker/internal/domain/service"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRedisTestStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewRedisStore(client, time.Hour, slog.New(slog.NewTextHandler(io.Discard, nil))), mr
}

func newSession(userID uuid.UUID) *entity.Session {
	return &entity.Session{
		ID:           uuid.NewString(),
		UserID:       userID,
		Email:        "ada@example.edu",
		Role:         entity.RoleStudent,
		AccessToken:  "access",
		RefreshToken: "refresh",
		ExpiresAt:    time.Now().Add(time.Hour).UTC().Truncate(time.Second),
	}
}

// storeContract runs the behaviour both stores must share.
func storeContract(t *testing.T, newStore func(t *testing.T) Store) {
	t.Run("save and get", func(t *testing.T) {
		store := newStore(t)
		session := newSession(uuid.New())

		require.NoError(t, store.Save(context.Background(), session))

		got, err := store.Get(context.Background(), session.ID)
		require.NoError(t, err)
		assert.Equal(t, session.UserID, got.UserID)
		assert.Equal(t, session.AccessToken, got.AccessToken)
		assert.Equal(t, entity.RoleStudent, got.Role)
		assert.False(t, got.CreatedAt.IsZero())
	})

	t.Run("missing session", func(t *testing.T) {
		store := newStore(t)

		_, err := store.Get(context.Background(), "nope")
		assert.ErrorIs(t, err, service.ErrSessionNotFound)
	})

	t.Run("delete is idempotent", func(t *testing.T) {
		store := newStore(t)
		session := newSession(uuid.New())
		require.NoError(t, store.Save(context.Background(), session))

		require.NoError(t, store.Delete(context.Background(), session.ID))
		require.NoError(t, store.Delete(context.Background(), session.ID))

		_, err := store.Get(context.Background(), session.ID)
		assert.ErrorIs(t, err, service.ErrSessionNotFound)
	})

	t.Run("delete by user keeps other users", func(t *testing.T) {
		store := newStore(t)
		userID := uuid.New()
		first, second, other := newSession(userID), newSession(userID), newSession(uuid.New())
		for _, s := range []*entity.Session{first, second, other} {
			require.NoError(t, store.Save(context.Background(), s))
		}

		require.NoError(t, store.DeleteByUser(context.Background(), userID))

		_, err := store.Get(context.Background(), first.ID)
		assert.ErrorIs(t, err, service.ErrSessionNotFound)
		_, err = store.Get(context.Background(), second.ID)
		assert.ErrorIs(t, err, service.ErrSessionNotFound)
		_, err = store.Get(context.Background(), other.ID)
		assert.NoError(t, err)
	})

	t.Run("subscribers receive only their user's events", func(t *testing.T) {
		store := newStore(t)
		userID := uuid.New()

		events, release, err := store.Subscribe(context.Background(), userID)
		require.NoError(t, err)
		defer release()

		require.NoError(t, store.Publish(context.Background(), entity.SessionEvent{Type: entity.SessionSignedIn, UserID: uuid.New()}))
		require.NoError(t, store.Publish(context.Background(), entity.SessionEvent{
			Type:     entity.SessionSignedOut,
			UserID:   userID,
			Redirect: "/login",
		}))

		select {
		case event := <-events:
			assert.Equal(t, entity.SessionSignedOut, event.Type)
			assert.Equal(t, "/login", event.Redirect)
			assert.False(t, event.OccurredAt.IsZero())
		case <-time.After(2 * time.Second):
			t.Fatal("no session event received")
		}
	})

	t.Run("release closes the channel", func(t *testing.T) {
		store := newStore(t)

		events, release, err := store.Subscribe(context.Background(), uuid.New())
		require.NoError(t, err)

		release()
		release()

		assert.Eventually(t, func() bool {
			select {
			case _, ok := <-events:
				return !ok
			default:
				return false
			}
		}, 2*time.Second, 10*time.Millisecond)
	})

	t.Run("context cancel closes the channel", func(t *testing.T) {
		store := newStore(t)
		ctx, cancel := context.WithCancel(context.Background())

		events, release, err := store.Subscribe(ctx, uuid.New())
		require.NoError(t, err)
		defer release()

		cancel()

		assert.Eventually(t, func() bool {
			select {
			case _, ok := <-events:
				return !ok
			default:
				return false
			}
		}, 2*time.Second, 10*time.Millisecond)
	})
}

func TestRedisStore(t *testing.T) {
	storeContract(t, func(t *testing.T) Store {
		store, _ := newRedisTestStore(t)

		return store
	})
}

func TestMemoryStore(t *testing.T) {
	storeContract(t, func(*testing.T) Store {
		return NewMemoryStore(time.Hour)
	})
}

func TestRedisStore_SessionExpires(t *testing.T) {
	store, mr := newRedisTestStore(t)
	session := newSession(uuid.New())
	require.NoError(t, store.Save(context.Background(), session))

	mr.FastForward(2 * time.Hour)

	_, err := store.Get(context.Background(), session.ID)
	assert.ErrorIs(t, err, service.ErrSessionNotFound)
}

func TestRedisStore_IndexesSessionsPerUser(t *testing.T) {
	store, mr := newRedisTestStore(t)
	session := newSession(uuid.New())
	require.NoError(t, store.Save(context.Background(), session))

	members, err := mr.SMembers(userKey(session.UserID))
	require.NoError(t, err)
	assert.Equal(t, []string{session.ID}, members)

	require.NoError(t, store.Delete(context.Background(), session.ID))
	assert.False(t, mr.Exists(sessionKey(session.ID)))
}

func TestMemoryStore_SessionExpires(t *testing.T) {
	store := NewMemoryStore(time.Minute)
	now := time.Now()
	store.now = func() time.Time { return now }

	session := newSession(uuid.New())
	require.NoError(t, store.Save(context.Background(), session))

	store.now = func() time.Time { return now.Add(2 * time.Minute) }

	_, err := store.Get(context.Background(), session.ID)
	assert.ErrorIs(t, err, service.ErrSessionNotFound)
}

func TestMemoryStore_ReleaseRemovesSubscriber(t *testing.T) {
	store := NewMemoryStore(time.Minute)
	userID := uuid.New()

	_, release, err := store.Subscribe(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, 1, store.subscriberCount(userID))

	release()

	assert.Equal(t, 0, store.subscriberCount(userID))
}
