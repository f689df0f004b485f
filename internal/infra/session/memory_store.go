package session

import (
	"context"
	"sync"
	"time"

	"github.com/Abros3006/business-tracker/internal/domain/entity"
	"github.com/Abros3006/business-tracker/internal/domain/service"

	"github.com/google/uuid"
)

type memoryEntry struct {
	session   entity.Session
	expiresAt time.Time
}

type memorySubscriber struct {
	ch   chan entity.SessionEvent
	done chan struct{}
}

// MemoryStore keeps sessions in process. It serves single-instance runs and tests.
type MemoryStore struct {
	mu          sync.RWMutex
	ttl         time.Duration
	sessions    map[string]memoryEntry
	subscribers map[uuid.UUID]map[*memorySubscriber]struct{}
	now         func() time.Time
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		ttl:         ttl,
		sessions:    make(map[string]memoryEntry),
		subscribers: make(map[uuid.UUID]map[*memorySubscriber]struct{}),
		now:         time.Now,
	}
}

// Ping always succeeds.
func (s *MemoryStore) Ping(context.Context) error {
	return nil
}

func (s *MemoryStore) Save(_ context.Context, session *entity.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if session.CreatedAt.IsZero() {
		session.CreatedAt = s.now()
	}
	s.sessions[session.ID] = memoryEntry{session: *session, expiresAt: s.now().Add(s.ttl)}

	return nil
}

func (s *MemoryStore) Get(_ context.Context, id string) (*entity.Session, error) {
	s.mu.RLock()
	entry, ok := s.sessions[id]
	s.mu.RUnlock()

	if !ok || !s.now().Before(entry.expiresAt) {
		return nil, service.ErrSessionNotFound
	}

	session := entry.session

	return &session, nil
}

func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()

	return nil
}

func (s *MemoryStore) DeleteByUser(_ context.Context, userID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, entry := range s.sessions {
		if entry.session.UserID == userID {
			delete(s.sessions, id)
		}
	}

	return nil
}

// Publish delivers the event to current subscribers. A subscriber whose buffer is full misses it.
func (s *MemoryStore) Publish(_ context.Context, event entity.SessionEvent) error {
	if event.OccurredAt.IsZero() {
		event.OccurredAt = s.now()
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	for sub := range s.subscribers[event.UserID] {
		select {
		case <-sub.done:
		case sub.ch <- event:
		default:
		}
	}

	return nil
}

func (s *MemoryStore) Subscribe(ctx context.Context, userID uuid.UUID) (<-chan entity.SessionEvent, func(), error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	sub := &memorySubscriber{
		ch:   make(chan entity.SessionEvent, subscriberBuffer),
		done: make(chan struct{}),
	}

	s.mu.Lock()
	if s.subscribers[userID] == nil {
		s.subscribers[userID] = make(map[*memorySubscriber]struct{})
	}
	s.subscribers[userID][sub] = struct{}{}
	s.mu.Unlock()

	var once sync.Once
	release := func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.subscribers[userID], sub)
			if len(s.subscribers[userID]) == 0 {
				delete(s.subscribers, userID)
			}
			close(sub.done)
			close(sub.ch)
			s.mu.Unlock()
		})
	}

	go func() {
		select {
		case <-ctx.Done():
			release()
		case <-sub.done:
		}
	}()

	return sub.ch, release, nil
}

// subscriberCount reports the live subscriptions of a user.
func (s *MemoryStore) subscriberCount(userID uuid.UUID) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.subscribers[userID])
}
