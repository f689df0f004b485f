package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/Abros3006/business-tracker/config"
	"github.com/Abros3006/business-tracker/internal/domain/repository"
	mockRepo "github.com/Abros3006/business-tracker/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Site: &config.SiteConfig{
			PublicURL:         "https://showcase.example",
			PasswordResetPath: "/reset-password",
		},
		Invite: &config.InviteConfig{BcryptCost: 4},
		Worker: &config.WorkerConfig{MaxDeletionAttempts: 5, DeletionBatchSize: 10},
	}
}

// recordingMetrics counts recorder calls by label.
type recordingMetrics struct {
	mu            sync.Mutex
	logins        map[string]int
	sessionEvents map[string]int
	deletions     map[string]int
}

func newRecordingMetrics() *recordingMetrics {
	return &recordingMetrics{
		logins:        map[string]int{},
		sessionEvents: map[string]int{},
		deletions:     map[string]int{},
	}
}

func (m *recordingMetrics) RecordLogin(outcome string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.logins[outcome]++
}

func (m *recordingMetrics) RecordSessionEvent(eventType string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessionEvents[eventType]++
}

func (m *recordingMetrics) RecordDeletion(outcome string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.deletions[outcome]++
}

func (m *recordingMetrics) RecordEvent(string, string) {}

// expectTx makes txManager run the callback against factory and return its result.
func expectTx(t *testing.T, txManager *mockRepo.MockTransactionManager, factory *mockRepo.MockRepositoryFactory) {
	t.Helper()

	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}
