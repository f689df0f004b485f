package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Abros3006/business-tracker/config"
	"github.com/Abros3006/business-tracker/internal/infra/session"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newHealthHandler(t *testing.T, store session.Store) (*HealthHandler, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(gormpostgres.New(gormpostgres.Config{Conn: sqlDB}), &gorm.Config{
		DisableAutomaticPing: true,
	})
	require.NoError(t, err)

	return NewHealthHandler(HealthHandlerParams{
		DB:     db,
		Store:  store,
		Logger: discardLogger(),
	}), mock
}

func TestHealthHandler_HealthCheck(t *testing.T) {
	t.Run("all services up", func(t *testing.T) {
		mr := miniredis.RunT(t)
		store := session.NewRedisStore(session.NewRedisClient(&config.RedisConfig{Addr: mr.Addr()}), time.Hour, discardLogger())
		h, mock := newHealthHandler(t, store)
		mock.ExpectPing()

		rec := httptest.NewRecorder()
		c := newTestEcho().NewContext(httptest.NewRequest(http.MethodGet, "/health", nil), rec)

		require.NoError(t, h.HealthCheck(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		var out HealthResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
		assert.Equal(t, "ok", out.Status)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("database down", func(t *testing.T) {
		h, mock := newHealthHandler(t, session.NewMemoryStore(time.Hour))
		mock.ExpectPing().WillReturnError(errors.New("connection refused"))

		rec := httptest.NewRecorder()
		c := newTestEcho().NewContext(httptest.NewRequest(http.MethodGet, "/health", nil), rec)

		require.NoError(t, h.HealthCheck(c))
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

		var out HealthResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
		assert.Equal(t, "degraded", out.Status)
		assert.Equal(t, "unavailable", out.Services["database"])
		assert.Equal(t, "ok", out.Services["session_store"])
	})

	t.Run("redis down", func(t *testing.T) {
		mr := miniredis.RunT(t)
		store := session.NewRedisStore(session.NewRedisClient(&config.RedisConfig{
			Addr:        mr.Addr(),
			DialTimeout: 100 * time.Millisecond,
		}), time.Hour, discardLogger())
		mr.Close()

		h, mock := newHealthHandler(t, store)
		mock.ExpectPing()

		rec := httptest.NewRecorder()
		c := newTestEcho().NewContext(httptest.NewRequest(http.MethodGet, "/health", nil), rec)

		require.NoError(t, h.HealthCheck(c))
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

		var out HealthResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
		assert.Equal(t, "unavailable", out.Services["session_store"])
	})
}
