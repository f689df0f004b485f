package worker

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Abros3006/business-tracker/config"
	"github.com/Abros3006/business-tracker/internal/delivery/worker/handler"
	"github.com/Abros3006/business-tracker/internal/infra/metrics"
	mockSvc "github.com/Abros3006/business-tracker/internal/mocks/service"
	mockUC "github.com/Abros3006/business-tracker/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"go.uber.org/fx/fxtest"
)

func TestWorkerServerRoutes(t *testing.T) {
	cfg := &config.Config{
		Worker:  &config.WorkerConfig{},
		Metrics: &config.MetricsConfig{Enabled: true, Path: "/metrics"},
	}
	recorder := mockSvc.NewMockMetricsRecorder(t)
	recorder.EXPECT().RecordEvent("unknown", "dropped").Return()

	m := metrics.New(cfg)

	pushHandler := handler.NewPushHandler(handler.PushHandlerParams{
		Config:      cfg,
		Logger:      testLogger(),
		DirectoryUC: mockUC.NewMockDirectoryUsecase(t),
		Metrics:     recorder,
	})

	e := newEcho(ServerParams{
		Lc:          fxtest.NewLifecycle(t),
		Cfg:         cfg,
		Logger:      testLogger(),
		PushHandler: pushHandler,
		Metrics:     m,
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))

	req := httptest.NewRequest(http.MethodPost, PushPath, strings.NewReader(`{"message":{"data":"!"}}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "http_requests_total")
}
