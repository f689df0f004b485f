package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Abros3006/business-tracker/config"
	apimiddleware "github.com/Abros3006/business-tracker/internal/delivery/api/middleware"
	"github.com/Abros3006/business-tracker/internal/delivery/api/validator"
	"github.com/Abros3006/business-tracker/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details any    `json:"details"`
	} `json:"error"`
	Meta struct {
		RequestID string `json:"request_id"`
		Notice    string `json:"notice"`
	} `json:"meta"`
}

func newTestConfig() *config.Config {
	cfg := &config.Config{
		Session: &config.SessionConfig{
			CookieName: "showcase_session",
			TTL:        24 * time.Hour,
			Secure:     true,
			SameSite:   "strict",
		},
		Site: &config.SiteConfig{PublicURL: "https://showcase.example"},
	}
	cfg.HTTP.AllowOrigins = []string{"https://showcase.example"}

	return cfg
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil))).HandleHTTPError

	return e
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newJSONRequest(method, target, body string) *http.Request {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	return req
}

// signedIn puts a resolved session on c the way RequireSession does.
func signedIn(c echo.Context, userID uuid.UUID, role entity.Role) {
	apimiddleware.SetSession(c, &entity.Session{
		ID:     "sess-1",
		UserID: userID,
		Role:   role,
		Email:  "owner@example.com",
	})
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))

	return env
}

// detail returns one entry of an object-valued error details payload.
func (e envelope) detail(key string) any {
	if e.Error == nil {
		return nil
	}
	fields, _ := e.Error.Details.(map[string]any)

	return fields[key]
}

func decodeData[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &out))

	return out
}
