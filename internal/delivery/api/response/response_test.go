package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "github.com/Abros3006/business-tracker/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func errorBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body struct {
		Error map[string]any `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body.Error
}

func TestError_DetailsVisibility(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		details     any
		wantDetails bool
	}{
		{name: "client error keeps details", status: http.StatusBadRequest, details: map[string]string{"name": "is required"}, wantDetails: true},
		{name: "server error drops details", status: http.StatusInternalServerError, details: "pq: relation missing"},
		{name: "forbidden drops details", status: http.StatusForbidden, details: "role=student"},
		{name: "unauthorized keeps redirect", status: http.StatusUnauthorized, details: RedirectDetails{Redirect: "/login"}, wantDetails: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

			require.NoError(t, Error(c, tt.status, "CODE", "message", tt.details))
			assert.Equal(t, tt.status, rec.Code)

			_, has := errorBody(t, rec)["details"]
			assert.Equal(t, tt.wantDetails, has)
		})
	}
}

func TestHandleAppError(t *testing.T) {
	t.Run("app error is written", func(t *testing.T) {
		rec := httptest.NewRecorder()
		c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

		err := HandleAppError(c, errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("unknown field moat"), "save canvas"))
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		body := errorBody(t, rec)
		assert.Equal(t, "VALIDATION_FAILED", body["code"])
		assert.Equal(t, "unknown field moat", body["details"])
	})

	t.Run("other errors go to the error handler", func(t *testing.T) {
		rec := httptest.NewRecorder()
		c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

		err := HandleAppError(c, errors.New("boom"))
		require.Error(t, err)
		assert.False(t, c.Response().Committed)
	})
}

func TestSuccessWithNotice(t *testing.T) {
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	require.NoError(t, SuccessWithNotice(c, http.StatusOK, []string{}, "try again later"))

	var body struct {
		Meta MetaInfo `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "try again later", body.Meta.Notice)
	assert.NotEmpty(t, body.Meta.RequestID)
}
