package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	apimiddleware "github.com/Abros3006/business-tracker/internal/delivery/api/middleware"
	"github.com/Abros3006/business-tracker/internal/domain/entity"
	domainerrors "github.com/Abros3006/business-tracker/internal/domain/errors"
	mockUC "github.com/Abros3006/business-tracker/internal/mocks/usecase"
	"github.com/Abros3006/business-tracker/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestAuthHandler(t *testing.T) (*AuthHandler, *mockUC.MockAuthUsecase) {
	authUC := mockUC.NewMockAuthUsecase(t)
	cfg := newTestConfig()

	h := NewAuthHandler(AuthHandlerParams{
		AuthUC: authUC,
		Session: apimiddleware.NewSessionMiddleware(apimiddleware.SessionMiddlewareParams{
			SessionUC: mockUC.NewMockSessionUsecase(t),
			Config:    cfg,
		}),
		Config: cfg,
		Logger: discardLogger(),
	})

	return h, authUC
}

func TestAuthHandler_Login(t *testing.T) {
	userID := uuid.New()

	t.Run("success sets an http-only session cookie", func(t *testing.T) {
		h, authUC := createTestAuthHandler(t)
		e := newTestEcho()

		authUC.EXPECT().
			Login(mock.Anything, usecase.LoginInput{Email: "ada@example.com", Password: "secret1", Role: entity.RoleStudent}).
			Return(&usecase.LoginOutput{
				Session:  &entity.Session{ID: "sess-1", UserID: userID, Email: "ada@example.com", Role: entity.RoleStudent},
				Profile:  &entity.Profile{ID: userID, FullName: "Ada", Role: entity.RoleStudent},
				Redirect: "/dashboard",
			}, nil)

		rec := httptest.NewRecorder()
		c := e.NewContext(newJSONRequest(http.MethodPost, "/api/v1/auth/login",
			`{"email":"ada@example.com","password":"secret1","role":"student"}`), rec)

		require.NoError(t, h.Login(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		out := decodeData[LoginResponse](t, rec)
		assert.Equal(t, "/dashboard", out.Redirect)
		assert.Equal(t, userID, out.User.ID)
		assert.Equal(t, "Ada", out.Profile.FullName)

		cookies := rec.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, "showcase_session", cookies[0].Name)
		assert.Equal(t, "sess-1", cookies[0].Value)
		assert.True(t, cookies[0].HttpOnly)
		assert.True(t, cookies[0].Secure)
		assert.Equal(t, http.SameSiteStrictMode, cookies[0].SameSite)
		assert.Equal(t, 86400, cookies[0].MaxAge)
	})

	t.Run("role must be selected", func(t *testing.T) {
		h, _ := createTestAuthHandler(t)
		e := newTestEcho()

		rec := httptest.NewRecorder()
		c := e.NewContext(newJSONRequest(http.MethodPost, "/api/v1/auth/login",
			`{"email":"ada@example.com","password":"secret1"}`), rec)

		require.NoError(t, h.Login(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		env := decode(t, rec)
		assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)
		assert.Equal(t, "is required", env.detail("role"))
	})

	t.Run("role mismatch sets no cookie", func(t *testing.T) {
		h, authUC := createTestAuthHandler(t)
		e := newTestEcho()

		authUC.EXPECT().Login(mock.Anything, mock.Anything).
			Return(nil, domainerrors.NewRoleMismatchError("admin"))

		rec := httptest.NewRecorder()
		c := e.NewContext(newJSONRequest(http.MethodPost, "/api/v1/auth/login",
			`{"email":"ada@example.com","password":"secret1","role":"admin"}`), rec)

		require.NoError(t, h.Login(c))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "ROLE_MISMATCH", decode(t, rec).Error.Code)
		assert.Empty(t, rec.Result().Cookies())
	})
}

func TestAuthHandler_Register(t *testing.T) {
	t.Run("admin needs a code", func(t *testing.T) {
		h, _ := createTestAuthHandler(t)
		e := newTestEcho()

		rec := httptest.NewRecorder()
		c := e.NewContext(newJSONRequest(http.MethodPost, "/api/v1/auth/register",
			`{"email":"root@example.com","password":"secret1","full_name":"Root","role":"admin"}`), rec)

		require.NoError(t, h.Register(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "is required", decode(t, rec).detail("admin_code"))
	})

	t.Run("short password", func(t *testing.T) {
		h, _ := createTestAuthHandler(t)
		e := newTestEcho()

		rec := httptest.NewRecorder()
		c := e.NewContext(newJSONRequest(http.MethodPost, "/api/v1/auth/register",
			`{"email":"ada@example.com","password":"12345","full_name":"Ada","role":"student"}`), rec)

		require.NoError(t, h.Register(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "must be at least 6 characters", decode(t, rec).detail("password"))
	})

	t.Run("success does not sign in", func(t *testing.T) {
		h, authUC := createTestAuthHandler(t)
		e := newTestEcho()
		userID := uuid.New()

		authUC.EXPECT().Register(mock.Anything, usecase.RegisterInput{
			Email:     "root@example.com",
			Password:  "secret1",
			FullName:  "Root",
			Role:      entity.RoleAdmin,
			AdminCode: "K7QW2M4XJ9",
		}).Return(&usecase.RegisterOutput{
			UserID:   userID,
			Email:    "root@example.com",
			Role:     entity.RoleAdmin,
			Redirect: "/login",
		}, nil)

		rec := httptest.NewRecorder()
		c := e.NewContext(newJSONRequest(http.MethodPost, "/api/v1/auth/register",
			`{"email":"root@example.com","password":"secret1","full_name":" Root ","role":"admin","admin_code":"K7QW2M4XJ9"}`), rec)

		require.NoError(t, h.Register(c))
		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Empty(t, rec.Result().Cookies())

		out := decodeData[RegisterResponse](t, rec)
		assert.Equal(t, userID, out.UserID)
		assert.Equal(t, "/login", out.Redirect)
	})

	t.Run("invalid admin code", func(t *testing.T) {
		h, authUC := createTestAuthHandler(t)
		e := newTestEcho()

		authUC.EXPECT().Register(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrInvalidAdminCode)

		rec := httptest.NewRecorder()
		c := e.NewContext(newJSONRequest(http.MethodPost, "/api/v1/auth/register",
			`{"email":"root@example.com","password":"secret1","full_name":"Root","role":"admin","admin_code":"WRONG"}`), rec)

		require.NoError(t, h.Register(c))
		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, "INVALID_ADMIN_CODE", decode(t, rec).Error.Code)
	})
}

func TestAuthHandler_Logout(t *testing.T) {
	h, authUC := createTestAuthHandler(t)
	e := newTestEcho()

	authUC.EXPECT().Logout(mock.Anything, "sess-9").
		RunAndReturn(func(context.Context, string) *usecase.LogoutOutput {
			return &usecase.LogoutOutput{Redirect: "/"}
		})

	req := newJSONRequest(http.MethodPost, "/api/v1/auth/logout", "")
	req.AddCookie(&http.Cookie{Name: "showcase_session", Value: "sess-9"})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.Logout(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "/", decodeData[RedirectResponse](t, rec).Redirect)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "showcase_session", cookies[0].Name)
	assert.Empty(t, cookies[0].Value)
	assert.Negative(t, cookies[0].MaxAge)
}

func TestAuthHandler_RequestPasswordReset(t *testing.T) {
	t.Run("always accepted", func(t *testing.T) {
		h, authUC := createTestAuthHandler(t)
		e := newTestEcho()

		authUC.EXPECT().RequestPasswordReset(mock.Anything, usecase.PasswordResetInput{Email: "nobody@example.com"}).Return(nil)

		rec := httptest.NewRecorder()
		c := e.NewContext(newJSONRequest(http.MethodPost, "/api/v1/auth/password-reset", `{"email":"nobody@example.com"}`), rec)

		require.NoError(t, h.RequestPasswordReset(c))
		assert.Equal(t, http.StatusAccepted, rec.Code)
	})

	t.Run("rate limited", func(t *testing.T) {
		h, authUC := createTestAuthHandler(t)
		e := newTestEcho()

		authUC.EXPECT().RequestPasswordReset(mock.Anything, mock.Anything).Return(domainerrors.ErrRateLimited)

		rec := httptest.NewRecorder()
		c := e.NewContext(newJSONRequest(http.MethodPost, "/api/v1/auth/password-reset", `{"email":"ada@example.com"}`), rec)

		require.NoError(t, h.RequestPasswordReset(c))
		assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	})
}
