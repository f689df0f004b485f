package supabase

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	domainerrors "github.com/Abros3006/business-tracker/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testAnonKey    = "anon-key"
	testServiceKey = "service-key"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewClient(server.URL, testAnonKey, testServiceKey, server.Client())
}

func TestClient_SignIn(t *testing.T) {
	userID := uuid.New()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/auth/v1/token", r.URL.Path)
		assert.Equal(t, "password", r.URL.Query().Get("grant_type"))
		assert.Equal(t, testAnonKey, r.Header.Get("apikey"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "ada@example.edu", body["email"])

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"access_token": "access",
			"refresh_token": "refresh",
			"expires_in": 3600,
			"expires_at": 1900000000,
			"user": {"id": "` + userID.String() + `", "email": "ada@example.edu"}
		}`))
	})

	session, err := client.SignIn(context.Background(), "ada@example.edu", "secret1")

	require.NoError(t, err)
	assert.Equal(t, "access", session.AccessToken)
	assert.Equal(t, "refresh", session.RefreshToken)
	assert.Equal(t, time.Unix(1900000000, 0), session.ExpiresAt)
	assert.Equal(t, userID, session.User.ID)
}

func TestClient_SignIn_InvalidCredentials(t *testing.T) {
	bodies := []string{
		`{"error":"invalid_grant","error_description":"Invalid login credentials"}`,
		`{"code":400,"error_code":"invalid_credentials","msg":"Invalid login credentials"}`,
	}

	for _, body := range bodies {
		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(body))
		})

		_, err := client.SignIn(context.Background(), "ada@example.edu", "wrong")

		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	}
}

func TestClient_SignUp(t *testing.T) {
	userID := uuid.New()

	t.Run("confirmation pending returns user without tokens", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/auth/v1/signup", r.URL.Path)

			var body map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, map[string]any{"full_name": "Ada", "role": "student"}, body["data"])

			_, _ = w.Write([]byte(`{"id":"` + userID.String() + `","email":"ada@example.edu"}`))
		})

		session, err := client.SignUp(context.Background(), "ada@example.edu", "secret1", map[string]any{"full_name": "Ada", "role": "student"})

		require.NoError(t, err)
		assert.Empty(t, session.AccessToken)
		assert.Equal(t, userID, session.User.ID)
	})

	t.Run("already registered", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusUnprocessableEntity)
			_, _ = w.Write([]byte(`{"code":422,"error_code":"user_already_exists","msg":"User already registered"}`))
		})

		_, err := client.SignUp(context.Background(), "ada@example.edu", "secret1", nil)

		assert.ErrorIs(t, err, domainerrors.ErrEmailAlreadyRegistered)
	})
}

func TestClient_SignOut_UsesUserToken(t *testing.T) {
	called := false
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
		assert.Equal(t, "/auth/v1/logout", r.URL.Path)
		assert.Equal(t, "Bearer user-token", r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusNoContent)
	})

	require.NoError(t, client.SignOut(context.Background(), "user-token"))
	assert.True(t, called)
}

func TestClient_SignOut_ExpiredTokenIsNotAnError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	assert.NoError(t, client.SignOut(context.Background(), "expired"))
}

func TestClient_Refresh_InvalidToken(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "refresh_token", r.URL.Query().Get("grant_type"))
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"invalid_grant","error_description":"Invalid Refresh Token: Already Used"}`))
	})

	_, err := client.Refresh(context.Background(), "used")

	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}

func TestClient_RecoverPassword(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/v1/recover", r.URL.Path)
		assert.Equal(t, "https://showcase.example.edu/reset-password", r.URL.Query().Get("redirect_to"))
		_, _ = w.Write([]byte(`{}`))
	})

	require.NoError(t, client.RecoverPassword(context.Background(), "ada@example.edu", "https://showcase.example.edu/reset-password"))
}

func TestClient_RecoverPassword_RateLimited(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"msg":"For security purposes, you can only request this once every 60 seconds"}`))
	})

	err := client.RecoverPassword(context.Background(), "ada@example.edu", "")

	assert.ErrorIs(t, err, domainerrors.ErrRateLimited)
}

func TestClient_DeleteUser(t *testing.T) {
	userID := uuid.New()

	t.Run("uses service role key", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodDelete, r.Method)
			assert.Equal(t, "/auth/v1/admin/users/"+userID.String(), r.URL.Path)
			assert.Equal(t, testServiceKey, r.Header.Get("apikey"))
			assert.Equal(t, "Bearer "+testServiceKey, r.Header.Get("Authorization"))
			_, _ = w.Write([]byte(`{}`))
		})

		require.NoError(t, client.DeleteUser(context.Background(), userID))
	})

	t.Run("missing account counts as deleted", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		})

		require.NoError(t, client.DeleteUser(context.Background(), userID))
	})

	t.Run("server failure", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"message":"database error"}`))
		})

		err := client.DeleteUser(context.Background(), userID)

		assert.ErrorIs(t, err, domainerrors.ErrAuthProviderUnavailable)
		assert.Contains(t, err.Error(), "database error")
	})
}

func TestClient_GetUser(t *testing.T) {
	userID := uuid.New()

	t.Run("ok", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/auth/v1/user", r.URL.Path)
			assert.Equal(t, "Bearer user-token", r.Header.Get("Authorization"))
			_, _ = w.Write([]byte(`{"id":"` + userID.String() + `","email":"ada@example.com"}`))
		})

		user, err := client.GetUser(context.Background(), "user-token")

		require.NoError(t, err)
		assert.Equal(t, userID, user.ID)
		assert.Equal(t, "ada@example.com", user.Email)
	})

	for _, status := range []int{http.StatusUnauthorized, http.StatusForbidden, http.StatusNotFound} {
		t.Run(http.StatusText(status), func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(status)
				_, _ = w.Write([]byte(`{"msg":"User from sub claim in JWT does not exist"}`))
			})

			_, err := client.GetUser(context.Background(), "user-token")

			assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
		})
	}
}

func TestClient_ProviderUnreachable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	server.Close()

	client := NewClient(server.URL, testAnonKey, testServiceKey, nil)
	_, err := client.GetUser(context.Background(), "token")

	assert.ErrorIs(t, err, domainerrors.ErrAuthProviderUnavailable)
}
