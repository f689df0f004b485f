// Package supabase is the client for the hosted GoTrue auth API.
package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Abros3006/business-tracker/config"
	"github.com/Abros3006/business-tracker/internal/domain/entity"
	domainerrors "github.com/Abros3006/business-tracker/internal/domain/errors"
	"github.com/Abros3006/business-tracker/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/tidwall/gjson"
)

const defaultTimeout = 10 * time.Second

// Client talks to /auth/v1. User-scoped calls carry the anon key as apikey plus the
// user's bearer token; admin calls carry the service role key for both.
type Client struct {
	baseURL        string
	anonKey        string
	serviceRoleKey string
	httpClient     *http.Client
	now            func() time.Time
}

// NewAuthProvider builds the auth provider from config.
func NewAuthProvider(cfg *config.Config) (service.AuthProvider, error) {
	if cfg.Supabase == nil || cfg.Supabase.URL == "" {
		return nil, errors.New("supabase url is required")
	}
	if cfg.Supabase.AnonKey == "" {
		return nil, errors.New("supabase anon key is required")
	}

	timeout := cfg.Supabase.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return NewClient(cfg.Supabase.URL, cfg.Supabase.AnonKey, cfg.Supabase.ServiceRoleKey, &http.Client{Timeout: timeout}), nil
}

// NewClient creates a client for baseURL.
func NewClient(baseURL, anonKey, serviceRoleKey string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}

	return &Client{
		baseURL:        strings.TrimSuffix(baseURL, "/"),
		anonKey:        anonKey,
		serviceRoleKey: serviceRoleKey,
		httpClient:     httpClient,
		now:            time.Now,
	}
}

type tokenResponse struct {
	AccessToken  string        `json:"access_token"`
	RefreshToken string        `json:"refresh_token"`
	ExpiresIn    int64         `json:"expires_in"`
	ExpiresAt    int64         `json:"expires_at"`
	User         *userResponse `json:"user"`
}

type userResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// SignIn exchanges email and password for a session.
func (c *Client) SignIn(ctx context.Context, email, password string) (*entity.AuthSession, error) {
	body := map[string]string{"email": email, "password": password}

	resp, err := c.call(ctx, http.MethodPost, "/token?grant_type=password", body, c.anonKey, c.anonKey)
	if err != nil {
		return nil, err
	}
	if resp.status != http.StatusOK {
		return nil, mapError("sign in", resp)
	}

	return c.decodeSession(resp.body)
}

// SignUp creates an account. metadata is stored as user_metadata.
func (c *Client) SignUp(ctx context.Context, email, password string, metadata map[string]any) (*entity.AuthSession, error) {
	body := map[string]any{"email": email, "password": password}
	if len(metadata) > 0 {
		body["data"] = metadata
	}

	resp, err := c.call(ctx, http.MethodPost, "/signup", body, c.anonKey, c.anonKey)
	if err != nil {
		return nil, err
	}
	if resp.status != http.StatusOK && resp.status != http.StatusCreated {
		return nil, mapError("sign up", resp)
	}

	// With e-mail confirmation on, the response is the bare user object and no tokens.
	if !gjson.GetBytes(resp.body, "access_token").Exists() {
		user, err := decodeUser(resp.body)
		if err != nil {
			return nil, err
		}

		return &entity.AuthSession{User: *user}, nil
	}

	return c.decodeSession(resp.body)
}

// SignOut revokes the session behind accessToken. An already invalid token counts as signed out.
func (c *Client) SignOut(ctx context.Context, accessToken string) error {
	resp, err := c.call(ctx, http.MethodPost, "/logout", nil, c.anonKey, accessToken)
	if err != nil {
		return err
	}

	switch resp.status {
	case http.StatusOK, http.StatusNoContent, http.StatusUnauthorized, http.StatusNotFound:
		return nil
	default:
		return mapError("sign out", resp)
	}
}

// Refresh exchanges a refresh token for a new session.
func (c *Client) Refresh(ctx context.Context, refreshToken string) (*entity.AuthSession, error) {
	body := map[string]string{"refresh_token": refreshToken}

	resp, err := c.call(ctx, http.MethodPost, "/token?grant_type=refresh_token", body, c.anonKey, c.anonKey)
	if err != nil {
		return nil, err
	}
	if resp.status != http.StatusOK {
		if resp.status == http.StatusBadRequest || resp.status == http.StatusUnauthorized {
			return nil, errors.Wrap(domainerrors.ErrUnauthorized, providerMessage(resp.body))
		}

		return nil, mapError("refresh", resp)
	}

	return c.decodeSession(resp.body)
}

// GetUser returns the account owning accessToken.
func (c *Client) GetUser(ctx context.Context, accessToken string) (*entity.AuthUser, error) {
	resp, err := c.call(ctx, http.MethodGet, "/user", nil, c.anonKey, accessToken)
	if err != nil {
		return nil, err
	}
	if resp.status != http.StatusOK {
		switch resp.status {
		case http.StatusUnauthorized, http.StatusForbidden, http.StatusNotFound:
			// the token is dead or its account was removed
			return nil, errors.Wrap(domainerrors.ErrUnauthorized, providerMessage(resp.body))
		}

		return nil, mapError("get user", resp)
	}

	return decodeUser(resp.body)
}

// RecoverPassword asks the auth service to e-mail a reset link pointing at redirectTo.
func (c *Client) RecoverPassword(ctx context.Context, email, redirectTo string) error {
	path := "/recover"
	if redirectTo != "" {
		path += "?redirect_to=" + url.QueryEscape(redirectTo)
	}

	resp, err := c.call(ctx, http.MethodPost, path, map[string]string{"email": email}, c.anonKey, c.anonKey)
	if err != nil {
		return err
	}
	if resp.status != http.StatusOK {
		return mapError("recover password", resp)
	}

	return nil
}

// DeleteUser removes an account with the service role key. A missing account counts as deleted.
func (c *Client) DeleteUser(ctx context.Context, userID uuid.UUID) error {
	if c.serviceRoleKey == "" {
		return errors.Wrap(domainerrors.ErrAuthProviderUnavailable, "service role key is not configured")
	}

	resp, err := c.call(ctx, http.MethodDelete, "/admin/users/"+userID.String(), nil, c.serviceRoleKey, c.serviceRoleKey)
	if err != nil {
		return err
	}

	switch resp.status {
	case http.StatusOK, http.StatusNoContent, http.StatusNotFound:
		return nil
	default:
		return mapError("delete user", resp)
	}
}

type response struct {
	status int
	body   []byte
}

func (c *Client) call(ctx context.Context, method, path string, payload any, apiKey, bearer string) (*response, error) {
	var reader io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return nil, errors.Wrap(err, "encode auth request")
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+"/auth/v1"+path, reader)
	if err != nil {
		return nil, errors.Wrap(err, "create auth request")
	}
	req.Header.Set("apikey", apiKey)
	req.Header.Set("Authorization", "Bearer "+bearer)
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrAuthProviderUnavailable, err.Error())
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrAuthProviderUnavailable, "read auth response: "+err.Error())
	}

	return &response{status: resp.StatusCode, body: body}, nil
}

func (c *Client) decodeSession(body []byte) (*entity.AuthSession, error) {
	var token tokenResponse
	if err := json.Unmarshal(body, &token); err != nil {
		return nil, errors.Wrap(err, "decode auth session")
	}
	if token.AccessToken == "" || token.User == nil {
		return nil, errors.Wrap(domainerrors.ErrAuthProviderUnavailable, "auth session is missing tokens")
	}

	userID, err := uuid.Parse(token.User.ID)
	if err != nil {
		return nil, errors.Wrap(err, "parse auth user id")
	}

	expiresAt := time.Unix(token.ExpiresAt, 0)
	if token.ExpiresAt == 0 {
		expiresAt = c.now().Add(time.Duration(token.ExpiresIn) * time.Second)
	}

	return &entity.AuthSession{
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
		ExpiresAt:    expiresAt,
		User: entity.AuthUser{
			ID:        userID,
			Email:     token.User.Email,
			CreatedAt: token.User.CreatedAt,
		},
	}, nil
}

func decodeUser(body []byte) (*entity.AuthUser, error) {
	var user userResponse
	if err := json.Unmarshal(body, &user); err != nil {
		return nil, errors.Wrap(err, "decode auth user")
	}

	userID, err := uuid.Parse(user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "parse auth user id")
	}

	return &entity.AuthUser{ID: userID, Email: user.Email, CreatedAt: user.CreatedAt}, nil
}

// providerMessage pulls the human readable message out of the GoTrue error shapes.
func providerMessage(body []byte) string {
	for _, path := range []string{"error_description", "msg", "message", "error"} {
		if v := gjson.GetBytes(body, path); v.Type == gjson.String && v.Str != "" {
			return v.Str
		}
	}

	return strings.TrimSpace(string(body))
}

func mapError(op string, resp *response) error {
	msg := providerMessage(resp.body)
	lower := strings.ToLower(msg)
	code := gjson.GetBytes(resp.body, "error_code").String()
	grant := gjson.GetBytes(resp.body, "error").String()

	switch {
	case resp.status == http.StatusTooManyRequests || code == "over_request_rate_limit" || code == "over_email_send_rate_limit":
		return errors.Wrap(domainerrors.ErrRateLimited, msg)
	case code == "user_already_exists" || code == "email_exists" || strings.Contains(lower, "already registered"):
		return errors.Wrap(domainerrors.ErrEmailAlreadyRegistered, msg)
	case resp.status == http.StatusBadRequest &&
		(grant == "invalid_grant" || code == "invalid_credentials" || strings.Contains(lower, "invalid login credentials")):
		return errors.Wrap(domainerrors.ErrInvalidCredentials, msg)
	case resp.status == http.StatusUnprocessableEntity || (resp.status == http.StatusBadRequest && code == "weak_password"):
		return errors.Wrap(domainerrors.ErrValidationFailed.WithDetails(msg), op)
	default:
		return errors.Wrap(domainerrors.ErrAuthProviderUnavailable, fmt.Sprintf("%s: status %d: %s", op, resp.status, msg))
	}
}
