package handler

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/Abros3006/business-tracker/config"
	"github.com/Abros3006/business-tracker/internal/delivery/api/middleware"
	"github.com/Abros3006/business-tracker/internal/delivery/api/response"
	"github.com/Abros3006/business-tracker/internal/delivery/api/validator"
	"github.com/Abros3006/business-tracker/internal/domain/entity"
	"github.com/Abros3006/business-tracker/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const passwordResetNotice = "If an account exists for that email, a password reset link is on its way."

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AuthUC  usecase.AuthUsecase
	Session *middleware.SessionMiddleware
	Config  *config.Config
	Logger  *slog.Logger
}

// AuthHandler serves login, registration, logout and password reset.
type AuthHandler struct {
	authUC  usecase.AuthUsecase
	session *middleware.SessionMiddleware
	cookie  *config.SessionConfig
	logger  *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		authUC:  params.AuthUC,
		session: params.Session,
		cookie:  params.Config.Session,
		logger:  params.Logger,
	}
}

// LoginRequest carries credentials plus the role picked on the login form.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role" validate:"required,oneof=admin student"`
}

// RegisterRequest creates an account. AdminCode is required for admins.
type RegisterRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=6"`
	FullName  string `json:"full_name" validate:"required,max=120"`
	Role      string `json:"role" validate:"required,oneof=admin student"`
	AdminCode string `json:"admin_code" validate:"required_if=Role admin"`
}

// PasswordResetRequest asks for a reset e-mail.
type PasswordResetRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// LoginResponse is returned after a successful sign in.
type LoginResponse struct {
	User     LoginUser        `json:"user"`
	Profile  *ProfileResponse `json:"profile"`
	Redirect string           `json:"redirect"`
}

// LoginUser is the signed-in account.
type LoginUser struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
}

// RegisterResponse is returned after registration. It does not sign in.
type RegisterResponse struct {
	UserID   uuid.UUID   `json:"user_id"`
	Email    string      `json:"email"`
	Role     entity.Role `json:"role"`
	Redirect string      `json:"redirect"`
}

// RedirectResponse tells the client where to go next.
type RedirectResponse struct {
	Redirect string `json:"redirect"`
}

// Login handles the role-gated sign in
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequestWithDetails(c, "VALIDATION_ERROR", "Please select a role and enter your email and password", validator.Fields(err))
	}

	out, err := h.authUC.Login(c.Request().Context(), usecase.LoginInput{
		Email:    strings.TrimSpace(req.Email),
		Password: req.Password,
		Role:     entity.Role(req.Role),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	h.setSessionCookie(c, out.Session.ID)

	return response.Success(c, http.StatusOK, LoginResponse{
		User: LoginUser{
			ID:    out.Session.UserID,
			Email: out.Session.Email,
		},
		Profile:  toProfileResponse(out.Profile),
		Redirect: out.Redirect,
	})
}

// Register handles account creation
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequestWithDetails(c, "VALIDATION_ERROR", "Please check the highlighted fields", validator.Fields(err))
	}

	out, err := h.authUC.Register(c.Request().Context(), usecase.RegisterInput{
		Email:     strings.TrimSpace(req.Email),
		Password:  req.Password,
		FullName:  strings.TrimSpace(req.FullName),
		Role:      entity.Role(req.Role),
		AdminCode: strings.TrimSpace(req.AdminCode),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, RegisterResponse{
		UserID:   out.UserID,
		Email:    out.Email,
		Role:     out.Role,
		Redirect: out.Redirect,
	})
}

// Logout signs out and always succeeds, even without a session.
func (h *AuthHandler) Logout(c echo.Context) error {
	out := h.authUC.Logout(c.Request().Context(), h.session.SessionID(c))
	h.clearSessionCookie(c)

	return response.Success(c, http.StatusOK, RedirectResponse{Redirect: out.Redirect})
}

// RequestPasswordReset answers the same way whether or not the account exists.
func (h *AuthHandler) RequestPasswordReset(c echo.Context) error {
	var req PasswordResetRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid password reset input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequestWithDetails(c, "VALIDATION_ERROR", "Please enter a valid email address", validator.Fields(err))
	}

	if err := h.authUC.RequestPasswordReset(c.Request().Context(), usecase.PasswordResetInput{
		Email: strings.TrimSpace(req.Email),
	}); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusAccepted, map[string]string{"message": passwordResetNotice})
}

func (h *AuthHandler) setSessionCookie(c echo.Context, sessionID string) {
	c.SetCookie(h.newCookie(sessionID, int(h.cookie.TTL/time.Second)))
}

func (h *AuthHandler) clearSessionCookie(c echo.Context) {
	cookie := h.newCookie("", -1)
	cookie.Expires = time.Unix(0, 0)
	c.SetCookie(cookie)
}

func (h *AuthHandler) newCookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     h.session.CookieName(),
		Value:    value,
		Path:     "/",
		Domain:   h.cookie.CookieDomain,
		MaxAge:   maxAge,
		Secure:   h.cookie.Secure,
		HttpOnly: true,
		SameSite: parseSameSite(h.cookie.SameSite),
	}
}

func parseSameSite(s string) http.SameSite {
	switch strings.ToLower(s) {
	case "strict":
		return http.SameSiteStrictMode
	case "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
