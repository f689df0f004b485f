package middleware

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/Abros3006/business-tracker/config"
	"github.com/Abros3006/business-tracker/internal/delivery/api/response"
	deliverycontext "github.com/Abros3006/business-tracker/internal/delivery/context"
	"github.com/Abros3006/business-tracker/internal/domain/constants"
	"github.com/Abros3006/business-tracker/internal/domain/entity"
	"github.com/Abros3006/business-tracker/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const (
	keyUserID    = "userID"
	keyRole      = "role"
	keySessionID = "sessionID"
	keyEmail     = "email"
)

// SessionMiddlewareParams holds dependencies for SessionMiddleware, injected by Fx.
type SessionMiddlewareParams struct {
	fx.In

	SessionUC usecase.SessionUsecase
	Config    *config.Config
}

// SessionMiddleware guards routes that need a signed-in user.
type SessionMiddleware struct {
	sessionUC  usecase.SessionUsecase
	cookieName string
}

// NewSessionMiddleware is the constructor for SessionMiddleware.
func NewSessionMiddleware(params SessionMiddlewareParams) *SessionMiddleware {
	return &SessionMiddleware{
		sessionUC:  params.SessionUC,
		cookieName: params.Config.Session.CookieName,
	}
}

// CookieName is the name of the session cookie.
func (m *SessionMiddleware) CookieName() string {
	return m.cookieName
}

// SessionID reads the session id from the cookie, falling back to a bearer header
// for non-browser clients.
func (m *SessionMiddleware) SessionID(c echo.Context) string {
	if cookie, err := c.Cookie(m.cookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	if token, ok := strings.CutPrefix(c.Request().Header.Get(echo.HeaderAuthorization), "Bearer "); ok {
		return strings.TrimSpace(token)
	}

	return ""
}

// RequireSession resolves the session before the handler runs. Without a live
// session the handler is never invoked: browsers are redirected to the login page,
// API clients get 401 with the same redirect target.
func (m *SessionMiddleware) RequireSession(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		session, err := m.sessionUC.Resolve(c.Request().Context(), m.SessionID(c))
		if err != nil {
			return m.deny(c)
		}

		SetSession(c, session)

		logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), nil)
		if logger != nil {
			ctx := deliverycontext.WithLogger(c.Request().Context(), logger.With("user_id", session.UserID.String()))
			c.SetRequest(c.Request().WithContext(ctx))
		}

		return next(c)
	}
}

func (m *SessionMiddleware) deny(c echo.Context) error {
	if wantsHTML(c.Request()) {
		target := constants.LoginPath + "?redirect=" + url.QueryEscape(c.Request().URL.RequestURI())

		return c.Redirect(http.StatusFound, target)
	}

	return response.UnauthorizedWithRedirect(c, "UNAUTHORIZED", "Please sign in to continue", constants.LoginPath)
}

// RequireRole rejects signed-in users without role. It must run after RequireSession.
func (m *SessionMiddleware) RequireRole(role entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			current, ok := GetRole(c)
			if !ok || current != role {
				return response.Forbidden(c, "FORBIDDEN", "You do not have permission to perform this action")
			}

			return next(c)
		}
	}
}

func wantsHTML(r *http.Request) bool {
	return strings.Contains(r.Header.Get(echo.HeaderAccept), echo.MIMETextHTML)
}

// SetSession exposes the resolved session to handlers.
func SetSession(c echo.Context, session *entity.Session) {
	c.Set(keyUserID, session.UserID)
	c.Set(keyRole, session.Role)
	c.Set(keySessionID, session.ID)
	c.Set(keyEmail, session.Email)
}

// GetUserID returns the signed-in user's id.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	id, ok := c.Get(keyUserID).(uuid.UUID)

	return id, ok && id != uuid.Nil
}

// GetRole returns the signed-in user's role.
func GetRole(c echo.Context) (entity.Role, bool) {
	role, ok := c.Get(keyRole).(entity.Role)

	return role, ok
}

// GetSessionID returns the id of the resolved session.
func GetSessionID(c echo.Context) (string, bool) {
	id, ok := c.Get(keySessionID).(string)

	return id, ok && id != ""
}

// GetEmail returns the signed-in user's e-mail.
func GetEmail(c echo.Context) string {
	email, _ := c.Get(keyEmail).(string)

	return email
}
