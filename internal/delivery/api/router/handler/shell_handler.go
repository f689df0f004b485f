package handler

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"slices"
	"time"

	"github.com/Abros3006/business-tracker/config"
	"github.com/Abros3006/business-tracker/internal/delivery/api/middleware"
	"github.com/Abros3006/business-tracker/internal/delivery/api/response"
	deliverycontext "github.com/Abros3006/business-tracker/internal/delivery/context"
	"github.com/Abros3006/business-tracker/internal/domain/entity"
	"github.com/Abros3006/business-tracker/internal/usecase"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const (
	streamWriteWait  = 10 * time.Second
	streamPongWait   = 60 * time.Second
	streamPingPeriod = streamPongWait * 9 / 10
)

// ShellHandlerParams holds dependencies for ShellHandler, injected by Fx.
type ShellHandlerParams struct {
	fx.In

	SessionUC usecase.SessionUsecase
	Session   *middleware.SessionMiddleware
	Config    *config.Config
	Logger    *slog.Logger
}

// ShellHandler serves the navigation chrome and the session change stream.
type ShellHandler struct {
	sessionUC usecase.SessionUsecase
	session   *middleware.SessionMiddleware
	upgrader  websocket.Upgrader
	logger    *slog.Logger
}

// NewShellHandler is the constructor for ShellHandler
func NewShellHandler(params ShellHandlerParams) *ShellHandler {
	allowed := params.Config.HTTP.AllowOrigins

	return &ShellHandler{
		sessionUC: params.SessionUC,
		session:   params.Session,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return originAllowed(r, allowed)
			},
		},
		logger: params.Logger,
	}
}

// GetShell returns signed-in or anonymous navigation. It never fails.
func (h *ShellHandler) GetShell(c echo.Context) error {
	shell := h.sessionUC.Shell(c.Request().Context(), h.session.SessionID(c))

	return response.Success(c, http.StatusOK, shell)
}

// Stream pushes session changes for the signed-in user over a websocket until the
// client leaves or this session is signed out.
func (h *ShellHandler) Stream(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Please sign in to continue")
	}
	sessionID, _ := middleware.GetSessionID(c)

	logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger)

	ctx, cancel := context.WithCancel(context.WithoutCancel(c.Request().Context()))
	defer cancel()

	events, release, err := h.sessionUC.Watch(ctx, userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	defer release()

	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		// the upgrader has already answered the client
		logger.Warn("Session stream upgrade failed", slog.Any("error", err))

		return nil
	}
	defer conn.Close()

	go readUntilClosed(conn, cancel)

	ticker := time.NewTicker(streamPingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, open := <-events:
			if !open {
				return nil
			}

			_ = conn.SetWriteDeadline(time.Now().Add(streamWriteWait))
			if err := conn.WriteJSON(event); err != nil {
				logger.Debug("Session stream write failed", slog.Any("error", err))

				return nil
			}

			if endsStream(event, sessionID) {
				_ = conn.WriteControl(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseNormalClosure, string(event.Type)),
					time.Now().Add(streamWriteWait))

				return nil
			}

		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(streamWriteWait)); err != nil {
				return nil
			}
		}
	}
}

// readUntilClosed drains client frames so pongs and close frames are processed.
func readUntilClosed(conn *websocket.Conn, cancel context.CancelFunc) {
	defer cancel()

	_ = conn.SetReadDeadline(time.Now().Add(streamPongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(streamPongWait))
	})

	for {
		if _, _, err := conn.NextReader(); err != nil {
			return
		}
	}
}

// endsStream reports whether event signs out the session behind this stream.
// A signed_out without a session id means every session of the user is gone.
func endsStream(event entity.SessionEvent, sessionID string) bool {
	if event.Type != entity.SessionSignedOut {
		return false
	}

	return event.SessionID == "" || event.SessionID == sessionID
}

func originAllowed(r *http.Request, allowed []string) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}

	if slices.Contains(allowed, "*") || slices.Contains(allowed, origin) {
		return true
	}

	u, err := url.Parse(origin)

	return err == nil && u.Host == r.Host
}
