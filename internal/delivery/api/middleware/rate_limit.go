package middleware

import (
	"time"

	"github.com/Abros3006/business-tracker/config"
	"github.com/Abros3006/business-tracker/internal/delivery/api/response"
	domainerrors "github.com/Abros3006/business-tracker/internal/domain/errors"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"
)

const (
	defaultAuthRPS       = 1
	defaultAuthBurst     = 5
	defaultAuthExpiresIn = 3 * time.Minute
)

// NewAuthRateLimiter limits the unauthenticated auth endpoints per client IP.
func NewAuthRateLimiter(cfg *config.Config) echo.MiddlewareFunc {
	limit, burst, expiresIn := rate.Limit(defaultAuthRPS), defaultAuthBurst, defaultAuthExpiresIn
	if cfg.RateLimit != nil {
		if cfg.RateLimit.Login.RPS > 0 {
			limit = rate.Limit(cfg.RateLimit.Login.RPS)
		}
		if cfg.RateLimit.Login.Burst > 0 {
			burst = cfg.RateLimit.Login.Burst
		}
		if cfg.RateLimit.Login.ExpiresIn > 0 {
			expiresIn = cfg.RateLimit.Login.ExpiresIn
		}
	}

	return echomiddleware.RateLimiterWithConfig(echomiddleware.RateLimiterConfig{
		Store: echomiddleware.NewRateLimiterMemoryStoreWithConfig(echomiddleware.RateLimiterMemoryStoreConfig{
			Rate:      limit,
			Burst:     burst,
			ExpiresIn: expiresIn,
		}),
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		ErrorHandler: func(c echo.Context, _ error) error {
			return response.BadRequest(c, "INVALID_CLIENT", "Client address could not be determined")
		},
		DenyHandler: func(c echo.Context, _ string, _ error) error {
			rl := domainerrors.ErrRateLimited

			return response.Error(c, rl.HTTPCode(), rl.ErrorCode(), rl.Message(), nil)
		},
	})
}
