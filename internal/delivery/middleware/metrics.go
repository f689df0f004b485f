package middleware

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// HTTPObserver records request metrics.
type HTTPObserver interface {
	InFlight() func()
	ObserveHTTP(method, route string, status int, duration time.Duration)
}

// MetricsMiddleware feeds every request into an HTTPObserver. It must run outside the
// logger middleware so the final status has already been written.
type MetricsMiddleware struct {
	observer HTTPObserver
}

// NewMetricsMiddleware creates a new metrics middleware
func NewMetricsMiddleware(observer HTTPObserver) *MetricsMiddleware {
	return &MetricsMiddleware{observer: observer}
}

// Handle records in-flight gauge, request count and latency by route template.
func (m *MetricsMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		done := m.observer.InFlight()
		defer done()

		start := time.Now()
		err := next(c)

		status := c.Response().Status
		if err != nil && !c.Response().Committed {
			status = statusOf(err)
		}
		m.observer.ObserveHTTP(c.Request().Method, c.Path(), status, time.Since(start))

		return err
	}
}

func statusOf(err error) int {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code
	}

	return http.StatusInternalServerError
}
