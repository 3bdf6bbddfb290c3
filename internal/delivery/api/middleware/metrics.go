package middleware

import (
	"time"

	"punchclock/internal/infra/metrics"

	"github.com/labstack/echo/v4"
)

// unmatchedRoute labels requests that matched no route, keeping label cardinality bounded.
const unmatchedRoute = "unmatched"

// MetricsMiddleware records request counts and latencies by route template.
type MetricsMiddleware struct {
	metrics *metrics.Metrics
}

// NewMetricsMiddleware is the constructor for MetricsMiddleware.
func NewMetricsMiddleware(m *metrics.Metrics) *MetricsMiddleware {
	return &MetricsMiddleware{metrics: m}
}

// Handle must run outside the logger middleware so the recorded status is the final one.
func (m *MetricsMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		m.metrics.RequestsInFlight.Inc()
		defer m.metrics.RequestsInFlight.Dec()

		err := next(c)

		route := c.Path()
		if route == "" {
			route = unmatchedRoute
		}
		m.metrics.ObserveHTTP(c.Request().Method, route, c.Response().Status, time.Since(start))

		return err
	}
}
