package middleware

import (
	"log/slog"
	"strconv"
	"time"

	"punchclock/config"
	deliverycontext "punchclock/internal/delivery/context"
	domainerrors "punchclock/internal/domain/errors"
	"punchclock/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// RateLimitMiddleware throttles attempts per client IP.
type RateLimitMiddleware struct {
	limiter service.RateLimiter
	window  time.Duration
	logger  *slog.Logger
}

// NewRateLimitMiddleware is the constructor for RateLimitMiddleware.
func NewRateLimitMiddleware(limiter service.RateLimiter, cfg *config.Config, logger *slog.Logger) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		limiter: limiter,
		window:  cfg.RateLimiter.Window,
		logger:  logger,
	}
}

// Limit counts each request against "<scope>:<client ip>". Limiter failures let the request through.
func (m *RateLimitMiddleware) Limit(scope string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()
			key := scope + ":" + c.RealIP()

			allowed, err := m.limiter.Allow(ctx, key)
			if err != nil {
				deliverycontext.GetLoggerOrDefault(ctx, m.logger).Warn("Rate limiter unavailable", slog.String("scope", scope), slog.Any("error", err))
			}

			if !allowed {
				c.Response().Header().Set(echo.HeaderRetryAfter, strconv.Itoa(int(m.window.Seconds())))

				return errors.WithStack(domainerrors.ErrTooManyRequests)
			}

			return next(c)
		}
	}
}
