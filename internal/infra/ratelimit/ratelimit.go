// Package ratelimit implements fixed-window attempt counting on Redis.
package ratelimit

import (
	"context"
	"log/slog"
	"time"

	"punchclock/config"
	"punchclock/internal/domain/lifecycle"
	"punchclock/internal/domain/service"
	"punchclock/internal/errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const keyPrefix = "punchclock:ratelimit:"

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// NewClient connects to Redis. It returns nil when no address is configured.
func NewClient(params Params) *redis.Client {
	if params.Config.Redis.Addr == "" {
		params.Logger.Info("Redis address not configured, login rate limiting disabled")

		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     params.Config.Redis.Addr,
		Password: params.Config.Redis.Password,
		DB:       params.Config.Redis.DB,
	})

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			// Limiting fails open, so an unreachable Redis only warrants a warning.
			if err := client.Ping(ctx).Err(); err != nil {
				params.Logger.Warn("Redis ping failed", slog.Any("error", err))
			}

			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return client
}

// NewLimiter builds the login limiter. Without a client every attempt is allowed.
func NewLimiter(client *redis.Client, cfg *config.Config) service.RateLimiter {
	if client == nil {
		return noopLimiter{}
	}

	return New(client, cfg.RateLimiter.Limit, cfg.RateLimiter.Window)
}

type redisLimiter struct {
	client redis.Cmdable
	limit  int64
	window time.Duration
}

// New returns a limiter allowing limit attempts per key within each window.
func New(client redis.Cmdable, limit int, window time.Duration) service.RateLimiter {
	return &redisLimiter{
		client: client,
		limit:  int64(limit),
		window: window,
	}
}

// Allow increments the key's counter and starts the window on the first attempt.
// Redis failures allow the attempt and return the error for logging.
func (l *redisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	redisKey := keyPrefix + key

	pipe := l.client.TxPipeline()
	incr := pipe.Incr(ctx, redisKey)
	pipe.ExpireNX(ctx, redisKey, l.window)

	if _, err := pipe.Exec(ctx); err != nil {
		return true, errors.Wrap(err, "rate limit pipeline")
	}

	return incr.Val() <= l.limit, nil
}

type noopLimiter struct{}

func (noopLimiter) Allow(context.Context, string) (bool, error) {
	return true, nil
}
