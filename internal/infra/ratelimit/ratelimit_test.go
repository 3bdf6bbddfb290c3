package ratelimit

import (
	"context"
	"fmt"
	"testing"
	"time"

	"punchclock/config"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func TestNewLimiter_WithoutClientAllowsEverything(t *testing.T) {
	cfg := &config.Config{RateLimiter: &config.RateLimiterConfig{Limit: 1, Window: time.Minute}}
	limiter := NewLimiter(nil, cfg)

	for i := 0; i < 5; i++ {
		allowed, err := limiter.Allow(context.Background(), "203.0.113.7")
		require.NoError(t, err)
		assert.True(t, allowed)
	}
}

func TestRedisLimiter_FailsOpenOnRedisError(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = client.Close() })

	allowed, err := New(client, 1, time.Minute).Allow(context.Background(), "203.0.113.7")
	assert.Error(t, err)
	assert.True(t, allowed)
}

func TestRedisLimiter_FixedWindow(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping redis container test in short mode")
	}

	ctx := context.Background()
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections"),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "6379")
	require.NoError(t, err)

	client := redis.NewClient(&redis.Options{Addr: fmt.Sprintf("%s:%s", host, port.Port())})
	t.Cleanup(func() { _ = client.Close() })

	limiter := New(client, 3, time.Second)

	for i := 0; i < 3; i++ {
		allowed, err := limiter.Allow(ctx, "198.51.100.1")
		require.NoError(t, err)
		assert.True(t, allowed, "attempt %d", i+1)
	}

	allowed, err := limiter.Allow(ctx, "198.51.100.1")
	require.NoError(t, err)
	assert.False(t, allowed)

	// Other keys keep their own window.
	allowed, err = limiter.Allow(ctx, "198.51.100.2")
	require.NoError(t, err)
	assert.True(t, allowed)

	ttl, err := client.TTL(ctx, keyPrefix+"198.51.100.1").Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))

	require.Eventually(t, func() bool {
		allowed, err := limiter.Allow(ctx, "198.51.100.1")

		return err == nil && allowed
	}, 5*time.Second, 200*time.Millisecond)
}
