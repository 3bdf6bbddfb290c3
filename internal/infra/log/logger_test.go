package logs

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"punchclock/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithWriter_JSON(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.ServiceName = "punchclock"
	cfg.Env.Env = "test"
	cfg.Env.Log.Level = "warn"

	var buf bytes.Buffer
	logger, err := NewWithWriter(cfg, &buf)
	require.NoError(t, err)

	logger.Info("dropped")
	logger.Warn("kept", slog.String("user_id", "u-1"))

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "kept", record["msg"])
	assert.Equal(t, "punchclock", record["service"])
	assert.Equal(t, "test", record["env"])
	assert.Equal(t, "u-1", record["user_id"])
}

func TestNewWithWriter_Pretty(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.Log.Pretty = true

	var buf bytes.Buffer
	logger, err := NewWithWriter(cfg, &buf)
	require.NoError(t, err)

	logger.Info("hello")
	assert.Contains(t, buf.String(), "msg=hello")
}

func TestParseLogLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"":        slog.LevelInfo,
		"INFO":    slog.LevelInfo,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
	}
	for in, want := range tests {
		got, err := parseLogLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := parseLogLevel("verbose")
	assert.Error(t, err)
}
