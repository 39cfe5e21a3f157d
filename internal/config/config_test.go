package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestMustLoad(t *testing.T) {
	t.Run("Fills defaults", func(t *testing.T) {
		// Given: a config file that only sets the log level
		path := writeConfig(t, "log-level: debug\n")

		// When: loading it
		conf := MustLoad(path)

		// Then: everything else falls back to defaults
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, "9090", conf.HTTPPort)
		assert.Equal(t, "8080", conf.SocketPort)
		assert.Equal(t, "localhost:6379", conf.Redis.GetRedisAddr())
		assert.Equal(t, 21, conf.Maze.DefaultSize)
		assert.Equal(t, 101, conf.Maze.MaxSize)
		assert.Equal(t, 24*time.Hour, conf.Maze.SessionTTL)
		assert.Equal(t, 5*time.Second, conf.Maze.LockExpiry)
	})

	t.Run("Reads nested values", func(t *testing.T) {
		path := writeConfig(t, "redis:\n  host: redis\n  port: \"6380\"\nmaze:\n  default-size: 11\n  session-ttl: 1h\n")

		conf := MustLoad(path)

		assert.Equal(t, "redis:6380", conf.Redis.GetRedisAddr())
		assert.Equal(t, 11, conf.Maze.DefaultSize)
		assert.Equal(t, time.Hour, conf.Maze.SessionTTL)
	})

	t.Run("Environment overrides the file", func(t *testing.T) {
		t.Setenv("MAZE_MAX_SIZE", "51")
		path := writeConfig(t, "maze:\n  max-size: 201\n")

		conf := MustLoad(path)

		assert.Equal(t, 51, conf.Maze.MaxSize)
	})

	t.Run("Panics on missing file", func(t *testing.T) {
		assert.Panics(t, func() {
			MustLoad(filepath.Join(t.TempDir(), "missing.yml"))
		})
	})
}

func TestConfig_SlogLevel(t *testing.T) {
	tests := []struct {
		logLevel string
		want     slog.Level
	}{
		{logLevel: "debug", want: slog.LevelDebug},
		{logLevel: "info", want: slog.LevelInfo},
		{logLevel: "warn", want: slog.LevelWarn},
		{logLevel: "error", want: slog.LevelError},
		{logLevel: "verbose", want: slog.LevelInfo},
		{logLevel: "", want: slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.logLevel, func(t *testing.T) {
			conf := &Config{LogLevel: tt.logLevel}

			assert.Equal(t, tt.want, conf.SlogLevel())
		})
	}
}
