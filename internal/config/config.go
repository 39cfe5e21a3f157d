package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type Config struct {
	LogLevel   string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	HTTPPort   string `yaml:"http-port" env:"HTTP_PORT" env-default:"9090"`
	SocketPort string `yaml:"socket-port" env:"SOCKET_PORT" env-default:"8080"`
	Redis      Redis  `yaml:"redis"`
	Maze       Maze   `yaml:"maze"`
}

type Redis struct {
	Host string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
}

type Maze struct {
	DefaultSize int           `yaml:"default-size" env:"MAZE_DEFAULT_SIZE" env-default:"21"`
	MaxSize     int           `yaml:"max-size" env:"MAZE_MAX_SIZE" env-default:"101"`
	SessionTTL  time.Duration `yaml:"session-ttl" env:"MAZE_SESSION_TTL" env-default:"24h"`
	LockExpiry  time.Duration `yaml:"lock-expiry" env:"MAZE_LOCK_EXPIRY" env-default:"5s"`
}

// MustLoad - load all configurations in config.yml file, environment variables
// (optionally from a .env file next to it) take precedence.
func MustLoad(path string) *Config {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		panic(fmt.Errorf("unable to load .env file: %w", err))
	}

	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}

// SlogLevel - maps log-level onto a slog level, unknown values mean info.
func (that *Config) SlogLevel() slog.Level {
	switch that.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
