package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	app "github.com/rocketscienceinc/maze-backend/internal"
	"github.com/rocketscienceinc/maze-backend/internal/config"
)

const configFile = "config.yml"

// main - loads the config, builds the logger and serves mazes until a signal arrives.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	baseDir, err := os.Getwd()
	if err != nil {
		panic(fmt.Errorf("failed to get current directory: %w", err))
	}

	conf := config.MustLoad(filepath.Join(baseDir, configFile))

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: conf.SlogLevel()}))
	logger.Info("maze server configured",
		"http_port", conf.HTTPPort,
		"socket_port", conf.SocketPort,
		"default_size", conf.Maze.DefaultSize,
		"max_size", conf.Maze.MaxSize,
	)

	if err = app.RunApp(logger, conf); err != nil {
		panic(fmt.Errorf("app run failed: %w", err))
	}
}
