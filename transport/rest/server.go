package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rocketscienceinc/maze-backend/internal/entity"
	"github.com/rocketscienceinc/maze-backend/internal/maze"
)

const (
	baseURL         = "/api/v1"
	shutdownTimeout = 5 * time.Second
)

type uGame interface {
	GetOrCreatePlayer(ctx context.Context, playerID string) (*entity.Player, error)

	NewGame(ctx context.Context, playerID string, size int) (*entity.Game, error)
	GetGame(ctx context.Context, playerID string) (*entity.Game, error)
	LeaveGame(ctx context.Context, playerID string) (*entity.Player, error)

	MovePlayer(ctx context.Context, playerID string, direction maze.Direction) (*entity.Game, error)
	Neighbours(ctx context.Context, playerID string) (maze.Neighbours, error)
	PlayerPosition(ctx context.Context, playerID string) (maze.Position, error)
}

type Server struct {
	logger *slog.Logger
	uGame  uGame
}

func New(logger *slog.Logger, uGame uGame) *Server {
	return &Server{
		logger: logger.With("component", "rest"),
		uGame:  uGame,
	}
}

// Router - builds the gin engine with every route registered.
func (that *Server) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), that.requestLogger())

	router.GET("/ping", pingHandler)

	api := router.Group(baseURL)
	{
		api.POST("/players", that.createPlayer)

		mazeRoutes := api.Group("/players/:id/maze")
		{
			mazeRoutes.POST("", that.newMaze)
			mazeRoutes.GET("", that.getMaze)
			mazeRoutes.DELETE("", that.leaveMaze)
			mazeRoutes.POST("/moves", that.move)
			mazeRoutes.GET("/neighbours", that.neighbours)
			mazeRoutes.GET("/position", that.position)
		}
	}

	return router
}

// Start - starts HTTP server and stops it when ctx is done.
func (that *Server) Start(ctx context.Context, port string) error {
	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      that.Router(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			that.logger.Error("failed to shutdown server", "error", err)
		}
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

func (that *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		that.logger.Debug("request served",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}
