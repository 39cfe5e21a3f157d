package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/maze-backend/internal/apperror"
	"github.com/rocketscienceinc/maze-backend/internal/entity"
	"github.com/rocketscienceinc/maze-backend/internal/maze"
	"github.com/rocketscienceinc/maze-backend/internal/pkg"
)

type GameUseCase interface {
	GetOrCreatePlayer(ctx context.Context, playerID string) (*entity.Player, error)

	NewGame(ctx context.Context, playerID string, size int) (*entity.Game, error)
	GetGame(ctx context.Context, playerID string) (*entity.Game, error)
	LeaveGame(ctx context.Context, playerID string) (*entity.Player, error)

	MovePlayer(ctx context.Context, playerID string, direction maze.Direction) (*entity.Game, error)
	Neighbours(ctx context.Context, playerID string) (maze.Neighbours, error)
	PlayerPosition(ctx context.Context, playerID string) (maze.Position, error)
}

type playerRepoDep interface {
	CreateOrUpdate(ctx context.Context, player *entity.Player) error
	GetByID(ctx context.Context, id string) (*entity.Player, error)
	Touch(ctx context.Context, id string) error
}

type gameRepoDep interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	DeleteByID(ctx context.Context, id string) error
}

type lockerDep interface {
	WithLock(ctx context.Context, key string, fn func() error) error
}

// Limits bounds the maze sizes a client may ask for.
type Limits struct {
	DefaultSize int
	MaxSize     int
}

type gameUseCase struct {
	logger *slog.Logger
	limits Limits

	playerRepo playerRepoDep
	gameRepo   gameRepoDep
	locker     lockerDep
}

func NewGameUseCase(logger *slog.Logger, limits Limits, playerRepo playerRepoDep, gameRepo gameRepoDep, locker lockerDep) GameUseCase {
	return &gameUseCase{
		logger: logger.With("component", "game_usecase"),
		limits: limits,

		playerRepo: playerRepo,
		gameRepo:   gameRepo,
		locker:     locker,
	}
}

func (that *gameUseCase) GetOrCreatePlayer(ctx context.Context, playerID string) (*entity.Player, error) {
	if playerID == "" {
		id, err := pkg.GenerateNewSessionID()
		if err != nil {
			return nil, err
		}

		player := &entity.Player{ID: id}

		if err = that.playerRepo.CreateOrUpdate(ctx, player); err != nil {
			return nil, fmt.Errorf("could not create player: %w", err)
		}

		that.logger.Debug("player created", "player_id", player.ID)

		return player, nil
	}

	player, err := that.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get player by id: %w", err)
	}

	return player, nil
}

// NewGame generates a fresh maze for the player. A game the player was still in is discarded.
func (that *gameUseCase) NewGame(ctx context.Context, playerID string, size int) (*entity.Game, error) {
	log := that.logger.With("method", "NewGame", "player_id", playerID)

	size, err := that.resolveSize(size)
	if err != nil {
		return nil, err
	}

	var game *entity.Game

	err = that.locker.WithLock(ctx, playerKey(playerID), func() error {
		player, err := that.playerRepo.GetByID(ctx, playerID)
		if err != nil {
			return fmt.Errorf("failed to get player by id: %w", err)
		}

		if player.InGame() {
			that.deleteGame(ctx, player.GameID)
		}

		gameID, err := pkg.GenerateGameID()
		if err != nil {
			return err
		}

		game = entity.NewGame(gameID, player.ID, maze.New(size))
		if err = that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
			return fmt.Errorf("failed to save game: %w", err)
		}

		player.GameID = game.ID
		if err = that.playerRepo.CreateOrUpdate(ctx, player); err != nil {
			return fmt.Errorf("failed to update player: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Info("game created", "game_id", game.ID, "size", size)

	return game, nil
}

func (that *gameUseCase) GetGame(ctx context.Context, playerID string) (*entity.Game, error) {
	player, err := that.getPlayerInGame(ctx, playerID)
	if err != nil {
		return nil, err
	}

	game, err := that.gameRepo.GetByID(ctx, player.GameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game by id: %w", err)
	}

	return game, nil
}

// MovePlayer applies one move inside the player's game. A blocked move returns the
// unchanged game together with apperror.ErrDirectionBlocked and is not persisted.
func (that *gameUseCase) MovePlayer(ctx context.Context, playerID string, direction maze.Direction) (*entity.Game, error) {
	log := that.logger.With("method", "MovePlayer", "player_id", playerID)

	player, err := that.getPlayerInGame(ctx, playerID)
	if err != nil {
		return nil, err
	}

	var game *entity.Game

	err = that.locker.WithLock(ctx, gameKey(player.GameID), func() error {
		loaded, err := that.gameRepo.GetByID(ctx, player.GameID)
		if err != nil {
			return fmt.Errorf("failed to get game by id: %w", err)
		}

		game = loaded

		if err = game.MakeMove(direction); err != nil {
			return err
		}

		if err = that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
			return fmt.Errorf("failed to save game: %w", err)
		}

		return nil
	})

	switch {
	case errors.Is(err, apperror.ErrDirectionBlocked):
		return game, err
	case err != nil:
		return nil, err
	}

	// keeps the player alive for as long as the game
	if err = that.playerRepo.Touch(ctx, player.ID); err != nil {
		log.Warn("failed to refresh player", "error", err)
	}

	if game.IsFinished() {
		log.Info("exit reached", "game_id", game.ID, "moves", game.Moves)
	}

	return game, nil
}

func (that *gameUseCase) Neighbours(ctx context.Context, playerID string) (maze.Neighbours, error) {
	game, err := that.GetGame(ctx, playerID)
	if err != nil {
		return maze.Neighbours{}, err
	}

	return game.Maze.NeighbouringTileTypes(), nil
}

func (that *gameUseCase) PlayerPosition(ctx context.Context, playerID string) (maze.Position, error) {
	game, err := that.GetGame(ctx, playerID)
	if err != nil {
		return maze.Position{}, err
	}

	return game.Maze.Player(), nil
}

// LeaveGame drops the player's game, the player itself is kept.
func (that *gameUseCase) LeaveGame(ctx context.Context, playerID string) (*entity.Player, error) {
	var player *entity.Player

	err := that.locker.WithLock(ctx, playerKey(playerID), func() error {
		current, err := that.getPlayerInGame(ctx, playerID)
		if err != nil {
			return err
		}

		that.deleteGame(ctx, current.GameID)

		current.GameID = ""
		if err = that.playerRepo.CreateOrUpdate(ctx, current); err != nil {
			return fmt.Errorf("failed to update player: %w", err)
		}

		player = current

		return nil
	})
	if err != nil {
		return nil, err
	}

	return player, nil
}

func (that *gameUseCase) resolveSize(size int) (int, error) {
	if size == 0 {
		size = that.limits.DefaultSize
	}

	if err := maze.ValidateSize(size); err != nil {
		return 0, err
	}

	if that.limits.MaxSize > 0 && size > that.limits.MaxSize {
		return 0, fmt.Errorf("%w: %d is larger than %d", apperror.ErrInvalidMazeSize, size, that.limits.MaxSize)
	}

	return size, nil
}

func (that *gameUseCase) getPlayerInGame(ctx context.Context, playerID string) (*entity.Player, error) {
	player, err := that.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get player by id: %w", err)
	}

	if !player.InGame() {
		return nil, apperror.ErrNoActiveGame
	}

	return player, nil
}

func (that *gameUseCase) deleteGame(ctx context.Context, gameID string) {
	log := that.logger.With("method", "deleteGame", "game_id", gameID)

	if err := that.gameRepo.DeleteByID(ctx, gameID); err != nil && !errors.Is(err, apperror.ErrGameNotFound) {
		log.Error("failed to delete game", "error", err)
	}
}

func playerKey(id string) string {
	return "player:" + id
}

func gameKey(id string) string {
	return "game:" + id
}
