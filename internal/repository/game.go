package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/maze-backend/internal/apperror"
	"github.com/rocketscienceinc/maze-backend/internal/entity"
	"github.com/rocketscienceinc/maze-backend/internal/maze"
)

const gameKeyPrefix = "game:"

type GameRepository interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	DeleteByID(ctx context.Context, id string) error
}

// gameRecord is the stored form of a game. The maze is kept unmasked so the
// session can be resumed exactly.
type gameRecord struct {
	ID       string        `json:"id"`
	PlayerID string        `json:"player_id"`
	Status   string        `json:"status"`
	Moves    int           `json:"moves"`
	Maze     maze.Snapshot `json:"maze"`
}

type dbGame struct {
	client *redis.Client
	ttl    time.Duration
}

// NewGameRepository - stores games in Redis, ttl of zero keeps them forever.
func NewGameRepository(client *redis.Client, ttl time.Duration) GameRepository {
	return &dbGame{
		client: client,
		ttl:    ttl,
	}
}

func (that *dbGame) CreateOrUpdate(ctx context.Context, game *entity.Game) error {
	record := gameRecord{
		ID:       game.ID,
		PlayerID: game.PlayerID,
		Status:   game.Status,
		Moves:    game.Moves,
		Maze:     game.Maze.Snapshot(),
	}

	gameJSON, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("could not marshal game: %w", err)
	}

	if err = that.client.Set(ctx, gameKeyPrefix+game.ID, gameJSON, that.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set game: %w", err)
	}

	return nil
}

func (that *dbGame) GetByID(ctx context.Context, id string) (*entity.Game, error) {
	response, err := that.client.Get(ctx, gameKeyPrefix+id).Result()

	if errors.Is(err, redis.Nil) {
		return nil, apperror.ErrGameNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get game by id: %w", err)
	}

	var record gameRecord
	if err = json.Unmarshal([]byte(response), &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal game: %w", err)
	}

	restored, err := maze.Restore(record.Maze)
	if err != nil {
		return nil, fmt.Errorf("failed to restore maze of game %s: %w", id, err)
	}

	return &entity.Game{
		ID:       record.ID,
		PlayerID: record.PlayerID,
		Status:   record.Status,
		Moves:    record.Moves,
		Size:     restored.Size(),
		Maze:     restored,
	}, nil
}

func (that *dbGame) DeleteByID(ctx context.Context, id string) error {
	deleted, err := that.client.Del(ctx, gameKeyPrefix+id).Result()
	if err != nil {
		return fmt.Errorf("failed to delete game by ID: %w", err)
	}

	if deleted == 0 {
		return apperror.ErrGameNotFound
	}

	return nil
}
