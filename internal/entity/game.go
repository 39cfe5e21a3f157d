package entity

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/maze-backend/internal/apperror"
	"github.com/rocketscienceinc/maze-backend/internal/maze"
)

const (
	StatusOngoing  = "ongoing"
	StatusFinished = "finished"
)

var ErrUnknownGameStatus = errors.New("unknown game status")

// Game is a maze session owned by one player.
type Game struct {
	ID       string     `json:"id"`
	PlayerID string     `json:"-"`
	Status   string     `json:"status"`
	Moves    int        `json:"moves"`
	Size     int        `json:"size"`
	Maze     *maze.Maze `json:"maze"`
}

func NewGame(id, playerID string, m *maze.Maze) *Game {
	game := &Game{
		ID:       id,
		PlayerID: playerID,
		Status:   StatusOngoing,
		Size:     m.Size(),
		Maze:     m,
	}

	// a 1x1 maze starts on its exit
	game.UpdateGameState()

	return game
}

func (that *Game) UpdateGameState() {
	if that.Maze.AtExit() {
		that.Status = StatusFinished
		return
	}

	that.Status = StatusOngoing
}

// MakeMove moves the player and finishes the game once the exit is reached.
// A blocked move leaves the game as it was.
func (that *Game) MakeMove(direction maze.Direction) error {
	if err := that.ConfirmOngoingState(); err != nil {
		return err
	}

	if err := that.Maze.MovePlayer(direction); err != nil {
		return fmt.Errorf("move %s: %w", direction, err)
	}

	that.Moves++
	that.UpdateGameState()

	return nil
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Game) ConfirmOngoingState() error {
	switch {
	case that.IsFinished():
		return apperror.ErrGameFinished
	case that.IsOngoing():
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnknownGameStatus, that.Status)
	}
}
