package apperror

import "errors"

var (
	ErrDirectionBlocked = errors.New("direction blocked")
	ErrInvalidDirection = errors.New("invalid direction")
	ErrInvalidMazeSize  = errors.New("maze size must be a positive odd number")
	ErrInvalidSnapshot  = errors.New("invalid maze snapshot")

	ErrGameFinished   = errors.New("game is already finished")
	ErrGameNotFound   = errors.New("game not found")
	ErrPlayerNotFound = errors.New("player not found")
	ErrNoActiveGame   = errors.New("no active game")
)
