package maze

import (
	"fmt"

	"github.com/rocketscienceinc/maze-backend/internal/apperror"
)

// Position is a tile coordinate, x grows to the right and y grows downwards.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Direction is one of the four moves a player can make.
type Direction uint8

const (
	Up Direction = iota
	Down
	Left
	Right
)

var directionNames = map[Direction]string{
	Up:    "up",
	Down:  "down",
	Left:  "left",
	Right: "right",
}

// ParseDirection converts a lowercase direction token into a Direction.
func ParseDirection(s string) (Direction, error) {
	for d, name := range directionNames {
		if name == s {
			return d, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", apperror.ErrInvalidDirection, s)
}

func (that Direction) String() string {
	if name, ok := directionNames[that]; ok {
		return name
	}

	return fmt.Sprintf("Direction(%d)", uint8(that))
}

func (that Direction) MarshalText() ([]byte, error) {
	name, ok := directionNames[that]
	if !ok {
		return nil, fmt.Errorf("%w: %d", apperror.ErrInvalidDirection, uint8(that))
	}

	return []byte(name), nil
}

func (that *Direction) UnmarshalText(text []byte) error {
	d, err := ParseDirection(string(text))
	if err != nil {
		return err
	}

	*that = d

	return nil
}

// step returns the coordinate one tile away from p in direction d.
// The result may lie outside the grid, callers check bounds.
func (that Direction) step(p Position) Position {
	switch that {
	case Up:
		return Position{X: p.X, Y: p.Y - 1}
	case Down:
		return Position{X: p.X, Y: p.Y + 1}
	case Left:
		return Position{X: p.X - 1, Y: p.Y}
	case Right:
		return Position{X: p.X + 1, Y: p.Y}
	default:
		return p
	}
}
