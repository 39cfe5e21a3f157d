/*
Package maze generates perfect square mazes and tracks a single player exploring one.

A maze of odd size N is a flat grid of N*N tiles. Tiles with two even coordinates
are cells, tiles with two odd coordinates are pillars and the rest are walls that
either connect or separate two cells. The player starts at (0,0), the exit is at
(N-1,N-1), and tiles become visible as the player walks next to them.

A Maze is not safe for concurrent use, each session owns its own instance.
*/
package maze

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/rocketscienceinc/maze-backend/internal/apperror"
)

type Maze struct {
	size   int
	tiles  []Tile
	player Position
	exit   Position
}

// Neighbours holds the tile types around the player. Positions outside the grid
// are reported as Blocked.
type Neighbours struct {
	Left  TileType `json:"left"`
	Right TileType `json:"right"`
	Up    TileType `json:"up"`
	Down  TileType `json:"down"`
}

// New generates a random maze of the given size. It panics if size is not a
// positive odd number, use ValidateSize to check untrusted input first.
func New(size int) *Maze {
	return NewWithRand(size, nil)
}

// NewWithRand is like New but draws randomness from rng, so a seeded source
// always produces the same maze.
func NewWithRand(size int, rng *rand.Rand) *Maze {
	maze := &Maze{
		size:   size,
		tiles:  Generate(size, rng),
		player: Position{X: 0, Y: 0},
		exit:   Position{X: size - 1, Y: size - 1},
	}

	maze.revealAroundPlayer()

	return maze
}

// FromTiles builds a maze over an existing square layout with the player at
// the given position. Nothing is revealed.
func FromTiles(tiles []Tile, player Position) (*Maze, error) {
	size := int(math.Sqrt(float64(len(tiles))))
	if size == 0 || size*size != len(tiles) {
		return nil, fmt.Errorf("%w: %d tiles do not form a square", apperror.ErrInvalidSnapshot, len(tiles))
	}

	maze := &Maze{
		size:   size,
		tiles:  append([]Tile(nil), tiles...),
		player: player,
		exit:   Position{X: size - 1, Y: size - 1},
	}

	if !maze.inBounds(player) {
		return nil, fmt.Errorf("%w: player %+v outside %dx%d grid", apperror.ErrInvalidSnapshot, player, size, size)
	}

	return maze, nil
}

func (that *Maze) Size() int {
	return that.size
}

func (that *Maze) Player() Position {
	return that.player
}

func (that *Maze) Exit() Position {
	return that.exit
}

// AtExit reports whether the player stands on the exit tile.
func (that *Maze) AtExit() bool {
	return that.player == that.exit
}

// MovePlayer moves the player one tile in direction d and reveals the tiles
// around the new position. It returns apperror.ErrDirectionBlocked and leaves
// the maze untouched when the target is a wall or outside the grid.
func (that *Maze) MovePlayer(d Direction) error {
	target := d.step(that.player)

	if !that.inBounds(target) || that.tileAt(target).Type() == Blocked {
		return apperror.ErrDirectionBlocked
	}

	that.player = target
	that.revealAroundPlayer()

	return nil
}

// NeighbouringTileTypes returns the real types of the four tiles around the
// player, regardless of whether they have been revealed.
func (that *Maze) NeighbouringTileTypes() Neighbours {
	return Neighbours{
		Left:  that.tileTypeAt(Left.step(that.player)),
		Right: that.tileTypeAt(Right.step(that.player)),
		Up:    that.tileTypeAt(Up.step(that.player)),
		Down:  that.tileTypeAt(Down.step(that.player)),
	}
}

func (that *Maze) revealAroundPlayer() {
	that.reveal(that.player)

	for _, d := range []Direction{Up, Down, Left, Right} {
		if pos := d.step(that.player); that.inBounds(pos) {
			that.reveal(pos)
		}
	}
}

func (that *Maze) reveal(pos Position) {
	that.tiles[index(that.size, pos)].Reveal()
}

func (that *Maze) tileAt(pos Position) Tile {
	return that.tiles[index(that.size, pos)]
}

func (that *Maze) tileTypeAt(pos Position) TileType {
	if !that.inBounds(pos) {
		return Blocked
	}

	return that.tileAt(pos).Type()
}

func (that *Maze) inBounds(pos Position) bool {
	return pos.X >= 0 && pos.Y >= 0 && pos.X < that.size && pos.Y < that.size
}
