package maze

import (
	"math/rand"
	"testing"

	"github.com/rocketscienceinc/maze-backend/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func filledTiles(n int, tile Tile) []Tile {
	tiles := make([]Tile, n)
	for i := range tiles {
		tiles[i] = tile
	}

	return tiles
}

func mazeWithPlayerAt(t *testing.T, x, y int, tiles []Tile) *Maze {
	t.Helper()

	maze, err := FromTiles(tiles, Position{X: x, Y: y})
	require.NoError(t, err)

	return maze
}

// centreOnlyMap is a 3x3 layout where only the centre tile is open.
func centreOnlyMap() []Tile {
	tiles := filledTiles(9, BlockedTile())
	tiles[4] = OpenTile()

	return tiles
}

func revealedCount(maze *Maze) int {
	count := 0
	for _, tile := range maze.tiles {
		if tile.IsRevealed() {
			count++
		}
	}

	return count
}

func TestNew(t *testing.T) {
	t.Run("Places player and exit in opposite corners", func(t *testing.T) {
		for _, size := range oddSizes(40) {
			// When: creating a new maze
			maze := New(size)

			// Then: the player starts top-left and the exit is bottom-right
			assert.Equal(t, size, maze.Size())
			assert.Equal(t, Position{X: 0, Y: 0}, maze.Player())
			assert.Equal(t, Position{X: size - 1, Y: size - 1}, maze.Exit())
			assert.Len(t, maze.tiles, size*size)
		}
	})

	t.Run("Reveals the start tile and its neighbours", func(t *testing.T) {
		// When: creating a 5x5 maze
		maze := NewWithRand(5, rand.New(rand.NewSource(7)))

		// Then: only (0,0), (1,0) and (0,1) are revealed
		assert.True(t, maze.tileAt(Position{X: 0, Y: 0}).IsRevealed())
		assert.True(t, maze.tileAt(Position{X: 1, Y: 0}).IsRevealed())
		assert.True(t, maze.tileAt(Position{X: 0, Y: 1}).IsRevealed())
		assert.Equal(t, 3, revealedCount(maze))
	})

	t.Run("Single tile maze has the player on the exit", func(t *testing.T) {
		maze := New(1)

		assert.True(t, maze.AtExit())
		assert.Equal(t, [][]string{{"player"}}, maze.View())
	})

	t.Run("Panics on even size", func(t *testing.T) {
		assert.Panics(t, func() { New(4) })
	})
}

func TestFromTiles(t *testing.T) {
	t.Run("Rejects non-square layouts", func(t *testing.T) {
		_, err := FromTiles(filledTiles(8, OpenTile()), Position{})

		assert.ErrorIs(t, err, apperror.ErrInvalidSnapshot)
	})

	t.Run("Rejects player outside the grid", func(t *testing.T) {
		_, err := FromTiles(filledTiles(9, OpenTile()), Position{X: 3, Y: 0})

		assert.ErrorIs(t, err, apperror.ErrInvalidSnapshot)
	})

	t.Run("Copies the layout", func(t *testing.T) {
		// Given: a caller-owned layout
		tiles := filledTiles(9, OpenTile())
		maze := mazeWithPlayerAt(t, 1, 1, tiles)

		// When: the caller changes its slice
		tiles[0] = BlockedTile()

		// Then: the maze is unaffected
		assert.Equal(t, Open, maze.tileAt(Position{X: 0, Y: 0}).Type())
	})
}

func TestMaze_MovePlayer(t *testing.T) {
	t.Run("Moves into open tiles", func(t *testing.T) {
		tests := []struct {
			direction Direction
			want      Position
		}{
			{direction: Up, want: Position{X: 1, Y: 0}},
			{direction: Down, want: Position{X: 1, Y: 2}},
			{direction: Left, want: Position{X: 0, Y: 1}},
			{direction: Right, want: Position{X: 2, Y: 1}},
		}

		for _, tt := range tests {
			t.Run(tt.direction.String(), func(t *testing.T) {
				// Given: an all open 3x3 maze with the player in the centre
				maze := mazeWithPlayerAt(t, 1, 1, filledTiles(9, OpenTile()))

				// When: moving in the direction
				err := maze.MovePlayer(tt.direction)

				// Then: the player lands on the adjacent tile
				require.NoError(t, err)
				assert.Equal(t, tt.want, maze.Player())
			})
		}
	})

	t.Run("Walls block every direction", func(t *testing.T) {
		for _, direction := range []Direction{Up, Down, Left, Right} {
			t.Run(direction.String(), func(t *testing.T) {
				// Given: a 3x3 maze where only the centre is open
				maze := mazeWithPlayerAt(t, 1, 1, centreOnlyMap())

				// When: moving towards a wall
				err := maze.MovePlayer(direction)

				// Then: the move is rejected and the player stays put
				require.ErrorIs(t, err, apperror.ErrDirectionBlocked)
				assert.Equal(t, Position{X: 1, Y: 1}, maze.Player())
			})
		}
	})

	t.Run("Grid edges block every direction", func(t *testing.T) {
		for _, direction := range []Direction{Up, Down, Left, Right} {
			t.Run(direction.String(), func(t *testing.T) {
				// Given: a single open tile
				maze := mazeWithPlayerAt(t, 0, 0, []Tile{OpenTile()})

				// When: moving off the grid
				err := maze.MovePlayer(direction)

				// Then: the move is rejected and the player stays put
				require.ErrorIs(t, err, apperror.ErrDirectionBlocked)
				assert.Equal(t, Position{X: 0, Y: 0}, maze.Player())
			})
		}
	})

	t.Run("Blocked move changes nothing observable", func(t *testing.T) {
		// Given: a generated maze and its serialized form
		maze := NewWithRand(9, rand.New(rand.NewSource(3)))
		before, err := maze.MarshalJSON()
		require.NoError(t, err)
		revealedBefore := revealedCount(maze)

		// When: moving up from the top-left corner
		err = maze.MovePlayer(Up)

		// Then: the move fails and the view is byte-for-byte identical
		require.ErrorIs(t, err, apperror.ErrDirectionBlocked)
		after, err := maze.MarshalJSON()
		require.NoError(t, err)
		assert.Equal(t, string(before), string(after))
		assert.Equal(t, revealedBefore, revealedCount(maze))
	})

	t.Run("Moving reveals the new surroundings", func(t *testing.T) {
		// Given: an all open 5x5 maze with nothing revealed
		maze := mazeWithPlayerAt(t, 0, 0, filledTiles(25, OpenTile()))

		// When: moving right
		require.NoError(t, maze.MovePlayer(Right))

		// Then: the new tile and its four neighbours are revealed
		for _, pos := range []Position{{X: 1, Y: 0}, {X: 0, Y: 0}, {X: 2, Y: 0}, {X: 1, Y: 1}} {
			assert.True(t, maze.tileAt(pos).IsRevealed(), "%+v", pos)
		}
		assert.Equal(t, 4, revealedCount(maze))
	})

	t.Run("Revealed tiles only grow", func(t *testing.T) {
		// Given: a generated maze
		rng := rand.New(rand.NewSource(11))
		maze := NewWithRand(15, rng)
		directions := []Direction{Up, Down, Left, Right}

		previous := append([]Tile(nil), maze.tiles...)

		// When: wandering around at random
		for i := 0; i < 500; i++ {
			_ = maze.MovePlayer(directions[rng.Intn(len(directions))])

			// Then: no tile revealed before is hidden again
			for j, tile := range previous {
				if tile.IsRevealed() {
					require.True(t, maze.tiles[j].IsRevealed())
				}
			}
			previous = append(previous[:0], maze.tiles...)
		}
	})
}

func TestMaze_RevealAroundPlayer(t *testing.T) {
	// Given: a maze whose surroundings are already revealed
	maze := mazeWithPlayerAt(t, 1, 1, filledTiles(9, OpenTile()))
	maze.revealAroundPlayer()
	before := append([]Tile(nil), maze.tiles...)

	// When: revealing again
	maze.revealAroundPlayer()

	// Then: nothing changes
	assert.Equal(t, before, maze.tiles)
	assert.Equal(t, 5, revealedCount(maze))
}

func TestMaze_NeighbouringTileTypes(t *testing.T) {
	t.Run("Upper left corner reports up and left blocked", func(t *testing.T) {
		maze := mazeWithPlayerAt(t, 0, 0, filledTiles(4, OpenTile()))

		assert.Equal(t, Neighbours{Left: Blocked, Right: Open, Up: Blocked, Down: Open}, maze.NeighbouringTileTypes())
	})

	t.Run("Middle of an open maze is open all around", func(t *testing.T) {
		maze := mazeWithPlayerAt(t, 1, 1, filledTiles(9, OpenTile()))

		assert.Equal(t, Neighbours{Left: Open, Right: Open, Up: Open, Down: Open}, maze.NeighbouringTileTypes())
	})

	t.Run("Bottom right corner reports down and right blocked", func(t *testing.T) {
		maze := mazeWithPlayerAt(t, 99, 99, filledTiles(100*100, OpenTile()))

		assert.Equal(t, Neighbours{Left: Open, Right: Blocked, Up: Open, Down: Blocked}, maze.NeighbouringTileTypes())
	})

	t.Run("Reports hidden tiles by their real type", func(t *testing.T) {
		// Given: a centre-only map where nothing is revealed
		maze := mazeWithPlayerAt(t, 1, 1, centreOnlyMap())

		// When: asking for neighbours
		neighbours := maze.NeighbouringTileTypes()

		// Then: walls are reported and visibility is untouched
		assert.Equal(t, Neighbours{Left: Blocked, Right: Blocked, Up: Blocked, Down: Blocked}, neighbours)
		assert.Zero(t, revealedCount(maze))
	})
}
