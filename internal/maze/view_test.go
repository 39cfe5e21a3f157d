package maze

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaze_MarshalJSON(t *testing.T) {
	tests := []struct {
		size     int
		expected string
	}{
		{size: 3, expected: `[["player","hidden","blocked"],["hidden","blocked","blocked"],["blocked","blocked","exit"]]`},
		{size: 2, expected: `[["player","hidden"],["hidden","exit"]]`},
	}

	for _, tt := range tests {
		// Given: a revealed all-blocked maze with a few tiles replaced
		revealedBlocked := BlockedTile()
		revealedBlocked.Reveal()
		revealedOpen := OpenTile()
		revealedOpen.Reveal()

		maze := mazeWithPlayerAt(t, 0, 0, filledTiles(tt.size*tt.size, revealedBlocked))
		maze.tiles[index(tt.size, Position{X: 0, Y: 0})] = revealedOpen
		maze.tiles[index(tt.size, Position{X: 1, Y: 0})] = BlockedTile()
		maze.tiles[index(tt.size, Position{X: 0, Y: 1})] = OpenTile()

		// When: serializing
		serialized, err := json.Marshal(maze)

		// Then: it is a 2d array of labels with unrevealed tiles masked
		require.NoError(t, err)
		assert.Equal(t, tt.expected, string(serialized))
	}
}

func TestMaze_View(t *testing.T) {
	t.Run("Player label wins over exit", func(t *testing.T) {
		// Given: the player standing on the exit of an open 3x3 maze
		maze := mazeWithPlayerAt(t, 2, 2, filledTiles(9, OpenTile()))

		// When: viewing the maze
		view := maze.View()

		// Then: the exit corner shows the player and the exit label is gone
		assert.Equal(t, "player", view[2][2])
		for _, row := range view {
			assert.NotContains(t, row, "exit")
		}
	})

	t.Run("Does not change the maze", func(t *testing.T) {
		maze := NewWithRand(7, nil)
		before := append([]Tile(nil), maze.tiles...)

		_ = maze.View()

		assert.Equal(t, before, maze.tiles)
	})
}
