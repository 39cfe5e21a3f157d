package maze

import (
	"fmt"
	"math/rand"

	"github.com/rocketscienceinc/maze-backend/internal/apperror"
)

// generationTile is the working state of one grid node while the maze is carved.
// link is the union-find parent, a node whose link equals its own position is a root.
type generationTile struct {
	position Position
	link     Position
	tileType TileType
	decided  bool
}

// ValidateSize reports whether size can be passed to Generate.
func ValidateSize(size int) error {
	if size < 1 || size%2 == 0 {
		return fmt.Errorf("%w: got %d", apperror.ErrInvalidMazeSize, size)
	}

	return nil
}

// Generate builds a perfect maze of size*size hidden tiles in row-major order.
//
// Tiles with two even coordinates are cells and always open, tiles with two odd
// coordinates are pillars and always blocked. Every other tile is a wall between
// two cells: walls are visited in random order and carved only when the cells on
// either side are not yet connected, which yields a spanning tree over the cells
// (randomized Kruskal).
//
// size must be odd, Generate panics otherwise. A nil rng uses the global source.
func Generate(size int, rng *rand.Rand) []Tile {
	if err := ValidateSize(size); err != nil {
		panic(err)
	}

	grid := make([]generationTile, 0, size*size)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			pos := Position{X: x, Y: y}
			node := generationTile{position: pos, link: pos}

			switch xEven, yEven := x%2 == 0, y%2 == 0; {
			case xEven && yEven:
				node.tileType, node.decided = Open, true
			case !xEven && !yEven:
				node.tileType, node.decided = Blocked, true
			}

			grid = append(grid, node)
		}
	}

	walls := make([]Position, 0, len(grid)/2)
	for _, node := range grid {
		if !node.decided {
			walls = append(walls, node.position)
		}
	}

	shuffle := rand.Shuffle
	if rng != nil {
		shuffle = rng.Shuffle
	}
	shuffle(len(walls), func(i, j int) {
		walls[i], walls[j] = walls[j], walls[i]
	})

	for _, wall := range walls {
		p, q := separatedCells(wall)
		rootP, rootQ := findRoot(grid, size, p), findRoot(grid, size, q)

		node := &grid[index(size, wall)]
		node.decided = true

		if rootP == rootQ {
			node.tileType = Blocked
			continue
		}

		node.tileType = Open
		grid[index(size, rootP)].link = rootQ
	}

	tiles := make([]Tile, len(grid))
	for i, node := range grid {
		tiles[i] = Tile{tileType: node.tileType, visibility: Hidden}
	}

	return tiles
}

// separatedCells returns the two cells on either side of a wall. A wall on an even
// row sits between a left and a right cell, on an odd row between an upper and a lower one.
func separatedCells(wall Position) (Position, Position) {
	if wall.Y%2 == 0 {
		return Position{X: wall.X + 1, Y: wall.Y}, Position{X: wall.X - 1, Y: wall.Y}
	}

	return Position{X: wall.X, Y: wall.Y - 1}, Position{X: wall.X, Y: wall.Y + 1}
}

// findRoot follows links until it reaches a node that links to itself.
// Paths are not compressed.
func findRoot(grid []generationTile, size int, pos Position) Position {
	for {
		link := grid[index(size, pos)].link
		if link == pos {
			return pos
		}

		pos = link
	}
}

func index(size int, pos Position) int {
	return size*pos.Y + pos.X
}
