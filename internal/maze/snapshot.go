package maze

import (
	"fmt"

	"github.com/rocketscienceinc/maze-backend/internal/apperror"
)

// Snapshot is the complete, unmasked state of a maze, meant for storage only.
// Tiles holds one byte per tile in row-major order: 'o' and 'b' for hidden
// open and blocked tiles, 'O' and 'B' for revealed ones.
type Snapshot struct {
	Size   int      `json:"size"`
	Player Position `json:"player"`
	Exit   Position `json:"exit"`
	Tiles  string   `json:"tiles"`
}

var tileCodes = map[Tile]byte{
	{tileType: Open, visibility: Hidden}:      'o',
	{tileType: Blocked, visibility: Hidden}:   'b',
	{tileType: Open, visibility: Revealed}:    'O',
	{tileType: Blocked, visibility: Revealed}: 'B',
}

func (that *Maze) Snapshot() Snapshot {
	buf := make([]byte, len(that.tiles))
	for i, tile := range that.tiles {
		buf[i] = tileCodes[tile]
	}

	return Snapshot{
		Size:   that.size,
		Player: that.player,
		Exit:   that.exit,
		Tiles:  string(buf),
	}
}

// Restore rebuilds a maze from a snapshot without generating anything.
func Restore(s Snapshot) (*Maze, error) {
	if s.Size < 1 || len(s.Tiles) != s.Size*s.Size {
		return nil, fmt.Errorf("%w: size %d with %d tiles", apperror.ErrInvalidSnapshot, s.Size, len(s.Tiles))
	}

	tiles := make([]Tile, len(s.Tiles))
	for i := 0; i < len(s.Tiles); i++ {
		tile, ok := decodeTile(s.Tiles[i])
		if !ok {
			return nil, fmt.Errorf("%w: unknown tile code %q at %d", apperror.ErrInvalidSnapshot, s.Tiles[i], i)
		}
		tiles[i] = tile
	}

	maze, err := FromTiles(tiles, s.Player)
	if err != nil {
		return nil, err
	}

	if s.Exit != maze.exit {
		return nil, fmt.Errorf("%w: exit %+v, want %+v", apperror.ErrInvalidSnapshot, s.Exit, maze.exit)
	}

	return maze, nil
}

func decodeTile(code byte) (Tile, bool) {
	for tile, c := range tileCodes {
		if c == code {
			return tile, true
		}
	}

	return Tile{}, false
}
