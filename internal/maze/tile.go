package maze

import "fmt"

type TileType uint8

const (
	Blocked TileType = iota
	Open
)

func (that TileType) String() string {
	switch that {
	case Open:
		return "open"
	case Blocked:
		return "blocked"
	default:
		return fmt.Sprintf("TileType(%d)", uint8(that))
	}
}

func (that TileType) MarshalText() ([]byte, error) {
	return []byte(that.String()), nil
}

type TileVisibility uint8

const (
	Hidden TileVisibility = iota
	Revealed
)

// Tile is a single square of the maze. Its type never changes once created,
// its visibility only goes from Hidden to Revealed.
type Tile struct {
	tileType   TileType
	visibility TileVisibility
}

// OpenTile returns a hidden traversable tile.
func OpenTile() Tile {
	return Tile{tileType: Open, visibility: Hidden}
}

// BlockedTile returns a hidden wall tile.
func BlockedTile() Tile {
	return Tile{tileType: Blocked, visibility: Hidden}
}

func (that Tile) Type() TileType {
	return that.tileType
}

func (that Tile) IsRevealed() bool {
	return that.visibility == Revealed
}

func (that *Tile) Reveal() {
	that.visibility = Revealed
}

// label is the tile as seen by a client: its type once revealed, "hidden" before.
func (that Tile) label() string {
	if !that.IsRevealed() {
		return labelHidden
	}

	return that.tileType.String()
}
