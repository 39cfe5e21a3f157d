package maze

import "encoding/json"

const (
	labelPlayer = "player"
	labelExit   = "exit"
	labelHidden = "hidden"
)

// View returns the maze as rows of labels the way a client may see it: "player",
// "exit", "open" or "blocked" for revealed tiles and "hidden" for the rest.
// The player label wins when the player stands on the exit.
func (that *Maze) View() [][]string {
	rows := make([][]string, that.size)

	for y := range rows {
		row := make([]string, that.size)
		for x := range row {
			pos := Position{X: x, Y: y}

			switch pos {
			case that.player:
				row[x] = labelPlayer
			case that.exit:
				row[x] = labelExit
			default:
				row[x] = that.tileAt(pos).label()
			}
		}
		rows[y] = row
	}

	return rows
}

func (that *Maze) MarshalJSON() ([]byte, error) {
	return json.Marshal(that.View())
}
