package maze

import (
	"encoding/json"
	"testing"

	"github.com/rocketscienceinc/maze-backend/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDirection(t *testing.T) {
	t.Run("Accepts lowercase tokens", func(t *testing.T) {
		for token, want := range map[string]Direction{"up": Up, "down": Down, "left": Left, "right": Right} {
			got, err := ParseDirection(token)

			require.NoError(t, err)
			assert.Equal(t, want, got)
		}
	})

	t.Run("Rejects anything else", func(t *testing.T) {
		for _, token := range []string{"", "Up", "north", "upp"} {
			_, err := ParseDirection(token)

			assert.ErrorIs(t, err, apperror.ErrInvalidDirection, token)
		}
	})
}

func TestDirection_JSON(t *testing.T) {
	t.Run("Encodes as a lowercase token", func(t *testing.T) {
		data, err := json.Marshal([]Direction{Up, Down, Left, Right})

		require.NoError(t, err)
		assert.JSONEq(t, `["up","down","left","right"]`, string(data))
	})

	t.Run("Decodes from a lowercase token", func(t *testing.T) {
		var payload struct {
			Direction Direction `json:"direction"`
		}

		err := json.Unmarshal([]byte(`{"direction":"left"}`), &payload)

		require.NoError(t, err)
		assert.Equal(t, Left, payload.Direction)
	})
}

func TestNeighbours_JSON(t *testing.T) {
	data, err := json.Marshal(Neighbours{Left: Blocked, Right: Open, Up: Blocked, Down: Open})

	require.NoError(t, err)
	assert.JSONEq(t, `{"left":"blocked","right":"open","up":"blocked","down":"open"}`, string(data))
}
