package gridmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLayout(t *testing.T) {
	l, err := ParseLayout(`
; comment line
S.*#
.@.G
`)
	require.NoError(t, err)
	assert.Equal(t, 4, l.Width)
	assert.Equal(t, 2, l.Height)
	assert.Equal(t, []Tile{{X: 0, Y: 0}}, l.Spawns)
	assert.Equal(t, Tile{X: 3, Y: 1}, l.Goal)
	assert.True(t, l.HasPlayer)
	assert.Equal(t, Tile{X: 1, Y: 1}, l.PlayerSpawn)
	assert.Equal(t, []Tile{{X: 2, Y: 0}}, l.Pickups)
	assert.Equal(t, CodeWall, l.Code(Tile{X: 3, Y: 0}))
	assert.Equal(t, CodeWall, l.Code(Tile{X: 9, Y: 9}))

	g := l.Graph(false)
	assert.Equal(t, 7, g.Len())
	assert.False(t, g.HasVertex(Tile{X: 3, Y: 0}))
	assert.True(t, g.HasVertex(Tile{X: 2, Y: 0}), "pickup is floor")
}

func TestParseLayout_Errors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want error
	}{
		{"empty", "\n\n", ErrEmptyLayout},
		{"ragged", "S..\n.G", ErrRaggedLayout},
		{"unknown code", "S?G", ErrUnknownTileCode},
		{"no spawn", "..G", ErrNoSpawn},
		{"no goal", "S..", ErrNoGoal},
		{"two goals", "SGG", ErrManyGoals},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseLayout(tc.src)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}
