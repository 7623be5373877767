package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alien-defense/internal/component"
	"alien-defense/internal/event"
	"alien-defense/pkg/gridmap"
)

func TestBuildSystem_Build(t *testing.T) {
	w := newTestWorld(t, gridmap.NewFullGraph(5, 5, false))
	tile := gridmap.Tile{X: 2, Y: 2}

	id, err := w.build.Build(tile, "OBSTACLE_TOWER")
	require.NoError(t, err)

	assert.False(t, w.graph.HasVertex(tile))
	assert.Equal(t, &component.Obstacle{DefID: "OBSTACLE_TOWER", Tile: tile}, w.ecs.Obstacles[id])
	assert.Equal(t, 60, w.ecs.Healths[id].Value)
	require.Contains(t, w.ecs.Combats, id)
	assert.Equal(t, 10, w.ecs.Combats[id].Damage)

	built := w.eventsOf(event.ObstacleBuilt)
	require.Len(t, built, 1)
	assert.Equal(t, event.ObstacleData{Obstacle: id, DefID: "OBSTACLE_TOWER", Tile: tile}, built[0].Data)

	wall, err := w.build.Build(gridmap.Tile{X: 3, Y: 3}, "OBSTACLE_WALL")
	require.NoError(t, err)
	assert.NotContains(t, w.ecs.Combats, wall)
}

func TestBuildSystem_Errors(t *testing.T) {
	g := gridmap.NewFullGraph(5, 5, false)
	g.RemoveVertex(gridmap.Tile{X: 0, Y: 0})
	w := newTestWorld(t, g)
	w.addGoal(gridmap.Tile{X: 4, Y: 4})
	w.addPlayer(2.5, 2.5, 100)
	spID := w.ecs.NewEntity()
	w.ecs.SpawnPoints[spID] = &component.SpawnPoint{Tile: gridmap.Tile{X: 0, Y: 4}}
	w.addAlien(gridmap.Tile{X: 1, Y: 1}, 0, seeker)

	cases := []struct {
		name  string
		tile  gridmap.Tile
		defID string
		want  error
	}{
		{"unknown definition", gridmap.Tile{X: 3, Y: 1}, "OBSTACLE_NOPE", ErrUnknownObstacle},
		{"wall", gridmap.Tile{X: 0, Y: 0}, "OBSTACLE_WALL", ErrTileBlocked},
		{"outside", gridmap.Tile{X: 9, Y: 9}, "OBSTACLE_WALL", ErrTileBlocked},
		{"goal", gridmap.Tile{X: 4, Y: 4}, "OBSTACLE_WALL", ErrTileReserved},
		{"spawn point", gridmap.Tile{X: 0, Y: 4}, "OBSTACLE_WALL", ErrTileReserved},
		{"player spawn", gridmap.Tile{X: 2, Y: 2}, "OBSTACLE_WALL", ErrTileReserved},
		{"alien", gridmap.Tile{X: 1, Y: 1}, "OBSTACLE_WALL", ErrTileOccupied},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := w.build.Build(tc.tile, tc.defID)
			assert.ErrorIs(t, err, tc.want)
		})
	}
	assert.Empty(t, w.ecs.Obstacles)
	assert.Empty(t, w.eventsOf(event.ObstacleBuilt))

	_, err := w.build.Build(gridmap.Tile{X: 3, Y: 1}, "OBSTACLE_WALL")
	require.NoError(t, err)
	_, err = w.build.Build(gridmap.Tile{X: 3, Y: 1}, "OBSTACLE_WALL")
	assert.ErrorIs(t, err, ErrTileBlocked, "tile already has an obstacle")
}
