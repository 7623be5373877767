package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"alien-defense/internal/component"
	"alien-defense/pkg/gridmap"
)

func TestECS_RemoveEntityClearsEveryComponent(t *testing.T) {
	ecs := NewECS()
	id := ecs.NewEntity()
	ecs.Positions[id] = &component.Position{}
	ecs.Aliens[id] = &component.Alien{}
	ecs.Thinkers[id] = &component.Thinker{}
	ecs.Healths[id] = &component.Health{Value: 1}

	ecs.RemoveEntity(id)
	assert.Empty(t, ecs.Positions)
	assert.Empty(t, ecs.Aliens)
	assert.Empty(t, ecs.Thinkers)
	assert.Empty(t, ecs.Healths)
}

func TestECS_Lookups(t *testing.T) {
	ecs := NewECS()
	_, ok := ecs.GoalTile()
	assert.False(t, ok)

	g := ecs.NewEntity()
	ecs.Goals[g] = &component.Goal{Tile: gridmap.Tile{X: 0, Y: 8}}
	tile, ok := ecs.GoalTile()
	assert.True(t, ok)
	assert.Equal(t, gridmap.Tile{X: 0, Y: 8}, tile)

	o := ecs.NewEntity()
	ecs.Obstacles[o] = &component.Obstacle{Tile: gridmap.Tile{X: 2, Y: 2}}
	found, ok := ecs.ObstacleAt(gridmap.Tile{X: 2, Y: 2})
	assert.True(t, ok)
	assert.Equal(t, o, found)
	_, ok = ecs.ObstacleAt(gridmap.Tile{X: 3, Y: 2})
	assert.False(t, ok)

	for i := 0; i < 5; i++ {
		ecs.Aliens[ecs.NewEntity()] = &component.Alien{}
	}
	ids := ecs.AlienIDs()
	assert.IsIncreasing(t, ids)
}
