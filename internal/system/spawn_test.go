package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alien-defense/internal/ai"
	"alien-defense/internal/event"
	"alien-defense/internal/utils"
	"alien-defense/pkg/gridmap"
)

func newTestSpawner(t *testing.T, w *testWorld, populationCap int) *SpawnSystem {
	t.Helper()
	w.tuning.Spawn.PopulationCap = populationCap
	return NewSpawnSystem(w.ecs, w.dispatcher, utils.NewPRNGService(1), w.tuning)
}

func TestSpawnSystem_PopulationCapDropsRequests(t *testing.T) {
	w := newTestWorld(t, gridmap.NewFullGraph(5, 5, false))
	s := newTestSpawner(t, w, 2)
	sp := s.AddSpawnPoint(gridmap.Tile{X: 0, Y: 0}, "")

	first, ok := s.RequestSpawn(sp)
	require.True(t, ok)
	_, ok = s.RequestSpawn(sp)
	require.True(t, ok)
	_, ok = s.RequestSpawn(sp)
	assert.False(t, ok)

	pop := w.ecs.Population
	assert.Equal(t, 2, pop.Live)
	assert.Equal(t, 2, pop.Spawned)
	assert.Equal(t, 1, pop.Dropped)
	assert.Len(t, w.ecs.Aliens, 2)
	assert.Len(t, w.eventsOf(event.AlienSpawned), 2)
	assert.Len(t, w.eventsOf(event.SpawnDropped), 1)

	// Дроп не копится: освободившееся место занимает только новая заявка
	despawnAlien(w.ecs, w.dispatcher, first, event.GoalReached)
	assert.Equal(t, 1, pop.Live)
	assert.Len(t, w.ecs.Aliens, 1)

	_, ok = s.RequestSpawn(sp)
	assert.True(t, ok)
	assert.Equal(t, 2, pop.Live)
	assert.Equal(t, 3, pop.Spawned)
}

func TestSpawnSystem_NewAlienDefaults(t *testing.T) {
	w := newTestWorld(t, gridmap.NewFullGraph(5, 5, false))
	s := newTestSpawner(t, w, 4)
	tile := gridmap.Tile{X: 2, Y: 3}
	id, ok := s.RequestSpawn(s.AddSpawnPoint(tile, "ALIEN_WANDERER"))
	require.True(t, ok)

	alien := w.ecs.Aliens[id]
	assert.Equal(t, "ALIEN_WANDERER", alien.DefID)
	assert.Equal(t, tile, alien.Tile)
	assert.Nil(t, alien.MustDestroy)
	assert.Equal(t, ai.Wanderer, w.ecs.Thinkers[id].Profile)
	assert.False(t, w.ecs.Thinkers[id].HasActive)
	assert.False(t, w.ecs.Sights[id].Seen)

	ws := w.ecs.WallSensors[id]
	assert.Equal(t, ws.Max, ws.Forward)
	assert.Equal(t, ws.Max, ws.Left)
	assert.Equal(t, ws.Max, ws.Right)

	pos := w.ecs.Positions[id]
	assert.Equal(t, 2.5, pos.X)
	assert.Equal(t, 3.5, pos.Y)
	assert.Less(t, w.ecs.Sensings[id].Cooldown, 1/w.tuning.SensingHz)
}

func TestSpawnSystem_UpdateFiresAtRate(t *testing.T) {
	w := newTestWorld(t, gridmap.NewFullGraph(5, 5, false))
	s := newTestSpawner(t, w, 10)
	s.AddSpawnPoint(gridmap.Tile{X: 0, Y: 0}, "")
	interval := w.tuning.SpawnInterval()

	s.Update(interval - 0.1)
	assert.Empty(t, w.ecs.Aliens)
	s.Update(0.2)
	assert.Len(t, w.ecs.Aliens, 1)
	s.Update(interval)
	assert.Len(t, w.ecs.Aliens, 2)
}

func TestSpawnSystem_AlienKilledFreesSlot(t *testing.T) {
	w := newTestWorld(t, gridmap.NewFullGraph(5, 5, false))
	s := newTestSpawner(t, w, 1)
	sp := s.AddSpawnPoint(gridmap.Tile{X: 0, Y: 0}, "")
	id, ok := s.RequestSpawn(sp)
	require.True(t, ok)

	despawnAlien(w.ecs, w.dispatcher, id, event.AlienKilled)
	assert.Equal(t, 0, w.ecs.Population.Live)
	_, ok = s.RequestSpawn(sp)
	assert.True(t, ok)
}
