// internal/entity/ecs.go
package entity

import (
	"sort"

	"alien-defense/internal/component"
	"alien-defense/internal/types"
	"alien-defense/pkg/gridmap"
)

// ECS — хранилище компонентов. Каждую карту в пределах фазы тика пишет одна система.
type ECS struct {
	GameTime     float64
	NextID       types.EntityID
	Positions    map[types.EntityID]*component.Position
	Orientations map[types.EntityID]*component.Orientation
	Velocities   map[types.EntityID]*component.Velocity
	Intents      map[types.EntityID]*component.MovementIntent
	Healths      map[types.EntityID]*component.Health
	Combats      map[types.EntityID]*component.Combat
	Renderables  map[types.EntityID]*component.Renderable
	Aliens       map[types.EntityID]*component.Alien
	Thinkers     map[types.EntityID]*component.Thinker
	Sensings     map[types.EntityID]*component.Sensing
	WallSensors  map[types.EntityID]*component.WallSensor
	Sights       map[types.EntityID]*component.PlayerSight
	Obstacles    map[types.EntityID]*component.Obstacle
	SpawnPoints  map[types.EntityID]*component.SpawnPoint
	Goals        map[types.EntityID]*component.Goal
	Players      map[types.EntityID]*component.Player
	Population   *component.Population
}

func NewECS() *ECS {
	return &ECS{
		NextID:       1,
		Positions:    make(map[types.EntityID]*component.Position),
		Orientations: make(map[types.EntityID]*component.Orientation),
		Velocities:   make(map[types.EntityID]*component.Velocity),
		Intents:      make(map[types.EntityID]*component.MovementIntent),
		Healths:      make(map[types.EntityID]*component.Health),
		Combats:      make(map[types.EntityID]*component.Combat),
		Renderables:  make(map[types.EntityID]*component.Renderable),
		Aliens:       make(map[types.EntityID]*component.Alien),
		Thinkers:     make(map[types.EntityID]*component.Thinker),
		Sensings:     make(map[types.EntityID]*component.Sensing),
		WallSensors:  make(map[types.EntityID]*component.WallSensor),
		Sights:       make(map[types.EntityID]*component.PlayerSight),
		Obstacles:    make(map[types.EntityID]*component.Obstacle),
		SpawnPoints:  make(map[types.EntityID]*component.SpawnPoint),
		Goals:        make(map[types.EntityID]*component.Goal),
		Players:      make(map[types.EntityID]*component.Player),
		Population:   &component.Population{},
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// RemoveEntity удаляет все компоненты сущности
func (ecs *ECS) RemoveEntity(id types.EntityID) {
	delete(ecs.Positions, id)
	delete(ecs.Orientations, id)
	delete(ecs.Velocities, id)
	delete(ecs.Intents, id)
	delete(ecs.Healths, id)
	delete(ecs.Combats, id)
	delete(ecs.Renderables, id)
	delete(ecs.Aliens, id)
	delete(ecs.Thinkers, id)
	delete(ecs.Sensings, id)
	delete(ecs.WallSensors, id)
	delete(ecs.Sights, id)
	delete(ecs.Obstacles, id)
	delete(ecs.SpawnPoints, id)
	delete(ecs.Goals, id)
	delete(ecs.Players, id)
}

// AlienIDs возвращает пришельцев по возрастанию ID: порядок обработки детерминирован.
func (ecs *ECS) AlienIDs() []types.EntityID {
	return sortedKeys(ecs.Aliens)
}

func (ecs *ECS) ObstacleIDs() []types.EntityID {
	return sortedKeys(ecs.Obstacles)
}

func (ecs *ECS) SpawnPointIDs() []types.EntityID {
	return sortedKeys(ecs.SpawnPoints)
}

// ObstacleAt ищет препятствие на тайле
func (ecs *ECS) ObstacleAt(tile gridmap.Tile) (types.EntityID, bool) {
	for id, o := range ecs.Obstacles {
		if o.Tile == tile {
			return id, true
		}
	}
	return 0, false
}

// AlienAt сообщает, стоит ли на тайле хотя бы один пришелец
func (ecs *ECS) AlienAt(tile gridmap.Tile) bool {
	for _, a := range ecs.Aliens {
		if a.Tile == tile {
			return true
		}
	}
	return false
}

// GoalTile возвращает тайл цели; целей может и не быть.
func (ecs *ECS) GoalTile() (gridmap.Tile, bool) {
	for _, id := range sortedKeys(ecs.Goals) {
		return ecs.Goals[id].Tile, true
	}
	return gridmap.Tile{}, false
}

// PlayerID возвращает первого игрока
func (ecs *ECS) PlayerID() (types.EntityID, bool) {
	for _, id := range sortedKeys(ecs.Players) {
		return id, true
	}
	return 0, false
}

func sortedKeys[T any](m map[types.EntityID]T) []types.EntityID {
	ids := make([]types.EntityID, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
