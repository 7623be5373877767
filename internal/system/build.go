package system

import (
	"errors"
	"fmt"

	"alien-defense/internal/component"
	"alien-defense/internal/defs"
	"alien-defense/internal/entity"
	"alien-defense/internal/event"
	"alien-defense/internal/types"
	"alien-defense/pkg/gridmap"
)

var (
	ErrUnknownObstacle = errors.New("unknown obstacle definition")
	ErrTileBlocked     = errors.New("tile is not walkable")
	ErrTileReserved    = errors.New("tile is reserved")
	ErrTileOccupied    = errors.New("tile is occupied by an alien")
)

// BuildSystem ставит препятствия игрока: вершина тайла удаляется из графа.
type BuildSystem struct {
	ecs             *entity.ECS
	graph           *gridmap.Graph
	eventDispatcher *event.Dispatcher
}

func NewBuildSystem(ecs *entity.ECS, graph *gridmap.Graph, eventDispatcher *event.Dispatcher) *BuildSystem {
	return &BuildSystem{ecs: ecs, graph: graph, eventDispatcher: eventDispatcher}
}

// Build ставит препятствие defID на тайл.
// Нельзя строить на стене, на цели, на точке спавна и под пришельцем.
func (s *BuildSystem) Build(tile gridmap.Tile, defID string) (types.EntityID, error) {
	def, ok := defs.ObstacleLibrary[defID]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownObstacle, defID)
	}
	if !s.graph.HasVertex(tile) {
		return 0, fmt.Errorf("%w: %s", ErrTileBlocked, tile)
	}
	if s.reserved(tile) {
		return 0, fmt.Errorf("%w: %s", ErrTileReserved, tile)
	}
	if s.ecs.AlienAt(tile) {
		return 0, fmt.Errorf("%w: %s", ErrTileOccupied, tile)
	}

	id := s.ecs.NewEntity()
	x, y := tile.Center()
	s.ecs.Positions[id] = &component.Position{X: x, Y: y}
	s.ecs.Obstacles[id] = &component.Obstacle{DefID: def.ID, Tile: tile}
	s.ecs.Healths[id] = &component.Health{Value: def.Health, Max: def.Health}
	s.ecs.Renderables[id] = &component.Renderable{Color: def.Visuals.Color, RadiusFactor: def.Visuals.RadiusFactor}
	if def.Combat != nil {
		s.ecs.Combats[id] = &component.Combat{
			Damage:   def.Combat.Damage,
			FireRate: def.Combat.FireRate,
			Range:    def.Combat.Range,
		}
	}
	s.graph.RemoveVertex(tile)

	s.eventDispatcher.Dispatch(event.Event{Type: event.ObstacleBuilt, Data: event.ObstacleData{Obstacle: id, DefID: def.ID, Tile: tile}})
	return id, nil
}

func (s *BuildSystem) reserved(tile gridmap.Tile) bool {
	if goal, ok := s.ecs.GoalTile(); ok && goal == tile {
		return true
	}
	for _, sp := range s.ecs.SpawnPoints {
		if sp.Tile == tile {
			return true
		}
	}
	for _, p := range s.ecs.Players {
		if p.Spawn == tile {
			return true
		}
	}
	return false
}
