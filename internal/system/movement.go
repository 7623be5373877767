// internal/system/movement.go
package system

import (
	"math"

	"alien-defense/internal/component"
	"alien-defense/internal/entity"
	"alien-defense/internal/utils"
	"alien-defense/pkg/gridmap"
)

// MovementSystem применяет намерения движения: поворот, затем тягу вдоль нового курса.
// Войти на отсутствующий в графе тайл нельзя; агент, уже стоящий на таком тайле, может с него уйти.
type MovementSystem struct {
	ecs   *entity.ECS
	graph *gridmap.Graph
}

func NewMovementSystem(ecs *entity.ECS, graph *gridmap.Graph) *MovementSystem {
	return &MovementSystem{ecs: ecs, graph: graph}
}

func (s *MovementSystem) Update(deltaTime float64) {
	for _, id := range s.ecs.AlienIDs() {
		pos, ok := s.ecs.Positions[id]
		if !ok {
			continue
		}
		orient, hasOrient := s.ecs.Orientations[id]
		intent, hasIntent := s.ecs.Intents[id]
		if !hasOrient || !hasIntent {
			continue
		}

		switch intent.Turn {
		case component.TurnRight:
			orient.Angle += utils.Radians(intent.TurnRate) * deltaTime
		case component.TurnLeft:
			orient.Angle -= utils.Radians(intent.TurnRate) * deltaTime
		}
		orient.Angle = utils.NormalizeAngle(orient.Angle)

		speed := 0.0
		if vel, ok := s.ecs.Velocities[id]; ok {
			speed = vel.Speed
		}
		var step float64
		switch intent.Drive {
		case component.DriveForward:
			step = speed * deltaTime
		case component.DriveBackward:
			step = -speed * deltaTime
		}
		if step != 0 {
			s.advance(pos, orient.Angle, step)
		}

		if alien, ok := s.ecs.Aliens[id]; ok {
			alien.Tile = gridmap.FromWorld(pos.X, pos.Y)
		}
	}
}

// advance сдвигает позицию; по каждой оси отдельно, чтобы агент скользил вдоль стены.
func (s *MovementSystem) advance(pos *component.Position, angle, step float64) {
	from := gridmap.FromWorld(pos.X, pos.Y)
	nx := pos.X + math.Cos(angle)*step
	ny := pos.Y + math.Sin(angle)*step

	if s.canEnter(from, gridmap.FromWorld(nx, ny)) {
		pos.X, pos.Y = nx, ny
		return
	}
	if s.canEnter(from, gridmap.FromWorld(nx, pos.Y)) {
		pos.X = nx
		return
	}
	if s.canEnter(from, gridmap.FromWorld(pos.X, ny)) {
		pos.Y = ny
	}
}

func (s *MovementSystem) canEnter(from, to gridmap.Tile) bool {
	if from == to {
		return true
	}
	if !s.graph.InBounds(to) {
		return false
	}
	return s.graph.HasVertex(to) || !s.graph.HasVertex(from)
}
