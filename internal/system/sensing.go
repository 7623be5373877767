package system

import (
	"math"

	"alien-defense/internal/config"
	"alien-defense/internal/entity"
	"alien-defense/internal/types"
	"alien-defense/internal/utils"
	"alien-defense/pkg/gridmap"
)

// probeSpread — угол боковых лучей сенсора стен, в градусах
const probeSpread = 45.0

// raymarchStep — шаг луча в тайлах
const raymarchStep = 0.1

// Oracle отвечает на геометрические запросы сенсоров.
type Oracle interface {
	// ForwardObstacle возвращает расстояние до первой преграды вдоль луча, если она ближе maxRange.
	ForwardObstacle(x, y, angle, maxRange float64) (float64, bool)
	// Player возвращает видимого игрока внутри сектора обзора.
	Player(x, y, angle, sightRange, halfAngleDeg float64) (types.EntityID, bool)
}

// GridOracle — Oracle поверх графа тайлов: отсутствующая вершина считается стеной.
type GridOracle struct {
	ecs   *entity.ECS
	graph *gridmap.Graph
}

func NewGridOracle(ecs *entity.ECS, graph *gridmap.Graph) *GridOracle {
	return &GridOracle{ecs: ecs, graph: graph}
}

func (o *GridOracle) ForwardObstacle(x, y, angle, maxRange float64) (float64, bool) {
	start := gridmap.FromWorld(x, y)
	dx, dy := math.Cos(angle), math.Sin(angle)
	for d := raymarchStep; d < maxRange; d += raymarchStep {
		t := gridmap.FromWorld(x+dx*d, y+dy*d)
		if t == start {
			continue
		}
		if !o.graph.HasVertex(t) {
			return d, true
		}
	}
	return maxRange, false
}

func (o *GridOracle) Player(x, y, angle, sightRange, halfAngleDeg float64) (types.EntityID, bool) {
	best := types.EntityID(0)
	bestDist := math.Inf(1)
	for id := range o.ecs.Players {
		pos, ok := o.ecs.Positions[id]
		if !ok {
			continue
		}
		dist := math.Hypot(pos.X-x, pos.Y-y)
		if dist > sightRange {
			continue
		}
		if dist > 0 {
			bearing := math.Atan2(pos.Y-y, pos.X-x)
			if math.Abs(utils.SignedAngleDegrees(angle, bearing)) > halfAngleDeg {
				continue
			}
			if wall, hit := o.ForwardObstacle(x, y, bearing, dist); hit && wall < dist {
				continue
			}
		}
		if dist < bestDist || (dist == bestDist && id < best) {
			best, bestDist = id, dist
		}
	}
	return best, !math.IsInf(bestDist, 1)
}

// SensingSystem опрашивает сенсоры агентов с частотой SensingHz, а не каждый тик.
type SensingSystem struct {
	ecs    *entity.ECS
	oracle Oracle
	tuning config.Tuning
}

func NewSensingSystem(ecs *entity.ECS, oracle Oracle, tuning config.Tuning) *SensingSystem {
	return &SensingSystem{ecs: ecs, oracle: oracle, tuning: tuning}
}

func (s *SensingSystem) Update(deltaTime float64) {
	period := 1 / s.tuning.SensingHz
	for _, id := range s.ecs.AlienIDs() {
		sensing, ok := s.ecs.Sensings[id]
		if !ok {
			continue
		}
		sensing.Cooldown -= deltaTime
		if sensing.Cooldown > 0 {
			continue
		}
		sensing.Cooldown += period
		if sensing.Cooldown <= 0 {
			sensing.Cooldown = period
		}
		s.Sense(id)
	}
}

// Sense обновляет показания сенсоров агента немедленно.
func (s *SensingSystem) Sense(id types.EntityID) {
	pos, ok := s.ecs.Positions[id]
	if !ok {
		return
	}
	orient, ok := s.ecs.Orientations[id]
	if !ok {
		return
	}

	if ws, ok := s.ecs.WallSensors[id]; ok {
		probe := func(offsetDeg float64) float64 {
			d, _ := s.oracle.ForwardObstacle(pos.X, pos.Y, orient.Angle+utils.Radians(offsetDeg), ws.Max)
			return d
		}
		ws.Forward = probe(0)
		ws.Left = probe(-probeSpread)
		ws.Right = probe(probeSpread)
	}

	if sight, ok := s.ecs.Sights[id]; ok {
		player, seen := s.oracle.Player(pos.X, pos.Y, orient.Angle, s.tuning.Alien.SightRange, s.tuning.Alien.SightHalfAngle)
		sight.Player, sight.Seen = player, seen
	}
}
