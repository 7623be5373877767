package system

import (
	"math"
	"sort"

	"alien-defense/internal/component"
	"alien-defense/internal/types"
	"alien-defense/pkg/gridmap"
)

// destroyTheMap: NotStarted -> SearchingForTarget -> MovingToTarget -> DestroyingTarget -> Finished | Failed.
// Маркер MustDestroyTheMap снимается с агента при любом завершении, включая отмену.
func (s *ThinkerSystem) destroyTheMap(id types.EntityID, thinker *component.Thinker, deltaTime float64) {
	pos, orient, intent, ok := s.body(id)
	alien, isAlien := s.ecs.Aliens[id]
	if !isAlien {
		thinker.State = component.ActionFailure
		return
	}
	if !ok {
		alien.MustDestroy = nil
		thinker.State = component.ActionFailure
		return
	}
	if thinker.State == component.ActionCancelled {
		alien.MustDestroy = nil
	}
	if !begin(thinker, intent) {
		return
	}
	m := alien.MustDestroy
	if m == nil {
		fail(thinker, intent)
		return
	}

	switch m.Stage {
	case component.DestroyNotStarted:
		m.Stage = component.DestroySearching
		fallthrough
	case component.DestroySearching:
		intent.Stop()
		s.searchForTarget(alien, pos, m)
	case component.DestroyMoving:
		s.moveToTarget(pos, orient, intent, m)
	case component.DestroyDestroying:
		intent.Stop()
		s.destroyTarget(id, m, deltaTime)
	}

	switch m.Stage {
	case component.DestroyFinished:
		alien.MustDestroy = nil
		intent.Stop()
		thinker.State = component.ActionSuccess
	case component.DestroyFailed:
		alien.MustDestroy = nil
		fail(thinker, intent)
	}
}

// searchForTarget перебирает препятствия от ближнего к дальнему и берёт первое, до которого есть путь.
// Тайл кандидата добавляется в граф только на время поиска.
func (s *ThinkerSystem) searchForTarget(alien *component.Alien, pos *component.Position, m *component.MustDestroyTheMap) {
	for _, candidate := range s.rankObstacles(pos) {
		var path []gridmap.Tile
		s.graph.WithVertex(candidate, func() {
			path = gridmap.AStar(alien.Tile, candidate, s.graph)
		})
		if path == nil {
			continue
		}
		m.Path = path[1:]
		m.HasPath = true
		m.Target = candidate
		m.HasTarget = true
		m.Stage = component.DestroyMoving
		return
	}
	m.Fail()
}

// rankObstacles возвращает тайлы препятствий, ближайшие первыми. Ничьи — по строке, затем по столбцу.
func (s *ThinkerSystem) rankObstacles(pos *component.Position) []gridmap.Tile {
	tiles := make([]gridmap.Tile, 0, len(s.ecs.Obstacles))
	for _, o := range s.ecs.Obstacles {
		tiles = append(tiles, o.Tile)
	}
	dist := func(t gridmap.Tile) float64 {
		cx, cy := t.Center()
		return math.Hypot(cx-pos.X, cy-pos.Y)
	}
	sort.Slice(tiles, func(i, j int) bool {
		di, dj := dist(tiles[i]), dist(tiles[j])
		if di != dj {
			return di < dj
		}
		if tiles[i].Y != tiles[j].Y {
			return tiles[i].Y < tiles[j].Y
		}
		return tiles[i].X < tiles[j].X
	})
	return tiles
}

func (s *ThinkerSystem) moveToTarget(pos *component.Position, orient *component.Orientation, intent *component.MovementIntent, m *component.MustDestroyTheMap) {
	if !m.HasPath {
		m.Fail()
		return
	}
	params := s.destroySteering()
	for {
		if len(m.Path) == 0 {
			intent.Stop()
			m.Stage = component.DestroyDestroying
			return
		}
		next := m.Path[0]
		if next == m.Target {
			intent.Stop()
			m.Path = nil
			m.HasPath = false
			m.Stage = component.DestroyDestroying
			return
		}
		if !s.graph.HasVertex(next) {
			m.Fail()
			return
		}
		tx, ty := next.Center()
		if !steerTowards(intent, pos, orient, tx, ty, params) {
			return
		}
		m.Path = m.Path[1:]
	}
}

// destroyTarget бьёт препятствие на целевом тайле не чаще AttackRate раз в секунду.
func (s *ThinkerSystem) destroyTarget(id types.EntityID, m *component.MustDestroyTheMap, deltaTime float64) {
	obstacleID, ok := s.ecs.ObstacleAt(m.Target)
	if !ok {
		// Препятствие убрал кто-то другой.
		m.Fail()
		return
	}

	m.AttackCooldown -= deltaTime
	if m.AttackCooldown > 0 {
		return
	}
	m.AttackCooldown = 1 / m.AttackRate

	remaining, hasHealth := ApplyDamage(s.ecs, obstacleID, m.Damage)
	if hasHealth && remaining > 0 {
		return
	}
	destroyObstacle(s.ecs, s.graph, s.eventDispatcher, obstacleID, id)
	m.Finish()
}
