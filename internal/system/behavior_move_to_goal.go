package system

import (
	"alien-defense/internal/component"
	"alien-defense/internal/event"
	"alien-defense/internal/types"
	"alien-defense/pkg/gridmap"
)

// moveToGoal: NoPath -> HavePath -> Arrived.
// Путь ищется заново при каждом запросе поведения: граф мог измениться.
func (s *ThinkerSystem) moveToGoal(id types.EntityID, thinker *component.Thinker) {
	pos, orient, intent, ok := s.body(id)
	alien, isAlien := s.ecs.Aliens[id]
	if !ok || !isAlien {
		thinker.State = component.ActionFailure
		return
	}
	data := &alien.Goal
	if thinker.State == component.ActionRequested {
		data.Reset()
	}
	if !begin(thinker, intent) {
		return
	}

	goal, ok := s.ecs.GoalTile()
	if !ok {
		fail(thinker, intent)
		return
	}

	if data.Stage == component.GoalNoPath {
		path := gridmap.AStar(alien.Tile, goal, s.graph)
		if path == nil {
			s.pathFailed(id, alien)
			fail(thinker, intent)
			return
		}
		data.Failures = 0
		data.Path = path[1:]
		data.Stage = component.GoalHavePath
	}

	params := s.goalSteering()
	for {
		if len(data.Path) == 0 {
			data.Stage = component.GoalArrived
			intent.Stop()
			thinker.State = component.ActionSuccess
			despawnAlien(s.ecs, s.eventDispatcher, id, event.GoalReached)
			return
		}
		next := data.Path[0]
		if !s.graph.HasVertex(next) {
			// Путь устарел: на нём построили препятствие.
			data.Reset()
			fail(thinker, intent)
			return
		}
		tx, ty := next.Center()
		if !steerTowards(intent, pos, orient, tx, ty, params) {
			return
		}
		data.Path = data.Path[1:]
	}
}

// pathFailed считает неудачные поиски; после PathAttempts подряд сигналит PathExhausted.
func (s *ThinkerSystem) pathFailed(id types.EntityID, alien *component.Alien) {
	alien.Goal.Failures++
	if alien.Goal.Failures < s.tuning.Destroy.PathAttempts {
		return
	}
	alien.Goal.Failures = 0
	s.eventDispatcher.Dispatch(event.Event{Type: event.PathExhausted, Data: event.AlienData{Alien: id, Tile: alien.Tile}})
}
