// internal/system/thinker.go
package system

import (
	"log"

	"alien-defense/internal/ai"
	"alien-defense/internal/component"
	"alien-defense/internal/config"
	"alien-defense/internal/entity"
	"alien-defense/internal/event"
	"alien-defense/internal/types"
	"alien-defense/pkg/gridmap"
)

// ThinkerSystem каждый тик пересчитывает очки, выбирает поведение и исполняет его один раз.
// Читает сенсоры, пишет намерения движения, граф и здоровье.
type ThinkerSystem struct {
	ecs             *entity.ECS
	graph           *gridmap.Graph
	eventDispatcher *event.Dispatcher
	tuning          config.Tuning
}

func NewThinkerSystem(ecs *entity.ECS, graph *gridmap.Graph, eventDispatcher *event.Dispatcher, tuning config.Tuning) *ThinkerSystem {
	s := &ThinkerSystem{
		ecs:             ecs,
		graph:           graph,
		eventDispatcher: eventDispatcher,
		tuning:          tuning,
	}
	eventDispatcher.Subscribe(event.PathExhausted, s)
	return s
}

func (s *ThinkerSystem) OnEvent(e event.Event) {
	if e.Type != event.PathExhausted {
		return
	}
	if data, ok := e.Data.(event.AlienData); ok {
		s.AttachMustDestroy(data.Alien)
	}
}

// AttachMustDestroy вешает на пришельца маркер MustDestroyTheMap. Уже висящий маркер не трогается.
func (s *ThinkerSystem) AttachMustDestroy(id types.EntityID) bool {
	alien, ok := s.ecs.Aliens[id]
	if !ok || alien.MustDestroy != nil {
		return false
	}
	alien.MustDestroy = &component.MustDestroyTheMap{
		Stage:      component.DestroyNotStarted,
		AttackRate: s.tuning.Destroy.AttackRate,
		Damage:     s.tuning.Destroy.Damage,
	}
	return true
}

func (s *ThinkerSystem) Update(deltaTime float64) {
	for _, id := range s.ecs.AlienIDs() {
		thinker, ok := s.ecs.Thinkers[id]
		if !ok {
			continue
		}
		s.think(id, thinker, deltaTime)
	}
}

func (s *ThinkerSystem) think(id types.EntityID, thinker *component.Thinker, deltaTime float64) {
	if alien, ok := s.ecs.Aliens[id]; ok {
		if pos, ok := s.ecs.Positions[id]; ok {
			alien.Tile = gridmap.FromWorld(pos.X, pos.Y)
		}
	}

	ai.ScoreAll(thinker.Profile, s.snapshot(id), &thinker.Scores)
	picked, ok := ai.Pick(thinker.Profile, thinker.Scores)
	decision := ai.Transition(thinker, picked, ok)

	if thinker.State == component.ActionCancelled {
		s.execute(id, thinker, deltaTime)
		if thinker.State != component.ActionFailure {
			log.Printf("ThinkerSystem: %s ignored cancellation for alien %d (state %s)", thinker.Active, id, thinker.State)
			thinker.State = component.ActionFailure
		}
	}

	switch decision {
	case ai.Idle:
		if thinker.HasActive {
			ai.Retire(thinker)
		}
		if intent, ok := s.ecs.Intents[id]; ok {
			intent.Stop()
		}
		return
	case ai.Switch, ai.Restart:
		ai.Request(thinker, picked)
	}
	s.execute(id, thinker, deltaTime)
}

// execute — диспетчеризация по закрытому набору поведений
func (s *ThinkerSystem) execute(id types.EntityID, thinker *component.Thinker, deltaTime float64) {
	switch thinker.Active {
	case component.BehaviorAvoidWalls:
		s.avoidWalls(id, thinker)
	case component.BehaviorMoveForward:
		s.moveForward(id, thinker)
	case component.BehaviorApproachPlayer:
		s.approachPlayer(id, thinker, deltaTime)
	case component.BehaviorMoveToGoal:
		s.moveToGoal(id, thinker)
	case component.BehaviorDestroyTheMap:
		s.destroyTheMap(id, thinker, deltaTime)
	default:
		thinker.State = component.ActionFailure
	}
}

func (s *ThinkerSystem) snapshot(id types.EntityID) ai.Snapshot {
	snap := ai.Snapshot{
		MaxSensingDistance: s.tuning.Alien.MaxSensingDistance,
		ForwardDistance:    s.tuning.Alien.MaxSensingDistance,
	}
	if ws, ok := s.ecs.WallSensors[id]; ok {
		snap.ForwardDistance = ws.Forward
	}
	if sight, ok := s.ecs.Sights[id]; ok && sight.Seen {
		_, alive := s.ecs.Players[sight.Player]
		snap.PlayerSeen = alive
	}
	_, snap.GoalExists = s.ecs.GoalTile()
	if alien, ok := s.ecs.Aliens[id]; ok {
		snap.MustDestroyTheMap = alien.MustDestroy != nil
	}
	return snap
}

// body возвращает компоненты, без которых ни одно поведение не может двигать агента.
func (s *ThinkerSystem) body(id types.EntityID) (*component.Position, *component.Orientation, *component.MovementIntent, bool) {
	pos, ok1 := s.ecs.Positions[id]
	orient, ok2 := s.ecs.Orientations[id]
	intent, ok3 := s.ecs.Intents[id]
	return pos, orient, intent, ok1 && ok2 && ok3
}

// begin обрабатывает общие для всех поведений переходы. false — исполнять дальше не нужно.
func begin(thinker *component.Thinker, intent *component.MovementIntent) bool {
	switch thinker.State {
	case component.ActionCancelled:
		if intent != nil {
			intent.Stop()
		}
		thinker.State = component.ActionFailure
		return false
	case component.ActionRequested:
		thinker.State = component.ActionExecuting
	case component.ActionExecuting:
	default:
		return false
	}
	return true
}

// fail останавливает агента и завершает поведение неудачей
func fail(thinker *component.Thinker, intent *component.MovementIntent) {
	if intent != nil {
		intent.Stop()
	}
	thinker.State = component.ActionFailure
}

func (s *ThinkerSystem) goalSteering() steeringParams {
	return steeringParams{
		ArrivalRadius: s.tuning.Steering.GoalArrivalRadius,
		MaxTurnRate:   s.tuning.Alien.MaxTurnRate,
		ForwardCone:   s.tuning.Steering.ForwardCone,
	}
}

func (s *ThinkerSystem) destroySteering() steeringParams {
	return steeringParams{
		ArrivalRadius: s.tuning.Steering.DestroyArrivalRadius,
		MaxTurnRate:   s.tuning.Alien.MaxTurnRate,
		ForwardCone:   s.tuning.Steering.ForwardCone,
	}
}
