package system

import (
	"alien-defense/internal/component"
	"alien-defense/internal/event"
	"alien-defense/internal/types"
)

// wallClearance — ближе этого к стене вперёд не едем, только разворачиваемся
const wallClearance = 0.5

// avoidWalls разворачивает агента в сторону более свободного бокового луча.
// Завершается успехом, когда впереди ничего не видно.
func (s *ThinkerSystem) avoidWalls(id types.EntityID, thinker *component.Thinker) {
	_, _, intent, ok := s.body(id)
	if !ok {
		thinker.State = component.ActionFailure
		return
	}
	if !begin(thinker, intent) {
		return
	}
	ws, ok := s.ecs.WallSensors[id]
	if !ok {
		fail(thinker, intent)
		return
	}
	if ws.Forward >= ws.Max {
		intent.Stop()
		thinker.State = component.ActionSuccess
		return
	}

	intent.TurnRate = s.tuning.Alien.MaxTurnRate
	if ws.Left >= ws.Right {
		intent.Turn = component.TurnLeft
	} else {
		intent.Turn = component.TurnRight
	}
	if ws.Forward > wallClearance {
		intent.Drive = component.DriveForward
	} else {
		intent.Drive = component.DriveNone
	}
}

// moveForward — дрейф вперёд по умолчанию. Сам не завершается.
func (s *ThinkerSystem) moveForward(id types.EntityID, thinker *component.Thinker) {
	_, _, intent, ok := s.body(id)
	if !ok {
		thinker.State = component.ActionFailure
		return
	}
	if !begin(thinker, intent) {
		return
	}
	intent.Turn = component.TurnNone
	intent.TurnRate = 0
	intent.Drive = component.DriveForward
}

// approachPlayer ведёт агента к увиденному игроку и бьёт его, когда дотягивается.
func (s *ThinkerSystem) approachPlayer(id types.EntityID, thinker *component.Thinker, deltaTime float64) {
	pos, orient, intent, ok := s.body(id)
	if !ok {
		thinker.State = component.ActionFailure
		return
	}
	if !begin(thinker, intent) {
		return
	}
	sight, ok := s.ecs.Sights[id]
	if !ok || !sight.Seen {
		fail(thinker, intent)
		return
	}
	playerPos, ok := s.ecs.Positions[sight.Player]
	if _, isPlayer := s.ecs.Players[sight.Player]; !ok || !isPlayer {
		sight.Seen = false
		fail(thinker, intent)
		return
	}

	combat := s.ecs.Combats[id]
	if combat != nil && combat.FireCooldown > 0 {
		combat.FireCooldown -= deltaTime
	}

	params := s.goalSteering()
	params.ArrivalRadius = s.tuning.Alien.AttackRange
	if !steerTowards(intent, pos, orient, playerPos.X, playerPos.Y, params) {
		return
	}

	intent.Stop()
	if combat == nil || combat.FireCooldown > 0 {
		return
	}
	combat.FireCooldown = 1 / combat.FireRate
	remaining, ok := ApplyDamage(s.ecs, sight.Player, combat.Damage)
	if !ok {
		return
	}
	s.eventDispatcher.Dispatch(event.Event{Type: event.PlayerDamaged, Data: event.DamageData{
		Source: id, Target: sight.Player, Amount: combat.Damage, Remaining: remaining,
	}})
	if remaining == 0 {
		thinker.State = component.ActionSuccess
	}
}
