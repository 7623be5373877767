package system

import (
	"math"

	"alien-defense/internal/entity"
	"alien-defense/internal/event"
	"alien-defense/internal/types"
)

// CombatSystem управляет атакой башен по пришельцам.
// Удары пришельцев по игроку наносит поведение ApproachAndAttackPlayer.
type CombatSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

func NewCombatSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *CombatSystem {
	return &CombatSystem{ecs: ecs, eventDispatcher: eventDispatcher}
}

func (s *CombatSystem) Update(deltaTime float64) {
	for _, id := range s.ecs.ObstacleIDs() {
		combat, ok := s.ecs.Combats[id]
		if !ok {
			continue
		}
		if combat.FireCooldown > 0 {
			combat.FireCooldown -= deltaTime
			if combat.FireCooldown > 0 {
				continue
			}
		}
		target, ok := s.findTarget(id, combat.Range)
		if !ok {
			continue
		}
		combat.FireCooldown = 1 / combat.FireRate

		remaining, ok := ApplyDamage(s.ecs, target, combat.Damage)
		if ok && remaining == 0 {
			despawnAlien(s.ecs, s.eventDispatcher, target, event.AlienKilled)
		}
	}
}

// findTarget выбирает ближайшего пришельца в радиусе; при равенстве — с меньшим ID.
func (s *CombatSystem) findTarget(towerID types.EntityID, radius float64) (types.EntityID, bool) {
	towerPos, ok := s.ecs.Positions[towerID]
	if !ok {
		return 0, false
	}
	best := types.EntityID(0)
	bestDist := math.Inf(1)
	for _, id := range s.ecs.AlienIDs() {
		pos, ok := s.ecs.Positions[id]
		if !ok {
			continue
		}
		if _, ok := s.ecs.Healths[id]; !ok {
			continue
		}
		dist := math.Hypot(pos.X-towerPos.X, pos.Y-towerPos.Y)
		if dist <= radius && dist < bestDist {
			best, bestDist = id, dist
		}
	}
	return best, !math.IsInf(bestDist, 1)
}
