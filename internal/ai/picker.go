package ai

import "alien-defense/internal/component"

// Pick выбирает поведение со строго наибольшими очками.
// При равенстве побеждает зарегистрированное раньше: это упрощение, а не гарантия.
// Поведения с нулевыми очками не выбираются; если таких нет, ok == false.
func Pick(profile []component.BehaviorKind, scores [component.BehaviorCount]float64) (component.BehaviorKind, bool) {
	best := component.BehaviorKind(0)
	bestScore := 0.0
	found := false
	for _, kind := range profile {
		if scores[kind] > bestScore {
			best, bestScore, found = kind, scores[kind], true
		}
	}
	return best, found
}

// Seeker — основной профиль: идёт к цели, отвлекается на игрока, ломает карту по сигналу.
// Без цели на карте скатывается к блужданию.
var Seeker = []component.BehaviorKind{
	component.BehaviorMoveToGoal,
	component.BehaviorApproachPlayer,
	component.BehaviorDestroyTheMap,
	component.BehaviorAvoidWalls,
	component.BehaviorMoveForward,
}

// Wanderer блуждает, обходя стены, и нападает на игрока.
var Wanderer = []component.BehaviorKind{
	component.BehaviorAvoidWalls,
	component.BehaviorMoveForward,
	component.BehaviorApproachPlayer,
}

// ProfileByName возвращает профиль по имени из определения пришельца.
func ProfileByName(name string) ([]component.BehaviorKind, bool) {
	switch name {
	case "seeker":
		return Seeker, true
	case "wanderer":
		return Wanderer, true
	}
	return nil, false
}
