// Package ai содержит чистую часть утилитарного ИИ: оценку поведений,
// выбор победителя и переходы состояния действия. Исполнение поведений живёт в internal/system.
package ai

import "alien-defense/internal/component"

const (
	AvoidWallsScore     = 0.9
	MoveForwardScore    = 0.9
	ApproachPlayerScore = 0.91
	MoveToGoalScore     = 0.9
	DestroyTheMapScore  = 1.0
)

// Snapshot — то, что скореры знают о мире. Собирается из сенсоров до оценки.
type Snapshot struct {
	ForwardDistance    float64
	MaxSensingDistance float64
	PlayerSeen         bool
	GoalExists         bool
	MustDestroyTheMap  bool
}

// Score возвращает полезность поведения в [0, 1]. Функция чистая.
func Score(kind component.BehaviorKind, s Snapshot) float64 {
	switch kind {
	case component.BehaviorAvoidWalls:
		// Порог, а не плавная кривая: уклонение должно перебивать решительно.
		if s.ForwardDistance < s.MaxSensingDistance {
			return AvoidWallsScore
		}
		return 0
	case component.BehaviorMoveForward:
		return MoveForwardScore
	case component.BehaviorApproachPlayer:
		if s.PlayerSeen {
			return ApproachPlayerScore
		}
		return 0
	case component.BehaviorMoveToGoal:
		if s.GoalExists {
			return MoveToGoalScore
		}
		return 0
	case component.BehaviorDestroyTheMap:
		if s.MustDestroyTheMap {
			return DestroyTheMapScore
		}
		return 0
	}
	return 0
}

// ScoreAll пересчитывает очки всех поведений профиля. Остальные обнуляются.
func ScoreAll(profile []component.BehaviorKind, s Snapshot, scores *[component.BehaviorCount]float64) {
	*scores = [component.BehaviorCount]float64{}
	for _, kind := range profile {
		scores[kind] = Score(kind, s)
	}
}
