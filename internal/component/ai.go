package component

import "alien-defense/pkg/gridmap"

// BehaviorKind — вид поведения. Набор закрыт, выбор и исполнение идут через switch.
type BehaviorKind int

const (
	BehaviorAvoidWalls BehaviorKind = iota
	BehaviorMoveForward
	BehaviorApproachPlayer
	BehaviorMoveToGoal
	BehaviorDestroyTheMap
	BehaviorCount
)

func (k BehaviorKind) String() string {
	switch k {
	case BehaviorAvoidWalls:
		return "AvoidWalls"
	case BehaviorMoveForward:
		return "MoveForward"
	case BehaviorApproachPlayer:
		return "ApproachAndAttackPlayer"
	case BehaviorMoveToGoal:
		return "MoveTowardsGoal"
	case BehaviorDestroyTheMap:
		return "DestroyTheMap"
	}
	return "Unknown"
}

// ActionState — жизненный цикл экземпляра поведения.
// Requested -> Executing -> Success | Failure; Cancelled всегда разрешается в Failure.
type ActionState int

const (
	ActionInit ActionState = iota
	ActionRequested
	ActionExecuting
	ActionSuccess
	ActionFailure
	ActionCancelled
)

func (s ActionState) String() string {
	switch s {
	case ActionInit:
		return "Init"
	case ActionRequested:
		return "Requested"
	case ActionExecuting:
		return "Executing"
	case ActionSuccess:
		return "Success"
	case ActionFailure:
		return "Failure"
	case ActionCancelled:
		return "Cancelled"
	}
	return "Unknown"
}

// Done сообщает, что экземпляр поведения завершён
func (s ActionState) Done() bool {
	return s == ActionSuccess || s == ActionFailure
}

// Thinker — состояние выбора поведения у агента
type Thinker struct {
	Profile   []BehaviorKind // Порядок регистрации: при равных очках побеждает первый
	Scores    [BehaviorCount]float64
	Active    BehaviorKind
	HasActive bool
	State     ActionState
}

type GoalStage int

const (
	GoalNoPath GoalStage = iota
	GoalHavePath
	GoalArrived
)

// MoveToGoal — данные поведения "идти к цели"
type MoveToGoal struct {
	Stage    GoalStage
	Path     []gridmap.Tile // Без стартового тайла
	Failures int            // Подряд неудачных поисков пути
}

// Reset забывает путь
func (m *MoveToGoal) Reset() {
	m.Stage = GoalNoPath
	m.Path = nil
}

type DestroyStage int

const (
	DestroyNotStarted DestroyStage = iota
	DestroySearching
	DestroyMoving
	DestroyDestroying
	DestroyFinished
	DestroyFailed
)

func (s DestroyStage) String() string {
	switch s {
	case DestroyNotStarted:
		return "NotStarted"
	case DestroySearching:
		return "SearchingForTarget"
	case DestroyMoving:
		return "MovingToTarget"
	case DestroyDestroying:
		return "DestroyingTarget"
	case DestroyFinished:
		return "Finished"
	case DestroyFailed:
		return "Failed"
	}
	return "Unknown"
}

// MustDestroyTheMap висит на агенте, пока тот прорубается к цели через препятствия.
type MustDestroyTheMap struct {
	Stage          DestroyStage
	Path           []gridmap.Tile // Без стартового тайла
	HasPath        bool
	Target         gridmap.Tile
	HasTarget      bool
	AttackCooldown float64
	AttackRate     float64 // Ударов в секунду
	Damage         int
}

func (m *MustDestroyTheMap) clearTarget() {
	m.Path = nil
	m.HasPath = false
	m.HasTarget = false
}

// Fail переводит машину в Failed, забывая путь и цель
func (m *MustDestroyTheMap) Fail() {
	m.clearTarget()
	m.Stage = DestroyFailed
}

// Finish переводит машину в Finished
func (m *MustDestroyTheMap) Finish() {
	m.clearTarget()
	m.Stage = DestroyFinished
}
