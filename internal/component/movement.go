// component/movement.go
package component

// Position — компонент позиции в мировых координатах (единица — тайл)
type Position struct {
	X, Y float64
}

// Velocity — компонент скорости (тайлов в секунду)
type Velocity struct {
	Speed float64
}

// Orientation — направление "вперёд" в радианах. Ось Y направлена вниз, как на экране.
type Orientation struct {
	Angle float64
}

type TurnDirection int

const (
	TurnNone TurnDirection = iota
	TurnLeft
	TurnRight
)

type DriveDirection int

const (
	DriveNone DriveDirection = iota
	DriveForward
	DriveBackward
)

// MovementIntent — то, что поведение хочет сделать с телом. Применяет MovementSystem.
type MovementIntent struct {
	Turn     TurnDirection
	Drive    DriveDirection
	TurnRate float64 // градусов в секунду
}

// Stop сбрасывает намерение
func (m *MovementIntent) Stop() {
	m.Turn = TurnNone
	m.Drive = DriveNone
	m.TurnRate = 0
}
