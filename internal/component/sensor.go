package component

import "alien-defense/internal/types"

// Sensing — таймер опроса сенсоров. Опрос идёт на низкой фиксированной частоте.
type Sensing struct {
	Cooldown float64
}

// WallSensor — расстояния до ближайшей преграды по трём лучам.
// Max означает "ничего не видно".
type WallSensor struct {
	Forward float64
	Left    float64
	Right   float64
	Max     float64
}

func NewWallSensor(max float64) WallSensor {
	return WallSensor{Forward: max, Left: max, Right: max, Max: max}
}

// PlayerSight — видит ли агент игрока
type PlayerSight struct {
	Player types.EntityID
	Seen   bool
}
