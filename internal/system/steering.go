package system

import (
	"math"

	"alien-defense/internal/component"
	"alien-defense/internal/utils"
)

// steeringParams — общая политика рулёжки к точке
type steeringParams struct {
	ArrivalRadius float64 // в тайлах
	MaxTurnRate   float64 // градусов в секунду
	ForwardCone   float64 // градусов
}

// headingError возвращает знаковую ошибку курса в градусах и расстояние до точки.
func headingError(pos *component.Position, orient *component.Orientation, tx, ty float64) (angle, dist float64) {
	dx, dy := tx-pos.X, ty-pos.Y
	dist = math.Hypot(dx, dy)
	if dist == 0 {
		return 0, 0
	}
	return utils.SignedAngleDegrees(orient.Angle, math.Atan2(dy, dx)), dist
}

// steerTowards пишет в intent поворот и тягу к точке (tx, ty).
// Возвращает true, если точка уже в радиусе прибытия: тогда intent не меняется.
// Скорость поворота растёт линейно с min(|угол|, 90°)/90°; тяга вперёд только внутри конуса.
func steerTowards(intent *component.MovementIntent, pos *component.Position, orient *component.Orientation, tx, ty float64, p steeringParams) bool {
	angle, dist := headingError(pos, orient, tx, ty)
	if dist <= p.ArrivalRadius {
		return true
	}
	abs := math.Abs(angle)
	intent.TurnRate = p.MaxTurnRate * math.Min(abs, 90) / 90
	switch {
	case angle > 0:
		intent.Turn = component.TurnRight
	case angle < 0:
		intent.Turn = component.TurnLeft
	default:
		intent.Turn = component.TurnNone
	}
	if abs <= p.ForwardCone {
		intent.Drive = component.DriveForward
	} else {
		intent.Drive = component.DriveNone
	}
	return false
}
