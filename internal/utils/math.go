// internal/utils/math.go
package utils

import "math"

// Lerp выполняет стандартную линейную интерполяцию
func Lerp(from, to float64, t float64) float64 {
	return from + (to-from)*t
}

// NormalizeAngle нормализует угол в диапазон [-π, π]
func NormalizeAngle(angle float64) float64 {
	for angle > math.Pi {
		angle -= 2 * math.Pi
	}
	for angle < -math.Pi {
		angle += 2 * math.Pi
	}
	return angle
}

// SignedAngleDegrees возвращает кратчайший поворот от from к to в градусах.
// Положительное значение — по часовой стрелке на экране (ось Y вниз).
func SignedAngleDegrees(from, to float64) float64 {
	return NormalizeAngle(to-from) * 180 / math.Pi
}

func Radians(degrees float64) float64 {
	return degrees * math.Pi / 180
}
