// internal/ui/player_health_indicator.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	HealthPips          = 20
	HealthCols          = 10
	HealthCircleRadius  = 4.0
	HealthCircleSpacing = 3.0
)

var (
	healthFullColor  = color.RGBA{60, 120, 255, 255}
	healthLowColor   = color.RGBA{230, 50, 50, 255}
	healthEmptyColor = color.RGBA{0, 0, 0, 255}
	healthRimColor   = color.RGBA{255, 255, 255, 255}
)

// PlayerHealthIndicator отображает здоровье игрока сеткой кружков.
type PlayerHealthIndicator struct {
	X, Y float32
}

// NewPlayerHealthIndicator создает новый индикатор здоровья.
func NewPlayerHealthIndicator(x, y float32) *PlayerHealthIndicator {
	return &PlayerHealthIndicator{X: x, Y: y}
}

// FilledPips переводит здоровье в число закрашенных кружков; ненулевое здоровье — хотя бы один.
func FilledPips(health, maxHealth int) int {
	if maxHealth <= 0 || health <= 0 {
		return 0
	}
	pips := health * HealthPips / maxHealth
	if pips == 0 {
		pips = 1
	}
	if pips > HealthPips {
		pips = HealthPips
	}
	return pips
}

// Draw рисует индикатор. Меньше половины — кружки краснеют.
func (i *PlayerHealthIndicator) Draw(screen *ebiten.Image, health, maxHealth int) {
	filled := FilledPips(health, maxHealth)
	fill := healthFullColor
	if filled <= HealthPips/2 {
		fill = healthLowColor
	}
	step := float32(HealthCircleRadius*2 + HealthCircleSpacing)
	for j := 0; j < HealthPips; j++ {
		x := i.X + float32(j%HealthCols)*step + HealthCircleRadius
		y := i.Y + float32(j/HealthCols)*step + HealthCircleRadius
		c := healthEmptyColor
		if j < filled {
			c = fill
		}
		vector.DrawFilledCircle(screen, x, y, HealthCircleRadius, c, true)
		vector.StrokeCircle(screen, x, y, HealthCircleRadius, 1, healthRimColor, true)
	}
}
