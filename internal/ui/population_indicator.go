package ui

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"alien-defense/internal/event"
)

// PopulationIndicator — круг, заполненный долей живых пришельцев от лимита.
// Вздрагивает, когда заявка на спавн отброшена.
type PopulationIndicator struct {
	X, Y       float32
	Radius     float32
	LastPulse  time.Time
	FillColor  color.RGBA
	FullColor  color.RGBA
	OuterColor color.RGBA
}

func NewPopulationIndicator(x, y, radius float32) *PopulationIndicator {
	return &PopulationIndicator{
		X:          x,
		Y:          y,
		Radius:     radius,
		FillColor:  color.RGBA{0, 200, 120, 255},
		FullColor:  color.RGBA{255, 80, 0, 255},
		OuterColor: color.RGBA{255, 255, 255, 255},
	}
}

func (i *PopulationIndicator) OnEvent(e event.Event) {
	if e.Type == event.SpawnDropped {
		i.LastPulse = time.Now()
	}
}

// Scale — текущий масштаб пульса; затухает экспоненциально.
func (i *PopulationIndicator) Scale(now time.Time) float32 {
	if i.LastPulse.IsZero() {
		return 1
	}
	elapsed := now.Sub(i.LastPulse).Seconds()
	return float32(1.0 + 0.3*math.Exp(-elapsed*8))
}

func (i *PopulationIndicator) Draw(screen *ebiten.Image, live, populationCap int) {
	r := i.Radius * i.Scale(time.Now())
	frac := float32(1)
	if populationCap > 0 {
		frac = float32(live) / float32(populationCap)
	}
	c := i.FillColor
	if live >= populationCap {
		c = i.FullColor
	}
	vector.DrawFilledCircle(screen, i.X, i.Y, r*frac, c, true)
	vector.StrokeCircle(screen, i.X, i.Y, r, 1.5, i.OuterColor, true)
}
