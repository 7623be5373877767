// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 960
	ScreenHeight = 720
	TileSize     = 48.0
	HUDHeight    = 48
	MaxDeltaTime = 0.06

	// DecisionTPS — частота фиксированного шага симуляции (сенсоры, мышление, действия)
	DecisionTPS = 30

	ClickDebounceTime = 100 // мс

	AlienRadiusFactor    = 0.3
	ObstacleRadiusFactor = 0.42
	PlayerRadiusFactor   = 0.35
	HeadingLineFactor    = 0.45
	StrokeWidth          = 2.0
)

var (
	BackgroundColor  = color.RGBA{20, 20, 30, 255}
	FloorColor       = color.RGBA{70, 100, 120, 220}
	WallColor        = color.RGBA{150, 70, 70, 220}
	PickupColor      = color.RGBA{255, 215, 0, 255}
	SpawnColor       = color.RGBA{0, 255, 0, 255}
	GoalColor        = color.RGBA{255, 0, 0, 255}
	PlayerColor      = color.RGBA{50, 205, 50, 255}
	GridLineColor    = color.RGBA{40, 50, 60, 255}
	TextLightColor   = color.RGBA{240, 240, 240, 255}
	PathColor        = color.RGBA{255, 255, 0, 128}
	DestroyPathColor = color.RGBA{255, 80, 0, 160}
	HealthBarColor   = color.RGBA{220, 60, 60, 220}
)
