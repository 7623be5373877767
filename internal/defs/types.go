// internal/defs/types.go
package defs

import "image/color"

// Visuals contains parameters for rendering an entity.
type Visuals struct {
	Color        color.RGBA `json:"color"`
	RadiusFactor float64    `json:"radius_factor"`
}

// CombatStats contains parameters of an obstacle that can shoot (a tower).
type CombatStats struct {
	Damage   int     `json:"damage"`
	FireRate float64 `json:"fire_rate"` // Shots per second
	Range    float64 `json:"range"`     // In tiles
}
