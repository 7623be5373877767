// internal/defs/aliens.go
package defs

// AlienDefinition holds all the static data for a specific kind of alien.
type AlienDefinition struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Health  int     `json:"health"`
	Speed   float64 `json:"speed"`   // Tiles per second
	Profile string  `json:"profile"` // Набор поведений, см. ai.ProfileByName
	Visuals Visuals `json:"visuals"`
}

// AlienLibrary is the library of all alien definitions, mapped by their ID.
var AlienLibrary map[string]AlienDefinition
