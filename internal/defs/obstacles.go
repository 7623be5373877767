// internal/defs/obstacles.go
package defs

// ObstacleDefinition holds the static data of something the player can build.
// An obstacle with Combat is a tower; without it, a plain wall.
type ObstacleDefinition struct {
	ID      string       `json:"id"`
	Name    string       `json:"name"`
	Health  int          `json:"health"`
	Combat  *CombatStats `json:"combat,omitempty"`
	Visuals Visuals      `json:"visuals"`
}

// ObstacleLibrary is the library of all buildable obstacles, mapped by their ID.
var ObstacleLibrary map[string]ObstacleDefinition
