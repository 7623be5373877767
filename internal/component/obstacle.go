// component/obstacle.go
package component

import "alien-defense/pkg/gridmap"

// Obstacle — построенное игроком препятствие. Тайл под ним удалён из графа.
type Obstacle struct {
	DefID string
	Tile  gridmap.Tile
}
