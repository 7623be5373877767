// pkg/gridmap/tile.go
package gridmap

import (
	"fmt"
	"math"

	"alien-defense/pkg/utils"
)

// Tile is a cell of the grid addressed by column X and row Y. Row 0 is the top row.
type Tile struct {
	X, Y int
}

// orthogonalDirections starts from East and goes counter-clockwise on screen (Y grows downwards).
var orthogonalDirections = []Tile{
	{X: 1, Y: 0}, {X: 0, Y: -1}, {X: -1, Y: 0}, {X: 0, Y: 1},
}

var diagonalDirections = []Tile{
	{X: 1, Y: -1}, {X: -1, Y: -1}, {X: -1, Y: 1}, {X: 1, Y: 1},
}

func (t Tile) String() string {
	return fmt.Sprintf("(%d,%d)", t.X, t.Y)
}

// Add возвращает сумму двух тайлов
func (t Tile) Add(other Tile) Tile {
	return Tile{X: t.X + other.X, Y: t.Y + other.Y}
}

// Manhattan is the 4-connected grid distance.
func (t Tile) Manhattan(to Tile) int {
	return utils.Abs(t.X-to.X) + utils.Abs(t.Y-to.Y)
}

// Chebyshev is the 8-connected grid distance.
func (t Tile) Chebyshev(to Tile) int {
	return utils.Max(utils.Abs(t.X-to.X), utils.Abs(t.Y-to.Y))
}

// Center возвращает центр тайла в мировых координатах (единица — один тайл)
func (t Tile) Center() (x, y float64) {
	return float64(t.X) + 0.5, float64(t.Y) + 0.5
}

// ToPixel конвертирует тайл в пиксельные координаты его центра
func (t Tile) ToPixel(tileSize float64) (x, y float64) {
	cx, cy := t.Center()
	return cx * tileSize, cy * tileSize
}

// FromWorld возвращает тайл, которому принадлежит точка в мировых координатах.
func FromWorld(x, y float64) Tile {
	return Tile{X: int(math.Floor(x)), Y: int(math.Floor(y))}
}

// PixelToTile конвертирует пиксельные координаты в тайл
func PixelToTile(x, y, tileSize float64) Tile {
	return FromWorld(x/tileSize, y/tileSize)
}
