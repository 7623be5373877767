// component/render.go
package component

import "image/color"

// Renderable — компонент для отрисовки. Радиус задаётся долей размера тайла.
type Renderable struct {
	Color        color.RGBA
	RadiusFactor float64
}
