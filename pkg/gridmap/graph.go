// pkg/gridmap/graph.go
package gridmap

import "sort"

// Graph is the mutable adjacency structure over the tiles of a width×height grid.
// A tile is either present (traversable) or absent (blocked); absent tiles have no edges.
// Graph is not safe for concurrent use: the simulation mutates and searches it from one goroutine.
type Graph struct {
	vertices map[Tile]struct{}
	width    int
	height   int
	diagonal bool
}

// NewGraph создаёт пустой граф заданного размера. Все вершины изначально отсутствуют.
func NewGraph(width, height int, diagonal bool) *Graph {
	return &Graph{
		vertices: make(map[Tile]struct{}, width*height),
		width:    width,
		height:   height,
		diagonal: diagonal,
	}
}

// NewFullGraph создаёт граф, в котором присутствуют все тайлы.
func NewFullGraph(width, height int, diagonal bool) *Graph {
	g := NewGraph(width, height, diagonal)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			g.vertices[Tile{X: x, Y: y}] = struct{}{}
		}
	}
	return g
}

func (g *Graph) Width() int     { return g.width }
func (g *Graph) Height() int    { return g.height }
func (g *Graph) Diagonal() bool { return g.diagonal }
func (g *Graph) Len() int       { return len(g.vertices) }

// InBounds сообщает, лежит ли тайл внутри сетки
func (g *Graph) InBounds(t Tile) bool {
	return t.X >= 0 && t.Y >= 0 && t.X < g.width && t.Y < g.height
}

// AddVertex делает тайл проходимым. Повторный вызов и тайлы вне сетки ничего не меняют.
func (g *Graph) AddVertex(t Tile) {
	if !g.InBounds(t) {
		return
	}
	g.vertices[t] = struct{}{}
}

// RemoveVertex блокирует тайл. Удаление отсутствующей вершины ничего не меняет.
func (g *Graph) RemoveVertex(t Tile) {
	delete(g.vertices, t)
}

func (g *Graph) HasVertex(t Tile) bool {
	_, ok := g.vertices[t]
	return ok
}

// WithVertex temporarily adds t, runs fn and removes t again on every exit path,
// including a panic in fn. A vertex that was already present is left untouched.
func (g *Graph) WithVertex(t Tile, fn func()) {
	if g.HasVertex(t) || !g.InBounds(t) {
		fn()
		return
	}
	g.vertices[t] = struct{}{}
	defer delete(g.vertices, t)
	fn()
}

// Neighbours возвращает присутствующих соседей тайла. Отсутствующий тайл соседей не имеет.
// In diagonal mode a diagonal step is only allowed when both orthogonal tiles
// it passes between are present, so paths never cut a blocked corner.
func (g *Graph) Neighbours(t Tile) []Tile {
	if !g.HasVertex(t) {
		return nil
	}
	result := make([]Tile, 0, 8)
	for _, d := range orthogonalDirections {
		if n := t.Add(d); g.HasVertex(n) {
			result = append(result, n)
		}
	}
	if !g.diagonal {
		return result
	}
	for _, d := range diagonalDirections {
		n := t.Add(d)
		if !g.HasVertex(n) {
			continue
		}
		if g.HasVertex(Tile{X: n.X, Y: t.Y}) && g.HasVertex(Tile{X: t.X, Y: n.Y}) {
			result = append(result, n)
		}
	}
	return result
}

// Distance is the admissible heuristic matching the adjacency mode:
// Manhattan for 4-connected graphs, Chebyshev for 8-connected ones.
func (g *Graph) Distance(a, b Tile) int {
	if g.diagonal {
		return a.Chebyshev(b)
	}
	return a.Manhattan(b)
}

// Vertices возвращает присутствующие вершины, упорядоченные по строкам.
func (g *Graph) Vertices() []Tile {
	result := make([]Tile, 0, len(g.vertices))
	for t := range g.vertices {
		result = append(result, t)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Y != result[j].Y {
			return result[i].Y < result[j].Y
		}
		return result[i].X < result[j].X
	})
	return result
}
