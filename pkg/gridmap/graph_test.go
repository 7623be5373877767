package gridmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGraph_AddRemoveIdempotent(t *testing.T) {
	g := NewFullGraph(4, 4, false)
	tile := Tile{X: 2, Y: 1}

	g.AddVertex(tile)
	g.AddVertex(tile)
	assert.Equal(t, NewFullGraph(4, 4, false).Vertices(), g.Vertices())

	g.RemoveVertex(tile)
	once := g.Vertices()
	g.RemoveVertex(tile)
	assert.Equal(t, once, g.Vertices())
	assert.False(t, g.HasVertex(tile))
	assert.Equal(t, 15, g.Len())
}

func TestGraph_AddOutOfBoundsIgnored(t *testing.T) {
	g := NewGraph(3, 3, false)
	g.AddVertex(Tile{X: -1, Y: 0})
	g.AddVertex(Tile{X: 3, Y: 3})
	assert.Equal(t, 0, g.Len())
}

func TestGraph_Neighbours(t *testing.T) {
	g := NewFullGraph(3, 3, false)
	assert.ElementsMatch(t,
		[]Tile{{X: 2, Y: 1}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 2}},
		g.Neighbours(Tile{X: 1, Y: 1}))
	assert.ElementsMatch(t, []Tile{{X: 1, Y: 0}, {X: 0, Y: 1}}, g.Neighbours(Tile{X: 0, Y: 0}))

	g.RemoveVertex(Tile{X: 1, Y: 1})
	assert.Empty(t, g.Neighbours(Tile{X: 1, Y: 1}), "absent tile has no edges")
	assert.NotContains(t, g.Neighbours(Tile{X: 1, Y: 0}), Tile{X: 1, Y: 1})
}

func TestGraph_DiagonalNeighboursDoNotCutCorners(t *testing.T) {
	g := NewFullGraph(3, 3, true)
	assert.Len(t, g.Neighbours(Tile{X: 1, Y: 1}), 8)

	g.RemoveVertex(Tile{X: 1, Y: 0})
	n := g.Neighbours(Tile{X: 0, Y: 0})
	assert.ElementsMatch(t, []Tile{{X: 0, Y: 1}}, n)
}

func TestGraph_Distance(t *testing.T) {
	a, b := Tile{X: 0, Y: 0}, Tile{X: 3, Y: 5}
	assert.Equal(t, 8, NewGraph(6, 6, false).Distance(a, b))
	assert.Equal(t, 5, NewGraph(6, 6, true).Distance(a, b))
}

func TestGraph_WithVertexRestoresOnEveryExit(t *testing.T) {
	g := NewFullGraph(3, 3, false)
	blocked := Tile{X: 1, Y: 1}
	g.RemoveVertex(blocked)

	var inside bool
	g.WithVertex(blocked, func() { inside = g.HasVertex(blocked) })
	assert.True(t, inside)
	assert.False(t, g.HasVertex(blocked))

	assert.Panics(t, func() {
		g.WithVertex(blocked, func() { panic("boom") })
	})
	assert.False(t, g.HasVertex(blocked), "vertex must be released after a panic")

	present := Tile{X: 0, Y: 0}
	g.WithVertex(present, func() {})
	assert.True(t, g.HasVertex(present), "pre-existing vertex must survive")
}
