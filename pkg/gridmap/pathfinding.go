// pkg/gridmap/pathfinding.go
package gridmap

import (
	"container/heap"
)

// AStar находит кратчайший путь от start до goal. Путь включает start и goal.
// Возвращает nil, если пути нет.
func AStar(start, goal Tile, g *Graph) []Tile {
	return AStarFunc(start, func(t Tile) bool { return t == goal }, func(t Tile) int { return g.Distance(t, goal) }, g)
}

// AStarFunc runs A* with uniform edge cost 1 until isGoal accepts a tile.
// heuristic must never overestimate the remaining cost. The search is run to
// exhaustion before giving up, so nil always means no path exists.
func AStarFunc(start Tile, isGoal func(Tile) bool, heuristic func(Tile) int, g *Graph) []Tile {
	if isGoal(start) {
		return []Tile{start}
	}
	if !g.HasVertex(start) {
		return nil
	}

	pq := &PriorityQueue{}
	heap.Init(pq)
	seq := 0
	heap.Push(pq, &Node{Tile: start, Cost: 0, Priority: heuristic(start), seq: seq})
	costSoFar := map[Tile]int{start: 0}
	closed := make(map[Tile]bool)

	for pq.Len() > 0 {
		current := heap.Pop(pq).(*Node)
		if closed[current.Tile] {
			continue
		}
		if isGoal(current.Tile) {
			return reconstructPath(current)
		}
		closed[current.Tile] = true

		for _, neighbor := range g.Neighbours(current.Tile) {
			if closed[neighbor] {
				continue
			}
			newCost := current.Cost + 1
			if old, exists := costSoFar[neighbor]; exists && newCost >= old {
				continue
			}
			costSoFar[neighbor] = newCost
			seq++
			heap.Push(pq, &Node{
				Tile:     neighbor,
				Cost:     newCost,
				Priority: newCost + heuristic(neighbor),
				Parent:   current,
				seq:      seq,
			})
		}
	}
	return nil // Нет пути
}

// PriorityQueue для A*
type PriorityQueue []*Node

type Node struct {
	Tile     Tile
	Cost     int
	Priority int
	Parent   *Node
	seq      int
}

func (pq PriorityQueue) Len() int { return len(pq) }

// Less ломает ничьи в пользу узла, ближе к цели, затем в порядке вставки: порядок обхода детерминирован.
func (pq PriorityQueue) Less(i, j int) bool {
	if pq[i].Priority != pq[j].Priority {
		return pq[i].Priority < pq[j].Priority
	}
	if pq[i].Cost != pq[j].Cost {
		return pq[i].Cost > pq[j].Cost
	}
	return pq[i].seq < pq[j].seq
}
func (pq PriorityQueue) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }
func (pq *PriorityQueue) Push(x interface{}) {
	*pq = append(*pq, x.(*Node))
}
func (pq *PriorityQueue) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[0 : n-1]
	return item
}

func reconstructPath(node *Node) []Tile {
	path := make([]Tile, node.Cost+1)
	for i := node.Cost; node != nil; i-- {
		path[i] = node.Tile
		node = node.Parent
	}
	return path
}
