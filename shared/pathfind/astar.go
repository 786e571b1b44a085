// Package pathfind finds least-cost routes across a grid.Grid.
package pathfind

import (
	"container/heap"
	"math"

	"github.com/automoto/lurk/shared/grid"
	dmath "github.com/yohamta/donburi/features/math"
)

// Heuristic estimates the remaining cost from n to goal.
type Heuristic func(n, goal *grid.Node) float64

// WeightBiased is the Euclidean distance in cells from n to goal plus n's
// own weight. The extra weight term steers the search away from nodes next
// to walls, so results are weight-biased rather than strictly cheapest.
func WeightBiased(n, goal *grid.Node) float64 {
	return cellDistance(n, goal) + n.Weight
}

// Admissible returns a heuristic that never overestimates when every node
// weighs at least minWeight: each step costs at least minWeight and no
// route is shorter than the Chebyshev distance in steps.
func Admissible(minWeight float64) Heuristic {
	return func(n, goal *grid.Node) float64 {
		dr := math.Abs(float64(n.Row - goal.Row))
		dc := math.Abs(float64(n.Col - goal.Col))
		return math.Max(dr, dc) * minWeight
	}
}

func cellDistance(a, b *grid.Node) float64 {
	return math.Hypot(float64(a.Col-b.Col), float64(a.Row-b.Row))
}

// Pathfinder runs A* searches. The zero value uses WeightBiased.
type Pathfinder struct {
	Heuristic Heuristic
}

// New returns a Pathfinder with the default heuristic.
func New() *Pathfinder {
	return &Pathfinder{Heuristic: WeightBiased}
}

// Find returns the node sequence from start to goal, both included, using
// the default heuristic.
func Find(g *grid.Grid, start, goal *grid.Node) []*grid.Node {
	return New().Find(g, start, goal)
}

// Find returns the node sequence from start to goal, both included.
//
// Stepping out of a node costs that node's weight. An unreachable goal
// yields an empty slice; it is an ordinary outcome and callers should pick
// another goal rather than treat it as a failure. A nil endpoint or a
// barrier goal also yields an empty slice.
func (p *Pathfinder) Find(g *grid.Grid, start, goal *grid.Node) []*grid.Node {
	if start == nil || goal == nil || goal.IsBarrier {
		return []*grid.Node{}
	}
	if start == goal {
		return []*grid.Node{start}
	}

	h := p.Heuristic
	if h == nil {
		h = WeightBiased
	}

	hint := 64
	if g != nil && g.OpenCount() > 0 {
		hint = g.OpenCount()
	}
	gScore := make(map[*grid.Node]float64, hint)
	cameFrom := make(map[*grid.Node]*grid.Node, hint)
	open := make(map[*grid.Node]*queueItem, hint)

	score := func(n *grid.Node) float64 {
		if s, ok := gScore[n]; ok {
			return s
		}
		return math.Inf(1)
	}

	q := &openQueue{}
	heap.Init(q)
	order := 0
	push := func(n *grid.Node, f float64) {
		item := &queueItem{node: n, f: f, order: order}
		order++
		heap.Push(q, item)
		open[n] = item
	}

	gScore[start] = 0
	push(start, h(start, goal))

	for q.Len() > 0 {
		current := heap.Pop(q).(*queueItem).node
		delete(open, current)

		if current == goal {
			return reconstruct(cameFrom, start, goal)
		}

		for _, nb := range current.Neighbors {
			tentative := score(current) + current.Weight
			if tentative >= score(nb) {
				continue
			}
			cameFrom[nb] = current
			gScore[nb] = tentative
			f := tentative + h(nb, goal)
			if item, ok := open[nb]; ok {
				item.f = f
				heap.Fix(q, item.index)
				continue
			}
			push(nb, f)
		}
	}

	return []*grid.Node{}
}

func reconstruct(cameFrom map[*grid.Node]*grid.Node, start, goal *grid.Node) []*grid.Node {
	path := []*grid.Node{goal}
	for n := goal; n != start; {
		n = cameFrom[n]
		path = append(path, n)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// Cost is the total traversal cost of a path: the weight of every node
// stepped out of, which excludes the final node.
func Cost(path []*grid.Node) float64 {
	total := 0.0
	for i := 0; i+1 < len(path); i++ {
		total += path[i].Weight
	}
	return total
}

// Centers returns the world-space centre of every node of a path.
func Centers(path []*grid.Node) []dmath.Vec2 {
	out := make([]dmath.Vec2, len(path))
	for i, n := range path {
		out[i] = n.Center()
	}
	return out
}
