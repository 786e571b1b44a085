package grid

import (
	"math"
	"sort"

	"github.com/automoto/lurk/shared/gamemath"
	"github.com/solarlune/resolv"
)

// Space returns the resolv space holding barrier bodies. Moving entities
// may be added to it as well.
func (g *Grid) Space() *resolv.Space {
	return g.space
}

func (g *Grid) buildSpace() {
	if g.space != nil {
		g.Each(func(n *Node) {
			if n.Body != nil {
				g.space.Remove(n.Body)
				n.Body = nil
			}
		})
	}

	cell := int(math.Ceil(g.Gap))
	size := int(math.Ceil(g.WorldSize()))
	if g.space == nil {
		g.space = resolv.NewSpace(size, size, cell, cell)
	}

	g.Each(func(n *Node) {
		if !n.IsBarrier {
			return
		}
		b := n.Bounds()
		obj := resolv.NewObject(b.X, b.Y, b.W, b.H, TagBarrier)
		obj.SetShape(resolv.NewRectangle(0, 0, b.W, b.H))
		obj.Data = n
		n.Body = obj
		g.space.Add(obj)
	})
}

// CollidingBarriers returns the barrier nodes overlapping r. Only the
// barriers adjacent to the node under r's centre are considered, which is
// exact for entities smaller than one cell. Results are in row-major order.
func (g *Grid) CollidingBarriers(r gamemath.Rect) ([]*Node, error) {
	c := r.Center()
	centre, err := g.NodeAt(c.X, c.Y)
	if err != nil {
		return nil, err
	}

	local := make(map[*Node]struct{}, len(centre.BarrierNeighbors)+1)
	for _, nb := range centre.BarrierNeighbors {
		local[nb] = struct{}{}
	}
	if centre.IsBarrier {
		local[centre] = struct{}{}
	}
	if len(local) == 0 {
		return nil, nil
	}

	probe := resolv.NewObject(r.X, r.Y, r.W, r.H)
	g.space.Add(probe)
	defer g.space.Remove(probe)

	check := probe.Check(0, 0, TagBarrier)
	if check == nil {
		return nil, nil
	}

	var hits []*Node
	for _, obj := range check.ObjectsByTags(TagBarrier) {
		n, ok := obj.Data.(*Node)
		if !ok {
			continue
		}
		if _, ok := local[n]; !ok {
			continue
		}
		if r.Overlaps(n.Bounds()) {
			hits = append(hits, n)
		}
	}
	sort.Slice(hits, func(i, j int) bool {
		if hits[i].Row != hits[j].Row {
			return hits[i].Row < hits[j].Row
		}
		return hits[i].Col < hits[j].Col
	})
	return hits, nil
}
