// Package grid implements the uniform navigation grid shared by pathfinding,
// collision and ray casting.
package grid

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"sort"

	"github.com/automoto/lurk/shared/gamemath"
	"github.com/solarlune/resolv"
)

// TagBarrier is the resolv tag carried by barrier bodies.
const TagBarrier = "barrier"

const (
	// DefaultBaseWeight is the traversal cost of a node away from walls.
	DefaultBaseWeight = 1.0
	// DefaultBarrierWeight is added to a node for each orthogonal barrier.
	DefaultBarrierWeight = 5.0
)

// ErrOutOfBounds is returned by lookups outside the grid.
var ErrOutOfBounds = errors.New("grid: position out of bounds")

type offset struct{ dr, dc int }

var (
	orthogonal = [...]offset{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	diagonal   = [...]offset{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
)

// Grid is a Size x Size array of nodes, Gap world units per node edge.
type Grid struct {
	Size int
	Gap  float64

	BaseWeight    float64
	BarrierWeight float64

	nodes [][]*Node
	zones map[int][]*Node
	open  int
	space *resolv.Space
}

// New creates an open grid. Call Finalize once barriers and zones are set.
func New(size int, gap float64) *Grid {
	g := &Grid{
		Size:          size,
		Gap:           gap,
		BaseWeight:    DefaultBaseWeight,
		BarrierWeight: DefaultBarrierWeight,
		nodes:         make([][]*Node, size),
		zones:         make(map[int][]*Node),
	}
	for row := 0; row < size; row++ {
		g.nodes[row] = make([]*Node, size)
		for col := 0; col < size; col++ {
			g.nodes[row][col] = &Node{
				Row:    row,
				Col:    col,
				X:      float64(col)*gap + gap/2,
				Y:      float64(row)*gap + gap/2,
				Weight: g.BaseWeight,
				gap:    gap,
			}
		}
	}
	return g
}

// Node returns the node at (row, col) or nil outside the grid.
func (g *Grid) Node(row, col int) *Node {
	if row < 0 || col < 0 || row >= g.Size || col >= g.Size {
		return nil
	}
	return g.nodes[row][col]
}

// Each calls fn for every node in row-major order.
func (g *Grid) Each(fn func(n *Node)) {
	for _, row := range g.nodes {
		for _, n := range row {
			fn(n)
		}
	}
}

// WorldSize is the edge length of the grid in world units.
func (g *Grid) WorldSize() float64 {
	return float64(g.Size) * g.Gap
}

// SetBarrier marks a node as barrier or floor. Topology is stale until the
// next Finalize.
func (g *Grid) SetBarrier(row, col int, barrier bool) {
	if n := g.Node(row, col); n != nil {
		n.IsBarrier = barrier
	}
}

// SealBorder forces every border node to barrier status.
func (g *Grid) SealBorder() {
	last := g.Size - 1
	for i := 0; i < g.Size; i++ {
		g.nodes[0][i].IsBarrier = true
		g.nodes[last][i].IsBarrier = true
		g.nodes[i][0].IsBarrier = true
		g.nodes[i][last].IsBarrier = true
	}
}

// Finalize rebuilds everything derived from barrier and zone flags:
// neighbor lists, proximity weights, the zone index and collision bodies.
// It must run after loading and before the first path request.
func (g *Grid) Finalize() {
	g.BuildNeighbors()
	g.SurroundingBarrierWeights()
	g.indexZones()
	g.buildSpace()
}

// BuildNeighbors computes the traversable and barrier neighbor lists of
// every node. A diagonal is traversable when it is open and at least one of
// the two orthogonal nodes it squeezes between is open. Barrier diagonals
// are kept for collision only.
func (g *Grid) BuildNeighbors() {
	g.Each(func(n *Node) {
		n.Neighbors = n.Neighbors[:0]
		n.BarrierNeighbors = n.BarrierNeighbors[:0]

		for _, o := range orthogonal {
			nb := g.Node(n.Row+o.dr, n.Col+o.dc)
			if nb == nil {
				continue
			}
			if nb.IsBarrier {
				n.BarrierNeighbors = append(n.BarrierNeighbors, nb)
			} else {
				n.Neighbors = append(n.Neighbors, nb)
			}
		}

		for _, o := range diagonal {
			nb := g.Node(n.Row+o.dr, n.Col+o.dc)
			if nb == nil {
				continue
			}
			if nb.IsBarrier {
				n.BarrierNeighbors = append(n.BarrierNeighbors, nb)
				continue
			}
			vertical := g.Node(n.Row+o.dr, n.Col)
			horizontal := g.Node(n.Row, n.Col+o.dc)
			if !vertical.IsBarrier || !horizontal.IsBarrier {
				n.Neighbors = append(n.Neighbors, nb)
			}
		}
	})
}

// SurroundingBarrierWeights resets every weight to BaseWeight and adds
// BarrierWeight to each open node once per orthogonally adjacent barrier,
// steering paths away from walls.
func (g *Grid) SurroundingBarrierWeights() {
	g.Each(func(n *Node) {
		n.Weight = g.BaseWeight
	})
	g.Each(func(n *Node) {
		if !n.IsBarrier {
			return
		}
		for _, o := range orthogonal {
			if nb := g.Node(n.Row+o.dr, n.Col+o.dc); nb != nil && !nb.IsBarrier {
				nb.Weight += g.BarrierWeight
			}
		}
	})
}

func (g *Grid) indexZones() {
	g.zones = make(map[int][]*Node)
	g.open = 0
	g.Each(func(n *Node) {
		if n.IsBarrier {
			return
		}
		g.open++
		if n.Zoned() {
			g.zones[n.Zone] = append(g.zones[n.Zone], n)
		}
	})
}

// NodeAt returns the node containing a world position.
func (g *Grid) NodeAt(x, y float64) (*Node, error) {
	col := int(math.Floor(x / g.Gap))
	row := int(math.Floor(y / g.Gap))
	n := g.Node(row, col)
	if n == nil {
		return nil, fmt.Errorf("node at (%.1f, %.1f): %w", x, y, ErrOutOfBounds)
	}
	return n, nil
}

// OpenCount is the number of non-barrier nodes as of the last Finalize.
func (g *Grid) OpenCount() int {
	return g.open
}

// RandomNode picks a uniformly random node by rejection sampling. With
// excludeBarriers set, barrier nodes are rejected; ok is false when the
// grid has no open node.
func (g *Grid) RandomNode(rng *rand.Rand, excludeBarriers bool) (*Node, bool) {
	if g.Size == 0 || (excludeBarriers && g.open == 0) {
		return nil, false
	}
	for {
		n := g.nodes[rng.IntN(g.Size)][rng.IntN(g.Size)]
		if excludeBarriers && n.IsBarrier {
			continue
		}
		return n, true
	}
}

// RandomNodeInZone picks a uniformly random open node of a zone. ok is
// false when the zone has no open node.
func (g *Grid) RandomNodeInZone(rng *rand.Rand, zone int) (*Node, bool) {
	nodes := g.zones[zone]
	if len(nodes) == 0 {
		return nil, false
	}
	return nodes[rng.IntN(len(nodes))], true
}

// Zones returns the ids of all non-empty zones in ascending order.
func (g *Grid) Zones() []int {
	ids := make([]int, 0, len(g.zones))
	for id := range g.zones {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// ZoneNodes returns the open nodes of a zone in row-major order.
func (g *Grid) ZoneNodes(zone int) []*Node {
	return g.zones[zone]
}

// KeyNodes returns all nodes flagged as keys.
func (g *Grid) KeyNodes() []*Node {
	return g.collect(func(n *Node) bool { return n.IsKey })
}

// ExitNodes returns all nodes flagged as exits.
func (g *Grid) ExitNodes() []*Node {
	return g.collect(func(n *Node) bool { return n.IsExit })
}

// SetKey toggles the key marker of a node.
func (g *Grid) SetKey(n *Node, key bool) {
	n.IsKey = key
}

// SetExit toggles the exit marker of a node.
func (g *Grid) SetExit(n *Node, exit bool) {
	n.IsExit = exit
}

func (g *Grid) collect(keep func(n *Node) bool) []*Node {
	var out []*Node
	g.Each(func(n *Node) {
		if keep(n) {
			out = append(out, n)
		}
	})
	return out
}

// Contains reports whether a world rectangle lies fully inside the grid.
func (g *Grid) Contains(r gamemath.Rect) bool {
	size := g.WorldSize()
	return r.X >= 0 && r.Y >= 0 && r.X+r.W <= size && r.Y+r.H <= size
}
