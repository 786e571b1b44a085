package grid

import (
	"github.com/automoto/lurk/shared/gamemath"
	"github.com/solarlune/resolv"
	dmath "github.com/yohamta/donburi/features/math"
)

// Node is one cell of the navigation grid.
type Node struct {
	Row, Col int
	X, Y     float64 // world-space centre

	Weight    float64 // cost of stepping out of this node
	IsBarrier bool
	Zone      int // <= 0 means unassigned
	IsKey     bool
	IsExit    bool

	// Neighbors holds traversable neighbors in N, S, W, E, NW, NE, SW, SE
	// order. BarrierNeighbors holds adjacent barriers and is only used for
	// collision. Both are stale after a barrier change until Finalize runs.
	Neighbors        []*Node
	BarrierNeighbors []*Node

	// Body is the collision object of a barrier node, nil otherwise.
	Body *resolv.Object

	gap float64
}

// Center returns the world-space centre of the node.
func (n *Node) Center() dmath.Vec2 {
	return dmath.Vec2{X: n.X, Y: n.Y}
}

// Bounds returns the world-space square covered by the node.
func (n *Node) Bounds() gamemath.Rect {
	return gamemath.Rect{
		X: float64(n.Col) * n.gap,
		Y: float64(n.Row) * n.gap,
		W: n.gap,
		H: n.gap,
	}
}

// HasNeighbor reports whether other is a traversable neighbor of n.
func (n *Node) HasNeighbor(other *Node) bool {
	for _, nb := range n.Neighbors {
		if nb == other {
			return true
		}
	}
	return false
}

// Zoned reports whether the node belongs to a zone.
func (n *Node) Zoned() bool {
	return n.Zone > 0
}
