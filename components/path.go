package components

import (
	"github.com/automoto/lurk/shared/grid"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// PathData is the path-following state of one agent. Nodes and Points are
// consumed front to back.
type PathData struct {
	StartNode *grid.Node
	EndNode   *grid.Node
	Nodes     []*grid.Node
	Points    []dmath.Vec2
	Next      dmath.Vec2
	HasNext   bool
	Segments  int // smoothing density the path was built with
}

// Clear drops the current path.
func (p *PathData) Clear() {
	p.StartNode = nil
	p.EndNode = nil
	p.Nodes = nil
	p.Points = nil
	p.HasNext = false
}

// Advance moves Next to the following waypoint. It reports false when the
// path is exhausted; Next then keeps its last value.
func (p *PathData) Advance() bool {
	if len(p.Points) == 0 {
		p.HasNext = false
		return false
	}
	p.Next = p.Points[0]
	p.Points = p.Points[1:]
	p.HasNext = true
	return true
}

var Path = donburi.NewComponentType[PathData]()
