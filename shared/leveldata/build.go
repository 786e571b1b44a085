package leveldata

import "github.com/automoto/lurk/shared/grid"

// Build creates the navigation grid for m. Border cells are sealed as
// barriers regardless of the map content, then topology is finalized.
func (m *MapData) Build(gap float64) *grid.Grid {
	g := grid.New(m.Size, gap)
	for row, cells := range m.Cells {
		for col, c := range cells {
			n := g.Node(row, col)
			n.IsBarrier = c.Barrier
			n.Zone = c.Zone
			n.IsKey = c.Key
			n.IsExit = c.Exit
		}
	}
	g.SealBorder()
	g.Finalize()
	return g
}
