package grid

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/automoto/lurk/shared/gamemath"
)

func newTestGrid(size int, barriers ...[2]int) *Grid {
	g := New(size, 10)
	for _, b := range barriers {
		g.SetBarrier(b[0], b[1], true)
	}
	g.Finalize()
	return g
}

func TestBuildNeighborsOpenGrid(t *testing.T) {
	g := newTestGrid(3)

	cases := []struct {
		name string
		row  int
		col  int
		want int
	}{
		{"corner", 0, 0, 3},
		{"edge", 0, 1, 5},
		{"centre", 1, 1, 8},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			n := g.Node(c.row, c.col)
			if len(n.Neighbors) != c.want {
				t.Fatalf("expected %d neighbors, got %d", c.want, len(n.Neighbors))
			}
			if len(n.BarrierNeighbors) != 0 {
				t.Fatalf("expected no barrier neighbors, got %d", len(n.BarrierNeighbors))
			}
		})
	}
}

func TestBuildNeighborsOrder(t *testing.T) {
	g := newTestGrid(3)
	centre := g.Node(1, 1)
	want := [][2]int{{0, 1}, {2, 1}, {1, 0}, {1, 2}, {0, 0}, {0, 2}, {2, 0}, {2, 2}}
	for i, w := range want {
		got := centre.Neighbors[i]
		if got.Row != w[0] || got.Col != w[1] {
			t.Fatalf("neighbor %d: expected (%d,%d), got (%d,%d)", i, w[0], w[1], got.Row, got.Col)
		}
	}
}

func TestDiagonalCutByTwoBarriers(t *testing.T) {
	// (0,1) and (1,0) are walls, so (0,0) and (1,1) cannot see each other.
	g := newTestGrid(3, [2]int{0, 1}, [2]int{1, 0})

	if g.Node(1, 1).HasNeighbor(g.Node(0, 0)) {
		t.Fatalf("diagonal squeezing between two barriers must not be traversable")
	}
	if g.Node(0, 0).HasNeighbor(g.Node(1, 1)) {
		t.Fatalf("diagonal squeezing between two barriers must not be traversable")
	}

	// One open orthogonal is enough.
	g.SetBarrier(1, 0, false)
	g.Finalize()
	if !g.Node(1, 1).HasNeighbor(g.Node(0, 0)) {
		t.Fatalf("diagonal with one open orthogonal should be traversable")
	}
}

func TestBarrierDiagonalGoesToBarrierList(t *testing.T) {
	g := newTestGrid(3, [2]int{0, 0})
	centre := g.Node(1, 1)

	if centre.HasNeighbor(g.Node(0, 0)) {
		t.Fatalf("barrier must not be traversable")
	}
	if len(centre.BarrierNeighbors) != 1 || centre.BarrierNeighbors[0] != g.Node(0, 0) {
		t.Fatalf("expected the diagonal barrier in the barrier list, got %v", centre.BarrierNeighbors)
	}
}

func TestNeighborSymmetry(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	g := New(12, 10)
	g.Each(func(n *Node) {
		if rng.Float64() < 0.3 {
			n.IsBarrier = true
		}
	})
	g.Finalize()

	g.Each(func(a *Node) {
		for _, b := range a.Neighbors {
			if b.IsBarrier {
				t.Fatalf("barrier (%d,%d) in traversable list of (%d,%d)", b.Row, b.Col, a.Row, a.Col)
			}
			if !b.HasNeighbor(a) {
				t.Fatalf("(%d,%d) -> (%d,%d) is not symmetric", a.Row, a.Col, b.Row, b.Col)
			}
		}
	})
}

func TestSurroundingBarrierWeights(t *testing.T) {
	g := newTestGrid(3, [2]int{1, 1})

	if w := g.Node(0, 1).Weight; w != DefaultBaseWeight+DefaultBarrierWeight {
		t.Fatalf("orthogonal neighbor weight: expected %v, got %v", DefaultBaseWeight+DefaultBarrierWeight, w)
	}
	if w := g.Node(0, 0).Weight; w != DefaultBaseWeight {
		t.Fatalf("diagonal neighbor weight: expected %v, got %v", DefaultBaseWeight, w)
	}

	// Finalize twice must not double the penalty.
	g.Finalize()
	if w := g.Node(1, 0).Weight; w != DefaultBaseWeight+DefaultBarrierWeight {
		t.Fatalf("weights not idempotent: got %v", w)
	}
}

func TestNodeAt(t *testing.T) {
	g := newTestGrid(4)

	cases := []struct {
		name    string
		x, y    float64
		row     int
		col     int
		wantErr bool
	}{
		{"origin", 0, 0, 0, 0, false},
		{"inside", 25, 12, 1, 2, false},
		{"last", 39.9, 39.9, 3, 3, false},
		{"right edge", 40, 5, 0, 0, true},
		{"negative", -0.1, 5, 0, 0, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			n, err := g.NodeAt(c.x, c.y)
			if c.wantErr {
				if !errors.Is(err, ErrOutOfBounds) {
					t.Fatalf("expected ErrOutOfBounds, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if n.Row != c.row || n.Col != c.col {
				t.Fatalf("expected (%d,%d), got (%d,%d)", c.row, c.col, n.Row, n.Col)
			}
		})
	}
}

func TestRandomNodeSkipsBarriers(t *testing.T) {
	g := New(5, 10)
	g.SealBorder()
	g.Finalize()
	rng := rand.New(rand.NewPCG(1, 2))

	for i := 0; i < 200; i++ {
		n, ok := g.RandomNode(rng, true)
		if !ok {
			t.Fatalf("expected a node")
		}
		if n.IsBarrier {
			t.Fatalf("got barrier (%d,%d)", n.Row, n.Col)
		}
	}
}

func TestRandomNodeNoOpenNodes(t *testing.T) {
	g := New(2, 10)
	g.SealBorder()
	g.Finalize()

	if _, ok := g.RandomNode(rand.New(rand.NewPCG(1, 2)), true); ok {
		t.Fatalf("fully walled grid should yield no node")
	}
}

func TestRandomNodeInZone(t *testing.T) {
	g := New(4, 10)
	g.Node(1, 1).Zone = 3
	g.Node(2, 2).Zone = 3
	g.Node(2, 1).Zone = 3
	g.Node(2, 1).IsBarrier = true
	g.Finalize()
	rng := rand.New(rand.NewPCG(3, 4))

	for i := 0; i < 50; i++ {
		n, ok := g.RandomNodeInZone(rng, 3)
		if !ok {
			t.Fatalf("expected a node in zone 3")
		}
		if n.Zone != 3 || n.IsBarrier {
			t.Fatalf("got (%d,%d) zone %d barrier %v", n.Row, n.Col, n.Zone, n.IsBarrier)
		}
	}

	if _, ok := g.RandomNodeInZone(rng, 9); ok {
		t.Fatalf("empty zone should yield no node")
	}
	if got := g.Zones(); len(got) != 1 || got[0] != 3 {
		t.Fatalf("expected zones [3], got %v", got)
	}
}

func TestCollidingBarriers(t *testing.T) {
	// Wall column at col 2.
	g := newTestGrid(5, [2]int{0, 2}, [2]int{1, 2}, [2]int{2, 2}, [2]int{3, 2}, [2]int{4, 2})

	cases := []struct {
		name string
		rect gamemath.Rect
		want [][2]int
	}{
		{"clear", gamemath.Rect{X: 12, Y: 12, W: 4, H: 4}, nil},
		{"touching edge only", gamemath.Rect{X: 16, Y: 12, W: 4, H: 4}, nil},
		{"into wall", gamemath.Rect{X: 17, Y: 12, W: 6, H: 4}, [][2]int{{1, 2}}},
		{"into wall corner", gamemath.Rect{X: 17, Y: 17, W: 6, H: 6}, [][2]int{{1, 2}, {2, 2}}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			hits, err := g.CollidingBarriers(c.rect)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(hits) != len(c.want) {
				t.Fatalf("expected %d hits, got %d", len(c.want), len(hits))
			}
			for i, w := range c.want {
				if hits[i].Row != w[0] || hits[i].Col != w[1] {
					t.Fatalf("hit %d: expected (%d,%d), got (%d,%d)", i, w[0], w[1], hits[i].Row, hits[i].Col)
				}
			}
		})
	}
}

func TestCollidingBarriersOutOfBounds(t *testing.T) {
	g := newTestGrid(3)
	_, err := g.CollidingBarriers(gamemath.Rect{X: -20, Y: -20, W: 4, H: 4})
	if !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("expected ErrOutOfBounds, got %v", err)
	}
}

func TestKeyAndExitToggles(t *testing.T) {
	g := newTestGrid(3)
	exit := g.Node(1, 2)
	g.SetExit(exit, true)
	g.SetKey(g.Node(1, 1), true)

	if got := g.ExitNodes(); len(got) != 1 || got[0] != exit {
		t.Fatalf("expected one exit, got %v", got)
	}
	g.SetExit(exit, false)
	if got := g.ExitNodes(); len(got) != 0 {
		t.Fatalf("expected exit cleared, got %v", got)
	}
	if got := g.KeyNodes(); len(got) != 1 {
		t.Fatalf("expected one key, got %d", len(got))
	}
}
