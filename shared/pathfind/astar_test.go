package pathfind

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/automoto/lurk/shared/grid"
)

func buildGrid(size int, barriers ...[2]int) *grid.Grid {
	g := grid.New(size, 16)
	for _, b := range barriers {
		g.SetBarrier(b[0], b[1], true)
	}
	g.Finalize()
	return g
}

func randomGrid(seed uint64, size int, density float64) *grid.Grid {
	rng := rand.New(rand.NewPCG(seed, seed*31+7))
	g := grid.New(size, 16)
	g.Each(func(n *grid.Node) {
		if rng.Float64() < density {
			n.IsBarrier = true
		}
	})
	g.Finalize()
	return g
}

func assertConnected(t *testing.T, path []*grid.Node) {
	t.Helper()
	for i := 0; i+1 < len(path); i++ {
		if path[i].IsBarrier {
			t.Fatalf("path crosses barrier (%d,%d)", path[i].Row, path[i].Col)
		}
		if !path[i].HasNeighbor(path[i+1]) {
			t.Fatalf("step %d: (%d,%d) -> (%d,%d) is not a neighbor move",
				i, path[i].Row, path[i].Col, path[i+1].Row, path[i+1].Col)
		}
	}
}

func TestFindAroundWall(t *testing.T) {
	// Column 2 is a wall from row 0 to row 3; row 4 is the only gap.
	g := buildGrid(5, [2]int{0, 2}, [2]int{1, 2}, [2]int{2, 2}, [2]int{3, 2})
	start, goal := g.Node(0, 0), g.Node(0, 4)

	path := Find(g, start, goal)
	if len(path) < 5 {
		t.Fatalf("expected at least 5 nodes, got %d", len(path))
	}
	if path[0] != start || path[len(path)-1] != goal {
		t.Fatalf("path must start at start and end at goal")
	}
	assertConnected(t, path)

	throughGap := false
	for _, n := range path {
		if n.Row == 4 && n.Col == 2 {
			throughGap = true
		}
	}
	if !throughGap {
		t.Fatalf("path does not pass through the gap at (4,2)")
	}
}

func TestFindUnreachable(t *testing.T) {
	ring := [][2]int{
		{2, 2}, {2, 3}, {2, 4},
		{3, 2}, {3, 4},
		{4, 2}, {4, 3}, {4, 4},
	}
	g := buildGrid(7, ring...)

	path := Find(g, g.Node(0, 0), g.Node(3, 3))
	if path == nil || len(path) != 0 {
		t.Fatalf("expected an empty non-nil path, got %v", path)
	}
}

func TestFindEdgeCases(t *testing.T) {
	g := buildGrid(4, [2]int{2, 2})

	cases := []struct {
		name  string
		start *grid.Node
		goal  *grid.Node
		want  int
	}{
		{"same node", g.Node(1, 1), g.Node(1, 1), 1},
		{"nil start", nil, g.Node(1, 1), 0},
		{"nil goal", g.Node(1, 1), nil, 0},
		{"barrier goal", g.Node(0, 0), g.Node(2, 2), 0},
		{"adjacent", g.Node(0, 0), g.Node(0, 1), 2},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := len(Find(g, c.start, c.goal)); got != c.want {
				t.Fatalf("expected %d nodes, got %d", c.want, got)
			}
		})
	}
}

func TestFindDeterministic(t *testing.T) {
	for seed := uint64(1); seed <= 5; seed++ {
		g := randomGrid(seed, 16, 0.25)
		rng := rand.New(rand.NewPCG(seed, 99))
		start, ok := g.RandomNode(rng, true)
		if !ok {
			continue
		}
		goal, _ := g.RandomNode(rng, true)

		first := Find(g, start, goal)
		for i := 0; i < 10; i++ {
			again := Find(g, start, goal)
			if len(again) != len(first) {
				t.Fatalf("seed %d: run %d length %d, first %d", seed, i, len(again), len(first))
			}
			for j := range first {
				if again[j] != first[j] {
					t.Fatalf("seed %d: run %d differs at %d", seed, i, j)
				}
			}
		}
	}
}

// cheapest computes the least cost from start to every node by repeated
// relaxation over the neighbor lists.
func cheapest(g *grid.Grid, start *grid.Node) map[*grid.Node]float64 {
	dist := map[*grid.Node]float64{start: 0}
	for changed := true; changed; {
		changed = false
		g.Each(func(n *grid.Node) {
			d, ok := dist[n]
			if !ok {
				return
			}
			for _, nb := range n.Neighbors {
				if cur, seen := dist[nb]; !seen || d+n.Weight < cur-1e-9 {
					dist[nb] = d + n.Weight
					changed = true
				}
			}
		})
	}
	return dist
}

func TestFindAdmissibleIsOptimal(t *testing.T) {
	pf := &Pathfinder{Heuristic: Admissible(grid.DefaultBaseWeight)}

	for seed := uint64(1); seed <= 20; seed++ {
		g := randomGrid(seed, 10, 0.3)
		rng := rand.New(rand.NewPCG(seed, 3))
		start, ok := g.RandomNode(rng, true)
		if !ok {
			continue
		}
		best := cheapest(g, start)

		for i := 0; i < 5; i++ {
			goal, _ := g.RandomNode(rng, true)
			path := pf.Find(g, start, goal)
			want, reachable := best[goal]

			if !reachable {
				if len(path) != 0 {
					t.Fatalf("seed %d: expected no path, got %d nodes", seed, len(path))
				}
				continue
			}
			assertConnected(t, path)
			if got := Cost(path); math.Abs(got-want) > 1e-9 {
				t.Fatalf("seed %d: path cost %.3f, cheapest %.3f", seed, got, want)
			}
		}
	}
}

func TestFindWeightBiasedNeverBeatsCheapest(t *testing.T) {
	for seed := uint64(1); seed <= 10; seed++ {
		g := randomGrid(seed, 10, 0.2)
		rng := rand.New(rand.NewPCG(seed, 5))
		start, ok := g.RandomNode(rng, true)
		if !ok {
			continue
		}
		goal, _ := g.RandomNode(rng, true)
		best := cheapest(g, start)

		path := Find(g, start, goal)
		want, reachable := best[goal]
		if reachable != (len(path) > 0) {
			t.Fatalf("seed %d: reachable %v but path length %d", seed, reachable, len(path))
		}
		if reachable && Cost(path) < want-1e-9 {
			t.Fatalf("seed %d: cost %.3f below the cheapest %.3f", seed, Cost(path), want)
		}
	}
}

func TestFindSingleCorridor(t *testing.T) {
	// Only one route exists, so both heuristics must return it.
	var walls [][2]int
	for col := 0; col < 5; col++ {
		walls = append(walls, [2]int{0, col}, [2]int{2, col})
	}
	g := buildGrid(5, walls...)
	start, goal := g.Node(1, 0), g.Node(1, 4)

	biased := Find(g, start, goal)
	admissible := (&Pathfinder{Heuristic: Admissible(1)}).Find(g, start, goal)
	if len(biased) != 5 || len(admissible) != 5 {
		t.Fatalf("expected 5 nodes, got %d and %d", len(biased), len(admissible))
	}
	if Cost(biased) != Cost(admissible) {
		t.Fatalf("costs differ: %.1f vs %.1f", Cost(biased), Cost(admissible))
	}
}

func TestCost(t *testing.T) {
	g := buildGrid(3)
	path := []*grid.Node{g.Node(0, 0), g.Node(0, 1), g.Node(0, 2)}
	if got := Cost(path); got != 2 {
		t.Fatalf("expected 2, got %v", got)
	}
	if got := Cost(nil); got != 0 {
		t.Fatalf("expected 0, got %v", got)
	}
}
