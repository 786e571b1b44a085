package main

import (
	"os"
	"testing"

	"github.com/automoto/lurk/assets"
	"github.com/automoto/lurk/components"
	"github.com/automoto/lurk/config"
	"github.com/automoto/lurk/logger"
	"github.com/automoto/lurk/tags"
)

func TestMain(m *testing.M) {
	logger.Silence()
	os.Exit(m.Run())
}

func TestRouteVisitsKeysThenExit(t *testing.T) {
	t.Cleanup(config.Reset)
	m := assets.NewLevelLoader().MustLoadLevel("levels/warehouse.yaml")
	sim, err := NewSimulation(m)
	if err != nil {
		t.Fatalf("new simulation: %v", err)
	}

	g := sim.level.Grid
	last := sim.Driver.Waypoints[len(sim.Driver.Waypoints)-1]
	n, err := g.NodeAt(last.X, last.Y)
	if err != nil || !n.IsExit {
		t.Fatalf("route should end on an exit, ends at %v", last)
	}
	for _, key := range g.KeyNodes() {
		found := false
		for _, wp := range sim.Driver.Waypoints {
			if wp == key.Center() {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("route skips key at (%d,%d)", key.Row, key.Col)
		}
	}
}

func TestUnwatchedPlayerEscapes(t *testing.T) {
	t.Cleanup(config.Reset)
	m := assets.NewLevelLoader().MustLoadLevel("levels/warehouse.yaml")
	empty := *m
	empty.Agents = nil

	sim, err := NewSimulation(&empty)
	if err != nil {
		t.Fatalf("new simulation: %v", err)
	}
	loop := NewLoop(sim, 6000)
	loop.Run()

	if !sim.Escaped() {
		t.Fatalf("player did not reach an exit in %d frames", sim.Frame())
	}
	playerEntry, _ := tags.Player.First(sim.World)
	if p := components.Player.Get(playerEntry); p.Detections != 0 {
		t.Fatalf("no agents, expected no detections, got %d", p.Detections)
	}
}

func TestLoopStops(t *testing.T) {
	t.Cleanup(config.Reset)
	m := assets.NewLevelLoader().MustLoadLevel("levels/warehouse.yaml")
	sim, err := NewSimulation(m)
	if err != nil {
		t.Fatalf("new simulation: %v", err)
	}
	loop := NewLoop(sim, 1000)
	loop.Stop()
	loop.Run()
	if sim.Frame() != 0 {
		t.Fatalf("stopped loop ran %d frames", sim.Frame())
	}
}

func TestNavGridMatchesBarriers(t *testing.T) {
	t.Cleanup(config.Reset)
	m := assets.NewLevelLoader().MustLoadLevel("levels/warehouse.yaml")
	g := m.Build(config.Grid.Gap)
	nav := CreateNavGrid(g.Space(), g.Size, g.Gap)

	for row := 0; row < g.Size; row++ {
		for col := 0; col < g.Size; col++ {
			if got, want := nav.Nodes[row][col].Walkable, !g.Node(row, col).IsBarrier; got != want {
				t.Fatalf("(%d,%d) walkable = %v, want %v", row, col, got, want)
			}
		}
	}
}

func TestNavGridNoCornerCutting(t *testing.T) {
	nav := &NavGrid{Width: 3, Height: 3, CellSize: 32}
	nav.Nodes = make([][]*NavNode, 3)
	for y := range nav.Nodes {
		nav.Nodes[y] = make([]*NavNode, 3)
		for x := range nav.Nodes[y] {
			nav.Nodes[y][x] = &NavNode{X: x, Y: y, Walkable: true, Grid: nav}
		}
	}
	nav.Nodes[0][1].Walkable = false

	path := nav.FindPath(16, 16, 80, 16)
	if len(path) == 0 {
		t.Fatalf("expected a path around the block")
	}
	if first, last := path[0], path[len(path)-1]; first.X != 0 || first.Y != 0 || last.X != 2 || last.Y != 0 {
		t.Fatalf("path should run start to goal, got %v..%v", *first, *last)
	}
	for i := 1; i < len(path); i++ {
		a, b := path[i-1], path[i]
		if a.X != b.X && a.Y != b.Y && (!nav.Nodes[a.Y][b.X].Walkable || !nav.Nodes[b.Y][a.X].Walkable) {
			t.Fatalf("diagonal step %v -> %v cuts a corner", *a, *b)
		}
	}
}
