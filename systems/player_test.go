package systems

import (
	"testing"

	"github.com/automoto/lurk/components"
	cfg "github.com/automoto/lurk/config"
	dmath "github.com/yohamta/donburi/features/math"
)

func TestPlayerMovement(t *testing.T) {
	cases := []struct {
		name  string
		col   int
		move  dmath.Vec2
		check func(obj *components.ObjectData) bool
	}{
		{
			name: "free move",
			col:  4,
			move: dmath.Vec2{X: 1},
			check: func(obj *components.ObjectData) bool {
				return obj.Rect().Center().X == 144+10*cfg.Player.Speed
			},
		},
		{
			name: "stops at the wall",
			col:  1,
			move: dmath.Vec2{X: -1},
			check: func(obj *components.ObjectData) bool {
				return obj.X >= 32
			},
		},
		{
			name: "diagonal is normalised",
			col:  4,
			move: dmath.Vec2{X: 1, Y: 1},
			check: func(obj *components.ObjectData) bool {
				c := obj.Rect().Center()
				d := (c.X-144)*(c.X-144) + (c.Y-176)*(c.Y-176)
				want := 10 * cfg.Player.Speed
				return d < want*want+1e-6 && d > want*want-1e-6
			},
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w, level := newTestWorld(t, openRoom...)
			p := spawnPlayer(w, level, 5, c.col)
			components.PlayerInput.Get(p).Move = c.move
			for i := 0; i < 10; i++ {
				UpdatePlayer(w)
			}
			obj := components.Object.Get(p)
			if !c.check(obj) {
				t.Fatalf("unexpected player rect %+v", obj.Rect())
			}
		})
	}
}

func TestPlayerBlockedByAgent(t *testing.T) {
	w, level := newTestWorld(t, openRoom...)
	spawnAgent(t, w, level, cfg.KindGuard, 5, 4, 90)
	p := spawnPlayer(w, level, 5, 2)
	components.PlayerInput.Get(p).Move = dmath.Vec2{X: 1}

	for i := 0; i < 30; i++ {
		UpdatePlayer(w)
	}

	obj := components.Object.Get(p)
	agentLeft := level.Grid.Node(5, 4).X - cfg.Agents.Types[cfg.KindGuard].CollisionSize/2
	if obj.X+obj.W > agentLeft {
		t.Fatalf("player overlaps the agent: right edge %v, agent at %v", obj.X+obj.W, agentLeft)
	}
	if obj.X+obj.W < agentLeft-cfg.Player.Speed {
		t.Fatalf("player stopped short: right edge %v, agent at %v", obj.X+obj.W, agentLeft)
	}
}

func TestDeadPlayerDoesNotMove(t *testing.T) {
	w, level := newTestWorld(t, openRoom...)
	p := spawnPlayer(w, level, 5, 4)
	components.Health.Get(p).Current = 0
	components.PlayerInput.Get(p).Move = dmath.Vec2{X: 1}
	before := components.Object.Get(p).X

	UpdatePlayer(w)
	if components.Object.Get(p).X != before {
		t.Fatalf("dead player moved")
	}
}
