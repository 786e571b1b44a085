package assets

import (
	"testing"

	"github.com/automoto/lurk/config"
)

func TestBuiltinLevelsLoad(t *testing.T) {
	levels := NewLevelLoader().MustLoadLevels()
	if len(levels) != 2 {
		t.Fatalf("expected 2 levels, got %d", len(levels))
	}
	if levels[0].Name != "vault" || levels[1].Name != "warehouse" {
		t.Fatalf("unexpected level order: %s, %s", levels[0].Name, levels[1].Name)
	}
}

func TestDefaultLevelIsPlayable(t *testing.T) {
	m := NewLevelLoader().MustLoadLevel(config.C.Level)
	g := m.Build(config.Grid.Gap)

	spawn := g.Node(m.PlayerSpawn.Row, m.PlayerSpawn.Col)
	if spawn == nil || spawn.IsBarrier {
		t.Fatalf("player spawn is blocked")
	}
	// The floating tile opens the west door between zones 1 and 3.
	if door := g.Node(9, 4); door.IsBarrier {
		t.Fatalf("floating tile should open (9,4)")
	}
	if len(g.ExitNodes()) != 2 || len(g.KeyNodes()) != 2 {
		t.Fatalf("expected 2 exits and 2 keys, got %d and %d", len(g.ExitNodes()), len(g.KeyNodes()))
	}
	for _, a := range m.Agents {
		if n := g.Node(a.Row, a.Col); n == nil || n.IsBarrier {
			t.Fatalf("%s spawn at (%d,%d) is blocked", a.Kind, a.Row, a.Col)
		}
		if _, ok := config.Agents.Types[a.Kind]; !ok {
			t.Fatalf("unknown agent kind %q", a.Kind)
		}
	}
	for _, z := range []int{1, 2, 3, 4} {
		if len(g.ZoneNodes(z)) == 0 {
			t.Fatalf("zone %d is empty", z)
		}
	}
}
