package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadOverridesPartialSections(t *testing.T) {
	t.Cleanup(Reset)

	doc := []byte(`
grid:
  barrier_weight: 9
smoother:
  fast_segments: 2
agents:
  guard:
    chase_cone: 25
`)
	if err := LoadOverrides(doc); err != nil {
		t.Fatalf("LoadOverrides: %v", err)
	}

	if Grid.BarrierWeight != 9 {
		t.Fatalf("expected barrier weight 9, got %v", Grid.BarrierWeight)
	}
	if Grid.Gap != 32 {
		t.Fatalf("gap should keep its default, got %v", Grid.Gap)
	}
	if Smoother.Segments != 8 || Smoother.FastSegments != 2 {
		t.Fatalf("unexpected smoother %+v", Smoother)
	}
	guard := Agents.Types[KindGuard]
	if guard.ChaseCone != 25 {
		t.Fatalf("expected chase cone 25, got %v", guard.ChaseCone)
	}
	if guard.PatrolCone != 70 || guard.Color != Blue {
		t.Fatalf("untouched guard fields changed: %+v", guard)
	}
	if Agents.Types[KindCivilian].FleeSpeed != 2.4 {
		t.Fatalf("other kinds must be untouched")
	}
}

func TestLoadOverridesRejectsBadInput(t *testing.T) {
	t.Cleanup(Reset)

	cases := []struct {
		name string
		doc  string
	}{
		{"syntax", "grid: [1, 2"},
		{"unknown kind", "agents:\n  ninja:\n    speed: 3\n"},
		{"zero gap", "grid:\n  gap: 0\n"},
		{"zero segments", "smoother:\n  segments: 0\n"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			before := Grid
			if err := LoadOverrides([]byte(c.doc)); err == nil {
				t.Fatalf("expected an error")
			}
			if Grid != before || Smoother.Segments != 8 {
				t.Fatalf("globals changed after a failed load")
			}
		})
	}
}

func TestLoadOverridesFile(t *testing.T) {
	t.Cleanup(Reset)

	path := filepath.Join(t.TempDir(), "tuning.yaml")
	if err := os.WriteFile(path, []byte("game:\n  tick_rate: 30\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := LoadOverridesFile(path); err != nil {
		t.Fatalf("LoadOverridesFile: %v", err)
	}
	if C.TickRate != 30 || C.Width != 960 {
		t.Fatalf("unexpected game config %+v", *C)
	}
}

func TestStateNames(t *testing.T) {
	if StateChasing.String() != "chasing" || AgentStateID(99).String() != "unknown" {
		t.Fatalf("unexpected state names")
	}
}

func TestWatcherReportsYAMLWrites(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	target := filepath.Join(dir, "tuning.yaml")
	if err := os.WriteFile(target, []byte("grid: {}\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case name := <-w.Events:
		if name != target {
			t.Fatalf("expected %s, got %s", target, name)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("no event for the YAML write")
	}
}
