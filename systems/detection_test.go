package systems

import (
	"testing"

	"github.com/automoto/lurk/components"
	cfg "github.com/automoto/lurk/config"
	"github.com/automoto/lurk/shared/detection"
)

func TestUpdateDetection(t *testing.T) {
	cases := []struct {
		name     string
		heading  float64
		col      int
		detected bool
		band     detection.ExposureBand
	}{
		{"facing, close", 0, 5, true, detection.BandSeen},
		{"facing, mid range", 0, 7, true, detection.BandSuspicious},
		{"facing away", 180, 5, false, detection.BandUnaware},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w, level := newTestWorld(t, openRoom...)
			e := spawnAgent(t, w, level, cfg.KindGuard, 5, 2, c.heading)
			p := spawnPlayer(w, level, 5, c.col)

			UpdateVision(w)
			UpdateDetection(w)

			detEntry, _ := components.Detection.First(w)
			det := components.Detection.Get(detEntry)
			if det.Detected != c.detected {
				t.Fatalf("expected detected=%v, got %v", c.detected, det.Detected)
			}
			agent := components.Agent.Get(e)
			if agent.SeesPlayer != c.detected || agent.Band != c.band {
				t.Fatalf("expected sees=%v band=%v, got sees=%v band=%v", c.detected, c.band, agent.SeesPlayer, agent.Band)
			}
			player := components.Player.Get(p)
			if player.Exposed != c.detected || player.Exposers[cfg.KindGuard] != c.detected {
				t.Fatalf("unexpected exposure %+v", player)
			}
			if c.detected {
				if agent.LastSeen != level.Grid.Node(5, c.col).Center() || agent.LostFrames != 0 {
					t.Fatalf("last seen not recorded: %+v", agent.LastSeen)
				}
			} else if agent.LostFrames != 1 {
				t.Fatalf("expected one lost frame, got %d", agent.LostFrames)
			}
		})
	}
}

func TestExposureDamage(t *testing.T) {
	w, level := newTestWorld(t, openRoom...)
	cfg.Player.DamageInterval = 10
	spawnAgent(t, w, level, cfg.KindGuard, 5, 2, 0)
	p := spawnPlayer(w, level, 5, 5)

	for i := 0; i < 25; i++ {
		UpdateVision(w)
		UpdateDetection(w)
	}

	player := components.Player.Get(p)
	if player.ExposedFrames != 25 || player.Detections != 1 {
		t.Fatalf("expected 25 exposed frames in one detection, got %+v", player)
	}
	health := components.Health.Get(p)
	if health.Current != cfg.Player.Health-2 {
		t.Fatalf("expected health %d, got %d", cfg.Player.Health-2, health.Current)
	}
}

func TestDetectionAttributesKinds(t *testing.T) {
	w, level := newTestWorld(t, openRoom...)
	spawnAgent(t, w, level, cfg.KindGuard, 5, 2, 0)
	spawnAgent(t, w, level, cfg.KindCivilian, 2, 5, 270)
	spawnAgent(t, w, level, cfg.KindSentinel, 8, 8, 0)
	p := spawnPlayer(w, level, 5, 5)

	UpdateVision(w)
	UpdateDetection(w)

	player := components.Player.Get(p)
	if !player.Exposers[cfg.KindGuard] || !player.Exposers[cfg.KindCivilian] {
		t.Fatalf("expected guard and civilian, got %v", player.Exposers)
	}
	if player.Exposers[cfg.KindSentinel] {
		t.Fatalf("sentinel faces away and must not be credited")
	}
}
