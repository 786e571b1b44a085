package systems

import "testing"

func TestStatsHistoryRecord(t *testing.T) {
	var h StatsHistory
	runs := []RunStats{
		{Level: "warehouse", Frames: 900, Detections: 2},
		{Level: "warehouse", Frames: 1200, Detections: 1},
		{Level: "warehouse", Frames: 1000, Detections: 1},
		{Level: "warehouse", Frames: 500, Detections: 3},
	}
	for _, r := range runs {
		h.Record(r)
	}

	if h.Runs != 4 {
		t.Fatalf("expected 4 runs, got %d", h.Runs)
	}
	if h.Best != runs[2] {
		t.Fatalf("expected best %+v, got %+v", runs[2], h.Best)
	}
	if h.Last != runs[3] {
		t.Fatalf("expected last %+v, got %+v", runs[3], h.Last)
	}
	if h.TotalFrames != 3600 {
		t.Fatalf("expected 3600 total frames, got %d", h.TotalFrames)
	}
}

func TestCollectRunStats(t *testing.T) {
	w, level := newTestWorld(t, openRoom...)
	spawnAgent(t, w, level, "sentinel", 5, 2, 0)
	spawnPlayer(w, level, 5, 5)

	for i := 0; i < 3; i++ {
		step(w)
	}

	s := CollectRunStats(w)
	if s.Level != "test" || s.Frames != 3 {
		t.Fatalf("unexpected stats %+v", s)
	}
	if s.Detections != 1 || s.Alarms != 1 {
		t.Fatalf("expected one detection and one alarm, got %+v", s)
	}
	if s.Health != 5 {
		t.Fatalf("expected full health, got %d", s.Health)
	}
}
