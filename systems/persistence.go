package systems

import (
	"encoding/json"

	"github.com/automoto/lurk/components"
	"github.com/automoto/lurk/logger"
	"github.com/automoto/lurk/tags"
	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi"
)

// RunStats summarises one run on a level.
type RunStats struct {
	Level      string `json:"level"`
	Frames     int    `json:"frames"`
	Detections int    `json:"detections"`
	Alarms     int    `json:"alarms"`
	Health     int    `json:"health"`
}

// StatsHistory is the per-level record kept on disk.
type StatsHistory struct {
	Runs        int      `json:"runs"`
	Best        RunStats `json:"best"` // fewest detections, then fewest frames
	Last        RunStats `json:"last"`
	TotalFrames int      `json:"totalFrames"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for run statistics
func InitPersistence(appName string) error {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		logger.Log.WithError(err).Warn("could not initialize persistence")
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// CollectRunStats reads the current run's counters from the world.
func CollectRunStats(w donburi.World) RunStats {
	var s RunStats
	if levelEntry, ok := components.Level.First(w); ok {
		level := components.Level.Get(levelEntry)
		s.Frames = level.Frame
		if level.Map != nil {
			s.Level = level.Map.Name
		}
	}
	if alarmEntry, ok := components.Alarm.First(w); ok {
		s.Alarms = components.Alarm.Get(alarmEntry).Raised
	}
	if playerEntry, ok := tags.Player.First(w); ok {
		s.Detections = components.Player.Get(playerEntry).Detections
		if playerEntry.HasComponent(components.Health) {
			s.Health = components.Health.Get(playerEntry).Current
		}
	}
	return s
}

func statsKey(level string) string {
	return "stats_" + level
}

// LoadStatsHistory loads the record of a level. A missing record is not an
// error.
func LoadStatsHistory(level string) (*StatsHistory, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem(statsKey(level))
	if err != nil {
		logger.Log.WithError(err).Warn("could not load run stats")
		return nil, nil
	}
	if len(data) == 0 {
		return nil, nil
	}

	var h StatsHistory
	if err := json.Unmarshal(data, &h); err != nil {
		logger.Log.WithError(err).Warn("could not parse run stats")
		return nil, err
	}
	return &h, nil
}

// Record folds a finished run into the history.
func (h *StatsHistory) Record(s RunStats) {
	if h.Runs == 0 || betterRun(s, h.Best) {
		h.Best = s
	}
	h.Runs++
	h.Last = s
	h.TotalFrames += s.Frames
}

func betterRun(a, b RunStats) bool {
	if a.Detections != b.Detections {
		return a.Detections < b.Detections
	}
	return a.Frames < b.Frames
}

// SaveRunStats records s in its level's history on disk.
func SaveRunStats(s RunStats) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	h, err := LoadStatsHistory(s.Level)
	if err != nil || h == nil {
		h = &StatsHistory{}
	}
	h.Record(s)

	data, err := json.Marshal(h)
	if err != nil {
		logger.Log.WithError(err).Warn("could not serialize run stats")
		return err
	}
	if err := gdataManager.SaveItem(statsKey(s.Level), data); err != nil {
		logger.Log.WithError(err).Warn("could not save run stats")
		return err
	}
	return nil
}
