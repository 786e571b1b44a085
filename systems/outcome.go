package systems

import (
	"github.com/automoto/lurk/components"
	"github.com/automoto/lurk/logger"
	"github.com/automoto/lurk/tags"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
)

// UpdateOutcome ends the run when the player dies or stands on an exit.
func UpdateOutcome(w donburi.World) {
	complete := GetOrCreateLevelComplete(w)
	if complete.IsComplete {
		return
	}
	playerEntry, ok := tags.Player.First(w)
	if !ok {
		return
	}
	levelEntry, ok := components.Level.First(w)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry)

	if components.Health.Get(playerEntry).Dead() {
		complete.IsComplete = true
	} else {
		c := components.Object.Get(playerEntry).Rect().Center()
		n, err := level.Grid.NodeAt(c.X, c.Y)
		if err != nil || !n.IsExit {
			return
		}
		complete.IsComplete = true
		complete.Escaped = true
	}

	logger.Log.WithFields(logrus.Fields{
		"frame":   level.Frame,
		"escaped": complete.Escaped,
	}).Info("run over")
}

// GetOrCreateLevelComplete returns the singleton LevelComplete component,
// creating if needed.
func GetOrCreateLevelComplete(w donburi.World) *components.LevelCompleteData {
	entry, ok := components.LevelComplete.First(w)
	if !ok {
		entry = w.Entry(w.Create(components.LevelComplete))
	}
	return components.LevelComplete.Get(entry)
}

// GetOrCreatePause returns the singleton Pause component, creating if
// needed.
func GetOrCreatePause(w donburi.World) *components.PauseData {
	entry, ok := components.Pause.First(w)
	if !ok {
		entry = w.Entry(w.Create(components.Pause))
	}
	return components.Pause.Get(entry)
}

// WithGameplayChecks skips system while paused or after the run ended.
func WithGameplayChecks(system func(donburi.World)) func(donburi.World) {
	return func(w donburi.World) {
		if GetOrCreatePause(w).IsPaused || GetOrCreateLevelComplete(w).IsComplete {
			return
		}
		system(w)
	}
}
