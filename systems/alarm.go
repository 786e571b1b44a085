package systems

import (
	"github.com/automoto/lurk/components"
	cfg "github.com/automoto/lurk/config"
	"github.com/automoto/lurk/logger"
	"github.com/automoto/lurk/shared/gamemath"
	"github.com/automoto/lurk/tags"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
)

// UpdateAlarm raises alarms reported by agents on the previous frame,
// notifies agents in range and counts down the active alarm.
func UpdateAlarm(w donburi.World) {
	alarmEntry, ok := components.Alarm.First(w)
	if !ok {
		return
	}
	alarm := components.Alarm.Get(alarmEntry)

	if alarm.Pending {
		alarm.Pending = false
		if !alarm.Active {
			alarm.Raised++
		}
		alarm.Active = true
		alarm.FramesLeft = cfg.Alarm.DurationFrames
		alarm.Position = alarm.PendingAt
		alarm.RaisedBy = alarm.PendingBy
		logger.Log.WithFields(logrus.Fields{
			"by": alarm.RaisedBy,
			"x":  alarm.Position.X,
			"y":  alarm.Position.Y,
		}).Info("alarm raised")
		notifyAgents(w, alarm)
		return
	}

	if !alarm.Active {
		return
	}
	alarm.FramesLeft--
	if alarm.FramesLeft <= 0 {
		alarm.Active = false
		alarm.FramesLeft = 0
		logger.Log.Info("alarm cleared")
	}
}

func notifyAgents(w donburi.World, alarm *components.AlarmData) {
	levelEntry, ok := components.Level.First(w)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry)
	radius := cfg.Alarm.NotifyRadius

	tags.Agent.Each(w, func(e *donburi.Entry) {
		a := newAgentContext(w, e, level)
		if radius > 0 && gamemath.Distance(a.Motion.Position, alarm.Position) > radius {
			return
		}
		PolicyFor(a.Agent.Kind).Notified(a, alarm.Position)
	})
}
