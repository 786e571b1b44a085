package components

import (
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

type AlarmData struct {
	Active     bool
	Position   dmath.Vec2 // where the player was reported
	FramesLeft int
	RaisedBy   string // kind of the agent that raised it
	Raised     int    // total alarms this run

	// Set by agents during the update pass, consumed by UpdateAlarm on the
	// next frame.
	Pending   bool
	PendingAt dmath.Vec2
	PendingBy string
}

var Alarm = donburi.NewComponentType[AlarmData]()
