package components

import (
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Exposed       bool
	Exposers      map[string]bool // agent kinds that see the player this frame
	ExposedFrames int             // consecutive frames exposed
	Detections    int             // frames on which exposure started
}

var Player = donburi.NewComponentType[PlayerData]()
