package components

import "github.com/yohamta/donburi"

// LevelCompleteData stores how a run ended
type LevelCompleteData struct {
	IsComplete bool
	Escaped    bool // reached an exit; otherwise caught
	Recorded   bool // run stats saved
}

var LevelComplete = donburi.NewComponentType[LevelCompleteData]()
