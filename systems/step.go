package systems

import "github.com/yohamta/donburi"

// FrameSystems lists the simulation systems in the order one frame runs
// them. Detection output is read by agents on the following frame.
var FrameSystems = []func(donburi.World){
	UpdatePlayer,
	UpdateAlarm,
	UpdateAgents,
	UpdateVision,
	UpdateDetection,
}

// Step advances the world by one frame.
func Step(w donburi.World) {
	for _, system := range FrameSystems {
		system(w)
	}
}
