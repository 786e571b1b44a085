package components

import (
	"github.com/automoto/lurk/config"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

type MotionData struct {
	Position dmath.Vec2
	Angle    float64 // degrees, 0 east, counter-clockwise on screen

	// Rotation tween, active while aligning or sweeping
	Turn        *gween.Tween
	ResumeState config.AgentStateID // state restored when aligning ends
	SweepLeft   bool
}

var Motion = donburi.NewComponentType[MotionData]()
