package components

import (
	"github.com/automoto/lurk/shared/vision"
	"github.com/yohamta/donburi"
)

type VisionData struct {
	ConeAngle  float64 // degrees
	Reach      int     // grid cells
	NearRadius float64 // world units seen regardless of barriers
	Fan        vision.Fan
}

var Vision = donburi.NewComponentType[VisionData]()
