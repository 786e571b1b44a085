package components

import (
	"github.com/automoto/lurk/shared/detection"
	"github.com/yohamta/donburi"
)

type DetectionData struct {
	Resolver *detection.Resolver
	Result   detection.Result
	Detected bool
}

var Detection = donburi.NewComponentType[DetectionData]()
