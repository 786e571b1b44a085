package systems

import (
	"github.com/automoto/lurk/components"
	"github.com/automoto/lurk/shared/vision"
	"github.com/automoto/lurk/tags"
	"github.com/yohamta/donburi"
)

// UpdateVision casts the view fan of every agent from its current pose.
func UpdateVision(w donburi.World) {
	levelEntry, ok := components.Level.First(w)
	if !ok {
		return
	}
	g := components.Level.Get(levelEntry).Grid

	tags.Agent.Each(w, func(e *donburi.Entry) {
		m := components.Motion.Get(e)
		v := components.Vision.Get(e)
		v.Fan = vision.CastFan(g, m.Position, m.Angle, v.ConeAngle, v.Reach)
	})
}
