package components

import (
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// PlayerInputData is the per-frame movement request for the player,
// supplied by the window input or a scripted driver.
type PlayerInputData struct {
	Move dmath.Vec2 // each axis in [-1, 1]
}

var PlayerInput = donburi.NewComponentType[PlayerInputData]()
