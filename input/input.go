package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	dmath "github.com/yohamta/donburi/features/math"
)

// ActionState is the pressed state of one action for the current frame.
type ActionState struct {
	Pressed      bool
	JustPressed  bool
	JustReleased bool
}

// State holds two frames of polled actions plus the analog stick.
type State struct {
	Current  [ActionCount]bool
	Previous [ActionCount]bool
	Stick    dmath.Vec2
}

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// Poll swaps the frame buffers and reads every binding.
func (s *State) Poll() {
	s.Previous = s.Current
	s.Current = [ActionCount]bool{}
	s.Stick = dmath.Vec2{}

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	for actionID, binding := range Bindings.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				s.Current[actionID] = true
			}
		}

		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					s.Current[actionID] = true
				}
			}
		}
	}

	s.Stick = analogStick(gamepadIDs)
}

// analogStick returns the first left stick deflection outside the deadzone.
func analogStick(gamepads []ebiten.GamepadID) dmath.Vec2 {
	deadzone := Bindings.AnalogDeadzone
	for _, gpID := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		horizontal := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		vertical := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)
		if horizontal*horizontal+vertical*vertical < deadzone*deadzone {
			continue
		}
		return dmath.Vec2{X: horizontal, Y: vertical}
	}
	return dmath.Vec2{}
}

// Action returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func (s *State) Action(id ActionID) ActionState {
	curr := s.Current[id]
	prev := s.Previous[id]
	return ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}

// Move returns the movement vector, each axis in [-1, 1]. The analog stick
// wins over digital input when deflected.
func (s *State) Move() dmath.Vec2 {
	if s.Stick != (dmath.Vec2{}) {
		return s.Stick
	}
	var m dmath.Vec2
	if s.Current[ActionMoveLeft] {
		m.X--
	}
	if s.Current[ActionMoveRight] {
		m.X++
	}
	if s.Current[ActionMoveUp] {
		m.Y--
	}
	if s.Current[ActionMoveDown] {
		m.Y++
	}
	return m
}
