package gamemath

import (
	"math"

	dmath "github.com/yohamta/donburi/features/math"
)

// Angles are degrees in screen space: 0 points east, 90 points up (north)
// and values grow counter-clockwise as seen on screen. Screen y grows
// downward, so the y component is mirrored against the usual math frame.

// Radians converts degrees to radians.
func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// Degrees converts radians to degrees.
func Degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}

// NormalizeDegrees wraps an angle into [0, 360).
func NormalizeDegrees(a float64) float64 {
	a = math.Mod(a, 360)
	if a < 0 {
		a += 360
	}
	return a
}

// AngleDelta returns the signed shortest rotation from one heading to
// another, in (-180, 180].
func AngleDelta(from, to float64) float64 {
	d := NormalizeDegrees(to - from)
	if d > 180 {
		d -= 360
	}
	return d
}

// AngleDiff returns the absolute shortest rotation between two headings.
func AngleDiff(a, b float64) float64 {
	return math.Abs(AngleDelta(a, b))
}

// Bearing returns the heading from one point toward another.
func Bearing(from, to dmath.Vec2) float64 {
	return NormalizeDegrees(Degrees(math.Atan2(-(to.Y - from.Y), to.X-from.X)))
}

// HeadingVector returns the engine heading vector for an angle. It points
// backwards along the heading: movement is applied as position -= v * speed.
func HeadingVector(angle float64) (x, y float64) {
	sin, cos := math.Sincos(Radians(angle))
	return -cos, sin
}

// Direction returns the unit screen-space vector pointing along a heading.
func Direction(angle float64) (x, y float64) {
	sin, cos := math.Sincos(Radians(angle))
	return cos, -sin
}

// Distance is the Euclidean distance between two points.
func Distance(a, b dmath.Vec2) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// Chebyshev is the larger of the per-axis distances between two points.
func Chebyshev(a, b dmath.Vec2) float64 {
	return math.Max(math.Abs(b.X-a.X), math.Abs(b.Y-a.Y))
}
