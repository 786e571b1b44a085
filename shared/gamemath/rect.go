package gamemath

import dmath "github.com/yohamta/donburi/features/math"

// Rect is an axis-aligned rectangle in world units. X, Y is the top-left
// corner.
type Rect struct {
	X, Y, W, H float64
}

// RectAround returns a rect of the given size centred on c.
func RectAround(c dmath.Vec2, w, h float64) Rect {
	return Rect{X: c.X - w/2, Y: c.Y - h/2, W: w, H: h}
}

// Center returns the centre point of r.
func (r Rect) Center() dmath.Vec2 {
	return dmath.Vec2{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Overlaps reports whether the interiors of r and o intersect. Rects that
// only share an edge do not overlap.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.X+o.W && o.X < r.X+r.W &&
		r.Y < o.Y+o.H && o.Y < r.Y+r.H
}

// Translate returns r moved by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, W: r.W, H: r.H}
}
