// Package vision casts line-of-sight rays against grid barriers and builds
// the fan-shaped visible area of an agent.
package vision

import (
	"math"

	"github.com/automoto/lurk/shared/gamemath"
	"github.com/automoto/lurk/shared/grid"
	dmath "github.com/yohamta/donburi/features/math"
)

// Epsilon is added to angles lying exactly on an axis so that neither
// candidate march divides by zero.
const Epsilon = 1e-4

// Axis names the family of grid lines a candidate crosses.
type Axis int

const (
	// AxisNone marks a contact that stopped at the reach limit.
	AxisNone Axis = iota
	// AxisHorizontal is a crossing of a horizontal grid line (constant y).
	AxisHorizontal
	// AxisVertical is a crossing of a vertical grid line (constant x).
	AxisVertical
)

// Candidate is the first barrier contact found by marching along one family
// of grid lines.
type Candidate struct {
	Point dmath.Vec2
	Dist  float64
	Axis  Axis
	Line  int        // index of the crossed grid line
	Hit   bool       // false when the march ran out of reach
	Node  *grid.Node // barrier that stopped the march, nil off-grid or on a miss
}

// Ray is the resolved contact of one ray.
type Ray struct {
	Angle   float64
	Contact dmath.Vec2
	Dist    float64
	Axis    Axis
	Line    int
	Hit     bool
}

// nudge moves angles that lie exactly on an axis off it.
func nudge(angle float64) float64 {
	if math.Mod(gamemath.NormalizeDegrees(angle), 90) == 0 {
		return angle + Epsilon
	}
	return angle
}

// Candidates returns the horizontal-line and vertical-line contacts of a ray
// cast from origin at angle (degrees). Each march crosses at most reach+1
// lines, enough to pass reach cells from any origin inside a cell, so a
// candidate that did not hit lies at or beyond the reach distance.
func Candidates(g *grid.Grid, origin dmath.Vec2, angle float64, reach int) (horizontal, vertical Candidate) {
	angle = nudge(angle)
	dx, dy := gamemath.Direction(angle)
	return marchHorizontal(g, origin, dx, dy, reach), marchVertical(g, origin, dx, dy, reach)
}

// CastRay returns the nearer of the two candidates, clamped to reach cells.
func CastRay(g *grid.Grid, origin dmath.Vec2, angle float64, reach int) Ray {
	h, v := Candidates(g, origin, angle, reach)
	best := h
	if v.Dist < h.Dist {
		best = v
	}

	ray := Ray{
		Angle:   angle,
		Contact: best.Point,
		Dist:    best.Dist,
		Axis:    best.Axis,
		Line:    best.Line,
		Hit:     best.Hit,
	}

	limit := float64(reach) * g.Gap
	if ray.Dist > limit {
		dx, dy := gamemath.Direction(nudge(angle))
		ray.Contact = dmath.Vec2{X: origin.X + dx*limit, Y: origin.Y + dy*limit}
		ray.Dist = limit
		ray.Axis = AxisNone
		ray.Line = -1
		ray.Hit = false
	}
	return ray
}

// marchHorizontal steps from one horizontal grid line to the next.
func marchHorizontal(g *grid.Grid, origin dmath.Vec2, dx, dy float64, reach int) Candidate {
	gap := g.Gap
	line := int(math.Floor(origin.Y / gap))
	step, rowOffset := -1, -1
	if dy > 0 {
		line++
		step, rowOffset = 1, 0
	}
	slope := dx / dy

	var c Candidate
	for i := 0; i <= reach; i++ {
		y := float64(line) * gap
		x := origin.X + (y-origin.Y)*slope
		c = candidate(origin, x, y, AxisHorizontal, line)

		row := line + rowOffset
		col := int(math.Floor(x / gap))
		if blocked(g, row, col, &c) {
			return c
		}
		line += step
	}
	return c
}

// marchVertical steps from one vertical grid line to the next.
func marchVertical(g *grid.Grid, origin dmath.Vec2, dx, dy float64, reach int) Candidate {
	gap := g.Gap
	line := int(math.Floor(origin.X / gap))
	step, colOffset := -1, -1
	if dx > 0 {
		line++
		step, colOffset = 1, 0
	}
	slope := dy / dx

	var c Candidate
	for i := 0; i <= reach; i++ {
		x := float64(line) * gap
		y := origin.Y + (x-origin.X)*slope
		c = candidate(origin, x, y, AxisVertical, line)

		col := line + colOffset
		row := int(math.Floor(y / gap))
		if blocked(g, row, col, &c) {
			return c
		}
		line += step
	}
	return c
}

func candidate(origin dmath.Vec2, x, y float64, axis Axis, line int) Candidate {
	p := dmath.Vec2{X: x, Y: y}
	return Candidate{Point: p, Dist: gamemath.Distance(origin, p), Axis: axis, Line: line}
}

// blocked reports whether the cell behind a crossing stops the ray. Leaving
// the grid counts as a hit.
func blocked(g *grid.Grid, row, col int, c *Candidate) bool {
	n := g.Node(row, col)
	if n == nil {
		c.Hit = true
		return true
	}
	if n.IsBarrier {
		c.Hit = true
		c.Node = n
		return true
	}
	return false
}
