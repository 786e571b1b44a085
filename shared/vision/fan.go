package vision

import (
	"math"

	"github.com/automoto/lurk/shared/gamemath"
	"github.com/automoto/lurk/shared/grid"
	dmath "github.com/yohamta/donburi/features/math"
)

// Segment is one edge of a fan boundary.
type Segment struct {
	A, B dmath.Vec2
}

// Fan is the visible area of one agent: rays spread across the vision cone
// and the boundary they trace.
type Fan struct {
	Origin  dmath.Vec2
	Heading float64
	Cone    float64
	Reach   int

	Rays   []Ray
	Points []dmath.Vec2

	// Segments trace the boundary from the first to the last contact.
	// Contacts on the same grid line merge into one edge; every break
	// between edges is recorded as a (previous, current) pair.
	Segments []Segment
}

// CastFan casts one ray per degree from heading-cone/2 to heading+cone/2.
func CastFan(g *grid.Grid, origin dmath.Vec2, heading, cone float64, reach int) Fan {
	f := Fan{Origin: origin, Heading: heading, Cone: cone, Reach: reach}
	if g == nil || reach <= 0 {
		return f
	}

	count := int(math.Floor(cone)) + 1
	start := heading - cone/2
	f.Rays = make([]Ray, 0, count)
	f.Points = make([]dmath.Vec2, 0, count)
	for i := 0; i < count; i++ {
		r := CastRay(g, origin, gamemath.NormalizeDegrees(start+float64(i)), reach)
		f.Rays = append(f.Rays, r)
		f.Points = append(f.Points, r.Contact)
	}
	f.Segments = boundary(f.Rays)
	return f
}

func aligned(a, b Ray) bool {
	return a.Axis != AxisNone && a.Axis == b.Axis && a.Line == b.Line
}

func boundary(rays []Ray) []Segment {
	if len(rays) < 2 {
		return nil
	}
	var segs []Segment
	edgeStart := rays[0].Contact
	for i := 1; i < len(rays); i++ {
		prev, cur := rays[i-1], rays[i]
		if aligned(prev, cur) {
			continue
		}
		if edgeStart != prev.Contact {
			segs = append(segs, Segment{A: edgeStart, B: prev.Contact})
		}
		segs = append(segs, Segment{A: prev.Contact, B: cur.Contact})
		edgeStart = cur.Contact
	}
	last := rays[len(rays)-1].Contact
	if edgeStart != last {
		segs = append(segs, Segment{A: edgeStart, B: last})
	}
	return segs
}

// Polygon returns the closed fan outline: the origin followed by every
// contact point.
func (f Fan) Polygon() []dmath.Vec2 {
	if len(f.Points) == 0 {
		return nil
	}
	poly := make([]dmath.Vec2, 0, len(f.Points)+1)
	poly = append(poly, f.Origin)
	return append(poly, f.Points...)
}

// Bounds returns the axis-aligned bounding box of the fan polygon.
func (f Fan) Bounds() gamemath.Rect {
	minX, minY := f.Origin.X, f.Origin.Y
	maxX, maxY := minX, minY
	for _, p := range f.Points {
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}
	return gamemath.Rect{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
}

// Empty reports whether the fan has no area.
func (f Fan) Empty() bool {
	return len(f.Points) < 2
}
