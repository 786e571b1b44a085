package vision

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/automoto/lurk/shared/gamemath"
	"github.com/automoto/lurk/shared/grid"
	dmath "github.com/yohamta/donburi/features/math"
)

const testGap = 16.0

func openGrid(size int) *grid.Grid {
	g := grid.New(size, testGap)
	g.Finalize()
	return g
}

func finite(p dmath.Vec2) bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}

func TestCandidatesOnAxes(t *testing.T) {
	g := openGrid(12)
	origin := g.Node(6, 6).Center()

	for _, angle := range []float64{0, 90, 180, 270, 360, -90} {
		h, v := Candidates(g, origin, angle, 6)
		if !finite(h.Point) || math.IsNaN(h.Dist) || math.IsInf(h.Dist, 0) {
			t.Fatalf("angle %v: horizontal candidate not finite: %+v", angle, h)
		}
		if !finite(v.Point) || math.IsNaN(v.Dist) || math.IsInf(v.Dist, 0) {
			t.Fatalf("angle %v: vertical candidate not finite: %+v", angle, v)
		}
		r := CastRay(g, origin, angle, 6)
		if !finite(r.Contact) {
			t.Fatalf("angle %v: contact not finite: %+v", angle, r)
		}
	}
}

func TestFanHeadingZeroCone60(t *testing.T) {
	g := openGrid(12)
	origin := g.Node(6, 6).Center()

	fan := CastFan(g, origin, 0, 60, 6)
	if len(fan.Rays) != 61 {
		t.Fatalf("expected 61 rays, got %d", len(fan.Rays))
	}
	limit := 6 * testGap
	for _, r := range fan.Rays {
		if !finite(r.Contact) {
			t.Fatalf("ray %v: contact not finite", r.Angle)
		}
		if r.Dist > limit+1e-9 {
			t.Fatalf("ray %v: distance %v beyond reach %v", r.Angle, r.Dist, limit)
		}
	}

	// Relative offsets of +90 and -90 degrees from a zero heading.
	for _, angle := range []float64{90, 270} {
		h, v := Candidates(g, origin, angle, 6)
		if !finite(h.Point) || !finite(v.Point) {
			t.Fatalf("angle %v: expected two finite candidates", angle)
		}
	}
}

func TestCastRayStopsAtWall(t *testing.T) {
	g := grid.New(12, testGap)
	for row := 0; row < 12; row++ {
		g.SetBarrier(row, 8, true)
	}
	g.Finalize()
	origin := g.Node(5, 5).Center()

	r := CastRay(g, origin, 0, 10)
	if !r.Hit || r.Axis != AxisVertical || r.Line != 8 {
		t.Fatalf("expected a vertical hit on line 8, got %+v", r)
	}
	if math.Abs(r.Contact.X-8*testGap) > 1e-6 {
		t.Fatalf("expected contact at x=%v, got %v", 8*testGap, r.Contact.X)
	}
	want := 8*testGap - origin.X
	if math.Abs(r.Dist-want) > 1e-3 {
		t.Fatalf("expected distance %v, got %v", want, r.Dist)
	}
}

func TestCastRayClampedToReach(t *testing.T) {
	g := openGrid(30)
	origin := g.Node(15, 15).Center()

	for _, angle := range []float64{0, 33, 125, 200, 270} {
		r := CastRay(g, origin, angle, 4)
		if r.Hit || r.Axis != AxisNone {
			t.Fatalf("angle %v: expected a miss, got %+v", angle, r)
		}
		if math.Abs(r.Dist-4*testGap) > 1e-9 {
			t.Fatalf("angle %v: expected distance %v, got %v", angle, 4*testGap, r.Dist)
		}
	}
}

func TestCastRayGridEdgeIsWall(t *testing.T) {
	g := openGrid(5)
	origin := g.Node(2, 2).Center()

	r := CastRay(g, origin, 0, 10)
	if !r.Hit {
		t.Fatalf("expected the grid edge to stop the ray")
	}
	if math.Abs(r.Contact.X-5*testGap) > 1e-6 {
		t.Fatalf("expected contact at the grid edge, got %v", r.Contact.X)
	}
}

func TestRaysNeverPassBarriers(t *testing.T) {
	for seed := uint64(1); seed <= 8; seed++ {
		rng := rand.New(rand.NewPCG(seed, 17))
		g := grid.New(14, testGap)
		g.Each(func(n *grid.Node) {
			if rng.Float64() < 0.25 {
				n.IsBarrier = true
			}
		})
		g.Finalize()

		origin, ok := g.RandomNode(rng, true)
		if !ok {
			continue
		}
		for _, heading := range []float64{10, 190} {
			fan := CastFan(g, origin.Center(), heading, 30, 8)
			for _, r := range fan.Rays {
				dx, dy := gamemath.Direction(r.Angle)
				for d := 0.0; d < r.Dist-1e-3; d += testGap / 8 {
					n, err := g.NodeAt(origin.X+dx*d, origin.Y+dy*d)
					if err != nil {
						t.Fatalf("seed %d ray %v: sample left the grid at %v", seed, r.Angle, d)
					}
					if n.IsBarrier {
						t.Fatalf("seed %d ray %v: passed through barrier (%d,%d)", seed, r.Angle, n.Row, n.Col)
					}
				}
			}
		}
	}
}

func TestFanSegmentsMergeStraightWall(t *testing.T) {
	g := grid.New(12, testGap)
	for row := 0; row < 12; row++ {
		g.SetBarrier(row, 7, true)
	}
	g.Finalize()
	origin := g.Node(5, 5).Center()

	fan := CastFan(g, origin, 0, 40, 10)
	if len(fan.Segments) != 1 {
		t.Fatalf("expected one merged edge, got %d", len(fan.Segments))
	}
	s := fan.Segments[0]
	if s.A != fan.Points[0] || s.B != fan.Points[len(fan.Points)-1] {
		t.Fatalf("edge should span the first to last contact")
	}
}

func TestFanSegmentsBreakAtCorner(t *testing.T) {
	g := grid.New(12, testGap)
	for row := 0; row < 5; row++ {
		g.SetBarrier(row, 7, true)
	}
	g.Finalize()
	origin := g.Node(5, 5).Center()

	fan := CastFan(g, origin, 0, 60, 4)
	if len(fan.Segments) < 2 {
		t.Fatalf("expected the wall end to break the boundary, got %d segments", len(fan.Segments))
	}
	for i := 1; i < len(fan.Segments); i++ {
		if fan.Segments[i].A != fan.Segments[i-1].B {
			t.Fatalf("segment %d does not continue the boundary", i)
		}
	}
}

func TestFanPolygon(t *testing.T) {
	g := openGrid(10)
	origin := g.Node(5, 5).Center()
	fan := CastFan(g, origin, 45, 20, 3)

	poly := fan.Polygon()
	if len(poly) != len(fan.Points)+1 || poly[0] != origin {
		t.Fatalf("polygon should be the origin followed by every contact")
	}
	b := fan.Bounds()
	if b.W <= 0 || b.H <= 0 {
		t.Fatalf("expected a non-empty bounding box, got %+v", b)
	}
	if empty := CastFan(g, origin, 0, 60, 0); !empty.Empty() {
		t.Fatalf("zero reach should give an empty fan")
	}
}
