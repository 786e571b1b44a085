// Package detection decides whether the player is exposed by rasterising
// every agent's visible area and intersecting it with the player hitbox.
package detection

import (
	"image"
	"math"

	"github.com/automoto/lurk/shared/gamemath"
	dmath "github.com/yohamta/donburi/features/math"
	"golang.org/x/image/vector"
)

// DiscSegments is the number of edges used to approximate a near-field disc.
const DiscSegments = 24

// Surface is an alpha coverage raster of the world at a fixed scale.
type Surface struct {
	Scale float64
	Pix   *image.Alpha

	ras *vector.Rasterizer
}

// NewSurface allocates a surface covering a width x height world area.
func NewSurface(width, height, scale float64) *Surface {
	if scale <= 0 {
		scale = 1
	}
	w := int(math.Ceil(width * scale))
	h := int(math.Ceil(height * scale))
	return &Surface{
		Scale: scale,
		Pix:   image.NewAlpha(image.Rect(0, 0, w, h)),
		ras:   vector.NewRasterizer(w, h),
	}
}

// Reset clears all coverage.
func (s *Surface) Reset() {
	clear(s.Pix.Pix)
}

// Bounds returns the pixel bounds of the surface.
func (s *Surface) Bounds() image.Rectangle {
	return s.Pix.Rect
}

// FillPolygon adds the coverage of a closed world-space polygon.
func (s *Surface) FillPolygon(points []dmath.Vec2) {
	if len(points) < 3 {
		return
	}
	b := s.Pix.Rect
	s.ras.Reset(b.Dx(), b.Dy())
	s.ras.MoveTo(float32(points[0].X*s.Scale), float32(points[0].Y*s.Scale))
	for _, p := range points[1:] {
		s.ras.LineTo(float32(p.X*s.Scale), float32(p.Y*s.Scale))
	}
	s.ras.ClosePath()
	s.ras.Draw(s.Pix, b, image.Opaque, image.Point{})
}

// FillDisc adds the coverage of a world-space disc.
func (s *Surface) FillDisc(c dmath.Vec2, radius float64) {
	if radius <= 0 {
		return
	}
	s.FillPolygon(discPolygon(c, radius))
}

// FillRect adds the coverage of a world-space rectangle.
func (s *Surface) FillRect(r gamemath.Rect) {
	s.FillPolygon([]dmath.Vec2{
		{X: r.X, Y: r.Y},
		{X: r.X + r.W, Y: r.Y},
		{X: r.X + r.W, Y: r.Y + r.H},
		{X: r.X, Y: r.Y + r.H},
	})
}

// PixelRect converts a world rectangle to the pixel rectangle it touches,
// clipped to the surface.
func (s *Surface) PixelRect(r gamemath.Rect) image.Rectangle {
	pr := image.Rect(
		int(math.Floor(r.X*s.Scale)),
		int(math.Floor(r.Y*s.Scale)),
		int(math.Ceil((r.X+r.W)*s.Scale)),
		int(math.Ceil((r.Y+r.H)*s.Scale)),
	)
	return pr.Intersect(s.Pix.Rect)
}

// Merge raises every pixel of s inside area to at least the coverage of o.
func (s *Surface) Merge(o *Surface, area image.Rectangle) {
	area = area.Intersect(s.Pix.Rect).Intersect(o.Pix.Rect)
	for y := area.Min.Y; y < area.Max.Y; y++ {
		for x := area.Min.X; x < area.Max.X; x++ {
			i := s.Pix.PixOffset(x, y)
			j := o.Pix.PixOffset(x, y)
			if o.Pix.Pix[j] > s.Pix.Pix[i] {
				s.Pix.Pix[i] = o.Pix.Pix[j]
			}
		}
	}
}

// Overlap counts the pixels inside area covered on both surfaces.
func (s *Surface) Overlap(o *Surface, area image.Rectangle) int {
	area = area.Intersect(s.Pix.Rect).Intersect(o.Pix.Rect)
	n := 0
	for y := area.Min.Y; y < area.Max.Y; y++ {
		for x := area.Min.X; x < area.Max.X; x++ {
			if s.Pix.Pix[s.Pix.PixOffset(x, y)] != 0 && o.Pix.Pix[o.Pix.PixOffset(x, y)] != 0 {
				n++
			}
		}
	}
	return n
}

func discPolygon(c dmath.Vec2, radius float64) []dmath.Vec2 {
	pts := make([]dmath.Vec2, DiscSegments)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / DiscSegments
		pts[i] = dmath.Vec2{X: c.X + radius*math.Cos(a), Y: c.Y + radius*math.Sin(a)}
	}
	return pts
}
