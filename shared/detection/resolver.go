package detection

import (
	"image"
	"math"
	"sort"

	"github.com/automoto/lurk/shared/gamemath"
	"github.com/automoto/lurk/shared/vision"
	dmath "github.com/yohamta/donburi/features/math"
)

// Shape is the visible region of one agent: its fan plus a disc of near
// vision that ignores barriers.
type Shape struct {
	ID         int
	Label      string
	Fan        vision.Fan
	Center     dmath.Vec2
	NearRadius float64
}

func (s Shape) bounds() gamemath.Rect {
	r := gamemath.RectAround(s.Center, 2*s.NearRadius, 2*s.NearRadius)
	if s.Fan.Empty() {
		return r
	}
	f := s.Fan.Bounds()
	minX, minY := min(r.X, f.X), min(r.Y, f.Y)
	maxX, maxY := max(r.X+r.W, f.X+f.W), max(r.Y+r.H, f.Y+f.H)
	return gamemath.Rect{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
}

// Hit records one shape that covers part of the player.
type Hit struct {
	ID     int
	Label  string
	Pixels int
}

// Result is the outcome of one frame of detection.
type Result struct {
	Detected bool
	Hits     []Hit
	Labels   []string // distinct labels of Hits, sorted
}

// Resolver owns the per-frame rasters. It is reused across frames; every
// Resolve starts from empty surfaces.
type Resolver struct {
	union   *Surface
	scratch *Surface
	player  *Surface
}

// NewResolver creates a resolver for a world of the given size.
func NewResolver(width, height, scale float64) *Resolver {
	return &Resolver{
		union:   NewSurface(width, height, scale),
		scratch: NewSurface(width, height, scale),
		player:  NewSurface(width, height, scale),
	}
}

// Union returns the visibility raster of the last Resolve.
func (r *Resolver) Union() *Surface {
	return r.union
}

// Resolve rasterises every shape into the union surface and reports which
// shapes overlap the player's hitbox by at least one pixel.
func (r *Resolver) Resolve(shapes []Shape, player gamemath.Rect) Result {
	r.union.Reset()
	r.player.Reset()
	r.player.FillRect(player)
	playerArea := r.player.PixelRect(player)

	var res Result
	for _, sh := range shapes {
		area := r.scratch.PixelRect(sh.bounds())
		if area.Empty() {
			continue
		}
		r.scratch.Reset()
		if !sh.Fan.Empty() {
			r.scratch.FillPolygon(sh.Fan.Polygon())
		}
		r.scratch.FillDisc(sh.Center, sh.NearRadius)
		r.union.Merge(r.scratch, area)

		overlapArea := area.Intersect(playerArea)
		if overlapArea.Empty() {
			continue
		}
		if n := r.scratch.Overlap(r.player, overlapArea); n > 0 {
			res.Hits = append(res.Hits, Hit{ID: sh.ID, Label: sh.Label, Pixels: n})
		}
	}

	res.Detected = len(res.Hits) > 0
	res.Labels = labels(res.Hits)
	return res
}

// Covered reports whether a world point is inside the last union raster.
func (r *Resolver) Covered(p dmath.Vec2) bool {
	x := int(math.Floor(p.X * r.union.Scale))
	y := int(math.Floor(p.Y * r.union.Scale))
	if !(image.Point{X: x, Y: y}).In(r.union.Pix.Rect) {
		return false
	}
	return r.union.Pix.AlphaAt(x, y).A != 0
}

func labels(hits []Hit) []string {
	seen := make(map[string]struct{}, len(hits))
	var out []string
	for _, h := range hits {
		if _, ok := seen[h.Label]; ok {
			continue
		}
		seen[h.Label] = struct{}{}
		out = append(out, h.Label)
	}
	sort.Strings(out)
	return out
}
