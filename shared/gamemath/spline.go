package gamemath

import (
	"fmt"

	dmath "github.com/yohamta/donburi/features/math"
	"gonum.org/v1/gonum/interp"
)

// Smooth turns an ordered list of path points into a denser list of
// waypoints. One cubic spline is fitted per axis over the point index
// t = 0..n-1 and each segment between consecutive points is sampled at
// `segments` evenly spaced parameters. The final input point is appended
// as-is so the output always ends exactly on it.
//
// Fewer than two points cannot be interpolated and are returned unchanged.
// A spline that cannot be fitted, such as an ill-conditioned system, is
// reported as an error.
func Smooth(points []dmath.Vec2, segments int) ([]dmath.Vec2, error) {
	if len(points) < 2 {
		out := make([]dmath.Vec2, len(points))
		copy(out, points)
		return out, nil
	}
	if segments < 1 {
		segments = 1
	}

	n := len(points)
	ts := make([]float64, n)
	xs := make([]float64, n)
	ys := make([]float64, n)
	for i, p := range points {
		ts[i] = float64(i)
		xs[i] = p.X
		ys[i] = p.Y
	}

	predictX, err := fitAxis(ts, xs)
	if err != nil {
		return nil, fmt.Errorf("smooth x: %w", err)
	}
	predictY, err := fitAxis(ts, ys)
	if err != nil {
		return nil, fmt.Errorf("smooth y: %w", err)
	}

	out := make([]dmath.Vec2, 0, (n-1)*segments+1)
	for i := 0; i < n-1; i++ {
		for k := 0; k < segments; k++ {
			t := float64(i) + float64(k)/float64(segments)
			out = append(out, dmath.Vec2{X: predictX(t), Y: predictY(t)})
		}
	}
	return append(out, points[n-1]), nil
}

// fitAxis fits a natural cubic spline through (ts, vs). Two knots make the
// spline a straight line, which is evaluated directly.
func fitAxis(ts, vs []float64) (func(float64) float64, error) {
	if len(ts) == 2 {
		v0, v1 := vs[0], vs[1]
		return func(t float64) float64 {
			return v0 + (v1-v0)*t
		}, nil
	}
	var spline interp.NaturalCubic
	if err := spline.Fit(ts, vs); err != nil {
		return nil, err
	}
	return spline.Predict, nil
}
