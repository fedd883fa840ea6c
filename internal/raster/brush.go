package raster

import (
	"math"

	"seehuhn.de/go/geom/vec"
)

// Segment calls plot for every integer point sampled along p0 -> p1.
//
// The segment is divided into ceil(|p1 - p0|) steps so that consecutive
// points are never more than one pixel apart. Both endpoints are visited.
// A zero-length segment visits p0 exactly once.
func Segment(x0, y0, x1, y1 int, plot func(x, y int)) {
	d := vec.Vec2{X: float64(x1), Y: float64(y1)}.Sub(vec.Vec2{X: float64(x0), Y: float64(y0)})
	n := int(math.Ceil(d.Length()))
	if n <= 0 {
		plot(x0, y0)
		return
	}
	for i := 0; i <= n; i++ {
		// p1*t + p0*(1-t) with t = i/n, truncated toward zero. Integer
		// arithmetic keeps the endpoints exact.
		x := (x0*n + (x1-x0)*i) / n
		y := (y0*n + (y1-y0)*i) / n
		plot(x, y)
	}
}

// Disc calls fill for each row span of the filled circle of radius r
// centered at (cx, cy), clipped to a width x height raster.
// Rows that fall entirely outside the raster are skipped.
func Disc(cx, cy, r, width, height int, fill func(Span)) {
	if r < 0 {
		r = 0
	}
	for dy := -r; dy <= r; dy++ {
		y := cy + dy
		if y < 0 || y >= height {
			continue
		}
		half := int(math.Sqrt(float64(r*r - dy*dy)))
		x0, x1 := cx-half, cx+half
		if x0 < 0 {
			x0 = 0
		}
		if x0 >= width || x1 < 0 {
			continue
		}
		if x1 >= width {
			x1 = width - 1
		}
		fill(Span{X0: x0, X1: x1, Y: y})
	}
}
