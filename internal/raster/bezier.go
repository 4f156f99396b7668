package raster

// Bezier draws a quadratic Bezier curve from (x0,y0) through control
// point (cx,cy) to (x1,y1), sampled parametrically and rounded to the
// nearest pixel.
func Bezier(b *Buffer, idx, x0, y0, cx, cy, x1, y1 int) {
	deltas := []int{
		abs(x1 - x0), abs(y1 - y0),
		abs(cx - x0), abs(cy - y0),
		abs(x1 - cx), abs(y1 - cy),
		10,
	}
	maxDelta := 0
	for _, d := range deltas {
		if d > maxDelta {
			maxDelta = d
		}
	}
	steps := maxDelta * 2

	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		mt := 1 - t
		x := mt*mt*float64(x0) + 2*mt*t*float64(cx) + t*t*float64(x1)
		y := mt*mt*float64(y0) + 2*mt*t*float64(cy) + t*t*float64(y1)
		b.Set(RoundHalfAwayFromZero(x), RoundHalfAwayFromZero(y), idx)
	}
}
