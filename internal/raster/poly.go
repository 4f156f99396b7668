package raster

import (
	"math"
	"sort"
)

// PolyFill fills the polygon described by pts (at least 3 vertices)
// using a scanline algorithm: for each integer y spanning the vertex
// range, edges that straddle y contribute one crossing each (using a
// half-open convention that includes the upper endpoint and excludes
// the lower one, so a shared vertex between two edges is never
// double-counted), crossings are sorted, and pixels between each pair
// are filled inclusively.
func PolyFill(b *Buffer, idx int, pts []Point) {
	if len(pts) < 3 {
		return
	}

	minY, maxY := pts[0].Y, pts[0].Y
	for _, p := range pts[1:] {
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)
	}

	n := len(pts)
	for y := int(math.Floor(minY)); y <= int(math.Ceil(maxY)); y++ {
		fy := float64(y)
		var xs []float64

		for i := 0; i < n; i++ {
			pi := pts[i]
			pj := pts[(i+1)%n]
			if pi.Y == pj.Y {
				continue
			}
			// Half-open on the upper endpoint: y == the lower vertex is
			// excluded, y == the higher vertex is included.
			straddles := (pi.Y < fy && fy <= pj.Y) || (pj.Y < fy && fy <= pi.Y)
			if !straddles {
				continue
			}
			t := (fy - pi.Y) / (pj.Y - pi.Y)
			x := pi.X + t*(pj.X-pi.X)
			xs = append(xs, x)
		}

		sort.Float64s(xs)
		for i := 0; i+1 < len(xs); i += 2 {
			left := int(math.Ceil(xs[i]))
			right := int(math.Floor(xs[i+1]))
			for x := left; x <= right; x++ {
				b.Set(x, y, idx)
			}
		}
	}
}
