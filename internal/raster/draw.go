package raster

import "math"

// Pixel sets a single pixel.
func Pixel(b *Buffer, idx, x, y int) {
	b.Set(x, y, idx)
}

// Line draws a Bresenham integer line between (x0,y0) and (x1,y1)
// inclusive of both endpoints.
func Line(b *Buffer, idx, x0, y0, x1, y1 int) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	x, y := x0, y0
	for {
		b.Set(x, y, idx)
		if x == x1 && y == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
}

// CircleFill fills a disc of radius r centred at (cx, cy). Negative
// radii are no-ops; r == 0 plots a single pixel.
func CircleFill(b *Buffer, idx, cx, cy, r int) {
	EllipseFill(b, idx, cx, cy, r, r)
}

// ThickLine walks the segment in 2*ceil(length) steps, stamping a
// filled circle of radius thickness/2 (integer division) at each step.
// A zero-length segment stamps a single circle.
func ThickLine(b *Buffer, idx, x0, y0, x1, y1, thickness int) {
	r := thickness / 2
	length := math.Hypot(float64(x1-x0), float64(y1-y0))
	steps := int(math.Ceil(length)) * 2
	if steps < 1 {
		CircleFill(b, idx, x0, y0, r)
		return
	}
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		x := RoundHalfAwayFromZero(float64(x0) + t*float64(x1-x0))
		y := RoundHalfAwayFromZero(float64(y0) + t*float64(y1-y0))
		CircleFill(b, idx, x, y, r)
	}
}

// CapsuleFill is a thick line of thickness r*2, so each stamped circle
// has radius r.
func CapsuleFill(b *Buffer, idx, x0, y0, x1, y1, r int) {
	ThickLine(b, idx, x0, y0, x1, y1, r*2)
}

// RectFill fills the axis-aligned rectangle [x, x+w) x [y, y+h).
func RectFill(b *Buffer, idx, x, y, w, h int) {
	for yy := y; yy < y+h; yy++ {
		for xx := x; xx < x+w; xx++ {
			b.Set(xx, yy, idx)
		}
	}
}

// RectStroke draws the four edges of the axis-aligned rectangle
// [x, x+w) x [y, y+h).
func RectStroke(b *Buffer, idx, x, y, w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	x1, y1 := x+w-1, y+h-1
	for xx := x; xx <= x1; xx++ {
		b.Set(xx, y, idx)
		b.Set(xx, y1, idx)
	}
	for yy := y; yy <= y1; yy++ {
		b.Set(x, yy, idx)
		b.Set(x1, yy, idx)
	}
}

// EllipseFill fills the axis-aligned ellipse centred at (cx, cy) with
// radii rx, ry, one scanline at a time.
func EllipseFill(b *Buffer, idx, cx, cy, rx, ry int) {
	if rx <= 0 || ry <= 0 {
		if rx == 0 && ry == 0 {
			b.Set(cx, cy, idx)
		}
		return
	}
	for y := -ry; y <= ry; y++ {
		var span int
		if ry != 0 {
			ratio := float64(y) / float64(ry)
			span = int(math.Floor(float64(rx) * math.Sqrt(max0(1-ratio*ratio))))
		} else {
			span = rx
		}
		for x := -span; x <= span; x++ {
			b.Set(cx+x, cy+y, idx)
		}
	}
}

// EllipseStroke draws the outline of the axis-aligned ellipse centred
// at (cx, cy) with radii rx, ry using the midpoint ellipse algorithm,
// four-way symmetric.
func EllipseStroke(b *Buffer, idx, cx, cy, rx, ry int) {
	if rx < 0 || ry < 0 {
		return
	}
	if rx == 0 || ry == 0 {
		Line(b, idx, cx-rx, cy-ry, cx+rx, cy+ry)
		return
	}

	plot := func(x, y int) {
		b.Set(cx+x, cy+y, idx)
		b.Set(cx-x, cy+y, idx)
		b.Set(cx+x, cy-y, idx)
		b.Set(cx-x, cy-y, idx)
	}

	rx2, ry2 := float64(rx*rx), float64(ry*ry)
	x, y := 0, ry
	dx, dy := 2*ry2*float64(x), 2*rx2*float64(y)
	plot(x, y)

	// Region 1.
	d1 := ry2 - rx2*float64(ry) + 0.25*rx2
	for dx < dy {
		x++
		dx += 2 * ry2
		if d1 < 0 {
			d1 += dx + ry2
		} else {
			y--
			dy -= 2 * rx2
			d1 += dx - dy + ry2
		}
		plot(x, y)
	}

	// Region 2.
	d2 := ry2*(float64(x)+0.5)*(float64(x)+0.5) + rx2*float64(y-1)*float64(y-1) - rx2*ry2
	for y > 0 {
		y--
		dy -= 2 * rx2
		if d2 > 0 {
			d2 += rx2 - dy
		} else {
			x++
			dx += 2 * ry2
			d2 += dx - dy + rx2
		}
		plot(x, y)
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func max0(f float64) float64 {
	if f < 0 {
		return 0
	}
	return f
}
