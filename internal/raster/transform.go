package raster

// Mirror reflects the buffer in place. "x" copies the left half onto
// the right half (horizontal reflection); "y" copies the top half onto
// the bottom half (vertical reflection). Any other axis is a no-op.
func Mirror(b *Buffer, axis string) {
	switch axis {
	case "x":
		for y := 0; y < b.H; y++ {
			for x := 0; x < b.W/2; x++ {
				src := b.Get(x, y)
				b.Set(b.W-1-x, y, src)
			}
		}
	case "y":
		for y := 0; y < b.H/2; y++ {
			for x := 0; x < b.W; x++ {
				src := b.Get(x, y)
				b.Set(x, b.H-1-y, src)
			}
		}
	}
}

// Translate shifts every pixel by (dx, dy); pixels shifted in from
// outside the canvas become zero.
func Translate(b *Buffer, dx, dy int) {
	src := b.Clone()
	b.Fill(0)
	for y := 0; y < b.H; y++ {
		for x := 0; x < b.W; x++ {
			b.Set(x+dx, y+dy, src.Get(x, y))
		}
	}
}

// Rotate rotates the buffer by angle radians around centre, sampling
// via inverse mapping: for each destination pixel the matching source
// pixel is round(R^-1 * (dst - centre) + centre). Out-of-source reads
// become zero. Nearest-neighbour only.
func Rotate(b *Buffer, angle float64, centre Point) {
	src := b.Clone()
	inv := RotationAbout(angle, centre).Invert()
	b.Fill(0)
	for y := 0; y < b.H; y++ {
		for x := 0; x < b.W; x++ {
			sp := inv.TransformPoint(Point{X: float64(x), Y: float64(y)})
			sx := RoundHalfAwayFromZero(sp.X)
			sy := RoundHalfAwayFromZero(sp.Y)
			b.Set(x, y, src.Get(sx, sy))
		}
	}
}
