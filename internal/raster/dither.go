package raster

// DitherRect fills the rectangle [x, x+w) x [y, y+h) with a dithered
// pattern: "checker" fills pixels where (x+y) is even, "dots" fills
// pixels where both x and y are even. An unrecognised pattern is a
// silent no-op.
func DitherRect(b *Buffer, idx, x, y, w, h int, pattern string) {
	var keep func(px, py int) bool
	switch pattern {
	case "checker":
		keep = func(px, py int) bool { return (px+py)%2 == 0 }
	case "dots":
		keep = func(px, py int) bool { return px%2 == 0 && py%2 == 0 }
	default:
		return
	}

	for yy := y; yy < y+h; yy++ {
		for xx := x; xx < x+w; xx++ {
			if keep(xx, yy) {
				b.Set(xx, yy, idx)
			}
		}
	}
}
