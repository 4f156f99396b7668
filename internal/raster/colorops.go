package raster

// ColorReplace replaces every pixel equal to oldIdx with newIdx. If
// mask is non-nil, a pixel is skipped wherever mask is zero.
func ColorReplace(b *Buffer, oldIdx, newIdx int, mask *Buffer) {
	for i, v := range b.Pix {
		if v != oldIdx {
			continue
		}
		if mask != nil && mask.Pix[i] == 0 {
			continue
		}
		b.Pix[i] = newIdx
	}
}

// OutlineFromMask dilates mask by thickness rings of 4-neighbour
// adjacency, writing idx into dst at every newly-covered pixel. The
// working coverage set updates between passes, so thickness rings
// accumulate strictly outward from the previous ring rather than all
// from the original mask.
func OutlineFromMask(dst, mask *Buffer, idx, thickness int) {
	working := mask.Clone()

	for pass := 0; pass < thickness; pass++ {
		next := working.Clone()
		for y := 0; y < working.H; y++ {
			for x := 0; x < working.W; x++ {
				if working.Get(x, y) != 0 {
					continue
				}
				if hasCoveredNeighbour(working, x, y) {
					next.Set(x, y, 1)
					dst.Set(x, y, idx)
				}
			}
		}
		working = next
	}
}

func hasCoveredNeighbour(b *Buffer, x, y int) bool {
	return b.Get(x-1, y) != 0 || b.Get(x+1, y) != 0 || b.Get(x, y-1) != 0 || b.Get(x, y+1) != 0
}
