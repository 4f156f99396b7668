package raster

// FloodFill performs a 4-connected breadth-first fill starting at
// (x, y), replacing every reachable pixel equal to the seed's value
// with idx. It is a no-op if the seed already equals idx.
func FloodFill(b *Buffer, idx, x, y int) {
	if !b.InBounds(x, y) {
		return
	}
	target := b.Get(x, y)
	if target == idx {
		return
	}

	type coord struct{ x, y int }
	queue := []coord{{x, y}}
	b.Set(x, y, idx)

	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		for _, d := range [4]coord{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
			nx, ny := c.x+d.x, c.y+d.y
			if !b.InBounds(nx, ny) || b.Get(nx, ny) != target {
				continue
			}
			b.Set(nx, ny, idx)
			queue = append(queue, coord{nx, ny})
		}
	}
}
