package layer

import (
	"errors"
	"strings"

	"github.com/bloomberg-sudo-dev/spriteforge/internal/raster"
)

// ErrUnsupportedSide is returned by ShadeBand for any side other than
// right, bottom, top_left, or edge.
var ErrUnsupportedSide = errors.New("unsupported shade_band side")

// InsetFill draws a filled rectangle inset by k pixels on all sides of
// [x, x+w) x [y, y+h), restricted to pixels where mask is non-zero.
func InsetFill(dst, mask *raster.Buffer, idx, x, y, w, h, k int) {
	x0, x1 := x+k, x+w-k-1
	y0, y1 := y+k, y+h-k-1
	for yy := y0; yy <= y1; yy++ {
		for xx := x0; xx <= x1; xx++ {
			if mask.Get(xx, yy) == 0 {
				continue
			}
			dst.Set(xx, yy, idx)
		}
	}
}

// ShadeBand colours every pixel of the mask whose boundary, as defined
// by side, faces outside the canvas or a zero mask pixel within the
// next thickness pixels. Writes land in dst.
func ShadeBand(dst, mask *raster.Buffer, idx int, side string, thickness int) error {
	var isBoundary func(x, y int) bool

	outsideOrZero := func(x, y int) bool {
		return !mask.InBounds(x, y) || mask.Get(x, y) == 0
	}

	switch strings.ToLower(side) {
	case "right":
		isBoundary = func(x, y int) bool {
			for d := 1; d <= thickness; d++ {
				if outsideOrZero(x+d, y) {
					return true
				}
			}
			return false
		}
	case "bottom":
		isBoundary = func(x, y int) bool {
			for d := 1; d <= thickness; d++ {
				if outsideOrZero(x, y+d) {
					return true
				}
			}
			return false
		}
	case "top_left":
		isBoundary = func(x, y int) bool {
			for d := 1; d <= thickness; d++ {
				if outsideOrZero(x, y-d) || outsideOrZero(x-d, y) {
					return true
				}
			}
			return false
		}
	case "edge":
		isBoundary = func(x, y int) bool {
			return outsideOrZero(x-1, y) || outsideOrZero(x+1, y) || outsideOrZero(x, y-1) || outsideOrZero(x, y+1)
		}
	default:
		return ErrUnsupportedSide
	}

	for y := 0; y < mask.H; y++ {
		for x := 0; x < mask.W; x++ {
			if mask.Get(x, y) == 0 {
				continue
			}
			if isBoundary(x, y) {
				dst.Set(x, y, idx)
			}
		}
	}
	return nil
}

const (
	lcgMultiplier = 1103515245
	lcgIncrement  = 12345
	lcgModulus    = 1 << 31 // 2^31
)

// NoisePoints enumerates mask-eligible pixels in row-major order, then
// advances a linear-congruential generator count times — x <-
// (1103515245*x + 12345) mod 2^31, seeded from seed & 0x7FFFFFFF — to
// pick which eligible pixel each draw lands on. This exact recurrence
// and enumeration order is required for cross-run determinism, not an
// implementation detail free to vary.
func NoisePoints(dst, mask *raster.Buffer, idx, count, seed int) {
	if count <= 0 {
		return
	}

	var eligible []int
	for i, v := range mask.Pix {
		if v != 0 {
			eligible = append(eligible, i)
		}
	}
	if len(eligible) == 0 {
		return
	}

	x := int64(seed) & 0x7FFFFFFF
	for i := 0; i < count; i++ {
		x = (lcgMultiplier*x + lcgIncrement) % lcgModulus
		pos := eligible[int(x)%len(eligible)]
		dst.Pix[pos] = idx
	}
}
