package imaging

import (
	"image"
	"image/draw"

	ximage "golang.org/x/image/draw"
)

// ScaleNearest scales img by an integer factor using nearest-neighbour
// sampling — the only scaling mode the format permits, since the core
// guarantees no sub-pixel positioning or anti-aliasing anywhere in the
// pipeline. factor <= 1 returns img copied into an *image.RGBA
// unchanged.
func ScaleNearest(img image.Image, factor int) *image.RGBA {
	b := img.Bounds()
	if factor <= 1 {
		out := image.NewRGBA(b)
		draw.Draw(out, b, img, b.Min, draw.Src)
		return out
	}

	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	ximage.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, ximage.Over, nil)
	return dst
}
