// Package imaging is the thin collaborator that turns rendered frame
// buffers into container images: a composite sprite sheet, optional
// per-frame PNGs, an optional animated GIF, and the JSON metadata
// descriptor. None of this lives in the core's three pure entry
// points — it is deliberately kept out of the deterministic rendering
// path.
package imaging

import (
	"image"
	"image/draw"
)

// BuildSheet arranges frames into a single composite image. columns
// <= 0 lays every frame out in one horizontal strip; columns > 0 wraps
// into a grid of that width. All frames must share dimensions.
func BuildSheet(frames []image.Image, columns int) image.Image {
	if len(frames) == 0 {
		return image.NewRGBA(image.Rect(0, 0, 0, 0))
	}

	fb := frames[0].Bounds()
	fw, fh := fb.Dx(), fb.Dy()

	cols := columns
	if cols <= 0 {
		cols = len(frames)
	}
	rows := (len(frames) + cols - 1) / cols

	sheet := image.NewRGBA(image.Rect(0, 0, fw*cols, fh*rows))
	for i, f := range frames {
		col, row := i%cols, i/cols
		dst := image.Rect(col*fw, row*fh, col*fw+fw, row*fh+fh)
		draw.Draw(sheet, dst, f, f.Bounds().Min, draw.Src)
	}
	return sheet
}
