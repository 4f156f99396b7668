package imaging

import (
	"image"
	"image/color"
	"image/draw"
	"image/gif"
	"io"
)

// EncodeGIF writes frames as an animated GIF. delaysMs holds each
// frame's duration in milliseconds (converted to GIF's 1/100s units);
// loopCount of 0 means loop forever.
func EncodeGIF(w io.Writer, frames []image.Image, delaysMs []int, loopCount int) error {
	g := &gif.GIF{LoopCount: loopCount}

	for i, f := range frames {
		pal := color.Palette(paletteFromImage(f))
		dst := image.NewPaletted(f.Bounds(), pal)
		draw.Draw(dst, dst.Bounds(), f, f.Bounds().Min, draw.Src)
		g.Image = append(g.Image, dst)

		delay := 10
		if i < len(delaysMs) {
			delay = delaysMs[i] / 10
		}
		g.Delay = append(g.Delay, delay)
	}

	return gif.EncodeAll(w, g)
}

// paletteFromImage collects the distinct colours actually present in
// img, up to GIF's 256-colour limit. The sprite format's own palettes
// rarely exceed that, but a document is free to define more indices
// than any single frame uses.
func paletteFromImage(img image.Image) []color.Color {
	seen := make(map[color.Color]bool)
	var pal []color.Color
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := img.At(x, y)
			if !seen[c] {
				seen[c] = true
				if len(pal) < 256 {
					pal = append(pal, c)
				}
			}
		}
	}
	if len(pal) == 0 {
		pal = append(pal, color.RGBA{})
	}
	return pal
}
