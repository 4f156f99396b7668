package spriteforge

import (
	"image"
	"image/color"
	"image/png"
	"io"
)

// Canvas adapts a rendered frame buffer — palette indices plus the
// palette that resolves them to colour — to image.Image, so it can be
// handed to any stdlib or golang.org/x/image consumer without a copy
// into image.RGBA first.
type Canvas struct {
	W, H    int
	Indices []int
	Palette Palette
}

// NewCanvas wraps a RenderFrame result for image encoding.
func NewCanvas(indices []int, w, h int, palette Palette) *Canvas {
	return &Canvas{W: w, H: h, Indices: indices, Palette: palette}
}

// ColorModel implements image.Image.
func (c *Canvas) ColorModel() color.Model { return color.RGBAModel }

// Bounds implements image.Image.
func (c *Canvas) Bounds() image.Rectangle {
	return image.Rect(0, 0, c.W, c.H)
}

// At implements image.Image, resolving the palette index at (x, y) to
// an RGBA colour. Out-of-bounds coordinates return transparent black.
func (c *Canvas) At(x, y int) color.Color {
	if x < 0 || x >= c.W || y < 0 || y >= c.H {
		return color.RGBA{}
	}
	idx := c.Indices[y*c.W+x]
	col, ok := c.Palette.At(idx)
	if !ok {
		return color.RGBA{}
	}
	return color.RGBA{R: col[0], G: col[1], B: col[2], A: col[3]}
}

// ToRGBA materializes the canvas into a stdlib image.RGBA.
func (c *Canvas) ToRGBA() *image.RGBA {
	img := image.NewRGBA(c.Bounds())
	for y := 0; y < c.H; y++ {
		for x := 0; x < c.W; x++ {
			img.Set(x, y, c.At(x, y))
		}
	}
	return img
}

// EncodePNG writes the canvas to w as a PNG.
func (c *Canvas) EncodePNG(w io.Writer) error {
	return png.Encode(w, c.ToRGBA())
}
