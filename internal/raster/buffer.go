// Package raster implements the spriteops stateless drawing primitives:
// functions that mutate a flat buffer of palette indices. Every
// primitive is total — out-of-bounds geometry is clipped, never an
// error — and every primitive is free of hidden state, so the same
// call on the same buffer always produces the same result.
package raster

// Buffer is a W by H grid of palette indices in row-major order. The
// value 0 means "no pixel" for merge purposes, independent of what
// colour index 0 resolves to.
type Buffer struct {
	Pix  []int
	W, H int
}

// New allocates a zero-filled buffer of the given dimensions.
func New(w, h int) *Buffer {
	return &Buffer{Pix: make([]int, w*h), W: w, H: h}
}

// InBounds reports whether (x, y) is within the half-open range
// [0, W) x [0, H).
func (b *Buffer) InBounds(x, y int) bool {
	return x >= 0 && x < b.W && y >= 0 && y < b.H
}

// Set writes colour idx at (x, y), silently clipping out-of-bounds
// writes.
func (b *Buffer) Set(x, y, idx int) {
	if !b.InBounds(x, y) {
		return
	}
	b.Pix[y*b.W+x] = idx
}

// Get reads the colour index at (x, y), returning 0 for out-of-bounds
// coordinates.
func (b *Buffer) Get(x, y int) int {
	if !b.InBounds(x, y) {
		return 0
	}
	return b.Pix[y*b.W+x]
}

// Fill sets every pixel to idx.
func (b *Buffer) Fill(idx int) {
	for i := range b.Pix {
		b.Pix[i] = idx
	}
}

// Clone returns an independent copy of b.
func (b *Buffer) Clone() *Buffer {
	out := &Buffer{Pix: make([]int, len(b.Pix)), W: b.W, H: b.H}
	copy(out.Pix, b.Pix)
	return out
}

// CopyFrom overwrites b's contents with src's, bytewise. The two
// buffers must share dimensions.
func (b *Buffer) CopyFrom(src *Buffer) {
	copy(b.Pix, src.Pix)
}

// Merge overlays src onto b in place: every non-zero src pixel
// overwrites the corresponding b pixel. Used to build the merged view
// by folding layers in insertion order.
func (b *Buffer) Merge(src *Buffer) {
	for i, v := range src.Pix {
		if v != 0 {
			b.Pix[i] = v
		}
	}
}
