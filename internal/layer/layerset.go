// Package layer implements the spriteops named-layer model: a mapping
// from layer name to a buffer of palette indices, plus an
// insertion-ordered list recording first-insertion order, plus a
// "current layer" cursor that draw ops target.
package layer

import "github.com/bloomberg-sudo-dev/spriteforge/internal/raster"

// BaseLayerName is the layer every frame starts with.
const BaseLayerName = "base"

// Set holds per-frame layer state: named buffers, their insertion
// order, and which one is current. The zero value is not usable —
// construct with New.
type Set struct {
	buffers map[string]*raster.Buffer
	order   []string
	current string
	w, h    int
}

// New creates the initial per-frame state: a single zero-filled layer
// named "base", current.
func New(w, h int) *Set {
	s := &Set{buffers: make(map[string]*raster.Buffer), w: w, h: h}
	s.Ensure(BaseLayerName)
	s.current = BaseLayerName
	return s
}

// Ensure returns the buffer for name, creating it zero-filled and
// appending it to the order list if it does not already exist.
func (s *Set) Ensure(name string) *raster.Buffer {
	if b, ok := s.buffers[name]; ok {
		return b
	}
	b := raster.New(s.w, s.h)
	s.buffers[name] = b
	s.order = append(s.order, name)
	return b
}

// Get returns the named layer's buffer without creating it.
func (s *Set) Get(name string) (*raster.Buffer, bool) {
	b, ok := s.buffers[name]
	return b, ok
}

// Current returns the buffer draw ops should target.
func (s *Set) Current() *raster.Buffer {
	return s.Ensure(s.current)
}

// CurrentName returns the name of the current layer.
func (s *Set) CurrentName() string {
	return s.current
}

// Begin makes name current, creating it zero-filled if new.
func (s *Set) Begin(name string) {
	s.Ensure(name)
	s.current = name
}

// End returns current to the base layer.
func (s *Set) End() {
	s.current = BaseLayerName
}

// CopyLayer copies src bytewise into dst, creating dst if new. It is a
// no-op if src does not exist.
func (s *Set) CopyLayer(src, dst string) {
	srcBuf, ok := s.buffers[src]
	if !ok {
		return
	}
	dstBuf := s.Ensure(dst)
	dstBuf.CopyFrom(srcBuf)
}

// MaskLayer clears every pixel of the current layer where the named
// layer is zero. A missing mask layer is a no-op.
func (s *Set) MaskLayer(name string) {
	mask, ok := s.buffers[name]
	if !ok {
		return
	}
	cur := s.Current()
	for i := range cur.Pix {
		if mask.Pix[i] == 0 {
			cur.Pix[i] = 0
		}
	}
}

// ClearAll sets every pixel of every existing layer to idx. This is
// the clear op's documented, intentionally-surprising behaviour: it
// wipes every layer, not just the current one.
func (s *Set) ClearAll(idx int) {
	for _, b := range s.buffers {
		b.Fill(idx)
	}
}

// MergedView overlays every layer in insertion order: starting from an
// all-zero buffer, each non-zero source pixel overwrites the
// destination. The result is a pure function of the layer state.
func (s *Set) MergedView() *raster.Buffer {
	out := raster.New(s.w, s.h)
	for _, name := range s.order {
		out.Merge(s.buffers[name])
	}
	return out
}

// Merge replaces the entire layer state with a single layer (default
// name "base") containing the current merged view. Insertion order
// becomes [name]; current becomes that name.
func (s *Set) Merge(name string) {
	if name == "" {
		name = BaseLayerName
	}
	merged := s.MergedView()
	s.buffers = map[string]*raster.Buffer{name: merged}
	s.order = []string{name}
	s.current = name
}
