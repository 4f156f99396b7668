// Package spriteforge compiles spriteops documents — a small imperative
// pixel-drawing DSL — into raster images.
//
// # Overview
//
// A spriteops document describes one or more animation frames as ordered
// sequences of named operations (clear, line, rect_fill, gradient, outline,
// flood fill, layer manipulation, affine transforms, noise, …) executed
// against a palette-indexed canvas with named layers. Rendering is
// deterministic: the same document produces byte-identical pixel buffers
// on every run.
//
// # Quick Start
//
//	doc, err := spriteforge.Load(r)
//	if diags := spriteforge.Validate(doc, false); len(diags) > 0 {
//	    // handle diagnostics
//	}
//	framesOps, err := spriteforge.Resolve(doc)
//	buf, err := spriteforge.RenderFrame(framesOps[0], doc.Canvas.W, doc.Canvas.H)
//
// # Architecture
//
// The package is organized into:
//   - Public API: Document, Validate, Resolve, RenderFrame, Canvas, Palette
//   - internal/raster: stateless pixel-buffer drawing primitives
//   - internal/layer: named layer state, merge order, masked effects
//   - internal/imaging: sprite sheet / animated GIF / metadata assembly
//     (the "thin imaging collaborator" — outside the core's three pure
//     entry points)
//
// # Coordinate system
//
// Origin (0,0) at top-left, X increases right, Y increases down. All
// primitives are aliased at integer coordinates — there is no
// anti-aliasing and no sub-pixel positioning.
//
// # Determinism
//
// Three sources of non-determinism must never be introduced: the
// noise_points linear congruential generator, row-major enumeration
// order, and insertion-ordered layer iteration. See internal/layer.
package spriteforge
