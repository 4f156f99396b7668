package spriteforge

import (
	"bytes"
	"fmt"
	"image"

	"github.com/bloomberg-sudo-dev/spriteforge/internal/imaging"
)

// SpriteOutput is everything the imaging collaborator produces for one
// document: one image per frame, a composite sheet, the JSON metadata
// descriptor, and (when requested) an animated GIF. None of this is
// part of the core's three pure entry points — it is assembled on top
// of them.
type SpriteOutput struct {
	Frames   []image.Image
	Sheet    image.Image
	Metadata imaging.Metadata
	GIF      []byte // nil unless WithGIF(true) was passed
}

// RenderSprite validates, resolves, and renders every frame of doc,
// then hands the results to the imaging collaborator for sheet
// assembly, scaling, and metadata generation.
func RenderSprite(doc Document, opts ...RenderOption) (*SpriteOutput, error) {
	o := newRenderOptions(opts...)

	if diags := Validate(doc, o.strict); len(diags) > 0 {
		return nil, fmt.Errorf("%w: %d diagnostics, first: %s", ErrValidationFailed, len(diags), diags[0].Message)
	}

	resolvedOps, err := Resolve(doc)
	if err != nil {
		return nil, err
	}

	Logger().Info("rendering sprite", "name", doc.Name, "frames", len(doc.Frames))

	frames := make([]image.Image, len(doc.Frames))
	durations := make([]int, len(doc.Frames))
	for i, ops := range resolvedOps {
		buf, err := RenderFrame(ops, doc.Canvas.W, doc.Canvas.H)
		if err != nil {
			return nil, fmt.Errorf("frame %d: %w", i, err)
		}
		canvas := NewCanvas(buf, doc.Canvas.W, doc.Canvas.H, doc.Palette)
		frames[i] = imaging.ScaleNearest(canvas, o.scale)
		durations[i] = doc.Frames[i].EffectiveDurationMs()
	}

	layoutName := "horizontal"
	columns := o.columns
	if o.layout == LayoutGrid {
		layoutName = "grid"
		if columns <= 0 {
			columns = len(frames)
		}
	} else {
		columns = 0
	}
	sheet := imaging.BuildSheet(frames, columns)

	animMeta := make(map[string]imaging.AnimationMeta, len(doc.Animations))
	for name, anim := range doc.Animations {
		fd := make([]int, len(anim.Frames))
		for i, fi := range anim.Frames {
			if fi >= 0 && fi < len(durations) {
				fd[i] = durations[fi]
			}
		}
		animMeta[name] = imaging.AnimationMeta{Frames: anim.Frames, Loop: anim.Loop, FrameDurations: fd}
	}

	out := &SpriteOutput{
		Frames: frames,
		Sheet:  sheet,
		Metadata: imaging.Metadata{
			Sprite:      doc.Name,
			FrameWidth:  doc.Canvas.W,
			FrameHeight: doc.Canvas.H,
			TotalFrames: len(frames),
			Scale:       o.scale,
			Layout:      layoutName,
			Animations:  animMeta,
		},
	}

	if o.gifExport {
		var buf bytes.Buffer
		if err := imaging.EncodeGIF(&buf, frames, durations, 0); err != nil {
			return nil, fmt.Errorf("gif export: %w", err)
		}
		out.GIF = buf.Bytes()
	}

	return out, nil
}
