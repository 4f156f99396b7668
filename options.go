package spriteforge

// Layout selects how per-frame images are arranged into a sprite sheet.
type Layout int

const (
	// LayoutHorizontal arranges every frame in a single row.
	LayoutHorizontal Layout = iota
	// LayoutGrid arranges frames into a grid whose width is set by
	// WithColumns.
	LayoutGrid
)

type renderOptions struct {
	scale       int
	layout      Layout
	columns     int
	strict      bool
	frameExport bool
	gifExport   bool
}

func defaultOptions() renderOptions {
	return renderOptions{
		scale:   1,
		layout:  LayoutHorizontal,
		columns: 0,
		strict:  false,
	}
}

// RenderOption configures the imaging collaborator's output (sheet
// scale, layout, strictness of the preceding validation pass, and
// which optional artifacts — per-frame PNGs, an animated GIF — get
// produced alongside the sheet).
type RenderOption func(*renderOptions)

// WithScale sets the nearest-neighbour integer scale factor applied to
// every exported image. Values less than 1 are treated as 1.
func WithScale(n int) RenderOption {
	return func(o *renderOptions) {
		if n < 1 {
			n = 1
		}
		o.scale = n
	}
}

// WithLayout selects horizontal-strip or grid sheet assembly.
func WithLayout(l Layout) RenderOption {
	return func(o *renderOptions) { o.layout = l }
}

// WithColumns sets the column count for LayoutGrid. Ignored under
// LayoutHorizontal.
func WithColumns(n int) RenderOption {
	return func(o *renderOptions) { o.columns = n }
}

// WithStrict enables strict-mode validation (its one extra rule is that
// noise_points must carry its seed argument, which the op schema's
// argument count already requires in either mode).
func WithStrict(strict bool) RenderOption {
	return func(o *renderOptions) { o.strict = strict }
}

// WithFrameExport requests one PNG per frame alongside the sheet.
func WithFrameExport(enabled bool) RenderOption {
	return func(o *renderOptions) { o.frameExport = enabled }
}

// WithGIF requests an animated GIF export alongside the sheet.
func WithGIF(enabled bool) RenderOption {
	return func(o *renderOptions) { o.gifExport = enabled }
}

func newRenderOptions(opts ...RenderOption) renderOptions {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
