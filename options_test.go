package spriteforge

import "testing"

func TestDefaultRenderOptions(t *testing.T) {
	o := newRenderOptions()
	if o.scale != 1 {
		t.Errorf("default scale = %d, want 1", o.scale)
	}
	if o.layout != LayoutHorizontal {
		t.Errorf("default layout = %v, want LayoutHorizontal", o.layout)
	}
	if o.strict {
		t.Error("default strict should be false")
	}
}

func TestWithScaleRejectsLessThanOne(t *testing.T) {
	o := newRenderOptions(WithScale(0))
	if o.scale != 1 {
		t.Errorf("WithScale(0) = %d, want clamped to 1", o.scale)
	}
}

func TestOptionsCompose(t *testing.T) {
	o := newRenderOptions(
		WithScale(3),
		WithLayout(LayoutGrid),
		WithColumns(4),
		WithStrict(true),
		WithFrameExport(true),
		WithGIF(true),
	)
	if o.scale != 3 || o.layout != LayoutGrid || o.columns != 4 || !o.strict || !o.frameExport || !o.gifExport {
		t.Errorf("composed options = %+v", o)
	}
}
