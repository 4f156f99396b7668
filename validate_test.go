package spriteforge

import (
	"strings"
	"testing"
)

func validDoc() Document {
	return Document{
		Format:  "spriteops",
		Canvas:  CanvasSize{W: 4, H: 4},
		Palette: Palette{{0, 0, 0, 0}, {255, 0, 0, 255}},
		Frames: []Frame{
			{Ops: []Op{mustOp("clear", 0.0), mustOp("pixel", 1.0, 0.0, 0.0)}},
		},
	}
}

func TestValidateAcceptsWellFormedDocument(t *testing.T) {
	if diags := Validate(validDoc(), false); len(diags) != 0 {
		t.Errorf("Validate(valid doc) = %v, want none", diags)
	}
}

func TestValidateBadFormat(t *testing.T) {
	d := validDoc()
	d.Format = "not-spriteops"
	diags := Validate(d, false)
	if len(diags) == 0 {
		t.Fatal("expected a diagnostic for bad format")
	}
}

func TestValidateNonPositiveCanvas(t *testing.T) {
	d := validDoc()
	d.Canvas = CanvasSize{W: 0, H: 4}
	diags := Validate(d, false)
	if len(diags) == 0 {
		t.Fatal("expected a diagnostic for non-positive canvas dimension")
	}
}

func TestValidateEmptyPalette(t *testing.T) {
	d := validDoc()
	d.Palette = nil
	diags := Validate(d, false)
	if len(diags) == 0 {
		t.Fatal("expected a diagnostic for empty palette")
	}
}

func TestValidateUnknownOp(t *testing.T) {
	d := validDoc()
	d.Frames[0].Ops = []Op{mustOp("not_a_real_op")}
	diags := Validate(d, false)
	if len(diags) != 1 {
		t.Fatalf("Validate = %v, want exactly one diagnostic", diags)
	}
}

func TestValidatePaletteIndexOutOfRange(t *testing.T) {
	d := validDoc()
	d.Frames[0].Ops = []Op{mustOp("clear", 99.0)}
	diags := Validate(d, false)
	if len(diags) == 0 {
		t.Fatal("expected a diagnostic for out-of-range palette index")
	}
}

func TestValidateUndeclaredLayerReference(t *testing.T) {
	d := validDoc()
	d.Frames[0].Ops = []Op{mustOp("mask_layer", "ghost")}
	diags := Validate(d, false)
	if len(diags) == 0 {
		t.Fatal("expected a diagnostic for an undeclared layer reference")
	}
}

func TestValidateLayerBeginDeclaresLayer(t *testing.T) {
	d := validDoc()
	d.Frames[0].Ops = []Op{
		mustOp("layer_begin", "fx"),
		mustOp("mask_layer", "fx"),
	}
	diags := Validate(d, false)
	if len(diags) != 0 {
		t.Errorf("Validate = %v, want none (fx was declared by layer_begin)", diags)
	}
}

func TestValidateArgCount(t *testing.T) {
	d := validDoc()
	d.Frames[0].Ops = []Op{{Name: "line", Args: []any{1.0, 0.0}}}
	diags := Validate(d, false)
	if len(diags) == 0 {
		t.Fatal("expected a diagnostic for a short argument list")
	}
}

func TestValidateDerivedFrameBaseMustBeEarlier(t *testing.T) {
	base := 5
	d := validDoc()
	d.Frames = append(d.Frames, Frame{Base: &base, AppendOps: []Op{mustOp("clear", 0.0)}})
	diags := Validate(d, false)

	found := false
	for _, diag := range diags {
		if diag.Frame == 1 && strings.Contains(diag.Message, "earlier frame") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a diagnostic mentioning 'earlier frame', got %v", diags)
	}
}

func TestValidateDerivedFrameRequiresOverridesOrAppends(t *testing.T) {
	base := 0
	d := validDoc()
	d.Frames = append(d.Frames, Frame{Base: &base})
	diags := Validate(d, false)
	if len(diags) == 0 {
		t.Fatal("expected a diagnostic: derived frame with neither overrides nor append_ops")
	}
}

func TestValidateStrictRequiresNoiseSeed(t *testing.T) {
	d := validDoc()
	d.Frames[0].Ops = []Op{{Name: "noise_points", Args: []any{1.0, "base", 5.0}}}
	if diags := Validate(d, true); len(diags) == 0 {
		t.Error("strict mode should flag noise_points missing its seed argument")
	}
}

func TestValidateGradientAcceptsIntegerIndexArg(t *testing.T) {
	d := validDoc()
	d.Frames[0].Ops = []Op{mustOp("gradient_radial", 1.0, 0.0, 0.0, 2.0)}
	diags := Validate(d, false)
	if len(diags) != 0 {
		t.Errorf("Validate = %v, want none (a single integer index is valid)", diags)
	}
}

func TestValidateAnimationFrameRange(t *testing.T) {
	d := validDoc()
	d.Animations = map[string]Animation{"walk": {Frames: []int{0, 9}}}
	diags := Validate(d, false)
	if len(diags) == 0 {
		t.Fatal("expected a diagnostic for an out-of-range animation frame index")
	}
}
