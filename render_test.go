package spriteforge

import (
	"errors"
	"testing"
)

func mustOp(name string, args ...any) Op {
	return Op{Name: name, Args: args}
}

func TestRenderFrameScenario1ClearAndPixel(t *testing.T) {
	// Canvas 4x1, palette ["#00000000","#ff0000"], clear 0, pixel 1 2 0 -> [0,0,1,0]
	ops := []Op{
		mustOp("clear", 0.0),
		mustOp("pixel", 1.0, 2.0, 0.0),
	}
	got, err := RenderFrame(ops, 4, 1)
	if err != nil {
		t.Fatalf("RenderFrame: %v", err)
	}
	want := []int{0, 0, 1, 0}
	for i, w := range want {
		if got[i] != w {
			t.Errorf("pixel %d = %d, want %d", i, got[i], w)
		}
	}
}

func TestRenderFrameScenario2OutlineNoNewPixels(t *testing.T) {
	// Canvas 3x3, rect_fill covers everything, outline should add nothing.
	ops := []Op{
		mustOp("clear", 0.0),
		mustOp("rect_fill", 1.0, 0.0, 0.0, 3.0, 3.0),
		mustOp("outline", 2.0, 1.0),
	}
	got, err := RenderFrame(ops, 3, 3)
	if err != nil {
		t.Fatalf("RenderFrame: %v", err)
	}
	for i, v := range got {
		if v != 1 {
			t.Errorf("pixel %d = %d, want 1 (outline should add nothing)", i, v)
		}
	}
}

func TestRenderFrameScenario3NoiseDeterminism(t *testing.T) {
	ops := []Op{
		mustOp("clear", 0.0),
		mustOp("rect_fill", 1.0, 0.0, 0.0, 10.0, 10.0),
		mustOp("noise_points", 2.0, "base", 5.0, 42.0),
	}
	got, err := RenderFrame(ops, 10, 10)
	if err != nil {
		t.Fatalf("RenderFrame: %v", err)
	}

	x := int64(42)
	want := map[int]bool{}
	for i := 0; i < 5; i++ {
		x = (1103515245*x + 12345) % (1 << 31)
		want[int(x)%100] = true
	}
	for idx := range want {
		if got[idx] != 2 {
			t.Errorf("expected noise pixel %d to be set to 2", idx)
		}
	}
}

func TestRenderFrameScenario6GradientLinear(t *testing.T) {
	ops := []Op{
		mustOp("gradient_linear", "1,2", 0.0, 0.0, 3.0, 0.0),
	}
	got, err := RenderFrame(ops, 4, 1)
	if err != nil {
		t.Fatalf("RenderFrame: %v", err)
	}
	want := []int{1, 1, 2, 2}
	for i, w := range want {
		if got[i] != w {
			t.Errorf("pixel %d = %d, want %d", i, got[i], w)
		}
	}
}

func TestRenderFrameClearMutatesEveryLayer(t *testing.T) {
	ops := []Op{
		mustOp("layer_begin", "fx"),
		mustOp("pixel", 1.0, 0.0, 0.0),
		mustOp("layer_end"),
		mustOp("clear", 2.0),
	}
	got, err := RenderFrame(ops, 2, 1)
	if err != nil {
		t.Fatalf("RenderFrame: %v", err)
	}
	if got[0] != 2 {
		t.Error("clear should have overwritten the fx layer too, not just base")
	}
}

func TestRenderFrameUnknownOp(t *testing.T) {
	ops := []Op{mustOp("not_a_real_op")}
	_, err := RenderFrame(ops, 2, 2)
	if !errors.Is(err, ErrUnknownOp) {
		t.Errorf("RenderFrame with unknown op = %v, want ErrUnknownOp", err)
	}
}

func TestRenderFrameMissingMaskLayer(t *testing.T) {
	ops := []Op{mustOp("shade_band", 1.0, "ghost", "edge", 1.0)}
	_, err := RenderFrame(ops, 3, 3)
	if !errors.Is(err, ErrMissingMaskLayer) {
		t.Errorf("RenderFrame with missing shade_band mask = %v, want ErrMissingMaskLayer", err)
	}
}

func TestRenderFramePurity(t *testing.T) {
	ops := []Op{
		mustOp("clear", 0.0),
		mustOp("rect_fill", 1.0, 1.0, 1.0, 2.0, 2.0),
	}
	a, err := RenderFrame(ops, 5, 5)
	if err != nil {
		t.Fatalf("RenderFrame: %v", err)
	}
	b, err := RenderFrame(ops, 5, 5)
	if err != nil {
		t.Fatalf("RenderFrame: %v", err)
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatal("two independent renders of the same ops diverged")
		}
	}
}

func TestRenderFrameRotateInterpretsDegrees(t *testing.T) {
	// Canvas 3x3, pixel at (2,0), rotate 90 (degrees) about the default
	// centre (1,1) should move it to (2,2) — the same quarter turn as
	// raster.Rotate(b, math.Pi/2, ...). Passing 90 straight through as
	// radians would spin it far past a full turn instead.
	ops := []Op{
		mustOp("pixel", 1.0, 2.0, 0.0),
		mustOp("rotate", 90.0),
	}
	got, err := RenderFrame(ops, 3, 3)
	if err != nil {
		t.Fatalf("RenderFrame: %v", err)
	}
	if got[2*3+2] != 1 {
		t.Errorf("pixel (2,2) = %d, want 1 after a 90-degree rotate", got[2*3+2])
	}
	if got[0*3+2] != 0 {
		t.Error("pixel (2,0) should have moved away from its original position")
	}
}

func TestRenderFrameColorReplaceUnmaskedFallback(t *testing.T) {
	ops := []Op{
		mustOp("clear", 1.0),
		mustOp("color_replace", 1.0, 2.0, "ghost"),
	}
	got, err := RenderFrame(ops, 2, 2)
	if err != nil {
		t.Fatalf("RenderFrame: %v", err)
	}
	for _, v := range got {
		if v != 2 {
			t.Error("color_replace with a missing mask layer should fall back to an unmasked replace")
		}
	}
}
