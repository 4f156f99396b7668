package imaging

import (
	"bytes"
	"image"
	"image/color"
	"testing"
)

func solid(w, h int, c color.Color) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func TestBuildSheetHorizontal(t *testing.T) {
	frames := []image.Image{
		solid(2, 2, color.RGBA{255, 0, 0, 255}),
		solid(2, 2, color.RGBA{0, 255, 0, 255}),
	}
	sheet := BuildSheet(frames, 0)
	b := sheet.Bounds()
	if b.Dx() != 4 || b.Dy() != 2 {
		t.Fatalf("sheet bounds = %v, want 4x2", b)
	}
}

func TestBuildSheetGrid(t *testing.T) {
	frames := []image.Image{
		solid(2, 2, color.RGBA{255, 0, 0, 255}),
		solid(2, 2, color.RGBA{0, 255, 0, 255}),
		solid(2, 2, color.RGBA{0, 0, 255, 255}),
	}
	sheet := BuildSheet(frames, 2)
	b := sheet.Bounds()
	if b.Dx() != 4 || b.Dy() != 4 {
		t.Fatalf("grid sheet bounds = %v, want 4x4 (2 cols, 2 rows)", b)
	}
}

func TestBuildSheetEmpty(t *testing.T) {
	sheet := BuildSheet(nil, 0)
	if sheet.Bounds().Dx() != 0 {
		t.Error("BuildSheet(nil) should produce an empty image")
	}
}

func TestScaleNearestFactorOne(t *testing.T) {
	img := solid(3, 3, color.RGBA{1, 2, 3, 255})
	scaled := ScaleNearest(img, 1)
	if scaled.Bounds().Dx() != 3 {
		t.Errorf("ScaleNearest(1) changed size: %v", scaled.Bounds())
	}
}

func TestScaleNearestUpscales(t *testing.T) {
	img := solid(2, 2, color.RGBA{9, 9, 9, 255})
	scaled := ScaleNearest(img, 3)
	b := scaled.Bounds()
	if b.Dx() != 6 || b.Dy() != 6 {
		t.Fatalf("ScaleNearest(3) bounds = %v, want 6x6", b)
	}
}

func TestEncodeGIFProducesOutput(t *testing.T) {
	frames := []image.Image{
		solid(2, 2, color.RGBA{255, 0, 0, 255}),
		solid(2, 2, color.RGBA{0, 0, 255, 255}),
	}
	var buf bytes.Buffer
	if err := EncodeGIF(&buf, frames, []int{100, 200}, 0); err != nil {
		t.Fatalf("EncodeGIF: %v", err)
	}
	if buf.Len() == 0 {
		t.Error("EncodeGIF produced no output")
	}
}

func TestMetadataEncode(t *testing.T) {
	m := Metadata{
		Sprite:      "hero",
		FrameWidth:  8,
		FrameHeight: 8,
		TotalFrames: 2,
		Scale:       1,
		Layout:      "horizontal",
		Animations: map[string]AnimationMeta{
			"walk": {Frames: []int{0, 1}, Loop: true, FrameDurations: []int{100, 100}},
		},
	}
	var buf bytes.Buffer
	if err := m.Encode(&buf); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if !bytes.Contains(buf.Bytes(), []byte(`"sprite": "hero"`)) {
		t.Errorf("metadata JSON missing sprite field: %s", buf.String())
	}
}
