package spriteforge

import (
	"errors"
	"testing"
)

func TestParseColour(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    Colour
		wantErr bool
	}{
		{"opaque six digit", "#ff0000", Colour{0xff, 0x00, 0x00, 0xff}, false},
		{"eight digit with alpha", "#00ff0080", Colour{0x00, 0xff, 0x00, 0x80}, false},
		{"fully transparent", "#00000000", Colour{0x00, 0x00, 0x00, 0x00}, false},
		{"missing hash", "ff0000", Colour{}, true},
		{"wrong length", "#fff", Colour{}, true},
		{"non hex digits", "#gggggg", Colour{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseColour(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseColour(%q) = nil error, want error", tt.in)
				}
				if !errors.Is(err, ErrInvalidColour) {
					t.Errorf("ParseColour(%q) error = %v, want wrapping ErrInvalidColour", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseColour(%q) unexpected error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseColour(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestPaletteAt(t *testing.T) {
	p := Palette{{0, 0, 0, 0}, {255, 0, 0, 255}}

	if c, ok := p.At(1); !ok || c != (Colour{255, 0, 0, 255}) {
		t.Errorf("p.At(1) = %v, %v", c, ok)
	}
	if _, ok := p.At(-1); ok {
		t.Error("p.At(-1) should be out of range")
	}
	if _, ok := p.At(2); ok {
		t.Error("p.At(2) should be out of range")
	}
}
