package spriteforge

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// Colour is a decoded RGBA colour: four bytes, red, green, blue, alpha.
type Colour [4]byte

// ParseColour decodes a "#RRGGBB" or "#RRGGBBAA" string into a Colour.
// Alpha defaults to 0xFF when omitted.
func ParseColour(s string) (Colour, error) {
	if !strings.HasPrefix(s, "#") {
		return Colour{}, fmt.Errorf("%w: colour %q must start with '#'", ErrInvalidColour, s)
	}
	hexPart := s[1:]

	var raw []byte
	switch len(hexPart) {
	case 6, 8:
		var err error
		raw, err = hex.DecodeString(hexPart)
		if err != nil {
			return Colour{}, fmt.Errorf("%w: colour %q: %v", ErrInvalidColour, s, err)
		}
	default:
		return Colour{}, fmt.Errorf("%w: colour %q must be #RRGGBB or #RRGGBBAA", ErrInvalidColour, s)
	}

	var c Colour
	c[0], c[1], c[2] = raw[0], raw[1], raw[2]
	if len(raw) == 4 {
		c[3] = raw[3]
	} else {
		c[3] = 0xFF
	}
	return c, nil
}

// Palette is a positionally-indexed sequence of Colour. Index 0 is by
// convention fully transparent, though this is not enforced.
type Palette []Colour

// At returns the colour at index i and whether i is in range.
func (p Palette) At(i int) (Colour, bool) {
	if i < 0 || i >= len(p) {
		return Colour{}, false
	}
	return p[i], true
}
