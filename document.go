package spriteforge

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// CanvasSize is the fixed pixel dimensions shared by every frame of a
// document.
type CanvasSize struct {
	W int `json:"w"`
	H int `json:"h"`
}

// Override replaces the op at OpIndex in a derived frame's resolved base.
type Override struct {
	OpIndex int `json:"op_index"`
	Op      Op  `json:"op"`
}

// Frame is either concrete (Ops is set, Base is nil) or derived (Base
// names an earlier frame; Overrides and/or AppendOps modify it).
type Frame struct {
	// Concrete frame fields.
	Ops        []Op `json:"ops,omitempty"`
	DurationMs int  `json:"durationMs,omitempty"`

	// Derived frame fields.
	Base      *int       `json:"base,omitempty"`
	Overrides []Override `json:"overrides,omitempty"`
	AppendOps []Op       `json:"append_ops,omitempty"`
}

// IsDerived reports whether f inherits from an earlier frame.
func (f Frame) IsDerived() bool { return f.Base != nil }

// EffectiveDurationMs returns f.DurationMs, defaulting to 100ms.
func (f Frame) EffectiveDurationMs() int {
	if f.DurationMs == 0 {
		return 100
	}
	return f.DurationMs
}

// Animation names an ordered sequence of frame indices to play back.
type Animation struct {
	Frames []int `json:"frames"`
	Loop   bool  `json:"loop"`
}

// UnmarshalJSON decodes Animation, defaulting Loop to true when the
// "loop" key is absent from the document.
func (a *Animation) UnmarshalJSON(data []byte) error {
	wire := struct {
		Frames []int `json:"frames"`
		Loop   *bool `json:"loop"`
	}{}
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	a.Frames = wire.Frames
	if wire.Loop == nil {
		a.Loop = true
	} else {
		a.Loop = *wire.Loop
	}
	return nil
}

// Document is the top-level spriteops entity, immutable once loaded.
type Document struct {
	Format     string               `json:"format"`
	Version    int                  `json:"version"`
	Canvas     CanvasSize           `json:"canvas"`
	Palette    Palette              `json:"-"`
	Frames     []Frame              `json:"frames"`
	Animations map[string]Animation `json:"animations,omitempty"`
	Name       string               `json:"name,omitempty"`
}

// documentWire mirrors Document's JSON shape except that the palette is
// decoded as raw hex strings before ParseColour runs over each one.
type documentWire struct {
	Format     string               `json:"format"`
	Version    int                  `json:"version"`
	Canvas     CanvasSize           `json:"canvas"`
	Palette    []string             `json:"palette"`
	Frames     []Frame              `json:"frames"`
	Animations map[string]Animation `json:"animations,omitempty"`
	Name       string               `json:"name,omitempty"`
}

// UnmarshalJSON decodes the palette's hex strings into Colour values.
// Malformed colours are reported as ErrInvalidColour, not silently
// dropped; Load surfaces the error to the caller. The validator (not
// this method) is responsible for collecting every document-shape
// diagnostic.
func (d *Document) UnmarshalJSON(data []byte) error {
	var w documentWire
	if err := json.Unmarshal(data, &w); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}

	pal := make(Palette, len(w.Palette))
	for i, s := range w.Palette {
		c, err := ParseColour(s)
		if err != nil {
			return fmt.Errorf("%w: palette[%d]: %w", ErrInvalidDocument, i, err)
		}
		pal[i] = c
	}

	d.Format = w.Format
	d.Version = w.Version
	d.Canvas = w.Canvas
	d.Palette = pal
	d.Frames = w.Frames
	d.Animations = w.Animations
	d.Name = w.Name
	return nil
}

// Load decodes a spriteops document from r, tolerating a leading UTF-8
// byte-order mark. It performs no validation beyond well-formed JSON and
// colour decoding — call Validate on the result before Resolve.
func Load(r io.Reader) (Document, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return Document{}, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	raw = bytes.TrimPrefix(raw, []byte{0xEF, 0xBB, 0xBF})

	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return Document{}, err
	}
	if doc.Name == "" {
		doc.Name = "sprite"
	}
	return doc, nil
}

// Op is a single spriteops instruction: an operation name followed by
// positional arguments of mixed type, decoded from a JSON array such as
// ["line", 1, 0, 0, 3, 3].
type Op struct {
	Name string
	Args []any
}

// UnmarshalJSON decodes the heterogeneous ["name", arg, arg, ...] array.
func (o *Op) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("%w: op: %v", ErrInvalidDocument, err)
	}
	if len(raw) == 0 {
		return fmt.Errorf("%w: op array must have at least a name", ErrInvalidDocument)
	}
	var name string
	if err := json.Unmarshal(raw[0], &name); err != nil {
		return fmt.Errorf("%w: op name: %v", ErrInvalidDocument, err)
	}
	args := make([]any, 0, len(raw)-1)
	for _, r := range raw[1:] {
		var v any
		if err := json.Unmarshal(r, &v); err != nil {
			return fmt.Errorf("%w: op %q arg: %v", ErrInvalidDocument, name, err)
		}
		args = append(args, v)
	}
	o.Name = name
	o.Args = args
	return nil
}

// MarshalJSON re-encodes the op as a ["name", arg, ...] array.
func (o Op) MarshalJSON() ([]byte, error) {
	arr := make([]any, 0, len(o.Args)+1)
	arr = append(arr, o.Name)
	arr = append(arr, o.Args...)
	return json.Marshal(arr)
}

// NArgs returns the number of positional arguments.
func (o Op) NArgs() int { return len(o.Args) }

// Int returns argument i as an int. JSON numbers decode to float64; Int
// truncates only when the value has no fractional part, otherwise ok is
// false.
func (o Op) Int(i int) (int, bool) {
	if i < 0 || i >= len(o.Args) {
		return 0, false
	}
	f, ok := o.Args[i].(float64)
	if !ok || f != float64(int(f)) {
		return 0, false
	}
	return int(f), true
}

// Float returns argument i as a float64.
func (o Op) Float(i int) (float64, bool) {
	if i < 0 || i >= len(o.Args) {
		return 0, false
	}
	f, ok := o.Args[i].(float64)
	return f, ok
}

// Str returns argument i as a string.
func (o Op) Str(i int) (string, bool) {
	if i < 0 || i >= len(o.Args) {
		return "", false
	}
	s, ok := o.Args[i].(string)
	return s, ok
}
