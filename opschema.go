package spriteforge

// argKind identifies how the validator checks a single positional
// argument of an op.
type argKind byte

const (
	argInt       argKind = iota // i
	argFloat                    // f
	argStr                      // s
	argColorIdx                 // c / ix — palette index
	argLayerName                // L — must name a previously-seen layer
	argIndexList                // a single int or a comma-separated string of ints
)

// opSpec describes one opcode's argument-count bounds and, for the
// first min(len(ArgTypes)) positions, the expected type. poly_fill's
// trailing (x,y) pairs and variable-width ops are bounds-checked by the
// validator beyond ArgTypes using Variadic.
type opSpec struct {
	MinArgs  int
	MaxArgs  int
	ArgTypes []argKind
	// Variadic, when true, means args beyond len(ArgTypes) repeat the
	// last ArgTypes entries in a cycle (used by poly_fill's (x,y) pairs).
	Variadic bool
}

// opSchema is the authoritative op table: name, min/max argument count,
// and per-position argument types. The validator checks every op
// against it; the interpreter's dispatch in render.go does not read it
// and handles the same op names in its own switch.
var opSchema = map[string]opSpec{
	"clear":       {1, 1, []argKind{argColorIdx}, false},
	"pixel":       {3, 3, []argKind{argColorIdx, argInt, argInt}, false},
	"layer_begin": {1, 1, []argKind{argStr}, false},
	"layer_end":   {0, 0, nil, false},
	"layer_merge": {0, 1, []argKind{argStr}, false},
	"copy_layer":  {2, 2, []argKind{argStr, argStr}, false},
	"line":        {5, 5, []argKind{argColorIdx, argInt, argInt, argInt, argInt}, false},
	"thick_line":  {6, 6, []argKind{argColorIdx, argInt, argInt, argInt, argInt, argInt}, false},

	"rect":         {5, 5, []argKind{argColorIdx, argInt, argInt, argInt, argInt}, false},
	"rect_stroke":  {5, 5, []argKind{argColorIdx, argInt, argInt, argInt, argInt}, false},
	"rect_fill":    {5, 5, []argKind{argColorIdx, argInt, argInt, argInt, argInt}, false},
	"ellipse_fill": {5, 5, []argKind{argColorIdx, argInt, argInt, argInt, argInt}, false},

	"ellipse_stroke": {5, 5, []argKind{argColorIdx, argInt, argInt, argInt, argInt}, false},
	"circle_fill":    {4, 4, []argKind{argColorIdx, argInt, argInt, argInt}, false},
	"capsule_fill":   {6, 6, []argKind{argColorIdx, argInt, argInt, argInt, argInt, argInt}, false},

	"poly_fill": {3, 100, []argKind{argColorIdx, argInt, argInt}, true},

	"bezier": {7, 7, []argKind{argColorIdx, argInt, argInt, argInt, argInt, argInt, argInt}, false},
	"fill":   {3, 3, []argKind{argColorIdx, argInt, argInt}, false},

	"inset_fill":  {6, 6, []argKind{argColorIdx, argInt, argInt, argInt, argInt, argInt}, false},
	"dither_rect": {5, 6, []argKind{argColorIdx, argInt, argInt, argInt, argInt, argStr}, false},

	"gradient_radial": {4, 4, []argKind{argIndexList, argInt, argInt, argInt}, false},
	"gradient_linear": {5, 5, []argKind{argIndexList, argInt, argInt, argInt, argInt}, false},

	"mask_layer":    {1, 1, []argKind{argLayerName}, false},
	"outline":       {1, 2, []argKind{argColorIdx, argInt}, false},
	"outline_layer": {1, 2, []argKind{argColorIdx, argInt}, false},

	"shade_band":    {3, 4, []argKind{argColorIdx, argLayerName, argStr, argInt}, false},
	"noise_points":  {4, 4, []argKind{argColorIdx, argLayerName, argInt, argInt}, false},
	"color_replace": {2, 3, []argKind{argColorIdx, argColorIdx, argLayerName}, false},

	"translate": {2, 2, []argKind{argInt, argInt}, false},
	"rotate":    {1, 3, []argKind{argFloat, argFloat, argFloat}, false},
	"mirror":    {0, 1, []argKind{argStr}, false},
}
