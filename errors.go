package spriteforge

import "errors"

// Sentinel errors returned by ParseColour, Load, Resolve, and RenderFrame.
// Check with errors.Is; each is wrapped with fmt.Errorf to add context.
var (
	// ErrInvalidColour is returned when a colour string cannot be decoded.
	ErrInvalidColour = errors.New("spriteforge: invalid colour")

	// ErrInvalidDocument is returned by Load for malformed document JSON.
	ErrInvalidDocument = errors.New("spriteforge: invalid document")

	// ErrValidationFailed is returned by Resolve when the document has not
	// passed validation; Resolve does not re-validate.
	ErrValidationFailed = errors.New("spriteforge: document failed validation")

	// ErrUnknownOp is a runtime error: an op name not present in the op
	// schema table reached the interpreter dispatch. Unreachable for a
	// document that passed Validate.
	ErrUnknownOp = errors.New("spriteforge: unknown op")

	// ErrMissingMaskLayer is a runtime error: shade_band or noise_points
	// referenced a layer name that does not exist.
	ErrMissingMaskLayer = errors.New("spriteforge: missing mask layer")

	// ErrUnsupportedShadeSide is a runtime error: shade_band was given a
	// side argument other than right, bottom, top_left, or edge.
	ErrUnsupportedShadeSide = errors.New("spriteforge: unsupported shade_band side")
)
