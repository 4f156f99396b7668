package spriteforge

import (
	"fmt"
	"strings"
)

// Diagnostic is a single validator finding. It is never returned as a Go
// error — Validate collects every diagnostic in a document rather than
// stopping at the first one.
type Diagnostic struct {
	File    string // optional; set by collaborators that track source files
	Frame   int    // frame index, or -1 if the finding is not frame-scoped
	OpIndex int    // op index within the frame, or -1 if not op-scoped
	Message string
}

// Error formats the diagnostic as "File: ... | Frame: ... | Op #...\n
// Error: ...", matching the layout collaborators display to users. It
// implements the error interface purely for convenient formatting (e.g.
// with %v); Diagnostic is not used for Go-style error propagation.
func (d Diagnostic) Error() string {
	var parts []string
	if d.File != "" {
		parts = append(parts, fmt.Sprintf("File: %s", d.File))
	}
	if d.Frame >= 0 {
		parts = append(parts, fmt.Sprintf("Frame: %d", d.Frame))
	}
	if d.OpIndex >= 0 {
		parts = append(parts, fmt.Sprintf("Op #%d", d.OpIndex))
	}
	if len(parts) == 0 {
		return "Error: " + d.Message
	}
	return strings.Join(parts, " | ") + "\n  Error: " + d.Message
}

func diag(frame, op int, format string, args ...any) Diagnostic {
	return Diagnostic{Frame: frame, OpIndex: op, Message: fmt.Sprintf(format, args...)}
}
