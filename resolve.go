package spriteforge

import "fmt"

// Resolve computes the final op list for every frame, left to right,
// applying derived-frame inheritance (base + overrides + append_ops).
// It assumes doc has already passed Validate and does not re-validate;
// malformed base indices return ErrValidationFailed.
func Resolve(doc Document) ([][]Op, error) {
	resolved := make([][]Op, len(doc.Frames))

	for i, f := range doc.Frames {
		if !f.IsDerived() {
			ops := make([]Op, len(f.Ops))
			copy(ops, f.Ops)
			resolved[i] = ops
			continue
		}

		base := *f.Base
		if base < 0 || base >= i {
			return nil, fmt.Errorf("%w: frame %d: base %d is not an earlier frame", ErrValidationFailed, i, base)
		}

		ops := make([]Op, len(resolved[base]))
		copy(ops, resolved[base])

		for _, ov := range f.Overrides {
			if ov.OpIndex < 0 || ov.OpIndex >= len(ops) {
				continue // out-of-range overrides are silently ignored
			}
			ops[ov.OpIndex] = ov.Op
		}

		ops = append(ops, f.AppendOps...)
		resolved[i] = ops
	}

	return resolved, nil
}
