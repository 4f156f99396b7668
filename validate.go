package spriteforge

// Validate checks doc against every rule in the validator contract and
// returns every diagnostic found — it never stops at the first error.
// strict additionally requires noise_points to carry its seed argument;
// since the op schema already requires all four noise_points arguments,
// a noise_points without a seed is rejected in either mode. An empty
// return means doc is safe to pass to Resolve.
func Validate(doc Document, strict bool) []Diagnostic {
	var diags []Diagnostic

	if doc.Format != "spriteops" {
		diags = append(diags, diag(-1, -1, "format must equal \"spriteops\", got %q", doc.Format))
	}
	if doc.Canvas.W <= 0 || doc.Canvas.H <= 0 {
		diags = append(diags, diag(-1, -1, "canvas dimensions must be positive, got %dx%d", doc.Canvas.W, doc.Canvas.H))
	}
	if len(doc.Palette) == 0 {
		diags = append(diags, diag(-1, -1, "palette must be a non-empty list"))
	}

	if len(doc.Frames) == 0 {
		diags = append(diags, diag(-1, -1, "frames must be a non-empty list"))
	}

	for fi, f := range doc.Frames {
		diags = append(diags, validateFrame(doc, fi, f, strict)...)
	}

	for name, anim := range doc.Animations {
		for _, idx := range anim.Frames {
			if idx < 0 || idx >= len(doc.Frames) {
				diags = append(diags, diag(-1, -1, "animation %q references out-of-range frame %d", name, idx))
			}
		}
	}

	return diags
}

func validateFrame(doc Document, fi int, f Frame, strict bool) []Diagnostic {
	var diags []Diagnostic

	if f.IsDerived() {
		if len(f.Ops) > 0 {
			diags = append(diags, diag(fi, -1, "derived frame must not set ops"))
		}
		if *f.Base < 0 || *f.Base >= fi {
			diags = append(diags, diag(fi, -1, "base must refer to an earlier frame, got %d", *f.Base))
		}
		if len(f.Overrides) == 0 && len(f.AppendOps) == 0 {
			diags = append(diags, diag(fi, -1, "derived frame must carry overrides or append_ops"))
		}
		for _, ov := range f.Overrides {
			diags = append(diags, validateOp(doc, fi, ov.OpIndex, ov.Op, strict)...)
		}
		for i, op := range f.AppendOps {
			diags = append(diags, validateOp(doc, fi, len(f.Ops)+i, op, strict)...)
		}
		return diags
	}

	seen := map[string]bool{"base": true}
	for oi, op := range f.Ops {
		diags = append(diags, validateOp(doc, fi, oi, op, strict)...)
		if op.Name == "layer_begin" {
			if name, ok := op.Str(0); ok {
				seen[name] = true
			}
		}
		diags = append(diags, validateLayerRefs(fi, oi, op, seen)...)
	}
	return diags
}

// validateLayerRefs checks that argLayerName-typed arguments of op name
// a layer introduced earlier in the same frame by layer_begin.
func validateLayerRefs(fi, oi int, op Op, seen map[string]bool) []Diagnostic {
	spec, ok := opSchema[op.Name]
	if !ok {
		return nil
	}
	var diags []Diagnostic
	for i, kind := range spec.ArgTypes {
		if kind != argLayerName || i >= op.NArgs() {
			continue
		}
		name, ok := op.Str(i)
		if !ok || !seen[name] {
			diags = append(diags, diag(fi, oi, "op %q references undeclared layer %q", op.Name, name))
		}
	}
	return diags
}

func validateOp(doc Document, fi, oi int, op Op, strict bool) []Diagnostic {
	var diags []Diagnostic

	spec, ok := opSchema[op.Name]
	if !ok {
		diags = append(diags, diag(fi, oi, "unknown op %q", op.Name))
		return diags
	}
	if op.NArgs() < spec.MinArgs || op.NArgs() > spec.MaxArgs {
		diags = append(diags, diag(fi, oi, "op %q takes %d-%d arguments, got %d", op.Name, spec.MinArgs, spec.MaxArgs, op.NArgs()))
		return diags
	}

	for i := range op.Args {
		kind := argKindAt(spec, i)
		switch kind {
		case argColorIdx:
			idx, ok := op.Int(i)
			if !ok || idx < 0 || idx >= len(doc.Palette) {
				diags = append(diags, diag(fi, oi, "op %q arg %d: palette index out of range", op.Name, i))
			}
		case argInt:
			if _, ok := op.Int(i); !ok {
				diags = append(diags, diag(fi, oi, "op %q arg %d: expected integer", op.Name, i))
			}
		case argFloat:
			if _, ok := op.Float(i); !ok {
				diags = append(diags, diag(fi, oi, "op %q arg %d: expected number", op.Name, i))
			}
		case argStr, argLayerName:
			if _, ok := op.Str(i); !ok {
				diags = append(diags, diag(fi, oi, "op %q arg %d: expected string", op.Name, i))
			}
		case argIndexList:
			if _, intOK := op.Int(i); !intOK {
				if _, strOK := op.Str(i); !strOK {
					diags = append(diags, diag(fi, oi, "op %q arg %d: expected a palette index or comma-separated index list", op.Name, i))
				}
			}
		}
	}

	if strict && op.Name == "noise_points" && op.NArgs() < 4 {
		diags = append(diags, diag(fi, oi, "noise_points requires a seed argument in strict mode"))
	}

	return diags
}

// argKindAt returns the expected argument kind at position i, extending
// the last type in a Variadic spec (poly_fill's (x,y) pairs) by cycling.
func argKindAt(spec opSpec, i int) argKind {
	if i < len(spec.ArgTypes) {
		return spec.ArgTypes[i]
	}
	if !spec.Variadic || len(spec.ArgTypes) == 0 {
		return argInt
	}
	tail := spec.ArgTypes[1:] // skip the leading colour arg when cycling
	if len(tail) == 0 {
		return argInt
	}
	return tail[(i-len(spec.ArgTypes))%len(tail)]
}
