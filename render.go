package spriteforge

import (
	"fmt"
	"math"

	"github.com/bloomberg-sudo-dev/spriteforge/internal/layer"
	"github.com/bloomberg-sudo-dev/spriteforge/internal/raster"
)

// RenderFrame dispatches a resolved op list against a fresh per-frame
// layer state and returns the merged view as a flat W*H slice of
// palette indices. It is a pure function of (ops, W, H): no state
// persists across calls. RenderFrame assumes ops has already passed
// Validate; an op name outside the schema is a runtime error here.
func RenderFrame(ops []Op, w, h int) ([]int, error) {
	ls := layer.New(w, h)
	log := Logger()

	for i, op := range ops {
		log.Debug("dispatch op", "index", i, "name", op.Name)
		if err := dispatch(ls, op, w, h); err != nil {
			return nil, fmt.Errorf("op %d (%s): %w", i, op.Name, err)
		}
	}

	return ls.MergedView().Pix, nil
}

func dispatch(ls *layer.Set, op Op, w, h int) error {
	switch op.Name {
	case "clear":
		c, _ := op.Int(0)
		ls.ClearAll(c)

	case "pixel":
		c, x, y := argsInt3(op)
		raster.Pixel(ls.Current(), c, x, y)

	case "layer_begin":
		name, _ := op.Str(0)
		ls.Begin(name)

	case "layer_end":
		ls.End()

	case "layer_merge":
		name := ""
		if op.NArgs() > 0 {
			name, _ = op.Str(0)
		}
		ls.Merge(name)

	case "copy_layer":
		src, _ := op.Str(0)
		dst, _ := op.Str(1)
		ls.CopyLayer(src, dst)

	case "line":
		c, x0, y0, x1, y1 := argsInt5(op)
		raster.Line(ls.Current(), c, x0, y0, x1, y1)

	case "thick_line":
		c, x0, y0, x1, y1 := argsInt5(op)
		thickness, _ := op.Int(5)
		raster.ThickLine(ls.Current(), c, x0, y0, x1, y1, thickness)

	case "rect", "rect_fill":
		c, x, y, rw, rh := argsInt5(op)
		raster.RectFill(ls.Current(), c, x, y, rw, rh)

	case "rect_stroke":
		c, x, y, rw, rh := argsInt5(op)
		raster.RectStroke(ls.Current(), c, x, y, rw, rh)

	case "ellipse_fill":
		c, cx, cy, rx := argsInt4(op)
		ry, _ := op.Int(4)
		raster.EllipseFill(ls.Current(), c, cx, cy, rx, ry)

	case "ellipse_stroke":
		c, cx, cy, rx := argsInt4(op)
		ry, _ := op.Int(4)
		raster.EllipseStroke(ls.Current(), c, cx, cy, rx, ry)

	case "circle_fill":
		c, cx, cy, r := argsInt4(op)
		raster.CircleFill(ls.Current(), c, cx, cy, r)

	case "capsule_fill":
		c, x0, y0, x1, y1 := argsInt5(op)
		r, _ := op.Int(5)
		raster.CapsuleFill(ls.Current(), c, x0, y0, x1, y1, r)

	case "poly_fill":
		c, _ := op.Int(0)
		raster.PolyFill(ls.Current(), c, polyPoints(op))

	case "bezier":
		c, _ := op.Int(0)
		x0, _ := op.Int(1)
		y0, _ := op.Int(2)
		cx, _ := op.Int(3)
		cy, _ := op.Int(4)
		x1, _ := op.Int(5)
		y1, _ := op.Int(6)
		raster.Bezier(ls.Current(), c, x0, y0, cx, cy, x1, y1)

	case "fill":
		c, x, y := argsInt3(op)
		raster.FloodFill(ls.Current(), c, x, y)

	case "inset_fill":
		c, x, y, rw := argsInt4(op)
		rh, _ := op.Int(4)
		k, _ := op.Int(5)
		layer.InsetFill(ls.Current(), ls.MergedView(), c, x, y, rw, rh, k)

	case "dither_rect":
		c, x, y, rw := argsInt4(op)
		rh, _ := op.Int(4)
		pattern := "checker"
		if op.NArgs() > 5 {
			pattern, _ = op.Str(5)
		}
		if pattern != "checker" && pattern != "dots" {
			Logger().Warn("dither_rect: unrecognised pattern, drawing nothing", "pattern", pattern)
		}
		raster.DitherRect(ls.Current(), c, x, y, rw, rh, pattern)

	case "gradient_radial":
		indices := raster.ParseIndexList(op.Args[0])
		cx, _ := op.Int(1)
		cy, _ := op.Int(2)
		r, _ := op.Int(3)
		raster.GradientRadial(ls.Current(), indices, raster.Point{X: float64(cx), Y: float64(cy)}, float64(r))

	case "gradient_linear":
		indices := raster.ParseIndexList(op.Args[0])
		x0, _ := op.Int(1)
		y0, _ := op.Int(2)
		x1, _ := op.Int(3)
		y1, _ := op.Int(4)
		raster.GradientLinear(ls.Current(), indices, raster.Point{X: float64(x0), Y: float64(y0)}, raster.Point{X: float64(x1), Y: float64(y1)})

	case "mask_layer":
		name, _ := op.Str(0)
		ls.MaskLayer(name)

	case "outline":
		c, _ := op.Int(0)
		thickness := 1
		if op.NArgs() > 1 {
			thickness, _ = op.Int(1)
		}
		raster.OutlineFromMask(ls.Current(), ls.MergedView(), c, thickness)

	case "outline_layer":
		c, _ := op.Int(0)
		thickness := 1
		if op.NArgs() > 1 {
			thickness, _ = op.Int(1)
		}
		cur := ls.Current()
		raster.OutlineFromMask(cur, cur, c, thickness)

	case "shade_band":
		c, _ := op.Int(0)
		name, _ := op.Str(1)
		side, _ := op.Str(2)
		thickness := 1
		if op.NArgs() > 3 {
			thickness, _ = op.Int(3)
		}
		mask, ok := ls.Get(name)
		if !ok {
			return fmt.Errorf("%w: %q", ErrMissingMaskLayer, name)
		}
		if err := layer.ShadeBand(ls.Current(), mask, c, side, thickness); err != nil {
			return fmt.Errorf("%w: %v", ErrUnsupportedShadeSide, err)
		}

	case "noise_points":
		c, _ := op.Int(0)
		name, _ := op.Str(1)
		count, _ := op.Int(2)
		seed, _ := op.Int(3)
		mask, ok := ls.Get(name)
		if !ok {
			return fmt.Errorf("%w: %q", ErrMissingMaskLayer, name)
		}
		layer.NoisePoints(ls.Current(), mask, c, count, seed)

	case "color_replace":
		oldC, _ := op.Int(0)
		newC, _ := op.Int(1)
		var mask *raster.Buffer
		if op.NArgs() > 2 {
			name, _ := op.Str(2)
			if b, ok := ls.Get(name); ok {
				mask = b
			} else {
				Logger().Warn("color_replace: mask layer missing, falling back to unmasked replace", "layer", name)
			}
		}
		raster.ColorReplace(ls.Current(), oldC, newC, mask)

	case "translate":
		dx, _ := op.Int(0)
		dy, _ := op.Int(1)
		raster.Translate(ls.Current(), dx, dy)

	case "rotate":
		angleDeg, _ := op.Float(0)
		cx, cy := float64(w/2), float64(h/2)
		if op.NArgs() > 1 {
			cx, _ = op.Float(1)
		}
		if op.NArgs() > 2 {
			cy, _ = op.Float(2)
		}
		raster.Rotate(ls.Current(), angleDeg*math.Pi/180, raster.Point{X: cx, Y: cy})

	case "mirror":
		axis := "x"
		if op.NArgs() > 0 {
			axis, _ = op.Str(0)
		}
		raster.Mirror(ls.Current(), axis)

	default:
		return fmt.Errorf("%w: %q", ErrUnknownOp, op.Name)
	}

	return nil
}

func argsInt3(op Op) (a, b, c int) {
	a, _ = op.Int(0)
	b, _ = op.Int(1)
	c, _ = op.Int(2)
	return
}

func argsInt4(op Op) (a, b, c, d int) {
	a, _ = op.Int(0)
	b, _ = op.Int(1)
	c, _ = op.Int(2)
	d, _ = op.Int(3)
	return
}

func argsInt5(op Op) (a, b, c, d, e int) {
	a, _ = op.Int(0)
	b, _ = op.Int(1)
	c, _ = op.Int(2)
	d, _ = op.Int(3)
	e, _ = op.Int(4)
	return
}

// polyPoints decodes poly_fill's trailing (x,y) pairs starting at
// argument index 1.
func polyPoints(op Op) []raster.Point {
	pts := make([]raster.Point, 0, (op.NArgs()-1)/2)
	for i := 1; i+1 < op.NArgs(); i += 2 {
		x, _ := op.Int(i)
		y, _ := op.Int(i + 1)
		pts = append(pts, raster.Point{X: float64(x), Y: float64(y)})
	}
	return pts
}
