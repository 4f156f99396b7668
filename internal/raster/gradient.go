package raster

import (
	"math"
	"strconv"
	"strings"
)

// ParseIndexList decodes a gradient index argument, which the document
// format allows as either a single integer or a comma-separated string
// of integers (e.g. "1,2,3"); both decode to the same ordered list.
func ParseIndexList(arg any) []int {
	switch v := arg.(type) {
	case float64:
		return []int{int(v)}
	case string:
		parts := strings.Split(v, ",")
		out := make([]int, 0, len(parts))
		for _, p := range parts {
			n, err := strconv.Atoi(strings.TrimSpace(p))
			if err != nil {
				continue
			}
			out = append(out, n)
		}
		return out
	default:
		return nil
	}
}

// GradientLinear fills the full buffer along the axis from p0 to p1.
// For each pixel, t = clamp(proj, 0, 1) where proj is the projection
// of (pixel - p0) onto (p1 - p0) normalized by |p1-p0|^2; the palette
// index used is indices[min(floor(t * len(indices)), len(indices)-1)],
// so the axis is split into len(indices) equal bands. A degenerate
// axis (p0 == p1) draws nothing.
func GradientLinear(b *Buffer, indices []int, p0, p1 Point) {
	if len(indices) == 0 {
		return
	}
	d := p1.Sub(p0)
	lenSq := d.Dot(d)
	if lenSq == 0 {
		return
	}

	for y := 0; y < b.H; y++ {
		for x := 0; x < b.W; x++ {
			p := Point{X: float64(x), Y: float64(y)}
			t := clamp01(p.Sub(p0).Dot(d) / lenSq)
			i := int(math.Floor(t * float64(len(indices))))
			if i > len(indices)-1 {
				i = len(indices) - 1
			}
			b.Set(x, y, indices[i])
		}
	}
}

// GradientRadial fills a disc of radius r centred at c. t = distance/r
// clamped to [0,1]; pixels beyond r are untouched.
func GradientRadial(b *Buffer, indices []int, c Point, r float64) {
	if len(indices) == 0 || r <= 0 {
		return
	}
	for y := 0; y < b.H; y++ {
		for x := 0; x < b.W; x++ {
			p := Point{X: float64(x), Y: float64(y)}
			dist := math.Hypot(p.X-c.X, p.Y-c.Y)
			if dist > r {
				continue
			}
			t := clamp01(dist / r)
			idx := indices[int(math.Floor(t*float64(len(indices)-1)))]
			b.Set(x, y, idx)
		}
	}
}

func clamp01(f float64) float64 {
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}
