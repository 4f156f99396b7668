package raster

import "math"

// Point is a 2D point or vector used by rotate and by polygon/gradient
// projection math.
type Point struct {
	X, Y float64
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Dot returns the dot product of p and q.
func (p Point) Dot(q Point) float64 { return p.X*q.X + p.Y*q.Y }

// Lerp linearly interpolates between p (t=0) and q (t=1).
func (p Point) Lerp(q Point, t float64) Point {
	return Point{p.X + (q.X-p.X)*t, p.Y + (q.Y-p.Y)*t}
}

// Matrix is a 2x3 affine transform in row-major order:
//
//	| a  b  c |
//	| d  e  f |
//
// representing x' = a*x + b*y + c, y' = d*x + e*y + f.
type Matrix struct {
	A, B, C float64
	D, E, F float64
}

// RotationAbout builds the matrix that rotates by angle radians around
// centre.
func RotationAbout(angle float64, centre Point) Matrix {
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	// Rotate around the origin, then translate so centre is fixed:
	// x' = cos*x - sin*y + (cx - cos*cx + sin*cy)
	return Matrix{
		A: cos, B: -sin, C: centre.X - cos*centre.X + sin*centre.Y,
		D: sin, E: cos, F: centre.Y - sin*centre.X - cos*centre.Y,
	}
}

// TransformPoint applies m to p.
func (m Matrix) TransformPoint(p Point) Point {
	return Point{
		X: m.A*p.X + m.B*p.Y + m.C,
		Y: m.D*p.X + m.E*p.Y + m.F,
	}
}

// Invert returns the inverse of m, or the identity matrix if m is not
// invertible.
func (m Matrix) Invert() Matrix {
	det := m.A*m.E - m.B*m.D
	if math.Abs(det) < 1e-12 {
		return Matrix{A: 1, E: 1}
	}
	invDet := 1.0 / det
	return Matrix{
		A: m.E * invDet,
		B: -m.B * invDet,
		C: (m.B*m.F - m.C*m.E) * invDet,
		D: -m.D * invDet,
		E: m.A * invDet,
		F: (m.C*m.D - m.A*m.F) * invDet,
	}
}

// RoundHalfAwayFromZero implements the contract's rounding rule: ties
// round away from zero, matching the integer round() of the reference
// implementation rather than Go's round-half-to-even.
func RoundHalfAwayFromZero(f float64) int {
	if f >= 0 {
		return int(math.Floor(f + 0.5))
	}
	return int(math.Ceil(f - 0.5))
}
