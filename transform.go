package pixellab

import "math"

// Transform is a 2D affine matrix in [a, b, c, d, tx, ty] layout:
//
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
//
// Transforms flow through graphs as ordinary values. The zero Transform is
// the degenerate all-zero matrix, not the identity; nodes that need a neutral
// default use IdentityTransform.
type Transform [6]float64

// IdentityTransform returns the identity matrix.
func IdentityTransform() Transform {
	return Transform{1, 0, 0, 1, 0, 0}
}

// TranslationTransform returns a translation by (tx, ty).
func TranslationTransform(tx, ty float64) Transform {
	return Transform{1, 0, 0, 1, tx, ty}
}

// ScaleTransform returns a scale about the origin by (sx, sy).
func ScaleTransform(sx, sy float64) Transform {
	return Transform{sx, 0, 0, sy, 0, 0}
}

// RotationTransform returns a counter-clockwise rotation about the origin by
// the given angle in radians.
func RotationTransform(radians float64) Transform {
	sin, cos := math.Sincos(radians)
	return Transform{cos, sin, -sin, cos, 0, 0}
}

// Mul composes two transforms so that m.Mul(n).Apply(x, y) equals applying n
// first and m second.
func (m Transform) Mul(n Transform) Transform {
	return Transform{
		m[0]*n[0] + m[2]*n[1],
		m[1]*n[0] + m[3]*n[1],
		m[0]*n[2] + m[2]*n[3],
		m[1]*n[2] + m[3]*n[3],
		m[0]*n[4] + m[2]*n[5] + m[4],
		m[1]*n[4] + m[3]*n[5] + m[5],
	}
}

// Invert returns the inverse transform.
// Returns the identity if the matrix is singular (determinant ≈ 0).
func (m Transform) Invert() Transform {
	det := m[0]*m[3] - m[2]*m[1]
	if det > -1e-12 && det < 1e-12 {
		return IdentityTransform()
	}
	invDet := 1.0 / det
	a := m[3] * invDet
	b := -m[1] * invDet
	c := -m[2] * invDet
	d := m[0] * invDet
	return Transform{
		a, b, c, d,
		-(a*m[4] + c*m[5]),
		-(b*m[4] + d*m[5]),
	}
}

// Apply maps the point (x, y) through the transform.
func (m Transform) Apply(x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}
