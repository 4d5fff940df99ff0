/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Package transform holds the affine matrices used by the PDF
// text-state machine: the text matrix, the text-line matrix, and the
// CTM propagated through `q`/`Q`/form-XObject recursion all share this
// representation.
package transform

import (
	"fmt"
	"math"
)

// Matrix is a 2-D affine transform in homogeneous coordinates, stored as
//
//	a  b  0
//	c  d  0
//	tx ty 1
//
// Only the six free entries are ever non-default; the third column is
// always [0 0 1] because PDF transforms are always affine.
type Matrix [9]float64

// IdentityMatrix returns the identity transform.
func IdentityMatrix() Matrix {
	return NewMatrix(1, 0, 0, 1, 0, 0)
}

// TranslationMatrix returns a matrix that translates by (tx, ty).
func TranslationMatrix(tx, ty float64) Matrix {
	return NewMatrix(1, 0, 0, 1, tx, ty)
}

// NewMatrix builds an affine transform matrix from the six PDF `cm`/`Tm`
// operands.
func NewMatrix(a, b, c, d, tx, ty float64) Matrix {
	m := Matrix{
		a, b, 0,
		c, d, 0,
		tx, ty, 1,
	}
	m.clampRange()
	return m
}

// String describes m as the six affine operands.
func (m Matrix) String() string {
	a, b, c, d, tx, ty := m[0], m[1], m[3], m[4], m[6], m[7]
	return fmt.Sprintf("[%7.4f,%7.4f,%7.4f,%7.4f:%7.4f,%7.4f]", a, b, c, d, tx, ty)
}

// Concat sets m to b × m, the PDF convention for composing a newly
// encountered `cm`/`Tm` operand onto the running matrix.
func (m *Matrix) Concat(b Matrix) {
	*m = Matrix{
		b[0]*m[0] + b[1]*m[3], b[0]*m[1] + b[1]*m[4], 0,
		b[3]*m[0] + b[4]*m[3], b[3]*m[1] + b[4]*m[4], 0,
		b[6]*m[0] + b[7]*m[3] + m[6], b[6]*m[1] + b[7]*m[4] + m[7], 1,
	}
	m.clampRange()
}

// Mult returns b × m without mutating m.
func (m Matrix) Mult(b Matrix) Matrix {
	m.Concat(b)
	return m
}

// Translate returns translation(tx, ty) composed before m, used for the
// `-leading` line-break advance and for Td/TD operands: the offset is in
// the matrix's own coordinate space, so a scaled or rotated text matrix
// carries the offset along with it.
func (m Matrix) Translate(tx, ty float64) Matrix {
	m.Concat(TranslationMatrix(tx, ty))
	return m
}

// Translation returns the translation part of m.
func (m Matrix) Translation() (float64, float64) {
	return m[6], m[7]
}

// Transform returns (x, y) mapped through m.
func (m Matrix) Transform(x, y float64) (float64, float64) {
	xp := x*m[0] + y*m[3] + m[6]
	yp := x*m[1] + y*m[4] + m[7]
	return xp, yp
}

// ScalingFactorX returns the effective X scale of the transform, used to
// turn a glyph's 1000-unit-em width into a drawn width.
func (m Matrix) ScalingFactorX() float64 {
	return math.Hypot(m[0], m[1])
}

// clampRange forces m's entries into a sane range so a corrupt PDF full
// of garbage numbers can't produce NaN/Inf downstream.
func (m *Matrix) clampRange() {
	for i, x := range m {
		if x > maxAbsNumber {
			m[i] = maxAbsNumber
		} else if x < -maxAbsNumber {
			m[i] = -maxAbsNumber
		}
	}
}

// maxAbsNumber bounds matrix entries to avoid floating point exceptions
// on corrupt input.
const maxAbsNumber = 1e9
