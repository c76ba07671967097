// Package cairo exposes cairo_matrix_t, the one Cairo record the widget layer passes
// by value.
package cairo

import (
	"errors"

	"github.com/bnema/gtkbridge/internal/ffi"
)

var ErrInvalidMatrix = errors.New("cairo: invalid matrix (not invertible)")

// Matrix is an affine transform laid out like cairo_matrix_t:
//
//	x' = XX*x + XY*y + X0
//	y' = YX*x + YY*y + Y0
type Matrix ffi.Matrix

func (m *Matrix) native() *ffi.Matrix { return (*ffi.Matrix)(m) }

// NewMatrix builds a matrix from its six components.
func NewMatrix(xx, yx, xy, yy, x0, y0 float64) Matrix {
	var m Matrix
	ffi.CairoMatrixInit(m.native(), xx, yx, xy, yy, x0, y0)
	return m
}

func IdentityMatrix() Matrix {
	var m Matrix
	ffi.CairoMatrixInitIdentity(m.native())
	return m
}

func TranslateMatrix(tx, ty float64) Matrix {
	var m Matrix
	ffi.CairoMatrixInitTranslate(m.native(), tx, ty)
	return m
}

func ScaleMatrix(sx, sy float64) Matrix {
	var m Matrix
	ffi.CairoMatrixInitScale(m.native(), sx, sy)
	return m
}

func RotateMatrix(radians float64) Matrix {
	var m Matrix
	ffi.CairoMatrixInitRotate(m.native(), radians)
	return m
}

// Translate applies a translation before the existing transform.
func (m *Matrix) Translate(tx, ty float64) { ffi.CairoMatrixTranslate(m.native(), tx, ty) }

func (m *Matrix) Scale(sx, sy float64) { ffi.CairoMatrixScale(m.native(), sx, sy) }

func (m *Matrix) Rotate(radians float64) { ffi.CairoMatrixRotate(m.native(), radians) }

// Multiply returns the transform that applies a then b.
func Multiply(a, b Matrix) Matrix {
	var r Matrix
	ffi.CairoMatrixMultiply(r.native(), a.native(), b.native())
	return r
}

// Invert inverts m in place. A singular matrix is left unchanged.
func (m *Matrix) Invert() error {
	if ffi.CairoMatrixInvert(m.native()) != ffi.CairoStatusSuccess {
		return ErrInvalidMatrix
	}
	return nil
}

func (m *Matrix) TransformPoint(x, y float64) (float64, float64) {
	ffi.CairoMatrixTransformPoint(m.native(), &x, &y)
	return x, y
}

// TransformDistance ignores the translation components.
func (m *Matrix) TransformDistance(dx, dy float64) (float64, float64) {
	ffi.CairoMatrixTransformDistance(m.native(), &dx, &dy)
	return dx, dy
}
