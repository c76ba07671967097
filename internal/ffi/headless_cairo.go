//go:build !gtk_cgo

package ffi

import "math"

// cairo_matrix_t, computed the way cairo-matrix.c does.

func CairoMatrixInit(m *Matrix, xx, yx, xy, yy, x0, y0 float64) {
	*m = Matrix{XX: xx, YX: yx, XY: xy, YY: yy, X0: x0, Y0: y0}
}

func CairoMatrixInitIdentity(m *Matrix) { CairoMatrixInit(m, 1, 0, 0, 1, 0, 0) }

func CairoMatrixInitTranslate(m *Matrix, tx, ty float64) { CairoMatrixInit(m, 1, 0, 0, 1, tx, ty) }

func CairoMatrixInitScale(m *Matrix, sx, sy float64) { CairoMatrixInit(m, sx, 0, 0, sy, 0, 0) }

func CairoMatrixInitRotate(m *Matrix, radians float64) {
	s, c := math.Sincos(radians)
	CairoMatrixInit(m, c, s, -s, c, 0, 0)
}

func CairoMatrixTranslate(m *Matrix, tx, ty float64) {
	var t Matrix
	CairoMatrixInitTranslate(&t, tx, ty)
	CairoMatrixMultiply(m, &t, m)
}

func CairoMatrixScale(m *Matrix, sx, sy float64) {
	var t Matrix
	CairoMatrixInitScale(&t, sx, sy)
	CairoMatrixMultiply(m, &t, m)
}

func CairoMatrixRotate(m *Matrix, radians float64) {
	var t Matrix
	CairoMatrixInitRotate(&t, radians)
	CairoMatrixMultiply(m, &t, m)
}

func CairoMatrixMultiply(result, a, b *Matrix) {
	r := Matrix{
		XX: a.XX*b.XX + a.YX*b.XY,
		YX: a.XX*b.YX + a.YX*b.YY,
		XY: a.XY*b.XX + a.YY*b.XY,
		YY: a.XY*b.YX + a.YY*b.YY,
		X0: a.X0*b.XX + a.Y0*b.XY + b.X0,
		Y0: a.X0*b.YX + a.Y0*b.YY + b.Y0,
	}
	*result = r
}

func CairoMatrixInvert(m *Matrix) int32 {
	if m.XY == 0 && m.YX == 0 {
		if m.XX == 0 || m.YY == 0 {
			return CairoStatusInvalidMatrix
		}
		m.X0, m.Y0 = -m.X0, -m.Y0
		if m.XX != 1 {
			m.XX = 1 / m.XX
			m.X0 *= m.XX
		}
		if m.YY != 1 {
			m.YY = 1 / m.YY
			m.Y0 *= m.YY
		}
		return CairoStatusSuccess
	}
	det := m.XX*m.YY - m.YX*m.XY
	if det == 0 || math.IsInf(det, 0) || math.IsNaN(det) {
		return CairoStatusInvalidMatrix
	}
	a, b, c, d, tx, ty := m.XX, m.YX, m.XY, m.YY, m.X0, m.Y0
	inv := 1 / det
	*m = Matrix{
		XX: d * inv,
		YX: -b * inv,
		XY: -c * inv,
		YY: a * inv,
		X0: (c*ty - d*tx) * inv,
		Y0: (b*tx - a*ty) * inv,
	}
	return CairoStatusSuccess
}

func CairoMatrixTransformDistance(m *Matrix, dx, dy *float64) {
	x, y := *dx, *dy
	*dx = m.XX*x + m.XY*y
	*dy = m.YX*x + m.YY*y
}

func CairoMatrixTransformPoint(m *Matrix, x, y *float64) {
	CairoMatrixTransformDistance(m, x, y)
	*x += m.X0
	*y += m.Y0
}
