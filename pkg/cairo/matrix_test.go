package cairo_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/gtkbridge/pkg/cairo"
)

func TestMatrix_TranslateThenScale(t *testing.T) {
	// Arrange
	m := cairo.IdentityMatrix()

	// Act
	m.Translate(10, 20)
	m.Scale(2, 3)

	// Assert
	x, y := m.TransformPoint(1, 1)
	assert.InDelta(t, 12.0, x, 1e-12)
	assert.InDelta(t, 23.0, y, 1e-12)
	dx, dy := m.TransformDistance(1, 1)
	assert.InDelta(t, 2.0, dx, 1e-12)
	assert.InDelta(t, 3.0, dy, 1e-12)
}

func TestMatrix_RotateQuarterTurn(t *testing.T) {
	m := cairo.RotateMatrix(math.Pi / 2)

	x, y := m.TransformPoint(1, 0)

	assert.InDelta(t, 0.0, x, 1e-12)
	assert.InDelta(t, 1.0, y, 1e-12)
}

func TestMultiply_AppliesAThenB(t *testing.T) {
	a := cairo.ScaleMatrix(2, 2)
	b := cairo.TranslateMatrix(5, 0)

	ab := cairo.Multiply(a, b)
	x, y := ab.TransformPoint(1, 1)
	assert.Equal(t, 7.0, x)
	assert.Equal(t, 2.0, y)

	ba := cairo.Multiply(b, a)
	x, y = ba.TransformPoint(1, 1)
	assert.Equal(t, 12.0, x)
	assert.Equal(t, 2.0, y)
}

func TestInvert(t *testing.T) {
	tests := []struct {
		name    string
		m       cairo.Matrix
		wantErr bool
	}{
		{name: "scale and translate", m: cairo.NewMatrix(2, 0, 0, 4, 6, -8)},
		{name: "shear", m: cairo.NewMatrix(1, 0.5, 0.25, 1, 3, 3)},
		{name: "zero scale", m: cairo.ScaleMatrix(0, 1), wantErr: true},
		{name: "collinear", m: cairo.NewMatrix(1, 2, 2, 4, 0, 0), wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv := tt.m
			err := inv.Invert()
			if tt.wantErr {
				assert.ErrorIs(t, err, cairo.ErrInvalidMatrix)
				assert.Equal(t, tt.m, inv)
				return
			}
			require.NoError(t, err)
			x, y := tt.m.TransformPoint(3, -2)
			x, y = inv.TransformPoint(x, y)
			assert.InDelta(t, 3.0, x, 1e-9)
			assert.InDelta(t, -2.0, y, 1e-9)
		})
	}
}
