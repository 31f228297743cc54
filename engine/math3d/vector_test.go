package math3d

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

const tol = 1e-9

func assertVec3(t *testing.T, want, got Vector3) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, tol, "X of %v", got)
	assert.InDelta(t, want.Y, got.Y, tol, "Y of %v", got)
	assert.InDelta(t, want.Z, got.Z, tol, "Z of %v", got)
}

func TestVector3Arithmetic(t *testing.T) {
	a := V3(1, 2, 3)
	b := V3(-4, 0.5, 2)

	assert.Equal(t, V3(-3, 2.5, 5), a.Add(b))
	assert.Equal(t, V3(5, 1.5, 1), a.Sub(b))
	assert.Equal(t, V3(2, 4, 6), a.Mul(2))
	assert.Equal(t, V3(0.5, 1, 1.5), a.Div(2))
	assert.Equal(t, V3(-1, -2, -3), a.Neg())
	assert.Equal(t, 3.0, a.Dot(b))
	assert.InDelta(t, math.Sqrt(14), a.Length(), tol)
	assert.Equal(t, "(1.00, 2.00, 3.00)", a.String())
}

func TestCrossIsRightHanded(t *testing.T) {
	assert.Equal(t, UnitZ, UnitX.Cross(UnitY))
	assert.Equal(t, UnitX, UnitY.Cross(UnitZ))
	assert.Equal(t, UnitY, UnitZ.Cross(UnitX))
	assert.Equal(t, UnitZ.Neg(), UnitY.Cross(UnitX))
}

func TestNormalize(t *testing.T) {
	for _, v := range []Vector3{
		V3(3, 4, 0),
		V3(-1, -1, -1),
		V3(1e-8, 0, 2e-8),
		V3(1e8, -3e7, 42),
	} {
		n := v
		n.Normalize()
		assert.InDelta(t, 1, n.Length(), 1e-12, "normalize %v", v)
		assert.InDelta(t, 0, n.Cross(v).Length()/v.Length(), 1e-9, "direction kept for %v", v)
	}

	z := Zero3
	z.Normalize()
	assert.Equal(t, Zero3, z)

	v2 := V2(0, 0)
	v2.Normalize()
	assert.Equal(t, V2(0, 0), v2)
	assert.InDelta(t, 1, V2(3, -4).Normalized().Length(), 1e-12)
}

func TestNormalizePropagatesNaN(t *testing.T) {
	v := V3(math.NaN(), 1, 1)
	v.Normalize()
	assert.True(t, math.IsNaN(v.X))
}

func TestVector2(t *testing.T) {
	a := V2(1, 2)
	assert.Equal(t, V2(4, 6), a.Add(V2(3, 4)))
	assert.Equal(t, V2(-2, -2), a.Sub(V2(3, 4)))
	assert.Equal(t, V2(3, 6), a.Mul(3))
	assert.Equal(t, V2(0.5, 1), a.Div(2))
	assert.Equal(t, 11.0, a.Dot(V2(3, 4)))
	assert.Equal(t, V3(1, 2, 7), a.Vector3(7))
	assert.Equal(t, a, V3(1, 2, 9).XY())
}

func TestRotateInPlane(t *testing.T) {
	// forward (+Z) turned a quarter within XZ points right (+X)
	assertVec3(t, UnitX, UnitZ.Rotate(90, PlaneXZ))
	assertVec3(t, UnitX.Neg(), UnitZ.Rotate(-90, PlaneXZ))
	assertVec3(t, UnitY, UnitX.Rotate(90, PlaneXY))
	assertVec3(t, UnitZ, UnitY.Rotate(90, PlaneYZ))

	v := V3(1, 2, 3)
	assert.InDelta(t, v.Length(), v.Rotate(33, PlaneXZ).Length(), tol)

	assert.Panics(t, func() { v.Rotate(10, Plane(42)) })
}

func TestScaleAxis(t *testing.T) {
	v := V3(1, 2, 3)
	assert.Equal(t, V3(2, 2, 3), v.ScaleAxis(2, AxisX))
	assert.Equal(t, V3(1, 6, 3), v.ScaleAxis(3, AxisY))
	assert.Equal(t, V3(1, 2, -3), v.ScaleAxis(-1, AxisZ))
	assert.Equal(t, V3(2, 6, 12), v.ScaleBy(V3(2, 3, 4)))
	assert.Panics(t, func() { v.ScaleAxis(2, Axis(7)) })
}
