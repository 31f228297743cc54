package math3d

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuaternionMul(t *testing.T) {
	i := Quaternion{1, 0, 0, 0}
	j := Quaternion{0, 1, 0, 0}
	k := Quaternion{0, 0, 1, 0}
	minusOne := Quaternion{0, 0, 0, -1}

	assert.Equal(t, k, i.Mul(j))
	assert.Equal(t, i, j.Mul(k))
	assert.Equal(t, j, k.Mul(i))
	assert.Equal(t, minusOne, i.Mul(i))
	assert.Equal(t, minusOne, i.Mul(j).Mul(k))

	q := QuaternionYawPitchRoll(0.4, -0.2, 1.3)
	assert.Equal(t, q, IdentityQuaternion.Mul(q))
	assert.InDelta(t, 1, q.Length(), tol)

	p := q.Mul(q.Conjugate())
	assert.InDelta(t, 1, p.W, tol)
	assert.InDelta(t, 0, Quaternion{p.X, p.Y, p.Z, 0}.Length(), tol)
}

func TestQuaternionNormalized(t *testing.T) {
	q := Quaternion{1, 2, 3, 4}.Normalized()
	assert.InDelta(t, 1, q.Length(), tol)
	assert.Equal(t, Quaternion{}, Quaternion{}.Normalized())
}

func TestQuaternionMatrixSingleAxes(t *testing.T) {
	// yaw turns about Z: +X goes to +Y
	assertVec3(t, UnitY, Transform(UnitX, RotationYawPitchRoll(math.Pi/2, 0, 0)))
	// pitch turns about Y: +Z goes to +X
	assertVec3(t, UnitX, Transform(UnitZ, RotationYawPitchRoll(0, math.Pi/2, 0)))
	// roll turns about X: +Y goes to +Z
	assertVec3(t, UnitZ, Transform(UnitY, RotationYawPitchRoll(0, 0, math.Pi/2)))

	assert.True(t, IdentityQuaternion.Matrix().Equal(Identity(4), 0))
}

func TestQuaternionMatrixIsRotation(t *testing.T) {
	m := RotationYawPitchRoll(0.7, 1.9, -0.3)
	for _, v := range []Vector3{UnitX, UnitY, UnitZ, V3(1, -2, 3)} {
		assert.InDelta(t, v.Length(), Transform(v, m).Length(), tol)
	}
	assert.True(t, m.Mul(m.Transpose()).Equal(Identity(4), 1e-12))
}

func TestEulerYawPitchRollMatchesPlanes(t *testing.T) {
	assert.True(t, EulerYawPitchRoll(30, 0, 0).Equal(RotationYZ(30), 1e-12))
	assert.True(t, EulerYawPitchRoll(0, 30, 0).Equal(RotationXZ(30), 1e-12))
	assert.True(t, EulerYawPitchRoll(0, 0, 30).Equal(RotationXY(30), 1e-12))
}
