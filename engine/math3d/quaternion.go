package math3d

import "math"

// Quaternion is a rotation with X,Y,Z and W components.
type Quaternion struct {
	X, Y, Z, W float64
}

// IdentityQuaternion is the rotation that leaves every vector unchanged.
var IdentityQuaternion = Quaternion{0, 0, 0, 1}

// QuaternionYawPitchRoll composes yaw (about Z), pitch (about Y) and roll
// (about X), in that order. Angles in radians.
func QuaternionYawPitchRoll(yaw, pitch, roll float64) Quaternion {
	sy, cy := math.Sincos(yaw * 0.5)
	sp, cp := math.Sincos(pitch * 0.5)
	sr, cr := math.Sincos(roll * 0.5)

	qYaw := Quaternion{0, 0, sy, cy}
	qPitch := Quaternion{0, sp, 0, cp}
	qRoll := Quaternion{sr, 0, 0, cr}
	return qYaw.Mul(qPitch).Mul(qRoll)
}

// Mul returns the Hamilton product q·o.
func (q Quaternion) Mul(o Quaternion) Quaternion {
	return Quaternion{
		W: q.W*o.W - q.X*o.X - q.Y*o.Y - q.Z*o.Z,
		X: q.W*o.X + q.X*o.W + q.Y*o.Z - q.Z*o.Y,
		Y: q.W*o.Y - q.X*o.Z + q.Y*o.W + q.Z*o.X,
		Z: q.W*o.Z + q.X*o.Y - q.Y*o.X + q.Z*o.W,
	}
}

func (q Quaternion) Conjugate() Quaternion { return Quaternion{-q.X, -q.Y, -q.Z, q.W} }

func (q Quaternion) Length() float64 {
	return math.Sqrt(q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W)
}

// Normalized returns q scaled to unit length; a zero quaternion is
// returned unchanged.
func (q Quaternion) Normalized() Quaternion {
	l := q.Length()
	if l == 0 {
		return q
	}
	return Quaternion{q.X / l, q.Y / l, q.Z / l, q.W / l}
}

// Matrix returns q as a 4x4 rotation matrix.
func (q Quaternion) Matrix() *Matrix { return RotationQuaternion(q) }
