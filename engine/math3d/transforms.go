package math3d

import "math"

// Plane selects a coordinate plane for axis-aligned rotation.
type Plane uint8

const (
	PlaneXY Plane = iota
	PlaneXZ
	PlaneYZ
)

// Axis selects a coordinate axis for single-axis scaling.
type Axis uint8

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// Radians converts degrees to radians.
func Radians(deg float64) float64 { return math.Pi / 180 * deg }

// RotationXY rotates within the XY plane (about Z). Angle in degrees.
func RotationXY(angle float64) *Matrix {
	s, c := math.Sincos(Radians(angle))
	return MatrixFromRows([][]float64{
		{c, -s, 0},
		{s, c, 0},
		{0, 0, 1},
	})
}

// RotationXZ rotates within the XZ plane (about Y). Angle in degrees.
func RotationXZ(angle float64) *Matrix {
	s, c := math.Sincos(Radians(angle))
	return MatrixFromRows([][]float64{
		{c, 0, s},
		{0, 1, 0},
		{-s, 0, c},
	})
}

// RotationYZ rotates within the YZ plane (about X). Angle in degrees.
func RotationYZ(angle float64) *Matrix {
	s, c := math.Sincos(Radians(angle))
	return MatrixFromRows([][]float64{
		{1, 0, 0},
		{0, c, -s},
		{0, s, c},
	})
}

// RotationAxisAngle is Rodrigues' rotation about a normalized axis, angle
// in radians. The result rotates column vectors.
func RotationAxisAngle(angle float64, axis Vector3) *Matrix {
	s, c := math.Sincos(angle)
	t := 1 - c
	x, y, z := axis.X, axis.Y, axis.Z
	return MatrixFromRows([][]float64{
		{c + t*x*x, t*x*y - z*s, t*x*z + y*s},
		{t*x*y + z*s, c + t*y*y, t*y*z - x*s},
		{t*x*z - y*s, t*y*z + x*s, c + t*z*z},
	})
}

func Scaling(x, y, z float64) *Matrix {
	m := NewMatrix(3, 3)
	m.Set(0, 0, x)
	m.Set(1, 1, y)
	m.Set(2, 2, z)
	return m
}

func ScalingX(f float64) *Matrix { return Scaling(f, 1, 1) }
func ScalingY(f float64) *Matrix { return Scaling(1, f, 1) }
func ScalingZ(f float64) *Matrix { return Scaling(1, 1, f) }

// Translation returns a 4x4 translation; the offset sits in the bottom row
// because points are multiplied as row vectors.
func Translation(x, y, z float64) *Matrix {
	m := Identity(4)
	m.Set(3, 0, x)
	m.Set(3, 1, y)
	m.Set(3, 2, z)
	return m
}

// LookAtLH creates a left-handed view matrix
func LookAtLH(eye, target, up Vector3) *Matrix {
	zaxis := target.Sub(eye).Normalized()
	xaxis := up.Cross(zaxis).Normalized()
	yaxis := zaxis.Cross(xaxis)

	m := Identity(4)
	m.Set(0, 0, xaxis.X)
	m.Set(1, 0, xaxis.Y)
	m.Set(2, 0, xaxis.Z)
	m.Set(0, 1, yaxis.X)
	m.Set(1, 1, yaxis.Y)
	m.Set(2, 1, yaxis.Z)
	m.Set(0, 2, zaxis.X)
	m.Set(1, 2, zaxis.Y)
	m.Set(2, 2, zaxis.Z)
	m.Set(3, 0, -xaxis.Dot(eye))
	m.Set(3, 1, -yaxis.Dot(eye))
	m.Set(3, 2, -zaxis.Dot(eye))
	return m
}

// PerspectiveFovLH creates a left-handed perspective projection. fov is the
// vertical field of view in radians. Camera-space z is copied into w, and
// z/w grows monotonically from 0 at near to 1 at far.
func PerspectiveFovLH(fov, aspect, near, far float64) *Matrix {
	yScale := 1 / math.Tan(fov*0.5)
	q := far / (far - near)
	m := NewMatrix(4, 4)
	m.Set(0, 0, yScale/aspect)
	m.Set(1, 1, yScale)
	m.Set(2, 2, q)
	m.Set(2, 3, 1)
	m.Set(3, 2, -q*near)
	return m
}

// RotationQuaternion converts a unit quaternion to a 4x4 rotation matrix.
func RotationQuaternion(q Quaternion) *Matrix {
	x2, y2, z2 := q.X+q.X, q.Y+q.Y, q.Z+q.Z
	xx, xy, xz := q.X*x2, q.X*y2, q.X*z2
	yy, yz, zz := q.Y*y2, q.Y*z2, q.Z*z2
	wx, wy, wz := q.W*x2, q.W*y2, q.W*z2

	m := Identity(4)
	m.Set(0, 0, 1-(yy+zz))
	m.Set(1, 0, xy-wz)
	m.Set(2, 0, xz+wy)
	m.Set(0, 1, xy+wz)
	m.Set(1, 1, 1-(xx+zz))
	m.Set(2, 1, yz-wx)
	m.Set(0, 2, xz-wy)
	m.Set(1, 2, yz+wx)
	m.Set(2, 2, 1-(xx+yy))
	return m
}

// RotationYawPitchRoll builds a rotation through the quaternion path.
// Angles in radians.
func RotationYawPitchRoll(yaw, pitch, roll float64) *Matrix {
	return RotationQuaternion(QuaternionYawPitchRoll(yaw, pitch, roll))
}

// EulerYawPitchRoll chains the three plane rotations directly. It suffers
// from gimbal lock and is kept only to compare against the quaternion
// path. Angles in degrees.
func EulerYawPitchRoll(yaw, pitch, roll float64) *Matrix {
	return RotationYZ(yaw).Mul(RotationXZ(pitch)).Mul(RotationXY(roll))
}
