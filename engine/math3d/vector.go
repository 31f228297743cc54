package math3d

import (
	"fmt"
	"math"
)

// Vector2 is a 2D vector
type Vector2 struct {
	X, Y float64
}

func V2(x, y float64) Vector2 { return Vector2{x, y} }

func (v Vector2) Add(o Vector2) Vector2     { return Vector2{v.X + o.X, v.Y + o.Y} }
func (v Vector2) Sub(o Vector2) Vector2     { return Vector2{v.X - o.X, v.Y - o.Y} }
func (v Vector2) Mul(s float64) Vector2     { return Vector2{v.X * s, v.Y * s} }
func (v Vector2) Div(s float64) Vector2     { return Vector2{v.X / s, v.Y / s} }
func (v Vector2) Neg() Vector2              { return Vector2{-v.X, -v.Y} }
func (v Vector2) Dot(o Vector2) float64     { return v.X*o.X + v.Y*o.Y }
func (v Vector2) Length() float64           { return math.Sqrt(v.X*v.X + v.Y*v.Y) }
func (v Vector2) String() string            { return fmt.Sprintf("(%.2f, %.2f)", v.X, v.Y) }
func (v Vector2) Vector3(z float64) Vector3 { return Vector3{v.X, v.Y, z} }

// Normalize scales v to unit length in place. A zero vector is left as is.
func (v *Vector2) Normalize() {
	l := v.Length()
	if l == 0 {
		return
	}
	inv := 1 / l
	v.X *= inv
	v.Y *= inv
}

// Normalized returns a unit-length copy of v.
func (v Vector2) Normalized() Vector2 {
	v.Normalize()
	return v
}

// Vector3 is a 3D vector
type Vector3 struct {
	X, Y, Z float64
}

var (
	Zero3 = Vector3{}
	UnitX = Vector3{1, 0, 0}
	UnitY = Vector3{0, 1, 0}
	UnitZ = Vector3{0, 0, 1}
)

func V3(x, y, z float64) Vector3 { return Vector3{x, y, z} }

func (v Vector3) Add(o Vector3) Vector3 { return Vector3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vector3) Sub(o Vector3) Vector3 { return Vector3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vector3) Mul(s float64) Vector3 { return Vector3{v.X * s, v.Y * s, v.Z * s} }
func (v Vector3) Div(s float64) Vector3 { return Vector3{v.X / s, v.Y / s, v.Z / s} }
func (v Vector3) Neg() Vector3          { return Vector3{-v.X, -v.Y, -v.Z} }
func (v Vector3) Dot(o Vector3) float64 { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }
func (v Vector3) Length() float64       { return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z) }
func (v Vector3) XY() Vector2           { return Vector2{v.X, v.Y} }
func (v Vector3) String() string        { return fmt.Sprintf("(%.2f, %.2f, %.2f)", v.X, v.Y, v.Z) }

// Cross returns the right-handed cross product v × o.
func (v Vector3) Cross(o Vector3) Vector3 {
	return Vector3{v.Y*o.Z - v.Z*o.Y, v.Z*o.X - v.X*o.Z, v.X*o.Y - v.Y*o.X}
}

// Normalize scales v to unit length in place. A zero vector is left as is.
func (v *Vector3) Normalize() {
	l := v.Length()
	if l == 0 {
		return
	}
	inv := 1 / l
	v.X *= inv
	v.Y *= inv
	v.Z *= inv
}

// Normalized returns a unit-length copy of v.
func (v Vector3) Normalized() Vector3 {
	v.Normalize()
	return v
}

// Column returns v as a 3x1 column matrix.
func (v Vector3) Column() *Matrix {
	return MatrixFromRows([][]float64{{v.X}, {v.Y}, {v.Z}})
}

// Rotate rotates v by angle degrees within the given coordinate plane.
func (v Vector3) Rotate(angle float64, plane Plane) Vector3 {
	var m *Matrix
	switch plane {
	case PlaneXY:
		m = RotationXY(angle)
	case PlaneXZ:
		m = RotationXZ(angle)
	case PlaneYZ:
		m = RotationYZ(angle)
	default:
		panic(fmt.Sprintf("math3d: invalid rotation plane %d", plane))
	}
	return m.Mul(v.Column()).Vector3()
}

// ScaleAxis stretches v along a single axis.
func (v Vector3) ScaleAxis(factor float64, axis Axis) Vector3 {
	var m *Matrix
	switch axis {
	case AxisX:
		m = ScalingX(factor)
	case AxisY:
		m = ScalingY(factor)
	case AxisZ:
		m = ScalingZ(factor)
	default:
		panic(fmt.Sprintf("math3d: invalid scale axis %d", axis))
	}
	return m.Mul(v.Column()).Vector3()
}

// ScaleBy applies a non-uniform scale with per-axis factors s.
func (v Vector3) ScaleBy(s Vector3) Vector3 {
	return Scaling(s.X, s.Y, s.Z).Mul(v.Column()).Vector3()
}
