package render3d

import "github.com/1siamBot/softraster/engine/math3d"

// Direction is a camera movement relative to where it looks
type Direction uint8

const (
	Forward Direction = iota
	Back
	Left
	Right
)

// MouseSensitivity divides mouse deltas (pixels) into rotation angles
// (radians).
const MouseSensitivity = 1000.0

// Camera is a free-look camera defined by an eye position and the point it
// looks at. Orientation and distance are always derived from
// Target - Position.
type Camera struct {
	Position math3d.Vector3
	Target   math3d.Vector3
}

func NewCamera(position, target math3d.Vector3) *Camera {
	return &Camera{Position: position, Target: target}
}

// Direction returns the unit view direction.
func (c *Camera) Direction() math3d.Vector3 {
	return c.Target.Sub(c.Position).Normalized()
}

// Distance returns the distance from the eye to the look-at point.
func (c *Camera) Distance() float64 {
	return c.Target.Sub(c.Position).Length()
}

// View returns the left-handed look-at matrix for the camera, Y up.
func (c *Camera) View() *math3d.Matrix {
	return math3d.LookAtLH(c.Position, c.Target, math3d.UnitY)
}

// Move advances both eye and target by speed along the view direction,
// strafed a quarter turn in the XZ plane for Left/Right and reversed for
// Back. Unknown directions move nothing.
//
// The target is renormalized afterwards, which pulls the look-at point
// toward the unit sphere around the origin on every move.
func (c *Camera) Move(speed float64, dir Direction) {
	d := c.Direction()
	switch dir {
	case Forward:
	case Right:
		d = d.Rotate(90, math3d.PlaneXZ)
	case Left:
		d = d.Rotate(-90, math3d.PlaneXZ)
	case Back:
		d = d.Neg()
	default:
		d = math3d.Zero3
	}

	step := d.Mul(speed)
	c.Position = c.Position.Add(step)
	c.Target = c.Target.Add(step)
	c.Target.Normalize()
}

// Rotate turns the view direction by angle radians about axis. The eye
// stays put.
func (c *Camera) Rotate(angle float64, axis math3d.Vector3) {
	dir := c.Target.Sub(c.Position)
	rotated := math3d.RotationAxisAngle(angle, axis).Mul(dir.Column()).Vector3()
	c.Target = c.Position.Add(rotated)
}

// RotateByMouse turns the camera by the cursor travel since (prevX, prevY):
// first pitch about the camera's horizontal axis, then yaw about world up.
func (c *Camera) RotateByMouse(prevX, prevY int, cur math3d.Vector2) {
	if prevX == int(cur.X) && prevY == int(cur.Y) {
		return
	}

	yaw := (float64(prevX) - cur.X) / MouseSensitivity
	pitch := (float64(prevY) - cur.Y) / MouseSensitivity

	axis := c.Target.Sub(c.Position).Cross(math3d.UnitY)
	axis.Normalize()
	c.Rotate(pitch, axis)

	c.Rotate(yaw, math3d.UnitY)
}
