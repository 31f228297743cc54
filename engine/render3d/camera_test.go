package render3d

import (
	"math"
	"testing"

	"github.com/1siamBot/softraster/engine/math3d"
	"github.com/stretchr/testify/assert"
)

const tol = 1e-9

func assertVec3(t *testing.T, want, got math3d.Vector3) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, tol, "x of %v", got)
	assert.InDelta(t, want.Y, got.Y, tol, "y of %v", got)
	assert.InDelta(t, want.Z, got.Z, tol, "z of %v", got)
}

func demoCamera() *Camera {
	return NewCamera(math3d.V3(0, 0, -20), math3d.Zero3)
}

func TestCameraMove(t *testing.T) {
	tests := []struct {
		dir      Direction
		pos, tgt math3d.Vector3
	}{
		{Forward, math3d.V3(0, 0, -19), math3d.V3(0, 0, 1)},
		{Back, math3d.V3(0, 0, -21), math3d.V3(0, 0, -1)},
		{Right, math3d.V3(1, 0, -20), math3d.V3(1, 0, 0)},
		{Left, math3d.V3(-1, 0, -20), math3d.V3(-1, 0, 0)},
	}
	for _, tc := range tests {
		c := demoCamera()
		c.Move(1, tc.dir)
		assertVec3(t, tc.pos, c.Position)
		assertVec3(t, tc.tgt, c.Target)
	}
}

func TestCameraMoveUnknownDirection(t *testing.T) {
	c := demoCamera()
	c.Move(5, Direction(9))
	assert.Equal(t, math3d.V3(0, 0, -20), c.Position)
	assert.Equal(t, math3d.Zero3, c.Target)
}

func TestCameraMoveNormalizesViewDirection(t *testing.T) {
	c := NewCamera(math3d.V3(0, 0, -200), math3d.V3(0, 0, 100))
	c.Move(0.05, Forward)
	assertVec3(t, math3d.V3(0, 0, -199.95), c.Position)
	// look-at point collapses to the unit sphere
	assertVec3(t, math3d.V3(0, 0, 1), c.Target)
}

func TestCameraRotate(t *testing.T) {
	c := demoCamera()
	c.Rotate(math.Pi/2, math3d.UnitY)
	assertVec3(t, math3d.V3(0, 0, -20), c.Position)
	assertVec3(t, math3d.V3(20, 0, -20), c.Target)
	assert.InDelta(t, 20, c.Distance(), tol)
}

func TestRotateByMouse(t *testing.T) {
	t.Run("unchanged", func(t *testing.T) {
		c := demoCamera()
		c.RotateByMouse(360, 240, math3d.V2(360.6, 240.2))
		assert.Equal(t, math3d.Zero3, c.Target)
	})

	t.Run("yaw", func(t *testing.T) {
		c := demoCamera()
		c.RotateByMouse(360, 240, math3d.V2(350, 240))
		assertVec3(t, math3d.V3(20*math.Sin(0.01), 0, -20+20*math.Cos(0.01)), c.Target)
		assert.InDelta(t, 20, c.Distance(), tol)
	})

	t.Run("pitch", func(t *testing.T) {
		c := demoCamera()
		c.RotateByMouse(360, 240, math3d.V2(360, 230))
		assert.InDelta(t, 0, c.Target.X, tol)
		assert.InDelta(t, 20*math.Sin(0.01), c.Target.Y, tol)
		assert.InDelta(t, 20, c.Distance(), tol)
		assertVec3(t, math3d.V3(0, 0, -20), c.Position)
	})
}

func TestCameraView(t *testing.T) {
	c := demoCamera()
	assertVec3(t, math3d.V3(0, 0, 20), math3d.Transform(math3d.Zero3, c.View()))
	assertVec3(t, math3d.UnitZ, c.Direction())
}
