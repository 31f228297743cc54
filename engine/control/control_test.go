package control

import (
	"math"
	"testing"

	"github.com/1siamBot/softraster/engine/math3d"
	"github.com/1siamBot/softraster/engine/render3d"
	"github.com/stretchr/testify/assert"
)

func newController() *Controller {
	cam := render3d.NewCamera(math3d.V3(0, 0, -20), math3d.Zero3)
	return NewController(cam, 1, 720, 480, 10)
}

func TestApplyMovesForEachHeldKey(t *testing.T) {
	c := newController()
	r := c.Apply(Snapshot{Forward: true, MouseX: 5, MouseY: 5})
	assert.Equal(t, Result{Moved: true}, r)
	assert.True(t, r.Changed())
	assert.InDelta(t, -19, c.Camera.Position.Z, 1e-9)

	c = newController()
	r = c.Apply(Snapshot{Forward: true, Back: true})
	assert.True(t, r.Moved)
	assert.InDelta(t, -20, c.Camera.Position.Z, 1e-9)

	assert.False(t, newController().Apply(Snapshot{}).Changed())
}

func TestApplyLookFromCentre(t *testing.T) {
	c := newController()
	r := c.Apply(Snapshot{Look: true, MouseX: 350, MouseY: 240})
	assert.Equal(t, Result{Turned: true}, r)
	assert.InDelta(t, 20*math.Sin(0.01), c.Camera.Target.X, 1e-9)

	// holding still does nothing
	before := *c.Camera
	r = c.Apply(Snapshot{Look: true, MouseX: 350, MouseY: 240})
	assert.False(t, r.Changed())
	assert.Equal(t, before, *c.Camera)
}

func TestApplyTracksCursorWhileNotLooking(t *testing.T) {
	c := newController()
	c.Apply(Snapshot{MouseX: 100, MouseY: 100})
	target := c.Camera.Target

	// looking starts where the cursor already is, so no jump
	r := c.Apply(Snapshot{Look: true, MouseX: 100, MouseY: 100})
	assert.False(t, r.Turned)
	assert.Equal(t, target, c.Camera.Target)
}

func TestApplyEdgeRecentres(t *testing.T) {
	for _, pos := range [][2]int{{5, 200}, {715, 200}, {300, 3}, {300, 475}} {
		c := newController()
		r := c.Apply(Snapshot{Look: true, MouseX: pos[0], MouseY: pos[1]})
		assert.Equal(t, Result{Recentred: true}, r, "cursor %v", pos)
		assert.Equal(t, math3d.Zero3, c.Camera.Target)

		// travel is measured from the centre afterwards
		r = c.Apply(Snapshot{Look: true, MouseX: 360, MouseY: 240})
		assert.False(t, r.Turned)
	}
}
