// Package control turns per-frame key and mouse state into camera moves.
// It has no windowing dependency; engine/input fills Snapshots from ebiten.
package control

import (
	"github.com/1siamBot/softraster/engine/math3d"
	"github.com/1siamBot/softraster/engine/render3d"
)

// Snapshot is the input state for one frame.
type Snapshot struct {
	Forward, Back, Left, Right bool

	MouseX, MouseY int
	Look           bool // mouse-look active
}

// Result reports what Apply did to the camera.
type Result struct {
	Moved     bool
	Turned    bool
	Recentred bool // cursor hit the edge margin; the host may warp it to the centre
}

func (r Result) Changed() bool { return r.Moved || r.Turned }

// Controller drives a camera from snapshots.
type Controller struct {
	Camera    *render3d.Camera
	MoveSpeed float64

	Width, Height int
	EdgeMargin    int

	prevX, prevY int
}

// NewController starts with the previous cursor position at the window
// centre.
func NewController(cam *render3d.Camera, moveSpeed float64, width, height, edgeMargin int) *Controller {
	return &Controller{
		Camera:     cam,
		MoveSpeed:  moveSpeed,
		Width:      width,
		Height:     height,
		EdgeMargin: edgeMargin,
		prevX:      width / 2,
		prevY:      height / 2,
	}
}

// Apply moves the camera for every held direction key, then turns it by
// the cursor travel since the last snapshot when mouse-look is on.
func (c *Controller) Apply(s Snapshot) Result {
	var r Result
	for _, k := range []struct {
		held bool
		dir  render3d.Direction
	}{
		{s.Forward, render3d.Forward},
		{s.Back, render3d.Back},
		{s.Left, render3d.Left},
		{s.Right, render3d.Right},
	} {
		if k.held {
			c.Camera.Move(c.MoveSpeed, k.dir)
			r.Moved = true
		}
	}

	if !s.Look {
		c.prevX, c.prevY = s.MouseX, s.MouseY
		return r
	}

	if c.nearEdge(s.MouseX, s.MouseY) {
		c.prevX, c.prevY = c.Width/2, c.Height/2
		r.Recentred = true
		return r
	}

	if s.MouseX != c.prevX || s.MouseY != c.prevY {
		c.Camera.RotateByMouse(c.prevX, c.prevY, math3d.V2(float64(s.MouseX), float64(s.MouseY)))
		r.Turned = true
	}
	c.prevX, c.prevY = s.MouseX, s.MouseY
	return r
}

func (c *Controller) nearEdge(x, y int) bool {
	m := c.EdgeMargin
	return x < m || y < m || x > c.Width-m || y > c.Height-m
}
