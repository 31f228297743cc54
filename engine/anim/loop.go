// Package anim advances mesh animation on a fixed timestep.
package anim

import (
	"time"

	"github.com/1siamBot/softraster/engine/math3d"
	"github.com/1siamBot/softraster/engine/render3d"
)

// maxFrame caps the time a single frame may feed into the loop.
const maxFrame = 0.25

// State is whether ticks currently apply.
type State uint8

const (
	StatePlaying State = iota
	StatePaused
)

func (s State) String() string {
	if s == StatePaused {
		return "paused"
	}
	return "playing"
}

// Spin adds Delta to the rotation of the scene mesh at index Mesh once per
// tick.
type Spin struct {
	Mesh  int
	Delta math3d.Vector3
}

// DemoSpins turns the first cube on two axes and the first loaded mesh
// after the cube grid about Y.
func DemoSpins() []Spin {
	return []Spin{
		{Mesh: 0, Delta: math3d.V3(0.025, 0.025, 0)},
		{Mesh: 4, Delta: math3d.V3(0, 0.025, 0)},
	}
}

// Loop runs spins at a fixed tick rate independent of the frame rate.
type Loop struct {
	TickRate float64 // ticks per second
	Spins    []Spin
	State    State

	accumulator float64
	ticks       uint64
	lastTime    time.Time
}

func NewLoop(tickRate float64, spins []Spin) *Loop {
	return &Loop{
		TickRate: tickRate,
		Spins:    spins,
		lastTime: time.Now(),
	}
}

// Update feeds the wall-clock time since the previous call into Advance.
func (l *Loop) Update(meshes []*render3d.Mesh) float64 {
	now := time.Now()
	frame := now.Sub(l.lastTime).Seconds()
	l.lastTime = now
	return l.Advance(frame, meshes)
}

// Advance runs every whole tick that fits in the accumulated time and
// returns the leftover fraction of a tick. Frames longer than a quarter
// second are cut short so a stall cannot trigger a burst of catch-up
// ticks. Spins naming a missing mesh are ignored.
func (l *Loop) Advance(frameSeconds float64, meshes []*render3d.Mesh) float64 {
	if frameSeconds > maxFrame {
		frameSeconds = maxFrame
	}
	if frameSeconds < 0 {
		frameSeconds = 0
	}

	dt := 1.0 / l.TickRate
	l.accumulator += frameSeconds

	for l.accumulator >= dt {
		if l.State == StatePlaying {
			l.tick(meshes)
		}
		l.accumulator -= dt
	}
	return l.accumulator / dt
}

func (l *Loop) tick(meshes []*render3d.Mesh) {
	for _, s := range l.Spins {
		if s.Mesh < 0 || s.Mesh >= len(meshes) || meshes[s.Mesh] == nil {
			continue
		}
		m := meshes[s.Mesh]
		m.Rotation = m.Rotation.Add(s.Delta)
	}
	l.ticks++
}

// Play starts or resumes ticking.
func (l *Loop) Play() {
	l.State = StatePlaying
	l.lastTime = time.Now()
}

// Pause stops spins; time still drains so resuming does not jump.
func (l *Loop) Pause() {
	l.State = StatePaused
}

// Toggle flips between playing and paused.
func (l *Loop) Toggle() {
	if l.State == StatePaused {
		l.Play()
		return
	}
	l.Pause()
}

// Ticks returns the number of ticks applied while playing.
func (l *Loop) Ticks() uint64 { return l.ticks }
