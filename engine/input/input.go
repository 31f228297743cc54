// Package input polls ebiten for keyboard and mouse state.
package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/1siamBot/softraster/engine/control"
)

// State tracks mouse-look and the movement keys per frame.
type State struct {
	MouseX, MouseY int

	// LookButton held turns mouse-look on; Captured keeps it on.
	LookButton ebiten.MouseButton
	Captured   bool
}

func NewState() *State {
	return &State{LookButton: ebiten.MouseButtonRight}
}

var (
	forwardKeys = []ebiten.Key{ebiten.KeyW, ebiten.KeyUp}
	backKeys    = []ebiten.Key{ebiten.KeyS, ebiten.KeyDown}
	leftKeys    = []ebiten.Key{ebiten.KeyA, ebiten.KeyLeft}
	rightKeys   = []ebiten.Key{ebiten.KeyD, ebiten.KeyRight}
)

func anyPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

// Poll should be called once per Update.
func (s *State) Poll() control.Snapshot {
	s.MouseX, s.MouseY = ebiten.CursorPosition()

	// Escape releases a captured cursor; a left click grabs it
	if s.Captured && inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.Captured = false
		ebiten.SetCursorMode(ebiten.CursorModeVisible)
	} else if !s.Captured && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		s.Captured = true
		ebiten.SetCursorMode(ebiten.CursorModeCaptured)
	}

	return control.Snapshot{
		Forward: anyPressed(forwardKeys),
		Back:    anyPressed(backKeys),
		Left:    anyPressed(leftKeys),
		Right:   anyPressed(rightKeys),
		MouseX:  s.MouseX,
		MouseY:  s.MouseY,
		Look:    s.Captured || ebiten.IsMouseButtonPressed(s.LookButton),
	}
}

// Toggled returns true if key was just pressed this frame
func (s *State) Toggled(key ebiten.Key) bool {
	return inpututil.IsKeyJustPressed(key)
}
