package game

import "github.com/phanxgames/ph"

var cursorColor = ph.Color{R: 1, G: 1, B: 1, A: 0.8}

const cursorArm = 4

// CursorLayer draws a crosshair at the pointer. It never consumes anything.
type CursorLayer struct {
	ph.BaseLayer
	x, y    float64
	visible bool
}

// NewCursorLayer creates a hidden cursor; it appears on the first pointer
// update.
func NewCursorLayer() *CursorLayer {
	return &CursorLayer{}
}

func (l *CursorLayer) Name() string { return "cursor" }

// Position returns the last pointer position and whether one was seen.
func (l *CursorLayer) Position() (x, y float64, ok bool) {
	return l.x, l.y, l.visible
}

func (l *CursorLayer) HandleMouseMoveClientCoords(x, y float64) {
	l.x, l.y = x, y
	l.visible = true
}

func (l *CursorLayer) Draw(s ph.Surface) {
	if !l.visible {
		return
	}
	s.FillRect(l.x-cursorArm, l.y, 2*cursorArm+1, 1, cursorColor)
	s.FillRect(l.x, l.y-cursorArm, 1, 2*cursorArm+1, cursorColor)
}
