package ph

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// DoubleClickWindow is the longest gap in seconds between two left clicks
// that still counts as a double click.
const DoubleClickWindow = 0.3

// InputKind identifies the kind of an InputEvent.
type InputKind uint8

const (
	InputMouseDown   InputKind = iota // a mouse button was pressed
	InputMouseUp                      // a mouse button was released
	InputClick                        // press then release of the same button
	InputDoubleClick                  // second left click within DoubleClickWindow
	InputKeyDown                      // a key was pressed
	InputKeyUp                        // a key was released
)

// InputEvent is passed to Input.Fallback for events no layer consumed.
type InputEvent struct {
	Kind   InputKind
	Button MouseButton
	Key    ebiten.Key
}

var ebitenButtons = [...]ebiten.MouseButton{
	MouseButtonLeft:   ebiten.MouseButtonLeft,
	MouseButtonRight:  ebiten.MouseButtonRight,
	MouseButtonMiddle: ebiten.MouseButtonMiddle,
}

// Input turns polled ebiten input into LayerManager dispatches.
//
// A consumed event stops at the layer that consumed it. Events that pass
// through every layer are offered to Fallback, the same for mouse and
// keyboard.
type Input struct {
	// Transform maps window coordinates into simulation space. Nil means
	// identity.
	Transform func(x, y float64) (float64, float64)
	// Fallback receives events that no layer consumed.
	Fallback func(InputEvent)

	clock      Clock
	pointerX   float64
	pointerY   float64
	hasPointer bool
	down       [len(ebitenButtons)]bool

	lastClick      float64
	lastClickValid bool

	keyBuf []ebiten.Key
}

// NewInput creates an input adapter that timestamps clicks with clock.
func NewInput(clock Clock) *Input {
	return &Input{clock: clock}
}

// Poll reads this tick's ebiten input state and dispatches it to m.
func (in *Input) Poll(m *LayerManager) {
	cx, cy := ebiten.CursorPosition()
	in.MoveTo(m, float64(cx), float64(cy))

	for b, eb := range ebitenButtons {
		if inpututil.IsMouseButtonJustPressed(eb) {
			in.Press(m, MouseButton(b))
		}
		if inpututil.IsMouseButtonJustReleased(eb) {
			in.Release(m, MouseButton(b))
		}
	}

	in.keyBuf = inpututil.AppendJustPressedKeys(in.keyBuf[:0])
	for _, k := range in.keyBuf {
		in.KeyDown(m, k)
	}
	in.keyBuf = inpututil.AppendJustReleasedKeys(in.keyBuf[:0])
	for _, k := range in.keyBuf {
		in.KeyUp(m, k)
	}
}

// MoveTo reports a pointer position in window coordinates. Positions equal to
// the last reported one are ignored.
func (in *Input) MoveTo(m *LayerManager, x, y float64) {
	if in.Transform != nil {
		x, y = in.Transform(x, y)
	}
	if in.hasPointer && x == in.pointerX && y == in.pointerY {
		return
	}
	in.pointerX, in.pointerY = x, y
	in.hasPointer = true
	m.HandleMouseMove(x, y)
}

// Press dispatches a button press.
func (in *Input) Press(m *LayerManager, b MouseButton) {
	in.down[b] = true
	in.forward(m.HandleMouseDown(b), InputEvent{Kind: InputMouseDown, Button: b})
}

// Release dispatches a button release, followed by a click if the button was
// pressed, followed by a double click if this left click closely follows the
// previous one.
func (in *Input) Release(m *LayerManager, b MouseButton) {
	in.forward(m.HandleMouseUp(b), InputEvent{Kind: InputMouseUp, Button: b})
	if !in.down[b] {
		return
	}
	in.down[b] = false
	in.forward(m.HandleClick(b), InputEvent{Kind: InputClick, Button: b})

	if b != MouseButtonLeft {
		return
	}
	now := in.clock.Now()
	if in.lastClickValid && now-in.lastClick <= DoubleClickWindow {
		in.lastClickValid = false
		in.forward(m.HandleDoubleClick(), InputEvent{Kind: InputDoubleClick, Button: b})
		return
	}
	in.lastClick = now
	in.lastClickValid = true
}

// KeyDown dispatches a key press.
func (in *Input) KeyDown(m *LayerManager, k ebiten.Key) {
	in.forward(m.HandleKeyDown(KeyEvent{Key: k}), InputEvent{Kind: InputKeyDown, Key: k})
}

// KeyUp dispatches a key release.
func (in *Input) KeyUp(m *LayerManager, k ebiten.Key) {
	in.forward(m.HandleKeyUp(KeyEvent{Key: k}), InputEvent{Kind: InputKeyUp, Key: k})
}

func (in *Input) forward(consumed bool, ev InputEvent) {
	if consumed || in.Fallback == nil {
		return
	}
	in.Fallback(ev)
}
