package ph

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

var (
	// ErrEmptyScript is returned for a script without steps.
	ErrEmptyScript = errors.New("no steps")
	// ErrUnknownAction is returned for a step whose action is not recognised.
	ErrUnknownAction = errors.New("unknown action")
)

// scriptStep represents a single action in an input script.
type scriptStep struct {
	Action string  `json:"action"`
	Key    string  `json:"key,omitempty"`
	Button string  `json:"button,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	Frames int     `json:"frames,omitempty"`

	key    ebiten.Key
	button MouseButton
}

// script is the top-level JSON structure for an input script.
type script struct {
	Steps []scriptStep `json:"steps"`
}

// ScriptRunner replays scripted input into a LayerManager, one step per
// tick. It drives automated playthroughs and demo recordings.
//
// Actions: "keydown", "keyup" (key), "click", "mousedown", "mouseup"
// (button, default left), "move" (x, y) and "wait" (frames).
type ScriptRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadScript parses a JSON input script.
func LoadScript(jsonData []byte) (*ScriptRunner, error) {
	var sc script
	if err := json.Unmarshal(jsonData, &sc); err != nil {
		return nil, fmt.Errorf("ph: parse input script: %w", err)
	}
	if len(sc.Steps) == 0 {
		return nil, fmt.Errorf("ph: parse input script: %w", ErrEmptyScript)
	}
	for i := range sc.Steps {
		if err := sc.Steps[i].resolve(); err != nil {
			return nil, fmt.Errorf("ph: parse input script: step %d: %w", i, err)
		}
	}
	return &ScriptRunner{steps: sc.Steps}, nil
}

func (st *scriptStep) resolve() error {
	switch st.Action {
	case "keydown", "keyup":
		var k ebiten.Key
		if err := k.UnmarshalText([]byte(st.Key)); err != nil {
			return fmt.Errorf("key %q: %w", st.Key, err)
		}
		st.key = k
	case "click", "mousedown", "mouseup":
		switch st.Button {
		case "", "left":
			st.button = MouseButtonLeft
		case "right":
			st.button = MouseButtonRight
		case "middle":
			st.button = MouseButtonMiddle
		default:
			return fmt.Errorf("button %q: %w", st.Button, ErrUnknownAction)
		}
	case "move", "wait":
	default:
		return fmt.Errorf("%q: %w", st.Action, ErrUnknownAction)
	}
	return nil
}

// Done reports whether all steps have been executed.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// Step advances the runner by one tick, dispatching at most one step to m.
func (r *ScriptRunner) Step(m *LayerManager) {
	if r.done {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "keydown":
		m.HandleKeyDown(KeyEvent{Key: st.key})
	case "keyup":
		m.HandleKeyUp(KeyEvent{Key: st.key})
	case "mousedown":
		m.HandleMouseDown(st.button)
	case "mouseup":
		m.HandleMouseUp(st.button)
	case "click":
		m.HandleMouseDown(st.button)
		m.HandleMouseUp(st.button)
		m.HandleClick(st.button)
	case "move":
		m.HandleMouseMove(st.X, st.Y)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 {
		r.done = true
	}
}
