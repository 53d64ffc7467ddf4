package ph

import (
	"errors"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestLoadScript(t *testing.T) {
	data := []byte(`{
		"steps": [
			{"action": "keydown", "key": "ArrowLeft"},
			{"action": "click", "button": "right"},
			{"action": "wait", "frames": 3},
			{"action": "move", "x": 10, "y": 20}
		]
	}`)

	runner, err := LoadScript(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(runner.steps) != 4 {
		t.Fatalf("expected 4 steps, got %d", len(runner.steps))
	}
	if runner.steps[0].key != ebiten.KeyArrowLeft {
		t.Errorf("step 0 key = %v, want ArrowLeft", runner.steps[0].key)
	}
	if runner.steps[1].button != MouseButtonRight {
		t.Errorf("step 1 button = %v, want right", runner.steps[1].button)
	}
	if runner.steps[2].Frames != 3 || runner.steps[3].X != 10 || runner.steps[3].Y != 20 {
		t.Error("step fields mismatch")
	}
}

func TestLoadScriptErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want error
	}{
		{"empty", `{"steps": []}`, ErrEmptyScript},
		{"unknown action", `{"steps": [{"action": "jump"}]}`, ErrUnknownAction},
		{"unknown button", `{"steps": [{"action": "click", "button": "fourth"}]}`, ErrUnknownAction},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadScript([]byte(tt.data))
			if !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestLoadScriptInvalid(t *testing.T) {
	if _, err := LoadScript([]byte(`not json`)); err == nil {
		t.Error("expected error for invalid JSON")
	}
	if _, err := LoadScript([]byte(`{"steps": [{"action": "keydown", "key": "NoSuchKey"}]}`)); err == nil {
		t.Error("expected error for unknown key")
	}
}

func TestScriptRunnerStep(t *testing.T) {
	var log []string
	m := NewLayerManager()
	m.SetMainLayers(newTraceLayer("p", &log, true))
	log = nil

	runner, err := LoadScript([]byte(`{"steps": [
		{"action": "keydown", "key": "Space"},
		{"action": "wait", "frames": 2},
		{"action": "click"}
	]}`))
	if err != nil {
		t.Fatal(err)
	}

	runner.Step(m)
	assertLog(t, log, "p.keydown")

	log = nil
	runner.Step(m) // wait frame 1
	runner.Step(m) // wait frame 2
	assertLog(t, log)
	if runner.Done() {
		t.Fatal("runner done before its last step")
	}

	runner.Step(m)
	assertLog(t, log,
		"p.coords", "p.move", "p.down:left",
		"p.coords", "p.move", "p.up:left",
		"p.coords", "p.move", "p.click:left",
	)
	if !runner.Done() {
		t.Error("runner should be done after its last step")
	}

	log = nil
	runner.Step(m)
	assertLog(t, log)
}

func TestScriptRunnerMove(t *testing.T) {
	var log []string
	m := NewLayerManager()
	m.SetMainLayers(newTraceLayer("p", &log, true))

	runner, err := LoadScript([]byte(`{"steps": [{"action": "move", "x": 7, "y": 8}]}`))
	if err != nil {
		t.Fatal(err)
	}
	runner.Step(m)
	if x, y := m.Pointer(); x != 7 || y != 8 {
		t.Errorf("pointer = (%v, %v), want (7, 8)", x, y)
	}
}
