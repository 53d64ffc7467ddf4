package ph

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func newInputHarness(pass bool) (*Input, *LayerManager, *TickClock, *[]string, *[]InputEvent) {
	var log []string
	var fallback []InputEvent
	clock := &TickClock{}
	m := NewLayerManager()
	m.SetMainLayers(newTraceLayer("p", &log, pass))
	log = nil
	in := NewInput(clock)
	in.Fallback = func(ev InputEvent) { fallback = append(fallback, ev) }
	return in, m, clock, &log, &fallback
}

func TestInputReleaseSequence(t *testing.T) {
	in, m, _, log, _ := newInputHarness(true)
	in.Press(m, MouseButtonLeft)
	in.Release(m, MouseButtonLeft)

	assertLog(t, *log,
		"p.coords", "p.move", "p.down:left",
		"p.coords", "p.move", "p.up:left",
		"p.coords", "p.move", "p.click:left",
	)
}

func TestInputReleaseWithoutPressNoClick(t *testing.T) {
	in, m, _, log, _ := newInputHarness(true)
	in.Release(m, MouseButtonRight)
	assertLog(t, *log, "p.coords", "p.move", "p.up:right")
}

func TestInputDoubleClick(t *testing.T) {
	tests := []struct {
		name string
		gap  float64
		want bool
	}{
		{"fast", 0.1, true},
		{"at window", DoubleClickWindow, true},
		{"slow", DoubleClickWindow + 0.05, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in, m, clock, _, fallback := newInputHarness(true)
			in.Press(m, MouseButtonLeft)
			in.Release(m, MouseButtonLeft)
			clock.Advance(tt.gap)
			in.Press(m, MouseButtonLeft)
			in.Release(m, MouseButtonLeft)

			got := false
			for _, ev := range *fallback {
				if ev.Kind == InputDoubleClick {
					got = true
				}
			}
			if got != tt.want {
				t.Errorf("double click = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestInputTripleClickIsOneDouble(t *testing.T) {
	in, m, clock, _, fallback := newInputHarness(true)
	for i := 0; i < 3; i++ {
		in.Press(m, MouseButtonLeft)
		in.Release(m, MouseButtonLeft)
		clock.Advance(0.1)
	}
	n := 0
	for _, ev := range *fallback {
		if ev.Kind == InputDoubleClick {
			n++
		}
	}
	if n != 1 {
		t.Errorf("double clicks = %d, want 1", n)
	}
}

func TestInputRightClickNeverDouble(t *testing.T) {
	in, m, _, _, fallback := newInputHarness(true)
	for i := 0; i < 2; i++ {
		in.Press(m, MouseButtonRight)
		in.Release(m, MouseButtonRight)
	}
	for _, ev := range *fallback {
		if ev.Kind == InputDoubleClick {
			t.Fatal("right clicks should not double click")
		}
	}
}

func TestInputFallbackOnlyWhenNotConsumed(t *testing.T) {
	in, m, _, _, fallback := newInputHarness(false)
	in.Press(m, MouseButtonLeft)
	in.Release(m, MouseButtonLeft)
	in.KeyDown(m, ebiten.KeyEscape)
	in.KeyUp(m, ebiten.KeyEscape)
	if len(*fallback) != 0 {
		t.Errorf("fallback = %+v, want nothing for consumed events", *fallback)
	}

	in, m, _, _, fallback = newInputHarness(true)
	in.KeyDown(m, ebiten.KeyEscape)
	in.KeyUp(m, ebiten.KeyEscape)
	want := []InputEvent{
		{Kind: InputKeyDown, Key: ebiten.KeyEscape},
		{Kind: InputKeyUp, Key: ebiten.KeyEscape},
	}
	if len(*fallback) != 2 || (*fallback)[0] != want[0] || (*fallback)[1] != want[1] {
		t.Errorf("fallback = %+v, want %+v", *fallback, want)
	}
}

func TestInputMoveToTransformsAndDedups(t *testing.T) {
	in, m, _, log, _ := newInputHarness(true)
	in.Transform = func(x, y float64) (float64, float64) { return x / 2, y / 2 }

	in.MoveTo(m, 100, 50)
	in.MoveTo(m, 100, 50)

	assertLog(t, *log, "p.coords", "p.move")
	if x, y := m.Pointer(); x != 50 || y != 25 {
		t.Errorf("pointer = (%v, %v), want (50, 25)", x, y)
	}
}
