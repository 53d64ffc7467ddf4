package ph

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Tween animates a single float64 toward a target value. Call Update(dt) each
// tick; the field is written on every update until the tween finishes.
//
// There is no global animation manager. Owners call Update themselves.
type Tween struct {
	tween *gween.Tween
	field *float64
	Done  bool
}

// NewTween creates a tween that moves *field from its current value to to
// over duration seconds using fn. A nil fn selects ease.Linear.
func NewTween(field *float64, to float64, duration float32, fn ease.TweenFunc) *Tween {
	if fn == nil {
		fn = ease.Linear
	}
	return &Tween{
		tween: gween.New(float32(*field), float32(to), duration, fn),
		field: field,
	}
}

// Update advances the tween by dt seconds and reports whether it is done.
func (t *Tween) Update(dt float64) bool {
	if t.Done {
		return true
	}
	val, finished := t.tween.Update(float32(dt))
	*t.field = float64(val)
	t.Done = finished
	return finished
}

// Decay returns 1 at elapsed=0 falling to 0 at elapsed=duration along fn.
// Outside that window it returns 0. It is a pure function of time, which
// makes it usable from Draw.
func Decay(elapsed, duration float64, fn ease.TweenFunc) float64 {
	if duration <= 0 || elapsed < 0 || elapsed >= duration {
		return 0
	}
	if fn == nil {
		fn = ease.Linear
	}
	return float64(fn(float32(elapsed), 1, -1, float32(duration)))
}
