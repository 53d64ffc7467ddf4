package ph

import "time"

// Clock supplies monotonically increasing time in seconds from an arbitrary
// epoch.
type Clock interface {
	Now() float64
}

// TickClock is advanced explicitly, once per tick by the run loop. It makes a
// session fully deterministic for a given tick count.
type TickClock struct {
	now float64
}

// Now returns the accumulated time.
func (c *TickClock) Now() float64 {
	return c.now
}

// Advance moves the clock forward by dt seconds. Negative values are ignored.
func (c *TickClock) Advance(dt float64) {
	if dt > 0 {
		c.now += dt
	}
}

// Set jumps the clock to t if t is not in the past.
func (c *TickClock) Set(t float64) {
	if t > c.now {
		c.now = t
	}
}

// WallClock reads the monotonic system clock.
type WallClock struct {
	start time.Time
}

// NewWallClock returns a clock whose epoch is the moment of the call.
func NewWallClock() *WallClock {
	return &WallClock{start: time.Now()}
}

// Now returns seconds since the clock was created.
func (c *WallClock) Now() float64 {
	return time.Since(c.start).Seconds()
}
