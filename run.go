package ph

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig configures the window and the per-tick collaborators driven by
// Run.
type RunConfig struct {
	Title string
	// Width and Height are the logical screen size.
	Width, Height int
	// Scale multiplies the logical size to get the initial window size.
	// Zero means 1.
	Scale int
	// Clock is advanced by 1/TPS every tick. Nil creates a private clock.
	Clock *TickClock
	// Input polls ebiten input every tick. Nil creates one on Clock.
	Input *Input
	// BeforeUpdate hooks run each tick after the clock advances and before
	// input is polled, e.g. a Mixer's Update or a ScriptRunner's Step.
	BeforeUpdate []func(now float64)
	// ShouldQuit is checked after every tick; returning true ends Run.
	ShouldQuit func() bool
	// Fullscreen starts the window in fullscreen mode.
	Fullscreen bool
}

// runner adapts a LayerManager to ebiten.Game.
type runner struct {
	m       *LayerManager
	cfg     RunConfig
	surface *ImageSurface
	ticks   int
	stats   debugStats
}

// Run opens a window and drives m until the window closes or ShouldQuit
// reports true.
func Run(m *LayerManager, cfg RunConfig) error {
	scale := max(cfg.Scale, 1)
	ebiten.SetWindowSize(cfg.Width*scale, cfg.Height*scale)
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetFullscreen(cfg.Fullscreen)
	return ebiten.RunGame(newRunner(m, cfg))
}

func newRunner(m *LayerManager, cfg RunConfig) *runner {
	if cfg.Clock == nil {
		cfg.Clock = &TickClock{}
	}
	if cfg.Input == nil {
		cfg.Input = NewInput(cfg.Clock)
	}
	return &runner{m: m, cfg: cfg, surface: NewImageSurface(nil)}
}

// tick runs one fixed update step. Polling input is left to Update so tests
// can drive ticks without an ebiten window.
func (r *runner) tick(dt float64, poll func()) {
	var t0 time.Time
	if r.m.debug {
		t0 = time.Now()
	}

	r.cfg.Clock.Advance(dt)
	now := r.cfg.Clock.Now()
	for _, hook := range r.cfg.BeforeUpdate {
		hook(now)
	}
	if poll != nil {
		poll()
	}
	consumed := r.m.Update(dt)

	if r.m.debug {
		r.stats.updateTime = time.Since(t0)
		r.stats.layerCount = len(r.m.active)
		r.stats.consumed = consumed
		r.ticks++
		if r.ticks%debugStatsInterval == 0 {
			r.m.debugLog(r.stats)
		}
	}
}

func (r *runner) Update() error {
	r.tick(1.0/float64(ebiten.TPS()), func() { r.cfg.Input.Poll(r.m) })
	if r.cfg.ShouldQuit != nil && r.cfg.ShouldQuit() {
		return ebiten.Termination
	}
	return nil
}

func (r *runner) Draw(screen *ebiten.Image) {
	var t0 time.Time
	if r.m.debug {
		t0 = time.Now()
	}
	r.surface.Reset(screen)
	r.m.Draw(r.surface)
	if r.m.debug {
		r.stats.drawTime = time.Since(t0)
	}
}

func (r *runner) Layout(outsideWidth, outsideHeight int) (int, int) {
	return r.cfg.Width, r.cfg.Height
}
