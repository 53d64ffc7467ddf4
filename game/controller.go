// Package game wires the minigame into a playable session: a menu to pick
// the juice level, the round itself, and the overlays drawn above both.
package game

import (
	"fmt"
	"log"
	"math/rand/v2"

	"github.com/phanxgames/ph"
	"github.com/phanxgames/ph/minigame"
)

// Stats counts finished rounds.
type Stats struct {
	Played int
	Won    int
	Lost   int
}

// Options configures a Controller.
type Options struct {
	// Config is the minigame tuning. Its Juice field is the menu's initial
	// level.
	Config minigame.Config
	Clock  ph.Clock
	Sound  ph.SoundPlayer
	Rand   *rand.Rand
	// Images supplies optional minigame sprites.
	Images minigame.ImageSource
	// Debug adds an FPS overlay to the top band.
	Debug bool
}

// Controller owns the layer bands and switches between the menu and the
// minigame.
type Controller struct {
	m    *ph.LayerManager
	opts Options

	menu   *MenuLayer
	cursor *CursorLayer
	fps    *ph.FPSLayer
	game   *minigame.Minigame

	stats Stats
}

// NewController validates opts.Config, installs the overlays and shows the
// menu.
func NewController(m *ph.LayerManager, opts Options) (*Controller, error) {
	if err := opts.Config.Validate(); err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}
	if opts.Clock == nil {
		opts.Clock = ph.NewWallClock()
	}
	c := &Controller{
		m:      m,
		opts:   opts,
		cursor: NewCursorLayer(),
	}
	c.menu = NewMenuLayer(opts.Config.Juice, opts.Config.Width, opts.Config.Height, func(level minigame.JuiceLevel) {
		if err := c.StartMinigame(level); err != nil {
			log.Printf("game: start minigame: %v", err)
		}
	})

	top := []ph.Layer{c.cursor}
	if opts.Debug {
		c.fps = ph.NewFPSLayer()
		top = append(top, c.fps)
	}
	m.SetTopLayers(top...)
	c.ShowMenu()
	return c, nil
}

// ShowMenu replaces the main band with the menu.
func (c *Controller) ShowMenu() {
	c.game = nil
	c.m.SetMainLayers(c.menu)
}

// StartMinigame builds a fresh round at level and makes it the main band.
func (c *Controller) StartMinigame(level minigame.JuiceLevel) error {
	cfg := c.opts.Config
	cfg.Juice = level.Clamp()
	g, err := minigame.New(cfg, minigame.Options{
		Clock:   c.opts.Clock,
		Sound:   c.opts.Sound,
		Rand:    c.opts.Rand,
		OnEnded: c.OnMinigameEnded,
		Images:  c.opts.Images,
	})
	if err != nil {
		return fmt.Errorf("game: %w", err)
	}
	c.game = g
	c.m.SetMainLayers(g)
	return nil
}

// OnMinigameEnded records the outcome of a round and returns to the menu.
func (c *Controller) OnMinigameEnded(won bool) {
	c.stats.Played++
	if won {
		c.stats.Won++
	} else {
		c.stats.Lost++
	}
	log.Printf("game: round %d finished, won=%v", c.stats.Played, won)
	c.menu.SetResult(won, c.stats)
	c.ShowMenu()
}

// Stats returns the finished-round counters.
func (c *Controller) Stats() Stats { return c.stats }

// Minigame returns the running round, or nil while the menu is shown.
func (c *Controller) Minigame() *minigame.Minigame { return c.game }

// Menu returns the menu layer.
func (c *Controller) Menu() *MenuLayer { return c.menu }

// Cursor returns the cursor overlay.
func (c *Controller) Cursor() *CursorLayer { return c.cursor }
