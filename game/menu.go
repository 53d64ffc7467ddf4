package game

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/phanxgames/ph"
	"github.com/phanxgames/ph/minigame"
)

var (
	menuBackground = ph.Color{R: 0.2, G: 0.32, B: 0.18, A: 1}
	menuPanel      = ph.Color{R: 0, G: 0, B: 0, A: 0.4}
	juiceOn        = ph.Color{R: 0.95, G: 0.8, B: 0.3, A: 1}
	juiceOff       = ph.Color{R: 1, G: 1, B: 1, A: 0.2}
)

// MenuLayer lets the player choose a juice level and start a round. It
// consumes the keys and clicks it acts on and passes the rest through.
type MenuLayer struct {
	ph.BaseLayer

	level minigame.JuiceLevel
	start func(minigame.JuiceLevel)

	w, h     float64
	panel    ph.Rect
	pointerX float64
	pointerY float64

	hasResult bool
	won       bool
	stats     Stats
}

// NewMenuLayer creates a menu for a w by h screen, preselecting level. start
// is called with the chosen level.
func NewMenuLayer(level minigame.JuiceLevel, w, h float64, start func(minigame.JuiceLevel)) *MenuLayer {
	return &MenuLayer{
		level: level.Clamp(),
		start: start,
		w:     w,
		h:     h,
		panel: ph.Rect{X: w/2 - 90, Y: h/2 - 60, Width: 180, Height: 120},
	}
}

func (l *MenuLayer) Name() string { return "menu" }

// Level returns the selected juice level.
func (l *MenuLayer) Level() minigame.JuiceLevel { return l.level }

// SetResult shows the outcome of the last round.
func (l *MenuLayer) SetResult(won bool, stats Stats) {
	l.hasResult = true
	l.won = won
	l.stats = stats
}

func (l *MenuLayer) HandleKeyDown(e ph.KeyEvent) bool {
	switch e.Key {
	case ebiten.KeyArrowUp, ebiten.KeyW:
		l.level = (l.level + 1).Clamp()
	case ebiten.KeyArrowDown, ebiten.KeyS:
		l.level = (l.level - 1).Clamp()
	case ebiten.KeyEnter, ebiten.KeySpace:
		l.start(l.level)
	default:
		return true
	}
	return false
}

// Panel returns the clickable area that starts a round.
func (l *MenuLayer) Panel() ph.Rect { return l.panel }

func (l *MenuLayer) HandleMouseMoveClientCoords(x, y float64) {
	l.pointerX, l.pointerY = x, y
}

func (l *MenuLayer) HandleClick(b ph.MouseButton) bool {
	if b != ph.MouseButtonLeft || !l.panel.Contains(l.pointerX, l.pointerY) {
		return true
	}
	l.start(l.level)
	return false
}

func (l *MenuLayer) Draw(s ph.Surface) {
	w, h := l.w, l.h
	s.FillRect(0, 0, w, h, menuBackground)
	s.FillRect(l.panel.X, l.panel.Y, l.panel.Width, l.panel.Height, menuPanel)

	s.DebugText("FARMBALL", w/2-24, h/2-52)
	s.DebugText(fmt.Sprintf("juice %d/%d  up/down", l.level, minigame.MaxJuice), w/2-78, h/2-28)
	for i := minigame.JuiceLevel(0); i <= minigame.MaxJuice; i++ {
		c := juiceOff
		if i <= l.level {
			c = juiceOn
		}
		s.FillRect(w/2-78+float64(i)*14, h/2-10, 10, 6, c)
	}
	s.DebugText("enter or click here", w/2-66, h/2+4)

	if !l.hasResult {
		return
	}
	msg := "the birds won"
	if l.won {
		msg = "all seeds collected"
	}
	s.DebugText(msg, w/2-78, h/2+24)
	s.DebugText(fmt.Sprintf("won %d  lost %d", l.stats.Won, l.stats.Lost), w/2-78, h/2+38)
}
