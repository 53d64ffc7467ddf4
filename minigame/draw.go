package minigame

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/phanxgames/ph"
	"github.com/tanema/gween/ease"
)

var (
	skyTop     = ph.Color{R: 0.45, G: 0.7, B: 0.95, A: 1}
	skyBottom  = ph.Color{R: 0.75, G: 0.88, B: 1, A: 1}
	plainSky   = ph.Color{R: 0.6, G: 0.8, B: 0.95, A: 1}
	wallColor  = ph.Color{R: 0.35, G: 0.55, B: 0.25, A: 1}
	cloudColor = ph.Color{R: 1, G: 1, B: 1, A: 0.8}
	lifeColor  = ph.Color{R: 0.9, G: 0.2, B: 0.3, A: 1}
	emptyPip   = ph.Color{R: 0, G: 0, B: 0, A: 0.3}
	flashColor = ph.Color{R: 1, G: 1, B: 1, A: 0.5}
)

const (
	numClouds     = 4
	skyBands      = 6
	hitFlashTime  = 0.1
	pipSize       = 4
	pipGap        = 2
	cloudWrapSlop = 40
)

// Sprite names looked up in Options.Images.
const (
	ballSprite = "minigame/ball"
	seedSprite = "minigame/seed"
)

var (
	cloudHeight = ph.Range{Min: 0.05, Max: 0.35} // fraction of Height
	cloudWidth  = ph.Range{Min: 20, Max: 50}
	cloudSpeed  = ph.Range{Min: 5, Max: 15}
)

func newClouds(cfg Config, rng *rand.Rand) []cloud {
	across := ph.Range{Max: cfg.Width}
	clouds := make([]cloud, numClouds)
	for i := range clouds {
		clouds[i] = cloud{
			x:     across.RandomFrom(rng),
			y:     cfg.Height * cloudHeight.RandomFrom(rng),
			w:     cloudWidth.RandomFrom(rng),
			speed: cloudSpeed.RandomFrom(rng),
		}
	}
	return clouds
}

// updateClouds drifts the background clouds. It runs in every phase.
func (g *Minigame) updateClouds(dt float64) {
	for i := range g.clouds {
		c := &g.clouds[i]
		c.x += c.speed * dt
		if c.x > g.cfg.Width+cloudWrapSlop {
			c.x = -cloudWrapSlop - c.w
		}
	}
}

// ShakeOffset returns the screen shake translation and rotation at now. It
// decays along ease.OutCubic over the level's shake duration and is a pure
// function of time.
func (g *Minigame) ShakeOffset(now float64) (dx, dy, rot float64) {
	if !g.shaking {
		return 0, 0, 0
	}
	shake := ShakeFor(g.cfg.Juice)
	k := ph.Decay(now-g.lastShake, shake.Duration, ease.OutCubic)
	if k == 0 {
		return 0, 0, 0
	}
	t := now - g.lastShake
	dx = shake.Translate * k * math.Sin(t*71)
	dy = shake.Translate * k * math.Cos(t*53)
	rot = shake.Rotate * k * math.Sin(t*37)
	return dx, dy, rot
}

// Draw renders the playfield, then the HUD on top without shake.
func (g *Minigame) Draw(s ph.Surface) {
	now := g.clock.Now()
	detail := DetailFor(g.cfg.Juice)
	w, h := g.cfg.Width, g.cfg.Height

	s.Save()
	if dx, dy, rot := g.ShakeOffset(now); dx != 0 || dy != 0 || rot != 0 {
		s.Translate(w/2+dx, h/2+dy)
		s.Rotate(rot)
		s.Translate(-w/2, -h/2)
	}

	g.drawBackground(s, detail)
	s.FillRect(0, 0, g.cfg.WallThickness, h, wallColor)
	s.FillRect(w-g.cfg.WallThickness, 0, g.cfg.WallThickness, h, wallColor)
	s.FillRect(0, h-g.cfg.WallThickness, w, g.cfg.WallThickness, dirtColor)

	seedImg := g.sprite(seedSprite)
	for _, seed := range g.seeds {
		if seedImg != nil {
			drawCentered(s, seedImg, seed.X, seed.Y)
			continue
		}
		s.FillCircle(seed.X, seed.Y, g.cfg.SeedRadius, seedColor)
	}
	for i, b := range g.birds {
		g.drawBird(s, b, g.birdVels[i], now, detail.BirdWings)
	}
	g.drawBall(s, detail.BallShine)
	g.particles.Draw(s, g.cfg.ParticleSize)
	s.Restore()

	if detail.HitFlash && g.shaking && now-g.lastShake < hitFlashTime {
		s.FillRect(0, 0, w, h, flashColor)
	}
	g.drawHUD(s, now)
}

func (g *Minigame) drawBackground(s ph.Surface, detail DetailSettings) {
	w, h := g.cfg.Width, g.cfg.Height
	if !detail.Background {
		s.FillRect(0, 0, w, h, plainSky)
		return
	}
	band := h / skyBands
	for i := 0; i < skyBands; i++ {
		t := float64(i) / (skyBands - 1)
		c := ph.Color{
			R: skyTop.R + (skyBottom.R-skyTop.R)*t,
			G: skyTop.G + (skyBottom.G-skyTop.G)*t,
			B: skyTop.B + (skyBottom.B-skyTop.B)*t,
			A: 1,
		}
		s.FillRect(0, band*float64(i), w, band+1, c)
	}
	if !detail.Clouds {
		return
	}
	for _, c := range g.clouds {
		r := c.w / 4
		s.FillCircle(c.x+r, c.y, r, cloudColor)
		s.FillCircle(c.x+2*r, c.y-r/2, r*1.3, cloudColor)
		s.FillCircle(c.x+3*r, c.y, r, cloudColor)
	}
}

func (g *Minigame) drawBird(s ph.Surface, p, v ph.Vec2, now float64, wings bool) {
	r := g.cfg.BirdRadius
	dir := 1.0
	if v.X < 0 {
		dir = -1
	}
	s.FillPath([]ph.Vec2{
		{X: p.X + dir*r, Y: p.Y},
		{X: p.X - dir*r, Y: p.Y - r/2},
		{X: p.X - dir*r, Y: p.Y + r/2},
	}, birdColor)
	if !wings {
		return
	}
	flap := math.Sin(now*18+p.Y) * r * 0.8
	s.FillPath([]ph.Vec2{
		{X: p.X - dir*r/3, Y: p.Y},
		{X: p.X + dir*r/3, Y: p.Y},
		{X: p.X, Y: p.Y - flap},
	}, birdColor)
}

// sprite returns the named image, or nil when there is no image source or
// the asset was not loaded.
func (g *Minigame) sprite(name string) *ebiten.Image {
	if g.images == nil {
		return nil
	}
	img, ok := g.images.Image(name)
	if !ok {
		return nil
	}
	return img
}

func drawCentered(s ph.Surface, img *ebiten.Image, x, y float64) {
	b := img.Bounds()
	s.DrawImage(img, x-float64(b.Dx())/2, y-float64(b.Dy())/2)
}

func (g *Minigame) drawBall(s ph.Surface, shine bool) {
	b := g.ball
	if img := g.sprite(ballSprite); img != nil {
		drawCentered(s, img, b.X, b.Y)
		return
	}
	r := g.cfg.BallRadius
	s.FillCircle(b.X, b.Y, r, ballColor)
	if shine {
		s.FillCircle(b.X-r/3, b.Y-r/3, r/3, ph.ColorWhite)
	}
}

func (g *Minigame) drawHUD(s ph.Surface, now float64) {
	x := g.cfg.WallThickness + pipGap
	for i := 0; i < g.cfg.Lives; i++ {
		c := lifeColor
		if i >= g.lives {
			c = emptyPip
		}
		s.FillRect(x, pipGap, pipSize, pipSize, c)
		x += pipSize + pipGap
	}

	x = g.cfg.Width - g.cfg.WallThickness - pipGap - pipSize
	for i := 0; i < g.cfg.NumSeeds; i++ {
		c := emptyPip
		if i < g.collected {
			c = seedColor
		}
		s.FillRect(x, pipGap, pipSize, pipSize, c)
		x -= pipSize + pipGap
	}

	switch g.phase.Kind {
	case PhaseIntro:
		left := g.cfg.IntroTime() - (now - g.phase.Since)
		s.DebugText(fmt.Sprintf("GET READY %d", int(math.Ceil(left))), g.cfg.Width/2-36, g.cfg.Height/2)
	case PhaseEnded:
		msg := "OUCH!"
		if g.phase.Won {
			msg = "ALL SEEDS!"
		}
		s.DebugText(msg, g.cfg.Width/2-30, g.cfg.Height/2)
	}
}
