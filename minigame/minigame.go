// Package minigame implements the arcade round of the farm game: a ball
// bounced left and right by the player collects seeds while dodging birds.
//
// A round moves through four phases. The first update starts the intro,
// during which physics is frozen and the intro sound plays; music is
// scheduled for the end of the intro. Playing runs the full simulation. Once
// every seed is collected, or the last life is lost, the round ends; after
// RestTime the OnEnded callback fires and a fresh round is prepared.
package minigame

import (
	"math/rand/v2"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/phanxgames/ph"
)

// Ball is the player-controlled body.
type Ball struct {
	X, Y   float64
	VX, VY float64
}

// Options wires a Minigame to its collaborators.
type Options struct {
	// Clock supplies the timestamps that drive the phases. Nil selects a
	// wall clock.
	Clock ph.Clock
	// Sound plays effects and music. Nil is silent.
	Sound ph.SoundPlayer
	// Rand drives seed placement, bird spawning and bursts. Nil seeds one
	// from the current time.
	Rand *rand.Rand
	// OnEnded is called once per round, RestTime after it is won or lost.
	OnEnded func(won bool)
	// Images supplies optional sprites for the ball and seeds; anything
	// missing is drawn as a shape. *ph.Store satisfies it.
	Images ImageSource
}

// ImageSource looks up decoded images by asset name.
type ImageSource interface {
	Image(name string) (*ebiten.Image, bool)
}

type cloud struct {
	x, y, w, speed float64
}

// Minigame is the simulation and its layer. It consumes every tick while it
// is active.
type Minigame struct {
	ph.BaseLayer

	cfg     Config
	clock   ph.Clock
	sound   ph.SoundPlayer
	rng     *rand.Rand
	onEnded func(won bool)
	images  ImageSource

	phase     Phase
	ball      Ball
	birds     []ph.Vec2
	birdVels  []ph.Vec2
	seeds     []ph.Vec2
	collected int
	lives     int

	lastShake float64
	shaking   bool
	music     ph.SoundHandle

	particles *ph.ParticlePool
	clouds    []cloud

	left, right bool
}

// New validates cfg and prepares the first round.
func New(cfg Config, opts Options) (*Minigame, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if opts.Clock == nil {
		opts.Clock = ph.NewWallClock()
	}
	if opts.Sound == nil {
		opts.Sound = silence{}
	}
	if opts.Rand == nil {
		opts.Rand = ph.NewRand(uint64(time.Now().UnixNano()))
	}
	g := &Minigame{
		cfg:     cfg,
		clock:   opts.Clock,
		sound:   opts.Sound,
		rng:     opts.Rand,
		onEnded: opts.OnEnded,
		images:  opts.Images,
	}
	g.particles = ph.NewParticlePool(cfg.ParticleCapacity, ph.PoolConfig{
		Gravity: cfg.ParticleGravity,
		KillY:   cfg.Height + cfg.ParticleMargin,
	}, g.rng)
	g.clouds = newClouds(cfg, g.rng)
	g.reset()
	return g, nil
}

func (g *Minigame) Name() string { return "minigame" }

// Config returns the configuration the round was built with.
func (g *Minigame) Config() Config { return g.cfg }

// Phase returns the current phase.
func (g *Minigame) Phase() Phase { return g.phase }

// Ball returns the ball state.
func (g *Minigame) Ball() Ball { return g.ball }

// Seeds returns the uncollected seeds. The returned slice MUST NOT be mutated.
func (g *Minigame) Seeds() []ph.Vec2 { return g.seeds }

// Birds returns bird positions. The returned slice MUST NOT be mutated.
func (g *Minigame) Birds() []ph.Vec2 { return g.birds }

// Collected returns the number of seeds collected this round.
func (g *Minigame) Collected() int { return g.collected }

// Lives returns the remaining lives.
func (g *Minigame) Lives() int { return g.lives }

// Particles returns the effect pool.
func (g *Minigame) Particles() *ph.ParticlePool { return g.particles }

// reset prepares a fresh round without touching the phase.
func (g *Minigame) reset() {
	g.ball = Ball{X: g.cfg.BallStartX, Y: g.cfg.BallStartY}
	g.birds = g.birds[:0]
	g.birdVels = g.birdVels[:0]
	g.seeds = placeSeeds(g.cfg, g.rng)
	g.collected = 0
	g.lives = g.cfg.Lives
	g.shaking = false
	g.particles.Reset()
}

// Update advances the round by dt seconds, capped at MaxStep.
func (g *Minigame) Update(dt float64) bool {
	now := g.clock.Now()
	dt = min(max(dt, 0), g.cfg.MaxStep)

	if g.phase.Kind == PhaseNotStarted {
		g.start(now)
	}
	if g.phase.Kind == PhaseIntro && now-g.phase.Since >= g.cfg.IntroTime() {
		g.phase.Kind = PhasePlaying
	}
	if g.phase.Kind == PhasePlaying {
		g.step(dt, now)
	}

	g.particles.Update(dt)
	g.updateClouds(dt)

	if g.phase.Kind == PhaseEnded && now-g.phase.At >= g.cfg.RestTime {
		g.complete()
	}
	return false
}

func (g *Minigame) start(now float64) {
	g.phase = Phase{Kind: PhaseIntro, Since: now}
	sounds := SoundsFor(g.cfg.Juice)
	g.sound.Play(sounds.Intro, false, now)
	g.music = g.sound.Play(sounds.Music, true, now+g.cfg.IntroTime())
}

func (g *Minigame) end(won bool, now float64) {
	g.phase = Phase{Kind: PhaseEnded, Since: g.phase.Since, At: now, Won: won}
	g.fadeMusic()
}

func (g *Minigame) complete() {
	won := g.phase.Won
	g.phase = Phase{}
	g.reset()
	if g.onEnded != nil {
		g.onEnded(won)
	}
}

// fadeMusic fades the music out when the player supports it and cuts it
// otherwise.
func (g *Minigame) fadeMusic() {
	f, ok := g.sound.(ph.SoundFader)
	if !ok || g.music == 0 || g.cfg.MusicFadeOut == 0 {
		g.stopMusic()
		return
	}
	f.Crossfade(g.music, 0, g.cfg.MusicFadeOut)
	g.music = 0
}

func (g *Minigame) stopMusic() {
	if g.music != 0 {
		g.sound.Stop(g.music)
		g.music = 0
	}
}

// HandleLayerRemoved releases held keys and stops the music.
func (g *Minigame) HandleLayerRemoved() {
	g.left, g.right = false, false
	g.stopMusic()
}

func (g *Minigame) HandleKeyDown(e ph.KeyEvent) bool {
	switch e.Key {
	case ebiten.KeyArrowLeft, ebiten.KeyA:
		g.left = true
	case ebiten.KeyArrowRight, ebiten.KeyD:
		g.right = true
	default:
		return true
	}
	return false
}

func (g *Minigame) HandleKeyUp(e ph.KeyEvent) bool {
	switch e.Key {
	case ebiten.KeyArrowLeft, ebiten.KeyA:
		g.left = false
	case ebiten.KeyArrowRight, ebiten.KeyD:
		g.right = false
	default:
		return true
	}
	return false
}

// silence is the SoundPlayer used when none is configured.
type silence struct{}

func (silence) Play(string, bool, float64) ph.SoundHandle { return 0 }
func (silence) Stop(ph.SoundHandle)                       {}

var _ ph.Layer = (*Minigame)(nil)
