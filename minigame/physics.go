package minigame

import (
	"math"

	"github.com/phanxgames/ph"
)

var (
	seedColor   = ph.Color{R: 0.95, G: 0.8, B: 0.3, A: 1}
	birdColor   = ph.Color{R: 0.25, G: 0.25, B: 0.35, A: 1}
	featherTint = ph.Color{R: 0.9, G: 0.9, B: 0.95, A: 1}
	dirtColor   = ph.Color{R: 0.55, G: 0.4, B: 0.25, A: 1}
	ballColor   = ph.Color{R: 0.9, G: 0.3, B: 0.25, A: 1}
)

// chebyshev returns the supremum distance between two points.
func chebyshev(ax, ay, bx, by float64) float64 {
	return math.Max(math.Abs(ax-bx), math.Abs(ay-by))
}

// step runs one integration step of the playing phase.
func (g *Minigame) step(dt, now float64) {
	g.integrateBall(dt)
	if g.collideWalls() {
		g.onBounce()
	}
	g.spawnBirds(dt)
	g.moveBirds(dt)
	g.collectSeeds()
	g.hitBirds(now)

	if g.collected >= g.cfg.NumSeeds {
		g.win(now)
	} else if g.lives <= 0 {
		g.lose(now)
	}
}

func (g *Minigame) integrateBall(dt float64) {
	b := &g.ball
	b.VY += g.cfg.Gravity * dt

	if g.left != g.right {
		dir := 1.0
		if g.left {
			dir = -1
		}
		b.VX += dir * g.cfg.XAccel * dt
	}
	f := g.cfg.Friction * dt
	if b.VX > 0 {
		b.VX = math.Max(0, b.VX-f)
	} else if b.VX < 0 {
		b.VX = math.Min(0, b.VX+f)
	}
	b.VX = math.Max(-g.cfg.MaxXVel, math.Min(g.cfg.MaxXVel, b.VX))

	b.X += b.VX * dt
	b.Y += b.VY * dt
}

// collideWalls mirrors the ball back into the playfield and reports whether
// it hit the floor. The floor sets a fixed upward speed instead of
// reflecting, so every bounce reaches the same height.
func (g *Minigame) collideWalls() bool {
	b := &g.ball
	left := g.cfg.WallThickness + g.cfg.BallRadius
	right := g.cfg.Width - g.cfg.WallThickness - g.cfg.BallRadius
	floor := g.cfg.Height - g.cfg.WallThickness - g.cfg.BallRadius

	if b.X < left {
		b.X = left + (left - b.X)
		b.VX = math.Abs(b.VX)
	}
	if b.X > right {
		b.X = right - (b.X - right)
		b.VX = -math.Abs(b.VX)
	}
	b.X = math.Max(left, math.Min(right, b.X))

	if b.Y > floor {
		b.Y = math.Max(floor-(b.Y-floor), 0)
		b.VY = -g.cfg.BounceVel
		return true
	}
	return false
}

func (g *Minigame) onBounce() {
	parts := ParticlesFor(g.cfg.Juice)
	g.particles.SpawnBurst(g.ball.X, g.ball.Y+g.cfg.BallRadius, parts.Bounce, parts.MaxSpeed/2, dirtColor)
	g.sound.Play(SoundsFor(g.cfg.Juice).Bounce, false, g.clock.Now())
}

// spawnBirds spawns at most one bird with probability rate*dt, approximating
// a Poisson arrival process.
func (g *Minigame) spawnBirds(dt float64) {
	if g.rng.Float64() >= g.cfg.BirdArrivalRate*dt {
		return
	}
	y := g.cfg.Height * (0.25 + 0.5*g.rng.Float64())
	x, vx := 0.0, g.cfg.BirdSpeed
	if g.rng.IntN(2) == 1 {
		x, vx = g.cfg.Width, -g.cfg.BirdSpeed
	}
	vy := g.cfg.BirdDrift
	if g.rng.IntN(2) == 1 {
		vy = -vy
	}
	g.birds = append(g.birds, ph.Vec2{X: x, Y: y})
	g.birdVels = append(g.birdVels, ph.Vec2{X: vx, Y: vy})
}

// moveBirds advances every bird and drops those that left the playfield.
func (g *Minigame) moveBirds(dt float64) {
	minX := -g.cfg.WallThickness
	maxX := g.cfg.Width + g.cfg.WallThickness
	n := 0
	for i := range g.birds {
		p, v := g.birds[i], g.birdVels[i]
		p.X += v.X * dt
		p.Y += v.Y * dt
		if p.X < minX || p.X > maxX {
			continue
		}
		g.birds[n], g.birdVels[n] = p, v
		n++
	}
	g.birds = g.birds[:n]
	g.birdVels = g.birdVels[:n]
}

// collectSeeds removes every seed touching the ball.
func (g *Minigame) collectSeeds() {
	reach := g.cfg.SeedRadius + g.cfg.BallRadius
	parts := ParticlesFor(g.cfg.Juice)
	n := 0
	for _, s := range g.seeds {
		if chebyshev(s.X, s.Y, g.ball.X, g.ball.Y) < reach {
			g.collected++
			g.particles.SpawnBurst(s.X, s.Y, parts.Seed, parts.MaxSpeed, seedColor)
			g.sound.Play(SoundsFor(g.cfg.Juice).Seed, false, g.clock.Now())
			continue
		}
		g.seeds[n] = s
		n++
	}
	g.seeds = g.seeds[:n]
}

// hitBirds removes every bird touching the ball and costs a life for each.
func (g *Minigame) hitBirds(now float64) {
	reach := g.cfg.BirdCollisionRadius + g.cfg.BallRadius
	parts := ParticlesFor(g.cfg.Juice)
	n := 0
	for i, p := range g.birds {
		if chebyshev(p.X, p.Y, g.ball.X, g.ball.Y) < reach {
			g.lives--
			g.lastShake = now
			g.shaking = true
			g.particles.SpawnBurst(p.X, p.Y, parts.Bird, parts.MaxSpeed, featherTint)
			g.sound.Play(SoundsFor(g.cfg.Juice).Hit, false, now)
			continue
		}
		g.birds[n], g.birdVels[n] = p, g.birdVels[i]
		n++
	}
	g.birds = g.birds[:n]
	g.birdVels = g.birdVels[:n]
}

func (g *Minigame) win(now float64) {
	g.end(true, now)
	g.sound.Play(SoundsFor(g.cfg.Juice).Win, false, now)
}

func (g *Minigame) lose(now float64) {
	parts := ParticlesFor(g.cfg.Juice)
	g.particles.SpawnBurst(g.ball.X, g.ball.Y, parts.Lose, parts.MaxSpeed, ballColor)
	g.end(false, now)
	g.sound.Play(SoundsFor(g.cfg.Juice).Lose, false, now)
}
