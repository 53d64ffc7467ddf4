package ph

import (
	"math"
	"math/rand/v2"
)

// DefaultParticleCapacity is the pool size used when none is given.
const DefaultParticleCapacity = 2000

// Particle is a single ballistic effect body.
type Particle struct {
	Active bool
	X, Y   float64
	VX, VY float64
	Fill   Color
}

// PoolConfig controls how pooled particles move.
type PoolConfig struct {
	// Gravity is the downward acceleration in pixels per second squared.
	Gravity float64
	// KillY deactivates particles once their Y exceeds it.
	KillY float64
}

// ParticlePool is a fixed-capacity ring buffer of particles. Adding to a full
// pool silently overwrites the oldest slot; nothing is ever compacted, and
// inactive particles keep their slot until the cursor reaches it again.
type ParticlePool struct {
	config    PoolConfig
	particles []Particle
	next      int
	rng       *rand.Rand
}

// NewParticlePool creates a pool with a preallocated buffer. A capacity of
// zero or less selects DefaultParticleCapacity.
func NewParticlePool(capacity int, cfg PoolConfig, rng *rand.Rand) *ParticlePool {
	if capacity <= 0 {
		capacity = DefaultParticleCapacity
	}
	if rng == nil {
		rng = NewRand(1)
	}
	return &ParticlePool{
		config:    cfg,
		particles: make([]Particle, capacity),
		rng:       rng,
	}
}

// Cap returns the pool capacity.
func (p *ParticlePool) Cap() int {
	return len(p.particles)
}

// Particles returns the backing buffer. The returned slice MUST NOT be mutated.
func (p *ParticlePool) Particles() []Particle {
	return p.particles
}

// Config returns a pointer to the pool's config for live tuning.
func (p *ParticlePool) Config() *PoolConfig {
	return &p.config
}

// ActiveCount returns the number of active particles.
func (p *ParticlePool) ActiveCount() int {
	n := 0
	for i := range p.particles {
		if p.particles[i].Active {
			n++
		}
	}
	return n
}

// Reset deactivates every particle and rewinds the write cursor.
func (p *ParticlePool) Reset() {
	clear(p.particles)
	p.next = 0
}

// Add writes a particle into the next slot, overwriting whatever was there.
func (p *ParticlePool) Add(x, y, vx, vy float64, fill Color) {
	p.particles[p.next] = Particle{Active: true, X: x, Y: y, VX: vx, VY: vy, Fill: fill}
	p.next++
	if p.next == len(p.particles) {
		p.next = 0
	}
}

// SpawnBurst emits count particles evenly spaced around a full circle with a
// random overall rotation. Speeds are uniform in [0, maxSpeed], which packs
// more particles near the center of the burst.
func (p *ParticlePool) SpawnBurst(x, y float64, count int, maxSpeed float64, fill Color) {
	if count <= 0 {
		return
	}
	offset := p.rng.Float64() * 2 * math.Pi
	step := 2 * math.Pi / float64(count)
	for i := 0; i < count; i++ {
		sin, cos := math.Sincos(offset + step*float64(i))
		speed := p.rng.Float64() * maxSpeed
		p.Add(x, y, cos*speed, sin*speed, fill)
	}
}

// Update advances every active particle by dt seconds.
func (p *ParticlePool) Update(dt float64) {
	gy := p.config.Gravity * dt
	for i := range p.particles {
		pt := &p.particles[i]
		if !pt.Active {
			continue
		}
		pt.X += pt.VX * dt
		pt.Y += pt.VY * dt
		pt.VY += gy
		if pt.Y > p.config.KillY {
			pt.Active = false
		}
	}
}

// Draw fills a size x size square centered on every active particle.
func (p *ParticlePool) Draw(s Surface, size float64) {
	half := size / 2
	for i := range p.particles {
		pt := &p.particles[i]
		if !pt.Active {
			continue
		}
		s.FillRect(pt.X-half, pt.Y-half, size, size, pt.Fill)
	}
}
