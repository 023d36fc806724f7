package runner

import (
	"math/rand"

	"github.com/vovakirdan/reef-runner/internal/config"
	"github.com/vovakirdan/reef-runner/internal/core"
)

// ParticleColor is the light tint every dust mote is drawn in,
// whatever the character.
const ParticleColor = core.ColorBrightWhite

// Particle is a short-lived cosmetic dust mote.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Life   int // Remaining ticks
	Color  core.Color
	Size   float64
}

// Emitter spawns and decays particles.
type Emitter struct {
	particles []Particle
	rng       *rand.Rand
	cfg       config.Particles
}

// NewEmitter creates an emitter with the given RNG seed.
func NewEmitter(seed int64, cfg config.Particles) *Emitter {
	return &Emitter{
		particles: make([]Particle, 0, 32),
		rng:       rand.New(rand.NewSource(seed)),
		cfg:       cfg,
	}
}

// Burst emits one jump's worth of particles at (x, y).
func (e *Emitter) Burst(x, y float64) {
	for i := 0; i < e.cfg.Count; i++ {
		e.particles = append(e.particles, Particle{
			X:     x,
			Y:     y,
			VX:    (e.rng.Float64() - 0.5) * e.cfg.SpreadX,
			VY:    e.cfg.MinVY + e.rng.Float64()*(e.cfg.MaxVY-e.cfg.MinVY),
			Life:  e.cfg.Life,
			Color: ParticleColor,
			Size:  e.cfg.MinSize + e.rng.Float64()*(e.cfg.MaxSize-e.cfg.MinSize),
		})
	}
}

// Update integrates every particle by one tick and drops expired ones.
func (e *Emitter) Update() {
	alive := e.particles[:0]
	for _, p := range e.particles {
		p.X += p.VX
		p.Y += p.VY
		p.VY += e.cfg.Gravity
		p.Life--
		if p.Life > 0 {
			alive = append(alive, p)
		}
	}
	e.particles = alive
}

// Opacity returns the particle's remaining life as a fraction in (0, 1].
func (e *Emitter) Opacity(p Particle) float64 {
	return core.ClampF(float64(p.Life)/float64(e.cfg.Life), 0, 1)
}

// Particles returns the live particles.
func (e *Emitter) Particles() []Particle {
	return e.particles
}
