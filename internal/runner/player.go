package runner

import (
	"github.com/vovakirdan/reef-runner/internal/config"
	"github.com/vovakirdan/reef-runner/internal/core"
)

// LifeState is the player's life-state machine.
// Grounded and Airborne alternate freely; Dying is terminal for a run.
type LifeState int

const (
	Grounded LifeState = iota
	Airborne
	Dying
)

// String returns a human-readable name for the state.
func (s LifeState) String() string {
	switch s {
	case Grounded:
		return "Grounded"
	case Airborne:
		return "Airborne"
	case Dying:
		return "Dying"
	default:
		return "Unknown"
	}
}

// Player holds the kinematic state of the single player entity.
// X is fixed; the world scrolls past it.
type Player struct {
	X, Y          float64
	Width, Height float64
	VelocityY     float64
	JumpCount     int
	Rotation      float64 // Radians, positive is nose-down
	Life          LifeState

	physics config.Physics
}

// NewPlayer creates a grounded player standing on groundY.
func NewPlayer(physics config.Physics, body config.Player, groundY float64) Player {
	p := Player{
		X:       body.X,
		Width:   body.Width,
		Height:  body.Height,
		physics: physics,
	}
	p.Reset(groundY)
	return p
}

// Reset places the player back on the ground with a fresh jump budget.
func (p *Player) Reset(groundY float64) {
	p.Y = groundY - p.Height
	p.VelocityY = 0
	p.JumpCount = 0
	p.Rotation = 0
	p.Life = Grounded
}

// CanJump reports whether a jump request would be honored.
func (p *Player) CanJump() bool {
	return p.Life != Dying && p.JumpCount < p.physics.MaxJumpCount
}

// Jump applies the jump impulse if the budget allows it.
// A request at the cap, or while dying, changes nothing.
func (p *Player) Jump() bool {
	if !p.CanJump() {
		return false
	}
	p.VelocityY = p.physics.JumpForce
	p.JumpCount++
	p.Life = Airborne
	return true
}

// Kill starts the death sequence: an upward bounce followed by a spin
// and a fall through the ground. Returns false if already dying.
func (p *Player) Kill() bool {
	if p.Life == Dying {
		return false
	}
	p.Life = Dying
	p.VelocityY = p.physics.DeathBounce
	return true
}

// Update integrates one tick of constant-gravity motion.
func (p *Player) Update(groundY float64) {
	p.VelocityY += p.physics.Gravity
	if p.VelocityY > p.physics.MaxFallSpeed {
		p.VelocityY = p.physics.MaxFallSpeed
	}
	p.Y += p.VelocityY

	if !core.Finite(p.Y) || !core.Finite(p.VelocityY) {
		// Keep a corrupt integration step from poisoning the run.
		life := p.Life
		p.Reset(groundY)
		if life == Dying {
			p.Life = Dying
		}
		return
	}

	if p.Life == Dying {
		p.Rotation += p.physics.DeathSpin
		return
	}

	rest := groundY - p.Height
	switch {
	case p.Y > rest:
		// Landing
		p.Y = rest
		p.VelocityY = 0
		p.JumpCount = 0
		p.Rotation = 0
		p.Life = Grounded
	case p.Y < rest:
		p.Rotation = core.ClampF(p.VelocityY*p.physics.PitchFactor, -p.physics.MaxPitch, p.physics.MaxPitch)
		p.Life = Airborne
	}
}

// Box returns the player's visual bounds in world units.
func (p *Player) Box() core.Box {
	return core.NewBox(p.X, p.Y, p.Width, p.Height)
}

// Feet returns the point particles are emitted from on a jump.
func (p *Player) Feet() (float64, float64) {
	return p.X + p.Width/2, p.Y + p.Height
}
