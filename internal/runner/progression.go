package runner

import (
	"math"

	"github.com/vovakirdan/reef-runner/internal/config"
)

// Progression tracks speed, distance and score. All three are pure
// functions of the number of Playing ticks since the run started.
type Progression struct {
	Speed    float64 // World units the scene scrolls per tick
	Distance float64 // Total world units scrolled
	Score    float64 // Fractional score; the integer part is displayed

	increment    float64
	scorePerTick float64
	emitted      int // Last integer score reported to the UI
}

// NewProgression creates a progression at its initial speed.
func NewProgression(cfg config.Progression) Progression {
	return Progression{
		Speed:        cfg.InitialSpeed,
		increment:    cfg.SpeedIncrement,
		scorePerTick: cfg.ScorePerTick,
	}
}

// Advance steps the progression by one tick. It returns the displayed
// integer score and whether that integer increased during this tick.
func (p *Progression) Advance() (int, bool) {
	p.Speed += p.increment
	p.Distance += p.Speed
	p.Score += p.scorePerTick

	shown := p.Displayed()
	if shown > p.emitted {
		p.emitted = shown
		return shown, true
	}
	return shown, false
}

// Displayed returns the integer score shown to the player.
func (p *Progression) Displayed() int {
	return int(math.Floor(p.Score))
}
