package runner

// Autopilot is a simple bot used for headless runs. It jumps from the
// ground when an obstacle that would hit a grounded player comes within
// Lead ticks of contact.
type Autopilot struct {
	Lead float64 // Ticks of lookahead before contact
}

// DefaultAutopilot returns a bot tuned for the default physics.
func DefaultAutopilot() Autopilot {
	return Autopilot{Lead: 8}
}

// Decide reports whether the bot wants to jump this tick.
func (a Autopilot) Decide(s *Sim) bool {
	if s.Phase() != PhasePlaying || s.Halted() {
		return false
	}
	p := s.Player()
	if p.Life != Grounded {
		return false
	}

	pad := s.cfg.World.HitboxPadding
	body := p.Box().Inset(pad)
	speed := s.State().Speed

	for _, o := range s.Obstacles() {
		box := o.Box().Inset(pad)
		if box.Right() <= body.X {
			continue
		}
		// Only obstacles overlapping the grounded body vertically are threats.
		if box.Y >= body.Bottom() || box.Bottom() <= body.Y {
			continue
		}
		gap := box.X - body.Right()
		return gap <= a.Lead*speed
	}
	return false
}

// Play drives one complete run: it starts a new run, ticks until game over
// or until maxFrames frames have been played (0 means no cap), and returns
// the run summary. The Sim is left in GameOver, ready for the next call.
func (a Autopilot) Play(s *Sim, maxFrames int) Summary {
	s.Start()
	s.Tick()
	for !s.Halted() && (maxFrames <= 0 || s.State().FrameCounter < maxFrames) {
		if a.Decide(s) {
			s.Jump()
		}
		s.Tick()
	}

	sum := s.Summary()
	s.SetPhase(PhaseGameOver)
	s.Tick()
	return sum
}
