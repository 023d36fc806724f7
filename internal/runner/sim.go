// Package runner implements the endless-runner simulation: player
// kinematics, obstacle spawning, collision, particles, parallax and the
// score/speed progression, all owned by a single Sim context.
//
// The Sim is single-threaded. An external driver calls Tick once per frame
// and Render after it; input and resize signals are stored on the Sim
// between ticks.
package runner

import (
	"fmt"

	"github.com/vovakirdan/reef-runner/internal/config"
	"github.com/vovakirdan/reef-runner/internal/core"
	"github.com/vovakirdan/reef-runner/internal/registry"
)

// Phase is the run-level state driven by the surrounding UI.
type Phase int

const (
	PhaseStart Phase = iota
	PhasePlaying
	PhasePaused
	PhaseGameOver
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseStart:
		return "Start"
	case PhasePlaying:
		return "Playing"
	case PhasePaused:
		return "Paused"
	case PhaseGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Events are the outbound callbacks to the surrounding UI.
// Nil callbacks are skipped.
type Events struct {
	OnScoreUpdate func(score int) // Floored score increased
	OnGameOver    func(score int) // Death sequence finished; fired once per run
}

// Sounds receives fire-and-forget sound triggers.
type Sounds interface {
	Jump(character string)
	Collision(kind ObstacleKind)
	GameOver()
}

// NopSounds is a silent Sounds implementation.
type NopSounds struct{}

func (NopSounds) Jump(string)             {}
func (NopSounds) Collision(ObstacleKind) {}
func (NopSounds) GameOver()               {}

// Options configure a new Sim.
type Options struct {
	Config    config.RunnerConfig
	Runtime   core.RuntimeConfig
	Character string // Registry ID, resolved once here
	Events    Events
	Sounds    Sounds
	HighScore int // Best score persisted from earlier runs
}

// RunState is the per-run progression snapshot.
type RunState struct {
	Score        float64
	Speed        float64
	Distance     float64
	FrameCounter int
	Phase        Phase
}

// Summary describes a run, typically read after game over.
type Summary struct {
	Character string
	Seed      int64
	Frames    int
	Score     int
	Speed     float64
	Distance  float64
	Jumps     int
	Spawned   int
	Passed    int
	HitBy     string // Obstacle kind that ended the run, empty if still alive
}

// Sim owns all mutable run-time state.
type Sim struct {
	cfg       config.RunnerConfig
	prog      config.Progression
	runtime   core.RuntimeConfig
	character registry.Character
	kinds     []KindSpec
	events    Events
	sounds    Sounds

	viewportW, viewportH float64

	// Signals recorded between ticks, applied at the top of the next one.
	resizePending bool
	resizeW       int
	resizeH       int
	phasePending  bool
	phaseWanted   Phase

	phase    Phase
	frame    int
	runs     int
	runSeed  int64
	progress Progression
	player   Player
	spawner  *Spawner
	emitter  *Emitter
	scene    Scene

	halted    bool // Game over fired; nothing advances until a new run
	jumps     int
	hitBy     string
	highScore int

	scratch *core.Screen // Reused for sprite transforms
}

// New creates a Sim in the Start phase. It fails if the character is not
// registered or the obstacle kind table is unusable.
func New(opts Options) (*Sim, error) {
	character, err := registry.Lookup(opts.Character)
	if err != nil {
		return nil, err
	}
	if err := opts.Config.Validate(); err != nil {
		return nil, fmt.Errorf("runner: %w", err)
	}
	kinds, err := kindTable(opts.Config.Obstacles)
	if err != nil {
		return nil, err
	}
	sounds := opts.Sounds
	if sounds == nil {
		sounds = NopSounds{}
	}

	s := &Sim{
		cfg:       opts.Config,
		prog:      opts.Config.Scaled(),
		runtime:   opts.Runtime,
		character: character,
		kinds:     kinds,
		events:    opts.Events,
		sounds:    sounds,
		highScore: opts.HighScore,
		phase:     PhaseStart,
		scratch:   core.NewScreen(0, 0),
	}
	s.applyResize(opts.Runtime.ScreenW, opts.Runtime.ScreenH)
	s.reset()
	s.phase = PhaseStart
	return s, nil
}

// SetPhase requests a phase change, applied at the top of the next tick.
// Entering Playing from Start or GameOver starts a fresh run.
func (s *Sim) SetPhase(p Phase) {
	s.phasePending = true
	s.phaseWanted = p
}

// Start requests a new run (or resumes a paused one).
func (s *Sim) Start() {
	s.SetPhase(PhasePlaying)
}

// TogglePause requests pausing a running game or resuming a paused one.
func (s *Sim) TogglePause() {
	switch s.pendingPhase() {
	case PhasePlaying:
		s.SetPhase(PhasePaused)
	case PhasePaused:
		s.SetPhase(PhasePlaying)
	}
}

// pendingPhase returns the phase the next tick will run in.
func (s *Sim) pendingPhase() Phase {
	if s.phasePending {
		return s.phaseWanted
	}
	return s.phase
}

// Jump handles one jump input. It is honored only while Playing, with
// budget left, and before dying. Returns whether the jump happened.
func (s *Sim) Jump() bool {
	// A pause requested since the last tick already swallows input.
	if s.phase != PhasePlaying || s.pendingPhase() != PhasePlaying || s.halted {
		return false
	}
	if !s.player.Jump() {
		return false
	}
	s.jumps++
	fx, fy := s.player.Feet()
	s.emitter.Burst(fx, fy)
	s.sounds.Jump(s.character.ID)
	return true
}

// Resize records new terminal dimensions in cells. Existing entities keep
// their coordinates.
func (s *Sim) Resize(cols, rows int) {
	s.resizePending = true
	s.resizeW = cols
	s.resizeH = rows
}

// applyResize converts cells to world units, clamped to the configured bounds.
func (s *Sim) applyResize(cols, rows int) {
	vp := s.cfg.Viewport
	s.viewportW = core.ClampF(float64(cols)*vp.CellWidth, vp.MinWidth, vp.MaxWidth)
	s.viewportH = core.ClampF(float64(rows)*vp.CellHeight, vp.MinHeight, vp.MaxHeight)
}

// reset starts a fresh run. Each run gets its own seed derived from the
// runtime seed, so consecutive runs differ but stay reproducible.
func (s *Sim) reset() {
	s.runSeed = s.runtime.Seed + int64(s.runs)*7919
	s.runs++

	ground := s.GroundY()
	s.phase = PhasePlaying
	s.frame = 0
	s.halted = false
	s.jumps = 0
	s.hitBy = ""
	s.progress = NewProgression(s.prog)
	s.player = NewPlayer(s.cfg.Physics, s.cfg.Player, ground)
	s.spawner = NewSpawner(s.runSeed, s.kinds, s.cfg.Spawner, s.cfg.World)
	s.emitter = NewEmitter(s.runSeed+1, s.cfg.Particles)
	s.scene = NewScene(s.runSeed+2, s.cfg.Parallax, s.viewportW, ground)
}

// applySignals consumes the signals recorded since the last tick.
func (s *Sim) applySignals() {
	if s.resizePending {
		s.applyResize(s.resizeW, s.resizeH)
		s.resizePending = false
	}
	if !s.phasePending {
		return
	}
	s.phasePending = false

	from, to := s.phase, s.phaseWanted
	switch {
	case to == PhasePlaying && (from == PhaseStart || from == PhaseGameOver):
		s.reset()
	case to == PhasePlaying && from == PhasePaused:
		s.phase = PhasePlaying
	case to == PhasePaused && from == PhasePlaying:
		s.phase = PhasePaused
	case to == PhaseGameOver && (from == PhasePlaying || from == PhasePaused):
		s.phase = PhaseGameOver
	case to == PhaseStart:
		s.phase = PhaseStart
	}
}

// Tick runs one update phase. Render should be called after it.
func (s *Sim) Tick() {
	s.applySignals()

	if s.phase != PhasePlaying || s.halted {
		return
	}

	ground := s.GroundY()

	// Kinematics
	s.player.Update(ground)
	if s.player.Life == Dying && s.player.Y > s.viewportH+s.cfg.World.DeathDepth {
		s.finish()
		return
	}

	// Progression
	if shown, crossed := s.progress.Advance(); crossed {
		if shown > s.highScore {
			s.highScore = shown
		}
		if s.events.OnScoreUpdate != nil {
			s.events.OnScoreUpdate(shown)
		}
	}

	// Spawner
	s.spawner.Update(s.progress.Speed, s.viewportW, ground, s.player.X)

	// Collision
	if s.player.Life != Dying {
		obstacles := s.spawner.Obstacles()
		if i, hit := FirstHit(s.player.Box(), obstacles, s.cfg.World.HitboxPadding); hit {
			s.player.Kill()
			s.hitBy = obstacles[i].Kind.String()
			s.sounds.Collision(obstacles[i].Kind)
		}
	}

	// Particles
	s.emitter.Update()

	// Parallax
	s.scene.Update(s.progress.Speed, s.viewportW)

	s.frame++
}

// finish ends the death sequence: game over fires exactly once and the
// run stops advancing until the owner starts a new one.
func (s *Sim) finish() {
	s.halted = true
	score := s.progress.Displayed()
	s.sounds.GameOver()
	if s.events.OnGameOver != nil {
		s.events.OnGameOver(score)
	}
}

// Phase returns the current phase.
func (s *Sim) Phase() Phase {
	return s.phase
}

// Halted reports whether the current run has finished its death sequence.
func (s *Sim) Halted() bool {
	return s.halted
}

// State returns the run's progression snapshot.
func (s *Sim) State() RunState {
	return RunState{
		Score:        s.progress.Score,
		Speed:        s.progress.Speed,
		Distance:     s.progress.Distance,
		FrameCounter: s.frame,
		Phase:        s.phase,
	}
}

// Score returns the displayed integer score.
func (s *Sim) Score() int {
	return s.progress.Displayed()
}

// HighScore returns the best score seen, including the current run.
func (s *Sim) HighScore() int {
	return s.highScore
}

// Player returns a copy of the player state.
func (s *Sim) Player() Player {
	return s.player
}

// Obstacles returns the live obstacles. The slice must not be modified.
func (s *Sim) Obstacles() []Obstacle {
	return s.spawner.Obstacles()
}

// Particles returns the live particles. The slice must not be modified.
func (s *Sim) Particles() []Particle {
	return s.emitter.Particles()
}

// Scene returns the parallax scene.
func (s *Sim) Scene() *Scene {
	return &s.scene
}

// Viewport returns the viewport size in world units.
func (s *Sim) Viewport() (float64, float64) {
	return s.viewportW, s.viewportH
}

// GroundY returns the y coordinate of the ground line.
func (s *Sim) GroundY() float64 {
	return s.viewportH - s.cfg.World.GroundOffset
}

// MinGap returns the current spawn gap.
func (s *Sim) MinGap() float64 {
	return s.spawner.MinGap(s.progress.Speed)
}

// Character returns the selected character.
func (s *Sim) Character() registry.Character {
	return s.character
}

// Summary describes the current run.
func (s *Sim) Summary() Summary {
	return Summary{
		Character: s.character.ID,
		Seed:      s.runSeed,
		Frames:    s.frame,
		Score:     s.progress.Displayed(),
		Speed:     s.progress.Speed,
		Distance:  s.progress.Distance,
		Jumps:     s.jumps,
		Spawned:   s.spawner.Spawned(),
		Passed:    s.spawner.Passed(),
		HitBy:     s.hitBy,
	}
}
