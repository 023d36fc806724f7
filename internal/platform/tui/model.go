package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/reef-runner/internal/config"
	"github.com/vovakirdan/reef-runner/internal/core"
	"github.com/vovakirdan/reef-runner/internal/runner"
	"github.com/vovakirdan/reef-runner/internal/storage"
)

// GameOptions configure one interactive runner session.
type GameOptions struct {
	Config    config.RunnerConfig
	Runtime   core.RuntimeConfig
	Character string
	Store     *storage.Store // Nil disables score persistence
	Sounds    runner.Sounds  // Nil plays nothing
	Logger    *log.Logger    // Nil discards warnings
	AllowBack bool           // Back key returns to the menu instead of doing nothing
}

// scoreKeeper persists finished runs. It lives behind a pointer so the
// Sim's game-over callback and the value-typed Bubble Tea model share it.
type scoreKeeper struct {
	sim       *runner.Sim
	store     *storage.Store
	character string
	logger    *log.Logger
}

// gameOver is the Sim's OnGameOver callback: it requests the GameOver
// phase and stores the run.
func (k *scoreKeeper) gameOver(score int) {
	k.sim.SetPhase(runner.PhaseGameOver)

	if k.store == nil || score <= 0 {
		return
	}
	if _, err := k.store.SaveScore(k.character, score); err != nil && k.logger != nil {
		k.logger.Warn("could not save score", "character", k.character, "score", score, "error", err)
	}
}

// GameModel is the Bubble Tea model for one runner session.
type GameModel struct {
	sim        *runner.Sim
	keeper     *scoreKeeper
	screen     *core.Screen
	config     core.RuntimeConfig
	input      core.InputFrame
	keyMapper  *KeyMapper
	allowBack  bool
	tickGen    uint64
	quitting   bool
	backToMenu bool
}

// NewGameModel creates the simulation for the selected character.
func NewGameModel(opts GameOptions) (GameModel, error) {
	cfg := opts.Runtime
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}

	best := 0
	if opts.Store != nil {
		high, err := opts.Store.HighScore(opts.Character)
		if err != nil && opts.Logger != nil {
			opts.Logger.Warn("could not read high score", "character", opts.Character, "error", err)
		}
		best = high
	}

	keeper := &scoreKeeper{
		store:     opts.Store,
		character: opts.Character,
		logger:    opts.Logger,
	}
	sim, err := runner.New(runner.Options{
		Config:    opts.Config,
		Runtime:   cfg,
		Character: opts.Character,
		Events:    runner.Events{OnGameOver: keeper.gameOver},
		Sounds:    opts.Sounds,
		HighScore: best,
	})
	if err != nil {
		return GameModel{}, err
	}
	keeper.sim = sim

	return GameModel{
		sim:       sim,
		keeper:    keeper,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:    cfg,
		input:     core.NewInputFrame(),
		keyMapper: NewKeyMapper(),
		allowBack: opts.AllowBack,
		tickGen:   nextTickGen(),
	}, nil
}

// Init starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	return tickCmd(m.config.TickRate, m.tickGen)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if action := m.keyMapper.MapMouse(msg); action != core.ActionNone {
			m.input.Set(action)
			m.dispatch()
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		m.sim.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		if msg.Gen != m.tickGen {
			return m, nil
		}
		m.sim.Tick()
		return m, tickCmd(m.config.TickRate, m.tickGen)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.input) {
		m.quitting = true
		return m, tea.Quit
	}
	m.dispatch()
	if m.backToMenu {
		return m, tea.Quit
	}
	return m, nil
}

// dispatch drains the input frame into the simulation. Jumps apply at
// once; phase changes are picked up by the next tick.
func (m *GameModel) dispatch() {
	defer m.input.Clear()

	phase := m.sim.Phase()
	idle := phase == runner.PhaseStart || phase == runner.PhaseGameOver

	for i := 0; i < m.input.Count(core.ActionJump); i++ {
		if idle {
			m.sim.Start()
			break
		}
		m.sim.Jump()
	}

	if m.input.Has(core.ActionConfirm) && idle {
		m.sim.Start()
	}
	if m.input.Has(core.ActionRestart) && phase == runner.PhaseGameOver {
		m.sim.Start()
	}
	if m.input.Has(core.ActionPause) {
		m.sim.TogglePause()
	}
	if m.input.Has(core.ActionBack) {
		switch {
		case phase == runner.PhasePlaying:
			m.sim.TogglePause()
		case m.allowBack:
			m.backToMenu = true
		}
	}
}

// saveScreenshot saves the current screen to a file.
func (m *GameModel) saveScreenshot() {
	m.sim.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".reefrunner", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.sim.Character().ID, timestamp)
	path := filepath.Join(dir, filename)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	m.sim.Render(m.screen)
	return RenderScreen(m.screen)
}

// Sim exposes the simulation, mainly for tests.
func (m GameModel) Sim() *runner.Sim {
	return m.sim
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to the menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run starts a Bubble Tea program for one character. It reports whether
// the player asked to go back to the menu rather than quit.
func Run(opts GameOptions) (backToMenu bool, err error) {
	model, err := NewGameModel(opts)
	if err != nil {
		return false, err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(), // Mouse press jumps
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := finalModel.(GameModel)
	if !ok {
		return false, nil
	}
	return m.BackToMenu(), nil
}
