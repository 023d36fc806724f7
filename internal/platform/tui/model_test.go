package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/reef-runner/internal/config"
	"github.com/vovakirdan/reef-runner/internal/core"
	"github.com/vovakirdan/reef-runner/internal/runner"
	"github.com/vovakirdan/reef-runner/internal/storage"
)

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}
}

func newTestGame(t *testing.T, cfg config.RunnerConfig, store *storage.Store) GameModel {
	t.Helper()
	m, err := NewGameModel(GameOptions{
		Config:    cfg,
		Runtime:   testRuntime(),
		Character: "sponge",
		Store:     store,
		AllowBack: true,
	})
	if err != nil {
		t.Fatalf("NewGameModel() failed: %v", err)
	}
	return m
}

// send feeds one message through Update and returns the new model.
func send(t *testing.T, m GameModel, msg tea.Msg) GameModel {
	t.Helper()
	next, _ := m.Update(msg)
	gm, ok := next.(GameModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return gm
}

func tick(t *testing.T, m GameModel) GameModel {
	return send(t, m, TickMsg{Gen: m.tickGen})
}

func TestGameModelUnknownCharacter(t *testing.T) {
	_, err := NewGameModel(GameOptions{
		Config:    config.DefaultRunnerConfig(),
		Runtime:   testRuntime(),
		Character: "plankton",
	})
	if err == nil {
		t.Fatal("NewGameModel() with unknown character should fail")
	}
}

func TestGameModelSpaceStartsThenJumps(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	cfg.Spawner.SpawnChance = 0
	m := newTestGame(t, cfg, nil)

	space := tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	m = send(t, m, space)
	m = tick(t, m)
	if got := m.Sim().Phase(); got != runner.PhasePlaying {
		t.Fatalf("phase after space = %v, want Playing", got)
	}

	m = send(t, m, space)
	p := m.Sim().Player()
	if p.Life != runner.Airborne || p.JumpCount != 1 {
		t.Errorf("after second space: life = %v, jumps = %d", p.Life, p.JumpCount)
	}
}

func TestGameModelMousePressJumps(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	cfg.Spawner.SpawnChance = 0
	m := newTestGame(t, cfg, nil)

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = tick(t, m)
	m = send(t, m, tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})

	if got := m.Sim().Player().JumpCount; got != 1 {
		t.Errorf("JumpCount after click = %d, want 1", got)
	}
}

func TestGameModelPauseToggle(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	cfg.Spawner.SpawnChance = 0
	m := newTestGame(t, cfg, nil)

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = tick(t, m)
	m = send(t, m, runeKey('p'))
	m = tick(t, m)
	if got := m.Sim().Phase(); got != runner.PhasePaused {
		t.Fatalf("phase = %v, want Paused", got)
	}
	if !strings.Contains(m.View(), "PAUSED") {
		t.Error("paused view has no PAUSED overlay")
	}

	m = send(t, m, runeKey('p'))
	m = tick(t, m)
	if got := m.Sim().Phase(); got != runner.PhasePlaying {
		t.Errorf("phase = %v, want Playing", got)
	}
}

func TestGameModelStaleTickIgnored(t *testing.T) {
	m := newTestGame(t, config.DefaultRunnerConfig(), nil)
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = tick(t, m)

	frame := m.Sim().State().FrameCounter
	m = send(t, m, TickMsg{Gen: m.tickGen + 1000})
	if got := m.Sim().State().FrameCounter; got != frame {
		t.Errorf("stale tick advanced the run: %d -> %d", frame, got)
	}
}

func TestGameModelBackAndQuit(t *testing.T) {
	m := newTestGame(t, config.DefaultRunnerConfig(), nil)

	next, cmd := m.Update(runeKey('q'))
	if !next.(GameModel).IsQuitting() || cmd == nil {
		t.Error("q did not quit")
	}

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.BackToMenu() {
		t.Error("esc on the start screen did not go back to the menu")
	}
	if m.View() != "" {
		t.Error("view not blank after leaving")
	}
}

func TestGameModelBackWhilePlayingPauses(t *testing.T) {
	m := newTestGame(t, config.DefaultRunnerConfig(), nil)
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = tick(t, m)

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	m = tick(t, m)
	if m.BackToMenu() {
		t.Error("esc while playing left the run")
	}
	if got := m.Sim().Phase(); got != runner.PhasePaused {
		t.Errorf("phase = %v, want Paused", got)
	}
}

func TestGameModelSavesScoreOnGameOver(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	cfg := config.DefaultRunnerConfig()
	cfg.Spawner.SpawnChance = 1
	cfg.Obstacles = []config.ObstacleSpec{{Kind: "coral", Width: 60, Height: 60}}
	m := newTestGame(t, cfg, store)

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	for i := 0; i < 2000 && m.Sim().Phase() != runner.PhaseGameOver; i++ {
		m = tick(t, m)
	}
	if got := m.Sim().Phase(); got != runner.PhaseGameOver {
		t.Fatalf("phase = %v, want GameOver", got)
	}
	if !strings.Contains(m.View(), "GAME OVER") {
		t.Error("game over view has no overlay")
	}

	score := m.Sim().Score()
	if score <= 0 {
		t.Fatalf("score = %d, want positive", score)
	}
	high, err := store.HighScore("sponge")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != score {
		t.Errorf("stored high score = %d, want %d", high, score)
	}

	// R starts a fresh run.
	m = send(t, m, runeKey('r'))
	m = tick(t, m)
	if got := m.Sim().Phase(); got != runner.PhasePlaying {
		t.Errorf("phase after restart = %v, want Playing", got)
	}
	if m.Sim().HighScore() != score {
		t.Errorf("HighScore() = %d, want %d", m.Sim().HighScore(), score)
	}
}

func TestGameModelResize(t *testing.T) {
	m := newTestGame(t, config.DefaultRunnerConfig(), nil)
	m = send(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	m = tick(t, m)

	w, h := m.Sim().Viewport()
	if w != 1000 || h != 600 {
		t.Errorf("viewport = %vx%v, want 1000x600", w, h)
	}
	if lines := strings.Count(m.View(), "\n") + 1; lines != 30 {
		t.Errorf("view has %d lines, want 30", lines)
	}
}
