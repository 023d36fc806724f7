package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/reef-runner/internal/config"
	"github.com/vovakirdan/reef-runner/internal/storage"
)

func sessionSend(t *testing.T, m SessionModel, msg tea.Msg) SessionModel {
	t.Helper()
	next, _ := m.Update(msg)
	sm, ok := next.(SessionModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return sm
}

func TestMenuCyclesDifficulty(t *testing.T) {
	m := NewMenuModel(nil, testRuntime(), config.DifficultyNormal)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m = next.(MenuModel)
	if m.Preset() != config.DifficultyHard {
		t.Errorf("preset = %v, want hard", m.Preset())
	}
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m = next.(MenuModel)
	if m.Preset() != config.DifficultyEasy {
		t.Errorf("preset did not wrap, got %v", m.Preset())
	}
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	m = next.(MenuModel)
	if m.Preset() != config.DifficultyHard {
		t.Errorf("preset = %v, want hard", m.Preset())
	}
}

func TestMenuListsCharactersWithBest(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()
	store.SaveScore("squid", 321)

	m := NewMenuModel(store, testRuntime(), "")
	view := m.View()
	for _, title := range []string{"Sponge", "Squid", "Starfish"} {
		if !strings.Contains(view, title) {
			t.Errorf("menu view missing %q", title)
		}
	}
	if !strings.Contains(view, "321") {
		t.Error("menu view missing best score")
	}
	if m.Preset() != config.DifficultyNormal {
		t.Errorf("empty preset should show normal, got %v", m.Preset())
	}
}

func TestMenuResult(t *testing.T) {
	m := NewMenuModel(nil, testRuntime(), config.DifficultyEasy)
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	next, _ = next.(MenuModel).Update(tea.KeyMsg{Type: tea.KeyEnter})

	res := resultFrom(next.(MenuModel))
	if res.Quit || res.WantsScoreboard {
		t.Fatalf("unexpected result %+v", res)
	}
	if res.CharacterID != "squid" || res.Preset != config.DifficultyEasy {
		t.Errorf("result = %+v, want squid on easy", res)
	}
}

func TestSessionMenuGameMenu(t *testing.T) {
	m := NewSessionModel(SessionOptions{
		Runtime: testRuntime(),
		Runner:  config.DefaultRunnerConfig(),
	})

	m = sessionSend(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.screen != screenGame || m.game == nil {
		t.Fatal("enter in the menu did not start a game")
	}
	if got := m.game.Sim().Character().ID; got != "sponge" {
		t.Errorf("character = %q, want sponge", got)
	}

	m = sessionSend(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.screen != screenMenu || m.game != nil {
		t.Fatal("esc on the start screen did not return to the menu")
	}

	m = sessionSend(t, m, runeKey('q'))
	if !m.IsQuitting() || m.View() != "" {
		t.Error("q in the menu did not end the session")
	}
}

func TestSessionScoreboardRoundTrip(t *testing.T) {
	m := NewSessionModel(SessionOptions{
		Runtime: testRuntime(),
		Runner:  config.DefaultRunnerConfig(),
	})

	m = sessionSend(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.screen != screenScores {
		t.Fatal("tab did not open the scoreboard")
	}
	if !strings.Contains(m.View(), "HIGH SCORES") {
		t.Error("scoreboard view missing title")
	}

	m = sessionSend(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.screen != screenMenu || m.IsQuitting() {
		t.Error("esc did not return from the scoreboard to the menu")
	}
}

func TestScoreboardStatsLine(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	empty := NewScoreboardModel(store, 100, 30)
	if got := empty.statsLine(); got != "no runs yet" {
		t.Errorf("empty stats = %q", got)
	}

	store.SaveScore("sponge", 10)
	store.SaveScore("sponge", 30)
	store.SaveScore("squid", 20)

	m := NewScoreboardModel(store, 100, 30)
	if !strings.Contains(m.statsLine(), "runs 3") || !strings.Contains(m.statsLine(), "best 30") {
		t.Errorf("all-characters stats = %q", m.statsLine())
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	if m.characters[m.cursor].ID != "sponge" {
		t.Fatalf("tab moved to %q, want sponge", m.characters[m.cursor].ID)
	}
	if !strings.Contains(m.statsLine(), "runs 2") {
		t.Errorf("sponge stats = %q", m.statsLine())
	}
}
