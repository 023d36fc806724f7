package tui

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/vovakirdan/reef-runner/internal/core"
)

func TestRenderScreenPlainText(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)

	s := core.NewScreen(6, 2)
	s.DrawTextColor(0, 0, "ab", core.ColorSand)
	s.DrawTextColor(2, 0, "cd", core.ColorOrange)
	s.DrawTextColor(0, 1, "reef", core.ColorPink)

	if got, want := RenderScreen(s), s.String(); got != want {
		t.Errorf("RenderScreen() = %q, want %q", got, want)
	}
}

func TestStyleForUnknownColor(t *testing.T) {
	if got := styleFor(core.Color(250)).GetForeground(); got != (lipgloss.NoColor{}) {
		t.Errorf("unknown color foreground = %v, want none", got)
	}
	if got := styleFor(core.ColorOrange).GetForeground(); got != lipgloss.Color("208") {
		t.Errorf("orange foreground = %v, want 208", got)
	}
}
