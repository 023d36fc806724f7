package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/reef-runner/internal/config"
	"github.com/vovakirdan/reef-runner/internal/core"
	"github.com/vovakirdan/reef-runner/internal/registry"
	"github.com/vovakirdan/reef-runner/internal/storage"
)

// Preview sprite size in cells and its animation rate.
const (
	previewW   = 12
	previewH   = 5
	previewFPS = 8
)

// menuPresets is the cycle order of the difficulty selector.
var menuPresets = []config.DifficultyPreset{
	config.DifficultyEasy,
	config.DifficultyNormal,
	config.DifficultyHard,
}

// MenuItem represents a selectable character in the menu.
type MenuItem struct {
	CharacterID string
	Title       string
	Best        int
}

// MenuModel is the Bubble Tea model for the character picker.
type MenuModel struct {
	items          []MenuItem
	cursor         int
	preset         int // Index into menuPresets
	width          int
	height         int
	frame          int
	tickGen        uint64
	preview        *core.Screen
	config         core.RuntimeConfig
	keyMapper      *KeyMapper
	quitting       bool
	selected       *MenuItem // Set when user selects a character
	openScoreboard bool      // True if user pressed Tab for scoreboard
}

// NewMenuModel creates a new menu model. The initial difficulty is the one
// named by preset, falling back to normal.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig, preset config.DifficultyPreset) MenuModel {
	var bests map[string]*storage.CharacterStats
	if store != nil {
		//nolint:errcheck // Best scores are decoration; an empty map is fine
		bests, _ = store.GetAllCharacterStats()
	}

	characters := registry.List()
	items := make([]MenuItem, 0, len(characters))
	for _, c := range characters {
		item := MenuItem{CharacterID: c.ID, Title: c.Title}
		if st, ok := bests[c.ID]; ok {
			item.Best = st.HighScore
		}
		items = append(items, item)
	}

	presetIdx := 1
	for i, p := range menuPresets {
		if p == preset {
			presetIdx = i
		}
	}

	return MenuModel{
		items:     items,
		preset:    presetIdx,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		preview:   core.NewScreen(previewW, previewH),
		config:    cfg,
		keyMapper: NewKeyMapper(),
		tickGen:   nextTickGen(),
	}
}

// Init starts the preview animation.
func (m MenuModel) Init() tea.Cmd {
	return tickCmd(previewFPS, m.tickGen)
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil

	case TickMsg:
		if msg.Gen != m.tickGen {
			return m, nil
		}
		m.frame++
		return m, tickCmd(previewFPS, m.tickGen)
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKeyToMenuAction(msg)

	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionLeft:
		m.preset = (m.preset + len(menuPresets) - 1) % len(menuPresets)

	case MenuActionRight:
		m.preset = (m.preset + 1) % len(menuPresets)

	case MenuActionSelect:
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
			return m, tea.Quit // Exit menu to start the run
		}

	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit // Exit menu to show scoreboard
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("~  R E E F   R U N N E R  ~", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Pick your swimmer", m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		best := "-"
		if item.Best > 0 {
			best = fmt.Sprintf("%d", item.Best)
		}
		line := fmt.Sprintf("%s%-10s best %s", cursor, item.Title, best)
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	if preview := m.renderPreview(); preview != "" {
		b.WriteString("\n")
		for _, row := range strings.Split(preview, "\n") {
			b.WriteString(strings.Repeat(" ", max(0, (m.width-previewW)/2)))
			b.WriteString(row)
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(centerText(fmt.Sprintf("Difficulty: < %s >", m.Preset()), m.width))
	b.WriteString("\n\n")
	controls := "Up/Down: Swimmer  |  Left/Right: Difficulty  |  Enter: Dive  |  Tab: Scores  |  Q: Quit"
	b.WriteString(centerText(controls, m.width))
	b.WriteString("\n")

	return b.String()
}

// renderPreview draws the highlighted character into the preview buffer.
func (m MenuModel) renderPreview() string {
	if len(m.items) == 0 {
		return ""
	}
	c, err := registry.Lookup(m.items[m.cursor].CharacterID)
	if err != nil {
		return ""
	}
	m.preview.Clear()
	c.Draw(m.preview, 0, 0, previewW, previewH, m.frame)
	return RenderScreen(m.preview)
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// Preset returns the difficulty currently shown in the selector.
func (m MenuModel) Preset() config.DifficultyPreset {
	return menuPresets[m.preset]
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	if len(text) >= width {
		return text
	}
	padding := (width - len(text)) / 2
	return strings.Repeat(" ", padding) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	CharacterID     string
	Preset          config.DifficultyPreset
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// resultFrom converts a finished menu model into a MenuResult.
func resultFrom(m MenuModel) MenuResult {
	result := MenuResult{
		Config: m.Config(),
		Preset: m.Preset(),
	}

	switch {
	case m.WantsScoreboard():
		result.WantsScoreboard = true
	case m.IsQuitting():
		result.Quit = true
	case m.Selected() != nil:
		result.CharacterID = m.Selected().CharacterID
	default:
		result.Quit = true
	}
	return result
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig, preset config.DifficultyPreset) (MenuResult, error) {
	model := NewMenuModel(store, cfg, preset)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	return resultFrom(m), nil
}
