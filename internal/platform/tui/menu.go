package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/zombie-dash/internal/config"
	"github.com/vovakirdan/zombie-dash/internal/core"
	"github.com/vovakirdan/zombie-dash/internal/storage"
)

// MenuChoice is what the user picked on the start menu.
type MenuChoice int

const (
	ChoiceNone MenuChoice = iota
	ChoicePlay
	ChoiceScores
	ChoiceQuit
)

var menuItems = []struct {
	choice MenuChoice
	title  string
}{
	{ChoicePlay, "Play"},
	{ChoiceScores, "High Scores"},
	{ChoiceQuit, "Quit"},
}

// MenuModel is the Bubble Tea model for the start menu.
type MenuModel struct {
	cursor    int
	presets   []config.DifficultyPreset
	preset    int
	width     int
	height    int
	store     *storage.Store
	config    core.RuntimeConfig
	keyMapper *KeyMapper
	choice    MenuChoice
}

// NewMenuModel creates a new menu model with the given preset selected.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig, preset config.DifficultyPreset) MenuModel {
	presets := config.Presets()
	selected := 0
	for i, p := range presets {
		if p == preset {
			selected = i
		}
	}

	return MenuModel{
		presets:   presets,
		preset:    selected,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		store:     store,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
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
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.choice = ChoiceQuit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(menuItems)-1 {
			m.cursor++
		}

	case MenuActionLeft:
		m.preset = (m.preset + len(m.presets) - 1) % len(m.presets)

	case MenuActionRight:
		m.preset = (m.preset + 1) % len(m.presets)

	case MenuActionSelect:
		m.choice = menuItems[m.cursor].choice

	case MenuActionScoreboard:
		m.choice = ChoiceScores
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.choice == ChoiceQuit {
		return ""
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("Z O M B I E   D A S H"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Save the citizens. Burn the zombies.", m.width))
	b.WriteString("\n\n")

	for i, item := range menuItems {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(cursor+item.title, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(fmt.Sprintf("Difficulty: < %s >", m.Preset()), m.width))
	b.WriteString("\n")

	if m.store != nil {
		if high, err := m.store.HighScore(string(m.Preset())); err == nil && high > 0 {
			b.WriteString(centerText(fmt.Sprintf("Best: %d", high), m.width))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(centerText(dimStyle.Render("Up/Down: Navigate  |  Left/Right: Difficulty  |  Enter: Select  |  Tab: Scores  |  Q: Quit"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(dimStyle.Render("In game: arrows/WASD move  Space fire  Tab/M mine  Enter/V vaccine  P pause"), m.width))
	b.WriteString("\n")

	return b.String()
}

// Choice returns what the user picked, or ChoiceNone.
func (m MenuModel) Choice() MenuChoice {
	return m.choice
}

// Preset returns the selected difficulty preset.
func (m MenuModel) Preset() config.DifficultyPreset {
	return m.presets[m.preset]
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
