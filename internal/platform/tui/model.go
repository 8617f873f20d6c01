package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/zombie-dash/internal/config"
	"github.com/vovakirdan/zombie-dash/internal/core"
	"github.com/vovakirdan/zombie-dash/internal/game"
	"github.com/vovakirdan/zombie-dash/internal/sim"
	"github.com/vovakirdan/zombie-dash/internal/storage"
)

// Setup carries what every run needs. Rules are the loaded rules before a
// difficulty preset is applied.
type Setup struct {
	Rules  config.Config
	Levels sim.LevelSource
	Audio  sim.AudioSink
	Store  *storage.Store
	Logger *log.Logger
}

func (s Setup) logger() *log.Logger {
	if s.Logger == nil {
		return log.New(io.Discard)
	}
	return s.Logger
}

// NewGame creates a game with the preset applied to the rules.
func (s Setup) NewGame(preset config.DifficultyPreset) *game.Game {
	rules := s.Rules
	config.ApplyPreset(&rules, preset)
	return game.New(game.Options{
		Rules:  rules,
		Levels: s.Levels,
		Audio:  s.Audio,
		Logger: s.Logger,
	})
}

// GameModel is the Bubble Tea model for one play-through.
type GameModel struct {
	setup      Setup
	preset     config.DifficultyPreset
	game       *game.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	quitting   bool
	backToMenu bool
	runSaved   bool // Whether the run has been recorded
}

// NewGameModel creates a game model. A zero seed is replaced by the clock.
func NewGameModel(setup Setup, preset config.DifficultyPreset, cfg core.RuntimeConfig) GameModel {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return GameModel{
		setup:      setup,
		preset:     preset,
		game:       setup.NewGame(preset),
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
	}
}

// Init starts the run and the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.saveRun("quit")
		m.quitting = true
		return m, tea.Quit
	}

	if m.inputFrame.Has(core.ActionBack) && (m.gameState.GameOver || m.gameState.Paused) {
		m.saveRun("quit")
		m.backToMenu = true
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if m.backToMenu || m.quitting {
		return m, nil
	}

	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.runSaved = false
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	if m.tooSmall() {
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if m.gameState.GameOver {
		m.saveRun(string(m.game.Outcome()))
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// saveRun records the run once. Runs that never started are not recorded.
func (m *GameModel) saveRun(outcome string) {
	if m.runSaved || m.game.Ticks() == 0 {
		return
	}
	m.runSaved = true

	st := m.game.State()
	logger := m.setup.logger()
	logger.Info("run finished", "outcome", outcome, "score", st.Score, "level", st.Level, "preset", m.preset)
	if m.setup.Store == nil {
		return
	}

	_, err := m.setup.Store.SaveRun(storage.Run{
		Board:        string(m.preset),
		Seed:         m.game.Seed(),
		StartLevel:   m.setup.Rules.Game.StartLevel,
		LevelReached: st.Level,
		Score:        st.Score,
		Ticks:        m.game.Ticks(),
		Deaths:       m.game.Deaths(),
		Outcome:      outcome,
	})
	if err != nil {
		logger.Warn("could not save run", "err", err)
	}
}

func (m GameModel) tooSmall() bool {
	return m.config.ScreenW < game.ArenaWidth || m.config.ScreenH < game.ArenaHeight+1
}

// saveScreenshot saves the current screen to a file.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".zombiedash", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(filepath.Join(dir, filename), []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}
	if m.tooSmall() {
		return fmt.Sprintf("Terminal too small: need %dx%d, have %dx%d",
			game.ArenaWidth, game.ArenaHeight+1, m.config.ScreenW, m.config.ScreenH)
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run starts a local session: the menu, unless skipMenu, then games and
// scoreboards until the user quits.
func Run(setup Setup, cfg core.RuntimeConfig, preset config.DifficultyPreset, skipMenu bool) error {
	model := NewSessionModel(setup, cfg, preset, skipMenu)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
