package tui

import (
	"io"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/presents/internal/core"
	"github.com/vovakirdan/presents/internal/storage"
)

// Game is the contract between the terminal shell and a simulation.
// Games contain pure logic with no Bubble Tea dependency; the shell owns
// input mapping, timing and drawing.
type Game interface {
	// ID returns a unique identifier, used for logs.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes or resets the game state.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current game state into the provided screen buffer.
	Render(dst *core.Screen)

	// State returns the current game state.
	State() core.GameState
}

// Options tune a game model.
type Options struct {
	Player     string      // Recorded with each run
	HoldFrames int         // See DefaultHoldFrames
	Logger     *log.Logger // Nil discards
}

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model for running the game.
type Model struct {
	game      Game
	screen    *core.Screen
	store     *storage.Store
	config    core.RuntimeConfig
	opts      Options
	logger    *log.Logger
	input     *HeldInput
	keys      KeyMap
	help      help.Model
	gameState core.GameState
	quitting  bool
	runSaved  bool // Whether the current run has been recorded
}

// NewModel creates a model for game and resets it. The bottom screen row is
// reserved for the help line.
func NewModel(game Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := Model{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, core.Max(cfg.ScreenH-1, 1)),
		store:  store,
		config: cfg,
		opts:   opts,
		logger: logger,
		input:  NewHeldInput(opts.HoldFrames),
		keys:   DefaultKeyMap(),
		help:   help.New(),
	}
	m.help.Width = cfg.ScreenW

	m.game.Reset(m.config)
	m.gameState = m.game.State()
	return m
}

// gameRows is the screen height left after the help view.
func (m Model) gameRows() int {
	helpRows := 1
	if m.help.ShowAll {
		helpRows = len(m.keys.FullHelp()[0])
	}
	return core.Max(m.config.ScreenH-helpRows, 1)
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		m.screen.Resize(m.config.ScreenW, m.gameRows())
		return m, nil
	}

	action, quit := m.keys.MapKey(msg)
	if quit {
		m.saveRun()
		m.quitting = true
		return m, tea.Quit
	}

	m.input.Press(action)
	return m, nil
}

// handleResize processes window resize events. The world is independent of
// the terminal size, so only the screen buffer changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, m.gameRows())
	m.help.Width = msg.Width
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	wasOver := m.gameState.GameOver

	result := m.game.Step(m.input.Next())
	m.gameState = result.State

	if result.LevelChanged {
		m.logger.Debug("level changed", "game", m.game.ID(), "level", m.gameState.Level, "player", m.opts.Player)
	}
	if m.gameState.Paused {
		m.input.Release()
	}

	switch {
	case m.gameState.GameOver && !wasOver:
		m.saveRun()
	case wasOver && !m.gameState.GameOver:
		// Restarted
		m.runSaved = false
	}

	return m, tickCmd(m.config.TickRate)
}

// saveRun records the current run once. Runs that never started are skipped.
func (m *Model) saveRun() {
	st := m.gameState
	if m.runSaved || st.Frames == 0 {
		return
	}
	m.runSaved = true

	if m.store == nil {
		return
	}

	run := storage.RunRecord{
		Player:       m.opts.Player,
		LevelReached: st.Level,
		Cleared:      st.Cleared,
		Deaths:       st.Deaths,
		Frames:       st.Frames,
		Completed:    st.GameOver,
	}
	if _, err := m.store.SaveRun(run); err != nil {
		// Best-effort, the game continues regardless
		m.logger.Warn("could not save run", "error", err)
	}
}

// State returns the last observed game state.
func (m Model) State() core.GameState {
	return m.gameState
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program with the given game.
func Run(game Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, store, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
