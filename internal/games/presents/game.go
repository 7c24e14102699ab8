package presents

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/presents/internal/config"
	"github.com/vovakirdan/presents/internal/core"
)

// configPath stores the custom config path set via CLI
var configPath string

// startLevel stores the level to begin at, set via CLI
var startLevel = 1

// logger receives level transitions; discarded unless set via CLI
var logger = log.New(io.Discard)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetStartLevel sets the level new games begin at.
func SetStartLevel(level int) {
	if level < 1 {
		level = 1
	}
	startLevel = level
}

// SetLogger sets the logger handed to new worlds.
func SetLogger(l *log.Logger) {
	if l != nil {
		logger = l
	}
}

// Game adapts a World to the platform's Reset/Step/Render cycle and adds
// pause and restart on top of the simulation.
type Game struct {
	world   *World
	cfg     config.PresentsConfig
	runtime core.RuntimeConfig
	paused  bool
}

// New creates a new game instance. Call Reset before stepping it.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "presents"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Presence of Presents"
}

// Reset loads the configuration and starts a fresh world.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.paused = false

	cfg, err := config.LoadPresents(configPath)
	if err != nil {
		logger.Warn("using default config", "path", configPath, "error", err)
		cfg = config.DefaultPresentsConfig()
	}
	g.cfg = cfg

	w, err := NewWorld(cfg, WithLogger(logger), WithStartLevel(startLevel))
	if err != nil {
		// LoadPresents only returns validated configs
		panic(err)
	}
	g.world = w
}

// World returns the simulation being played.
func (g *Game) World() *World {
	return g.world
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.world.Complete() {
		if in.Has(core.ActionRestart) {
			g.Reset(g.runtime)
		}
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	changed := g.world.Step(in)
	return core.StepResult{State: g.State(), LevelChanged: changed}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	w := g.world
	return core.GameState{
		Level:    w.Level(),
		Cleared:  w.Cleared(),
		Health:   w.Player.Health,
		Deaths:   w.Player.Deaths,
		Frames:   w.Frame(),
		GameOver: w.Complete(),
		Paused:   g.paused,
	}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	r := NewScreenRenderer(dst, g.cfg)
	g.world.Draw(r)

	// HUD
	levelText := fmt.Sprintf(" Level %d/%d ", core.Min(g.world.Level(), g.world.Levels().Len()), g.world.Levels().Len())
	dst.DrawText(dst.Width()-len(levelText)-1, 0, levelText)

	if g.paused {
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}

	if g.world.Complete() {
		st := g.State()
		drawCenteredMessage(dst, "MERRY CHRISTMAS!",
			fmt.Sprintf("%d chimneys, %d respawns  |  Press R to play again", st.Cleared, st.Deaths))
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ', core.ColorDefault)
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	titleX := boxX + (boxW-len(title))/2
	dst.DrawText(titleX, boxY+1, title)

	subtitleX := boxX + (boxW-len(subtitle))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}
