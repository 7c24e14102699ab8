package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/presents/internal/config"
	"github.com/vovakirdan/presents/internal/core"
	"github.com/vovakirdan/presents/internal/games/presents"
)

var (
	flagSimFrames   int
	flagSimInput    string
	flagSimLevel    int
	flagSimRealtime bool
	flagSimShow     bool
	flagSimWidth    int
	flagSimHeight   int
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run the simulation headless with scripted input",
	Long: `Run the world for a number of frames while holding a fixed set of actions,
then print where it ended up. Useful for checking physics and level changes
without a terminal UI.

Actions: left, right, jump (comma separated, held every frame).

Examples:
  presents sim
  presents sim --frames 600 --input right,jump
  presents sim --level 3 --input left --show
  presents sim --realtime --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagSimFrames, "frames", 600, "Number of frames to simulate")
	simCmd.Flags().StringVar(&flagSimInput, "input", "", "Actions held every frame, e.g. right,jump")
	simCmd.Flags().IntVar(&flagSimLevel, "level", 1, "Level to start at")
	simCmd.Flags().BoolVar(&flagSimRealtime, "realtime", false, "Pace frames at --fps instead of running flat out")
	simCmd.Flags().BoolVar(&flagSimShow, "show", false, "Print the final frame as text")
	simCmd.Flags().IntVar(&flagSimWidth, "width", 80, "Width of the --show frame")
	simCmd.Flags().IntVar(&flagSimHeight, "height", 24, "Height of the --show frame")
}

// parseActions parses a comma separated list of held actions.
func parseActions(s string) ([]core.Action, error) {
	var actions []core.Action
	for _, name := range strings.Split(s, ",") {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" {
			continue
		}
		a, ok := core.ParseAction(name)
		if !ok {
			return nil, fmt.Errorf("unknown action %q", name)
		}
		switch a {
		case core.ActionLeft, core.ActionRight, core.ActionJump:
		default:
			return nil, fmt.Errorf("action %q cannot be held", name)
		}
		actions = append(actions, a)
	}
	return actions, nil
}

// untilComplete stops the loop once the world has no more levels.
type untilComplete struct {
	presents.InputSource
	world *presents.World
}

func (u untilComplete) Poll() (core.InputFrame, bool) {
	if u.world.Complete() {
		return core.InputFrame{}, true
	}
	return u.InputSource.Poll()
}

func runSim(_ *cobra.Command, _ []string) {
	actions, err := parseActions(flagSimInput)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.LoadPresents(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	w, err := presents.NewWorld(cfg, presents.WithLogger(logger), presents.WithStartLevel(flagSimLevel))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating world: %v\n", err)
		os.Exit(1)
	}

	in := presents.NewScriptedInput(flagSimFrames, actions...)

	var clk presents.Clock = presents.InstantClock{}
	if flagSimRealtime {
		ticker := presents.NewTickerClock(flagFPS)
		defer ticker.Stop()
		clk = ticker
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger.Debug("simulating", "frames", flagSimFrames, "input", flagSimInput, "level", flagSimLevel)

	if err := presents.Run(ctx, w, untilComplete{InputSource: in, world: w}, discardRenderer{}, clk); err != nil {
		logger.Warn("simulation interrupted", "error", err)
	}

	printSummary(w)
	if flagSimShow {
		screen := core.NewScreen(flagSimWidth, flagSimHeight)
		w.Draw(presents.NewScreenRenderer(screen, cfg))
		fmt.Println()
		fmt.Println(screen.String())
	}
}

// discardRenderer drops every frame; --show draws only the last one.
type discardRenderer struct{}

func (discardRenderer) DrawSprite(presents.Sprite) {}
func (discardRenderer) DrawHealthBar(_, _ int, _, _ float64) {}

func printSummary(w *presents.World) {
	p := w.Player
	x, y := p.Rect.Center()

	status := "in progress"
	if w.Complete() {
		status = "complete"
	}

	fmt.Printf("Frames:    %d\n", w.Frame())
	fmt.Printf("Status:    %s\n", status)
	fmt.Printf("Level:     %d/%d\n", core.Min(w.Level(), w.Levels().Len()), w.Levels().Len())
	fmt.Printf("Cleared:   %d\n", w.Cleared())
	fmt.Printf("Health:    %d/%d\n", p.Health, p.MaxHealth)
	fmt.Printf("Deaths:    %d\n", p.Deaths)
	fmt.Printf("Position:  (%.1f, %.1f)\n", x, y)
	fmt.Printf("Velocity:  (%.1f, %.1f)\n", p.VX, p.VY)
	fmt.Printf("On ground: %v\n", p.OnGround)
	fmt.Printf("Enemies:   %d, projectiles: %d\n", len(w.Enemies), len(w.Projectiles))
}
