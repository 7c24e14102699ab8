package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/presents/internal/core"
	"github.com/vovakirdan/presents/internal/games/presents"
	"github.com/vovakirdan/presents/internal/platform/tui"
	"github.com/vovakirdan/presents/internal/storage"
)

var (
	flagLevel      int
	flagHoldFrames int
	flagPlayer     string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game in the terminal.

Controls:
  ←/A, →/D     - Walk (held)
  Space/↑/W    - Jump (held, only from the ground)
  P/Esc        - Pause
  R            - Play again (after the last chimney)
  ?            - Toggle help
  Q/Ctrl+C     - Quit

Terminals do not report key releases, so a movement key counts as held for
--hold frames after its last key event.

Examples:
  presents play              # Pick a level first
  presents play --level 3    # Start right away at level 3
  presents play --config ./my-presents.yaml
  presents play --log-file presents.log --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagLevel, "level", 1, "Level to start at")
	playCmd.Flags().IntVar(&flagHoldFrames, "hold", tui.DefaultHoldFrames, "Frames a key stays held after its last key event")
	playCmd.Flags().StringVar(&flagPlayer, "player", os.Getenv("USER"), "Name recorded in the run history")
}

func runPlay(cmd *cobra.Command, _ []string) {
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Without --level, let the player pick one
	if !cmd.Flags().Changed("level") {
		level, selErr := tui.RunLevelSelector(presents.BuiltinLevels().Names(), width, height)
		if selErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", selErr)
			os.Exit(1)
		}
		// User quit the picker
		if level == 0 {
			return
		}
		flagLevel = level
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
	}

	presents.SetStartLevel(flagLevel)

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open run history: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	logger.Info("starting game", "level", flagLevel, "size", fmt.Sprintf("%dx%d", width, height))

	runErr := tui.Run(presents.New(), store, cfg, tui.Options{
		Player:     flagPlayer,
		HoldFrames: flagHoldFrames,
		Logger:     logger,
	})

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
