// presents is a terminal edition of Presence of Presents, a platformer in
// which Santa delivers presents across snowy rooftops.
//
// Usage:
//
//	presents play            - Play in the terminal
//	presents sim             - Run the simulation headless with scripted input
//	presents levels          - List the built-in levels
//	presents runs            - Show run history
//	presents serve           - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--db <path>           - Set database path (default: ~/.presents/runs.db)
//	--config <path>       - Use a custom gameplay config YAML
//	--log-level <level>   - debug, info, warn or error (default: info)
//	--log-file <path>     - Write logs to a file instead of stderr
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS      int
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "presents",
	Short: "Presence of Presents - a Christmas platformer in your terminal",
	Long: `Presence of Presents is a frame-stepped platformer. Guide Santa across
regular, snowy and icy rooftops, avoid patrolling parents and the CEOs'
projectiles, and reach the chimney of every level.

Available commands:
  play     - Play in the terminal
  sim      - Run the simulation headless with scripted input
  levels   - List the built-in levels
  runs     - Show run history
  serve    - Start SSH server for remote play

Examples:
  presents play
  presents play --level 2
  presents sim --frames 600 --input right,jump
  presents runs --plain
  presents serve --ssh :2222`,
	SilenceUsage:       true,
	PersistentPreRunE:  setupLogging,
	PersistentPostRunE: closeLogging,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.presents/runs.db", "Path to run history database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom gameplay config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file instead of stderr")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(serveCmd)
}
