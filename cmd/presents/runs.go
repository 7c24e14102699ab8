package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/presents/internal/platform/tui"
	"github.com/vovakirdan/presents/internal/storage"
)

var (
	flagRunsPlain  bool
	flagRunsRecent bool
	flagRunsLimit  int
	flagRunsClear  bool
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Show run history",
	Long: `Display recorded runs. Every game that reaches the last chimney, or is
quit after it started, is recorded.

Runs are ranked by completion, then chimneys reached, then fewest deaths,
then fastest time. In a terminal an interactive table is shown; use --plain
(or pipe the output) for text.

Examples:
  presents runs
  presents runs --plain --limit 5
  presents runs --plain --recent
  presents runs --clear`,
	Args: cobra.NoArgs,
	Run:  runRuns,
}

func init() {
	runsCmd.Flags().BoolVar(&flagRunsPlain, "plain", false, "Print a text table instead of the interactive view")
	runsCmd.Flags().BoolVar(&flagRunsRecent, "recent", false, "List newest runs instead of best runs")
	runsCmd.Flags().IntVar(&flagRunsLimit, "limit", 10, "Number of runs to print")
	runsCmd.Flags().BoolVar(&flagRunsClear, "clear", false, "Delete the whole run history")
}

func runRuns(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening run history: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagRunsClear {
		if err := store.ClearRuns(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Run history cleared.")
		return
	}

	fd := int(os.Stdout.Fd())
	if !flagRunsPlain && term.IsTerminal(fd) {
		width, height, sizeErr := term.GetSize(fd)
		if sizeErr != nil {
			width, height = 80, 24
		}
		if err := tui.RunRunsView(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	printRuns(store)
}

func printRuns(store *storage.Store) {
	var runs []storage.RunRecord
	var err error
	title := "Best Runs"
	if flagRunsRecent {
		title = "Recent Runs"
		runs, err = store.RecentRuns(flagRunsLimit)
	} else {
		runs, err = store.TopRuns(flagRunsLimit)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("%s - Presence of Presents\n", title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'presents play' to record the first run!")
		return
	}

	headers := []string{"#", "Player", "Result", "Level", "Deaths", "Time", "Date"}
	fmt.Printf("  %-4s  %-12s  %-10s  %-5s  %-6s  %-6s  %s\n", toAny(headers)...)
	for _, row := range tui.RunRows(runs) {
		fmt.Printf("  %-4s  %-12s  %-10s  %-5s  %-6s  %-6s  %s\n", toAny(row)...)
	}

	if stats, err := store.Stats(); err == nil {
		fmt.Println()
		fmt.Println(tui.FormatStats(stats))
	}
}

func toAny(ss []string) []any {
	out := make([]any, len(ss))
	for i, s := range ss {
		out[i] = s
	}
	return out
}
