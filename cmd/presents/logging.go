package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/presents/internal/games/presents"
)

// logger is shared by every command. Commands that own the terminal
// discard it unless --log-file is given.
var (
	logger  = log.New(io.Discard)
	logFile *os.File
)

// newLogger creates a logger writing to w at the named level.
func newLogger(w io.Writer, level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return log.NewWithOptions(w, log.Options{
		Level:           lvl,
		ReportTimestamp: true,
		Prefix:          "presents",
	}), nil
}

// setupLogging builds the shared logger and hands the gameplay settings to
// the game package.
func setupLogging(cmd *cobra.Command, _ []string) error {
	var out io.Writer = os.Stderr
	switch cmd.Name() {
	case "play", "runs":
		out = io.Discard
	}

	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("cannot open log file: %w", err)
		}
		logFile = f
		out = f
	}

	l, err := newLogger(out, flagLogLevel)
	if err != nil {
		return err
	}
	logger = l

	presents.SetLogger(logger)
	presents.SetConfigPath(flagConfig)
	return nil
}

func closeLogging(_ *cobra.Command, _ []string) error {
	if logFile != nil {
		return logFile.Close()
	}
	return nil
}
