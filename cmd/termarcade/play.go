package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/Starman12976/termarcade/internal/app"
)

var flagLogFile string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Run the shell",
	Long: `Start the shell at the menu screen.

Key bindings come from controls.yaml; the defaults are:
  Arrows     - Move / navigate
  Enter      - Select
  Esc        - Back
  R          - Restart after a crash
  Q / Ctrl+C - Quit
  Ctrl+S     - Save a screenshot

Exit codes:
  0   - Quit from the menu
  1   - A screen failed
  130 - Ended by a signal

Examples:
  termarcade play
  termarcade play --settings ./my-settings.json
  termarcade play --fps 30 --seed 42
  termarcade play --log ./termarcade.log`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLogFile, "log", "", "Write logs to this file instead of stderr")
}

func runPlay(_ *cobra.Command, _ []string) {
	os.Exit(playExitCode())
}

// playExitCode runs the shell and returns its exit code. Deferred
// releases run before the caller exits the process.
func playExitCode() int {
	logger, closeLog, err := buildLogger(flagLogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer closeLog()

	program, err := app.NewProgram(app.Options{
		SettingsPath: flagSettings,
		ControlsPath: flagControls,
		DBPath:       flagDBPath,
		FPS:          flagFPS,
		Seed:         flagSeed,
		Logger:       logger,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return program.Run(ctx)
}

// buildLogger returns the shell logger. Logging to a file keeps the
// alternate screen clean while the shell is running.
func buildLogger(path string) (*log.Logger, func(), error) {
	if path == "" {
		logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true})
		return logger, func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{ReportTimestamp: true})
	return logger, func() {
		//nolint:errcheck // Best-effort close on shutdown
		f.Close()
	}, nil
}
