package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/Starman12976/termarcade/internal/app"
	"github.com/Starman12976/termarcade/internal/config"
	"github.com/Starman12976/termarcade/internal/core"
	"github.com/Starman12976/termarcade/internal/platform/tui"
	"github.com/Starman12976/termarcade/internal/storage"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the SSH server",
	Long: `Start an SSH server that gives every connection its own shell
session sized to its terminal. Scores are stored per-server, so all
users share one leaderboard.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.termarcade/host_key

Examples:
  termarcade serve                           # Listen on :23234 with auto-generated key
  termarcade serve --ssh :2222               # Listen on port 2222
  termarcade serve --host-key ./my_host_key  # Use specific host key
  termarcade serve --db ./scores.db          # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "termarcade",
	})

	// Sessions share one settings/controls pair, validated up front
	settings, err := config.LoadSettings(flagSettings)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	controls, err := config.LoadControls(flagControls)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// One store for the whole server
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		store = nil
	}

	// Remote sessions always fill the client terminal
	factory := func(width, height int) (tui.Model, error) {
		cfg := core.RuntimeConfig{
			ScreenW:    width,
			ScreenH:    height,
			TickRate:   settings.FPS,
			Fullscreen: true,
			Seed:       flagSeed,
		}
		if flagFPS > 0 {
			cfg.TickRate = flagFPS
		}
		return app.NewShellModel(settings, controls, store, cfg, logger)
	}

	server, err := tui.NewSSHServer(tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
	}, factory)
	if err != nil {
		if store != nil {
			store.Close()
		}
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting termarcade SSH server on %s\n", server.Addr())
	fmt.Println("Connect with: ssh localhost -p 23234")
	fmt.Println("Press Ctrl+C to stop")

	serveErr := server.ListenAndServe()

	if store != nil {
		store.Close()
	}

	if serveErr != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", serveErr)
		os.Exit(1)
	}
}
