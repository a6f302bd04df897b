// termarcade is a terminal arcade shell: a menu, a playfield, and a
// high-score table driven by one fixed-tick frame loop.
//
// Usage:
//
//	termarcade play          - Run the shell
//	termarcade scores        - Browse recorded high scores
//	termarcade serve         - Serve the shell over SSH
//	termarcade init          - Write starter config files
//
// Global flags:
//
//	--settings <path> - Use a specific settings JSON file
//	--controls <path> - Use a specific controls YAML file
//	--fps <rate>      - Override the configured frame rate
//	--seed <value>    - Set RNG seed for reproducible sessions
//	--db <path>       - Set database path (default: ~/.termarcade/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagSettings string
	flagControls string
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "termarcade",
	Short: "Terminal arcade shell",
	Long: `termarcade runs a small arcade in your terminal: a menu screen, a
playfield, and a high-score table, all drawn on one text surface at a
fixed frame rate.

Available commands:
  play     - Run the shell locally
  scores   - View recorded high scores
  serve    - Start an SSH server for remote play
  init     - Write starter config files

Examples:
  termarcade play
  termarcade play --settings ./settings.json --fps 30
  termarcade scores --plain
  termarcade serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagSettings, "settings", "", "Path to settings JSON (empty = search chain)")
	rootCmd.PersistentFlags().StringVar(&flagControls, "controls", "", "Path to controls YAML (empty = search chain)")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Frame rate override (0 = use settings)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.termarcade/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(initCmd)
}
