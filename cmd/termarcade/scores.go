package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Starman12976/termarcade/internal/core"
	"github.com/Starman12976/termarcade/internal/platform/tui"
	"github.com/Starman12976/termarcade/internal/storage"
)

var flagPlain bool

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "View recorded high scores",
	Long: `Browse high scores for every screen that records them.

The default view is interactive; use --plain for plain-text output.

Examples:
  termarcade scores
  termarcade scores --plain`,
	Run: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print a plain table instead of the interactive view")
}

func runScores(_ *cobra.Command, _ []string) {
	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagPlain {
		if err := printScores(store); err != nil {
			store.Close()
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	// Get terminal size for layout
	def := core.DefaultConfig()
	width, height := def.ScreenW, def.ScreenH
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	if err := tui.RunScoreboard(store, width, height); err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error showing scores: %v\n", err)
		os.Exit(1)
	}
}

// printScores writes a plain-text score listing for every state.
func printScores(store *storage.Store) error {
	stats, err := store.GetAllStats()
	if err != nil {
		return err
	}

	if len(stats) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Run 'termarcade play' to set the first high score!")
		return nil
	}

	names := make([]string, 0, len(stats))
	for name := range stats {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		scores, err := store.TopScores(name, 10)
		if err != nil {
			return err
		}

		fmt.Printf("High Scores - %s\n", name)
		fmt.Println()

		// Print header
		fmt.Printf("  %-4s  %-10s  %-6s  %s\n", "Rank", "Score", "Time", "Date")
		fmt.Printf("  %-4s  %-10s  %-6s  %s\n", "----", "-----", "----", "----")

		// Print scores
		for i, entry := range scores {
			dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
			fmt.Printf("  %-4d  %-10d  %-6s  %s\n", i+1, entry.Score, fmt.Sprintf("%ds", entry.DurationSecs), dateStr)
		}

		st := stats[name]
		fmt.Println()
		fmt.Printf("Best: %d over %d plays\n", st.HighScore, st.Sessions)
		fmt.Println()
	}

	return nil
}
