package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Starman12976/termarcade/internal/config"
)

var flagForce bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write starter config files",
	Long: `Write the default settings and controls files to ~/.termarcade/configs
so they can be edited. Every command picks them up from there
automatically.

Files written:
  ~/.termarcade/configs/settings.json
  ~/.termarcade/configs/controls.yaml

Existing files are left untouched unless --force is given.

Examples:
  termarcade init
  termarcade init --force`,
	Run: runInit,
}

func init() {
	initCmd.Flags().BoolVar(&flagForce, "force", false, "Overwrite existing config files")
}

func runInit(_ *cobra.Command, _ []string) {
	home, err := os.UserHomeDir()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	dir := filepath.Join(home, ".termarcade", "configs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating %s: %v\n", dir, err)
		os.Exit(1)
	}

	files := []struct {
		name string
		data []byte
	}{
		{"settings.json", config.DefaultSettingsJSON()},
		{"controls.yaml", config.DefaultControlsYAML()},
	}

	for _, f := range files {
		path := filepath.Join(dir, f.name)
		if _, statErr := os.Stat(path); statErr == nil && !flagForce {
			fmt.Printf("%s exists, skipping (use --force to overwrite)\n", path)
			continue
		}
		if err := os.WriteFile(path, f.data, 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", path, err)
			os.Exit(1)
		}
		fmt.Printf("Wrote %s\n", path)
	}
}
