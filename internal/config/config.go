// Package config provides settings and key binding loading for the shell.
// Display settings are JSON, key bindings are YAML. Both follow the same
// search order: explicit path, user config directory, local configs
// directory, embedded default.
package config

import (
	"fmt"

	"github.com/Starman12976/termarcade/internal/core"
)

// Settings contains the display and timing configuration the shell is
// constructed with. Invalid settings abort startup, so every field is
// checked before a Program is built.
type Settings struct {
	Title           string `json:"title"`
	BackgroundColor string `json:"background_color"`
	Fullscreen      bool   `json:"fullscreen"`
	ScreenSize      [2]int `json:"screen_size"`
	FPS             int    `json:"fps"`
}

// settingsKeys is the exact key set a settings file must contain.
var settingsKeys = []string{
	"title",
	"background_color",
	"fullscreen",
	"screen_size",
	"fps",
}

// MinFPS and MaxFPS bound the frame rate a settings file may request.
const (
	MinFPS = 1
	MaxFPS = 240
)

// Validate checks every settings field and returns the first problem found.
func (s Settings) Validate() error {
	if s.Title == "" {
		return fmt.Errorf("config: title must not be empty")
	}
	if _, err := core.ParseColor(s.BackgroundColor); err != nil {
		return fmt.Errorf("config: invalid background_color: %w", err)
	}
	// Fullscreen sessions take their size from the terminal, so
	// screen_size may be omitted there. When given it must still be valid.
	if !s.Fullscreen || s.ScreenSize != [2]int{} {
		if s.ScreenSize[0] <= 0 || s.ScreenSize[1] <= 0 {
			return fmt.Errorf("config: screen_size must be positive, got [%d, %d]", s.ScreenSize[0], s.ScreenSize[1])
		}
	}
	if s.FPS < MinFPS || s.FPS > MaxFPS {
		return fmt.Errorf("config: fps %d out of range [%d, %d]", s.FPS, MinFPS, MaxFPS)
	}
	return nil
}

// Background returns the parsed background color.
// Call only after Validate has passed.
func (s Settings) Background() core.Color {
	c, err := core.ParseColor(s.BackgroundColor)
	if err != nil {
		return core.ColorBlack
	}
	return c
}

// Width returns the configured surface width in characters.
func (s Settings) Width() int {
	return s.ScreenSize[0]
}

// Height returns the configured surface height in characters.
func (s Settings) Height() int {
	return s.ScreenSize[1]
}

// Controls maps semantic actions to the keys that trigger them.
// States look bindings up by action name, so players can rebind keys
// without touching state code.
type Controls struct {
	Bindings map[string]string `yaml:"bindings"`
}

// controlActions is the exact action set a controls file must bind.
var controlActions = []string{
	"up",
	"down",
	"left",
	"right",
	"select",
	"back",
	"quit",
	"restart",
}

// Validate checks that the controls bind exactly the known action set.
func (c Controls) Validate() error {
	for _, action := range controlActions {
		key, ok := c.Bindings[action]
		if !ok {
			return fmt.Errorf("config: controls missing binding for %q", action)
		}
		if key == "" {
			return fmt.Errorf("config: controls bind %q to an empty key", action)
		}
	}
	for action := range c.Bindings {
		if !knownAction(action) {
			return fmt.Errorf("config: controls bind unknown action %q", action)
		}
	}
	return nil
}

// Key returns the key bound to an action, or empty if unbound.
func (c Controls) Key(action string) string {
	return c.Bindings[action]
}

// Is reports whether the given key triggers the given action.
func (c Controls) Is(key, action string) bool {
	bound, ok := c.Bindings[action]
	return ok && bound == key
}

func knownAction(action string) bool {
	for _, a := range controlActions {
		if a == action {
			return true
		}
	}
	return false
}
