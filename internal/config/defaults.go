package config

import (
	_ "embed"
)

//go:embed defaults/settings.json
var defaultSettingsJSON []byte

//go:embed defaults/controls.yaml
var defaultControlsYAML []byte

// DefaultSettings returns the built-in display settings.
func DefaultSettings() Settings {
	return Settings{
		Title:           "termarcade",
		BackgroundColor: "black",
		Fullscreen:      false,
		ScreenSize:      [2]int{80, 24},
		FPS:             60,
	}
}

// DefaultControls returns the built-in key bindings.
func DefaultControls() Controls {
	return Controls{
		Bindings: map[string]string{
			"up":      "up",
			"down":    "down",
			"left":    "left",
			"right":   "right",
			"select":  "enter",
			"back":    "esc",
			"quit":    "q",
			"restart": "r",
		},
	}
}

// DefaultSettingsJSON returns the embedded default settings file,
// suitable for writing out as a starting point for customization.
func DefaultSettingsJSON() []byte {
	return defaultSettingsJSON
}

// DefaultControlsYAML returns the embedded default controls file.
func DefaultControlsYAML() []byte {
	return defaultControlsYAML
}
