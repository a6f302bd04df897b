package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadSettings loads display settings.
// Search order: customPath -> ~/.termarcade/configs/settings.json -> ./configs/settings.json -> embedded default
//
// A file that exists but fails to parse or validate is a hard error at
// every step: startup must never silently run with a broken settings
// file the user meant to apply.
func LoadSettings(customPath string) (Settings, error) {
	if customPath != "" {
		return readSettings(customPath)
	}

	if userPath := userConfigPath("settings.json"); userPath != "" {
		if _, err := os.Stat(userPath); err == nil {
			return readSettings(userPath)
		}
	}

	if _, err := os.Stat(localConfigPath("settings.json")); err == nil {
		return readSettings(localConfigPath("settings.json"))
	}

	return parseSettings(defaultSettingsJSON, "embedded default")
}

// readSettings reads and validates a settings file from disk.
func readSettings(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("config: cannot read settings %s: %w", path, err)
	}
	return parseSettings(data, path)
}

// parseSettings decodes settings JSON, rejecting missing and unknown keys.
// Fullscreen files may omit screen_size; every other key is mandatory.
func parseSettings(data []byte, source string) (Settings, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return Settings{}, fmt.Errorf("config: cannot parse settings %s: %w", source, err)
	}

	var cfg Settings
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Settings{}, fmt.Errorf("config: cannot parse settings %s: %w", source, err)
	}

	for _, key := range settingsKeys {
		if _, ok := raw[key]; !ok {
			if key == "screen_size" && cfg.Fullscreen {
				continue
			}
			return Settings{}, fmt.Errorf("config: settings %s missing key %q", source, key)
		}
	}
	for key := range raw {
		if !knownSettingsKey(key) {
			return Settings{}, fmt.Errorf("config: settings %s has unknown key %q", source, key)
		}
	}

	if err := cfg.Validate(); err != nil {
		return Settings{}, fmt.Errorf("%w (in %s)", err, source)
	}
	return cfg, nil
}

func knownSettingsKey(key string) bool {
	for _, k := range settingsKeys {
		if k == key {
			return true
		}
	}
	return false
}

// LoadControls loads key bindings.
// Search order: customPath -> ~/.termarcade/configs/controls.yaml -> ./configs/controls.yaml -> embedded default
func LoadControls(customPath string) (Controls, error) {
	if customPath != "" {
		return readControls(customPath)
	}

	if userPath := userConfigPath("controls.yaml"); userPath != "" {
		if _, err := os.Stat(userPath); err == nil {
			return readControls(userPath)
		}
	}

	if _, err := os.Stat(localConfigPath("controls.yaml")); err == nil {
		return readControls(localConfigPath("controls.yaml"))
	}

	return parseControls(defaultControlsYAML, "embedded default")
}

// readControls reads and validates a controls file from disk.
func readControls(path string) (Controls, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Controls{}, fmt.Errorf("config: cannot read controls %s: %w", path, err)
	}
	return parseControls(data, path)
}

func parseControls(data []byte, source string) (Controls, error) {
	var cfg Controls
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Controls{}, fmt.Errorf("config: cannot parse controls %s: %w", source, err)
	}
	if err := cfg.Validate(); err != nil {
		return Controls{}, fmt.Errorf("%w (in %s)", err, source)
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".termarcade", "configs", filename)
}

// localConfigPath returns the path to a config file in the working directory.
func localConfigPath(filename string) string {
	return filepath.Join("configs", filename)
}
