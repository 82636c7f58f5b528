// Package config loads operator overrides for the browser: key
// remappings, theme colors and a couple of settings. Configuration is
// read once at startup and never written back.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Keys maps each browser action to the key names that trigger it, in
// bubbletea's key notation ("q", "enter", "backspace", "up", "ctrl+c").
// An empty list keeps the built-in binding for that action.
type Keys struct {
	Quit    []string `yaml:"quit"`
	Down    []string `yaml:"down"`
	Up      []string `yaml:"up"`
	Open    []string `yaml:"open"`
	Parent  []string `yaml:"parent"`
	Refresh []string `yaml:"refresh"`
	Top     []string `yaml:"top"`
	Bottom  []string `yaml:"bottom"`
	Hidden  []string `yaml:"hidden"`
}

// Theme carries lipgloss color values (ANSI numbers or hex strings).
type Theme struct {
	Header    string `yaml:"header"`
	Directory string `yaml:"directory"`
	Border    string `yaml:"border"`
	Error     string `yaml:"error"`
	Help      string `yaml:"help"`
}

// Config is the full configuration file shape.
type Config struct {
	Keys     Keys  `yaml:"keys"`
	Theme    Theme `yaml:"theme"`
	Settings struct {
		ShowHidden bool `yaml:"show_hidden"` // List dotfiles by default
	} `yaml:"settings"`
}

// New returns the default configuration.
func New() *Config {
	cfg := &Config{}

	cfg.Keys = Keys{
		Quit:    []string{"q", "ctrl+c"},
		Down:    []string{"j", "down"},
		Up:      []string{"k", "up"},
		Open:    []string{"enter"},
		Parent:  []string{"backspace"},
		Refresh: []string{"r"},
		Top:     []string{"g"},
		Bottom:  []string{"G"},
		Hidden:  []string{"h"},
	}

	cfg.Theme = Theme{
		Header:    "99",
		Directory: "39",
		Border:    "240",
		Error:     "196",
		Help:      "245",
	}

	cfg.Settings.ShowHidden = false
	return cfg
}

// LoadConfig loads configuration from the default location
// (~/.config/rota/config.yaml).
func LoadConfig() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	return LoadConfigFile(filepath.Join(home, ".config", "rota", "config.yaml"))
}

// LoadConfigFile loads configuration from path, merging it over the
// defaults. A missing file is not an error; the defaults are returned.
func LoadConfigFile(path string) (*Config, error) {
	cfg := New()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var loaded Config
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	// Merge so that unset sections keep their defaults.
	mergeKeys(&cfg.Keys, &loaded.Keys)
	mergeTheme(&cfg.Theme, &loaded.Theme)
	cfg.Settings.ShowHidden = loaded.Settings.ShowHidden

	return cfg, nil
}

func mergeKeys(dst, src *Keys) {
	if len(src.Quit) > 0 {
		dst.Quit = src.Quit
	}
	if len(src.Down) > 0 {
		dst.Down = src.Down
	}
	if len(src.Up) > 0 {
		dst.Up = src.Up
	}
	if len(src.Open) > 0 {
		dst.Open = src.Open
	}
	if len(src.Parent) > 0 {
		dst.Parent = src.Parent
	}
	if len(src.Refresh) > 0 {
		dst.Refresh = src.Refresh
	}
	if len(src.Top) > 0 {
		dst.Top = src.Top
	}
	if len(src.Bottom) > 0 {
		dst.Bottom = src.Bottom
	}
	if len(src.Hidden) > 0 {
		dst.Hidden = src.Hidden
	}
}

func mergeTheme(dst, src *Theme) {
	if src.Header != "" {
		dst.Header = src.Header
	}
	if src.Directory != "" {
		dst.Directory = src.Directory
	}
	if src.Border != "" {
		dst.Border = src.Border
	}
	if src.Error != "" {
		dst.Error = src.Error
	}
	if src.Help != "" {
		dst.Help = src.Help
	}
}
