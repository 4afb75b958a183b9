// Package config handles the TOML application configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/JithinPanicker/day-flow/internal/osutil"
)

const (
	// AppName is the application name used for the config directory
	AppName = "dayflow"
	// ConfigFile is the name of the TOML configuration file
	ConfigFile = "config.toml"
)

// Config represents the application configuration
type Config struct {
	// Theme selects the TUI color theme (a bubbletint theme id)
	Theme string `toml:"theme"`
	// DateFormat controls how dates are displayed in lists
	DateFormat string `toml:"date_format"`
	// AnnotateIdleGaps shows the idle gap preceding each resume in timer history
	AnnotateIdleGaps bool `toml:"annotate_idle_gaps"`
	// Notifications enables desktop notifications for save failures and finishes
	Notifications bool `toml:"notifications"`
}

// DefaultConfig returns a Config with the defaults the app ships with.
func DefaultConfig() Config {
	return Config{
		Theme:            "dracula",
		DateFormat:       "Monday, Jan 2",
		AnnotateIdleGaps: true,
		Notifications:    true,
	}
}

// GetConfigPath returns the path to the config file.
// Uses the user config dir for a cross-platform XDG-compliant location.
// Creates the config directory if it doesn't exist.
func GetConfigPath() (string, error) {
	configDir, err := osutil.Provider.UserConfigDir()
	if err != nil {
		return "", err
	}

	appDir := filepath.Join(configDir, AppName)
	if err := osutil.Provider.MkdirAll(appDir, 0755); err != nil {
		return "", err
	}

	return filepath.Join(appDir, ConfigFile), nil
}

// Load reads and parses the config file at the given path.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

// LoadOrDefault loads the config file if it exists, otherwise returns the
// defaults. A missing file is not an error; an unreadable or malformed one is.
func LoadOrDefault(path string) (Config, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return Config{}, err
	}
	return Load(path)
}

// Save writes the config to the given path as TOML. Uses the atomic
// write-then-rename pattern so a crash never leaves a half-written file.
func Save(path string, cfg Config) error {
	tmpFile := path + ".tmp"
	f, err := os.OpenFile(tmpFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}

	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		_ = f.Close()
		_ = os.Remove(tmpFile)
		return err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmpFile)
		return err
	}

	return os.Rename(tmpFile, path)
}
