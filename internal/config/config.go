// Package config loads application settings from environment variables.
// Command-line flags are parsed in main and take precedence over the
// environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds the runtime settings for vinsly. Every field can be set
// through a VINSLY_* environment variable; zero values fall back to the
// documented defaults.
type Config struct {
	// Theme is the color theme name (charm, dracula, nord, ...).
	Theme string `env:"VINSLY_THEME" envDefault:"charm"`

	// RootDir is the directory scanned for projects. Empty means the
	// user's home directory.
	RootDir string `env:"VINSLY_ROOT_DIR"`

	// ScanDepth bounds project discovery below RootDir.
	ScanDepth int `env:"VINSLY_SCAN_DEPTH" envDefault:"12"`

	// IncludeProtected scans macOS-protected directories (Documents,
	// Desktop, Downloads) as well.
	IncludeProtected bool `env:"VINSLY_INCLUDE_PROTECTED"`

	// HistorySize caps the number of undoable operations kept.
	HistorySize int `env:"VINSLY_HISTORY_SIZE" envDefault:"20"`

	// LogFile enables file logging when set. The TUI owns the
	// terminal, so there is no stderr fallback.
	LogFile   string `env:"VINSLY_LOG_FILE"`
	LogLevel  string `env:"VINSLY_LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"VINSLY_LOG_FORMAT" envDefault:"text"`
}

// Load parses the environment into a Config.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
