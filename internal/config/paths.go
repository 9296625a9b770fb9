package config

import (
	"os"
	"path/filepath"
)

// Paths holds the file system paths used by the application
type Paths struct {
	Home       string // ~/.marquee
	ConfigPath string // ~/.marquee/config.toml
	LogsRoot   string // ~/.marquee/logs
}

// DefaultPaths returns the default paths configuration
func DefaultPaths() (*Paths, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	marqueeHome := filepath.Join(home, ".marquee")

	return &Paths{
		Home:       marqueeHome,
		ConfigPath: filepath.Join(marqueeHome, "config.toml"),
		LogsRoot:   filepath.Join(marqueeHome, "logs"),
	}, nil
}
