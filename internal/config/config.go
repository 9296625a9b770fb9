package config

import (
	"errors"
	"io/fs"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Config holds the application configuration. Every field has a working
// default; a config file only overrides what it mentions.
type Config struct {
	// Width is the viewport size in display cells.
	Width int `toml:"width"`
	// WaitMs is the delay between frames in milliseconds.
	WaitMs int `toml:"wait_ms"`
	// Filler is the padding string; its first rune is used.
	Filler string `toml:"filler"`
	// Direction picks the scroll variant: "left" or "right".
	Direction string `toml:"direction"`
	// Prefix and Suffix frame the marquee line.
	Prefix string `toml:"prefix"`
	Suffix string `toml:"suffix"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Width:     40,
		WaitMs:    300,
		Filler:    " ",
		Direction: "right",
		Prefix:    ".",
		Suffix:    ".",
	}
}

// Load loads config overrides from ~/.marquee/config.toml if present.
// A missing file is not an error.
func Load() (*Config, *Paths, error) {
	paths, err := DefaultPaths()
	if err != nil {
		return nil, nil, err
	}
	cfg := DefaultConfig()

	data, err := os.ReadFile(paths.ConfigPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, paths, nil
		}
		return nil, nil, err
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, nil, err
	}
	return cfg, paths, nil
}

// LoadFrom behaves like Load but reads an explicit file path. Used by
// tests and the -config flag.
func LoadFrom(path string) (*Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, err
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Wait converts the configured frame delay to a duration.
func (c *Config) Wait() time.Duration {
	return time.Duration(c.WaitMs) * time.Millisecond
}

// FillerRune returns the first rune of the configured filler, falling
// back to space when the string is empty.
func (c *Config) FillerRune() rune {
	for _, r := range c.Filler {
		return r
	}
	return ' '
}
