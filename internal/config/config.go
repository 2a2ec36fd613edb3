// Package config provides YAML-based configuration loading for the
// assistant: engine selection, console behaviour, the session archive and
// logging.
package config

import (
	"fmt"

	"github.com/charmbracelet/log"
)

// MaxDepth bounds the expectimax depth. Every ply multiplies the work by
// up to 48, and depth 4 already takes seconds per turn.
const MaxDepth = 4

// Config is the full assistant configuration.
type Config struct {
	Engine  EngineConfig  `yaml:"engine"`
	Assist  AssistConfig  `yaml:"assist"`
	Storage StorageConfig `yaml:"storage"`
	Log     LogConfig     `yaml:"log"`

	// Source is the file the configuration was read from, or "embedded".
	Source string `yaml:"-"`
}

// EngineConfig selects and tunes the decision engine.
type EngineConfig struct {
	Name    string   `yaml:"name"`
	Depth   int      `yaml:"depth"`
	Command string   `yaml:"command"` // only used by the external engine
	Args    []string `yaml:"args"`
}

// AssistConfig controls the console dialog.
type AssistConfig struct {
	ConfirmSwipe bool `yaml:"confirm_swipe"`
	Color        bool `yaml:"color"`
}

// StorageConfig controls the finished-session archive.
type StorageConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"` // empty means the XDG data directory
}

// LogConfig controls diagnostics on stderr.
type LogConfig struct {
	Level string `yaml:"level"`
}

// InvalidConfig reports a configuration value out of range.
type InvalidConfig struct {
	Field  string
	Reason string
}

func (e *InvalidConfig) Error() string {
	return fmt.Sprintf("config error: %s %s", e.Field, e.Reason)
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if c.Engine.Name == "" {
		return &InvalidConfig{"engine.name", "must not be empty"}
	}
	if c.Engine.Depth < 1 || c.Engine.Depth > MaxDepth {
		return &InvalidConfig{"engine.depth", fmt.Sprintf("must be between 1 and %d", MaxDepth)}
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return &InvalidConfig{"log.level", fmt.Sprintf("%q is not a log level", c.Log.Level)}
	}
	return nil
}

// LogLevel returns the parsed log level, falling back to warn.
func (c *Config) LogLevel() log.Level {
	lvl, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.WarnLevel
	}
	return lvl
}
