package config

import (
	_ "embed"
)

//go:embed defaults/threesus.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Engine: EngineConfig{
			Name:  "expectimax",
			Depth: 3,
		},
		Assist: AssistConfig{
			ConfirmSwipe: false,
			Color:        true,
		},
		Storage: StorageConfig{
			Enabled: true,
		},
		Log: LogConfig{
			Level: "warn",
		},
		Source: "embedded",
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
