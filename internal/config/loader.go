package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

const (
	fileName    = "config.yaml"
	xdgRelPath  = "threesus/" + fileName
	localPath   = "configs/threesus.yaml"
	dbRelPath   = "threesus/sessions.db"
	homeDirName = ".threesus"
)

// Load reads the configuration. Values missing from the file keep their
// defaults.
// Search order: customPath -> $XDG_CONFIG_HOME/threesus/config.yaml ->
// ~/.threesus/config.yaml -> ./configs/threesus.yaml -> embedded default
func Load(customPath string) (Config, error) {
	// Try custom path first
	if customPath != "" {
		cfg, err := readFile(customPath)
		if err != nil {
			return cfg, err
		}
		return cfg, cfg.Validate()
	}

	for _, path := range searchPaths() {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		cfg, err := readFile(path)
		if err != nil {
			return cfg, err
		}
		return cfg, cfg.Validate()
	}

	// Use embedded default YAML
	cfg := Default()
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// searchPaths lists the config locations after the custom path, most
// specific first.
func searchPaths() []string {
	var paths []string
	if p, err := xdg.SearchConfigFile(xdgRelPath); err == nil {
		paths = append(paths, p)
	}
	if p := userConfigPath(); p != "" {
		paths = append(paths, p)
	}
	return append(paths, localPath)
}

func readFile(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	cfg.Source = path
	return cfg, nil
}

// userConfigPath returns the path to the user config file, or empty if home
// is unavailable.
func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, homeDirName, fileName)
}

// DBPath returns the session database location: the configured path with
// ~ expanded, or the XDG data directory.
func (c *Config) DBPath() (string, error) {
	if c.Storage.Path == "" {
		p, err := xdg.DataFile(dbRelPath)
		if err != nil {
			return "", fmt.Errorf("failed to resolve data directory: %w", err)
		}
		return p, nil
	}

	path := c.Storage.Path
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", errors.New("cannot expand ~ without a home directory")
		}
		path = filepath.Join(home, path[2:])
	}
	return path, nil
}
