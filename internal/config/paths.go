package config

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	// DefaultDirName is the folder under ~/.config holding nadi's config file.
	DefaultDirName = "nadi"
)

// ResolveDir determines where nadi looks for config.toml, defaulting to
// ~/.config/nadi. The location can be overridden by exporting NADI_HOME.
func ResolveDir() (string, error) {
	if override, ok := os.LookupEnv("NADI_HOME"); ok {
		override = strings.TrimSpace(override)
		if override != "" {
			return normalizePath(override)
		}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", DefaultDirName), nil
}

func normalizePath(input string) (string, error) {
	if strings.HasPrefix(input, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		input = filepath.Join(home, strings.TrimPrefix(input, "~"))
	}
	return input, nil
}
