package config

import (
	"os"
	"path/filepath"
)

const appName = "gtkbridge"

// GetConfigDir returns $XDG_CONFIG_HOME/gtkbridge (default: ~/.config/gtkbridge).
// With ENV=dev it is .dev/gtkbridge under the working directory.
func GetConfigDir() (string, error) {
	if os.Getenv("ENV") == "dev" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", err
		}
		return filepath.Join(cwd, ".dev", appName), nil
	}

	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		configHome = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configHome, appName), nil
}
