package config

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"

	perrors "pista/src/errors"
)

const appName = "pista"

// GetConfigDir returns the configuration directory for pista:
// $XDG_CONFIG_HOME/pista, or the platform's config location when unset
// (~/.config on Linux, ~/Library/Application Support on macOS,
// %LOCALAPPDATA% on Windows).
func GetConfigDir() (string, error) {
	xdg.Reload()
	if xdg.ConfigHome == "" {
		return "", perrors.ErrConfigDir
	}
	return filepath.Join(xdg.ConfigHome, appName), nil
}

// ConfigFilePath returns the default location of the TOML config file
func ConfigFilePath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.toml"), nil
}

// EnsureConfigDir creates the config directory if it doesn't exist
func EnsureConfigDir() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return "", perrors.WrapWithContext(err, "%w: creating %s", perrors.ErrConfigDir, configDir)
	}
	return configDir, nil
}
