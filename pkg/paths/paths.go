// Package paths provides centralized path handling for dotboot.
// It resolves the home directory, expands ~ in configured paths and
// locates dotboot's XDG directories.
package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/dotboot/pkg/errors"
)

// Environment variable names
const (
	// EnvHome is the standard home directory variable
	EnvHome = "HOME"

	// EnvConfigDir overrides the XDG config directory for dotboot
	EnvConfigDir = "DOTBOOT_CONFIG_DIR"
)

const (
	// AppDirName is the directory name used under the XDG base directories
	AppDirName = "dotboot"

	// ConfigFileName is the optional user configuration file looked up in ConfigDir
	ConfigFileName = "config.toml"
)

// HomeDir returns the user's home directory.
// It first tries os.UserHomeDir(), then falls back to the HOME environment variable.
// If both fail, it returns an error rather than using dangerous defaults.
func HomeDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err == nil && homeDir != "" {
		return homeDir, nil
	}

	if homeDir = os.Getenv(EnvHome); homeDir != "" {
		return homeDir, nil
	}

	return "", errors.New(errors.ErrHomeResolve,
		"unable to determine home directory: neither os.UserHomeDir() nor HOME are available")
}

// ExpandHome expands a leading ~ against home. Paths like ~other are
// returned unchanged.
func ExpandHome(path, home string) string {
	if path == "" || path[0] != '~' {
		return path
	}

	if len(path) == 1 {
		return home
	}

	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(home, path[2:])
	}

	return path
}

// ConfigDir returns dotboot's configuration directory, honouring
// DOTBOOT_CONFIG_DIR before the XDG default.
func ConfigDir() string {
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		home, _ := HomeDir()
		return ExpandHome(dir, home)
	}
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, AppDirName)
	}
	return filepath.Join(xdg.ConfigHome, AppDirName)
}

// DefaultConfigFile returns the path of the optional user configuration file
func DefaultConfigFile() string {
	return filepath.Join(ConfigDir(), ConfigFileName)
}
