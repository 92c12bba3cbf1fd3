// Package paths provides centralized path handling for duscan.
// It implements XDG Base Directory specification compliance and
// provides a consistent API for all path operations in the codebase.
package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// Environment variable names
const (
	// EnvConfigDir overrides the XDG config directory for duscan
	EnvConfigDir = "DUSCAN_CONFIG_DIR"

	// EnvStateDir overrides the XDG state directory for duscan
	EnvStateDir = "DUSCAN_STATE_DIR"
)

// Default directories and files
const (
	// AppDirName is the directory name for duscan-specific files
	AppDirName = "duscan"

	// ConfigFileName is the name of the user configuration file
	ConfigFileName = "duscan.toml"

	// ConfigFileNameYAML is the YAML alternative to ConfigFileName
	ConfigFileNameYAML = "duscan.yaml"

	// RootConfigFileName is the per-scan-root override file
	RootConfigFileName = ".duscan.toml"

	// LogFileName is the name of the log file
	LogFileName = "duscan.log"
)

// ConfigDir returns the duscan configuration directory.
// DUSCAN_CONFIG_DIR takes precedence over the XDG config home.
func ConfigDir() string {
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		return dir
	}
	return filepath.Join(xdg.ConfigHome, AppDirName)
}

// ConfigFile returns the path of the user configuration file.
// A duscan.yaml next to duscan.toml wins only when the TOML file is absent.
func ConfigFile() string {
	dir := ConfigDir()
	tomlPath := filepath.Join(dir, ConfigFileName)
	if _, err := os.Stat(tomlPath); err == nil {
		return tomlPath
	}
	yamlPath := filepath.Join(dir, ConfigFileNameYAML)
	if _, err := os.Stat(yamlPath); err == nil {
		return yamlPath
	}
	return tomlPath
}

// RootConfigFile returns the path of the per-scan-root override file.
func RootConfigFile(root string) string {
	return filepath.Join(root, RootConfigFileName)
}

// LogFile returns the path of the log file.
// DUSCAN_STATE_DIR takes precedence over the XDG state home.
func LogFile() string {
	if dir := os.Getenv(EnvStateDir); dir != "" {
		return filepath.Join(dir, LogFileName)
	}
	return filepath.Join(xdg.StateHome, AppDirName, LogFileName)
}
