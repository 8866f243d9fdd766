package config

import (
	"os"
	"path/filepath"
)

const (
	// EnvConfigPath is the environment variable for explicit config path
	EnvConfigPath = "WEAVER_CONFIG"
	// ConfigFileName is the default config file name
	ConfigFileName = "weaver.yaml"
	// ConfigDirName is the config directory name under XDG
	ConfigDirName = "weaver"
)

// FindConfigPath searches the standard locations for a config file:
//
//  1. $WEAVER_CONFIG (explicit path)
//  2. ./weaver.yaml (working directory)
//  3. $XDG_CONFIG_HOME/weaver/config.yaml, else ~/.config/weaver/config.yaml
//  4. /etc/weaver/config.yaml
//
// Returns an empty string when none exists.
func FindConfigPath() string {
	if path := os.Getenv(EnvConfigPath); path != "" && fileExists(path) {
		return path
	}

	candidates := []string{ConfigFileName}
	if dir := userConfigDir(); dir != "" {
		candidates = append(candidates, filepath.Join(dir, ConfigDirName, "config.yaml"))
	}
	candidates = append(candidates, filepath.Join("/etc", ConfigDirName, "config.yaml"))

	for _, path := range candidates {
		if !fileExists(path) {
			continue
		}
		if abs, err := filepath.Abs(path); err == nil {
			return abs
		}
		return path
	}
	return ""
}

// userConfigDir resolves the per-user config root: $XDG_CONFIG_HOME when
// set, otherwise ~/.config.
func userConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return xdg
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".config")
	}
	return ""
}

// DefaultConfigPath returns where a new config file should be written: the
// per-user config directory, falling back to the working directory.
func DefaultConfigPath() string {
	if dir := userConfigDir(); dir != "" {
		return filepath.Join(dir, ConfigDirName, "config.yaml")
	}
	return ConfigFileName
}

// EnsureConfigDir creates the directory for the given config path.
func EnsureConfigDir(configPath string) error {
	return os.MkdirAll(filepath.Dir(configPath), 0755)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
