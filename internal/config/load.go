package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

// Directory names under the per-user config root. macOS and Windows use the
// display name; XDG systems use the lowercase one.
const (
	appDisplayName = "AimLab"
	appDirName     = "aimlab"
	configFileName = "config.yaml"
)

// Load builds the configuration. Defaults are overlaid by the first config
// file found, then by command-line flags, and the result is validated.
func Load() (*Config, error) {
	cfg := Default()

	path := ConfigPath()
	if path == "" {
		path = findConfigFile()
	}
	if path != "" {
		if err := loadFromFile(cfg, path); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", path, err)
		}
	}

	applyFlags(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// searchPaths lists config file candidates, working directory first.
func searchPaths() []string {
	return []string{
		configFileName,
		ConfigFile(),
	}
}

func findConfigFile() string {
	for _, path := range searchPaths() {
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}
	return ""
}

// ConfigDir returns the per-user config directory for the running OS.
func ConfigDir() string {
	home, _ := os.UserHomeDir()
	return configDir(runtime.GOOS, os.Getenv, home)
}

// ConfigFile returns the default config file path inside ConfigDir.
func ConfigFile() string {
	return filepath.Join(ConfigDir(), configFileName)
}

func configDir(goos string, getenv func(string) string, home string) string {
	switch goos {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", appDisplayName)
	case "windows":
		if appData := getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, appDisplayName)
		}
		return filepath.Join(home, "AppData", "Roaming", appDisplayName)
	}
	if xdg := getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, appDirName)
	}
	return filepath.Join(home, ".config", appDirName)
}

// loadFromFile overlays a YAML file on cfg. Keys that match no setting are
// rejected so a misspelt option fails loudly. An empty file changes nothing.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}
