package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	configDir  = ".config/quicknotes"
	configFile = "config.json"
)

// Environment overrides, applied after the file.
const (
	EnvStore   = "QUICKNOTES_STORE"
	EnvBackend = "QUICKNOTES_BACKEND"
	EnvAddr    = "QUICKNOTES_ADDR"
)

// rawConfig is the unmarshaling intermediary. Pointers distinguish an
// explicit false/zero from an absent key.
type rawConfig struct {
	Storage rawStorageConfig `json:"storage" yaml:"storage"`
	Notes   NotesConfig      `json:"notes" yaml:"notes"`
	Server  ServerConfig     `json:"server" yaml:"server"`
	UI      rawUIConfig      `json:"ui" yaml:"ui"`
}

type rawStorageConfig struct {
	Backend string `json:"backend" yaml:"backend"`
	Path    string `json:"path" yaml:"path"`
	Watch   *bool  `json:"watch" yaml:"watch"`
}

type rawUIConfig struct {
	ShowHelp  *bool       `json:"showHelp" yaml:"showHelp"`
	CardWidth *int        `json:"cardWidth" yaml:"cardWidth"`
	Theme     ThemeConfig `json:"theme" yaml:"theme"`
}

// testConfigPath overrides ConfigPath in tests.
var testConfigPath string

// SetTestConfigPath points ConfigPath at path. For tests only.
func SetTestConfigPath(path string) { testConfigPath = path }

// ResetTestConfigPath undoes SetTestConfigPath.
func ResetTestConfigPath() { testConfigPath = "" }

// Load loads configuration from the default location.
func Load() (*Config, error) {
	return LoadFrom("")
}

// LoadFrom loads configuration from a specific path.
// If path is empty, uses ~/.config/quicknotes/config.json. A missing file
// yields the defaults; a .yaml or .yml file is parsed as YAML.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = ConfigPath()
	}

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// defaults
		case err != nil:
			return nil, err
		default:
			var raw rawConfig
			if err := unmarshal(path, data, &raw); err != nil {
				return nil, fmt.Errorf("parse %s: %w", path, err)
			}
			mergeConfig(cfg, &raw)
		}
	}

	applyEnv(cfg)
	cfg.Storage.Path = ExpandPath(cfg.Storage.Path)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func unmarshal(path string, data []byte, v any) error {
	if isYAML(path) {
		return yaml.Unmarshal(data, v)
	}
	return json.Unmarshal(data, v)
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

// mergeConfig merges raw config values into the config.
func mergeConfig(cfg *Config, raw *rawConfig) {
	// Storage
	if raw.Storage.Backend != "" {
		cfg.Storage.Backend = raw.Storage.Backend
	}
	if raw.Storage.Path != "" {
		cfg.Storage.Path = raw.Storage.Path
	}
	if raw.Storage.Watch != nil {
		cfg.Storage.Watch = *raw.Storage.Watch
	}

	// Notes
	if raw.Notes.IDScheme != "" {
		cfg.Notes.IDScheme = raw.Notes.IDScheme
	}

	// Server
	if raw.Server.Addr != "" {
		cfg.Server.Addr = raw.Server.Addr
	}

	// UI
	if raw.UI.ShowHelp != nil {
		cfg.UI.ShowHelp = *raw.UI.ShowHelp
	}
	if raw.UI.CardWidth != nil {
		cfg.UI.CardWidth = *raw.UI.CardWidth
	}
	if raw.UI.Theme.Name != "" {
		cfg.UI.Theme.Name = raw.UI.Theme.Name
	}
	for k, v := range raw.UI.Theme.Overrides {
		cfg.UI.Theme.Overrides[k] = v
	}
}

// applyEnv applies QUICKNOTES_* environment overrides.
func applyEnv(cfg *Config) {
	if v := os.Getenv(EnvStore); v != "" {
		cfg.Storage.Path = v
	}
	if v := os.Getenv(EnvBackend); v != "" {
		cfg.Storage.Backend = v
	}
	if v := os.Getenv(EnvAddr); v != "" {
		cfg.Server.Addr = v
	}
}

// ExpandPath expands ~ to home directory.
func ExpandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// ConfigPath returns the path to the config file.
func ConfigPath() string {
	if testConfigPath != "" {
		return testConfigPath
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, configDir, configFile)
}
