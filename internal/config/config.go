// Package config loads and saves quicknotes settings.
package config

import (
	"errors"
	"fmt"
	"slices"

	"github.com/marcus/quicknotes/internal/kv"
	"github.com/marcus/quicknotes/internal/notes"
	"github.com/marcus/quicknotes/internal/styles"
)

// Config is the root configuration structure.
type Config struct {
	Storage StorageConfig `json:"storage" yaml:"storage"`
	Notes   NotesConfig   `json:"notes" yaml:"notes"`
	Server  ServerConfig  `json:"server" yaml:"server"`
	UI      UIConfig      `json:"ui" yaml:"ui"`
}

// StorageConfig selects where notes are kept.
type StorageConfig struct {
	Backend string `json:"backend" yaml:"backend"` // file, sqlite, sqlite-pure, memory
	Path    string `json:"path" yaml:"path"`       // supports ~ expansion
	Watch   bool   `json:"watch" yaml:"watch"`     // reload when another process writes the file
}

// NotesConfig configures note creation.
type NotesConfig struct {
	IDScheme string `json:"idScheme" yaml:"idScheme"` // timestamp or uuid
}

// ServerConfig configures `quicknotes serve`.
type ServerConfig struct {
	Addr string `json:"addr" yaml:"addr"`
}

// UIConfig configures the terminal front-end.
type UIConfig struct {
	ShowHelp  bool        `json:"showHelp" yaml:"showHelp"`
	CardWidth int         `json:"cardWidth" yaml:"cardWidth"`
	Theme     ThemeConfig `json:"theme" yaml:"theme"`
}

// ThemeConfig names a color theme and optional per-color overrides.
type ThemeConfig struct {
	Name      string            `json:"name" yaml:"name"`
	Overrides map[string]string `json:"overrides,omitempty" yaml:"overrides,omitempty"`
}

const (
	// DefaultStorePath is where notes live unless configured otherwise.
	DefaultStorePath = "~/.local/share/quicknotes/notes.json"

	// DefaultAddr keeps the HTML front-end on loopback.
	DefaultAddr = "127.0.0.1:7070"

	DefaultCardWidth = 28
	MinCardWidth     = 16
)

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("invalid config")

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Storage: StorageConfig{
			Backend: kv.BackendFile,
			Path:    ExpandPath(DefaultStorePath),
			Watch:   true,
		},
		Notes: NotesConfig{
			IDScheme: notes.IDSchemeTimestamp,
		},
		Server: ServerConfig{
			Addr: DefaultAddr,
		},
		UI: UIConfig{
			ShowHelp:  true,
			CardWidth: DefaultCardWidth,
			Theme: ThemeConfig{
				Name:      styles.DefaultTheme,
				Overrides: make(map[string]string),
			},
		},
	}
}

// Validate checks config values for consistency.
func (c *Config) Validate() error {
	if !slices.Contains(kv.Backends(), c.Storage.Backend) {
		return fmt.Errorf("%w: storage.backend %q (want one of %v)", ErrInvalid, c.Storage.Backend, kv.Backends())
	}
	if c.Storage.Backend != kv.BackendMemory && c.Storage.Path == "" {
		return fmt.Errorf("%w: storage.path is empty", ErrInvalid)
	}
	switch c.Notes.IDScheme {
	case notes.IDSchemeTimestamp, notes.IDSchemeUUID:
	default:
		return fmt.Errorf("%w: notes.idScheme %q", ErrInvalid, c.Notes.IDScheme)
	}
	if c.Server.Addr == "" {
		return fmt.Errorf("%w: server.addr is empty", ErrInvalid)
	}
	if c.UI.CardWidth < MinCardWidth {
		c.UI.CardWidth = DefaultCardWidth
	}
	if !styles.IsValidTheme(c.UI.Theme.Name) {
		return fmt.Errorf("%w: ui.theme.name %q (want one of %v)", ErrInvalid, c.UI.Theme.Name, styles.ListThemes())
	}
	return nil
}
