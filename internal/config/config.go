// Package config loads presenter settings from a TOML file in the user's
// XDG config directory.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/adrg/xdg"
	"github.com/pelletier/go-toml/v2"

	"termdeck/internal/nav"
)

// RelPath is the config file location relative to the XDG config home.
const RelPath = "termdeck/config.toml"

// Config is the user's configuration.
type Config struct {
	SlidesDir string              `toml:"slides_dir"`
	LogFile   string              `toml:"log_file"`
	Presenter PresenterConfig     `toml:"presenter"`
	Keys      map[string][]string `toml:"keys"`
}

// PresenterConfig holds presentation defaults.
type PresenterConfig struct {
	NotesHeight int   `toml:"notes_height"`    // Notes panel rows, 2 to 20 (default: 6)
	ScrollStep  int   `toml:"scroll_step"`     // Lines per scroll key (default: 3)
	ShowNotes   bool  `toml:"show_notes"`      // Open the notes panel at start
	ProgressBar bool  `toml:"progress_bar"`    // Draw a progress bar under the status bar
	Watch       *bool `toml:"watch,omitempty"` // Reload when slide files change (default: true)
}

// WatchEnabled reports whether slide reloading is on.
func (p PresenterConfig) WatchEnabled() bool {
	return p.Watch == nil || *p.Watch
}

// Actions lists every bindable action name.
var Actions = []string{
	nav.KeyNext.String(),
	nav.KeyPrev.String(),
	nav.KeyFirst.String(),
	nav.KeyLast.String(),
	nav.KeyGoto.String(),
	nav.KeyScrollUp.String(),
	nav.KeyScrollDown.String(),
	nav.KeyToggleNotes.String(),
	nav.KeyGrowNotes.String(),
	nav.KeyShrinkNotes.String(),
	nav.KeyEnterIndex.String(),
	nav.KeyUp.String(),
	nav.KeyDown.String(),
	nav.KeyConfirm.String(),
	nav.KeyCancel.String(),
	nav.KeyHelp.String(),
	nav.KeyRefresh.String(),
	nav.KeyQuit.String(),
	nav.KeyBackspace.String(),
	nav.KeyEnter.String(),
}

// DefaultKeys returns the built-in key bindings, keyed by action name.
func DefaultKeys() map[string][]string {
	return map[string][]string{
		"next":         {"n", " ", "right", "enter"},
		"prev":         {"p", "left", "backspace"},
		"first":        {"f"},
		"last":         {"l"},
		"goto":         {"g"},
		"scroll_down":  {"j", "down"},
		"scroll_up":    {"k", "up"},
		"toggle_notes": {"s"},
		"grow_notes":   {"+", "="},
		"shrink_notes": {"-", "_"},
		"index":        {"i"},
		"help":         {"h", "?"},
		"refresh":      {"r"},
		"quit":         {"q", "x", "esc", "ctrl+c"},
		"up":           {"k", "up"},
		"down":         {"j", "down"},
		"confirm":      {"enter", " "},
		"cancel":       {"q", "esc", "i"},
		"backspace":    {"backspace"},
		"enter":        {"enter"},
	}
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		SlidesDir: "slides",
		Presenter: PresenterConfig{
			NotesHeight: nav.DefaultNotesHeight,
			ScrollStep:  nav.DefaultScrollStep,
		},
		Keys: DefaultKeys(),
	}
}

// Path returns the config file path, creating parent directories.
func Path() (string, error) {
	return xdg.ConfigFile(RelPath)
}

// LoadUserConfig loads the config from the XDG config directories. When no
// config exists yet, the defaults are written to the user config path and
// returned.
func LoadUserConfig() (*Config, string, error) {
	path, err := xdg.SearchConfigFile(RelPath)
	if err != nil {
		return createDefaultConfig()
	}
	cfg, err := Load(path)
	return cfg, path, err
}

func createDefaultConfig() (*Config, string, error) {
	path, err := Path()
	if err != nil {
		return nil, "", fmt.Errorf("failed to get config path: %w", err)
	}
	cfg := DefaultConfig()
	if err := Write(cfg, path); err != nil {
		return nil, "", err
	}
	return cfg, path, nil
}

// Load reads the config at path, filling unset values with defaults.
func Load(path string) (*Config, error) {
	// #nosec G304 - reading a user supplied config file is intentional
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Parse decodes TOML config data and validates it.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	fillMissing(&cfg, DefaultConfig())
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func fillMissing(cfg, defaults *Config) {
	if cfg.SlidesDir == "" {
		cfg.SlidesDir = defaults.SlidesDir
	}
	if cfg.Presenter.NotesHeight == 0 {
		cfg.Presenter.NotesHeight = defaults.Presenter.NotesHeight
	}
	if cfg.Presenter.ScrollStep == 0 {
		cfg.Presenter.ScrollStep = defaults.Presenter.ScrollStep
	}
	if cfg.Keys == nil {
		cfg.Keys = make(map[string][]string)
	}
	for action, keys := range defaults.Keys {
		if len(cfg.Keys[action]) == 0 {
			cfg.Keys[action] = keys
		}
	}
}

// Validate reports every invalid setting in one error.
func (c *Config) Validate() error {
	var errs []error
	if h := c.Presenter.NotesHeight; h < nav.MinNotesHeight || h > nav.MaxNotesHeight {
		errs = append(errs, fmt.Errorf("presenter.notes_height: %d is outside %d..%d", h, nav.MinNotesHeight, nav.MaxNotesHeight))
	}
	if c.Presenter.ScrollStep < 1 {
		errs = append(errs, fmt.Errorf("presenter.scroll_step: must be positive, got %d", c.Presenter.ScrollStep))
	}

	known := make(map[string]bool, len(Actions))
	for _, a := range Actions {
		known[a] = true
	}
	var unknown []string
	for action := range c.Keys {
		if !known[action] {
			unknown = append(unknown, action)
		}
	}
	sort.Strings(unknown)
	for _, action := range unknown {
		errs = append(errs, fmt.Errorf("keys.%s: unknown action", action))
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid configuration: %w", errors.Join(errs...))
	}
	return nil
}

// Write stores cfg at path with a short header, creating directories as
// needed.
func Write(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	var sb strings.Builder
	sb.WriteString("# termdeck configuration\n")
	sb.WriteString("#\n")
	sb.WriteString("# slides_dir: directory of *.md slides used when none is given\n")
	sb.WriteString("# presenter.notes_height: notes panel rows, 2 to 20\n")
	sb.WriteString("# presenter.watch: reload slides when files change\n")
	sb.WriteString("# keys: action = [\"key\", ...]\n\n")
	sb.Write(data)

	if err := os.WriteFile(path, []byte(sb.String()), 0o600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Overrides are command line values that take precedence over the file.
// Zero values leave the config untouched.
type Overrides struct {
	SlidesDir   string
	LogFile     string
	NotesHeight int
	ScrollStep  int
	ShowNotes   bool
	ProgressBar bool
	NoWatch     bool
}

// ApplyOverrides merges o into cfg and validates the result.
func ApplyOverrides(cfg *Config, o Overrides) error {
	if o.SlidesDir != "" {
		cfg.SlidesDir = o.SlidesDir
	}
	if o.LogFile != "" {
		cfg.LogFile = o.LogFile
	}
	if o.NotesHeight != 0 {
		cfg.Presenter.NotesHeight = o.NotesHeight
	}
	if o.ScrollStep != 0 {
		cfg.Presenter.ScrollStep = o.ScrollStep
	}
	if o.ShowNotes {
		cfg.Presenter.ShowNotes = true
	}
	if o.ProgressBar {
		cfg.Presenter.ProgressBar = true
	}
	if o.NoWatch {
		off := false
		cfg.Presenter.Watch = &off
	}
	return cfg.Validate()
}
