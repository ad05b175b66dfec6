package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/jask/ariakit/behaviors/list"
	"github.com/jask/ariakit/filtering"
	"github.com/jask/ariakit/patterns/combobox"
)

// Config holds application configuration.
type Config struct {
	Database DatabaseConfig
	Behavior BehaviorConfig
	Listbox  ListboxConfig
	Tree     TreeConfig
	Combobox ComboboxConfig
	UI       UIConfig
}

// DatabaseConfig holds sqlite settings.
type DatabaseConfig struct {
	Path string
}

// BehaviorConfig holds defaults shared by every list-based pattern.
type BehaviorConfig struct {
	TypeaheadDelay time.Duration `mapstructure:"typeahead_delay"`
	Wrap           bool
	SoftDisabled   bool   `mapstructure:"soft_disabled"`
	FocusMode      string `mapstructure:"focus_mode"`
	TextDirection  string `mapstructure:"text_direction"`
}

// ListboxConfig holds listbox defaults.
type ListboxConfig struct {
	Multi         bool
	SelectionMode string `mapstructure:"selection_mode"`
	Orientation   string
}

// TreeConfig holds tree defaults.
type TreeConfig struct {
	Multi           bool
	SelectionMode   string `mapstructure:"selection_mode"`
	Nav             bool
	MultiExpandable bool `mapstructure:"multi_expandable"`
}

// ComboboxConfig holds combobox defaults.
type ComboboxConfig struct {
	FilterMode string `mapstructure:"filter_mode"`
	Matching   string
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Theme   string
	LogFile string `mapstructure:"log_file"`
}

func configPath() string {
	if p := os.Getenv("ARIAKIT_CONFIG"); p != "" {
		return p
	}
	return filepath.Join(os.Getenv("HOME"), ".config", "ariakit", "config.toml")
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("database.path", filepath.Join(os.Getenv("HOME"), ".local", "share", "ariakit", "ariakit.db"))
	v.SetDefault("behavior.typeahead_delay", list.DefaultTypeaheadDelay)
	v.SetDefault("behavior.wrap", true)
	v.SetDefault("behavior.soft_disabled", true)
	v.SetDefault("behavior.focus_mode", "roving")
	v.SetDefault("behavior.text_direction", "ltr")
	v.SetDefault("listbox.multi", false)
	v.SetDefault("listbox.selection_mode", "follow")
	v.SetDefault("listbox.orientation", "vertical")
	v.SetDefault("tree.multi", false)
	v.SetDefault("tree.selection_mode", "explicit")
	v.SetDefault("tree.nav", false)
	v.SetDefault("tree.multi_expandable", true)
	v.SetDefault("combobox.filter_mode", "manual")
	v.SetDefault("combobox.matching", "prefix")
	v.SetDefault("ui.theme", "dark")
	v.SetDefault("ui.log_file", "")
}

// Load reads configuration from file and env. Env var overrides use prefix ARIAKIT_.
func Load() (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigType("toml")
	if p := os.Getenv("ARIAKIT_CONFIG"); p != "" {
		v.SetConfigFile(p)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "ariakit"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("ARIAKIT")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// Save writes the provided config to disk, creating the config directory if needed.
func Save(cfg Config) error {
	path := configPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("database.path", cfg.Database.Path)
	v.Set("behavior.typeahead_delay", cfg.Behavior.TypeaheadDelay.String())
	v.Set("behavior.wrap", cfg.Behavior.Wrap)
	v.Set("behavior.soft_disabled", cfg.Behavior.SoftDisabled)
	v.Set("behavior.focus_mode", cfg.Behavior.FocusMode)
	v.Set("behavior.text_direction", cfg.Behavior.TextDirection)
	v.Set("listbox.multi", cfg.Listbox.Multi)
	v.Set("listbox.selection_mode", cfg.Listbox.SelectionMode)
	v.Set("listbox.orientation", cfg.Listbox.Orientation)
	v.Set("tree.multi", cfg.Tree.Multi)
	v.Set("tree.selection_mode", cfg.Tree.SelectionMode)
	v.Set("tree.nav", cfg.Tree.Nav)
	v.Set("tree.multi_expandable", cfg.Tree.MultiExpandable)
	v.Set("combobox.filter_mode", cfg.Combobox.FilterMode)
	v.Set("combobox.matching", cfg.Combobox.Matching)
	v.Set("ui.theme", cfg.UI.Theme)
	v.Set("ui.log_file", cfg.UI.LogFile)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Validate lists settings that do not name a known value.
func (c Config) Validate() []string {
	var out []string
	if c.Behavior.TypeaheadDelay <= 0 {
		out = append(out, fmt.Sprintf("behavior.typeahead_delay must be positive, got %s", c.Behavior.TypeaheadDelay))
	}
	if _, ok := c.FocusMode(); !ok {
		out = append(out, fmt.Sprintf("behavior.focus_mode %q is not roving or activedescendant", c.Behavior.FocusMode))
	}
	if _, ok := c.TextDirection(); !ok {
		out = append(out, fmt.Sprintf("behavior.text_direction %q is not ltr or rtl", c.Behavior.TextDirection))
	}
	if _, ok := parseSelectionMode(c.Listbox.SelectionMode); !ok {
		out = append(out, fmt.Sprintf("listbox.selection_mode %q is not follow or explicit", c.Listbox.SelectionMode))
	}
	if _, ok := c.ListboxOrientation(); !ok {
		out = append(out, fmt.Sprintf("listbox.orientation %q is not vertical or horizontal", c.Listbox.Orientation))
	}
	if _, ok := parseSelectionMode(c.Tree.SelectionMode); !ok {
		out = append(out, fmt.Sprintf("tree.selection_mode %q is not follow or explicit", c.Tree.SelectionMode))
	}
	if _, ok := combobox.ParseFilterMode(c.Combobox.FilterMode); !ok {
		out = append(out, fmt.Sprintf("combobox.filter_mode %q is not manual, auto-select or highlight", c.Combobox.FilterMode))
	}
	if _, ok := filtering.ParseMode(c.Combobox.Matching); !ok {
		out = append(out, fmt.Sprintf("combobox.matching %q is not prefix or fuzzy", c.Combobox.Matching))
	}
	return out
}

// FocusMode parses behavior.focus_mode.
func (c Config) FocusMode() (list.FocusMode, bool) {
	switch strings.ToLower(c.Behavior.FocusMode) {
	case "roving":
		return list.Roving, true
	case "activedescendant":
		return list.ActiveDescendant, true
	}
	return list.Roving, false
}

// TextDirection parses behavior.text_direction.
func (c Config) TextDirection() (list.TextDirection, bool) {
	switch strings.ToLower(c.Behavior.TextDirection) {
	case "ltr":
		return list.LTR, true
	case "rtl":
		return list.RTL, true
	}
	return list.LTR, false
}

// ListboxOrientation parses listbox.orientation.
func (c Config) ListboxOrientation() (list.Orientation, bool) {
	switch strings.ToLower(c.Listbox.Orientation) {
	case "vertical":
		return list.Vertical, true
	case "horizontal":
		return list.Horizontal, true
	}
	return list.Vertical, false
}

// ListboxSelectionMode parses listbox.selection_mode.
func (c Config) ListboxSelectionMode() list.SelectionMode {
	m, _ := parseSelectionMode(c.Listbox.SelectionMode)
	return m
}

// TreeSelectionMode parses tree.selection_mode.
func (c Config) TreeSelectionMode() list.SelectionMode {
	m, _ := parseSelectionMode(c.Tree.SelectionMode)
	return m
}

// FilterMode parses combobox.filter_mode, falling back to manual.
func (c Config) FilterMode() combobox.FilterMode {
	m, _ := combobox.ParseFilterMode(c.Combobox.FilterMode)
	return m
}

// Matching parses combobox.matching, falling back to prefix.
func (c Config) Matching() filtering.Mode {
	m, _ := filtering.ParseMode(c.Combobox.Matching)
	return m
}

func parseSelectionMode(s string) (list.SelectionMode, bool) {
	switch strings.ToLower(s) {
	case "follow":
		return list.Follow, true
	case "explicit":
		return list.Explicit, true
	}
	return list.Follow, false
}
