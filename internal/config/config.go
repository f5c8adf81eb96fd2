// Package config holds runtime configuration: defaults, file/env loading
// via viper, and validation. Flag overrides are applied by the cli package
// after Load, so defaults hold unless the operator sets something.
package config

import (
	"errors"
	"fmt"
	"time"
)

// --- Enum types for validated string fields ---

// LayoutMode selects the container's auto-layout direction.
type LayoutMode string

const (
	LayoutHorizontal LayoutMode = "horizontal" // Row that wraps (default).
	LayoutVertical   LayoutMode = "vertical"   // Single column.
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// Config holds all runtime settings. It is populated by [DefaultConfig],
// overlaid by [Load] (config file + environment), then by CLI flags, and
// passed by pointer to the packages that need it.
type Config struct {
	// Paths (DocumentPath is set from the positional argument).
	DocumentPath string `mapstructure:"-"`
	OutputPath   string `mapstructure:"output"` // Default: save in place.

	// Scan settings.
	PageName string   `mapstructure:"page"`     // Default: first page.
	Pattern  string   `mapstructure:"pattern"`  // Empty: persisted pattern, then built-in default.
	Keywords []string `mapstructure:"keywords"` // Empty: built-in vocabulary.

	// Container settings.
	ContainerName string     `mapstructure:"container"` // Default: "Generated Instances".
	Layout        LayoutMode `mapstructure:"layout"`
	Spacing       float64    `mapstructure:"spacing"`       // Gap between instances.
	Padding       float64    `mapstructure:"padding"`       // Inner container padding.
	MaxRowWidth   float64    `mapstructure:"max_row_width"` // Wrap width for horizontal layout.
	Gutter        float64    `mapstructure:"gutter"`        // Clearance from existing content.

	// Behavior flags.
	DryRun  bool `mapstructure:"dry_run"`
	Verbose bool `mapstructure:"verbose"`

	// Display and logging.
	ColorMode ColorMode `mapstructure:"color"`
	LogFile   string    `mapstructure:"log_file"` // Optional log file path.

	// State persistence.
	StateFile string `mapstructure:"state_file"` // Empty: per-user default path.

	// Watch mode.
	WatchDebounce time.Duration `mapstructure:"watch_debounce"`

	// CheckOnly relaxes path validation for the diagnostics command.
	CheckOnly bool `mapstructure:"-"`
}

// DefaultConfig returns a Config with all defaults. Used as the base
// before file, environment, and flag overrides.
func DefaultConfig() Config {
	return Config{
		ContainerName: "Generated Instances",
		Layout:        LayoutHorizontal,
		Spacing:       20,
		Padding:       20,
		MaxRowWidth:   800,
		Gutter:        100,
		ColorMode:     ColorAuto,
		WatchDebounce: 500 * time.Millisecond,
	}
}

// Validate checks enum fields and numeric ranges. Outside check mode it
// also requires a document path.
func (c *Config) Validate() error {
	switch c.Layout {
	case LayoutHorizontal, LayoutVertical:
		// valid
	default:
		return errors.New("invalid layout (use 'horizontal' or 'vertical')")
	}

	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return errors.New("invalid color mode (use 'auto', 'always', or 'never')")
	}

	if c.Spacing < 0 || c.Padding < 0 {
		return errors.New("spacing and padding must not be negative")
	}
	if c.MaxRowWidth <= 0 {
		return errors.New("max row width must be positive")
	}
	if c.Gutter < 0 {
		return errors.New("gutter must not be negative")
	}
	if c.ContainerName == "" {
		return errors.New("container name must not be empty")
	}
	if c.WatchDebounce <= 0 {
		return fmt.Errorf("watch debounce must be positive, got %s", c.WatchDebounce)
	}

	if c.CheckOnly {
		return nil
	}
	if c.DocumentPath == "" {
		return errors.New("need a document file argument")
	}
	return nil
}
