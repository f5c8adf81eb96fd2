// Package term resolves the effective color profile for console output.
// The auto mode honors NO_COLOR, dumb terminals, and whether stderr is a
// TTY; always/never override detection in both directions.
package term

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/framefold/instancer/internal/config"
)

var enabled bool

// Profile maps the configured color mode to a termenv profile.
func Profile(mode config.ColorMode) termenv.Profile {
	switch mode {
	case config.ColorAlways:
		return termenv.ANSI256
	case config.ColorNever:
		return termenv.Ascii
	}
	if os.Getenv("NO_COLOR") != "" || strings.ToLower(os.Getenv("TERM")) == "dumb" {
		return termenv.Ascii
	}
	if !IsTerminal(os.Stderr) {
		return termenv.Ascii
	}
	return termenv.ColorProfile()
}

// Configure applies the resolved profile to the default lipgloss renderer
// so every styled string in the process agrees with the logger.
func Configure(mode config.ColorMode) {
	p := Profile(mode)
	lipgloss.SetColorProfile(p)
	enabled = p != termenv.Ascii
}

// Enabled reports whether Configure resolved to a colored profile.
func Enabled() bool { return enabled }

// IsTerminal reports whether f is a character device.
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}
