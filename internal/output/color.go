// Package output provides styled terminal rendering helpers for folio.
package output

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Palette. Difficulty colours follow the usual easy/medium/hard convention
// and double as the live/cached/unavailable badge colours.
var (
	ColorPrimary = lipgloss.Color("#64b5f6")
	ColorEasy    = lipgloss.Color("#00b8a3")
	ColorMedium  = lipgloss.Color("#ffc01e")
	ColorHard    = lipgloss.Color("#ef4743")
	ColorMuted   = lipgloss.Color("#888888")
)

// Styles shared by every renderer. SetNoColor swaps them for plain ones.
var (
	// StyleHeader is used for section and table headers.
	StyleHeader lipgloss.Style

	// StyleSuccess marks live data, easy problems and improvements.
	StyleSuccess lipgloss.Style

	// StyleWarning marks cached data and medium problems.
	StyleWarning lipgloss.Style

	// StyleError marks unavailable data, hard problems and regressions.
	StyleError lipgloss.Style

	// StyleMuted is used for rules, labels and secondary text.
	StyleMuted lipgloss.Style

	// StyleBold is used for names and titles.
	StyleBold lipgloss.Style

	// StyleAccent marks featured entries and language bars.
	StyleAccent lipgloss.Style
)

var noColor bool

func init() {
	applyStyles(false)
}

func applyStyles(plain bool) {
	if plain {
		p := lipgloss.NewStyle()
		StyleHeader, StyleSuccess, StyleWarning, StyleError = p, p, p, p
		StyleMuted, StyleBold, StyleAccent = p, p, p
		return
	}
	StyleHeader = lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true)
	StyleSuccess = lipgloss.NewStyle().Foreground(ColorEasy)
	StyleWarning = lipgloss.NewStyle().Foreground(ColorMedium)
	StyleError = lipgloss.NewStyle().Foreground(ColorHard)
	StyleMuted = lipgloss.NewStyle().Foreground(ColorMuted)
	StyleBold = lipgloss.NewStyle().Bold(true)
	StyleAccent = lipgloss.NewStyle().Foreground(ColorPrimary)
}

// SetNoColor disables or re-enables color output globally.
func SetNoColor(disabled bool) {
	noColor = disabled
	applyStyles(disabled)
}

// IsNoColor returns whether color output is currently disabled.
func IsNoColor() bool {
	return noColor
}

// ColorEnabled decides whether f should receive colour: the config must
// allow it, NO_COLOR must be unset and f must be a terminal.
func ColorEnabled(f *os.File, configured bool) bool {
	if !configured {
		return false
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
