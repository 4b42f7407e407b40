// Package tui implements the interactive estimator: editable inputs on the
// left of the screen, a live summary and cash-flow chart recomputed on every
// committed edit.
package tui

import "github.com/charmbracelet/lipgloss"

// Palette. ANSI 256 codes so the view degrades cleanly on basic terminals.
const (
	ColorHeader    = lipgloss.Color("39")  // blue
	ColorLabel     = lipgloss.Color("245") // grey
	ColorValue     = lipgloss.Color("255") // white
	ColorMuted     = lipgloss.Color("240")
	ColorBorder    = lipgloss.Color("238")
	ColorHighlight = lipgloss.Color("213") // pink
	ColorOK        = lipgloss.Color("42")  // green
	ColorWarning   = lipgloss.Color("214") // orange
	ColorCritical  = lipgloss.Color("196") // red
	ColorSpinner   = lipgloss.Color("205")
)

// Icons.
const (
	IconArrowUp    = "↑"
	IconArrowDown  = "↓"
	IconArrowRight = "→"
	IconCursor     = "▌"
	IconFocus      = "▶"
	IconBar        = "█"
)

// Shared styles.
//
//nolint:gochecknoglobals // Style values are immutable and shared across views.
var (
	HeaderStyle   = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	LabelStyle    = lipgloss.NewStyle().Foreground(ColorLabel)
	ValueStyle    = lipgloss.NewStyle().Foreground(ColorValue).Bold(true)
	SubtleStyle   = lipgloss.NewStyle().Foreground(ColorMuted).Italic(true)
	OKStyle       = lipgloss.NewStyle().Foreground(ColorOK).Bold(true)
	WarningStyle  = lipgloss.NewStyle().Foreground(ColorWarning).Bold(true)
	CriticalStyle = lipgloss.NewStyle().Foreground(ColorCritical).Bold(true)
	FocusStyle    = lipgloss.NewStyle().Foreground(ColorHighlight).Bold(true)

	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorHeader).
			Border(lipgloss.NormalBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	TableHeaderStyle = lipgloss.NewStyle().
				Foreground(ColorHeader).
				Bold(true).
				BorderStyle(lipgloss.NormalBorder()).
				BorderForeground(ColorBorder).
				BorderBottom(true)
)
