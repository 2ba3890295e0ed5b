package tui

import "github.com/charmbracelet/lipgloss"

// Palette for the report and confirmation lines. Kept small; the
// selector component carries its own styling.
var (
	colorAccent  = lipgloss.Color("39")  // blue
	colorMuted   = lipgloss.Color("245") // gray
	colorSuccess = lipgloss.Color("34")  // green
	colorWarning = lipgloss.Color("214") // orange
)

// LabelStyle renders the field names of the inspect and mappings reports.
var LabelStyle = lipgloss.NewStyle().Foreground(colorMuted)

// ValueStyle renders the values next to the labels, and the feature
// names in mapping listings.
var ValueStyle = lipgloss.NewStyle().Foreground(colorAccent)

// SuccessStyle renders the confirmation marker after a generate run.
var SuccessStyle = lipgloss.NewStyle().Foreground(colorSuccess)

// WarningStyle flags empty dictionaries and categories without matches.
var WarningStyle = lipgloss.NewStyle().Foreground(colorWarning)

// SymbolCheck marks a completed write.
const SymbolCheck = "✓"
