// Package tui hosts the step-by-step resume editor in the terminal. The
// wizard owns ordering and validation; this package owns key handling and
// drawing.
package tui

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	colorCyan   = lipgloss.Color("36")  // Teal - primary actions
	colorGreen  = lipgloss.Color("35")  // Green - success
	colorYellow = lipgloss.Color("220") // Amber - warnings
	colorRed    = lipgloss.Color("167") // Soft red - errors
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorGray   = lipgloss.Color("245") // Gray - secondary text
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

var (
	// styleTitle for step headings.
	styleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// styleSelected for the focused field.
	styleSelected = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// styleValue for entered data.
	styleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// styleDim for hints and secondary text.
	styleDim = lipgloss.NewStyle().Foreground(colorDim)

	// styleLabel for field names.
	styleLabel = lipgloss.NewStyle().Foreground(colorGray)

	// styleError for validation failures.
	styleError = lipgloss.NewStyle().Foreground(colorRed)

	// styleSuccess for confirmations.
	styleSuccess = lipgloss.NewStyle().Foreground(colorGreen)

	// styleWarning for stale or pending state.
	styleWarning = lipgloss.NewStyle().Foreground(colorYellow)
)
