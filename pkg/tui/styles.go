package tui

import "github.com/charmbracelet/lipgloss"

// Glyphs for each node kind.
const (
	glyphContainer = "▸"
	glyphDataPoint = "●"
	glyphProcedure = "ƒ"
	glyphOther     = "·"
)

var (
	colorGreen  = lipgloss.Color("42")
	colorRed    = lipgloss.Color("196")
	colorYellow = lipgloss.Color("214")
	colorCyan   = lipgloss.Color("51")
	colorDim    = lipgloss.Color("240")
	colorWhite  = lipgloss.Color("255")
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorCyan).
			Padding(0, 1)

	rowNormal = lipgloss.NewStyle().
			Foreground(colorWhite)

	rowCurrent = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorYellow)

	rowDim = lipgloss.NewStyle().
		Faint(true)

	panelBorder = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorDim).
			Padding(0, 1)

	valueStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorGreen)

	errStyle = lipgloss.NewStyle().
			Foreground(colorRed)

	keyStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorCyan)

	keyDescStyle = lipgloss.NewStyle().
			Faint(true)
)

func glyph(kind string) string {
	switch kind {
	case "Container":
		return glyphContainer
	case "DataPoint":
		return glyphDataPoint
	case "Procedure":
		return glyphProcedure
	}
	return glyphOther
}
