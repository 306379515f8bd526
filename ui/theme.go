package ui

import "github.com/charmbracelet/lipgloss"

// Rosé Pine Moon tones for the preview chrome (labels, headings, frames).
// The swatches themselves are painted with the organization's colors.
// https://rosepinetheme.com/palette/
var (
	colorMuted  = lipgloss.Color("#6e6a86")
	colorSubtle = lipgloss.Color("#908caa")
	colorText   = lipgloss.Color("#e0def4")
	colorLove   = lipgloss.Color("#eb6f92") // error, malformed input
	colorIris   = lipgloss.Color("#c4a7e7") // headings
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(colorIris)
	labelStyle   = lipgloss.NewStyle().Foreground(colorSubtle).Width(14)
	valueStyle   = lipgloss.NewStyle().Foreground(colorText)
	hintStyle    = lipgloss.NewStyle().Foreground(colorMuted).Italic(true)
	errorStyle   = lipgloss.NewStyle().Foreground(colorLove)
)
