// Package render draws boxes, panes and overlays as strings for the
// bubbletea view.
package render

import "github.com/charmbracelet/lipgloss"

var (
	ColorText    lipgloss.Color = "#cdd6f4"
	ColorMuted   lipgloss.Color = "#a6adc8"
	ColorBorder  lipgloss.Color = "#585b70"
	ColorAccent  lipgloss.Color = "#89b4fa"
	ColorSuccess lipgloss.Color = "#a6e3a1"
	ColorError   lipgloss.Color = "#f38ba8"
	ColorWarn    lipgloss.Color = "#f9e2af"
)
