package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Popup draws body in a bordered card centered over base, keeping the
// base rows visible around it.
func Popup(base, body string, border lipgloss.Color, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	canvas := fitCanvas(base, width, height)
	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(1, 2).
		Render(body)
	cardLines := strings.Split(card, "\n")
	cardWidth := maxLineWidth(cardLines)
	if cardWidth == 0 {
		return canvas
	}
	x := max(0, (width-cardWidth)/2)
	y := max(0, (height-len(cardLines))/2)
	return overlayAt(canvas, cardLines, x, y, width, height)
}

func overlayAt(canvas string, card []string, x, y, width, height int) string {
	rows := splitToLines(canvas, height)
	cardWidth := maxLineWidth(card)
	for i, line := range card {
		row := y + i
		if row >= len(rows) {
			break
		}
		target := PadRight(rows[row], width)
		left := PadRight(ansi.Truncate(target, x, ""), x)
		mid := PadRight(line, cardWidth)
		pos := x + ansi.StringWidth(mid)
		right := ""
		if pos < width {
			right = dropColumns(target, pos)
		}
		rows[row] = left + mid + right
	}
	return strings.Join(rows, "\n")
}

func fitCanvas(s string, width, height int) string {
	lines := splitToLines(s, height)
	for i := range lines {
		lines[i] = PadRight(lines[i], width)
	}
	return strings.Join(lines, "\n")
}

func splitToLines(s string, height int) []string {
	lines := strings.Split(s, "\n")
	if height > 0 && len(lines) > height {
		lines = lines[:height]
	}
	for height > 0 && len(lines) < height {
		lines = append(lines, "")
	}
	return lines
}

func maxLineWidth(lines []string) int {
	w := 0
	for _, line := range lines {
		w = max(w, ansi.StringWidth(line))
	}
	return w
}

func dropColumns(s string, cols int) string {
	if cols <= 0 {
		return s
	}
	return strings.TrimPrefix(s, ansi.Truncate(s, cols, ""))
}
