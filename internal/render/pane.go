package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Pane is a titled rounded box of fixed height.
type Pane struct {
	Title   string
	Height  int
	Content string
	Focused bool
}

func (p Pane) Render(width int) string {
	if width <= 0 {
		return ""
	}
	h := p.Height
	if h < 3 {
		h = 3
	}
	if width < 4 {
		width = 4
	}

	border := ColorBorder
	if p.Focused {
		border = ColorSuccess
	}
	borderStyle := lipgloss.NewStyle().Foreground(border)
	titleStyle := lipgloss.NewStyle().Foreground(ColorText).Bold(true)
	contentStyle := lipgloss.NewStyle().Foreground(ColorText)

	titlePrefix := "  "
	if p.Focused {
		titlePrefix = "● "
	}

	innerWidth := width - 2
	contentWidth := innerWidth - 2

	title := strings.TrimSpace(titlePrefix + p.Title)
	titleText := ""
	if title != "" {
		titleText = " " + title + " "
		if ansi.StringWidth(titleText) > innerWidth {
			titleText = " " + ansi.Truncate(title, max(1, innerWidth-2), "") + " "
		}
	}
	dashes := innerWidth - ansi.StringWidth(titleText)
	if dashes < 0 {
		dashes = 0
	}
	leftDash := min(1, dashes)
	rightDash := dashes - leftDash

	v := borderStyle.Render("│")
	top := borderStyle.Render("╭") +
		borderStyle.Render(strings.Repeat("─", leftDash)) +
		titleStyle.Render(titleText) +
		borderStyle.Render(strings.Repeat("─", rightDash)) +
		borderStyle.Render("╮")

	lines := splitLines(p.Content)
	rows := make([]string, 0, h)
	rows = append(rows, top)
	for i := 0; i < h-2; i++ {
		line := ""
		if i < len(lines) {
			line = lines[i]
		}
		line = contentStyle.Render(ansi.Truncate(line, contentWidth, ""))
		rows = append(rows, v+" "+PadRight(line, contentWidth)+" "+v)
	}
	rows = append(rows, borderStyle.Render("╰"+strings.Repeat("─", innerWidth)+"╯"))
	return strings.Join(rows, "\n")
}

// Box draws a single-line bordered box around text, the way option
// choices and the input field are shown. Highlighted boxes use the
// accent color; unhighlighted ones draw only padding so the layout does
// not shift.
func Box(text string, highlighted bool) string {
	style := lipgloss.NewStyle().Padding(0, 1)
	if highlighted {
		return style.Border(lipgloss.RoundedBorder()).BorderForeground(ColorAccent).Render(text)
	}
	return style.Border(lipgloss.HiddenBorder()).Render(text)
}

// Center pads each line of s to be centered within width.
func Center(s string, width int) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, s)
}

// PadRight pads s with spaces to width display columns, truncating if
// longer.
func PadRight(s string, width int) string {
	s = ansi.Truncate(s, width, "")
	w := ansi.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

func splitLines(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return strings.Split(s, "\n")
}
