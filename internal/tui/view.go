package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jask/wordgame/internal/game"
	"github.com/jask/wordgame/internal/render"
	"github.com/jask/wordgame/internal/widget"
)

var (
	titleStyle    = lipgloss.NewStyle().Foreground(render.ColorAccent).Bold(true)
	mutedStyle    = lipgloss.NewStyle().Foreground(render.ColorMuted)
	letterStyle   = lipgloss.NewStyle().Foreground(render.ColorText).Bold(true)
	requiredStyle = lipgloss.NewStyle().Foreground(render.ColorWarn).Bold(true).Underline(true)
	goodStyle     = lipgloss.NewStyle().Foreground(render.ColorSuccess)
	badStyle      = lipgloss.NewStyle().Foreground(render.ColorError)
	cursorStyle   = lipgloss.NewStyle().Reverse(true)
	spinnerStyle  = lipgloss.NewStyle().Foreground(render.ColorAccent)
)

const inputWidth = 24

func (a *App) View() string {
	w, h := a.size()
	if a.tooSmall() {
		msg := fmt.Sprintf("Terminal too small: %dx%d, need at least %dx%d.\nResize the window or press esc to quit.",
			a.width, a.height, a.cfg.MinWidth, a.cfg.MinHeight)
		return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, badStyle.Render(msg))
	}

	switch a.session.State() {
	case game.StateLoading:
		loading := a.spinner.View() + " " + mutedStyle.Render("Loading...")
		return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, loading)
	case game.StateConfiguring:
		return a.renderSettings(w)
	case game.StateWon:
		body := goodStyle.Render(fmt.Sprintf("You found all %d words!", a.session.Total())) +
			"\n\n" + mutedStyle.Render("press any key to exit")
		return render.Popup(a.renderPlaying(w, h), body, render.ColorSuccess, w, h)
	case game.StateEnded:
		spec := a.session.Spec()
		body := badStyle.Render("No matching words") + "\n\n" +
			fmt.Sprintf("letters %s, required %c, minimum %d",
				strings.ToUpper(spec.Letters()), spec.Required(), spec.MinLength()) +
			"\n\n" + mutedStyle.Render("press any key to exit")
		return render.Popup("", body, render.ColorError, w, h)
	default:
		return a.renderPlaying(w, h)
	}
}

func (a *App) size() (int, int) {
	w, h := a.width, a.height
	if w <= 0 {
		w = a.cfg.MinWidth
	}
	if h <= 0 {
		h = a.cfg.MinHeight
	}
	return w, h
}

func (a *App) renderSettings(width int) string {
	c := a.session.Settings()
	flow := c.Flow()

	modes := c.Mode()
	modeRow := optionRow(modes, " or ")

	var letterTitle, letterRow string
	if c.Random() {
		letterTitle = "Number of letters"
		letterRow = optionRow(c.LetterCount(), " ")
	} else {
		letterTitle = fmt.Sprintf("Letters (up to %d, first is required)", c.LetterInput().MaxLength())
		letterRow = render.Box(renderInput(c.LetterInput(), inputWidth, c.LetterInput().Focused()), true)
	}

	panes := []render.Pane{
		{Title: "Puzzle", Height: 5, Content: modeRow},
		{Title: letterTitle, Height: 5, Content: letterRow},
		{Title: "Minimum word length", Height: 5, Content: optionRow(c.MinLength(), " ")},
	}
	rows := []string{titleStyle.Render("New puzzle"), ""}
	for i, p := range panes {
		p.Focused = flow.ActiveIndex() == i
		rows = append(rows, p.Render(width))
	}
	rows = append(rows, a.statusLine(), "", a.help.View(settingsHelp{a.keys}))
	return strings.Join(rows, "\n")
}

func optionRow(sel *widget.Selection, sep string) string {
	opts := sel.Options()
	parts := make([]string, 0, 2*len(opts))
	for i, opt := range opts {
		if i > 0 {
			parts = append(parts, sep)
		}
		parts = append(parts, render.Box(opt, i == sel.Index()))
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, parts...)
}

func renderInput(in *widget.Input, width int, focused bool) string {
	text := []rune(in.Submit())
	cur := in.Cursor()
	var b strings.Builder
	b.WriteString(string(text[:cur]))
	if focused {
		if cur < len(text) {
			b.WriteString(cursorStyle.Render(string(text[cur])))
			b.WriteString(string(text[cur+1:]))
		} else {
			b.WriteString(cursorStyle.Render(" "))
		}
	} else {
		b.WriteString(string(text[cur:]))
	}
	return render.PadRight(b.String(), width)
}

func (a *App) renderPlaying(width, height int) string {
	spec := a.session.Spec()

	letters := make([]string, 0, len(spec.Letters()))
	for _, r := range spec.Letters() {
		l := strings.ToUpper(string(r))
		if r == spec.Required() {
			letters = append(letters, requiredStyle.Render(l))
			continue
		}
		letters = append(letters, letterStyle.Render(l))
	}
	letterRow := strings.Join(letters, "  ")
	hint := mutedStyle.Render(fmt.Sprintf("words of %d+ letters using %c", spec.MinLength(), spec.Required()))

	playing := a.session.State() == game.StatePlaying
	inputBox := render.Box(renderInput(a.session.GuessInput(), inputWidth, playing), playing)

	header := []string{
		render.Center(letterRow, width),
		render.Center(hint, width),
		render.Center(inputBox, width),
		render.Center(a.statusLine(), width),
	}
	footer := a.help.View(playHelp{a.keys})

	used := 0
	for _, s := range header {
		used += lipgloss.Height(s)
	}
	paneHeight := max(3, height-used-lipgloss.Height(footer)-1)

	found := a.session.FoundWords()
	lines, overflow := render.WrapWords(found, width-4, paneHeight-2)
	if overflow > 0 {
		lines, overflow = render.WrapWords(found, width-4, paneHeight-3)
		lines = append(lines, mutedStyle.Render(fmt.Sprintf("... and %d more", overflow)))
	}
	pane := render.Pane{
		Title:   fmt.Sprintf("Found %d / %d", len(found), a.session.Total()),
		Height:  paneHeight,
		Content: strings.Join(lines, "\n"),
	}

	return strings.Join(append(header, pane.Render(width), footer), "\n")
}

func (a *App) statusLine() string {
	if a.status == "" {
		return ""
	}
	if a.statusErr {
		return badStyle.Render(a.status)
	}
	return goodStyle.Render(a.status)
}
