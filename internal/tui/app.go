// Package tui is the bubbletea front end for a game session.
package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/jask/wordgame/internal/config"
	"github.com/jask/wordgame/internal/game"
	"github.com/jask/wordgame/internal/settings"
	"github.com/jask/wordgame/internal/widget"
)

// ErrTerminalTooSmall is reported when the player quits while the window is
// below the configured minimum size.
var ErrTerminalTooSmall = errors.New("terminal too small")

// App adapts a game.Session to bubbletea.
type App struct {
	ctx     context.Context
	cfg     config.UIConfig
	session *game.Session
	source  game.WordSource
	log     zerolog.Logger

	keys    keyMap
	help    help.Model
	spinner spinner.Model

	width  int
	height int

	status    string
	statusErr bool
	err       error
}

type wordsLoadedMsg struct {
	words []string
	err   error
}

// New returns an App that loads src into session on start.
func New(ctx context.Context, cfg config.UIConfig, session *game.Session, src game.WordSource, log zerolog.Logger) *App {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = spinnerStyle

	return &App{
		ctx:     ctx,
		cfg:     cfg,
		session: session,
		source:  src,
		log:     log,
		keys:    newKeyMap(),
		help:    help.New(),
		spinner: s,
	}
}

func (a *App) Init() tea.Cmd {
	return tea.Batch(a.loadWords(), a.spinner.Tick)
}

// loadWords reads the dictionary off the update loop. The session itself
// is only touched in Update.
func (a *App) loadWords() tea.Cmd {
	return func() tea.Msg {
		words, err := a.source.Words(a.ctx)
		return wordsLoadedMsg{words: words, err: err}
	}
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = m.Width
		a.height = m.Height
		a.help.Width = m.Width
	case spinner.TickMsg:
		// Stop ticking once the dictionary is in.
		if a.session.State() != game.StateLoading {
			return a, nil
		}
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(m)
		return a, cmd
	case wordsLoadedMsg:
		src := game.WordSource(game.Words(m.words))
		if m.err != nil {
			src = failedSource{m.err}
		}
		if err := a.session.Load(a.ctx, src); err != nil {
			a.err = err
			return a, tea.Quit
		}
		a.setStatus("", false)
	case tea.KeyMsg:
		return a.handleKey(m)
	}
	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ev, ok := a.keys.toEvent(msg)
	if !ok {
		return a, nil
	}
	if a.tooSmall() {
		if ev.Kind == widget.EventQuit {
			a.err = ErrTerminalTooSmall
			return a, tea.Quit
		}
		return a, nil
	}
	if a.session.State() == game.StateLoading {
		if ev.Kind == widget.EventQuit {
			return a, tea.Quit
		}
		return a, nil
	}

	prev := a.session.State()
	fb, err := a.session.HandleEvent(ev)
	if a.session.State() != prev {
		a.setStatus("", false)
	}
	switch {
	case errors.Is(err, settings.ErrInvalidLetterInput):
		a.setStatus(err.Error(), true)
	case errors.Is(err, game.ErrNoCandidateWords):
		a.setStatus("no matching words", true)
	case err != nil:
		a.log.Error().Err(err).Msg("session event failed")
		a.setStatus(err.Error(), true)
	case fb.Kind != game.FeedbackNone:
		a.setStatus(formatFeedback(fb), !fb.Good())
	}
	if a.session.Done() {
		return a, tea.Quit
	}
	return a, nil
}

func (a *App) setStatus(s string, isErr bool) {
	a.status = s
	a.statusErr = isErr
}

func (a *App) tooSmall() bool {
	if a.width == 0 && a.height == 0 {
		return false
	}
	return a.width < a.cfg.MinWidth || a.height < a.cfg.MinHeight
}

// Err returns the error that ended the program, if any.
func (a *App) Err() error { return a.err }

// Session exposes the running session.
func (a *App) Session() *game.Session { return a.session }

func formatFeedback(fb game.Feedback) string {
	if fb.Word == "" {
		return fb.Message()
	}
	return fmt.Sprintf("%s: %s", fb.Word, fb.Message())
}

type failedSource struct{ err error }

func (f failedSource) Words(context.Context) ([]string, error) { return nil, f.err }
