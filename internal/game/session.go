// Package game runs one puzzle session: load the dictionary, configure a
// puzzle, accept guesses until every answer is found.
package game

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jask/wordgame/internal/index"
	"github.com/jask/wordgame/internal/puzzle"
	"github.com/jask/wordgame/internal/settings"
	"github.com/jask/wordgame/internal/widget"
)

var (
	// ErrEmptyDictionary is fatal: the word list was unreadable or empty.
	ErrEmptyDictionary = index.ErrEmptyDictionary
	// ErrNoCandidateWords ends a session whose puzzle has no answers.
	ErrNoCandidateWords = errors.New("no matching words")
)

// WordSource supplies the raw dictionary.
type WordSource interface {
	Words(ctx context.Context) ([]string, error)
}

// Words is an in-memory WordSource.
type Words []string

func (w Words) Words(context.Context) ([]string, error) {
	return []string(w), nil
}

// State is a step in the session lifecycle.
type State int

const (
	StateLoading State = iota
	StateConfiguring
	StatePlaying
	StateWon
	// StateEnded is terminal: the configured puzzle had no answers.
	StateEnded
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateConfiguring:
		return "configuring"
	case StatePlaying:
		return "playing"
	case StateWon:
		return "won"
	case StateEnded:
		return "ended"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Config carries session dependencies.
type Config struct {
	Settings       settings.Options
	MaxGuessLength int
	Rand           *rand.Rand
	Logger         zerolog.Logger
}

const defaultMaxGuessLength = 24

// Session owns the index, the puzzle spec, its candidate set and the words
// found so far. It is driven one event at a time.
type Session struct {
	id    string
	cfg   Config
	log   zerolog.Logger
	state State

	index    *index.Index
	settings *settings.Controller

	spec       puzzle.Spec
	candidates []string
	answers    map[string]struct{}
	found      []string
	foundSet   map[string]struct{}

	guess    *widget.Input
	feedback Feedback
	done     bool
}

// NewSession returns a session in the Loading state.
func NewSession(cfg Config) *Session {
	if cfg.MaxGuessLength <= 0 {
		cfg.MaxGuessLength = defaultMaxGuessLength
	}
	id := uuid.NewString()
	return &Session{
		id:    id,
		cfg:   cfg,
		log:   cfg.Logger.With().Str("session", id).Logger(),
		state: StateLoading,
		guess: widget.NewInput(cfg.MaxGuessLength),
	}
}

// Load builds the index from src and moves to Configuring. Any failure is
// reported as ErrEmptyDictionary.
func (s *Session) Load(ctx context.Context, src WordSource) error {
	if s.state != StateLoading {
		return fmt.Errorf("load: session is %s", s.state)
	}
	words, err := src.Words(ctx)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEmptyDictionary, err)
	}
	idx, err := index.Build(words)
	if err != nil {
		return err
	}
	s.log.Info().Int("words", idx.WordCount()).Int("signatures", idx.Len()).Msg("dictionary indexed")
	s.index = idx
	s.settings = settings.New(s.cfg.Settings, s.cfg.Rand)
	s.setState(StateConfiguring)
	return nil
}

// Start computes the candidate set for spec and begins play. An empty
// candidate set ends the session with ErrNoCandidateWords.
func (s *Session) Start(spec puzzle.Spec) error {
	if s.state != StateConfiguring {
		return fmt.Errorf("start: session is %s", s.state)
	}
	s.spec = spec
	s.settings = nil
	s.candidates = s.index.Query(spec.Letters(), spec.Required(), spec.MinLength())
	s.log.Info().Str("spec", spec.String()).Int("candidates", len(s.candidates)).Msg("puzzle configured")
	if len(s.candidates) == 0 {
		s.setState(StateEnded)
		return fmt.Errorf("%w for %s", ErrNoCandidateWords, spec)
	}
	s.answers = make(map[string]struct{}, len(s.candidates))
	for _, w := range s.candidates {
		s.answers[w] = struct{}{}
	}
	s.found = nil
	s.foundSet = make(map[string]struct{}, len(s.candidates))
	s.setState(StatePlaying)
	return nil
}

// HandleEvent applies one key event to whichever part of the session is
// active. Errors from settings confirmation are recoverable; a returned
// ErrNoCandidateWords means the session has ended.
func (s *Session) HandleEvent(ev widget.Event) (Feedback, error) {
	if ev.Kind == widget.EventQuit {
		s.done = true
		return Feedback{}, nil
	}
	switch s.state {
	case StateConfiguring:
		spec, ok, err := s.settings.Handle(ev)
		if err != nil {
			s.log.Debug().Err(err).Msg("settings rejected")
			return Feedback{}, err
		}
		if !ok {
			return Feedback{}, nil
		}
		return Feedback{}, s.Start(spec)
	case StatePlaying:
		return s.handlePlayingEvent(ev), nil
	case StateWon, StateEnded:
		s.done = true
	}
	return Feedback{}, nil
}

func (s *Session) handlePlayingEvent(ev widget.Event) Feedback {
	switch ev.Kind {
	case widget.EventEnter:
		word := s.guess.Submit()
		s.guess.Clear()
		if word == "" {
			return Feedback{}
		}
		return s.Guess(word)
	case widget.EventRune:
		s.guess.Insert(ev.Rune)
	case widget.EventBackspace:
		s.guess.Backspace()
	case widget.EventDelete:
		s.guess.Delete()
	case widget.EventLeft:
		s.guess.MoveLeft()
	case widget.EventRight:
		s.guess.MoveRight()
	}
	return Feedback{}
}

// Guess classifies word against the puzzle. Checks run in order: already
// found, correct, bad letters, too short, missing required letter,
// unrecognized.
func (s *Session) Guess(word string) Feedback {
	if s.state != StatePlaying {
		return Feedback{}
	}
	word = strings.ToLower(strings.TrimSpace(word))
	fb := s.classify(word)
	s.feedback = fb
	s.log.Debug().Str("guess", word).Str("result", fb.Kind.String()).Msg("guess")

	if fb.Kind == FeedbackCorrect && len(s.found) == len(s.candidates) {
		s.setState(StateWon)
	}
	return fb
}

func (s *Session) classify(word string) Feedback {
	fb := Feedback{Word: word}
	if _, ok := s.foundSet[word]; ok {
		fb.Kind = FeedbackAlreadyFound
		return fb
	}
	if _, ok := s.answers[word]; ok {
		s.foundSet[word] = struct{}{}
		s.found = append(s.found, word)
		sort.Strings(s.found)
		fb.Kind = FeedbackCorrect
		return fb
	}
	if bad := s.badLetters(word); len(bad) > 0 {
		fb.Kind = FeedbackBadLetters
		fb.BadLetters = bad
		return fb
	}
	if len(word) < s.spec.MinLength() {
		fb.Kind = FeedbackTooShort
		return fb
	}
	if !strings.ContainsRune(word, s.spec.Required()) {
		fb.Kind = FeedbackMissingRequiredLetter
		return fb
	}
	fb.Kind = FeedbackUnrecognizedWord
	fb.NearMiss = s.nearMiss(word)
	return fb
}

func (s *Session) badLetters(word string) []rune {
	seen := map[rune]bool{}
	var out []rune
	for _, r := range word {
		if s.spec.Has(r) || seen[r] {
			continue
		}
		seen[r] = true
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func (s *Session) nearMiss(word string) bool {
	for _, w := range s.candidates {
		if _, ok := s.foundSet[w]; ok {
			continue
		}
		if levenshtein.ComputeDistance(word, w) == 1 {
			return true
		}
	}
	return false
}

func (s *Session) setState(next State) {
	s.log.Info().Str("from", s.state.String()).Str("to", next.String()).Msg("state change")
	s.state = next
}

func (s *Session) ID() string { return s.id }

func (s *Session) State() State { return s.state }

// Done reports whether the player has asked to leave.
func (s *Session) Done() bool { return s.done }

func (s *Session) Spec() puzzle.Spec { return s.spec }

// Settings returns the settings controller while configuring, else nil.
func (s *Session) Settings() *settings.Controller { return s.settings }

// GuessInput returns the play-screen input field.
func (s *Session) GuessInput() *widget.Input { return s.guess }

// Feedback returns the response to the most recent guess.
func (s *Session) Feedback() Feedback { return s.feedback }

// FoundWords returns the found words in sorted order.
func (s *Session) FoundWords() []string {
	return append([]string(nil), s.found...)
}

// Total returns the size of the candidate set.
func (s *Session) Total() int { return len(s.candidates) }

// Index returns the loaded dictionary index.
func (s *Session) Index() *index.Index { return s.index }
