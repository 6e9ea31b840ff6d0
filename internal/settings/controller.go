// Package settings drives the puzzle configuration screen.
package settings

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/jask/wordgame/internal/puzzle"
	"github.com/jask/wordgame/internal/widget"
)

// ErrInvalidLetterInput is returned when specific-letter entry is empty.
var ErrInvalidLetterInput = errors.New("enter at least one letter")

const (
	ModeRandom   = "random letters"
	ModeSpecific = "specific letters"
)

// Focus slots, top to bottom.
const (
	SlotMode = iota
	SlotLetters
	SlotMinLength
)

const vowels = "aeiouy"

// Options configures the choices offered on the settings screen.
type Options struct {
	LetterCounts       []int
	DefaultLetterCount int
	MinLengths         []int
	DefaultMinLength   int
	MaxManualLetters   int
}

// DefaultOptions mirrors the configuration defaults.
func DefaultOptions() Options {
	return Options{
		LetterCounts:       []int{5, 6, 7, 8, 9},
		DefaultLetterCount: 7,
		MinLengths:         []int{3, 4, 5, 6},
		DefaultMinLength:   4,
		MaxManualLetters:   12,
	}
}

// Controller composes the mode, letter and minimum-length widgets. Slot 2
// holds the letter-count selection in random mode and the letter input in
// specific mode.
type Controller struct {
	flow      *widget.Flow
	mode      *widget.Selection
	count     *widget.Selection
	letters   *widget.Input
	minLength *widget.Selection
	rng       *rand.Rand
}

// New builds a controller. rng supplies random letters; a nil rng uses a
// time-seeded source.
func New(opts Options, rng *rand.Rand) *Controller {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if opts.MaxManualLetters <= 0 {
		opts.MaxManualLetters = DefaultOptions().MaxManualLetters
	}
	c := &Controller{
		mode:      widget.NewSelection(ModeRandom, ModeSpecific),
		count:     widget.NewSelection(intOptions(opts.LetterCounts)...),
		letters:   widget.NewInput(opts.MaxManualLetters),
		minLength: widget.NewSelection(intOptions(opts.MinLengths)...),
		rng:       rng,
	}
	c.count.Select(strconv.Itoa(opts.DefaultLetterCount))
	c.minLength.Select(strconv.Itoa(opts.DefaultMinLength))
	c.flow = widget.NewFlow(c.mode, c.count, c.minLength)
	return c
}

// Handle applies one key event. On Enter it confirms the settings and
// returns the resulting spec with ok set. A failed confirm returns the
// error and leaves the controller active.
func (c *Controller) Handle(ev widget.Event) (spec puzzle.Spec, ok bool, err error) {
	if ev.Kind == widget.EventEnter {
		spec, err = c.Confirm()
		if err != nil {
			return puzzle.Spec{}, false, err
		}
		return spec, true, nil
	}
	before := c.mode.Index()
	c.flow.Dispatch(ev)
	if c.mode.Index() != before {
		c.syncLetterSlot()
	}
	return puzzle.Spec{}, false, nil
}

// Confirm builds a spec from the current widget values.
func (c *Controller) Confirm() (puzzle.Spec, error) {
	minLength, err := strconv.Atoi(c.minLength.Current())
	if err != nil {
		return puzzle.Spec{}, fmt.Errorf("minimum length %q: %w", c.minLength.Current(), err)
	}

	var letters string
	if c.Random() {
		n, err := strconv.Atoi(c.count.Current())
		if err != nil {
			return puzzle.Spec{}, fmt.Errorf("letter count %q: %w", c.count.Current(), err)
		}
		letters = RandomLetters(c.rng, n)
	} else {
		letters = strings.ToLower(c.letters.Submit())
	}
	if letters == "" {
		return puzzle.Spec{}, ErrInvalidLetterInput
	}
	// The first drawn or typed letter is the required one.
	return puzzle.New(letters, rune(letters[0]), minLength)
}

// Random reports whether random letters are selected.
func (c *Controller) Random() bool {
	return c.mode.Current() == ModeRandom
}

func (c *Controller) Flow() *widget.Flow { return c.flow }

func (c *Controller) Mode() *widget.Selection { return c.mode }

func (c *Controller) LetterCount() *widget.Selection { return c.count }

func (c *Controller) LetterInput() *widget.Input { return c.letters }

func (c *Controller) MinLength() *widget.Selection { return c.minLength }

func (c *Controller) syncLetterSlot() {
	if c.Random() {
		c.flow.Replace(SlotLetters, c.count)
		return
	}
	c.flow.Replace(SlotLetters, c.letters)
}

// RandomLetters returns n distinct lowercase letters in random order, with
// at least one vowel. n is clamped to [1, 26].
func RandomLetters(rng *rand.Rand, n int) string {
	if n < 1 {
		n = 1
	}
	if n > 26 {
		n = 26
	}
	perm := rng.Perm(26)[:n]
	out := make([]byte, n)
	for i, p := range perm {
		out[i] = byte('a' + p)
	}
	if !strings.ContainsAny(string(out), vowels) {
		out[rng.IntN(n)] = vowels[rng.IntN(len(vowels))]
	}
	return string(out)
}

func intOptions(values []int) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		out = append(out, strconv.Itoa(v))
	}
	return out
}
