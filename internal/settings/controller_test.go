package settings

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jask/wordgame/internal/widget"
)

func testRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func send(t *testing.T, c *Controller, events ...widget.Event) {
	t.Helper()
	for _, ev := range events {
		_, ok, err := c.Handle(ev)
		require.NoError(t, err)
		require.False(t, ok)
	}
}

func typeLetters(t *testing.T, c *Controller, s string) {
	t.Helper()
	for _, r := range s {
		send(t, c, widget.RuneEvent(r))
	}
}

var (
	down  = widget.KeyEvent(widget.EventDown)
	up    = widget.KeyEvent(widget.EventUp)
	right = widget.KeyEvent(widget.EventRight)
	left  = widget.KeyEvent(widget.EventLeft)
	enter = widget.KeyEvent(widget.EventEnter)
)

func TestDefaultsSelected(t *testing.T) {
	c := New(DefaultOptions(), testRand(1))
	require.True(t, c.Random())
	require.Equal(t, "7", c.LetterCount().Current())
	require.Equal(t, "4", c.MinLength().Current())
	require.Equal(t, SlotMode, c.Flow().ActiveIndex())
	require.Same(t, c.LetterCount(), c.Flow().At(SlotLetters))
}

func TestModeChangeSwapsLetterSlot(t *testing.T) {
	c := New(DefaultOptions(), testRand(1))
	send(t, c, right)
	require.False(t, c.Random())
	require.Same(t, c.LetterInput(), c.Flow().At(SlotLetters))

	send(t, c, left)
	require.True(t, c.Random())
	require.Same(t, c.LetterCount(), c.Flow().At(SlotLetters))
}

func TestSpecificLettersConfirm(t *testing.T) {
	c := New(DefaultOptions(), testRand(1))
	send(t, c, right, down)
	typeLetters(t, c, "TcaT")
	send(t, c, down, left)
	require.Equal(t, "3", c.MinLength().Current())

	spec, ok, err := c.Handle(enter)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "act", spec.Letters())
	require.Equal(t, 't', spec.Required(), "first typed letter is required")
	require.Equal(t, 3, spec.MinLength())
}

func TestSpecificLettersEmptyIsRecoverable(t *testing.T) {
	c := New(DefaultOptions(), testRand(1))
	send(t, c, right)

	_, ok, err := c.Handle(enter)
	require.ErrorIs(t, err, ErrInvalidLetterInput)
	require.False(t, ok)

	send(t, c, down)
	typeLetters(t, c, "dog")
	spec, ok, err := c.Handle(enter)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "dgo", spec.Letters())
	require.Equal(t, 'd', spec.Required())
}

func TestRandomLettersConfirm(t *testing.T) {
	c := New(DefaultOptions(), testRand(7))
	send(t, c, down, right)
	require.Equal(t, "8", c.LetterCount().Current())
	send(t, c, down, right, right)
	require.Equal(t, "6", c.MinLength().Current())
	send(t, c, up, up)

	spec, ok, err := c.Handle(enter)
	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, spec.Letters(), 8)
	require.True(t, spec.Has(spec.Required()))
	require.True(t, strings.ContainsAny(spec.Letters(), vowels))
	require.Equal(t, 6, spec.MinLength())
}

func TestRandomLettersAreDistinctWithVowel(t *testing.T) {
	rng := testRand(42)
	for i := 0; i < 500; i++ {
		n := 1 + i%26
		letters := RandomLetters(rng, n)
		require.Len(t, letters, n)
		seen := map[rune]bool{}
		for _, r := range letters {
			require.True(t, r >= 'a' && r <= 'z')
			require.False(t, seen[r], "duplicate %q in %q", r, letters)
			seen[r] = true
		}
		require.True(t, strings.ContainsAny(letters, vowels), "no vowel in %q", letters)
	}
	require.Len(t, RandomLetters(rng, 0), 1)
	require.Len(t, RandomLetters(rng, 40), 26)
}

func TestRandomLettersDeterministicForSeed(t *testing.T) {
	require.Equal(t, RandomLetters(testRand(3), 7), RandomLetters(testRand(3), 7))
}
