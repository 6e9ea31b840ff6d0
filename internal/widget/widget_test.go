package widget

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func typeString(in *Input, s string) {
	for _, r := range s {
		in.Insert(r)
	}
}

func TestInputInsertThenBackspaceRestoresEmpty(t *testing.T) {
	const maxLen = 8
	for n := 0; n <= maxLen; n++ {
		in := NewInput(maxLen)
		for i := 0; i < n; i++ {
			in.Insert('a' + rune(i))
		}
		require.Equal(t, n, in.Len())
		require.Equal(t, n, in.Cursor())
		for i := 0; i < n; i++ {
			in.Backspace()
		}
		require.Equal(t, "", in.Submit())
		require.Equal(t, 0, in.Cursor())
	}
}

func TestInputRejectsNonLettersAndOverflow(t *testing.T) {
	in := NewInput(3)
	typeString(in, "a1 b-!c")
	require.Equal(t, "abc", in.Submit())

	in.Insert('d')
	require.Equal(t, "abc", in.Submit())

	in.MoveLeft()
	in.Insert('z')
	require.Equal(t, "abc", in.Submit(), "full buffer accepts nothing mid-line either")
	require.Equal(t, 2, in.Cursor())
}

func TestInputInsertsAtCursor(t *testing.T) {
	in := NewInput(10)
	typeString(in, "wrd")
	in.MoveLeft()
	in.MoveLeft()
	in.Insert('o')
	require.Equal(t, "word", in.Submit())
	require.Equal(t, 2, in.Cursor())

	in.Backspace()
	require.Equal(t, "wrd", in.Submit())
	require.Equal(t, 1, in.Cursor())
}

func TestInputDeleteRemovesUnderCursor(t *testing.T) {
	in := NewInput(10)
	typeString(in, "cart")
	in.MoveLeft()
	in.MoveLeft()
	in.Delete()
	require.Equal(t, "cat", in.Submit())
	require.Equal(t, 2, in.Cursor())

	in.MoveRight()
	in.Delete()
	require.Equal(t, "cat", in.Submit(), "delete at end of line is a no-op")
	require.Equal(t, 3, in.Cursor())
}

func TestInputCursorClamps(t *testing.T) {
	in := NewInput(5)
	in.MoveLeft()
	in.Backspace()
	require.Equal(t, 0, in.Cursor())

	typeString(in, "ab")
	in.MoveRight()
	in.MoveRight()
	require.Equal(t, 2, in.Cursor())
	for i := 0; i < 5; i++ {
		in.MoveLeft()
	}
	require.Equal(t, 0, in.Cursor())
	in.Backspace()
	require.Equal(t, "ab", in.Submit())
}

func TestInputSubmitKeepsBufferUntilClear(t *testing.T) {
	in := NewInput(5)
	typeString(in, "cat")
	require.Equal(t, "cat", in.Submit())
	require.Equal(t, "cat", in.Submit())
	in.Clear()
	require.Equal(t, "", in.Submit())
	require.Equal(t, 0, in.Cursor())
}

func TestSelectionCycleRoundTrip(t *testing.T) {
	s := NewSelection("3", "4", "5")
	for i := 0; i < 3; i++ {
		s.SetIndex(i)
		s.Cycle(Next)
		s.Cycle(Previous)
		require.Equal(t, i, s.Index())
		s.Cycle(Previous)
		s.Cycle(Next)
		require.Equal(t, i, s.Index())
	}
}

func TestSelectionWraps(t *testing.T) {
	s := NewSelection("random", "specific")
	s.Cycle(Previous)
	require.Equal(t, "specific", s.Current())
	s.Cycle(Next)
	require.Equal(t, "random", s.Current())

	single := NewSelection("only")
	single.Cycle(Next)
	require.Equal(t, 0, single.Index())
	require.Equal(t, "only", single.Current())
}

func TestSelectionSelectAndClamp(t *testing.T) {
	s := NewSelection("5", "6", "7")
	require.True(t, s.Select("7"))
	require.Equal(t, 2, s.Index())
	require.False(t, s.Select("9"))
	require.Equal(t, 2, s.Index())

	s.SetIndex(42)
	require.Equal(t, 2, s.Index())
	s.SetIndex(-1)
	require.Equal(t, 0, s.Index())
}

func TestFlowAdvanceFullCycleReturnsToStart(t *testing.T) {
	f := NewFlow(NewSelection("a", "b"), NewInput(4), NewSelection("x", "y"))
	for start := 0; start < f.Len(); start++ {
		for _, dir := range []Direction{Next, Previous} {
			for f.ActiveIndex() != start {
				f.Advance(Next)
			}
			for i := 0; i < f.Len(); i++ {
				f.Advance(dir)
			}
			require.Equal(t, start, f.ActiveIndex())
		}
	}
}

func TestFlowTracksFocus(t *testing.T) {
	a, b := NewSelection("a", "b"), NewInput(4)
	f := NewFlow(a, b)
	require.True(t, a.Focused())
	require.False(t, b.Focused())

	f.Dispatch(KeyEvent(EventDown))
	require.False(t, a.Focused())
	require.True(t, b.Focused())
	require.Same(t, b, f.Active())

	f.Dispatch(KeyEvent(EventDown))
	require.Same(t, a, f.Active())
	f.Dispatch(KeyEvent(EventUp))
	require.Same(t, b, f.Active())
}

func TestFlowDispatchByCapability(t *testing.T) {
	sel, in := NewSelection("a", "b", "c"), NewInput(4)
	f := NewFlow(sel, in)

	require.True(t, f.Dispatch(KeyEvent(EventRight)))
	require.Equal(t, "b", sel.Current())
	require.False(t, f.Dispatch(RuneEvent('q')), "selections ignore text")
	require.False(t, f.Dispatch(KeyEvent(EventEnter)))

	f.Advance(Next)
	require.True(t, f.Dispatch(RuneEvent('h')))
	require.True(t, f.Dispatch(RuneEvent('i')))
	require.True(t, f.Dispatch(KeyEvent(EventLeft)))
	require.Equal(t, 1, in.Cursor())
	require.True(t, f.Dispatch(KeyEvent(EventBackspace)))
	require.Equal(t, "i", in.Submit())
	require.True(t, f.Dispatch(KeyEvent(EventDelete)))
	require.Equal(t, "", in.Submit())
	require.Equal(t, "b", sel.Current())
	require.False(t, f.Dispatch(KeyEvent(EventQuit)))
}

func TestFlowReplaceKeepsSlotFocus(t *testing.T) {
	sel, count, in := NewSelection("a", "b"), NewSelection("5", "6"), NewInput(4)
	f := NewFlow(sel, count)
	f.Advance(Next)
	f.Replace(1, in)
	require.Same(t, in, f.Active())
	require.True(t, in.Focused())
	require.False(t, count.Focused())

	f.Replace(7, count)
	require.Same(t, in, f.At(1))
	require.Nil(t, f.At(7))
}
