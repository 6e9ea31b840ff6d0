// Package widget holds the focus-navigable input widgets used by the
// settings and play screens. Widgets only hold state; drawing lives in
// the tui package.
package widget

// EventKind identifies a key event delivered to a widget.
type EventKind int

const (
	EventNone EventKind = iota
	EventRune
	EventLeft
	EventRight
	EventUp
	EventDown
	EventBackspace
	EventDelete
	EventEnter
	EventQuit
)

// Event is one discrete key press.
type Event struct {
	Kind EventKind
	Rune rune
}

// RuneEvent returns a printable-character event.
func RuneEvent(r rune) Event {
	return Event{Kind: EventRune, Rune: r}
}

// KeyEvent returns a non-printable key event.
func KeyEvent(kind EventKind) Event {
	return Event{Kind: kind}
}

// Direction selects which way a selection or focus moves.
type Direction int

const (
	Previous Direction = iota
	Next
)

func step(dir Direction) int {
	if dir == Previous {
		return -1
	}
	return 1
}

// wrap returns i modulo n in [0, n).
func wrap(i, n int) int {
	if n <= 0 {
		return 0
	}
	i %= n
	if i < 0 {
		i += n
	}
	return i
}
