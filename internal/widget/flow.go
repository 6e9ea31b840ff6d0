package widget

// Widget is anything a Flow can hold. Behavior is discovered through the
// capability interfaces below rather than concrete types.
type Widget interface{}

// Focusable widgets are told when they gain or lose focus.
type Focusable interface {
	SetFocused(bool)
	Focused() bool
}

// TextReceiver widgets accept typed characters and cursor movement.
type TextReceiver interface {
	Insert(r rune)
	Backspace()
	Delete()
	MoveLeft()
	MoveRight()
}

// Cycler widgets step through a fixed set of values.
type Cycler interface {
	Cycle(dir Direction)
}

// Flow sequences focus-navigable widgets and routes events to the active
// one. Navigation wraps in both directions.
type Flow struct {
	widgets []Widget
	active  int
}

// NewFlow returns a flow with focus on the first widget.
func NewFlow(widgets ...Widget) *Flow {
	f := &Flow{widgets: append([]Widget(nil), widgets...)}
	f.syncFocus()
	return f
}

// Advance moves focus one widget in dir.
func (f *Flow) Advance(dir Direction) {
	if len(f.widgets) == 0 {
		return
	}
	f.active = wrap(f.active+step(dir), len(f.widgets))
	f.syncFocus()
}

// Active returns the widget receiving key events, or nil for an empty flow.
func (f *Flow) Active() Widget {
	if len(f.widgets) == 0 {
		return nil
	}
	return f.widgets[f.active]
}

func (f *Flow) ActiveIndex() int { return f.active }
func (f *Flow) Len() int         { return len(f.widgets) }

// At returns the widget in slot i, or nil when out of range.
func (f *Flow) At(i int) Widget {
	if i < 0 || i >= len(f.widgets) {
		return nil
	}
	return f.widgets[i]
}

// Replace swaps the widget in slot i, keeping focus on the slot.
func (f *Flow) Replace(i int, w Widget) {
	if i < 0 || i >= len(f.widgets) {
		return
	}
	if old, ok := f.widgets[i].(Focusable); ok {
		old.SetFocused(false)
	}
	f.widgets[i] = w
	f.syncFocus()
}

// Dispatch routes ev and reports whether it was consumed. Up and Down move
// focus; other keys go to the active widget by capability. Enter and Quit
// are never consumed so the owner can act on them.
func (f *Flow) Dispatch(ev Event) bool {
	switch ev.Kind {
	case EventUp:
		f.Advance(Previous)
		return true
	case EventDown:
		f.Advance(Next)
		return true
	case EventEnter, EventQuit, EventNone:
		return false
	}

	active := f.Active()
	if tr, ok := active.(TextReceiver); ok {
		switch ev.Kind {
		case EventRune:
			tr.Insert(ev.Rune)
			return true
		case EventBackspace:
			tr.Backspace()
			return true
		case EventDelete:
			tr.Delete()
			return true
		case EventLeft:
			tr.MoveLeft()
			return true
		case EventRight:
			tr.MoveRight()
			return true
		}
	}
	if c, ok := active.(Cycler); ok {
		switch ev.Kind {
		case EventLeft:
			c.Cycle(Previous)
			return true
		case EventRight:
			c.Cycle(Next)
			return true
		}
	}
	return false
}

func (f *Flow) syncFocus() {
	for i, w := range f.widgets {
		if fw, ok := w.(Focusable); ok {
			fw.SetFocused(i == f.active)
		}
	}
}
