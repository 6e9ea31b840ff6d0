package widget

// Selection is a cyclic multiple-choice widget over fixed string options.
type Selection struct {
	options []string
	current int
	focused bool
}

// NewSelection returns a selection positioned on the first option.
func NewSelection(options ...string) *Selection {
	return &Selection{options: append([]string(nil), options...)}
}

// Cycle moves the current option one step in dir, wrapping at either end.
// Selections with fewer than two options do not move.
func (s *Selection) Cycle(dir Direction) {
	if len(s.options) < 2 {
		return
	}
	s.current = wrap(s.current+step(dir), len(s.options))
}

// Current returns the selected option, or "" when there are no options.
func (s *Selection) Current() string {
	if len(s.options) == 0 {
		return ""
	}
	return s.options[s.current]
}

func (s *Selection) Index() int { return s.current }

// SetIndex selects option i, clamped into range.
func (s *Selection) SetIndex(i int) {
	if i < 0 {
		i = 0
	}
	if i >= len(s.options) {
		i = len(s.options) - 1
	}
	if i < 0 {
		i = 0
	}
	s.current = i
}

// Select moves to the option equal to value and reports whether it exists.
func (s *Selection) Select(value string) bool {
	for i, opt := range s.options {
		if opt == value {
			s.current = i
			return true
		}
	}
	return false
}

// Options returns a copy of the option list.
func (s *Selection) Options() []string {
	return append([]string(nil), s.options...)
}

func (s *Selection) SetFocused(f bool) { s.focused = f }
func (s *Selection) Focused() bool     { return s.focused }
