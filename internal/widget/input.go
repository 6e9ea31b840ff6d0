package widget

// Input is a single-line text field with a movable cursor.
// Invariant: 0 <= cursor <= len(buf) <= maxLength.
type Input struct {
	buf       []rune
	cursor    int
	maxLength int
	focused   bool
}

// NewInput returns an empty field accepting at most maxLength letters.
func NewInput(maxLength int) *Input {
	if maxLength < 0 {
		maxLength = 0
	}
	return &Input{buf: make([]rune, 0, maxLength), maxLength: maxLength}
}

// Insert places r at the cursor. Non-letters and input past maxLength are
// ignored.
func (in *Input) Insert(r rune) {
	if !isASCIILetter(r) || len(in.buf) >= in.maxLength {
		return
	}
	in.buf = append(in.buf, 0)
	copy(in.buf[in.cursor+1:], in.buf[in.cursor:])
	in.buf[in.cursor] = r
	in.cursor++
}

// Backspace removes the character before the cursor.
func (in *Input) Backspace() {
	if in.cursor == 0 {
		return
	}
	in.buf = append(in.buf[:in.cursor-1], in.buf[in.cursor:]...)
	in.cursor--
}

// Delete removes the character under the cursor.
func (in *Input) Delete() {
	if in.cursor >= len(in.buf) {
		return
	}
	in.buf = append(in.buf[:in.cursor], in.buf[in.cursor+1:]...)
}

func (in *Input) MoveLeft() {
	if in.cursor > 0 {
		in.cursor--
	}
}

func (in *Input) MoveRight() {
	if in.cursor < len(in.buf) {
		in.cursor++
	}
}

// Submit returns the buffer contents. The buffer is left intact.
func (in *Input) Submit() string {
	return string(in.buf)
}

// Clear empties the buffer and resets the cursor.
func (in *Input) Clear() {
	in.buf = in.buf[:0]
	in.cursor = 0
}

func (in *Input) Cursor() int    { return in.cursor }
func (in *Input) Len() int       { return len(in.buf) }
func (in *Input) MaxLength() int { return in.maxLength }

func (in *Input) SetFocused(f bool) { in.focused = f }
func (in *Input) Focused() bool     { return in.focused }

func isASCIILetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
