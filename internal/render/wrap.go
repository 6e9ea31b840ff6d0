package render

import "strings"

// WrapWords lays words out as "a, b, c" lines no wider than width, using
// at most height lines. A line break replaces the separator. Words longer
// than a line are cut with "..". Words that do not fit are dropped and
// counted in the returned overflow.
func WrapWords(words []string, width, height int) (lines []string, overflow int) {
	if width < 4 || height < 1 {
		return nil, len(words)
	}
	var cur strings.Builder
	for i, w := range words {
		if len(w) > width {
			w = w[:width-2] + ".."
		}
		if cur.Len() > 0 && cur.Len()+len(", ")+len(w) > width {
			lines = append(lines, cur.String())
			cur.Reset()
		}
		if len(lines) >= height {
			return lines, len(words) - i
		}
		if cur.Len() > 0 {
			cur.WriteString(", ")
		}
		cur.WriteString(w)
	}
	if cur.Len() > 0 {
		lines = append(lines, cur.String())
	}
	return lines, 0
}
