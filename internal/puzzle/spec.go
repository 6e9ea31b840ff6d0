// Package puzzle defines the configuration of a single game.
package puzzle

import (
	"fmt"
	"sort"
	"strings"
)

// Spec is the immutable configuration for one game: the available letters
// (deduplicated, sorted), the letter every answer must contain, and the
// shortest acceptable word length.
type Spec struct {
	letters   string
	required  rune
	minLength int
}

// New builds a Spec from letters in any order and case. required must be
// one of the letters.
func New(letters string, required rune, minLength int) (Spec, error) {
	set := NormalizeLetters(letters)
	if set == "" {
		return Spec{}, fmt.Errorf("puzzle: no letters")
	}
	required = toLower(required)
	if !strings.ContainsRune(set, required) {
		return Spec{}, fmt.Errorf("puzzle: required letter %q not among %q", required, set)
	}
	if minLength < 0 {
		return Spec{}, fmt.Errorf("puzzle: negative minimum length %d", minLength)
	}
	return Spec{letters: set, required: required, minLength: minLength}, nil
}

// Letters returns the available letters in sorted order.
func (s Spec) Letters() string { return s.letters }

func (s Spec) Required() rune { return s.required }

func (s Spec) MinLength() int { return s.minLength }

// Has reports whether r is one of the available letters.
func (s Spec) Has(r rune) bool {
	return strings.ContainsRune(s.letters, r)
}

func (s Spec) IsZero() bool { return s.letters == "" }

func (s Spec) String() string {
	return fmt.Sprintf("letters=%s required=%c min=%d", s.letters, s.required, s.minLength)
}

// NormalizeLetters lowercases s, keeps a-z only, and returns the distinct
// letters sorted.
func NormalizeLetters(s string) string {
	seen := make(map[rune]bool, len(s))
	out := make([]rune, 0, len(s))
	for _, r := range s {
		r = toLower(r)
		if r < 'a' || r > 'z' || seen[r] {
			continue
		}
		seen[r] = true
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return string(out)
}

func toLower(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}
