// Package index groups a word list by letter signature and answers
// letter-subset queries against it.
package index

import (
	"errors"
	"sort"
	"strings"
)

// ErrEmptyDictionary is returned when a word list yields no usable words.
var ErrEmptyDictionary = errors.New("dictionary is empty")

// letterSet is a 26-bit mask, bit n set when 'a'+n is present.
type letterSet uint32

func makeLetterSet(s string) letterSet {
	var set letterSet
	for i := 0; i < len(s); i++ {
		ch := s[i]
		if ch < 'a' || ch > 'z' {
			continue
		}
		set |= 1 << (ch - 'a')
	}
	return set
}

func (s letterSet) has(ch byte) bool {
	if ch < 'a' || ch > 'z' {
		return false
	}
	return s&(1<<(ch-'a')) != 0
}

// Group holds every word sharing one signature.
type Group struct {
	Signature string
	Words     []string
	letters   letterSet
}

// Index maps letter signatures to the words that share them.
// It is immutable once built.
type Index struct {
	groups []Group
	bySig  map[string]int
	words  int
}

// Signature returns the sorted characters of word.
func Signature(word string) string {
	b := []byte(word)
	sort.Slice(b, func(i, j int) bool { return b[i] < b[j] })
	return string(b)
}

// Build groups words by signature. Entries that are empty or contain
// anything other than a-z are skipped; duplicates are collapsed.
func Build(words []string) (*Index, error) {
	idx := &Index{bySig: make(map[string]int)}
	seen := make(map[string]struct{}, len(words))
	for _, raw := range words {
		w := strings.TrimSpace(raw)
		if !isAlpha(w) {
			continue
		}
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}

		sig := Signature(w)
		i, ok := idx.bySig[sig]
		if !ok {
			i = len(idx.groups)
			idx.bySig[sig] = i
			idx.groups = append(idx.groups, Group{Signature: sig, letters: makeLetterSet(sig)})
		}
		idx.groups[i].Words = append(idx.groups[i].Words, w)
		idx.words++
	}
	if idx.words == 0 {
		return nil, ErrEmptyDictionary
	}
	sort.Slice(idx.groups, func(i, j int) bool {
		return idx.groups[i].Signature < idx.groups[j].Signature
	})
	for i, g := range idx.groups {
		idx.bySig[g.Signature] = i
		sort.Strings(idx.groups[i].Words)
	}
	return idx, nil
}

// Query returns every word whose letters are all drawn from available,
// that contains required, and whose length is at least minLength.
// Containment is by letter set, so repeated letters are not limited by
// how often they appear in available. The result is sorted.
func (x *Index) Query(available string, required rune, minLength int) []string {
	if x == nil || required < 'a' || required > 'z' {
		return nil
	}
	all := makeLetterSet(available)
	req := byte(required)
	if !all.has(req) {
		return nil
	}
	var out []string
	for _, g := range x.groups {
		if !g.letters.has(req) || g.letters&^all != 0 {
			continue
		}
		if len(g.Signature) < minLength {
			continue
		}
		out = append(out, g.Words...)
	}
	sort.Strings(out)
	return out
}

// Lookup returns the words sharing word's signature.
func (x *Index) Lookup(word string) []string {
	if x == nil {
		return nil
	}
	i, ok := x.bySig[Signature(word)]
	if !ok {
		return nil
	}
	return append([]string(nil), x.groups[i].Words...)
}

// Groups returns a copy of the signature groups in signature order.
func (x *Index) Groups() []Group {
	if x == nil {
		return nil
	}
	out := make([]Group, len(x.groups))
	for i, g := range x.groups {
		g.Words = append([]string(nil), g.Words...)
		out[i] = g
	}
	return out
}

// Len returns the number of distinct signatures.
func (x *Index) Len() int {
	if x == nil {
		return 0
	}
	return len(x.groups)
}

// WordCount returns the number of indexed words.
func (x *Index) WordCount() int {
	if x == nil {
		return 0
	}
	return x.words
}

func isAlpha(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < 'a' || s[i] > 'z' {
			return false
		}
	}
	return true
}
