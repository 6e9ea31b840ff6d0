// Package dictionary reads word lists from disk.
//
// Supported formats:
//   - JSON array of strings: ["cat", "dog"]
//   - JSON object keyed by word: {"cat": 1, "dog": 1}
//   - plain text, one word per line
//
// Words are trimmed and lowercased; entries that are not purely a-z are
// dropped and duplicates removed, keeping first-seen order.
package dictionary

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Format selects how a word list is decoded.
type Format int

const (
	FormatAuto Format = iota
	FormatJSON
	FormatText
)

// ParseFile reads the word list at path, choosing the format from the
// extension or, failing that, the content.
func ParseFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dictionary: %w", err)
	}
	defer f.Close()

	format := FormatAuto
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		format = FormatJSON
	case ".txt", ".lst":
		format = FormatText
	}
	words, err := Parse(f, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return words, nil
}

// Parse decodes a word list from r.
func Parse(r io.Reader, format Format) ([]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read dictionary: %w", err)
	}
	if format == FormatAuto {
		format = sniff(data)
	}
	switch format {
	case FormatJSON:
		raw, err := decodeJSON(data)
		if err != nil {
			return nil, err
		}
		return Normalize(raw), nil
	default:
		lines, err := splitLines(data)
		if err != nil {
			return nil, err
		}
		return Normalize(lines), nil
	}
}

// Normalize lowercases and trims words, dropping non-alphabetic entries
// and duplicates.
func Normalize(words []string) []string {
	seen := make(map[string]struct{}, len(words))
	out := make([]string, 0, len(words))
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if !isAlpha(w) {
			continue
		}
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	return out
}

func sniff(data []byte) Format {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && (trimmed[0] == '[' || trimmed[0] == '{') {
		return FormatJSON
	}
	return FormatText
}

func decodeJSON(data []byte) ([]string, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		var obj map[string]json.RawMessage
		if err := json.Unmarshal(trimmed, &obj); err != nil {
			return nil, fmt.Errorf("decode json object: %w", err)
		}
		out := make([]string, 0, len(obj))
		for k := range obj {
			out = append(out, k)
		}
		sort.Strings(out)
		return out, nil
	}
	var list []string
	if err := json.Unmarshal(trimmed, &list); err != nil {
		return nil, fmt.Errorf("decode json list: %w", err)
	}
	return list, nil
}

// maxLineLength bounds a single text line; longer lines fail the parse
// rather than truncating the list.
const maxLineLength = 1024 * 1024

func splitLines(data []byte) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(bytes.NewReader(data))
	sc.Buffer(make([]byte, 0, 64*1024), maxLineLength)
	for sc.Scan() {
		out = append(out, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read dictionary line %d: %w", len(out)+1, err)
	}
	return out, nil
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
