package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/jask/wordgame/internal/game"
	"github.com/jask/wordgame/internal/index"
	"github.com/jask/wordgame/internal/puzzle"
)

// solve prints every word spelled from letters, one per line. The first
// letter given is the required one.
func solve(ctx context.Context, src game.WordSource, letters string, minLength int, w io.Writer) error {
	letters = strings.ToLower(strings.TrimSpace(letters))
	if letters == "" {
		return fmt.Errorf("solve: no letters given")
	}
	spec, err := puzzle.New(letters, rune(letters[0]), minLength)
	if err != nil {
		return fmt.Errorf("solve: %w", err)
	}
	words, err := src.Words(ctx)
	if err != nil {
		return fmt.Errorf("%w: %w", game.ErrEmptyDictionary, err)
	}
	idx, err := index.Build(words)
	if err != nil {
		return err
	}
	for _, word := range idx.Query(spec.Letters(), spec.Required(), spec.MinLength()) {
		if _, err := fmt.Fprintln(w, word); err != nil {
			return err
		}
	}
	return nil
}
