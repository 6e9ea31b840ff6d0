package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jask/wordgame/internal/game"
)

func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("WORDGAME_CONFIG", "")
	return home
}

func writeDictionary(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "words.json")
	require.NoError(t, os.WriteFile(path, []byte(`["cat","act","tac","cats","at","dog","tact"]`), 0o644))
	return path
}

func TestRunSolve(t *testing.T) {
	home := isolate(t)
	dict := writeDictionary(t, home)

	var out, errOut bytes.Buffer
	code := run(context.Background(), []string{"--solve", "cat", "--min", "3", dict}, &out, &errOut)
	require.Equal(t, 0, code, errOut.String())
	require.Equal(t, []string{"act", "cat", "tac", "tact"}, strings.Fields(out.String()))

	// Second run is served from the cache with the same answers.
	out.Reset()
	code = run(context.Background(), []string{"--solve", "tca", "--min", "4", dict}, &out, &errOut)
	require.Equal(t, 0, code, errOut.String())
	require.Equal(t, []string{"tact"}, strings.Fields(out.String()))
	require.FileExists(t, filepath.Join(home, ".local", "share", "wordgame", "dictionary.db"))
}

func TestRunMissingDictionary(t *testing.T) {
	isolate(t)
	var out, errOut bytes.Buffer
	require.Equal(t, 1, run(context.Background(), []string{"--solve", "cat"}, &out, &errOut))
	require.Contains(t, errOut.String(), "dictionary file is required")
}

func TestRunUnreadableDictionary(t *testing.T) {
	home := isolate(t)
	var out, errOut bytes.Buffer
	code := run(context.Background(), []string{"--solve", "cat", filepath.Join(home, "nope.json")}, &out, &errOut)
	require.Equal(t, 1, code)
	require.Contains(t, errOut.String(), "error:")
}

func TestRunBadFlag(t *testing.T) {
	isolate(t)
	var out, errOut bytes.Buffer
	require.Equal(t, 2, run(context.Background(), []string{"--bogus"}, &out, &errOut))
	require.Equal(t, 2, run(context.Background(), []string{"--min", "three"}, &out, &errOut))
}

func TestRunClearCache(t *testing.T) {
	isolate(t)
	var out, errOut bytes.Buffer
	require.Equal(t, 0, run(context.Background(), []string{"--clear-cache"}, &out, &errOut), errOut.String())
	require.Contains(t, out.String(), "cache cleared")
}

func TestRunClearCacheWithoutCache(t *testing.T) {
	home := isolate(t)
	cfgPath := filepath.Join(home, "config.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("[dictionary]\ncache_path = \"\"\n"), 0o644))
	t.Setenv("WORDGAME_CONFIG", cfgPath)
	var out, errOut bytes.Buffer
	require.Equal(t, 1, run(context.Background(), []string{"--clear-cache"}, &out, &errOut))
}

func TestRunWriteConfig(t *testing.T) {
	home := isolate(t)
	var out, errOut bytes.Buffer
	require.Equal(t, 0, run(context.Background(), []string{"--write-config"}, &out, &errOut), errOut.String())
	require.FileExists(t, filepath.Join(home, ".config", "wordgame", "config.toml"))
}

func TestSolveRejectsBadInput(t *testing.T) {
	var out bytes.Buffer
	require.Error(t, solve(context.Background(), game.Words{"cat"}, "  ", 3, &out))
	require.Error(t, solve(context.Background(), game.Words{"cat"}, "1cat", 3, &out))
	require.ErrorIs(t, solve(context.Background(), game.Words{}, "cat", 3, &out), game.ErrEmptyDictionary)
}
