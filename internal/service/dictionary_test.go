package service

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/jask/wordgame/internal/database"
	"github.com/jask/wordgame/internal/database/repository"
)

func TestDictionaryServiceCachesUnchangedFiles(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	dir := t.TempDir()

	db, err := database.OpenMigrated(filepath.Join(dir, "cache.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	path := filepath.Join(dir, "words.json")
	require.NoError(t, os.WriteFile(path, []byte(`["cat","act","tac","dog"]`), 0o644))

	svc := &DictionaryService{Dictionaries: repository.NewDictionaryRepo(db), Logger: zerolog.Nop()}

	first, err := svc.Load(ctx, path)
	require.NoError(t, err)
	require.False(t, first.Cached)
	require.NotEmpty(t, first.ID)
	require.Equal(t, []string{"cat", "act", "tac", "dog"}, first.Words)

	second, err := svc.Load(ctx, path)
	require.NoError(t, err)
	require.True(t, second.Cached)
	require.Equal(t, first.ID, second.ID)
	require.ElementsMatch(t, first.Words, second.Words)

	// A changed file is re-parsed and replaces the cache entry.
	require.NoError(t, os.WriteFile(path, []byte(`["bird","cat","words"]`), 0o644))
	later := time.Now().Add(time.Hour)
	require.NoError(t, os.Chtimes(path, later, later))

	third, err := svc.Load(ctx, path)
	require.NoError(t, err)
	require.False(t, third.Cached)
	require.NotEqual(t, first.ID, third.ID)
	require.Equal(t, []string{"bird", "cat", "words"}, third.Words)

	maint := &MaintenanceService{DB: db}
	require.NoError(t, maint.Reset(ctx))
	fourth, err := svc.Load(ctx, path)
	require.NoError(t, err)
	require.False(t, fourth.Cached)
}

func TestDictionaryServiceWithoutCache(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "words.txt")
	require.NoError(t, os.WriteFile(path, []byte("tea\neat\n"), 0o644))

	svc := &DictionaryService{Logger: zerolog.Nop()}
	src := svc.Source(path)
	words, err := src.Words(context.Background())
	require.NoError(t, err)
	require.Equal(t, []string{"tea", "eat"}, words)
	require.False(t, src.Cached())

	_, err = svc.Load(context.Background(), filepath.Join(dir, "nope.txt"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestDictionaryServiceDoesNotCacheUnparsableFile(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	dir := t.TempDir()
	db, err := database.OpenMigrated(filepath.Join(dir, "cache.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	repo := repository.NewDictionaryRepo(db)

	path := filepath.Join(dir, "words.txt")
	long := strings.Repeat("x", 2<<20)
	require.NoError(t, os.WriteFile(path, []byte("cat\n"+long+"\ndog\n"), 0o644))

	svc := &DictionaryService{Dictionaries: repo, Logger: zerolog.Nop()}
	_, err = svc.Load(ctx, path)
	require.Error(t, err)

	abs, err := filepath.Abs(path)
	require.NoError(t, err)
	cached, err := repo.FindBySource(ctx, abs)
	require.NoError(t, err)
	require.Nil(t, cached)
}

func TestMaintenanceResetRequiresDB(t *testing.T) {
	require.Error(t, (&MaintenanceService{}).Reset(context.Background()))
}
