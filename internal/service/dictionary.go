package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jask/wordgame/internal/database"
	"github.com/jask/wordgame/internal/database/repository"
	"github.com/jask/wordgame/internal/dictionary"
)

// DictionaryService loads word lists, serving them from the SQLite cache
// when the source file is unchanged.
type DictionaryService struct {
	Dictionaries *repository.DictionaryRepo
	Logger       zerolog.Logger
}

// LoadResult describes where a word list came from.
type LoadResult struct {
	Words  []string
	Cached bool
	ID     string
}

// Load returns the words in the file at path. Without a repository it
// always parses the file. Cache failures are logged and never fail the
// load.
func (s *DictionaryService) Load(ctx context.Context, path string) (LoadResult, error) {
	abs := path
	if p, err := filepath.Abs(path); err == nil {
		abs = p
	}
	info, err := os.Stat(abs)
	if err != nil {
		return LoadResult{}, fmt.Errorf("stat dictionary: %w", err)
	}

	if s.Dictionaries != nil {
		res, ok := s.fromCache(ctx, abs, info)
		if ok {
			return res, nil
		}
	}

	words, err := dictionary.ParseFile(abs)
	if err != nil {
		return LoadResult{}, err
	}
	res := LoadResult{Words: words}
	if s.Dictionaries == nil || len(words) == 0 {
		return res, nil
	}

	d := repository.Dictionary{
		ID:            uuid.NewString(),
		SourcePath:    abs,
		SourceSize:    info.Size(),
		SourceModTime: database.Stamp(info.ModTime()),
		WordCount:     len(words),
		ImportedAt:    database.Stamp(time.Now()),
	}
	if err := s.Dictionaries.Replace(ctx, d, words); err != nil {
		s.Logger.Warn().Err(err).Str("path", abs).Msg("dictionary cache write failed")
		return res, nil
	}
	s.Logger.Info().Str("path", abs).Int("words", len(words)).Str("id", d.ID).Msg("dictionary cached")
	res.ID = d.ID
	return res, nil
}

func (s *DictionaryService) fromCache(ctx context.Context, abs string, info os.FileInfo) (LoadResult, bool) {
	d, err := s.Dictionaries.FindBySource(ctx, abs)
	if err != nil {
		s.Logger.Warn().Err(err).Str("path", abs).Msg("dictionary cache lookup failed")
		return LoadResult{}, false
	}
	if d == nil || !d.Matches(info.Size(), info.ModTime()) {
		return LoadResult{}, false
	}
	words, err := s.Dictionaries.Words(ctx, d.ID)
	if err != nil || len(words) == 0 {
		s.Logger.Warn().Err(err).Str("path", abs).Msg("dictionary cache read failed")
		return LoadResult{}, false
	}
	s.Logger.Debug().Str("path", abs).Int("words", len(words)).Msg("dictionary cache hit")
	return LoadResult{Words: words, Cached: true, ID: d.ID}, true
}

// Source binds the service to one path so it can feed a game session.
func (s *DictionaryService) Source(path string) *FileSource {
	return &FileSource{svc: s, path: path}
}

// FileSource is a game.WordSource reading one dictionary file.
type FileSource struct {
	svc  *DictionaryService
	path string
	last LoadResult
}

func (f *FileSource) Words(ctx context.Context) ([]string, error) {
	res, err := f.svc.Load(ctx, f.path)
	if err != nil {
		return nil, err
	}
	f.last = res
	return res.Words, nil
}

// Cached reports whether the last load was served from the cache.
func (f *FileSource) Cached() bool { return f.last.Cached }
