package repository

import (
	"time"

	"github.com/jask/wordgame/internal/database"
)

// Dictionary represents a cached word list row.
type Dictionary struct {
	ID            string
	SourcePath    string
	SourceSize    int64
	SourceModTime time.Time
	WordCount     int
	ImportedAt    time.Time
}

// Matches reports whether the cached row was taken from a file with the
// given size and modification time.
func (d Dictionary) Matches(size int64, modTime time.Time) bool {
	return d.SourceSize == size && d.SourceModTime.Equal(database.Stamp(modTime))
}
