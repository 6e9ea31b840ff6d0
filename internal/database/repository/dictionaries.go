package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jask/wordgame/internal/database"
)

// DictionaryRepo handles cached dictionaries and their words.
type DictionaryRepo struct {
	db *sql.DB
}

func NewDictionaryRepo(db *sql.DB) *DictionaryRepo {
	return &DictionaryRepo{db: db}
}

// FindBySource returns the cached dictionary for path, or nil if none.
func (r *DictionaryRepo) FindBySource(ctx context.Context, path string) (*Dictionary, error) {
	row := r.db.QueryRowContext(ctx, `
	SELECT id, source_path, source_size, source_mod_time, word_count, imported_at
	FROM dictionaries WHERE source_path = ?`, path)
	d, err := scanDictionary(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// Words returns the words of dictionary id in stored order.
func (r *DictionaryRepo) Words(ctx context.Context, id string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT word FROM words WHERE dictionary_id = ? ORDER BY word`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []string
	for rows.Next() {
		var w string
		if err := rows.Scan(&w); err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	return out, rows.Err()
}

// Replace stores d and its words, dropping any previous cache for the same
// source path.
func (r *DictionaryRepo) Replace(ctx context.Context, d Dictionary, words []string) error {
	return database.WithTx(ctx, r.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM dictionaries WHERE source_path = ?`, d.SourcePath); err != nil {
			return fmt.Errorf("drop cached %s: %w", d.SourcePath, err)
		}
		if _, err := tx.ExecContext(ctx, `
		INSERT INTO dictionaries(id, source_path, source_size, source_mod_time, word_count, imported_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
			d.ID, d.SourcePath, d.SourceSize, database.Stamp(d.SourceModTime).Unix(), d.WordCount, database.Stamp(d.ImportedAt)); err != nil {
			return fmt.Errorf("insert dictionary: %w", err)
		}
		stmt, err := tx.PrepareContext(ctx, `INSERT OR IGNORE INTO words(dictionary_id, word) VALUES (?, ?)`)
		if err != nil {
			return err
		}
		defer stmt.Close()
		for _, w := range words {
			if _, err := stmt.ExecContext(ctx, d.ID, w); err != nil {
				return fmt.Errorf("insert word %q: %w", w, err)
			}
		}
		return nil
	})
}

// List returns all cached dictionaries, newest first.
func (r *DictionaryRepo) List(ctx context.Context) ([]Dictionary, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, source_path, source_size, source_mod_time, word_count, imported_at
	FROM dictionaries ORDER BY imported_at DESC, source_path`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Dictionary
	for rows.Next() {
		d, err := scanDictionary(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanDictionary(s scanner) (Dictionary, error) {
	var d Dictionary
	var modUnix int64
	if err := s.Scan(&d.ID, &d.SourcePath, &d.SourceSize, &modUnix, &d.WordCount, &d.ImportedAt); err != nil {
		return Dictionary{}, err
	}
	d.SourceModTime = time.Unix(modUnix, 0).UTC()
	return d, nil
}
