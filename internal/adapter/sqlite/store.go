// Package sqlite reads and writes the bundled pronunciation database, a
// single-table SQLite file (T_WORDS) that ships alongside the binary.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	_ "modernc.org/sqlite" // registers the "sqlite" driver

	"github.com/heartmarshall/transkana/internal/domain"
)

const table = "T_WORDS"

const schema = `CREATE TABLE IF NOT EXISTS T_WORDS (
	surface_form     TEXT PRIMARY KEY,
	gpt_reading      TEXT,
	bep_reading      TEXT,
	cmu_reading_kana TEXT,
	updated_at       TEXT
)`

const preferredReading = `CASE
	WHEN COALESCE(gpt_reading, '') <> '' THEN gpt_reading
	WHEN COALESCE(bep_reading, '') <> '' THEN bep_reading
	ELSE COALESCE(cmu_reading_kana, '')
END`

const upsertSQL = `INSERT INTO T_WORDS (surface_form, gpt_reading, bep_reading, cmu_reading_kana, updated_at)
VALUES (?, ?, ?, ?, ?)
ON CONFLICT (surface_form) DO UPDATE SET
	gpt_reading      = COALESCE(NULLIF(excluded.gpt_reading, ''), T_WORDS.gpt_reading),
	bep_reading      = COALESCE(NULLIF(excluded.bep_reading, ''), T_WORDS.bep_reading),
	cmu_reading_kana = COALESCE(NULLIF(excluded.cmu_reading_kana, ''), T_WORDS.cmu_reading_kana),
	updated_at       = excluded.updated_at`

// Store wraps an open SQLite database.
type Store struct {
	db   *sql.DB
	path string
}

// Open opens the database file at path. The file is created if it does not
// exist; call EnsureSchema before writing to a new file.
func Open(ctx context.Context, path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("sqlite: open %s: %w", path, err)
	}
	// SQLite allows one writer at a time.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite: ping %s: %w", path, err)
	}
	return &Store{db: db, path: path}, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Ping checks that the database file is still reachable.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// EnsureSchema creates the words table when it is missing.
func (s *Store) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("sqlite: create schema: %w", err)
	}
	return nil
}

// Name identifies the store as a lexicon source.
func (s *Store) Name() string { return "sqlite:" + s.path }

// Each streams surface forms with their preferred reading. Doubled single
// quotes in stored keys are folded by the lexicon's key normalization.
func (s *Store) Each(ctx context.Context, fn func(surface, reading string) error) error {
	query, args, err := sq.
		Select("surface_form", preferredReading+" AS preferred_reading").
		From(table).
		Where("surface_form IS NOT NULL").
		ToSql()
	if err != nil {
		return fmt.Errorf("sqlite: build select: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("sqlite: select words: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var surface, reading string
		if err := rows.Scan(&surface, &reading); err != nil {
			return fmt.Errorf("sqlite: scan word: %w", err)
		}
		if err := fn(surface, reading); err != nil {
			return err
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("sqlite: iterate words: %w", err)
	}
	return nil
}

// Get returns one word by surface form.
// Returns domain.ErrNotFound if it does not exist.
func (s *Store) Get(ctx context.Context, surface string) (*domain.Word, error) {
	key := domain.NormalizeSurface(surface)

	query, args, err := sq.
		Select(
			"surface_form",
			"COALESCE(gpt_reading, '')",
			"COALESCE(bep_reading, '')",
			"COALESCE(cmu_reading_kana, '')",
			"COALESCE(updated_at, '')",
		).
		From(table).
		Where(sq.Eq{"surface_form": key}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("sqlite: build select: %w", err)
	}

	var (
		w       domain.Word
		updated string
	)
	err = s.db.QueryRowContext(ctx, query, args...).
		Scan(&w.Surface, &w.GPTReading, &w.BEPReading, &w.CMUReading, &updated)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("word %q: %w", key, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("word %q: %w", key, err)
	}
	if updated != "" {
		w.UpdatedAt, _ = time.Parse(time.RFC3339Nano, updated)
	}
	return &w, nil
}

// Count returns the number of stored words.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, "SELECT count(*) FROM "+table).Scan(&n); err != nil {
		return 0, fmt.Errorf("sqlite: count words: %w", err)
	}
	return n, nil
}

// Upsert writes words in one transaction, keeping stored readings where the
// incoming ones are empty. Words with an empty surface or no readings are
// skipped. Returns the number of rows written.
func (s *Store) Upsert(ctx context.Context, words []domain.Word) (int, error) {
	if len(words) == 0 {
		return 0, nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("sqlite: begin: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	stmt, err := tx.PrepareContext(ctx, upsertSQL)
	if err != nil {
		return 0, fmt.Errorf("sqlite: prepare upsert: %w", err)
	}
	defer stmt.Close()

	now := time.Now().UTC()
	var total int
	for _, w := range words {
		key := domain.NormalizeSurface(w.Surface)
		if key == "" || w.PreferredReading() == "" {
			continue
		}
		updated := w.UpdatedAt
		if updated.IsZero() {
			updated = now
		}
		res, err := stmt.ExecContext(ctx, key, w.GPTReading, w.BEPReading, w.CMUReading, updated.Format(time.RFC3339Nano))
		if err != nil {
			return 0, fmt.Errorf("sqlite: upsert %q: %w", key, err)
		}
		n, _ := res.RowsAffected()
		total += int(n)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("sqlite: commit: %w", err)
	}
	return total, nil
}
