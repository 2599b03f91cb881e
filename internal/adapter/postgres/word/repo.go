// Package word implements the pronunciation store backed by PostgreSQL.
// It is both a lexicon.Source for the engine and the seeder's write target.
package word

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/transkana/internal/adapter/postgres"
	"github.com/heartmarshall/transkana/internal/domain"
)

const table = "words"

// preferredReading mirrors domain.Word.PreferredReading in SQL.
const preferredReading = `CASE
	WHEN gpt_reading <> '' THEN gpt_reading
	WHEN bep_reading <> '' THEN bep_reading
	ELSE cmu_reading_kana
END`

// upsertSQL keeps existing readings when the incoming column is empty.
const upsertSQL = `INSERT INTO words (surface_form, gpt_reading, bep_reading, cmu_reading_kana, updated_at)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (surface_form) DO UPDATE SET
	gpt_reading      = COALESCE(NULLIF(EXCLUDED.gpt_reading, ''), words.gpt_reading),
	bep_reading      = COALESCE(NULLIF(EXCLUDED.bep_reading, ''), words.bep_reading),
	cmu_reading_kana = COALESCE(NULLIF(EXCLUDED.cmu_reading_kana, ''), words.cmu_reading_kana),
	updated_at       = EXCLUDED.updated_at`

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo provides word persistence backed by PostgreSQL.
type Repo struct {
	pool      *pgxpool.Pool
	txm       *postgres.TxManager
	batchSize int
}

// New creates a new word repository.
func New(pool *pgxpool.Pool, txm *postgres.TxManager) *Repo {
	return &Repo{pool: pool, txm: txm, batchSize: 500}
}

// Name identifies the repository as a lexicon source.
func (r *Repo) Name() string { return "postgres:" + table }

// Each streams every surface form with its preferred reading. Rows whose
// readings are all empty are skipped by the query.
func (r *Repo) Each(ctx context.Context, fn func(surface, reading string) error) error {
	query, args, err := psql.
		Select("surface_form", preferredReading+" AS reading").
		From(table).
		Where(sq.Or{
			sq.NotEq{"gpt_reading": ""},
			sq.NotEq{"bep_reading": ""},
			sq.NotEq{"cmu_reading_kana": ""},
		}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build select words: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "words", "*")
	}
	defer rows.Close()

	var surface, reading string
	_, err = pgx.ForEachRow(rows, []any{&surface, &reading}, func() error {
		return fn(surface, reading)
	})
	if err != nil {
		return postgres.MapError(err, "words", "*")
	}
	return nil
}

// Get returns a single word by surface form.
// Returns domain.ErrNotFound if it does not exist.
func (r *Repo) Get(ctx context.Context, surface string) (*domain.Word, error) {
	key := domain.NormalizeSurface(surface)

	query, args, err := psql.
		Select("surface_form", "gpt_reading", "bep_reading", "cmu_reading_kana", "updated_at").
		From(table).
		Where(sq.Eq{"surface_form": key}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select word: %w", err)
	}

	var w domain.Word
	err = postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...).
		Scan(&w.Surface, &w.GPTReading, &w.BEPReading, &w.CMUReading, &w.UpdatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "word", key)
	}
	return &w, nil
}

// Count returns the number of stored words.
func (r *Repo) Count(ctx context.Context) (int, error) {
	query, args, err := psql.Select("count(*)").From(table).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count words: %w", err)
	}

	var n int
	if err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, postgres.MapError(err, "words", "*")
	}
	return n, nil
}

// Upsert writes words in batches inside one transaction. Surface forms are
// normalized; words with an empty surface or no readings are skipped.
// Returns the number of rows inserted or updated.
func (r *Repo) Upsert(ctx context.Context, words []domain.Word) (int, error) {
	if len(words) == 0 {
		return 0, nil
	}

	var total int
	err := r.txm.RunInTx(ctx, func(ctx context.Context) error {
		total = 0
		now := time.Now().UTC()

		for start := 0; start < len(words); start += r.batchSize {
			end := min(start+r.batchSize, len(words))

			batch := &pgx.Batch{}
			for _, w := range words[start:end] {
				key := domain.NormalizeSurface(w.Surface)
				if key == "" || w.PreferredReading() == "" {
					continue
				}
				updated := w.UpdatedAt
				if updated.IsZero() {
					updated = now
				}
				batch.Queue(upsertSQL, key, w.GPTReading, w.BEPReading, w.CMUReading, updated)
			}
			if batch.Len() == 0 {
				continue
			}

			n, err := sendBatchExec(ctx, r.pool, batch)
			if err != nil {
				return err
			}
			total += n
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("upsert words: %w", err)
	}
	return total, nil
}

func sendBatchExec(ctx context.Context, pool *pgxpool.Pool, batch *pgx.Batch) (int, error) {
	br := postgres.QuerierFromCtx(ctx, pool).SendBatch(ctx, batch)
	defer br.Close()

	var total int
	for i := 0; i < batch.Len(); i++ {
		tag, err := br.Exec()
		if err != nil {
			return 0, postgres.MapError(err, "word batch", fmt.Sprintf("#%d", i))
		}
		total += int(tag.RowsAffected())
	}
	return total, nil
}
