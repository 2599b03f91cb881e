package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/transkana/internal/domain"
)

// UniqueSurface returns a lowercase surface form that does not collide with
// other tests sharing the container.
func UniqueSurface(prefix string) string {
	return prefix + "-" + uuid.New().String()[:8]
}

// SeedWord inserts a word row directly and returns it.
func SeedWord(t *testing.T, pool *pgxpool.Pool, w domain.Word) domain.Word {
	t.Helper()

	if w.Surface == "" {
		w.Surface = UniqueSurface("word")
	}
	if w.UpdatedAt.IsZero() {
		w.UpdatedAt = time.Now().UTC().Truncate(time.Microsecond)
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO words (surface_form, gpt_reading, bep_reading, cmu_reading_kana, updated_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		w.Surface, w.GPTReading, w.BEPReading, w.CMUReading, w.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedWord insert: %v", err)
	}

	return w
}
