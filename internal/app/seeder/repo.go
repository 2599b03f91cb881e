// Package seeder fills the pronunciation store from offline datasets.
package seeder

import (
	"context"

	"github.com/heartmarshall/transkana/internal/domain"
)

// WordWriter is the write contract consumed by the seeder pipeline.
// Implemented by the PostgreSQL word repository and the SQLite store.
type WordWriter interface {
	// Upsert merges readings by surface form; empty readings never
	// overwrite stored ones.
	Upsert(ctx context.Context, words []domain.Word) (int, error)
}
