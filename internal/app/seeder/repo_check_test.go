package seeder_test

import (
	"github.com/heartmarshall/transkana/internal/adapter/postgres/word"
	"github.com/heartmarshall/transkana/internal/adapter/sqlite"
	"github.com/heartmarshall/transkana/internal/app/seeder"
)

// Compile-time checks: both stores must satisfy WordWriter.
var (
	_ seeder.WordWriter = (*word.Repo)(nil)
	_ seeder.WordWriter = (*sqlite.Store)(nil)
)
