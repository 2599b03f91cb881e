package app

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/transkana/internal/adapter/sqlite"
	"github.com/heartmarshall/transkana/internal/config"
	"github.com/heartmarshall/transkana/internal/domain"
	"github.com/heartmarshall/transkana/internal/service/transkana"
)

func testConfig(driver, path string) *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Host:            "127.0.0.1",
			Port:            0,
			ShutdownTimeout: time.Second,
			MaxBodyBytes:    1 << 20,
		},
		Lexicon: config.LexiconConfig{Driver: driver, Path: path, LoadTimeout: 10 * time.Second},
		Engine: config.EngineConfig{
			MaxInputRunes: 100,
			CacheTTL:      time.Minute,
			CacheCleanup:  time.Minute,
		},
		RateLimit: config.RateLimitConfig{CleanupInterval: time.Minute},
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func TestBootstrap_TSV(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "words.tsv")
	require.NoError(t, os.WriteFile(path, []byte("pen\tペン\n"), 0o644))

	rt, err := Bootstrap(context.Background(), testConfig(config.DriverTSV, path), discardLogger())
	require.NoError(t, err)
	defer rt.Close()

	assert.Nil(t, rt.db)
	assert.False(t, rt.Engine.Ready())

	require.NoError(t, rt.LoadLexicon(context.Background()))
	assert.True(t, rt.Engine.Ready())
	assert.Equal(t, "ペン", rt.Engine.Exec("pen", transkana.Options{}))
}

func TestBootstrap_SQLite(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "kanayomi.db")

	store, err := sqlite.Open(ctx, path)
	require.NoError(t, err)
	require.NoError(t, store.EnsureSchema(ctx))
	_, err = store.Upsert(ctx, []domain.Word{{Surface: "pen", CMUReading: "ペン"}})
	require.NoError(t, err)
	require.NoError(t, store.Close())

	rt, err := Bootstrap(ctx, testConfig(config.DriverSQLite, path), discardLogger())
	require.NoError(t, err)
	defer rt.Close()

	require.NotNil(t, rt.db)
	require.NoError(t, rt.db.Ping(ctx))

	rt.StartLexicon(ctx)
	require.NoError(t, rt.Lexicon.Wait(ctx))
	assert.Equal(t, 1, rt.Lexicon.Len())
}

func TestBootstrap_NoneIsReadyWithoutEntries(t *testing.T) {
	t.Parallel()

	rt, err := Bootstrap(context.Background(), testConfig(config.DriverNone, ""), discardLogger())
	require.NoError(t, err)
	defer rt.Close()

	require.NoError(t, rt.LoadLexicon(context.Background()))
	assert.True(t, rt.Lexicon.Ready())
	assert.Zero(t, rt.Lexicon.Len())
}

func TestBootstrap_Errors(t *testing.T) {
	t.Parallel()

	t.Run("unknown driver", func(t *testing.T) {
		t.Parallel()
		_, err := Bootstrap(context.Background(), testConfig("redis", ""), discardLogger())
		require.Error(t, err)
		assert.Contains(t, err.Error(), `unknown lexicon driver "redis"`)
	})

	t.Run("missing tsv fails on load", func(t *testing.T) {
		t.Parallel()
		rt, err := Bootstrap(context.Background(), testConfig(config.DriverTSV, "/nonexistent/words.tsv"), discardLogger())
		require.NoError(t, err)
		defer rt.Close()

		err = rt.LoadLexicon(context.Background())
		require.ErrorIs(t, err, domain.ErrLexiconLoad)
		assert.False(t, rt.Lexicon.Ready())
	})
}

func TestServe_StopsOnCancel(t *testing.T) {
	t.Parallel()

	rt, err := Bootstrap(context.Background(), testConfig(config.DriverNone, ""), discardLogger())
	require.NoError(t, err)
	defer rt.Close()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- Serve(ctx, rt) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Serve did not return after cancel")
	}
}
