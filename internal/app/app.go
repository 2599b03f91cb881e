package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/transkana/internal/adapter/postgres"
	"github.com/heartmarshall/transkana/internal/adapter/postgres/word"
	"github.com/heartmarshall/transkana/internal/adapter/sqlite"
	"github.com/heartmarshall/transkana/internal/config"
	"github.com/heartmarshall/transkana/internal/japanese"
	"github.com/heartmarshall/transkana/internal/lexicon"
	"github.com/heartmarshall/transkana/internal/service/transkana"
)

// pinger is implemented by the database-backed lexicon sources.
type pinger interface {
	Ping(ctx context.Context) error
}

// Runtime holds the long-lived components shared by the server and the
// one-shot convert command.
type Runtime struct {
	Config  *config.Config
	Logger  *slog.Logger
	Lexicon *lexicon.Lexicon
	Engine  *transkana.CachedEngine

	source  lexicon.Source
	db      pinger
	closers []func()
}

// Bootstrap opens the configured lexicon source and builds the engine.
// The lexicon is not loaded yet; call LoadLexicon or StartLexicon.
func Bootstrap(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Runtime, error) {
	rt := &Runtime{
		Config:  cfg,
		Logger:  logger,
		Lexicon: lexicon.New(logger),
	}

	if err := rt.openSource(ctx); err != nil {
		rt.Close()
		return nil, err
	}

	var engine *transkana.Engine
	reader, err := japanese.NewReader()
	if err != nil {
		logger.Warn("japanese readings unavailable", slog.String("error", err.Error()))
		engine = transkana.NewEngine(logger, rt.Lexicon, nil)
	} else {
		engine = transkana.NewEngine(logger, rt.Lexicon, reader)
	}
	rt.Engine = transkana.NewCachedEngine(engine, cfg.Engine.CacheTTL, cfg.Engine.CacheCleanup)

	return rt, nil
}

func (rt *Runtime) openSource(ctx context.Context) error {
	cfg := rt.Config
	switch strings.ToLower(cfg.Lexicon.Driver) {
	case config.DriverSQLite:
		store, err := sqlite.Open(ctx, cfg.Lexicon.Path)
		if err != nil {
			return fmt.Errorf("app: open lexicon: %w", err)
		}
		rt.closers = append(rt.closers, func() { store.Close() })
		rt.source, rt.db = store, store

	case config.DriverPostgres:
		pool, err := postgres.NewPool(ctx, cfg.Database)
		if err != nil {
			return fmt.Errorf("app: open lexicon: %w", err)
		}
		rt.closers = append(rt.closers, pool.Close)
		rt.source = word.New(pool, postgres.NewTxManager(pool))
		rt.db = pool

	case config.DriverTSV:
		rt.source = lexicon.TSVSource{Path: cfg.Lexicon.Path}

	case config.DriverNone:
		rt.source = lexicon.MapSource{}

	default:
		return fmt.Errorf("app: unknown lexicon driver %q", cfg.Lexicon.Driver)
	}
	return nil
}

// LoadLexicon fills the lexicon and blocks until it is done or the
// configured load timeout expires.
func (rt *Runtime) LoadLexicon(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, rt.Config.Lexicon.LoadTimeout)
	defer cancel()
	return rt.Lexicon.Load(ctx, rt.source)
}

// StartLexicon loads the lexicon in the background. Conversions run
// without dictionary readings until it finishes.
func (rt *Runtime) StartLexicon(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, rt.Config.Lexicon.LoadTimeout)
	done := rt.Lexicon.LoadAsync(ctx, rt.source)

	go func() {
		defer cancel()
		if err := <-done; err != nil && !errors.Is(err, context.Canceled) {
			rt.Logger.Error("lexicon unavailable, serving without dictionary readings",
				slog.String("error", err.Error()),
			)
		}
	}()
}

// Close releases the lexicon source. Safe to call more than once.
func (rt *Runtime) Close() {
	for i := len(rt.closers) - 1; i >= 0; i-- {
		rt.closers[i]()
	}
	rt.closers = nil
}
