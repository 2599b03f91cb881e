// Package lexicon holds the surface-form to katakana reading table.
//
// The table is filled once from a Source, usually in the background, and
// is read-only afterwards. Until the load has finished every lookup misses,
// so callers keep working in a degraded mode instead of blocking.
package lexicon

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/heartmarshall/transkana/internal/domain"
)

// Source streams surface/reading pairs. Each stops at the first error
// returned by fn.
type Source interface {
	Name() string
	Each(ctx context.Context, fn func(surface, reading string) error) error
}

// Lexicon is a write-once reading table guarded by a readiness flag.
type Lexicon struct {
	log *slog.Logger

	mu      sync.Mutex
	loading bool
	done    chan struct{}
	err     error

	entries atomic.Pointer[map[string]string]
	ready   atomic.Bool
}

// New creates an empty, unready lexicon.
func New(logger *slog.Logger) *Lexicon {
	if logger == nil {
		logger = slog.Default()
	}
	return &Lexicon{
		log:  logger.With("component", "lexicon"),
		done: make(chan struct{}),
	}
}

// Load fills the table from src and blocks until it is done. A lexicon
// can be loaded successfully only once; a failed load may be retried.
func (l *Lexicon) Load(ctx context.Context, src Source) error {
	if err := l.begin(); err != nil {
		return err
	}
	err := l.fill(ctx, src)
	l.finish(err)
	return err
}

// LoadAsync starts Load in a goroutine and returns a channel that receives
// its result exactly once.
func (l *Lexicon) LoadAsync(ctx context.Context, src Source) <-chan error {
	result := make(chan error, 1)
	if err := l.begin(); err != nil {
		result <- err
		close(result)
		return result
	}

	go func() {
		defer close(result)
		err := l.fill(ctx, src)
		l.finish(err)
		result <- err
	}()
	return result
}

// Wait blocks until a load attempt has finished or ctx is done and
// returns the load error, if any.
func (l *Lexicon) Wait(ctx context.Context) error {
	l.mu.Lock()
	done := l.done
	l.mu.Unlock()

	select {
	case <-done:
		l.mu.Lock()
		defer l.mu.Unlock()
		return l.err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Lookup returns the reading stored for surface. The key is normalized
// with domain.NormalizeSurface. Before the table is ready it always misses.
func (l *Lexicon) Lookup(surface string) (string, bool) {
	if !l.ready.Load() {
		return "", false
	}
	m := l.entries.Load()
	if m == nil {
		return "", false
	}
	reading, ok := (*m)[domain.NormalizeSurface(surface)]
	return reading, ok
}

// Ready reports whether the table has been loaded.
func (l *Lexicon) Ready() bool { return l.ready.Load() }

// Len returns the number of entries, zero before the table is ready.
func (l *Lexicon) Len() int {
	if m := l.entries.Load(); m != nil {
		return len(*m)
	}
	return 0
}

// Err returns the error of the last finished load attempt.
func (l *Lexicon) Err() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.err
}

func (l *Lexicon) begin() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	switch {
	case l.ready.Load():
		return domain.ErrAlreadyLoaded
	case l.loading:
		return fmt.Errorf("lexicon: load in progress: %w", domain.ErrConflict)
	}
	l.loading = true
	select {
	case <-l.done:
		// A previous attempt failed; give waiters a fresh channel.
		l.done = make(chan struct{})
	default:
	}
	return nil
}

func (l *Lexicon) finish(err error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.loading = false
	l.err = err
	if err == nil {
		l.ready.Store(true)
	}
	close(l.done)
}

func (l *Lexicon) fill(ctx context.Context, src Source) error {
	start := time.Now()
	entries := make(map[string]string)
	skipped := 0

	err := src.Each(ctx, func(surface, reading string) error {
		key := domain.NormalizeSurface(surface)
		if key == "" || reading == "" {
			skipped++
			return nil
		}
		entries[key] = reading
		return nil
	})
	if err != nil {
		l.log.Warn("lexicon load failed",
			slog.String("source", src.Name()),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("lexicon: load %s: %w: %w", src.Name(), domain.ErrLexiconLoad, err)
	}

	l.entries.Store(&entries)
	l.log.Info("lexicon loaded",
		slog.String("source", src.Name()),
		slog.Int("entries", len(entries)),
		slog.Int("skipped", skipped),
		slog.Duration("duration", time.Since(start)),
	)
	return nil
}
