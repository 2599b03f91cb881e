package lexicon

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/transkana/internal/domain"
)

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// gatedSource blocks in Each until release is closed.
type gatedSource struct {
	entries MapSource
	release chan struct{}
}

func (g gatedSource) Name() string { return "gated" }

func (g gatedSource) Each(ctx context.Context, fn func(string, string) error) error {
	select {
	case <-g.release:
	case <-ctx.Done():
		return ctx.Err()
	}
	return g.entries.Each(ctx, fn)
}

type failingSource struct{ err error }

func (f failingSource) Name() string { return "failing" }

func (f failingSource) Each(context.Context, func(string, string) error) error { return f.err }

func TestLexicon_LookupBeforeLoadMisses(t *testing.T) {
	t.Parallel()

	lex := New(testLogger())

	got, ok := lex.Lookup("pen")
	assert.False(t, ok)
	assert.Empty(t, got)
	assert.False(t, lex.Ready())
	assert.Zero(t, lex.Len())
}

func TestLexicon_Load(t *testing.T) {
	t.Parallel()

	lex := New(testLogger())
	err := lex.Load(context.Background(), MapSource{
		"pen":   "ペン",
		"It''s": "イッツ",
		"empty": "",
	})
	require.NoError(t, err)

	assert.True(t, lex.Ready())
	assert.Equal(t, 2, lex.Len())

	got, ok := lex.Lookup("PEN")
	assert.True(t, ok)
	assert.Equal(t, "ペン", got)

	got, ok = lex.Lookup("it's")
	assert.True(t, ok)
	assert.Equal(t, "イッツ", got)

	_, ok = lex.Lookup("empty")
	assert.False(t, ok, "entries without a reading are skipped")
}

func TestLexicon_LoadTwice(t *testing.T) {
	t.Parallel()

	lex := New(testLogger())
	require.NoError(t, lex.Load(context.Background(), MapSource{"a": "ア"}))

	err := lex.Load(context.Background(), MapSource{"b": "ビー"})
	assert.ErrorIs(t, err, domain.ErrAlreadyLoaded)

	err = <-lex.LoadAsync(context.Background(), MapSource{"b": "ビー"})
	assert.ErrorIs(t, err, domain.ErrAlreadyLoaded)

	_, ok := lex.Lookup("b")
	assert.False(t, ok)
}

func TestLexicon_LoadAsync(t *testing.T) {
	t.Parallel()

	lex := New(testLogger())
	src := gatedSource{entries: MapSource{"pen": "ペン"}, release: make(chan struct{})}

	result := lex.LoadAsync(context.Background(), src)

	_, ok := lex.Lookup("pen")
	assert.False(t, ok, "lookups miss while loading")
	assert.False(t, lex.Ready())

	close(src.release)
	select {
	case err := <-result:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("load did not finish")
	}

	require.NoError(t, lex.Wait(context.Background()))
	got, ok := lex.Lookup("pen")
	assert.True(t, ok)
	assert.Equal(t, "ペン", got)
}

func TestLexicon_LoadFailureLeavesUnready(t *testing.T) {
	t.Parallel()

	lex := New(testLogger())
	cause := errors.New("database file is corrupt")

	err := <-lex.LoadAsync(context.Background(), failingSource{err: cause})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrLexiconLoad)
	assert.ErrorIs(t, err, cause)
	assert.False(t, lex.Ready())
	assert.ErrorIs(t, lex.Err(), domain.ErrLexiconLoad)
	assert.ErrorIs(t, lex.Wait(context.Background()), cause)

	// A later attempt may still succeed.
	require.NoError(t, lex.Load(context.Background(), MapSource{"pen": "ペン"}))
	assert.True(t, lex.Ready())
	assert.NoError(t, lex.Wait(context.Background()))
}

func TestLexicon_WaitHonoursContext(t *testing.T) {
	t.Parallel()

	lex := New(testLogger())
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	assert.ErrorIs(t, lex.Wait(ctx), context.DeadlineExceeded)
}

func TestLexicon_ConcurrentLoadRejected(t *testing.T) {
	t.Parallel()

	lex := New(testLogger())
	src := gatedSource{entries: MapSource{"pen": "ペン"}, release: make(chan struct{})}
	first := lex.LoadAsync(context.Background(), src)

	err := lex.Load(context.Background(), MapSource{"x": "エックス"})
	assert.ErrorIs(t, err, domain.ErrConflict)

	close(src.release)
	require.NoError(t, <-first)
}

func TestEachTSV(t *testing.T) {
	t.Parallel()

	input := "# comment\n\npen\tペン\r\nwell-known\tウェルノウン\n"
	got := map[string]string{}
	err := EachTSV(context.Background(), strings.NewReader(input), func(s, r string) error {
		got[s] = r
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"pen": "ペン", "well-known": "ウェルノウン"}, got)
}

func TestEachTSV_Malformed(t *testing.T) {
	t.Parallel()

	err := EachTSV(context.Background(), strings.NewReader("pen\tペン\nbroken line\n"), func(string, string) error {
		return nil
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
}

func TestTSVSource(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "words.tsv")
	require.NoError(t, os.WriteFile(path, []byte("pen\tペン\n"), 0o600))

	lex := New(testLogger())
	require.NoError(t, lex.Load(context.Background(), TSVSource{Path: path}))
	got, ok := lex.Lookup("pen")
	assert.True(t, ok)
	assert.Equal(t, "ペン", got)

	err := New(testLogger()).Load(context.Background(), TSVSource{Path: filepath.Join(t.TempDir(), "missing.tsv")})
	assert.ErrorIs(t, err, domain.ErrLexiconLoad)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestBuiltin(t *testing.T) {
	t.Parallel()

	lex := Builtin()
	require.True(t, lex.Ready())

	got, ok := lex.Lookup("twenty")
	assert.True(t, ok)
	assert.Equal(t, "トゥエンティ", got)

	got, ok = lex.Lookup("hyphen")
	assert.True(t, ok)
	assert.Equal(t, "ハイフン", got)
}
