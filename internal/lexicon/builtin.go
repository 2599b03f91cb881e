package lexicon

import (
	"bytes"
	"context"
	_ "embed"
	"log/slog"
	"sync"
)

//go:embed builtin.tsv
var builtinTSV []byte

type embeddedSource struct{}

func (embeddedSource) Name() string { return "builtin" }

func (embeddedSource) Each(ctx context.Context, fn func(surface, reading string) error) error {
	return EachTSV(ctx, bytes.NewReader(builtinTSV), fn)
}

var builtin = sync.OnceValue(func() *Lexicon {
	lex := New(slog.New(slog.DiscardHandler))
	if err := lex.Load(context.Background(), embeddedSource{}); err != nil {
		// The table is compiled in; failing to parse it is a build defect.
		panic(err)
	}
	return lex
})

// Builtin returns the always-ready table of readings the engine needs
// regardless of the external dictionary: the words produced by number
// spelling.
func Builtin() *Lexicon {
	return builtin()
}
