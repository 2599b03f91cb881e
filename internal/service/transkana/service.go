// Package transkana is the transliteration engine: it turns mixed
// English/Japanese text into a katakana reading.
package transkana

import (
	"log/slog"

	"github.com/heartmarshall/transkana/internal/lexicon"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type dictionary interface {
	Lookup(surface string) (string, bool)
	Ready() bool
}

type japaneseReader interface {
	Reading(text string) string
}

// ---------------------------------------------------------------------------
// Engine
// ---------------------------------------------------------------------------

// Options tune a single conversion.
type Options struct {
	// Compact removes the spaces left between Japanese text and converted
	// words.
	Compact bool
	// JapaneseReadings replaces Japanese runs with their katakana reading
	// instead of keeping them verbatim.
	JapaneseReadings bool
}

// Engine converts text using a dictionary that may still be loading. It is
// safe for concurrent use.
type Engine struct {
	log     *slog.Logger
	dict    dictionary
	builtin dictionary
	reader  japaneseReader
}

// NewEngine creates an Engine. reader may be nil, in which case
// Options.JapaneseReadings has no effect.
func NewEngine(logger *slog.Logger, dict dictionary, reader japaneseReader) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{
		log:     logger.With("service", "transkana"),
		dict:    dict,
		builtin: lexicon.Builtin(),
		reader:  reader,
	}
}

// Ready reports whether the dictionary has finished loading.
func (e *Engine) Ready() bool {
	return e.dict != nil && e.dict.Ready()
}

// lookup consults the dictionary, then the built-in number vocabulary.
func (e *Engine) lookup(surface string) (string, bool) {
	if e.dict != nil {
		if r, ok := e.dict.Lookup(surface); ok {
			return r, true
		}
	}
	return e.builtin.Lookup(surface)
}
