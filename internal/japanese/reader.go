// Package japanese produces katakana readings for Japanese text with a
// morphological analyzer.
package japanese

import (
	"fmt"
	"strings"

	"github.com/ikawaha/kagome-dict/ipa"
	"github.com/ikawaha/kagome/v2/tokenizer"
)

// IPA feature index of the katakana reading.
const readingFeature = 7

const (
	hiraganaFirst = 'ぁ'
	hiraganaLast  = 'ゖ'
	kanaOffset    = 'ァ' - 'ぁ'
)

// Reader converts kanji and hiragana to their katakana reading.
type Reader struct {
	t *tokenizer.Tokenizer
}

// NewReader loads the IPA dictionary and builds a tokenizer.
func NewReader() (*Reader, error) {
	t, err := tokenizer.New(ipa.Dict(), tokenizer.OmitBosEos())
	if err != nil {
		return nil, fmt.Errorf("japanese: new tokenizer: %w", err)
	}
	return &Reader{t: t}, nil
}

// Reading returns the katakana reading of text. Morphemes the dictionary
// does not know keep their surface, with hiragana folded to katakana.
func (r *Reader) Reading(text string) string {
	var b strings.Builder
	for _, tok := range r.t.Tokenize(text) {
		if tok.Class == tokenizer.DUMMY {
			continue
		}
		features := tok.Features()
		if len(features) > readingFeature && features[readingFeature] != "*" {
			b.WriteString(features[readingFeature])
			continue
		}
		b.WriteString(ToKatakana(tok.Surface))
	}
	return b.String()
}

// ToKatakana shifts hiragana to katakana and leaves everything else.
func ToKatakana(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= hiraganaFirst && r <= hiraganaLast {
			r += kanaOffset
		}
		b.WriteRune(r)
	}
	return b.String()
}
