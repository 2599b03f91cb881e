package transkana

import (
	"regexp"
	"strings"

	"github.com/heartmarshall/transkana/internal/domain"
	"github.com/heartmarshall/transkana/internal/tokenizer"
)

const (
	japaneseClass = `[\p{Hiragana}\p{Katakana}\p{Han}ー々〆]`
	// Japanese text that is not a converted word.
	nativeClass = `[\p{Hiragana}\p{Han}々〆、。「」『』]`
	// Converted words and leftover Latin.
	foreignClass = `[A-Za-z\p{Katakana}ー・]`
)

var (
	spaceBeforePunctRe = regexp.MustCompile(`\s+([,.!?;:、。，．！？；：)\]}）」』】])`)
	japaneseDigitRe    = regexp.MustCompile(`(` + japaneseClass + `)\s+([0-9])`)
	digitJapaneseRe    = regexp.MustCompile(`([0-9])\s+(` + japaneseClass + `)`)
	nativeForeignRe    = regexp.MustCompile(`(` + nativeClass + `)\s+(` + foreignClass + `)`)
	foreignNativeRe    = regexp.MustCompile(`(` + foreignClass + `)\s+(` + nativeClass + `)`)
	multiSpaceRe       = regexp.MustCompile(`\s{2,}`)
)

// Exec converts text to its katakana reading. Tokens are read one by one,
// joined with single spaces and the spacing is tidied. Empty input gives
// an empty result.
func (e *Engine) Exec(text string, opts Options) string {
	if strings.TrimSpace(text) == "" {
		return ""
	}

	tokens := tokenizer.Tokenize(text)
	hasJapanese := false
	for _, tok := range tokens {
		if tok.Type == domain.TokenJapanese {
			hasJapanese = true
			break
		}
	}

	out := make([]string, 0, len(tokens))
	for i, tok := range tokens {
		c := Context{HasJapanese: hasJapanese}
		if i > 0 {
			c.Prev = &tokens[i-1]
		}
		if i+1 < len(tokens) {
			c.Next = &tokens[i+1]
		}

		var s string
		if tok.Type == domain.TokenJapanese && opts.JapaneseReadings && e.reader != nil {
			s = e.reader.Reading(tok.Value)
		} else {
			s = e.FetchKana(tok, c)
		}
		if s != "" {
			out = append(out, s)
		}
	}

	return Tidy(strings.Join(out, " "), opts.Compact)
}

// Tidy normalizes the spacing of joined readings: no space before
// punctuation, none between Japanese and digits, and with compact set none
// between Japanese text and converted words.
func Tidy(s string, compact bool) string {
	s = spaceBeforePunctRe.ReplaceAllString(s, "$1")
	s = japaneseDigitRe.ReplaceAllString(s, "$1$2")
	s = digitJapaneseRe.ReplaceAllString(s, "$1$2")
	if compact {
		s = nativeForeignRe.ReplaceAllString(s, "$1$2")
		s = foreignNativeRe.ReplaceAllString(s, "$1$2")
	}
	s = multiSpaceRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}
