package transkana

import (
	"log/slog"
	"strings"

	"github.com/dlclark/regexp2"

	"github.com/heartmarshall/transkana/internal/domain"
	"github.com/heartmarshall/transkana/internal/numword"
	"github.com/heartmarshall/transkana/internal/romaji"
	"github.com/heartmarshall/transkana/internal/symbol"
)

const (
	articleReading = "ア"
	fragmentSep    = "・"
	fullStop       = "。"
)

// camelRe splits a hyphen-free segment into words: acronyms followed by a
// capitalised word, capitalised or lower-case words with contractions,
// all-caps runs and digit groups.
var camelRe = regexp2.MustCompile(
	`\p{Lu}+(?=\p{Lu}\p{Ll})|\p{Lu}?\p{Ll}+(?:'\p{Ll}+)*|\p{Lu}+(?:'\p{Lu}+)*|[0-9]+(?:[.,][0-9]+)*`,
	regexp2.None)

// Context is what FetchKana knows about a token's surroundings.
type Context struct {
	HasJapanese bool
	Prev        *domain.Token
	Next        *domain.Token
}

// FetchKana returns the reading of one token.
func (e *Engine) FetchKana(tok domain.Token, c Context) string {
	v := tok.Value

	switch {
	case tok.Type == domain.TokenJapanese, tok.Type == domain.TokenPunctuation:
		return v
	case tok.Type == domain.TokenWord && tok.Script.IsForeign():
		return v
	case v == "a" || v == "A":
		if c.Next != nil && c.Next.Type == domain.TokenWord && c.Next.Script == domain.ScriptLatin {
			return articleReading
		}
		name, _ := romaji.LetterName('a')
		return name
	case tok.Type == domain.TokenPhone:
		if c.HasJapanese {
			return plainDigits(v)
		}
		return e.wordReading(numword.SpellDigits(v))
	case tok.Type == domain.TokenNumber && tok.Script == domain.ScriptLatin:
		return e.numberReading(v, c.HasJapanese)
	case tok.Type == domain.TokenSymbol:
		return symbol.Resolve(v, c.Prev, c.Next)
	}

	key := sanitize(v)
	if r, ok := e.lookup(key); ok {
		if strings.HasSuffix(v, ".") {
			r += fullStop
		}
		return r
	}
	if isNumberLiteral(key) {
		return e.numberReading(key, c.HasJapanese)
	}
	return e.decompose(v)
}

// numberReading verbalizes numbers in text without Japanese; in Japanese
// text they stay as plain half-width digits.
func (e *Engine) numberReading(v string, hasJapanese bool) string {
	if hasJapanese {
		return plainDigits(v)
	}
	return e.wordReading(numword.Convert(v))
}

// wordReading reads a hyphenated English word: whole-word dictionary hit
// first, then fragment by fragment.
func (e *Engine) wordReading(words string) string {
	if r, ok := e.lookup(words); ok {
		return r
	}
	return e.decompose(words)
}

// decompose splits a word the dictionary does not know into fragments and
// reads each one, joining the readings with a middle dot.
func (e *Engine) decompose(word string) string {
	fragments := Fragments(word)
	if len(fragments) == 0 {
		return word
	}
	e.log.Debug("dictionary miss, decomposing",
		slog.String("word", word),
		slog.Int("fragments", len(fragments)),
	)

	parts := make([]string, 0, len(fragments))
	for _, f := range fragments {
		lower := strings.ToLower(f)
		switch r, ok := e.lookup(lower); {
		case ok:
			parts = append(parts, r)
		case isNumberLiteral(lower):
			parts = append(parts, e.wordReading(numword.Convert(lower)))
		default:
			parts = append(parts, romaji.Readable(lower))
		}
	}
	return strings.Join(parts, fragmentSep)
}

// Fragments splits a word at hyphens and camel-case boundaries. Folding
// hyphenated segments into camel case yields the same fragments, so
// "well-known" and "WellKnown" differ only in letter case.
func Fragments(word string) []string {
	word = strings.Trim(domain.HalfWidth(word), ",.")

	var out []string
	for _, seg := range strings.Split(word, "-") {
		m, err := camelRe.FindStringMatch(seg)
		for err == nil && m != nil {
			out = append(out, m.String())
			m, err = camelRe.FindNextMatch(m)
		}
	}
	return out
}

func sanitize(v string) string {
	return strings.Trim(domain.HalfWidth(v), ",.")
}

func plainDigits(v string) string {
	return strings.ReplaceAll(domain.HalfWidth(v), ",", "")
}

func isNumberLiteral(s string) bool {
	s = strings.TrimLeft(s, "+-")
	if s == "" {
		return false
	}
	digits := 0
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == '.' || r == ',':
		default:
			return false
		}
	}
	return digits > 0
}
