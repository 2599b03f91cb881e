// Package tokenizer splits mixed English/Japanese text into classified
// tokens.
package tokenizer

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/dlclark/regexp2"

	"github.com/heartmarshall/transkana/internal/domain"
	"github.com/heartmarshall/transkana/internal/script"
)

var quoteReplacer = strings.NewReplacer(
	"‘", "'", "’", "'", "‚", "'", "‛", "'", "′", "'",
	"“", `"`, "”", `"`, "„", `"`, "‟", `"`, "″", `"`,
)

// Tokenize normalizes text and cuts it into tokens. Whitespace separates
// tokens and is dropped; every other character ends up in some token.
func Tokenize(text string) []domain.Token {
	text = Normalize(text)
	if text == "" {
		return nil
	}

	locs := scanRe.FindAllStringIndex(text, -1)
	tokens := make([]domain.Token, 0, len(locs))
	for _, loc := range locs {
		value := text[loc[0]:loc[1]]
		typ := Classify(value)

		if typ == domain.TokenNumber && digitRunRe.MatchString(value) {
			tokens = append(tokens, splitDigitRun(value, loc[0])...)
			continue
		}

		tok := domain.Token{
			Value:  value,
			Type:   typ,
			Script: script.Classify(value),
			Start:  loc[0],
			End:    loc[1],
		}
		if n := len(tokens); n > 0 && typ == domain.TokenNumber && isOperandEnd(tokens[n-1], tok) {
			tokens = append(tokens, splitSign(tok)...)
			continue
		}
		tokens = append(tokens, tok)
	}

	markFaceParts(tokens)
	return MergeSymbols(tokens)
}

// isOperandEnd reports whether a signed number directly follows a number or
// word, as in "1+2". The sign is then an operator, not part of the number.
func isOperandEnd(prev, tok domain.Token) bool {
	if !prev.Adjacent(tok) {
		return false
	}
	if prev.Type != domain.TokenNumber && prev.Type != domain.TokenWord {
		return false
	}
	r, _ := utf8.DecodeRuneInString(tok.Value)
	return r == '+' || r == '-' || r == '−'
}

func splitSign(tok domain.Token) []domain.Token {
	_, size := utf8.DecodeRuneInString(tok.Value)
	sign, rest := tok.Value[:size], tok.Value[size:]
	return []domain.Token{
		{Value: sign, Type: domain.TokenSymbol, Script: script.Classify(sign), Start: tok.Start, End: tok.Start + size},
		{Value: rest, Type: Classify(rest), Script: script.Classify(rest), Start: tok.Start + size, End: tok.End},
	}
}

// markFaceParts turns the pieces of an emoticon into symbols so the merge
// pass can join them: middle-dot runs touching a symbol, and one or two
// non-Latin letters ("ω", "Д") with symbols touching on both sides.
func markFaceParts(tokens []domain.Token) {
	touchesSymbol := func(i int) (left, right bool) {
		if i > 0 && tokens[i-1].Type == domain.TokenSymbol && tokens[i-1].Adjacent(tokens[i]) {
			left = true
		}
		if i+1 < len(tokens) && tokens[i+1].Type == domain.TokenSymbol && tokens[i].Adjacent(tokens[i+1]) {
			right = true
		}
		return left, right
	}

	for i := range tokens {
		if tokens[i].Type != domain.TokenJapanese || !onlyMiddleDots(tokens[i].Value) {
			continue
		}
		if l, r := touchesSymbol(i); l || r {
			tokens[i].Type = domain.TokenSymbol
		}
	}
	// Dots turned into symbols above may now flank a letter.
	for i := range tokens {
		if !isFaceLetter(tokens[i]) {
			continue
		}
		if l, r := touchesSymbol(i); l && r {
			tokens[i].Type = domain.TokenSymbol
		}
	}
}

func onlyMiddleDots(s string) bool {
	for _, r := range s {
		if r != '・' && r != '･' {
			return false
		}
	}
	return s != ""
}

func isFaceLetter(tok domain.Token) bool {
	if tok.Type != domain.TokenWord || utf8.RuneCountInString(tok.Value) > 2 {
		return false
	}
	return foreignRe.MatchString(tok.Value)
}

// Normalize straightens smart quotes, turns every Unicode space into an
// ASCII space and inserts thousands separators into bare integers.
func Normalize(text string) string {
	text = quoteReplacer.Replace(text)
	text = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return ' '
		}
		return r
	}, text)
	return groupThousands(text)
}

// Classify returns the type of a single matched value. Priority is
// punctuation, Japanese, word, number (phone first), foreign-script word,
// then symbol.
func Classify(value string) domain.TokenType {
	switch {
	case punctRe.MatchString(value) && !numberRe.MatchString(value):
		return domain.TokenPunctuation
	case japaneseRe.MatchString(value) && !hasFullWidthAlnum(value):
		return domain.TokenJapanese
	case wordRe.MatchString(value):
		return domain.TokenWord
	case numberRe.MatchString(value):
		if phoneRe.MatchString(domain.HalfWidth(value)) {
			return domain.TokenPhone
		}
		return domain.TokenNumber
	case foreignRe.MatchString(value):
		return domain.TokenWord
	}
	return domain.TokenSymbol
}

// MergeSymbols joins symbol tokens that touch in the source into one token,
// so emoticons and operator clusters are resolved as a unit.
func MergeSymbols(tokens []domain.Token) []domain.Token {
	if len(tokens) < 2 {
		return tokens
	}

	out := tokens[:1]
	for _, tok := range tokens[1:] {
		last := &out[len(out)-1]
		if last.Type == domain.TokenSymbol && tok.Type == domain.TokenSymbol && last.Adjacent(tok) {
			last.Value += tok.Value
			last.End = tok.End
			last.Script = script.Classify(last.Value)
			continue
		}
		out = append(out, tok)
	}
	return out
}

// splitDigitRun breaks "10-20" style runs into one number token per group.
// Phone-shaped runs never get here.
func splitDigitRun(value string, offset int) []domain.Token {
	parts := strings.Split(value, "-")
	out := make([]domain.Token, 0, len(parts))
	pos := offset
	for _, p := range parts {
		if p != "" {
			out = append(out, domain.Token{
				Value:  p,
				Type:   domain.TokenNumber,
				Script: script.Classify(p),
				Start:  pos,
				End:    pos + len(p),
			})
		}
		pos += len(p) + 1
	}
	return out
}

func groupThousands(text string) string {
	out, err := groupRe.ReplaceFunc(text, func(m regexp2.Match) string {
		return insertCommas(m.String())
	}, -1, -1)
	if err != nil {
		return text
	}
	return out
}

func insertCommas(digits string) string {
	head := len(digits) % 3
	if head == 0 {
		head = 3
	}
	var b strings.Builder
	b.Grow(len(digits) + len(digits)/3)
	b.WriteString(digits[:head])
	for i := head; i < len(digits); i += 3 {
		b.WriteByte(',')
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

func hasFullWidthAlnum(s string) bool {
	for _, r := range s {
		if script.IsFullWidthAlnum(r) {
			return true
		}
	}
	return false
}
