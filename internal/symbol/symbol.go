// Package symbol reads symbol tokens aloud. The same character can read
// differently in an arithmetic expression and in running text, so the
// resolver looks at the neighbouring tokens.
package symbol

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/heartmarshall/transkana/internal/domain"
)

const (
	maxOperandDigits  = 12
	maxOperandLetters = 2
)

// Resolve returns the reading of a symbol token given its neighbours; prev
// and next may be nil. Face clusters and unmapped symbols come back
// unchanged.
func Resolve(value string, prev, next *domain.Token) string {
	if IsFace(value) {
		return value
	}
	if IsMathContext(prev, next) {
		if r, ok := mathReadings[value]; ok {
			return r
		}
	}
	if r, ok := generalReadings[value]; ok {
		return r
	}
	return value
}

// IsFace reports whether value is an emoticon cluster: two or more
// characters, no digits and no Latin or Japanese letters, at least one of
// them a bracket or a middle dot. Other scripts are allowed, as in "(´・ω・`)".
func IsFace(value string) bool {
	if utf8.RuneCountInString(value) < 2 {
		return false
	}
	marked := false
	for _, r := range value {
		if faceMarks[r] {
			marked = true
			continue
		}
		if unicode.IsDigit(r) || unicode.In(r, unicode.Latin, unicode.Hiragana, unicode.Katakana, unicode.Han) {
			return false
		}
	}
	return marked
}

// IsMathContext reports whether a symbol between prev and next is an
// operator. Both neighbours must be short numbers or short letter runs;
// two different single capitals ("Q&A") read as an abbreviation instead.
func IsMathContext(prev, next *domain.Token) bool {
	if prev == nil || next == nil {
		return false
	}
	if !isOperand(*prev) || !isOperand(*next) {
		return false
	}
	if isSingleUpper(prev.Value) && isSingleUpper(next.Value) && prev.Value != next.Value {
		return false
	}
	return true
}

func isOperand(tok domain.Token) bool {
	v := domain.HalfWidth(tok.Value)
	n := utf8.RuneCountInString(v)
	switch {
	case n == 0:
		return false
	case isNumeric(v):
		return n <= maxOperandDigits
	case isLetters(v):
		return n <= maxOperandLetters
	}
	return false
}

func isNumeric(s string) bool {
	s = strings.TrimLeft(s, "+-")
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

func isLetters(s string) bool {
	for _, r := range s {
		if !(r >= 'a' && r <= 'z') && !(r >= 'A' && r <= 'Z') {
			return false
		}
	}
	return true
}

func isSingleUpper(s string) bool {
	s = domain.HalfWidth(s)
	return len(s) == 1 && s[0] >= 'A' && s[0] <= 'Z'
}
