// Package script tags strings with the writing system they are written in.
package script

import (
	"unicode"

	"github.com/heartmarshall/transkana/internal/domain"
)

type predicate func(r rune) bool

// classes are tried in order; the first one that accepts every rune wins.
var classes = []struct {
	script domain.Script
	accept predicate
}{
	{domain.ScriptCyrillic, inTable(unicode.Cyrillic)},
	{domain.ScriptGreek, inTable(unicode.Greek)},
	{domain.ScriptArabic, inTable(unicode.Arabic)},
	{domain.ScriptDevanagari, inTable(unicode.Devanagari)},
	{domain.ScriptHiragana, IsHiragana},
	{domain.ScriptKatakana, IsKatakana},
	{domain.ScriptKanji, IsKanji},
	{domain.ScriptLatin, isLatin},
	{domain.ScriptFullWidthNumber, isFullWidthNumber},
}

// Classify returns the script of text, or ScriptUnknown when no single
// script covers every character. Empty input is unknown.
func Classify(text string) domain.Script {
	if text == "" {
		return domain.ScriptUnknown
	}
	for _, c := range classes {
		if all(text, c.accept) {
			return c.script
		}
	}
	return domain.ScriptUnknown
}

// IsHiragana reports whether r is hiragana or the prolonged sound mark.
func IsHiragana(r rune) bool {
	return unicode.Is(unicode.Hiragana, r) || r == 'ー'
}

// IsKatakana reports whether r is katakana, the prolonged sound mark or the
// middle dot used to join transliterated words.
func IsKatakana(r rune) bool {
	return unicode.Is(unicode.Katakana, r) || r == 'ー' || r == '・'
}

// IsKanji reports whether r is a CJK ideograph or one of the iteration and
// counter marks written alongside them.
func IsKanji(r rune) bool {
	switch r {
	case '々', '〆', 'ヵ', 'ヶ':
		return true
	}
	return unicode.Is(unicode.Han, r)
}

// IsJapanese reports whether r belongs to any Japanese script.
func IsJapanese(r rune) bool {
	return IsHiragana(r) || IsKatakana(r) || IsKanji(r)
}

// IsFullWidthAlnum reports whether r is a full-width ASCII letter or digit.
func IsFullWidthAlnum(r rune) bool {
	return (r >= '０' && r <= '９') || (r >= 'Ａ' && r <= 'Ｚ') || (r >= 'ａ' && r <= 'ｚ')
}

// ContainsJapanese reports whether any rune of text is Japanese.
func ContainsJapanese(text string) bool {
	for _, r := range text {
		if IsJapanese(r) {
			return true
		}
	}
	return false
}

func isLatin(r rune) bool {
	switch {
	case r < 0x80:
		return unicode.IsLetter(r) || unicode.IsDigit(r) || isBasicPunct(r)
	case unicode.Is(unicode.Latin, r):
		return true
	}
	return false
}

func isBasicPunct(r rune) bool {
	switch r {
	case ' ', '\'', '-', '.', ',', '!', '?', '&', '+':
		return true
	}
	return false
}

func isFullWidthNumber(r rune) bool {
	return (r >= '０' && r <= '９') || r == '，' || r == '．'
}

func inTable(t *unicode.RangeTable) predicate {
	return func(r rune) bool { return unicode.Is(t, r) }
}

func all(s string, accept predicate) bool {
	for _, r := range s {
		if !accept(r) {
			return false
		}
	}
	return true
}
