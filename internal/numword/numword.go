// Package numword spells numbers as hyphen-joined English words.
//
// The output is meant to be fed back into the word pipeline, so every
// piece is a plain lower-case English word and pieces are joined with "-".
package numword

import (
	"strconv"
	"strings"

	"github.com/heartmarshall/transkana/internal/domain"
)

// MaxExact is the largest integer spelled exactly (2^53-1).
const MaxExact uint64 = 1<<53 - 1

// Invalid is returned for input that is not a number.
const Invalid = "Invalid-number"

const maxFractionDigits = 2

var small = [20]string{
	"zero", "one", "two", "three", "four", "five", "six", "seven", "eight", "nine",
	"ten", "eleven", "twelve", "thirteen", "fourteen", "fifteen", "sixteen",
	"seventeen", "eighteen", "nineteen",
}

var tens = [10]string{
	"", "", "twenty", "thirty", "forty", "fifty", "sixty", "seventy", "eighty", "ninety",
}

var scales = []struct {
	value uint64
	word  string
}{
	{1_000_000_000_000_000_000, "quintillion"},
	{1_000_000_000_000_000, "quadrillion"},
	{1_000_000_000_000, "trillion"},
	{1_000_000_000, "billion"},
	{1_000_000, "million"},
	{1_000, "thousand"},
}

// Words returns every word Convert and SpellDigits can produce.
func Words() []string {
	out := make([]string, 0, len(small)+len(tens)+len(scales)+5)
	out = append(out, small[:]...)
	out = append(out, tens[2:]...)
	out = append(out, "hundred")
	for _, s := range scales {
		out = append(out, s.word)
	}
	return append(out, "negative", "point", "over", "hyphen")
}

// Convert spells a number literal. It accepts an optional sign, ASCII or
// full-width digits, comma grouping and a decimal part; at most two
// fractional digits are read. Integers above MaxExact are rendered as
// "over-<MaxExact in words>-(<MaxExact>)".
func Convert(s string) string {
	s = strings.ReplaceAll(domain.HalfWidth(strings.TrimSpace(s)), ",", "")

	negative := false
	switch {
	case strings.HasPrefix(s, "-"):
		negative, s = true, s[1:]
	case strings.HasPrefix(s, "−"):
		negative, s = true, strings.TrimPrefix(s, "−")
	case strings.HasPrefix(s, "+"):
		s = s[1:]
	}

	intPart, fracPart, hasFrac := strings.Cut(s, ".")
	if !isDigits(intPart) || (hasFrac && !isDigits(fracPart)) {
		return Invalid
	}

	var parts []string
	if negative {
		parts = append(parts, "negative")
	}

	n, err := strconv.ParseUint(intPart, 10, 64)
	if err != nil || n > MaxExact {
		// Range errors only: the digits were validated above.
		parts = append(parts, "over", FromInt(MaxExact), "("+strconv.FormatUint(MaxExact, 10)+")")
		return strings.Join(parts, "-")
	}
	parts = append(parts, FromInt(n))

	if hasFrac {
		if len(fracPart) > maxFractionDigits {
			fracPart = fracPart[:maxFractionDigits]
		}
		parts = append(parts, "point")
		for _, d := range fracPart {
			parts = append(parts, small[d-'0'])
		}
	}

	return strings.Join(parts, "-")
}

// FromInt spells n in words.
func FromInt(n uint64) string {
	switch {
	case n < 20:
		return small[n]
	case n < 100:
		if n%10 == 0 {
			return tens[n/10]
		}
		return tens[n/10] + "-" + small[n%10]
	case n < 1000:
		w := small[n/100] + "-hundred"
		if rem := n % 100; rem != 0 {
			w += "-" + FromInt(rem)
		}
		return w
	}

	for _, sc := range scales {
		if n < sc.value {
			continue
		}
		w := FromInt(n/sc.value) + "-" + sc.word
		if rem := n % sc.value; rem != 0 {
			w += "-" + FromInt(rem)
		}
		return w
	}
	return ""
}

// SpellDigits reads a phone-shaped literal one character at a time. Digits
// become their word, hyphens and spaces become "hyphen" and anything else is
// dropped.
func SpellDigits(s string) string {
	s = domain.HalfWidth(s)

	parts := make([]string, 0, len(s))
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			parts = append(parts, small[r-'0'])
		case r == '-' || r == ' ':
			parts = append(parts, "hyphen")
		}
	}
	if len(parts) == 0 {
		return Invalid
	}
	return strings.Join(parts, "-")
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
