package domain

import (
	"strings"

	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

// HalfWidth folds full-width ASCII variants (Ａ, ５, ，, the ideographic
// space) to their half-width forms. Katakana and kanji are left as they are.
func HalfWidth(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if p := width.LookupRune(r); p.Kind() == width.EastAsianFullwidth {
			if n := p.Narrow(); n != 0 {
				r = n
			}
		}
		b.WriteRune(r)
	}
	return b.String()
}

// NormalizeSurface builds the lookup key of a surface form: doubled
// apostrophes are collapsed, compatibility forms (full-width Latin,
// half-width katakana, ligatures) are folded by NFKC and the result is
// lower-cased.
func NormalizeSurface(surface string) string {
	surface = strings.TrimSpace(surface)
	if surface == "" {
		return ""
	}
	surface = strings.ReplaceAll(surface, "''", "'")
	surface = norm.NFKC.String(surface)
	return strings.ToLower(surface)
}
