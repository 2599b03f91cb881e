// Package romaji folds Latin letter sequences into katakana with a
// statically built syllable trie.
package romaji

import (
	"strings"

	"github.com/heartmarshall/transkana/internal/domain"
)

const (
	moraicN  = "ン"
	smallTsu = "ッ"
)

// Convert walks s left to right through the syllable trie and returns the
// katakana it spells. Letters that never complete a syllable are emitted
// as they are, so the result may still contain Latin letters; Readable
// spells those out.
//
// Input is folded to half-width lower case first. Characters outside a-z
// flush the pending letters verbatim together with the character itself.
func Convert(s string) string {
	src := []rune(strings.ToLower(domain.HalfWidth(s)))

	var (
		out     strings.Builder
		pending strings.Builder
		cur     = root
	)
	emit := func(text string, reset bool) {
		out.WriteString(text)
		pending.Reset()
		if reset {
			cur = root
		}
	}

	for i := 0; i < len(src); {
		ch := src[i]
		if ch >= 'a' && ch <= 'z' {
			b := byte(ch)
			if next, ok := cur.child(b); ok {
				if next.isLeaf() {
					emit(next.kana, true)
				} else {
					pending.WriteRune(ch)
					cur = next
				}
				i++
				continue
			}

			// No edge from the current state. A preceding n becomes the moraic
			// nasal and a doubled letter becomes a small tsu; the pending
			// letters are dropped in both cases.
			if i > 0 {
				switch prev := src[i-1]; {
				case prev == 'n':
					emit(moraicN, false)
				case prev == ch:
					emit(smallTsu, false)
				}
			}
			// Retry the same letter from the root.
			if cur != root {
				if _, ok := root.child(b); ok {
					emit(pending.String(), true)
					continue
				}
			}
		}
		emit(pending.String()+string(ch), true)
		i++
	}

	tail := pending.String()
	if strings.HasSuffix(tail, "n") {
		tail = strings.TrimSuffix(tail, "n") + moraicN
	}
	emit(tail, true)

	return out.String()
}

// LetterName returns the katakana name of a single Latin letter.
func LetterName(r rune) (string, bool) {
	name, ok := letterNames[r]
	return name, ok
}

// SpellLetters replaces every lower-case Latin letter in s with its
// katakana letter name. Other characters are kept.
func SpellLetters(s string) string {
	var b strings.Builder
	b.Grow(len(s) * 3)
	for _, r := range s {
		if name, ok := letterNames[r]; ok {
			b.WriteString(name)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Readable converts s with Convert and spells out any letters left over.
func Readable(s string) string {
	return SpellLetters(Convert(s))
}
