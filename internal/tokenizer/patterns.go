package tokenizer

import (
	"regexp"

	"github.com/dlclark/regexp2"
)

const (
	digit    = `[0-9０-９]`
	wordChar = `[\p{Latin}0-9０-９]`

	numberPattern   = digit + `+(?:-` + digit + `+)+|[+\-−]?` + digit + `+(?:[,，]` + digit + `{3})*(?:[.．]` + digit + `+)?`
	wordPattern     = `\p{Latin}` + wordChar + `*(?:['\-]` + wordChar + `+)*`
	japanesePattern = `[\p{Hiragana}\p{Katakana}\p{Han}ー・々〆ヵヶｰ]+`
	punctPattern    = `[,.!?;:、。，．！？；：]`
	foreignPattern  = `[\p{Cyrillic}\p{Greek}\p{Arabic}\p{Devanagari}]+`
	phonePattern    = `[0-9]{2,3}-[0-9]{3,4}-[0-9]{4}`
	digitRunPattern = digit + `+(?:-` + digit + `+)+`
)

var (
	// scanRe tries the alternatives in order at each position; the last one
	// catches every other non-space character so nothing is lost.
	scanRe = regexp.MustCompile(
		`(?:` + numberPattern + `)` +
			`|(?:` + wordPattern + `)` +
			`|(?:` + japanesePattern + `)` +
			`|(?:` + punctPattern + `)` +
			`|(?:` + foreignPattern + `)` +
			`|\S`)

	numberRe   = anchored(numberPattern)
	wordRe     = anchored(wordPattern)
	japaneseRe = anchored(japanesePattern)
	punctRe    = anchored(punctPattern)
	foreignRe  = anchored(foreignPattern)
	phoneRe    = anchored(phonePattern)
	digitRunRe = anchored(digitRunPattern)

	// groupRe finds bare integers of four or more digits that are not part
	// of a word, a fraction, an already grouped number or a hyphenated run.
	groupRe = regexp2.MustCompile(
		`(?<![0-9A-Za-z_.,])(?<![0-9]-)[0-9]{4,}(?![0-9A-Za-z_]|,[0-9]|-[0-9])`,
		regexp2.None)
)

func anchored(p string) *regexp.Regexp {
	return regexp.MustCompile(`^(?:` + p + `)$`)
}
