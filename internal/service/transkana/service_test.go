package transkana

import (
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/transkana/internal/domain"
	"github.com/heartmarshall/transkana/internal/lexicon"
	"github.com/heartmarshall/transkana/internal/numword"
)

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func newTestEngine(t *testing.T, entries map[string]string) *Engine {
	t.Helper()
	lex := lexicon.New(testLogger())
	require.NoError(t, lex.Load(context.Background(), lexicon.MapSource(entries)))
	return NewEngine(testLogger(), lex, nil)
}

func unreadyEngine() *Engine {
	return NewEngine(testLogger(), &dictionaryMock{
		ReadyFunc:  func() bool { return false },
		LookupFunc: func(string) (string, bool) { return "", false },
	}, nil)
}

func word(v string) domain.Token {
	return domain.Token{Value: v, Type: domain.TokenWord, Script: domain.ScriptLatin}
}

var testEntries = map[string]string{
	"pen":   "ペン",
	"it's":  "イッツ",
	"well":  "ウェル",
	"known": "ノウン",
	"hello": "ハロー",
	"world": "ワールド",
	"etc":   "エトセトラ",
}

// ---------------------------------------------------------------------------
// FetchKana
// ---------------------------------------------------------------------------

func TestFetchKana_DictionaryHitReturnsStoredReading(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, testEntries)
	for surface, reading := range testEntries {
		if surface == "it's" {
			surface = "It's"
		}
		assert.Equal(t, reading, e.FetchKana(word(surface), Context{}), "surface %q", surface)
	}
}

func TestFetchKana_FullStopSuffix(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, testEntries)
	assert.Equal(t, "エトセトラ。", e.FetchKana(word("etc."), Context{}))
}

func TestFetchKana_Article(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, testEntries)
	next := word("pen")
	punct := domain.Token{Value: ".", Type: domain.TokenPunctuation}

	assert.Equal(t, "ア", e.FetchKana(word("a"), Context{Next: &next}))
	assert.Equal(t, "ア", e.FetchKana(word("A"), Context{Next: &next}))
	assert.Equal(t, "エー", e.FetchKana(word("A"), Context{Next: &punct}))
	assert.Equal(t, "エー", e.FetchKana(word("a"), Context{}))
}

func TestFetchKana_Numbers(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, testEntries)
	num := domain.Token{Value: "21", Type: domain.TokenNumber, Script: domain.ScriptLatin}
	grouped := domain.Token{Value: "1,000", Type: domain.TokenNumber, Script: domain.ScriptLatin}

	assert.Equal(t, "トゥエンティ・ワン", e.FetchKana(num, Context{}))
	assert.Equal(t, "21", e.FetchKana(num, Context{HasJapanese: true}))
	assert.Equal(t, "1000", e.FetchKana(grouped, Context{HasJapanese: true}))
	assert.Equal(t, "ワン・サウザンド", e.FetchKana(grouped, Context{}))
}

func TestFetchKana_PassThrough(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, testEntries)
	tests := []domain.Token{
		{Value: "東京", Type: domain.TokenJapanese, Script: domain.ScriptKanji},
		{Value: "、", Type: domain.TokenPunctuation},
		{Value: "привет", Type: domain.TokenWord, Script: domain.ScriptCyrillic},
		{Value: "§", Type: domain.TokenSymbol, Script: domain.ScriptUnknown},
	}
	for _, tok := range tests {
		assert.Equal(t, tok.Value, e.FetchKana(tok, Context{}))
	}
}

func TestFragments_HyphenAndCamelCaseAgree(t *testing.T) {
	t.Parallel()

	lower := func(ss []string) []string {
		out := make([]string, len(ss))
		for i, s := range ss {
			out[i] = strings.ToLower(s)
		}
		return out
	}

	assert.Equal(t, lower(Fragments("well-known")), lower(Fragments("WellKnown")))
	assert.Equal(t, []string{"well", "known"}, Fragments("well-known"))
	assert.Equal(t, []string{"XML", "Parser"}, Fragments("XMLParser"))
	assert.Equal(t, []string{"COVID", "19"}, Fragments("COVID-19"))
	assert.Equal(t, []string{"don't"}, Fragments("don't"))
	assert.Equal(t, []string{"i", "Phone"}, Fragments("iPhone"))
	assert.Empty(t, Fragments("'"))
}

func TestFetchKana_Decomposition(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, testEntries)
	assert.Equal(t, "ウェル・ノウン", e.FetchKana(word("well-known"), Context{}))
	assert.Equal(t, "ウェル・ノウン", e.FetchKana(word("WellKnown"), Context{}))
	assert.Equal(t, "ペン・ハロー", e.FetchKana(word("penHello"), Context{}))
	assert.Equal(t, "エックスワイズィー", e.FetchKana(word("xyz"), Context{}))
}

// ---------------------------------------------------------------------------
// Exec
// ---------------------------------------------------------------------------

func TestExec(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, testEntries)

	tests := []struct {
		name  string
		input string
		opts  Options
		want  string
	}{
		{name: "article and noun", input: "a pen", want: "ア ペン"},
		{name: "contraction and number", input: "It's 21.", want: "イッツ トゥエンティ・ワン."},
		{name: "letter name before punctuation", input: "A.", want: "エー."},
		{name: "empty", input: "", want: ""},
		{name: "whitespace only", input: "   ", want: ""},
		{name: "math operator", input: "1 + 2", want: "ワン タス ツー"},
		{name: "plus between japanese", input: "東京 + 大阪", want: "東京 プラス 大阪"},
		{name: "digits stay in japanese text", input: "東京2024年", want: "東京2024年"},
		{name: "phone spelled out", input: "090-1234-5678",
			want: "ゼロ・ナイン・ゼロ・ハイフン・ワン・ツー・スリー・フォー・ハイフン・ファイブ・シックス・セブン・エイト"},
		{name: "phone kept in japanese text", input: "電話090-1234-5678", want: "電話090-1234-5678"},
		{name: "foreign script kept", input: "привет world", want: "привет ワールド"},
		{name: "full-width number", input: "１２", want: "トゥエルブ"},
		{name: "face kept", input: "hello (^_^)", want: "ハロー (^_^)"},
		{name: "face with middle dots", input: "(・_・)", want: "(・_・)"},
		{name: "face with greek mouth", input: "(´・ω・`)", want: "(´・ω・`)"},
		{name: "face does not count as japanese", input: "(・_・) 21", want: "(・_・) トゥエンティ・ワン"},
		{name: "unspaced plus", input: "1+2", want: "ワン タス ツー"},
		{name: "unspaced power", input: "2^3", want: "ツー ジョウ スリー"},
		{name: "negative operand", input: "2*-3", want: "ツー カケル ネガティブ・スリー"},
		{name: "spaced japanese", input: "これは a pen です", want: "これは ア ペン です"},
		{name: "compact", input: "これは a pen です", opts: Options{Compact: true}, want: "これはア ペンです"},
		{name: "hyphenated", input: "well-known pen", want: "ウェル・ノウン ペン"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, e.Exec(tt.input, tt.opts))
		})
	}
}

func TestExec_Idempotent(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, testEntries)
	inputs := []string{"a pen", "It's 21.", "well-known", "hello world!", "これは a pen です"}
	for _, in := range inputs {
		once := e.Exec(in, Options{})
		assert.Equal(t, once, e.Exec(once, Options{}), "input %q", in)
	}
}

func TestExec_UnreadyDictionaryDegrades(t *testing.T) {
	t.Parallel()

	e := unreadyEngine()
	assert.False(t, e.Ready())
	assert.Equal(t, "ア ペン", e.Exec("a pen", Options{}))
	assert.Equal(t, "トゥエンティ・ワン", e.Exec("21", Options{}))
}

func TestExec_NilDictionary(t *testing.T) {
	t.Parallel()

	e := NewEngine(testLogger(), nil, nil)
	assert.False(t, e.Ready())
	assert.Equal(t, "ペン", e.Exec("pen", Options{}))
}

func TestExec_JapaneseReadings(t *testing.T) {
	t.Parallel()

	lex := lexicon.New(testLogger())
	require.NoError(t, lex.Load(context.Background(), lexicon.MapSource(testEntries)))
	e := NewEngine(testLogger(), lex, &readerMock{
		ReadingFunc: func(text string) string {
			if text == "これは" {
				return "コレハ"
			}
			return text
		},
	})

	assert.Equal(t, "コレハ ペン", e.Exec("これは pen", Options{JapaneseReadings: true}))
	assert.Equal(t, "これは ペン", e.Exec("これは pen", Options{}))
}

func TestExec_NeverPanics(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, testEntries)
	inputs := []string{
		"\x00", "\xff\xfe", "--", "-", "1.2.3", "99999999999999999999999", "''''",
		"a", "A", "aaaa", "😀😀", "(´ω`)", "ｱｲｳ", "Ｐｅｎ", "x+y=z", "3.", ".5", "1,23",
	}
	for _, in := range inputs {
		assert.NotPanics(t, func() { _ = e.Exec(in, Options{Compact: true}) }, "input %q", in)
	}
}

func TestTidy(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		compact bool
		want    string
	}{
		{input: "ペン .", want: "ペン."},
		{input: "ペン 、 ペン 。", want: "ペン、 ペン。"},
		{input: "東京 2024 年", want: "東京2024年"},
		{input: "これは ペン です", want: "これは ペン です"},
		{input: "これは ペン です", compact: true, want: "これはペンです"},
		{input: "  ア   ペン  ", want: "ア ペン"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Tidy(tt.input, tt.compact), "input %q", tt.input)
	}
}

func TestBuiltinCoversNumberWords(t *testing.T) {
	t.Parallel()

	b := lexicon.Builtin()
	for _, w := range numword.Words() {
		_, ok := b.Lookup(w)
		assert.True(t, ok, "no built-in reading for %q", w)
	}
}
