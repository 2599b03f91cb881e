package domain

import "testing"

func TestHalfWidth(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  string
	}{
		{input: "ＡＢＣ", want: "ABC"},
		{input: "１２３，４５６", want: "123,456"},
		{input: "ａ　ｂ", want: "a b"},
		{input: "カタカナ", want: "カタカナ"},
		{input: "漢字", want: "漢字"},
		{input: "plain", want: "plain"},
	}

	for _, tt := range tests {
		if got := HalfWidth(tt.input); got != tt.want {
			t.Errorf("HalfWidth(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestNormalizeSurface(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "lowercase", input: "Hello", want: "hello"},
		{name: "doubled apostrophe", input: "it''s", want: "it's"},
		{name: "full-width latin", input: "ＰＥＮ", want: "pen"},
		{name: "half-width katakana", input: "ｱｲ", want: "アイ"},
		{name: "trimmed", input: " word ", want: "word"},
		{name: "empty", input: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := NormalizeSurface(tt.input); got != tt.want {
				t.Errorf("NormalizeSurface(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
