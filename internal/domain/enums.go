package domain

// TokenType is the category a tokenizer match is classified into.
type TokenType string

const (
	TokenWord        TokenType = "word"
	TokenNumber      TokenType = "number"
	TokenPhone       TokenType = "phone"
	TokenJapanese    TokenType = "japanese"
	TokenPunctuation TokenType = "punctuation"
	TokenSymbol      TokenType = "symbol"
)

func (t TokenType) String() string { return string(t) }

func (t TokenType) IsValid() bool {
	switch t {
	case TokenWord, TokenNumber, TokenPhone, TokenJapanese, TokenPunctuation, TokenSymbol:
		return true
	}
	return false
}

// IsNumeric reports whether the type is a number or one of its sub-types.
func (t TokenType) IsNumeric() bool {
	return t == TokenNumber || t == TokenPhone
}

// Script is the writing-system tag of a string.
type Script string

const (
	ScriptLatin           Script = "latin"
	ScriptCyrillic        Script = "cyrillic"
	ScriptGreek           Script = "greek"
	ScriptArabic          Script = "arabic"
	ScriptDevanagari      Script = "devanagari"
	ScriptHiragana        Script = "hiragana"
	ScriptKatakana        Script = "katakana"
	ScriptKanji           Script = "kanji"
	ScriptFullWidthNumber Script = "full-width-number"
	ScriptUnknown         Script = "unknown"
)

func (s Script) String() string { return string(s) }

func (s Script) IsValid() bool {
	switch s {
	case ScriptLatin, ScriptCyrillic, ScriptGreek, ScriptArabic, ScriptDevanagari,
		ScriptHiragana, ScriptKatakana, ScriptKanji, ScriptFullWidthNumber, ScriptUnknown:
		return true
	}
	return false
}

// IsJapanese reports whether the script is one of the Japanese writing systems.
func (s Script) IsJapanese() bool {
	return s == ScriptHiragana || s == ScriptKatakana || s == ScriptKanji
}

// IsForeign reports whether the script is a non-Latin, non-Japanese alphabet
// that the engine passes through untouched.
func (s Script) IsForeign() bool {
	switch s {
	case ScriptCyrillic, ScriptGreek, ScriptArabic, ScriptDevanagari:
		return true
	}
	return false
}
