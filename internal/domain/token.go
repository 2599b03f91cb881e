package domain

// Token is one classified span of input text.
// Start and End are byte offsets into the normalized input the token was
// cut from; tokens built by hand may leave them zero.
type Token struct {
	Value  string
	Type   TokenType
	Script Script
	Start  int
	End    int
}

// Adjacent reports whether next starts exactly where t ends.
func (t Token) Adjacent(next Token) bool {
	return t.End > 0 && t.End == next.Start
}
