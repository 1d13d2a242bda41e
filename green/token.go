package green

import "io"

// Token is an immutable leaf of a green tree.
type Token struct {
	kind Kind
	text string
}

func NewToken(kind Kind, text string) *Token {
	return &Token{kind: kind, text: text}
}

func (t *Token) Kind() Kind     { return t.kind }
func (t *Token) TextLen() int   { return len(t.text) }
func (t *Token) Text() string   { return t.text }
func (t *Token) String() string { return t.text }

func (t *Token) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, t.text)
	return int64(n), err
}
