package red

import (
	"fmt"
	"io"

	"github.com/signadot/syntree/green"
)

// Token decorates a green token with its absolute text offset and parent.
// Unlike Node it does not record its index in the parent.
type Token struct {
	parent     *Node
	textOffset int
	green      *green.Token
}

// NewToken wraps g at the given offset under parent, which may be nil.
func NewToken(parent *Node, textOffset int, g *green.Token) *Token {
	return &Token{parent: parent, textOffset: textOffset, green: g}
}

func (t *Token) Green() *green.Token { return t.green }
func (t *Token) Kind() green.Kind    { return t.green.Kind() }
func (t *Token) TextLen() int        { return t.green.TextLen() }
func (t *Token) TextOffset() int     { return t.textOffset }
func (t *Token) Text() string        { return t.green.Text() }
func (t *Token) Parent() *Node       { return t.parent }

// ReplaceWith replaces t in its parent with g. The index of t is found by
// scanning the parent's children. The result is the rebuilt parent.
func (t *Token) ReplaceWith(g green.Element) (*Node, error) {
	if t.parent == nil {
		return nil, fmt.Errorf("%w: %s at %d", ErrDetached, t.Kind(), t.textOffset)
	}
	i, ok := t.parent.ChildIndex(t)
	if !ok {
		return nil, fmt.Errorf("%w: %s at %d", ErrNotChild, t.Kind(), t.textOffset)
	}
	return t.parent.ReplaceChild(i, g)
}

func (t *Token) WriteTo(w io.Writer) (int64, error) {
	return t.green.WriteTo(w)
}

func (t *Token) String() string {
	return t.green.String()
}
