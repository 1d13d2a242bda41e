package red

import (
	"io"

	"github.com/signadot/syntree/green"
)

// Element is a position in a red tree: either a *Node or a *Token. A
// *Node or *Token converts to an Element by assignment; getting one back
// requires a type switch.
type Element interface {
	Kind() green.Kind
	TextLen() int
	TextOffset() int
	Parent() *Node
	String() string
	io.WriterTo

	element()
}

func (*Node) element()  {}
func (*Token) element() {}

// TextRange returns the span of text covered by e.
func TextRange(e Element) Range {
	return Range{Start: e.TextOffset(), End: e.TextOffset() + e.TextLen()}
}

// GreenOf returns the green payload of e.
func GreenOf(e Element) green.Element {
	switch x := e.(type) {
	case *Node:
		return x.green
	case *Token:
		return x.green
	}
	return nil
}
