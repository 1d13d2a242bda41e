package green

import "io"

// Element is either a *Node or a *Token. Use a type switch to recover the
// concrete value.
type Element interface {
	Kind() Kind
	TextLen() int
	String() string
	io.WriterTo

	element()
}

func (*Node) element()  {}
func (*Token) element() {}

func isNil(e Element) bool {
	switch x := e.(type) {
	case nil:
		return true
	case *Node:
		return x == nil
	case *Token:
		return x == nil
	}
	return false
}
