package green

import (
	"fmt"
	"io"
	"iter"
	"slices"
	"strings"
)

// Node is an immutable interior node of a green tree. A Node carries no
// position and no parent, so the same *Node may appear any number of times,
// in any number of trees, and may be read from any number of goroutines.
type Node struct {
	kind     Kind
	textLen  int
	children []Element
}

// NewNode creates a node with the given children. The children slice is
// copied. NewNode panics if a child is nil.
func NewNode(kind Kind, children ...Element) *Node {
	return newNode(kind, slices.Clone(children))
}

func newNode(kind Kind, children []Element) *Node {
	n := &Node{kind: kind, children: children}
	for i, c := range children {
		if isNil(c) {
			panic(fmt.Sprintf("green: %v at index %d", ErrNilChild, i))
		}
		n.textLen += c.TextLen()
	}
	return n
}

func (n *Node) Kind() Kind       { return n.kind }
func (n *Node) TextLen() int     { return n.textLen }
func (n *Node) NumChildren() int { return len(n.children) }

// Child returns the i'th child. It panics if i is out of range.
func (n *Node) Child(i int) Element {
	return n.children[i]
}

// Children returns the children of n in order, with their indices.
func (n *Node) Children() iter.Seq2[int, Element] {
	return func(yield func(int, Element) bool) {
		for i, c := range n.children {
			if !yield(i, c) {
				return
			}
		}
	}
}

// ReplaceChild returns a new node equal to n except that child i is c. n
// is not modified and every other child is shared with the result.
func (n *Node) ReplaceChild(i int, c Element) (*Node, error) {
	if i < 0 || i >= len(n.children) {
		return nil, fmt.Errorf("%w: index %d, %d children", ErrIndexOutOfRange, i, len(n.children))
	}
	if isNil(c) {
		return nil, fmt.Errorf("%w: replacing index %d", ErrNilChild, i)
	}
	children := slices.Clone(n.children)
	children[i] = c
	return &Node{
		kind:     n.kind,
		textLen:  n.textLen - n.children[i].TextLen() + c.TextLen(),
		children: children,
	}, nil
}

func (n *Node) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for _, c := range n.children {
		m, err := c.WriteTo(w)
		total += m
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

func (n *Node) String() string {
	var b strings.Builder
	b.Grow(n.textLen)
	n.WriteTo(&b)
	return b.String()
}
