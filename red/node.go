package red

import (
	"fmt"
	"io"
	"iter"

	"github.com/signadot/syntree/debug"
	"github.com/signadot/syntree/green"
)

// Node decorates a green node with its absolute text offset, its parent and
// its index among the parent's green children.
//
// A Node is immutable. Wrappers are created on demand by Children and are
// not cached: two traversals reaching the same position return two distinct
// *Node values sharing the same green payload.
type Node struct {
	parent        *Node
	textOffset    int
	indexInParent int
	green         *green.Node
}

// NewRoot wraps g as the root of a red tree.
func NewRoot(g *green.Node) *Node {
	return &Node{green: g}
}

func (n *Node) Green() *green.Node { return n.green }
func (n *Node) Kind() green.Kind   { return n.green.Kind() }
func (n *Node) TextLen() int       { return n.green.TextLen() }
func (n *Node) TextOffset() int    { return n.textOffset }

// Parent returns the parent of n, or nil if n is a root.
func (n *Node) Parent() *Node { return n.parent }

// IndexInParent returns the position of n among its parent's children. It
// is 0 for a root.
func (n *Node) IndexInParent() int { return n.indexInParent }

// Children returns the children of n in order. Each iteration walks the
// green children afresh and allocates new wrappers.
func (n *Node) Children() iter.Seq[Element] {
	return func(yield func(Element) bool) {
		offsetInParent := 0
		for i, gc := range n.green.Children() {
			textOffset := offsetInParent + n.textOffset
			offsetInParent += gc.TextLen()
			var e Element
			switch g := gc.(type) {
			case *green.Node:
				e = &Node{parent: n, textOffset: textOffset, indexInParent: i, green: g}
			case *green.Token:
				e = &Token{parent: n, textOffset: textOffset, green: g}
			}
			if !yield(e) {
				return
			}
		}
	}
}

// ReplaceChild returns the node corresponding to n in a new tree where
// child i of n is replaced by c. Every node on the path from n to the root
// is rebuilt; everything else is shared. n and the tree it belongs to are
// left unchanged.
//
// The result is the edited node, not the new root; use Root to get the
// latter. An invalid i yields an error wrapping green.ErrIndexOutOfRange.
func (n *Node) ReplaceChild(i int, c green.Element) (*Node, error) {
	g, err := n.green.ReplaceChild(i, c)
	if err != nil {
		return nil, err
	}
	if debug.Rebuild() {
		debug.Logf("rebuild %s@%d child %d -> %s\n", n.Kind(), n.textOffset, i, c.Kind())
	}
	return n.replaceOurselves(g)
}

func (n *Node) replaceOurselves(g *green.Node) (*Node, error) {
	if n.parent == nil {
		return NewRoot(g), nil
	}
	p, err := n.parent.ReplaceChild(n.indexInParent, g)
	if err != nil {
		return nil, err
	}
	return p.childNode(n.indexInParent)
}

// childNode rewraps the i'th child, which is known to be a node, at its
// position in n.
func (n *Node) childNode(i int) (*Node, error) {
	off := n.textOffset
	for j, gc := range n.green.Children() {
		if j == i {
			g, ok := gc.(*green.Node)
			if !ok {
				return nil, fmt.Errorf("%w: child %d of %s is a token", ErrNotNode, i, n.Kind())
			}
			return &Node{parent: n, textOffset: off, indexInParent: i, green: g}, nil
		}
		off += gc.TextLen()
	}
	return nil, fmt.Errorf("%w: index %d, %d children", green.ErrIndexOutOfRange, i, n.green.NumChildren())
}

func (n *Node) WriteTo(w io.Writer) (int64, error) {
	return n.green.WriteTo(w)
}

func (n *Node) String() string {
	return n.green.String()
}
