package red

import (
	"fmt"
	"iter"

	"github.com/signadot/syntree/green"
)

// Root follows the parent chain of n to its end.
func (n *Node) Root() *Node {
	for n.parent != nil {
		n = n.parent
	}
	return n
}

// Ancestors yields the parents of n, nearest first.
func (n *Node) Ancestors() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		for p := n.parent; p != nil; p = p.parent {
			if !yield(p) {
				return
			}
		}
	}
}

// Depth returns the number of ancestors of n.
func (n *Node) Depth() int {
	d := 0
	for p := n.parent; p != nil; p = p.parent {
		d++
	}
	return d
}

// Preorder yields n and all its descendants depth first, parents before
// children.
func (n *Node) Preorder() iter.Seq[Element] {
	return func(yield func(Element) bool) {
		n.preorder(yield)
	}
}

func (n *Node) preorder(yield func(Element) bool) bool {
	if !yield(n) {
		return false
	}
	for c := range n.Children() {
		switch x := c.(type) {
		case *Node:
			if !x.preorder(yield) {
				return false
			}
		case *Token:
			if !yield(x) {
				return false
			}
		}
	}
	return true
}

// ChildAt returns the i'th child of n.
func (n *Node) ChildAt(i int) (Element, error) {
	if i < 0 || i >= n.green.NumChildren() {
		return nil, fmt.Errorf("%w: index %d, %d children", green.ErrIndexOutOfRange, i, n.green.NumChildren())
	}
	j := 0
	for c := range n.Children() {
		if j == i {
			return c, nil
		}
		j++
	}
	panic("unreachable")
}

// ChildIndex finds e among the children of n by green identity and offset.
// Interned children may share a green value, so this relies on children
// having nonzero length: two of them cannot then start at the same offset.
func (n *Node) ChildIndex(e Element) (int, bool) {
	ge, off := GreenOf(e), e.TextOffset()
	i := 0
	for c := range n.Children() {
		if c.TextOffset() == off && GreenOf(c) == ge {
			return i, true
		}
		i++
	}
	return -1, false
}

// TokenAtOffset returns the token of n covering off. An offset at the very
// end of n selects the last token.
func (n *Node) TokenAtOffset(off int) (*Token, bool) {
	r := TextRange(n)
	if off < r.Start || off > r.End || r.Len() == 0 {
		return nil, false
	}
	if off == r.End {
		off--
	}
	cur := n
	for {
		var next Element
		for c := range cur.Children() {
			if TextRange(c).Contains(off) {
				next = c
				break
			}
		}
		switch x := next.(type) {
		case *Token:
			return x, true
		case *Node:
			cur = x
		default:
			return nil, false
		}
	}
}

// CoveringElement returns the deepest element of n whose range covers r,
// or nil if r is not within n.
func (n *Node) CoveringElement(r Range) Element {
	if !TextRange(n).Covers(r) {
		return nil
	}
	var res Element = n
	cur := n
	for cur != nil {
		var next *Node
		for c := range cur.Children() {
			cr := TextRange(c)
			if !cr.Covers(r) || (cr.Len() == 0 && r.Len() == 0) {
				continue
			}
			res = c
			next, _ = c.(*Node)
			break
		}
		cur = next
	}
	return res
}
