// Package red provides the positional view of a green syntax tree.
//
// # Overview
//
// Green trees (package green) are immutable and freely shared, which means
// a green node cannot know where it sits: the same subtree may occur at
// different offsets in different trees. The red layer adds that knowledge
// on demand. A red Node or Token wraps a green value together with
//
//   - its absolute text offset,
//   - its red parent (nil for a root), and
//   - for nodes, its index among the parent's green children.
//
// # Traversal
//
// A traversal starts at a root built with NewRoot and descends with
// Children:
//
//	root := red.NewRoot(g)
//	for c := range root.Children() {
//	    switch c := c.(type) {
//	    case *red.Node:
//	        fmt.Println("node", c.Kind(), c.TextOffset())
//	    case *red.Token:
//	        fmt.Println("token", c.Kind(), c.TextOffset(), c.Text())
//	    }
//	}
//
// Wrappers are not cached. Every call to Children allocates new ones, so
// callers that need stable identities must keep the values they got.
// Children lay out contiguously: a child's offset is its parent's offset
// plus the lengths of all preceding siblings.
//
// # Editing
//
// ReplaceChild never modifies anything. It asks the green node for a copy
// with one child replaced, then rebuilds every ancestor the same way up to
// a new root, sharing all subtrees off that path:
//
//	edited, err := n.ReplaceChild(1, green.NewToken(kind, "!"))
//	newRoot := edited.Root()
//
// The old red and green trees remain valid and unchanged.
//
// # Thread Safety
//
// Red wrappers have no mutable state, but they are cheap, per traversal
// values. Share green trees between goroutines and build red wrappers in
// each goroutine that needs positions.
package red
