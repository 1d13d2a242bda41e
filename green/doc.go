// Package green provides the immutable layer of a syntax tree.
//
// # Overview
//
// A green tree is made of Nodes and Tokens. Each carries a Kind and a text
// length; nodes carry an ordered list of children and tokens carry their
// text. Green values hold no positions and no parent links, so an identical
// subtree can be shared by reference between any number of parents, trees
// and goroutines.
//
// Nothing in a green tree is ever modified. Editing is expressed with
// ReplaceChild, which returns a new node and shares every untouched child:
//
//	n2, err := n.ReplaceChild(1, green.NewToken(kind, "!"))
//
// # Building
//
// Parsers build green trees with a Builder:
//
//	b := green.NewBuilder(cache)
//	b.StartNode(rootKind)
//	b.Token(identKind, "ab")
//	b.FinishNode()
//	root, err := b.Finish()
//
// A Cache passed to NewBuilder interns identical tokens and small nodes.
//
// # Positions
//
// Offsets and parents live in the red layer; see package
// github.com/signadot/syntree/red.
package green
