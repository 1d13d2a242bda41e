package green

import "fmt"

// Builder constructs a green tree bottom-up from a stream of StartNode,
// Token and FinishNode calls, as a parser produces them.
type Builder struct {
	cache    *Cache
	parents  []openNode
	children []Element
}

type openNode struct {
	kind  Kind
	first int
}

// Checkpoint marks a position in the child stream; see StartNodeAt.
type Checkpoint int

// NewBuilder returns a builder. If cache is not nil, tokens and small nodes
// are interned through it.
func NewBuilder(cache *Cache) *Builder {
	return &Builder{cache: cache}
}

func (b *Builder) StartNode(kind Kind) {
	b.parents = append(b.parents, openNode{kind: kind, first: len(b.children)})
}

func (b *Builder) Token(kind Kind, text string) {
	var t *Token
	if b.cache != nil {
		t = b.cache.Token(kind, text)
	} else {
		t = NewToken(kind, text)
	}
	b.children = append(b.children, t)
}

// FinishNode closes the most recently started node.
func (b *Builder) FinishNode() error {
	n := len(b.parents)
	if n == 0 {
		return fmt.Errorf("%w: FinishNode without StartNode", ErrUnbalanced)
	}
	open := b.parents[n-1]
	b.parents = b.parents[:n-1]
	children := make([]Element, len(b.children)-open.first)
	copy(children, b.children[open.first:])
	b.children = b.children[:open.first]

	var node *Node
	if b.cache != nil {
		node = b.cache.Node(open.kind, children)
	} else {
		node = newNode(open.kind, children)
	}
	b.children = append(b.children, node)
	return nil
}

func (b *Builder) Checkpoint() Checkpoint {
	return Checkpoint(len(b.children))
}

// StartNodeAt starts a node whose first child is the element produced
// right after cp was taken. This lets a parser decide on a wrapping node
// after having seen its first children.
func (b *Builder) StartNodeAt(cp Checkpoint, kind Kind) error {
	first := int(cp)
	if first > len(b.children) {
		return fmt.Errorf("%w: checkpoint %d beyond %d children", ErrUnbalanced, first, len(b.children))
	}
	if n := len(b.parents); n > 0 && b.parents[n-1].first > first {
		return fmt.Errorf("%w: checkpoint %d precedes open node", ErrUnbalanced, first)
	}
	b.parents = append(b.parents, openNode{kind: kind, first: first})
	return nil
}

// Finish returns the completed tree. Exactly one node must have been built
// at the top level and every started node must have been finished.
func (b *Builder) Finish() (*Node, error) {
	if len(b.parents) != 0 {
		return nil, fmt.Errorf("%w: %d unfinished nodes", ErrUnbalanced, len(b.parents))
	}
	if len(b.children) != 1 {
		return nil, fmt.Errorf("%w: %d top level elements", ErrUnbalanced, len(b.children))
	}
	root, ok := b.children[0].(*Node)
	if !ok {
		return nil, fmt.Errorf("%w: top level element is a token", ErrUnbalanced)
	}
	b.children = nil
	return root, nil
}
