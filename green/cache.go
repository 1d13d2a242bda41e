package green

import (
	"encoding/binary"
	"hash/maphash"
	"sync"
)

// maxInternChildren bounds the nodes a Cache interns. Large nodes are rarely
// identical and hashing them costs more than it saves.
const maxInternChildren = 3

// Cache deduplicates identical tokens and small nodes so that repeated
// syntax (punctuation, keywords, short expressions) shares one green value.
// A Cache may be shared by concurrent builders.
type Cache struct {
	mu     sync.Mutex
	seed   maphash.Seed
	tokens map[uint64][]*Token
	nodes  map[uint64][]*Node
	hits   int
}

func NewCache() *Cache {
	return &Cache{
		seed:   maphash.MakeSeed(),
		tokens: map[uint64][]*Token{},
		nodes:  map[uint64][]*Node{},
	}
}

// Token returns a token of the given kind and text, reusing a previously
// returned one when possible.
func (c *Cache) Token(kind Kind, text string) *Token {
	var h maphash.Hash
	h.SetSeed(c.seed)
	writeKind(&h, kind)
	h.WriteString(text)
	sum := h.Sum64()

	c.mu.Lock()
	defer c.mu.Unlock()
	for _, t := range c.tokens[sum] {
		if t.kind == kind && t.text == text {
			c.hits++
			return t
		}
	}
	t := NewToken(kind, text)
	c.tokens[sum] = append(c.tokens[sum], t)
	return t
}

// Node returns a node of the given kind and children. Children are
// compared by identity, so interning is effective when the children
// themselves come from the same Cache. The children slice is retained.
func (c *Cache) Node(kind Kind, children []Element) *Node {
	if len(children) > maxInternChildren {
		return newNode(kind, children)
	}
	var h maphash.Hash
	h.SetSeed(c.seed)
	writeKind(&h, kind)
	var b [8]byte
	for _, ch := range children {
		binary.LittleEndian.PutUint64(b[:], maphash.Comparable(c.seed, ch))
		h.Write(b[:])
	}
	sum := h.Sum64()

	c.mu.Lock()
	defer c.mu.Unlock()
	for _, n := range c.nodes[sum] {
		if n.kind == kind && sameChildren(n.children, children) {
			c.hits++
			return n
		}
	}
	n := newNode(kind, children)
	c.nodes[sum] = append(c.nodes[sum], n)
	return n
}

// Hits reports how many lookups returned an existing value.
func (c *Cache) Hits() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hits
}

// Len reports the number of distinct interned values.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, ts := range c.tokens {
		n += len(ts)
	}
	for _, ns := range c.nodes {
		n += len(ns)
	}
	return n
}

func writeKind(h *maphash.Hash, k Kind) {
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], uint16(k))
	h.Write(b[:])
}

func sameChildren(a, b []Element) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
