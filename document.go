package syntree

import (
	"fmt"

	"github.com/signadot/syntree/debug"
	"github.com/signadot/syntree/parse"
	"github.com/signadot/syntree/red"
)

// Document is a text together with its red tree.
type Document struct {
	Text []byte
	Root *red.Node

	opts []parse.ParseOption
}

// Parse parses d into a Document. The options are also used to parse the
// fragments given to Replace.
func Parse(d []byte, opts ...parse.ParseOption) (*Document, error) {
	g, err := parse.Parse(d, opts...)
	if err != nil {
		return nil, err
	}
	return &Document{Text: d, Root: red.NewRoot(g), opts: opts}, nil
}

// Get returns the element of doc at p.
func (doc *Document) Get(p Path) (red.Element, error) {
	var cur red.Element = doc.Root
	for i, n := range p {
		node, ok := cur.(*red.Node)
		if !ok {
			return nil, fmt.Errorf("%w: %s: %s at %s is a token", ErrBadPath, p, cur.Kind(), p[:i])
		}
		c, err := node.ChildAt(n)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrBadPath, p, err)
		}
		cur = c
	}
	return cur, nil
}

// Replace parses fragment and puts it in place of the element at p. It
// returns the new document and the node of the new tree whose child was
// replaced. doc is left unchanged.
func (doc *Document) Replace(p Path, fragment []byte) (*Document, *red.Node, error) {
	pp, i, ok := p.Parent()
	if !ok {
		return nil, nil, fmt.Errorf("%w: cannot replace the document root", ErrBadPath)
	}
	pe, err := doc.Get(pp)
	if err != nil {
		return nil, nil, err
	}
	parent, ok := pe.(*red.Node)
	if !ok {
		return nil, nil, fmt.Errorf("%w: %s: %s at %s is a token", ErrBadPath, p, pe.Kind(), pp)
	}
	g, err := parse.ParseFragment(fragment, doc.opts...)
	if err != nil {
		return nil, nil, err
	}
	edited, err := parent.ReplaceChild(i, g)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %s: %w", ErrBadPath, p, err)
	}
	root := edited.Root()
	if debug.Rebuild() {
		debug.Logf("replaced %s with %q, %d -> %d bytes\n", p, fragment, doc.Root.TextLen(), root.TextLen())
	}
	return &Document{Text: []byte(root.String()), Root: root, opts: doc.opts}, edited, nil
}
