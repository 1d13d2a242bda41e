package parse

import (
	"fmt"

	"github.com/signadot/syntree/debug"
	"github.com/signadot/syntree/green"
	"github.com/signadot/syntree/token"
)

// Parse parses d into a green tree rooted at a token.Document node. The
// tree is lossless: its text is exactly d.
func Parse(d []byte, opts ...ParseOption) (*green.Node, error) {
	pOpts := &parseOpts{}
	for _, opt := range opts {
		opt(pOpts)
	}
	toks, err := token.Tokenize(d)
	if err != nil {
		return nil, err
	}
	if debug.Parse() {
		debug.Logf("parse: %d bytes, %d tokens\n", len(d), len(toks))
	}
	p := &parser{d: d, toks: toks, b: green.NewBuilder(pOpts.cache)}
	if err := p.document(); err != nil {
		return nil, err
	}
	return p.b.Finish()
}

// ParseFragment parses d as a single replacement element: one token, or
// one bracketed node.
func ParseFragment(d []byte, opts ...ParseOption) (green.Element, error) {
	doc, err := Parse(d, opts...)
	if err != nil {
		return nil, err
	}
	if doc.NumChildren() != 1 {
		return nil, fmt.Errorf("%w: %q has %d elements", ErrFragment, d, doc.NumChildren())
	}
	return doc.Child(0), nil
}

type parser struct {
	d    []byte
	toks []token.Token
	i    int
	b    *green.Builder
}

func (p *parser) token() {
	tok := &p.toks[p.i]
	p.b.Token(tok.Kind, string(tok.Bytes))
	p.i++
}

func (p *parser) peek() (green.Kind, bool) {
	if p.i >= len(p.toks) {
		return 0, false
	}
	return p.toks[p.i].Kind, true
}

func (p *parser) skip(k green.Kind) {
	for p.i < len(p.toks) && p.toks[p.i].Kind == k {
		p.token()
	}
}

func (p *parser) document() error {
	p.b.StartNode(token.Document)
	for p.i < len(p.toks) {
		if err := p.item(token.Document); err != nil {
			return err
		}
	}
	return p.b.FinishNode()
}

// item consumes one token, bracketed node or field in the context of a
// node of kind ctx.
func (p *parser) item(ctx green.Kind) error {
	tok := &p.toks[p.i]
	if closer, node, ok := token.Closer(tok.Kind); ok {
		return p.bracketed(closer, node)
	}
	if token.IsCloser(tok.Kind) {
		return token.ErrorAt(p.d, tok.Offset, fmt.Errorf("%w: unexpected %q", ErrUnbalanced, tok.Bytes))
	}
	if ctx == token.Object && isKey(tok.Kind) {
		return p.maybeField()
	}
	p.token()
	return nil
}

func (p *parser) bracketed(closer, node green.Kind) error {
	open := p.toks[p.i]
	p.b.StartNode(node)
	p.token()
	for p.i < len(p.toks) {
		if p.toks[p.i].Kind == closer {
			p.token()
			return p.b.FinishNode()
		}
		if err := p.item(node); err != nil {
			return err
		}
	}
	return token.ErrorAt(p.d, open.Offset, fmt.Errorf("%w: unclosed %q", ErrUnbalanced, open.Bytes))
}

// maybeField consumes a key and, when a colon follows, wraps it with the
// colon and value in a Field node.
func (p *parser) maybeField() error {
	cp := p.b.Checkpoint()
	p.token()
	j := p.i
	for j < len(p.toks) && p.toks[j].Kind == token.Whitespace {
		j++
	}
	if j >= len(p.toks) || p.toks[j].Kind != token.Colon {
		return nil
	}
	if err := p.b.StartNodeAt(cp, token.Field); err != nil {
		return err
	}
	for p.i <= j {
		p.token()
	}
	p.skip(token.Whitespace)
	if k, ok := p.peek(); ok && k == token.Tag {
		p.token()
		p.skip(token.Whitespace)
	}
	if k, ok := p.peek(); ok && isValue(k) {
		if err := p.item(token.Field); err != nil {
			return err
		}
	}
	return p.b.FinishNode()
}

func isKey(k green.Kind) bool {
	switch k {
	case token.Literal, token.String, token.Number:
		return true
	}
	return false
}

func isValue(k green.Kind) bool {
	switch k {
	case token.Literal, token.String, token.Number, token.LCurl, token.LSquare, token.LParen:
		return true
	}
	return false
}
