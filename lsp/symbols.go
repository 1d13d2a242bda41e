package lsp

import (
	"context"

	"github.com/signadot/syntree/red"
	"github.com/signadot/syntree/token"

	"go.lsp.dev/protocol"
)

func (s *Server) DocumentSymbol(ctx context.Context, params *protocol.DocumentSymbolParams) ([]interface{}, error) {
	d := s.docs.get(params.TextDocument.URI)
	if d == nil || d.doc == nil {
		return nil, nil
	}
	syms := symbols(d, d.doc.Root)
	res := make([]interface{}, len(syms))
	for i := range syms {
		res[i] = syms[i]
	}
	return res, nil
}

// symbols returns a symbol for each node child of n.
func symbols(d *document, n *red.Node) []protocol.DocumentSymbol {
	var res []protocol.DocumentSymbol
	for c := range n.Children() {
		cn, ok := c.(*red.Node)
		if !ok {
			continue
		}
		res = append(res, symbol(d, cn))
	}
	return res
}

func symbol(d *document, n *red.Node) protocol.DocumentSymbol {
	rng := d.index.Range(red.TextRange(n))
	sym := protocol.DocumentSymbol{
		Name:           n.Kind().String(),
		Detail:         red.TextRange(n).String(),
		Range:          rng,
		SelectionRange: rng,
		Children:       symbols(d, n),
	}
	switch n.Kind() {
	case token.Object:
		sym.Name = "{}"
		sym.Kind = protocol.SymbolKindObject
	case token.Array:
		sym.Name = "[]"
		sym.Kind = protocol.SymbolKindArray
	case token.Group:
		sym.Name = "()"
		sym.Kind = protocol.SymbolKindStruct
	case token.Field:
		sym.Kind = protocol.SymbolKindKey
		if k, err := n.ChildAt(0); err == nil {
			sym.Name = k.String()
			sym.SelectionRange = d.index.Range(red.TextRange(k))
		}
	default:
		sym.Kind = protocol.SymbolKindNamespace
	}
	return sym
}

func (s *Server) FoldingRanges(ctx context.Context, params *protocol.FoldingRangeParams) ([]protocol.FoldingRange, error) {
	d := s.docs.get(params.TextDocument.URI)
	if d == nil || d.doc == nil {
		return nil, nil
	}
	return foldingRanges(d), nil
}

// foldingRanges returns a range for each node spanning more than one line,
// and for each run of consecutive comment lines.
func foldingRanges(d *document) []protocol.FoldingRange {
	var res []protocol.FoldingRange
	comments := -1
	lastComment := -1
	flush := func() {
		if comments >= 0 && lastComment > comments {
			res = append(res, protocol.FoldingRange{
				StartLine: uint32(comments),
				EndLine:   uint32(lastComment),
				Kind:      protocol.CommentFoldingRange,
			})
		}
		comments, lastComment = -1, -1
	}
	for e := range d.doc.Root.Preorder() {
		r := red.TextRange(e)
		if r.Len() == 0 {
			continue
		}
		start, _ := d.index.LineCol(r.Start)
		end, _ := d.index.LineCol(r.End - 1)
		switch x := e.(type) {
		case *red.Node:
			flush()
			if x.Parent() == nil || start == end {
				continue
			}
			res = append(res, protocol.FoldingRange{
				StartLine: uint32(start),
				EndLine:   uint32(end),
			})
		case *red.Token:
			switch {
			case x.Kind() == token.Comment:
				if comments >= 0 && start == lastComment+1 {
					lastComment = start
					continue
				}
				flush()
				comments, lastComment = start, start
			case token.IsTrivia(x.Kind()):
			default:
				flush()
			}
		}
	}
	flush()
	return res
}
