package lsp

import (
	"context"
	"strings"

	"github.com/signadot/syntree/red"
	"github.com/signadot/syntree/token"

	"go.lsp.dev/protocol"
)

// indices into semanticLegend.TokenTypes
const (
	semComment uint32 = iota
	semKeyword
	semString
	semNumber
	semOperator
	semProperty
	semType
)

var semanticLegend = protocol.SemanticTokensLegend{
	TokenTypes: []protocol.SemanticTokenTypes{
		protocol.SemanticTokenComment,
		protocol.SemanticTokenKeyword,
		protocol.SemanticTokenString,
		protocol.SemanticTokenNumber,
		protocol.SemanticTokenOperator,
		protocol.SemanticTokenProperty,
		protocol.SemanticTokenType,
	},
	TokenModifiers: []protocol.SemanticTokenModifiers{},
}

func (s *Server) SemanticTokensFull(ctx context.Context, params *protocol.SemanticTokensParams) (*protocol.SemanticTokens, error) {
	d := s.docs.get(params.TextDocument.URI)
	if d == nil || d.doc == nil {
		return nil, nil
	}
	return &protocol.SemanticTokens{Data: semanticTokens(d, red.TextRange(d.doc.Root))}, nil
}

func (s *Server) SemanticTokensRange(ctx context.Context, params *protocol.SemanticTokensRangeParams) (*protocol.SemanticTokens, error) {
	d := s.docs.get(params.TextDocument.URI)
	if d == nil || d.doc == nil {
		return nil, nil
	}
	r := red.Range{
		Start: d.index.OffsetOf(params.Range.Start),
		End:   d.index.OffsetOf(params.Range.End),
	}
	return &protocol.SemanticTokens{Data: semanticTokens(d, r)}, nil
}

// semanticTokens encodes the tokens within r as LSP relative
// (line, start, length, type, modifiers) quintuples. Tokens spanning
// lines are skipped.
func semanticTokens(d *document, r red.Range) []uint32 {
	res := []uint32{}
	var prevLine, prevChar uint32
	for e := range d.doc.Root.Preorder() {
		tok, ok := e.(*red.Token)
		if !ok {
			continue
		}
		tr := red.TextRange(tok)
		if tr.Len() == 0 || !r.Covers(tr) || strings.Contains(tok.Text(), "\n") {
			continue
		}
		typ, ok := semanticType(tok)
		if !ok {
			continue
		}
		start, end := d.index.Position(tr.Start), d.index.Position(tr.End)
		dChar := start.Character
		if start.Line == prevLine {
			dChar -= prevChar
		}
		res = append(res, start.Line-prevLine, dChar, end.Character-start.Character, typ, 0)
		prevLine, prevChar = start.Line, start.Character
	}
	return res
}

func semanticType(tok *red.Token) (uint32, bool) {
	k := tok.Kind()
	if isKey(tok) {
		return semProperty, true
	}
	switch k {
	case token.Comment:
		return semComment, true
	case token.String:
		return semString, true
	case token.Number:
		return semNumber, true
	case token.Tag:
		return semType, true
	case token.Literal:
		switch tok.Text() {
		case "true", "false", "null":
			return semKeyword, true
		}
		return semString, true
	case token.Colon, token.Comma:
		return semOperator, true
	}
	if _, _, ok := token.Closer(k); ok || token.IsCloser(k) {
		return semOperator, true
	}
	return 0, false
}

// isKey reports whether tok is the key of a field.
func isKey(tok *red.Token) bool {
	p := tok.Parent()
	if p == nil || p.Kind() != token.Field {
		return false
	}
	first, err := p.ChildAt(0)
	if err != nil {
		return false
	}
	_, isTok := first.(*red.Token)
	return isTok && first.TextOffset() == tok.TextOffset()
}
