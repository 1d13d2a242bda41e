package lsp

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/signadot/syntree"
	"github.com/signadot/syntree/red"

	"go.lsp.dev/protocol"
)

func (s *Server) Hover(ctx context.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	d := s.docs.get(params.TextDocument.URI)
	if d == nil || d.doc == nil {
		return nil, nil
	}
	off := d.index.OffsetOf(params.Position)
	tok, ok := d.doc.Root.TokenAtOffset(off)
	if !ok {
		return nil, nil
	}
	rng := d.index.Range(red.TextRange(tok))
	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.Markdown,
			Value: hoverText(tok),
		},
		Range: &rng,
	}, nil
}

func hoverText(tok *red.Token) string {
	var parts []string
	text := truncate(tok.Text(), 50)
	parts = append(parts, fmt.Sprintf("**%s** `%s` at %s", tok.Kind(), text, red.TextRange(tok)))
	var chain []string
	for p := tok.Parent(); p != nil; p = p.Parent() {
		chain = append(chain, fmt.Sprintf("%s@%s", p.Kind(), red.TextRange(p)))
	}
	if len(chain) != 0 {
		parts = append(parts, "**In:** "+strings.Join(chain, " < "))
	}
	parts = append(parts, fmt.Sprintf("**Path:** `%s`", syntree.PathOf(tok)))
	return strings.Join(parts, "\n\n")
}

// truncate cuts s to at most n bytes on a rune boundary, marking the cut
// with "...".
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n] + "..."
}
