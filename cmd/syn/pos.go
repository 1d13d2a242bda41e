package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/scott-cotton/cli"
	"github.com/signadot/syntree"
	"github.com/signadot/syntree/red"
	"github.com/signadot/syntree/textpos"
)

func pos(cfg *PosConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Pos.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: pos requires one argument, an offset or line:col", cli.ErrUsage)
	}
	at := args[0]
	return cfg.forEachDoc(cc, args[1:], func(_ string, doc *syntree.Document) error {
		index := textpos.NewIndex(doc.Text)
		off, err := parsePos(index, at)
		if err != nil {
			return fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		return writePos(cc.Out, index, doc.Root, off)
	})
}

// parsePos parses a byte offset, or a one based line:col.
func parsePos(index *textpos.Index, v string) (int, error) {
	l, c, ok := strings.Cut(v, ":")
	if !ok {
		off, err := strconv.Atoi(v)
		if err != nil || off < 0 {
			return 0, fmt.Errorf("bad offset %q", v)
		}
		return off, nil
	}
	line, err := strconv.Atoi(l)
	if err != nil || line < 1 {
		return 0, fmt.Errorf("bad line in %q", v)
	}
	col, err := strconv.Atoi(c)
	if err != nil || col < 1 {
		return 0, fmt.Errorf("bad column in %q", v)
	}
	return index.Offset(line-1, col-1), nil
}

func writePos(w io.Writer, index *textpos.Index, root *red.Node, off int) error {
	tok, ok := root.TokenAtOffset(off)
	if !ok {
		return fmt.Errorf("no token at offset %d", off)
	}
	line, col := index.LineCol(tok.TextOffset())
	_, err := fmt.Fprintf(w, "%s %s@%s %q line %d col %d\n",
		syntree.PathOf(tok), tok.Kind(), red.TextRange(tok), tok.Text(), line+1, col+1)
	if err != nil {
		return err
	}
	for p := tok.Parent(); p != nil; p = p.Parent() {
		_, err := fmt.Fprintf(w, "  in %s %s@%s\n", syntree.PathOf(p), p.Kind(), red.TextRange(p))
		if err != nil {
			return err
		}
	}
	return nil
}
