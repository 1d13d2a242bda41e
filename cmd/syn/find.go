package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
	"github.com/signadot/syntree"
	"github.com/signadot/syntree/query"
	"github.com/signadot/syntree/red"
	"github.com/signadot/syntree/textpos"
)

func find(cfg *FindConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Find.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: find requires one argument, an expression", cli.ErrUsage)
	}
	q, err := query.Compile(args[0])
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	return cfg.forEachDoc(cc, args[1:], func(name string, doc *syntree.Document) error {
		found, err := query.Find(doc.Root, q)
		if err != nil {
			return err
		}
		index := textpos.NewIndex(doc.Text)
		for _, e := range found {
			r := red.TextRange(e)
			line, col := index.LineCol(r.Start)
			_, err := fmt.Fprintf(cc.Out, "%s:%d:%d: %s %s@%s", name, line+1, col+1, syntree.PathOf(e), e.Kind(), r)
			if err != nil {
				return err
			}
			if cfg.Text {
				_, err = fmt.Fprintf(cc.Out, " %q", e.String())
				if err != nil {
					return err
				}
			}
			if _, err := fmt.Fprintln(cc.Out); err != nil {
				return err
			}
		}
		return nil
	})
}
