package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
	"github.com/signadot/syntree"
	"github.com/signadot/syntree/textdiff"
)

func replace(cfg *ReplaceConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Replace.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Path == "" {
		return fmt.Errorf("%w: replace requires -path", cli.ErrUsage)
	}
	path, err := syntree.ParsePath(cfg.Path)
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	return cfg.forEachDoc(cc, args, func(name string, doc *syntree.Document) error {
		res, _, err := doc.Replace(path, []byte(cfg.With))
		if err != nil {
			return err
		}
		if cfg.Diff {
			if _, err := fmt.Fprintf(cc.Out, "--- %s\n+++ %s\n", name, name); err != nil {
				return err
			}
			return textdiff.Write(cc.Out, string(doc.Text), string(res.Text), cfg.colors(cc.Out))
		}
		_, err = cc.Out.Write(res.Text)
		return err
	})
}
