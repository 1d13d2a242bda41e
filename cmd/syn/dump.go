package main

import (
	"io"

	"github.com/scott-cotton/cli"
	"github.com/signadot/syntree"
	"github.com/signadot/syntree/encode"
)

func dump(cfg *DumpConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Dump.Parse(cc, args)
	if err != nil {
		return err
	}
	first := true
	return cfg.forEachDoc(cc, args, func(_ string, doc *syntree.Document) error {
		if !first {
			if _, err := io.WriteString(cc.Out, "---\n"); err != nil {
				return err
			}
		}
		first = false
		return encode.Encode(doc.Root, cc.Out, cfg.encOpts(cc.Out)...)
	})
}
