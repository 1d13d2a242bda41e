package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
	"github.com/signadot/syntree"
	"github.com/signadot/syntree/encode"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a path", cli.ErrUsage)
	}
	path, err := syntree.ParsePath(args[0])
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	return cfg.forEachDoc(cc, args[1:], func(_ string, doc *syntree.Document) error {
		e, err := doc.Get(path)
		if err != nil {
			return err
		}
		if cfg.Dump {
			return encode.Encode(e, cc.Out, cfg.encOpts(cc.Out)...)
		}
		_, err = fmt.Fprintln(cc.Out, e.String())
		return err
	})
}
