package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"
	"github.com/signadot/syntree"
	"github.com/signadot/syntree/format"
)

func synMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	defer func() {
		if cfg.CloseOut != nil {
			cfg.CloseOut()
		}
	}()
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		os.Exit(sub.Exit(cc, err))
	}
	return err
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	if fmat, ok := format.ForFile(a); ok && cfg.OutFormat == nil {
		cfg.OutFormat = &fmat
	}
	return nil, nil
}

// forEachDoc parses each of files, or the input of cc when there are none,
// and calls fn on the result. "-" names standard input.
func (cfg *MainConfig) forEachDoc(cc *cli.Context, files []string, fn func(name string, doc *syntree.Document) error) error {
	if len(files) == 0 {
		return cfg.readerDoc(cc.In, "-", fn)
	}
	for _, file := range files {
		if file == "-" {
			if err := cfg.readerDoc(cc.In, file, fn); err != nil {
				return err
			}
			continue
		}
		f, err := os.Open(file)
		if err != nil {
			return fmt.Errorf("could not open %q: %w", file, err)
		}
		err = cfg.readerDoc(f, file, fn)
		f.Close()
		if err != nil {
			return err
		}
	}
	return nil
}

func (cfg *MainConfig) readerDoc(r io.Reader, name string, fn func(string, *syntree.Document) error) error {
	in, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("error reading %s: %w", name, err)
	}
	doc, err := syntree.Parse(in, cfg.parseOpts()...)
	if err != nil {
		return fmt.Errorf("error parsing %s: %w", name, err)
	}
	if err := fn(name, doc); err != nil {
		return fmt.Errorf("error processing %s: %w", name, err)
	}
	return nil
}
