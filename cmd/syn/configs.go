package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/syntree/encode"
	"github.com/signadot/syntree/format"
	"github.com/signadot/syntree/green"
	"github.com/signadot/syntree/parse"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='output with color'"`

	OutFormat *format.Format

	Out      string
	CloseOut func() error

	// shared by all inputs of a run, so that identical subtrees of
	// different files are one green value.
	cache *green.Cache

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fp **format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		*fp = &f
		return f, nil
	})
}

func (cfg *MainConfig) parseOpts() []parse.ParseOption {
	if cfg.cache == nil {
		cfg.cache = green.NewCache()
	}
	return []parse.ParseOption{parse.ParseCache(cfg.cache)}
}

// colors reports whether output to w should be colored: -color if it was
// given, otherwise whether w is a terminal.
func (cfg *MainConfig) colors(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		if opt.Value != nil {
			return false
		}
		break
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{}
	if cfg.OutFormat != nil {
		res = append(res, encode.EncodeFormat(*cfg.OutFormat))
	}
	if cfg.colors(w) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

type DumpConfig struct {
	*MainConfig
	Depth    int  `cli:"name=depth desc='maximum depth to dump, negative for all'"`
	NoTrivia bool `cli:"name=notrivia desc='omit whitespace, newlines and comments'"`

	Dump *cli.Command
}

func (cfg *DumpConfig) encOpts(w io.Writer) []encode.EncodeOption {
	return append(cfg.MainConfig.encOpts(w),
		encode.EncodeDepth(cfg.Depth),
		encode.EncodeTrivia(!cfg.NoTrivia))
}

type GetConfig struct {
	*MainConfig
	Dump bool `cli:"name=d desc='dump the element instead of printing its text'"`

	Get *cli.Command
}

type FindConfig struct {
	*MainConfig
	Text bool `cli:"name=text desc='print the text of each match'"`

	Find *cli.Command
}

type PosConfig struct {
	*MainConfig

	Pos *cli.Command
}

type ReplaceConfig struct {
	*MainConfig
	Path string `cli:"name=path desc='path of the element to replace, such as 0.2.1'"`
	With string `cli:"name=with desc='replacement text'"`
	Diff bool   `cli:"name=diff desc='print a diff instead of the result'"`

	Replace *cli.Command
}

type LSPConfig struct {
	*MainConfig
	Gops bool `cli:"name=gops desc='run a gops agent'"`

	LSP *cli.Command
}
