package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout); .json and .yaml set the dump format",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "O",
			Aliases:     []string{"ofmt"},
			Description: "dump format: text/t, json/j, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.OutFormat), "(format)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "syn").
		WithSynopsis("syn [opts] command [opts]").
		WithDescription("syn is a tool for inspecting and editing syntax trees.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return synMain(cfg, cc, args)
		}).
		WithSubs(
			DumpCommand(cfg),
			GetCommand(cfg),
			FindCommand(cfg),
			PosCommand(cfg),
			ReplaceCommand(cfg),
			LSPCommand(cfg))
}

func DumpCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DumpConfig{MainConfig: mainCfg, Depth: -1}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Dump, "dump").
		WithAliases("d").
		WithSynopsis("dump [-depth n] [-notrivia] [files]").
		WithDescription("dump the syntax tree of files with offsets").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return dump(cfg, cc, args)
		})
}

func GetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GetConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Get, "get").
		WithAliases("g").
		WithSynopsis("get [-d] <path> [files]").
		WithDescription("get the element at a path of child indices, such as 0.2.1").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return get(cfg, cc, args)
		})
}

func FindCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &FindConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Find, "find").
		WithAliases("f").
		WithSynopsis("find [-text] <expr> [files]").
		WithDescription(findDescription).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return find(cfg, cc, args)
		})
}

const findDescription = `find lists the elements on which an expression holds.

The expression is evaluated on every node and token with the variables

  kind    kind name, such as "Field" or "Number"
  start   offset of the first byte
  end     offset after the last byte
  size    end - start
  depth   number of ancestors
  index   index among the parent's children
  text    covered text
  token   whether the element is a token
  parent  kind name of the parent, "" at the root

for example

  syn find 'kind == "Field" && depth == 2' a.syn`

func PosCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PosConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Pos, "pos").
		WithAliases("p").
		WithSynopsis("pos <offset|line:col> [files]").
		WithDescription("show the token at a position and the nodes containing it").
		WithRun(func(cc *cli.Context, args []string) error {
			return pos(cfg, cc, args)
		})
}

func ReplaceCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ReplaceConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Replace, "replace").
		WithAliases("r").
		WithSynopsis("replace -path p -with text [-diff] [files]").
		WithDescription("replace the element at a path and print the result").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return replace(cfg, cc, args)
		})
}

func LSPCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &LSPConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.LSP, "lsp").
		WithSynopsis("lsp [-gops]").
		WithDescription("run a language server on stdin and stdout").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return runLSP(cfg, cc, args)
		})
}
