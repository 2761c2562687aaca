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
	opts := append(sOpts, &cli.Opt{
		Name:        "o",
		Description: "output file (default stdout)",
		Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
	})

	return cli.NewCommandAt(&cfg.Main, "sexp").
		WithSynopsis("sexp [opts] command [opts]").
		WithDescription("sexp is a tool for format-preserving rewrites of s-expression files.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return sexpMain(cfg, cc, args)
		}).
		WithSubs(
			ViewCommand(cfg),
			GetCommand(cfg),
			ReplaceCommand(cfg))
}

func ViewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ViewConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("view").
		WithAliases("v").
		WithSynopsis("view [files]").
		WithDescription("reprint s-expression files, in color on a terminal").
		WithRun(func(cc *cli.Context, args []string) error {
			return view(cfg, cc, args)
		})
	cfg.View = cmd
	return cmd
}

func GetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GetConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("get").
		WithAliases("g").
		WithSynopsis("get <literal> [files]").
		WithDescription("locate the first token with the given literal value").
		WithRun(func(cc *cli.Context, args []string) error {
			return get(cfg, cc, args)
		})
	cfg.Get = cmd
	return cmd
}

func ReplaceCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ReplaceConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("replace").
		WithAliases("r", "rep").
		WithSynopsis("replace [-d] <old> <new> [files]").
		WithDescription("rewrite every token with literal <old> to <new>").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return replace(cfg, cc, args)
		})
	cfg.Replace = cmd
	return cmd
}
