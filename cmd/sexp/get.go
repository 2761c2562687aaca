package main

import (
	"fmt"

	"github.com/sexp-format/go-sexp/node"
	"github.com/sexp-format/go-sexp/parse"
	"github.com/sexp-format/go-sexp/sexp"
	"github.com/sexp-format/go-sexp/token"
	"github.com/sexp-format/go-sexp/zip"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires a literal argument", cli.ErrUsage)
	}
	val, err := argValue(args[0])
	if err != nil {
		return fmt.Errorf("%w: bad literal %q: %v", cli.ErrUsage, args[0], err)
	}
	args = args[1:]
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, arg := range args {
		if err := getArg(cc, arg, val); err != nil {
			return err
		}
	}
	return nil
}

func getArg(cc *cli.Context, arg string, val any) error {
	d, err := readArg(arg)
	if err != nil {
		return err
	}
	positions := map[*node.Node]*token.Pos{}
	root, err := parse.Parse(d, parse.ParsePositions(positions))
	if err != nil {
		return fmt.Errorf("error parsing %s: %w", arg, err)
	}
	found := zip.New(root).FindValue((*zip.Loc).Next, val)
	if found == nil {
		// not an error, just no output for this file
		return nil
	}
	pos := positions[found.Node()]
	if pos == nil {
		return fmt.Errorf("no position recorded for %s in %s", found.Node().Text, arg)
	}
	line, col := pos.LineCol()
	_, err = fmt.Fprintf(cc.Out, "%s:%d:%d: %s\n", arg, line+1, col+1, found.Node().Text)
	return err
}

// argValue parses a command line argument as one s-expression form and
// converts it to its host value.
func argValue(arg string) (any, error) {
	n, err := parse.ParseString(arg)
	if err != nil {
		return nil, err
	}
	return sexp.FromNode(n)
}
