package main

import (
	"fmt"
	"reflect"

	"github.com/sexp-format/go-sexp/encode"
	"github.com/sexp-format/go-sexp/parse"
	"github.com/sexp-format/go-sexp/sexp"
	"github.com/sexp-format/go-sexp/zip"

	"github.com/scott-cotton/cli"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

func replace(cfg *ReplaceConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Replace.Parse(cc, args)
	if err != nil {
		cfg.Replace.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) < 2 {
		return fmt.Errorf("%w: replace requires <old> and <new> literals", cli.ErrUsage)
	}
	oldV, err := argValue(args[0])
	if err != nil {
		return fmt.Errorf("%w: bad literal %q: %v", cli.ErrUsage, args[0], err)
	}
	newV, err := argValue(args[1])
	if err != nil {
		return fmt.Errorf("%w: bad literal %q: %v", cli.ErrUsage, args[1], err)
	}
	if reflect.DeepEqual(oldV, newV) {
		return fmt.Errorf("%w: <old> and <new> are the same literal", cli.ErrUsage)
	}
	args = args[2:]
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, arg := range args {
		if err := replaceArg(cfg, cc, arg, oldV, newV); err != nil {
			return err
		}
	}
	return nil
}

func replaceArg(cfg *ReplaceConfig, cc *cli.Context, arg string, oldV, newV any) error {
	d, err := readArg(arg)
	if err != nil {
		return err
	}
	root, err := parse.Parse(d)
	if err != nil {
		return fmt.Errorf("error parsing %s: %w", arg, err)
	}
	cur := zip.New(root, zip.WithConverter(sexp.Default))
	for loc := cur; loc != nil; {
		found := loc.FindValue((*zip.Loc).Next, oldV)
		if found == nil {
			break
		}
		cur, err = found.ReplaceValue(newV)
		if err != nil {
			return fmt.Errorf("error replacing in %s: %w", arg, err)
		}
		// resume past the substituted subtree so a <new> containing
		// <old> is not rewritten again
		loc = nextAfter(cur)
	}
	if cfg.D {
		before := encode.MustString(root)
		after := encode.MustString(cur.Root())
		dmp := diffpatch.New()
		diffs := dmp.DiffMain(before, after, false)
		_, err := fmt.Fprintln(cc.Out, dmp.DiffPrettyText(diffs))
		return err
	}
	if err := encode.Encode(cur.Root(), cc.Out, cfg.encOpts(cc.Out)...); err != nil {
		return fmt.Errorf("error encoding result: %w", err)
	}
	_, err = fmt.Fprintln(cc.Out)
	return err
}

// nextAfter steps to the next location in document order without entering
// the children of l.
func nextAfter(l *zip.Loc) *zip.Loc {
	for s := l; s != nil; s = s.UpRaw() {
		if r := s.RightRaw(); r != nil {
			return r
		}
	}
	return nil
}
