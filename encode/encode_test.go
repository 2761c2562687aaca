package encode

import (
	"strings"
	"testing"

	"github.com/sexp-format/go-sexp/node"
	"github.com/sexp-format/go-sexp/parse"
	"github.com/sexp-format/go-sexp/sexp"
)

func TestEncodeReprintsSource(t *testing.T) {
	for _, in := range []string{
		"(a b)",
		"(a ; note\n b)",
		"[:k \"v\" 1.5]",
		"#{1 2}",
		"{:a 1,\n :b 2}",
	} {
		root, err := parse.ParseString(in)
		if err != nil {
			t.Fatalf("ParseString(%q): %v", in, err)
		}
		if got := MustString(root); got != in {
			t.Errorf("encode of %q: got %q", in, got)
		}
	}
}

func TestEncodeBuiltTree(t *testing.T) {
	root := node.NewList(
		node.NewToken(sexp.Symbol("a"), "a"),
		node.Space(),
		node.NewVector(node.NewToken(int64(1), "1")),
	)
	if got, want := MustString(root), "(a [1])"; got != want {
		t.Errorf("encode: got %q, want %q", got, want)
	}
}

func TestEncodeColors(t *testing.T) {
	root, err := parse.ParseString("(a :k)")
	if err != nil {
		t.Fatal(err)
	}
	colors := NewColors()
	colors.Map[Colorable{Kind: node.KindToken, Attr: KeywordColor}] =
		func(v string, _ ...any) string { return "<" + v + ">" }
	buf := &strings.Builder{}
	if err := Encode(root, buf, EncodeColors(colors)); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "<:k>") {
		t.Errorf("keyword not colored: %q", buf.String())
	}
}
