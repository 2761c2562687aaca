package parse

import (
	"testing"

	"github.com/sexp-format/go-sexp/encode"
	"github.com/sexp-format/go-sexp/node"
	"github.com/sexp-format/go-sexp/sexp"
	"github.com/sexp-format/go-sexp/token"

	"github.com/google/go-cmp/cmp"
)

type parseTest struct {
	in  string
	bad bool
}

func TestParse(t *testing.T) {
	pts := []parseTest{
		{in: `nil`},
		{in: `true`},
		{in: `false`},
		{in: `22`},
		{in: `1e14`},
		{in: `-7`},
		{in: `"hello"`},
		{in: `hello`},
		{in: `:kw`},
		{in: `()`},
		{in: `(a)`},
		{in: `(a b)`},
		{in: `(a (b (c)))`},
		{in: `[a, b]`},
		{in: `[[]]`},
		{in: `{:a 1 :b 2}`},
		{in: `#{1 2 3}`},
		{in: "(a ; note\n b)"},
		{in: "  (a)  "},
		{in: "; header\n(a)"},
		{in: `(a`, bad: true},
		{in: `(a]`, bad: true},
		{in: `)`, bad: true},
		{in: ``, bad: true},
		{in: `   `, bad: true},
		{in: `(a) (b)`, bad: true},
	}
	for _, pt := range pts {
		_, err := ParseString(pt.in)
		if pt.bad && err == nil {
			t.Errorf("ParseString(%q): expected error, got none", pt.in)
		}
		if !pt.bad && err != nil {
			t.Errorf("ParseString(%q): %v", pt.in, err)
		}
	}
}

func TestParseRoundTrip(t *testing.T) {
	// inside the top-level form, every byte survives
	for _, in := range []string{
		"(a b)",
		"( a,\tb )",
		"(a ; note\n b)",
		"[:k \"v\" 1.5]",
		"#{1 2}",
		"{:a 1,\n :b 2}",
		"(defn f [x]\n  ;; doc\n  (inc x))",
	} {
		root, err := ParseString(in)
		if err != nil {
			t.Fatalf("ParseString(%q): %v", in, err)
		}
		if got := encode.MustString(root); got != in {
			t.Errorf("round trip of %q: got %q", in, got)
		}
	}
}

func TestParseSurroundingTrivia(t *testing.T) {
	// whitespace and comments around the form are dropped; the form itself
	// still reprints byte-for-byte
	root, err := ParseString("  ; header\n (a ; note\n b)  \n")
	if err != nil {
		t.Fatal(err)
	}
	if got, want := encode.MustString(root), "(a ; note\n b)"; got != want {
		t.Errorf("reprint: got %q, want %q", got, want)
	}
}

func TestParseComments(t *testing.T) {
	root, err := ParseString("(a ; note\n [1, 2] b)", ParseComments(false))
	if err != nil {
		t.Fatal(err)
	}
	var kinds []node.Kind
	for _, ch := range root.Children {
		kinds = append(kinds, ch.Kind)
	}
	want := []node.Kind{node.KindToken, node.KindVector, node.KindToken}
	if diff := cmp.Diff(want, kinds); diff != "" {
		t.Errorf("child kinds (-want +got):\n%s", diff)
	}
	for _, ch := range root.Children[1].Children {
		if ch.Kind.IsFormatting() {
			t.Errorf("formatting node %q survived in nested branch", ch.Text)
		}
	}
}

func TestParseValues(t *testing.T) {
	root, err := ParseString(`(x :k "s" 3 2.5 true nil)`)
	if err != nil {
		t.Fatal(err)
	}
	want := []any{
		sexp.Symbol("x"),
		sexp.Keyword("k"),
		"s",
		int64(3),
		2.5,
		true,
		nil,
	}
	var got []any
	for _, ch := range root.Children {
		if ch.Kind != node.KindToken {
			continue
		}
		got = append(got, ch.Value)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("token values (-want +got):\n%s", diff)
	}
}

func TestParseKinds(t *testing.T) {
	root, err := ParseString(`(x [1] #{2} {:a 3})`)
	if err != nil {
		t.Fatal(err)
	}
	want := []node.Kind{
		node.KindToken,
		node.KindVector,
		node.KindSet,
		node.KindMap,
	}
	var got []node.Kind
	for _, ch := range root.Children {
		if ch.Significant() {
			got = append(got, ch.Kind)
		}
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("child kinds (-want +got):\n%s", diff)
	}
	if root.Kind != node.KindList {
		t.Errorf("root kind: got %s, want %s", root.Kind, node.KindList)
	}
}

func TestParsePositions(t *testing.T) {
	positions := map[*node.Node]*token.Pos{}
	root, err := ParseString("(a\n b)", ParsePositions(positions))
	if err != nil {
		t.Fatal(err)
	}
	var b *node.Node
	for _, ch := range root.Children {
		if ch.Kind == node.KindToken && ch.Text == "b" {
			b = ch
		}
	}
	if b == nil {
		t.Fatal("no b token")
	}
	pos := positions[b]
	if pos == nil {
		t.Fatal("no position for b")
	}
	if line, col := pos.LineCol(); line != 1 || col != 1 {
		t.Errorf("pos of b: got line=%d col=%d, want 1, 1", line, col)
	}
}

func TestParseStringEscapes(t *testing.T) {
	for _, st := range []struct {
		in   string
		want string
	}{
		{`"a\n\"b\""`, "a\n\"b\""},
		{`"\x01"`, "\x01"},
		{`"a\vb"`, "a\vb"},
		{`"\a\f\t\r"`, "\a\f\t\r"},
		{`"é"`, "é"},
		{`"\U0001F600"`, "\U0001F600"},
	} {
		root, err := ParseString(st.in)
		if err != nil {
			t.Fatalf("ParseString(%q): %v", st.in, err)
		}
		if got := root.Value; got != st.want {
			t.Errorf("ParseString(%q): got %q, want %q", st.in, got, st.want)
		}
	}
	if _, err := ParseString(`"\q"`); err == nil {
		t.Errorf("bad escape: expected error, got none")
	}
}

func TestQuotedValueRoundTrip(t *testing.T) {
	// any string value survives convert -> reprint -> reparse
	for _, want := range []string{"\x01", "a\vb", "plain", "é\n\"q\""} {
		n, err := sexp.ToNode(want)
		if err != nil {
			t.Fatal(err)
		}
		back, err := ParseString(encode.MustString(n))
		if err != nil {
			t.Fatalf("reparse of %q: %v", want, err)
		}
		if got := back.Value; got != want {
			t.Errorf("round trip of %q: got %q", want, got)
		}
	}
}
