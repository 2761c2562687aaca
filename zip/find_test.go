package zip

import (
	"testing"

	"github.com/sexp-format/go-sexp/node"
	"github.com/sexp-format/go-sexp/sexp"
)

func TestFindValue(t *testing.T) {
	a := New(mustParse(t, "(a b c)")).Down()
	b := a.FindValue(nil, sexp.Symbol("b"))
	if b == nil || b.Node().Text != "b" {
		t.Fatalf("find-value b: got %s", text(b))
	}
	if got := a.FindValue(nil, sexp.Symbol("z")); got != nil {
		t.Errorf("find-value z: got %s, want absent", text(got))
	}
	// pred is tested at the starting location first
	if got := a.FindValue(nil, sexp.Symbol("a")); got == nil || got.Node() != a.Node() {
		t.Errorf("find-value a: got %s, want the starting location", text(got))
	}
	// values reachable only leftward are not found by a rightward search
	c := a.FindValue(nil, sexp.Symbol("c"))
	if c == nil {
		t.Fatal("setup")
	}
	if got := c.FindValue(nil, sexp.Symbol("a")); got != nil {
		t.Errorf("rightward find of a from c: got %s, want absent", text(got))
	}
	if got := c.FindValue((*Loc).Left, sexp.Symbol("a")); got == nil {
		t.Errorf("leftward find of a from c: want found")
	}
}

func TestFindValueDeep(t *testing.T) {
	loc := New(mustParse(t, "(a (b [c 42]) d)"))
	got := loc.FindValue((*Loc).Next, int64(42))
	if got == nil || got.Node().Text != "42" {
		t.Fatalf("find-value 42 with next: got %s", text(got))
	}
	// default rightward move does not descend
	if l := loc.Down().FindValue(nil, int64(42)); l != nil {
		t.Errorf("find-value 42 with right: got %s, want absent", text(l))
	}
}

func TestFindByKind(t *testing.T) {
	loc := New(mustParse(t, "(a [b] {:k 1})"))
	v := loc.Down().FindByKind(nil, node.KindVector)
	if v == nil || v.Kind() != node.KindVector {
		t.Fatalf("find-by-kind vector: got %s", v.Kind())
	}
	m := loc.Down().FindByKind(nil, node.KindMap)
	if m == nil || m.Kind() != node.KindMap {
		t.Fatalf("find-by-kind map: got %s", m.Kind())
	}
	if loc.Down().FindByKind(nil, node.KindSet) != nil {
		t.Errorf("find-by-kind set: want absent")
	}
}

func TestFindNextPrevByKind(t *testing.T) {
	loc := New(mustParse(t, "([a] [b])"))
	first := loc.Down()
	if first.Kind() != node.KindVector {
		t.Fatal("setup")
	}
	// the starting location is excluded
	second := first.FindNextByKind(node.KindVector)
	if second == nil || second.Node() == first.Node() {
		t.Fatalf("find-next-by-kind: got %s", text(second))
	}
	if second.FindNextByKind(node.KindVector) != nil {
		t.Errorf("find-next-by-kind at end: want absent")
	}
	back := second.FindPrevByKind(node.KindVector)
	if back == nil || back.Node() != first.Node() {
		t.Errorf("find-prev-by-kind: got %s", text(back))
	}
	if first.FindPrevByKind(node.KindVector) != nil {
		t.Errorf("find-prev-by-kind at start: want absent")
	}
}

func TestFindToken(t *testing.T) {
	loc := New(mustParse(t, "(a 1 2.5 :k)")).Down()
	got := loc.FindToken(nil, func(v any) bool {
		_, ok := v.(float64)
		return ok
	})
	if got == nil || got.Node().Text != "2.5" {
		t.Errorf("find-token float: got %s", text(got))
	}
	// only tokens are tested
	inner := New(mustParse(t, "([x] y)")).Down()
	sym := inner.FindToken(nil, func(v any) bool { return true })
	if sym == nil || sym.Node().Text != "y" {
		t.Errorf("find-token any: got %s, want y", text(sym))
	}
}
