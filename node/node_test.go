package node

import "testing"

func TestKindPredicates(t *testing.T) {
	for _, k := range Kinds() {
		switch k {
		case KindList, KindVector, KindSet, KindMap:
			if !k.IsBranch() || k.IsFormatting() {
				t.Errorf("%s: want branch, not formatting", k)
			}
		case KindToken:
			if k.IsBranch() || k.IsFormatting() {
				t.Errorf("%s: want atomic, not formatting", k)
			}
		case KindWhitespace, KindComment:
			if k.IsBranch() || !k.IsFormatting() {
				t.Errorf("%s: want formatting, not branch", k)
			}
		}
	}
}

func TestMakeNode(t *testing.T) {
	old := NewList(NewToken(int64(1), "1"))
	kids := []*Node{NewToken(int64(2), "2")}
	n := MakeNode(old, kids)
	if n.Kind != KindList {
		t.Errorf("kind: got %s, want %s", n.Kind, KindList)
	}
	if len(n.Children) != 1 || n.Children[0].Text != "2" {
		t.Errorf("children not taken from argument")
	}
	if old.Children[0].Text != "1" {
		t.Errorf("MakeNode mutated the old node")
	}
}

func TestMakeNodeOnAtomPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("MakeNode on a token: expected panic")
		}
	}()
	MakeNode(NewToken(int64(1), "1"), nil)
}

func TestSignificant(t *testing.T) {
	if Space().Significant() || Comment("; x").Significant() {
		t.Errorf("formatting nodes must not be significant")
	}
	if !NewToken(nil, "nil").Significant() || !NewList().Significant() {
		t.Errorf("token and branch nodes must be significant")
	}
	var n *Node
	if n.Significant() {
		t.Errorf("nil node must not be significant")
	}
}

func TestDelims(t *testing.T) {
	for _, tt := range []struct {
		k           Kind
		open, close string
	}{
		{KindList, "(", ")"},
		{KindVector, "[", "]"},
		{KindSet, "#{", "}"},
		{KindMap, "{", "}"},
		{KindToken, "", ""},
	} {
		o, c := tt.k.Delims()
		if o != tt.open || c != tt.close {
			t.Errorf("%s delims: got %q %q, want %q %q", tt.k, o, c, tt.open, tt.close)
		}
	}
}
