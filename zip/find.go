package zip

import (
	"reflect"

	"github.com/sexp-format/go-sexp/debug"
	"github.com/sexp-format/go-sexp/node"
)

// Find returns the first location, starting at l itself and then stepping
// with move, for which pred holds. It returns nil once move yields nil.
// A nil move defaults to whitespace-aware Right.
func (l *Loc) Find(move MoveFn, pred func(*Loc) bool) *Loc {
	if move == nil {
		move = (*Loc).Right
	}
	for ; l != nil; l = move(l) {
		if debug.Find() {
			debug.Logf("zip: find at %s", l.Kind())
		}
		if pred(l) {
			return l
		}
	}
	return nil
}

// FindByKind returns the first location reachable via move whose node kind
// is k, testing l itself first.
func (l *Loc) FindByKind(move MoveFn, k node.Kind) *Loc {
	return l.Find(move, func(s *Loc) bool { return s.Kind() == k })
}

// FindNextByKind is FindByKind over Right, excluding the current location.
func (l *Loc) FindNextByKind(k node.Kind) *Loc {
	if l = l.Right(); l == nil {
		return nil
	}
	return l.FindByKind((*Loc).Right, k)
}

// FindPrevByKind is FindByKind over Left, excluding the current location.
func (l *Loc) FindPrevByKind(k node.Kind) *Loc {
	if l = l.Left(); l == nil {
		return nil
	}
	return l.FindByKind((*Loc).Left, k)
}

// FindToken returns the first token location reachable via move whose
// literal value satisfies pred.
func (l *Loc) FindToken(move MoveFn, pred func(v any) bool) *Loc {
	return l.Find(move, func(s *Loc) bool {
		return s.Kind() == node.KindToken && pred(s.node.Value)
	})
}

// FindValue returns the first token location reachable via move whose
// literal value equals v.
func (l *Loc) FindValue(move MoveFn, v any) *Loc {
	return l.FindToken(move, func(w any) bool { return valueEqual(w, v) })
}

func valueEqual(a, b any) bool {
	if a == nil || b == nil {
		return a == b
	}
	if reflect.TypeOf(a).Comparable() && reflect.TypeOf(b).Comparable() {
		return a == b
	}
	return reflect.DeepEqual(a, b)
}
