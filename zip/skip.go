package zip

import "github.com/sexp-format/go-sexp/debug"

// Skip repeatedly applies move while shouldSkip holds at the current
// location. It returns the first location where shouldSkip is false, or nil
// the moment move yields nil. Evaluation is step-by-step; the tree is never
// pre-walked.
func Skip(move MoveFn, shouldSkip func(*Loc) bool, l *Loc) *Loc {
	for l != nil && shouldSkip(l) {
		if debug.Skip() {
			debug.Logf("zip: skip %s", l.Kind())
		}
		l = move(l)
	}
	return l
}

// insignificant is the skip predicate for whitespace-aware navigation.
// Virtual locations count as significant.
func insignificant(l *Loc) bool {
	return l != nil && l.node != nil && l.node.Kind.IsFormatting()
}
