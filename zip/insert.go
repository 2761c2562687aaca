package zip

import "github.com/sexp-format/go-sexp/node"

// Spacing-aware insertion: every inserted item ends up separated from its
// significant neighbors by exactly one whitespace node. Existing adjacent
// whitespace is reused as a separator; a single space is synthesized only
// where a significant neighbor would otherwise touch the item.

// rightNeighborRaw returns the unskipped immediate right sibling, nil at
// the end.
func (l *Loc) rightNeighborRaw() *node.Node {
	if l.path == nil || len(l.path.right) == 0 {
		return nil
	}
	return l.path.right[0]
}

// leftNeighborRaw returns the unskipped immediate left sibling, nil at the
// start.
func (l *Loc) leftNeighborRaw() *node.Node {
	if l.path == nil || len(l.path.left) == 0 {
		return nil
	}
	return l.path.left[0]
}

// InsertRight inserts item as a sibling after the current node, spacing it
// from both neighbors. The cursor stays on the current node. At a virtual
// insertion point it acts as Replace.
func (l *Loc) InsertRight(item *node.Node) *Loc {
	if l == nil {
		return nil
	}
	if l.node == nil {
		return l.ReplaceRaw(item)
	}
	r := l.rightNeighborRaw()
	if r == nil || r.Kind.IsFormatting() {
		// The existing whitespace (if any) separates item from r; one
		// space is still needed between the current node and item.
		return l.InsertRightRaw(item).InsertRightRaw(node.Space())
	}
	return l.InsertRightRaw(node.Space()).
		InsertRightRaw(item).
		InsertRightRaw(node.Space())
}

// InsertLeft inserts item as a sibling before the current node, spacing it
// from both neighbors. The cursor stays on the current node. At a virtual
// insertion point it acts as Replace.
func (l *Loc) InsertLeft(item *node.Node) *Loc {
	if l == nil {
		return nil
	}
	if l.node == nil {
		return l.ReplaceRaw(item)
	}
	n := l.leftNeighborRaw()
	if n == nil || n.Kind.IsFormatting() {
		return l.InsertLeftRaw(item).InsertLeftRaw(node.Space())
	}
	return l.InsertLeftRaw(node.Space()).
		InsertLeftRaw(item).
		InsertLeftRaw(node.Space())
}

// InsertChild inserts item as the new first child of the current branch
// node, spaced from a significant first child. It returns nil if the
// current node cannot have children.
func (l *Loc) InsertChild(item *node.Node) *Loc {
	if l == nil || l.node == nil || !l.node.Kind.IsBranch() {
		return nil
	}
	cs := l.node.Children
	if len(cs) == 0 || cs[0].Kind.IsFormatting() {
		return l.InsertChildRaw(item)
	}
	return l.InsertChildRaw(node.Space()).InsertChildRaw(item)
}

// AppendChild inserts item as the new last child of the current branch
// node, spaced from a significant last child. It returns nil if the
// current node cannot have children.
func (l *Loc) AppendChild(item *node.Node) *Loc {
	if l == nil || l.node == nil || !l.node.Kind.IsBranch() {
		return nil
	}
	cs := l.node.Children
	if len(cs) == 0 || cs[len(cs)-1].Kind.IsFormatting() {
		return l.AppendChildRaw(item)
	}
	return l.AppendChildRaw(node.Space()).AppendChildRaw(item)
}
