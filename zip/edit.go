package zip

import "github.com/sexp-format/go-sexp/node"

// ReplaceRaw substitutes n for the current node without moving the cursor.
// It is valid at a virtual insertion point, where it acts as the first
// insertion into the enclosing branch.
func (l *Loc) ReplaceRaw(n *node.Node) *Loc {
	if l == nil {
		return nil
	}
	return l.at(n, l.path.withChanged())
}

// InsertLeftRaw splices n immediately before the current node. The cursor
// stays on the current node. Inserting a sibling at the root is a
// programmer error.
func (l *Loc) InsertLeftRaw(n *node.Node) *Loc {
	if l == nil {
		return nil
	}
	if l.path == nil {
		panic("zip: insert sibling at root")
	}
	p := l.path
	return l.at(l.node, &path{
		left:    prepend(n, p.left),
		right:   p.right,
		parent:  p.parent,
		up:      p.up,
		changed: true,
	})
}

// InsertRightRaw splices n immediately after the current node. The cursor
// stays on the current node. Inserting a sibling at the root is a
// programmer error.
func (l *Loc) InsertRightRaw(n *node.Node) *Loc {
	if l == nil {
		return nil
	}
	if l.path == nil {
		panic("zip: insert sibling at root")
	}
	p := l.path
	return l.at(l.node, &path{
		left:    p.left,
		right:   prepend(n, p.right),
		parent:  p.parent,
		up:      p.up,
		changed: true,
	})
}

// InsertChildRaw splices n as the new first child of the current node. It
// returns nil if the current node cannot have children.
func (l *Loc) InsertChildRaw(n *node.Node) *Loc {
	if l == nil || l.node == nil || !l.node.Kind.IsBranch() {
		return nil
	}
	return l.ReplaceRaw(node.MakeNode(l.node, prepend(n, l.node.Children)))
}

// AppendChildRaw splices n as the new last child of the current node. It
// returns nil if the current node cannot have children.
func (l *Loc) AppendChildRaw(n *node.Node) *Loc {
	if l == nil || l.node == nil || !l.node.Kind.IsBranch() {
		return nil
	}
	old := l.node.Children
	cs := make([]*node.Node, 0, len(old)+1)
	cs = append(append(cs, old...), n)
	return l.ReplaceRaw(node.MakeNode(l.node, cs))
}

// Remove deletes the current node. The cursor relocates to the nearest
// preceding sibling if one exists, else to the (rebuilt) parent. Removing
// the root returns nil.
func (l *Loc) Remove() *Loc {
	if l == nil || l.path == nil {
		return nil
	}
	p := l.path
	if len(p.left) > 0 {
		return l.at(p.left[0], &path{
			left:    p.left[1:],
			right:   p.right,
			parent:  p.parent,
			up:      p.up,
			changed: true,
		})
	}
	rest := make([]*node.Node, len(p.right))
	copy(rest, p.right)
	return l.at(node.MakeNode(p.parent, rest), p.up.withChanged())
}
