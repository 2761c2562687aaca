package zip

import "github.com/sexp-format/go-sexp/node"

// MoveFn is any single-step movement over locations, e.g. (*Loc).Right or
// (*Loc).RightRaw. It must return nil when no location exists in its
// direction.
type MoveFn func(*Loc) *Loc

// DownRaw enters the first child. It returns nil if the current node is not
// a branch or has no children.
func (l *Loc) DownRaw() *Loc {
	if l == nil || l.node == nil {
		return nil
	}
	if !l.node.Kind.IsBranch() || len(l.node.Children) == 0 {
		return nil
	}
	cs := l.node.Children
	return l.at(cs[0], &path{
		right:  cs[1:],
		parent: l.node,
		up:     l.path,
	})
}

// UpRaw exits to the parent, rebuilding it if any descendant was edited.
// It returns nil at the root.
func (l *Loc) UpRaw() *Loc {
	if l == nil || l.path == nil {
		return nil
	}
	p := l.path
	parent := p.parent
	up := p.up
	if p.changed {
		parent = node.MakeNode(parent, l.rebuilt())
		up = up.withChanged()
	}
	return l.at(parent, up)
}

// LeftRaw moves to the immediately preceding sibling, nil at the left end
// or at the root.
func (l *Loc) LeftRaw() *Loc {
	if l == nil || l.path == nil || l.node == nil {
		return nil
	}
	p := l.path
	if len(p.left) == 0 {
		return nil
	}
	return l.at(p.left[0], &path{
		left:    p.left[1:],
		right:   prepend(l.node, p.right),
		parent:  p.parent,
		up:      p.up,
		changed: p.changed,
	})
}

// RightRaw moves to the immediately following sibling, nil at the right end
// or at the root.
func (l *Loc) RightRaw() *Loc {
	if l == nil || l.path == nil || l.node == nil {
		return nil
	}
	p := l.path
	if len(p.right) == 0 {
		return nil
	}
	return l.at(p.right[0], &path{
		left:    prepend(l.node, p.left),
		right:   p.right[1:],
		parent:  p.parent,
		up:      p.up,
		changed: p.changed,
	})
}

// LeftmostRaw moves to the first sibling, a no-op when already there. It
// returns nil only at the root.
func (l *Loc) LeftmostRaw() *Loc {
	if l == nil || l.path == nil || l.node == nil {
		return nil
	}
	p := l.path
	if len(p.left) == 0 {
		return l
	}
	cs := l.rebuilt()
	return l.at(cs[0], &path{
		right:   cs[1:],
		parent:  p.parent,
		up:      p.up,
		changed: p.changed,
	})
}

// RightmostRaw moves to the last sibling, a no-op when already there. It
// returns nil only at the root.
func (l *Loc) RightmostRaw() *Loc {
	if l == nil || l.path == nil || l.node == nil {
		return nil
	}
	p := l.path
	if len(p.right) == 0 {
		return l
	}
	cs := l.rebuilt()
	last := len(cs) - 1
	left := make([]*node.Node, 0, last)
	for i := last - 1; i >= 0; i-- {
		left = append(left, cs[i])
	}
	return l.at(cs[last], &path{
		left:    left,
		parent:  p.parent,
		up:      p.up,
		changed: p.changed,
	})
}

// NextRaw takes one pre-order depth-first step: into the first child if
// any, else to the next unvisited sibling of the nearest ancestor that has
// one. It returns nil only at the last node of the tree in document order.
func (l *Loc) NextRaw() *Loc {
	if l == nil {
		return nil
	}
	if d := l.DownRaw(); d != nil {
		return d
	}
	for s := l; s != nil; s = s.UpRaw() {
		if r := s.RightRaw(); r != nil {
			return r
		}
	}
	return nil
}

// PrevRaw is the inverse of NextRaw: the rightmost-deepest descendant of
// the preceding sibling if one exists, else the parent. It returns nil at
// the first node of the tree.
func (l *Loc) PrevRaw() *Loc {
	if l == nil {
		return nil
	}
	left := l.LeftRaw()
	if left == nil {
		return l.UpRaw()
	}
	for {
		d := left.DownRaw()
		if d == nil {
			return left
		}
		left = d.RightmostRaw()
	}
}
