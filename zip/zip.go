// Package zip provides a persistent cursor (zipper) over the node tree.
//
// A *Loc is an immutable cursor: every movement or edit returns a new
// location and never invalidates previously obtained ones. Unedited
// subtrees are shared structurally between old and new trees, so an edit
// allocates only along the path from the edited node to the root.
//
// A nil *Loc is the absent sentinel: it is what every movement returns when
// no location exists in the requested direction, and every method accepts a
// nil receiver and propagates it, so a chain of movements degrades to nil
// instead of panicking.
//
// Public movement (Right, Left, Down, Up, Next, Prev, Leftmost, Rightmost)
// skips whitespace and comment nodes transparently. The underlying
// primitives remain available with a Raw suffix.
package zip

import (
	"github.com/sexp-format/go-sexp/node"
)

// Converter maps between the node tree and host-level literal values. It is
// an injected strategy: the cursor never depends on a particular literal
// representation, and carries no converter unless one is supplied with
// WithConverter.
type Converter interface {
	ToNode(v any) (*node.Node, error)
	FromNode(n *node.Node) (any, error)
}

type options struct {
	conv Converter
}

type Option func(*options)

// WithConverter sets the converter used by Value, ReplaceValue and Edit.
// Without one those operations return ErrNoConverter; navigation, insertion
// and find never need it.
func WithConverter(c Converter) Option {
	return func(o *options) { o.conv = c }
}

// Loc is a location in the tree: the current node plus the path of frames
// needed to rebuild its ancestors. The zero value is not useful; obtain a
// Loc from New.
type Loc struct {
	node *node.Node
	path *path
	opts *options
}

// path is one ancestor frame. left holds the already-visited left siblings
// nearest-first; right holds the unvisited right siblings in order. parent
// is the original (pre-edit) parent node, kept so Up can rebuild a node of
// the same kind. changed marks that some descendant was edited and the
// parent must be rebuilt on the way up.
//
// A nil *path means the location is the root.
type path struct {
	left    []*node.Node
	right   []*node.Node
	parent  *node.Node
	up      *path
	changed bool
}

func (p *path) withChanged() *path {
	if p == nil || p.changed {
		return p
	}
	q := *p
	q.changed = true
	return &q
}

// New returns a cursor positioned on root.
func New(root *node.Node, opts ...Option) *Loc {
	o := &options{}
	for _, f := range opts {
		f(o)
	}
	return &Loc{node: root, opts: o}
}

// EmptyAt returns a virtual insertion point inside an empty branch node:
// a location holding no real node, on which Replace acts as a first
// insertion. It returns nil if l is absent or not an empty branch.
func EmptyAt(l *Loc) *Loc {
	if l == nil || l.node == nil {
		return nil
	}
	if !l.node.Kind.IsBranch() || len(l.node.Children) != 0 {
		return nil
	}
	return &Loc{path: &path{parent: l.node, up: l.path}, opts: l.opts}
}

// Node returns the node at the current location, nil on absent or virtual
// locations.
func (l *Loc) Node() *node.Node {
	if l == nil {
		return nil
	}
	return l.node
}

// Kind returns the current node's kind, KindInvalid on absent or virtual
// locations.
func (l *Loc) Kind() node.Kind {
	if l == nil || l.node == nil {
		return node.KindInvalid
	}
	return l.node.Kind
}

// IsVirtual reports whether l is a virtual insertion point: a real location
// that holds no node yet.
func (l *Loc) IsVirtual() bool {
	return l != nil && l.node == nil
}

// AtRoot reports whether the location has no parent.
func (l *Loc) AtRoot() bool {
	return l != nil && l.path == nil
}

// Root rebuilds and returns the full tree from any location by moving up
// until no parent remains.
func (l *Loc) Root() *node.Node {
	if l == nil {
		return nil
	}
	for l.path != nil {
		l = l.UpRaw()
	}
	return l.node
}

// rebuilt reconstitutes the current frame's child sequence: reversed left
// siblings, the current node if any, then the right siblings.
func (l *Loc) rebuilt() []*node.Node {
	p := l.path
	n := len(p.left) + len(p.right)
	if l.node != nil {
		n++
	}
	cs := make([]*node.Node, 0, n)
	for i := len(p.left) - 1; i >= 0; i-- {
		cs = append(cs, p.left[i])
	}
	if l.node != nil {
		cs = append(cs, l.node)
	}
	return append(cs, p.right...)
}

func (l *Loc) at(n *node.Node, p *path) *Loc {
	return &Loc{node: n, path: p, opts: l.opts}
}

func prepend(n *node.Node, rest []*node.Node) []*node.Node {
	cs := make([]*node.Node, 0, len(rest)+1)
	return append(append(cs, n), rest...)
}
