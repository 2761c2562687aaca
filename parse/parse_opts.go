package parse

import (
	"github.com/sexp-format/go-sexp/node"
	"github.com/sexp-format/go-sexp/token"
)

type parseOpts struct {
	comments  bool
	positions map[*node.Node]*token.Pos
}

type ParseOption func(*parseOpts)

// ParseComments selects whether whitespace and comment tokens become
// formatting nodes in the tree. It defaults to true; with false the tree
// holds only significant nodes and no longer reprints its source layout.
func ParseComments(v bool) ParseOption {
	return func(o *parseOpts) { o.comments = v }
}

// ParsePositions records the source position of every produced node in m.
// Positions stay valid for unedited nodes, which edits share with the
// original tree.
func ParsePositions(m map[*node.Node]*token.Pos) ParseOption {
	return func(o *parseOpts) {
		o.positions = m
	}
}
