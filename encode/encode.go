// Package encode renders a node tree back to S-expression text. The tree is
// format-preserving, so rendering is a concatenation of leaf text and
// delimiters; a parsed form reprints byte-for-byte.
package encode

import (
	"io"

	"github.com/sexp-format/go-sexp/node"
	"github.com/sexp-format/go-sexp/sexp"
)

type EncState struct {
	Color func(node.Kind, ColorAttr, string) string
}

func Encode(n *node.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	return encode(n, w, es)
}

func encode(n *node.Node, w io.Writer, es *EncState) error {
	switch n.Kind {
	case node.KindWhitespace:
		return writeString(w, n.Text)
	case node.KindComment:
		return writeString(w, es.color(n.Kind, CommentColor, n.Text))
	case node.KindToken:
		attr := ValueColor
		if _, ok := n.Value.(sexp.Keyword); ok {
			attr = KeywordColor
		}
		return writeString(w, es.color(n.Kind, attr, n.Text))
	default:
		open, clos := n.Kind.Delims()
		if err := writeString(w, es.color(n.Kind, SepColor, open)); err != nil {
			return err
		}
		for _, ch := range n.Children {
			if err := encode(ch, w, es); err != nil {
				return err
			}
		}
		return writeString(w, es.color(n.Kind, SepColor, clos))
	}
}

func (es *EncState) color(k node.Kind, attr ColorAttr, s string) string {
	if es.Color == nil {
		return s
	}
	return es.Color(k, attr, s)
}

func writeString(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}
