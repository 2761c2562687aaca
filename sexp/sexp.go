// Package sexp is the reference converter between the node tree and host
// literal values. It satisfies zip.Converter; cursors that need the value
// layer inject Default (or their own literal model) via zip.WithConverter.
package sexp

import (
	"errors"
	"fmt"

	"github.com/sexp-format/go-sexp/node"
)

// Symbol is an S-expression symbol literal.
type Symbol string

// Keyword is a keyword literal; the value excludes the leading colon.
type Keyword string

// List, Vector and Set are the host values of the composite forms. Their
// element order is source order.
type (
	List   []any
	Vector []any
	Set    []any
)

// Entry is one key/value pair of a Map, kept in source order.
type Entry struct {
	Key any
	Val any
}

// Map is an ordered map literal.
type Map []Entry

// ErrConvert is wrapped by every conversion failure.
var ErrConvert = errors.New("sexp: cannot convert")

// ConvertError reports a host value or node with no counterpart on the
// other side of the conversion.
type ConvertError struct {
	Value any
	Node  *node.Node
	Err   error
}

func (e *ConvertError) Error() string {
	if e.Node != nil {
		return fmt.Sprintf("%s: %s node", e.Err.Error(), e.Node.Kind)
	}
	return fmt.Sprintf("%s: %T value", e.Err.Error(), e.Value)
}

func (e *ConvertError) Unwrap() error {
	return e.Err
}

func valueErr(v any) error {
	return &ConvertError{Value: v, Err: ErrConvert}
}

func nodeErr(n *node.Node) error {
	return &ConvertError{Node: n, Err: ErrConvert}
}

// Converter is the stateless reference converter.
type Converter struct{}

// Default is the converter zip cursors use unless overridden.
var Default = Converter{}

// ToNode converts a host value to a node. Composite values render their
// elements with single-space separators. A *node.Node passes through
// unchanged.
func (c Converter) ToNode(v any) (*node.Node, error) {
	switch x := v.(type) {
	case *node.Node:
		return x, nil
	case nil:
		return node.NewToken(nil, "nil"), nil
	case bool:
		return node.NewToken(x, formatBool(x)), nil
	case int:
		return c.ToNode(int64(x))
	case int32:
		return c.ToNode(int64(x))
	case int64:
		return node.NewToken(x, formatInt(x)), nil
	case float64:
		return node.NewToken(x, formatFloat(x)), nil
	case string:
		return node.NewToken(x, quoteString(x)), nil
	case Symbol:
		return node.NewToken(x, string(x)), nil
	case Keyword:
		return node.NewToken(x, ":"+string(x)), nil
	case List:
		return c.branch(node.KindList, x)
	case Vector:
		return c.branch(node.KindVector, x)
	case Set:
		return c.branch(node.KindSet, x)
	case Map:
		flat := make([]any, 0, 2*len(x))
		for _, e := range x {
			flat = append(flat, e.Key, e.Val)
		}
		return c.branch(node.KindMap, flat)
	default:
		return nil, valueErr(v)
	}
}

func (c Converter) branch(k node.Kind, elts []any) (*node.Node, error) {
	cs := make([]*node.Node, 0, 2*len(elts))
	for i, e := range elts {
		n, err := c.ToNode(e)
		if err != nil {
			return nil, err
		}
		if i > 0 {
			cs = append(cs, node.Space())
		}
		cs = append(cs, n)
	}
	return &node.Node{Kind: k, Children: cs}, nil
}

// FromNode converts a subtree to its host value. Formatting children of
// branches are dropped; a bare formatting node has no host representation
// and is an error, as is a map form with an odd number of significant
// children.
func (c Converter) FromNode(n *node.Node) (any, error) {
	if n == nil {
		return nil, nodeErr(n)
	}
	switch n.Kind {
	case node.KindToken:
		return n.Value, nil
	case node.KindList:
		elts, err := c.elements(n)
		return List(elts), err
	case node.KindVector:
		elts, err := c.elements(n)
		return Vector(elts), err
	case node.KindSet:
		elts, err := c.elements(n)
		return Set(elts), err
	case node.KindMap:
		elts, err := c.elements(n)
		if err != nil {
			return nil, err
		}
		if len(elts)%2 != 0 {
			return nil, fmt.Errorf("%w: map form with %d children", ErrConvert, len(elts))
		}
		m := make(Map, 0, len(elts)/2)
		for i := 0; i < len(elts); i += 2 {
			m = append(m, Entry{Key: elts[i], Val: elts[i+1]})
		}
		return m, nil
	default:
		return nil, nodeErr(n)
	}
}

func (c Converter) elements(n *node.Node) ([]any, error) {
	elts := make([]any, 0, len(n.Children))
	for _, ch := range n.Children {
		if !ch.Significant() {
			continue
		}
		v, err := c.FromNode(ch)
		if err != nil {
			return nil, err
		}
		elts = append(elts, v)
	}
	return elts, nil
}

// ToNode converts with the default converter.
func ToNode(v any) (*node.Node, error) {
	return Default.ToNode(v)
}

// FromNode converts with the default converter.
func FromNode(n *node.Node) (any, error) {
	return Default.FromNode(n)
}
