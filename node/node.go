// Package node defines the format-preserving S-expression syntax tree:
// kind-tagged nodes where list, vector, set and map forms own ordered child
// sequences and whitespace/comment nodes preserve source formatting.
package node

import "fmt"

type Kind int

const (
	KindInvalid Kind = iota
	KindList
	KindVector
	KindSet
	KindMap
	KindToken
	KindWhitespace
	KindComment
)

func (k Kind) String() string {
	s, ok := map[Kind]string{
		KindList:       "List",
		KindVector:     "Vector",
		KindSet:        "Set",
		KindMap:        "Map",
		KindToken:      "Token",
		KindWhitespace: "Whitespace",
		KindComment:    "Comment",
	}[k]
	if ok {
		return s
	}
	return "<unknown kind>"
}

func Kinds() []Kind {
	return []Kind{
		KindList,
		KindVector,
		KindSet,
		KindMap,
		KindToken,
		KindWhitespace,
		KindComment,
	}
}

// IsBranch reports whether nodes of this kind own a child sequence.
func (k Kind) IsBranch() bool {
	switch k {
	case KindList, KindVector, KindSet, KindMap:
		return true
	default:
		return false
	}
}

// IsFormatting reports whether this kind carries formatting only and is
// skipped by whitespace-aware navigation.
func (k Kind) IsFormatting() bool {
	return k == KindWhitespace || k == KindComment
}

// Delims returns the source delimiters enclosing a branch kind's children.
// Non-branch kinds have none.
func (k Kind) Delims() (string, string) {
	switch k {
	case KindList:
		return "(", ")"
	case KindVector:
		return "[", "]"
	case KindSet:
		return "#{", "}"
	case KindMap:
		return "{", "}"
	default:
		return "", ""
	}
}

// Node is one element of a format-preserving syntax tree. Branch kinds use
// Children, in source order, with whitespace and comment nodes interleaved
// among the significant ones. Token nodes carry the literal host value in
// Value and its source text in Text. Whitespace and comment nodes carry raw
// source text in Text.
//
// Nodes are immutable once built: edits produce new nodes and share all
// untouched subtrees.
type Node struct {
	Kind     Kind
	Children []*Node
	Value    any
	Text     string
}

// Significant reports whether the node takes part in the syntactic
// structure, as opposed to formatting.
func (n *Node) Significant() bool {
	return n != nil && !n.Kind.IsFormatting()
}

// MakeNode rebuilds a branch node of the same kind as old around children.
// Calling it with a non-branch old node is a programmer error.
func MakeNode(old *Node, children []*Node) *Node {
	if old == nil {
		panic("node: cannot rebuild nil node")
	}
	if !old.Kind.IsBranch() {
		panic(fmt.Sprintf("node: cannot rebuild %s node from a child sequence", old.Kind))
	}
	return &Node{Kind: old.Kind, Children: children}
}

func NewList(children ...*Node) *Node {
	return &Node{Kind: KindList, Children: children}
}

func NewVector(children ...*Node) *Node {
	return &Node{Kind: KindVector, Children: children}
}

func NewSet(children ...*Node) *Node {
	return &Node{Kind: KindSet, Children: children}
}

func NewMap(children ...*Node) *Node {
	return &Node{Kind: KindMap, Children: children}
}

// NewToken builds an atomic node holding value, rendered in source as text.
func NewToken(value any, text string) *Node {
	return &Node{Kind: KindToken, Value: value, Text: text}
}

// Space is a single-space whitespace node, the separator synthesized by
// spacing-aware insertion.
func Space() *Node {
	return &Node{Kind: KindWhitespace, Text: " "}
}

func Newline() *Node {
	return &Node{Kind: KindWhitespace, Text: "\n"}
}

// Whitespace builds a whitespace node with the given raw text.
func Whitespace(text string) *Node {
	return &Node{Kind: KindWhitespace, Text: text}
}

// Comment builds a comment node. Text includes the leading ';' and excludes
// the terminating newline.
func Comment(text string) *Node {
	return &Node{Kind: KindComment, Text: text}
}
