// Package parse builds the format-preserving node tree from S-expression
// source text. It is the reference implementation of the parser
// collaborator: the cursor layer never depends on it.
package parse

import (
	"errors"
	"fmt"
	"strconv"
	"unicode/utf8"

	"github.com/sexp-format/go-sexp/node"
	"github.com/sexp-format/go-sexp/sexp"
	"github.com/sexp-format/go-sexp/token"
)

var ErrParse = errors.New("parse error")

// Parse parses a single top-level form and returns its node. Whitespace and
// comments around the form are permitted and dropped; inside the form they
// become formatting nodes in source order, so the form itself reprints
// byte-for-byte.
func Parse(d []byte, opts ...ParseOption) (*node.Node, error) {
	pOpts := &parseOpts{comments: true}
	for _, f := range opts {
		f(pOpts)
	}
	toks, err := token.Tokenize(d)
	if err != nil {
		return nil, err
	}
	pi := 0
	skipTrivia(toks, &pi)
	if pi >= len(toks) {
		return nil, fmt.Errorf("%w: no form in input", ErrParse)
	}
	res, err := parseForm(toks, &pi, pOpts)
	if err != nil {
		return nil, err
	}
	skipTrivia(toks, &pi)
	if pi < len(toks) {
		return nil, fmt.Errorf("%w: unexpected trailing form %s", ErrParse, toks[pi].Info())
	}
	return res, nil
}

func ParseString(s string, opts ...ParseOption) (*node.Node, error) {
	return Parse([]byte(s), opts...)
}

func skipTrivia(toks []token.Token, pi *int) {
	for *pi < len(toks) {
		switch toks[*pi].Type {
		case token.TWhitespace, token.TComment:
			*pi++
		default:
			return
		}
	}
}

func trackPos(n *node.Node, pos *token.Pos, opts *parseOpts) {
	if opts.positions != nil && pos != nil {
		opts.positions[n] = pos
	}
}

func parseForm(toks []token.Token, pi *int, opts *parseOpts) (*node.Node, error) {
	t := &toks[*pi]
	if t.Type.IsOpen() {
		return parseBranch(toks, pi, opts)
	}
	if t.Type.IsClose() {
		return nil, fmt.Errorf("%w: unbalanced %s", ErrParse, t.Info())
	}
	n, err := atom(t)
	if err != nil {
		return nil, err
	}
	trackPos(n, t.Pos, opts)
	*pi++
	return n, nil
}

func branchKind(t token.TokenType) (node.Kind, token.TokenType) {
	switch t {
	case token.TLParen:
		return node.KindList, token.TRParen
	case token.TLSquare:
		return node.KindVector, token.TRSquare
	case token.TLCurl:
		return node.KindMap, token.TRCurl
	case token.TSetOpen:
		return node.KindSet, token.TRCurl
	default:
		return node.KindInvalid, 0
	}
}

func parseBranch(toks []token.Token, pi *int, opts *parseOpts) (*node.Node, error) {
	open := &toks[*pi]
	kind, closing := branchKind(open.Type)
	*pi++
	res := &node.Node{Kind: kind}
	trackPos(res, open.Pos, opts)
	for {
		if *pi >= len(toks) {
			return nil, fmt.Errorf("%w: unbalanced %s", ErrParse, open.Info())
		}
		t := &toks[*pi]
		switch {
		case t.Type == closing:
			*pi++
			return res, nil
		case t.Type.IsClose():
			return nil, fmt.Errorf("%w: mismatched %s closing %s", ErrParse, t.Info(), open.Info())
		case t.Type == token.TWhitespace:
			if opts.comments {
				res.Children = append(res.Children, node.Whitespace(string(t.Bytes)))
			}
			*pi++
		case t.Type == token.TComment:
			if opts.comments {
				res.Children = append(res.Children, node.Comment(string(t.Bytes)))
			}
			*pi++
		default:
			child, err := parseForm(toks, pi, opts)
			if err != nil {
				return nil, err
			}
			res.Children = append(res.Children, child)
		}
	}
}

// atom converts a non-composite token to a token node with its host value.
func atom(t *token.Token) (*node.Node, error) {
	text := string(t.Bytes)
	switch t.Type {
	case token.TString:
		s, err := unquote(text)
		if err != nil {
			return nil, token.NewTokenizeErr(err, t.Pos)
		}
		return node.NewToken(s, text), nil
	case token.TNumber:
		if i, err := strconv.ParseInt(text, 10, 64); err == nil {
			return node.NewToken(i, text), nil
		}
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: bad number %s", ErrParse, t.Info())
		}
		return node.NewToken(f, text), nil
	case token.TKeyword:
		return node.NewToken(sexp.Keyword(text[1:]), text), nil
	case token.TSymbol:
		switch text {
		case "nil":
			return node.NewToken(nil, text), nil
		case "true":
			return node.NewToken(true, text), nil
		case "false":
			return node.NewToken(false, text), nil
		}
		return node.NewToken(sexp.Symbol(text), text), nil
	default:
		return nil, fmt.Errorf("%w: unexpected %s", ErrParse, t.Info())
	}
}

// unquote decodes a double-quoted string literal. Unlike strconv.Unquote it
// allows raw newlines inside the literal; escapes are strconv's full set,
// so strconv.Quote output decodes back to the original value.
func unquote(text string) (string, error) {
	if len(text) < 2 || text[0] != '"' || text[len(text)-1] != '"' {
		return "", fmt.Errorf("%w: bad string literal", ErrParse)
	}
	body := text[1 : len(text)-1]
	buf := make([]byte, 0, len(body))
	for len(body) > 0 {
		c, multibyte, rest, err := strconv.UnquoteChar(body, '"')
		if err != nil {
			return "", fmt.Errorf("%w: bad escape in string literal", ErrParse)
		}
		if multibyte {
			buf = utf8.AppendRune(buf, c)
		} else {
			buf = append(buf, byte(c))
		}
		body = rest
	}
	return string(buf), nil
}
