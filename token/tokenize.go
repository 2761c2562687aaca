// Package token tokenizes S-expression source text, preserving whitespace
// and comments as tokens so that a parsed tree can reproduce its input
// byte-for-byte.
package token

import "fmt"

// Tokenize splits d into tokens. Whitespace runs (spaces, tabs, newlines,
// carriage returns and commas) and comments are emitted as tokens of their
// own; no input byte is dropped.
func Tokenize(d []byte) ([]Token, error) {
	posDoc := &PosDoc{d: d}
	var res []Token
	i := 0
	n := len(d)
	for i < n {
		c := d[i]
		switch {
		case isSpace(c):
			j := i
			for j < n && isSpace(d[j]) {
				if d[j] == '\n' {
					posDoc.nl(j)
				}
				j++
			}
			res = append(res, Token{Type: TWhitespace, Pos: posDoc.Pos(i), Bytes: d[i:j]})
			i = j
		case c == ';':
			j := i
			for j < n && d[j] != '\n' {
				j++
			}
			res = append(res, Token{Type: TComment, Pos: posDoc.Pos(i), Bytes: d[i:j]})
			i = j
		case c == '(':
			res = append(res, Token{Type: TLParen, Pos: posDoc.Pos(i), Bytes: d[i : i+1]})
			i++
		case c == ')':
			res = append(res, Token{Type: TRParen, Pos: posDoc.Pos(i), Bytes: d[i : i+1]})
			i++
		case c == '[':
			res = append(res, Token{Type: TLSquare, Pos: posDoc.Pos(i), Bytes: d[i : i+1]})
			i++
		case c == ']':
			res = append(res, Token{Type: TRSquare, Pos: posDoc.Pos(i), Bytes: d[i : i+1]})
			i++
		case c == '{':
			res = append(res, Token{Type: TLCurl, Pos: posDoc.Pos(i), Bytes: d[i : i+1]})
			i++
		case c == '}':
			res = append(res, Token{Type: TRCurl, Pos: posDoc.Pos(i), Bytes: d[i : i+1]})
			i++
		case c == '#':
			if i+1 < n && d[i+1] == '{' {
				res = append(res, Token{Type: TSetOpen, Pos: posDoc.Pos(i), Bytes: d[i : i+2]})
				i += 2
				break
			}
			return nil, UnexpectedErr("'#'", posDoc.Pos(i))
		case c == '"':
			j, err := scanString(d, i, posDoc)
			if err != nil {
				return nil, err
			}
			res = append(res, Token{Type: TString, Pos: posDoc.Pos(i), Bytes: d[i:j]})
			i = j
		default:
			tok, j, err := scanAtom(d, i, posDoc)
			if err != nil {
				return nil, err
			}
			res = append(res, tok)
			i = j
		}
	}
	return res, nil
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\r', '\n', ',':
		return true
	default:
		return false
	}
}

// isAtomEnd reports whether c terminates a symbol, keyword or number.
func isAtomEnd(c byte) bool {
	if isSpace(c) {
		return true
	}
	switch c {
	case '(', ')', '[', ']', '{', '}', '"', ';':
		return true
	default:
		return false
	}
}

func scanString(d []byte, i int, posDoc *PosDoc) (int, error) {
	n := len(d)
	j := i + 1
	for j < n {
		switch d[j] {
		case '\\':
			if j+1 >= n {
				return 0, ExpectedErr("escaped character", posDoc.Pos(j))
			}
			j += 2
		case '\n':
			posDoc.nl(j)
			j++
		case '"':
			return j + 1, nil
		default:
			j++
		}
	}
	return 0, ExpectedErr(`closing '"'`, posDoc.Pos(i))
}

func scanAtom(d []byte, i int, posDoc *PosDoc) (Token, int, error) {
	n := len(d)
	j := i
	for j < n && !isAtomEnd(d[j]) {
		j++
	}
	if j == i {
		return Token{}, 0, UnexpectedErr(fmt.Sprintf("%q", d[i]), posDoc.Pos(i))
	}
	tt := TSymbol
	switch {
	case d[i] == ':':
		if j == i+1 {
			return Token{}, 0, ExpectedErr("keyword name after ':'", posDoc.Pos(i))
		}
		tt = TKeyword
	case isDigit(d[i]):
		tt = TNumber
	case (d[i] == '+' || d[i] == '-') && i+1 < j && isDigit(d[i+1]):
		tt = TNumber
	}
	return Token{Type: tt, Pos: posDoc.Pos(i), Bytes: d[i:j]}, j, nil
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
