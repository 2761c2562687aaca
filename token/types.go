package token

import "fmt"

type TokenType int

const (
	TWhitespace TokenType = iota
	TComment
	TLParen
	TRParen
	TLSquare
	TRSquare
	TLCurl
	TRCurl
	TSetOpen
	TString
	TNumber
	TSymbol
	TKeyword
)

func (t TokenType) String() string {
	return map[TokenType]string{
		TWhitespace: "TWhitespace",
		TComment:    "TComment",
		TLParen:     "TLParen",
		TRParen:     "TRParen",
		TLSquare:    "TLSquare",
		TRSquare:    "TRSquare",
		TLCurl:      "TLCurl",
		TRCurl:      "TRCurl",
		TSetOpen:    "TSetOpen",
		TString:     "TString",
		TNumber:     "TNumber",
		TSymbol:     "TSymbol",
		TKeyword:    "TKeyword",
	}[t]
}

// IsOpen reports whether the token opens a composite form.
func (t TokenType) IsOpen() bool {
	switch t {
	case TLParen, TLSquare, TLCurl, TSetOpen:
		return true
	default:
		return false
	}
}

// IsClose reports whether the token closes a composite form.
func (t TokenType) IsClose() bool {
	switch t {
	case TRParen, TRSquare, TRCurl:
		return true
	default:
		return false
	}
}

type Token struct {
	Type  TokenType
	Pos   *Pos
	Bytes []byte
}

func (t *Token) Info() string {
	return fmt.Sprintf("%s %s", t.Type, t.Pos.String())
}

func (t *Token) String() string {
	return string(t.Bytes)
}

type TokenizeErr struct {
	Err error
	Pos Pos
}

func (t *TokenizeErr) Unwrap() error {
	return t.Err
}

func NewTokenizeErr(e error, p *Pos) *TokenizeErr {
	return &TokenizeErr{Err: e, Pos: *p}
}

func (e *TokenizeErr) Error() string {
	return fmt.Sprintf("%s at %s", e.Err.Error(), e.Pos.String())
}

func ExpectedErr(what string, p *Pos) error {
	return NewTokenizeErr(fmt.Errorf("expected %s", what), p)
}

func UnexpectedErr(what string, p *Pos) error {
	return NewTokenizeErr(fmt.Errorf("unexpected %s", what), p)
}
