package wkt

import (
	"strconv"
)

// TokenKind classifies a lexical token of WKT text.
type TokenKind uint8

const (
	TokenEOF TokenKind = iota
	TokenEOL
	TokenNumber
	TokenWord
	TokenLParen
	TokenRParen
	TokenComma
)

func (k TokenKind) String() string {
	switch k {
	case TokenEOF:
		return "end of input"
	case TokenEOL:
		return "end of line"
	case TokenNumber:
		return "number"
	case TokenWord:
		return "word"
	case TokenLParen:
		return "'('"
	case TokenRParen:
		return "')'"
	case TokenComma:
		return "','"
	default:
		return "unknown token"
	}
}

// Token is one lexical unit together with its byte offset in the input.
type Token struct {
	Kind TokenKind
	// Text is the uppercased word for TokenWord and the raw literal for TokenNumber.
	Text string
	// Number is the parsed value of a TokenNumber.
	Number float64
	Pos    int
}

// IsWord reports whether t is the given uppercase word.
func (t Token) IsWord(word string) bool {
	return t.Kind == TokenWord && t.Text == word
}

// String describes the token for diagnostics.
func (t Token) String() string {
	switch t.Kind {
	case TokenNumber:
		return t.Text
	case TokenWord:
		return strconv.Quote(t.Text)
	default:
		return t.Kind.String()
	}
}
