package wkt

import (
	"errors"
	"strconv"
	"strings"

	"github.com/arloliu/geog/internal/options"
)

// Tokenizer splits WKT text into tokens.
//
// Delimiters are whitespace and the single-character tokens '(', ')' and ','.
// Every other run of characters is a number when strconv.ParseFloat accepts it
// entirely, and an uppercased word otherwise. Once the input is exhausted the
// tokenizer keeps returning TokenEOF.
type Tokenizer struct {
	input    string
	pos      int
	lineMode bool
}

// Option configures a Tokenizer.
type Option = options.Option[*Tokenizer]

// WithLineMode makes line feeds significant: they are returned as TokenEOL
// instead of being skipped as whitespace.
func WithLineMode() Option {
	return options.NoError(func(t *Tokenizer) {
		t.lineMode = true
	})
}

// NewTokenizer returns a tokenizer positioned at the start of input.
func NewTokenizer(input string, opts ...Option) *Tokenizer {
	t := &Tokenizer{input: input}
	_ = options.Apply(t, opts...)

	return t
}

// Pos returns the byte offset of the next unread character.
func (t *Tokenizer) Pos() int {
	return t.pos
}

// Next returns the next token and advances past it.
func (t *Tokenizer) Next() Token {
	tok, end := t.scan()
	t.pos = end

	return tok
}

// Peek returns the next token without advancing.
func (t *Tokenizer) Peek() Token {
	tok, _ := t.scan()
	return tok
}

// scan lexes the token starting at t.pos and returns it with the offset just
// past it. It does not modify the tokenizer.
func (t *Tokenizer) scan() (Token, int) {
	pos := t.pos
	for pos < len(t.input) {
		c := t.input[pos]
		if c == '\n' && t.lineMode {
			return Token{Kind: TokenEOL, Pos: pos}, pos + 1
		}
		if !isSpace(c) {
			break
		}
		pos++
	}

	if pos >= len(t.input) {
		return Token{Kind: TokenEOF, Pos: len(t.input)}, len(t.input)
	}

	switch t.input[pos] {
	case '(':
		return Token{Kind: TokenLParen, Text: "(", Pos: pos}, pos + 1
	case ')':
		return Token{Kind: TokenRParen, Text: ")", Pos: pos}, pos + 1
	case ',':
		return Token{Kind: TokenComma, Text: ",", Pos: pos}, pos + 1
	}

	end := pos
	for end < len(t.input) && !isDelimiter(t.input[end]) {
		end++
	}

	text := t.input[pos:end]
	if v, ok := parseNumber(text); ok {
		return Token{Kind: TokenNumber, Text: text, Number: v, Pos: pos}, end
	}

	return Token{Kind: TokenWord, Text: strings.ToUpper(text), Pos: pos}, end
}

// parseNumber accepts everything strconv.ParseFloat accepts, including
// literals that overflow to an infinity.
func parseNumber(text string) (float64, bool) {
	v, err := strconv.ParseFloat(text, 64)
	if err == nil {
		return v, true
	}

	if errors.Is(err, strconv.ErrRange) {
		return v, true
	}

	return 0, false
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n' || c == '\v' || c == '\f'
}

func isDelimiter(c byte) bool {
	return isSpace(c) || c == '(' || c == ')' || c == ','
}
