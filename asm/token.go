package asm

import (
	"strconv"
)

// TokenKind classifies a token.
type TokenKind int

//go:generate go tool stringer -linecomment -type=TokenKind
const (
	TOKEN_END_OF_STREAM = TokenKind(0)  // end of stream
	TOKEN_IDENTIFIER    = TokenKind(1)  // identifier
	TOKEN_LABEL         = TokenKind(2)  // label
	TOKEN_HASH          = TokenKind(3)  // #
	TOKEN_HEX_NUMBER    = TokenKind(4)  // hex number
	TOKEN_DEC_NUMBER    = TokenKind(5)  // decimal number
	TOKEN_OPEN_PAREN    = TokenKind(6)  // (
	TOKEN_CLOSE_PAREN   = TokenKind(7)  // )
	TOKEN_COMMA         = TokenKind(8)  // ,
	TOKEN_DEFINE        = TokenKind(9)  // DEFINE
	TOKEN_SYNTAX_ERROR  = TokenKind(10) // syntax error
)

// Token is a lexical unit, located by a span into the source text.
type Token struct {
	Kind   TokenKind
	Offset int   // Byte offset of the token text.
	Length int   // Byte length of the token text.
	LineNo int   // 1-based source line.
	Err    error // Set on TOKEN_SYNTAX_ERROR only.
}

// Text returns the token's text from source.
func (tok Token) Text(source string) string {
	return source[tok.Offset : tok.Offset+tok.Length]
}

// IsNumber reports whether the token is a decimal or hex number.
func (tok Token) IsNumber() bool {
	return tok.Kind == TOKEN_HEX_NUMBER || tok.Kind == TOKEN_DEC_NUMBER
}

// Value parses a number token. Values above 0xFFFF are out of range.
func (tok Token) Value(source string) (value uint16, err error) {
	base := 10
	if tok.Kind == TOKEN_HEX_NUMBER {
		base = 16
	}

	v64, err := strconv.ParseUint(tok.Text(source), base, 64)
	if err != nil || v64 > 0xffff {
		err = ErrOperandRange
		return
	}

	value = uint16(v64)
	return
}
