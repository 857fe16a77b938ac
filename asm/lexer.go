package asm

import (
	"strings"
)

func isLetter(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isHexDigit(ch byte) bool {
	return isDigit(ch) || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n'
}

// lexer scans source text into tokens.
type lexer struct {
	source string
	pos    int
	lineNo int
	tokens []Token
}

func (lx *lexer) emit(kind TokenKind, start, end int) {
	lx.tokens = append(lx.tokens, Token{
		Kind:   kind,
		Offset: start,
		Length: end - start,
		LineNo: lx.lineNo,
	})
}

func (lx *lexer) fail(err error, start, end int) {
	lx.tokens = append(lx.tokens, Token{
		Kind:   TOKEN_SYNTAX_ERROR,
		Offset: start,
		Length: end - start,
		LineNo: lx.lineNo,
		Err:    err,
	})
}

// skip advances over whitespace and comments.
func (lx *lexer) skip() {
	for lx.pos < len(lx.source) {
		ch := lx.source[lx.pos]
		switch {
		case ch == '\n':
			lx.lineNo++
			lx.pos++
		case isSpace(ch):
			lx.pos++
		case strings.HasPrefix(lx.source[lx.pos:], "//"):
			eol := strings.IndexByte(lx.source[lx.pos:], '\n')
			if eol < 0 {
				lx.pos = len(lx.source)
			} else {
				lx.pos += eol
			}
		default:
			return
		}
	}
}

// run scans while accept holds, returning the end offset.
func (lx *lexer) run(start int, accept func(byte) bool) (end int) {
	end = start
	for end < len(lx.source) && accept(lx.source[end]) {
		end++
	}
	return
}

// next scans one token, returning false after the final token.
func (lx *lexer) next() bool {
	lx.skip()

	start := lx.pos
	if start >= len(lx.source) {
		lx.emit(TOKEN_END_OF_STREAM, start, start)
		return false
	}

	ch := lx.source[start]
	switch {
	case isLetter(ch):
		end := lx.run(start, func(ch byte) bool {
			return isLetter(ch) || isDigit(ch) || ch == '_'
		})
		lx.pos = end
		switch {
		case end < len(lx.source) && lx.source[end] == ':':
			lx.emit(TOKEN_LABEL, start, end)
			lx.pos++
		case strings.EqualFold(lx.source[start:end], "DEFINE"):
			lx.emit(TOKEN_DEFINE, start, end)
		default:
			lx.emit(TOKEN_IDENTIFIER, start, end)
		}
	case isDigit(ch):
		end := lx.run(start, isDigit)
		lx.pos = end
		lx.emit(TOKEN_DEC_NUMBER, start, end)
	case ch == '$':
		end := lx.run(start+1, isHexDigit)
		if end == start+1 {
			lx.fail(ErrHexEmpty, start, end)
			return false
		}
		lx.pos = end
		lx.emit(TOKEN_HEX_NUMBER, start+1, end)
	case ch == '#':
		lx.pos++
		lx.emit(TOKEN_HASH, start, lx.pos)
	case ch == '(':
		lx.pos++
		lx.emit(TOKEN_OPEN_PAREN, start, lx.pos)
	case ch == ')':
		lx.pos++
		lx.emit(TOKEN_CLOSE_PAREN, start, lx.pos)
	case ch == ',':
		lx.pos++
		lx.emit(TOKEN_COMMA, start, lx.pos)
	default:
		end := lx.run(start, func(ch byte) bool { return !isSpace(ch) })
		lx.fail(ErrTokenUnknown, start, end)
		return false
	}

	return true
}

// Lex splits source text into tokens. The final token is either
// TOKEN_END_OF_STREAM or, on the first lexical error, TOKEN_SYNTAX_ERROR.
func Lex(source string) (tokens []Token) {
	lx := &lexer{
		source: source,
		lineNo: 1,
	}

	for lx.next() {
	}

	tokens = lx.tokens
	return
}
