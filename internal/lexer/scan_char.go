package lexer

import (
	"fmt"

	"ream/internal/diag"
	"ream/internal/token"
)

// scanChar scans a character literal: 'a', '\n', '\\', '\''.
// Recognized escapes: \n \r \t \\ \0 \'.
func (lx *Lexer) scanChar() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // opening '\''

	if lx.cursor.EOF() {
		sp := lx.cursor.SpanFrom(start)
		lx.errLex(diag.LexUnexpectedEof, sp, "unexpected end of input in character literal")
		return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
	}

	var value rune
	var escaped bool
	var esc byte
	var escMark Mark
	if lx.cursor.Peek() == '\\' {
		lx.cursor.Bump()
		if lx.cursor.EOF() {
			sp := lx.cursor.SpanFrom(start)
			lx.errLex(diag.LexUnexpectedEof, sp, "unexpected end of input in character literal")
			return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
		}
		escaped = true
		escMark = lx.cursor.Mark()
		esc = lx.cursor.Bump()
	} else {
		r, sz := lx.peekRune()
		if sz == 0 {
			sp := lx.cursor.SpanFrom(start)
			lx.errLex(diag.LexUnexpectedEof, sp, "unexpected end of input in character literal")
			return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
		}
		value = r
		lx.bumpRune()
	}

	if lx.cursor.EOF() {
		sp := lx.cursor.SpanFrom(start)
		lx.errLex(diag.LexUnexpectedEof, sp, "unexpected end of input in character literal")
		return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
	}
	if lx.cursor.Peek() != '\'' {
		closeMark := lx.cursor.Mark()
		lx.bumpRune()
		sp := lx.cursor.SpanFrom(closeMark)
		lx.errLex(diag.LexUnexpectedSymbol, sp,
			diag.FormatExpected(fmt.Sprintf("%q", lx.text(sp)), []string{"'''"}))
		full := lx.cursor.SpanFrom(start)
		return token.Token{Kind: token.Invalid, Span: full, Text: lx.text(full)}
	}
	lx.cursor.Bump() // closing '\''

	// The escape is validated only after the closing quote is in place.
	if escaped {
		switch esc {
		case 'n':
			value = '\n'
		case 'r':
			value = '\r'
		case 't':
			value = '\t'
		case '\\':
			value = '\\'
		case '0':
			value = 0
		case '\'':
			value = '\''
		default:
			sp := lx.cursor.SpanFrom(escMark)
			sp.End = sp.Start + 1
			lx.errLex(diag.LexInvalidEscape, sp, fmt.Sprintf("invalid escape sequence '\\%c'", esc))
			full := lx.cursor.SpanFrom(start)
			return token.Token{Kind: token.Invalid, Span: full, Text: lx.text(full)}
		}
	}

	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: token.CharLit, Span: sp, Text: lx.text(sp), Rune: value}
}
