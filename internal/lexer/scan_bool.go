package lexer

import (
	"fmt"

	"ream/internal/diag"
	"ream/internal/token"
)

// scanBool scans a boolean literal: #t, #true, #f, #false.
func (lx *Lexer) scanBool() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '#'

	if lx.cursor.EOF() {
		sp := lx.cursor.SpanFrom(start)
		lx.errLex(diag.LexUnexpectedEof, sp, "unexpected end of input after '#'")
		return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
	}

	b := lx.cursor.Peek()
	if b != 't' && b != 'f' {
		wordMark := lx.cursor.Mark()
		lx.bumpRune()
		sp := lx.cursor.SpanFrom(wordMark)
		lx.errLex(diag.LexUnexpectedSymbol, sp,
			diag.FormatExpected(fmt.Sprintf("%q", lx.text(sp)), []string{"'t'", "'f'"}))
		lx.takeUntilDelimiter()
		full := lx.cursor.SpanFrom(start)
		return token.Token{Kind: token.Invalid, Span: full, Text: lx.text(full)}
	}

	wordMark := lx.cursor.Mark()
	lx.takeUntilDelimiter()
	word := lx.text(lx.cursor.SpanFrom(wordMark))

	sp := lx.cursor.SpanFrom(start)
	text := lx.text(sp)
	switch word {
	case "t", "true":
		return token.Token{Kind: token.BoolLit, Span: sp, Text: text, Bool: true}
	case "f", "false":
		return token.Token{Kind: token.BoolLit, Span: sp, Text: text, Bool: false}
	}
	lx.errLex(diag.LexInvalidBoolean, sp, fmt.Sprintf("invalid boolean literal %q", text))
	return token.Token{Kind: token.Invalid, Span: sp, Text: text}
}
