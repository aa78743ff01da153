package lexer

import (
	"ream/internal/diag"
	"ream/internal/token"
)

// scanAtom scans an atom literal: ':' followed by everything up to the
// next delimiter. Token.Str is the atom name without the leading ':'.
func (lx *Lexer) scanAtom() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // ':'

	if lx.cursor.EOF() {
		sp := lx.cursor.SpanFrom(start)
		lx.errLex(diag.LexUnexpectedEof, sp, "unexpected end of input after ':'")
		return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
	}

	nameMark := lx.cursor.Mark()
	lx.takeUntilDelimiter()
	name := lx.text(lx.cursor.SpanFrom(nameMark))

	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: token.AtomLit, Span: sp, Text: lx.text(sp), Str: name}
}
