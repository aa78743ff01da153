package lexer

import (
	"ream/internal/diag"
	"ream/internal/token"
)

// scanString scans "..." up to the first unescaped closing quote.
// Token.Str is the inner text with the quotes stripped; escape pairs are
// kept verbatim. Hitting EOF before the closing quote is an error.
func (lx *Lexer) scanString() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // opening '"'
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if b == '"' {
			lx.cursor.Bump()
			sp := lx.cursor.SpanFrom(start)
			text := lx.text(sp)
			return token.Token{
				Kind: token.StringLit,
				Span: sp,
				Text: text,
				Str:  text[1 : len(text)-1],
			}
		}
		if b == '\\' {
			lx.cursor.Bump()
			if lx.cursor.EOF() {
				break
			}
			lx.cursor.Bump()
			continue
		}
		lx.cursor.Bump()
	}
	// EOF without a closing quote
	sp := lx.cursor.SpanFrom(start)
	lx.errLex(diag.LexUnexpectedEof, sp, "unexpected end of input in string literal")
	return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
}
