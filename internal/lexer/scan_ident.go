package lexer

import (
	"ream/internal/token"
)

// scanIdentOrKeyword scans an identifier and checks it against LookupKeyword.
// The caller guarantees the cursor sits on an identifier-start rune.
// Token.Text is exactly the source slice.
func (lx *Lexer) scanIdentOrKeyword() token.Token {
	start := lx.cursor.Mark()

	lx.bumpRune()
	lx.takeIdentContinue()

	sp := lx.cursor.SpanFrom(start)
	text := lx.text(sp)

	if k, ok := token.LookupKeyword(text); ok {
		return token.Token{Kind: k, Span: sp, Text: text}
	}
	return token.Token{Kind: token.Ident, Span: sp, Text: text}
}
