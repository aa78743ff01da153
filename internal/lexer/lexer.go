package lexer

import (
	"fmt"

	"ream/internal/diag"
	"ream/internal/source"
	"ream/internal/token"
)

// Lexer produces significant tokens with attached leading trivia.
// It never stops on an error: invalid input yields an Invalid token
// and a report, and scanning continues.
type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
	look   *token.Token   // one-token lookahead buffer
	hold   []token.Trivia // accumulated leading trivia
}

func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
		look:   nil,
		hold:   nil,
	}
}

// Next returns the next significant token with Leading already collected.
// After EOF it always returns EOF.
func (lx *Lexer) Next() token.Token {
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok
	}

	lx.collectLeadingTrivia()

	if lx.cursor.EOF() {
		return token.Token{
			Kind: token.EOF,
			Span: lx.emptySpan(),
			Text: "",
		}
	}

	ch := lx.cursor.Peek()
	var tok token.Token

	switch {
	case ch == '(':
		tok = lx.scanSingle(token.LParen)
	case ch == ')':
		tok = lx.scanSingle(token.RParen)
	case ch == '.':
		tok = lx.scanSingle(token.Dot)
	case ch == '`':
		tok = lx.scanSingle(token.Backtick)
	case ch == ':':
		tok = lx.scanAtom()
	case ch == '#':
		tok = lx.scanBool()
	case ch == '\'':
		tok = lx.scanChar()
	case ch == '"':
		tok = lx.scanString()
	case isDec(ch):
		tok = lx.scanNumber()
	default:
		tok = lx.scanIdentOrUnknown()
	}

	tok.Leading = lx.hold
	lx.hold = nil

	return tok
}

// Peek returns the next token without consuming it.
func (lx *Lexer) Peek() token.Token {
	t := lx.Next()
	lx.look = &t
	return t
}

func (lx *Lexer) scanSingle(kind token.Kind) token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump()
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: kind, Span: sp, Text: lx.text(sp)}
}

// scanIdentOrUnknown handles the default dispatch arm: an identifier
// start rune begins an identifier, anything else is an unknown symbol.
func (lx *Lexer) scanIdentOrUnknown() token.Token {
	r, sz := lx.peekRune()
	if sz != 0 && isIdentStartRune(r) {
		return lx.scanIdentOrKeyword()
	}

	start := lx.cursor.Mark()
	lx.bumpRune()
	sp := lx.cursor.SpanFrom(start)
	lx.errLex(diag.LexUnknownSymbol, sp, fmt.Sprintf("unknown symbol %q", lx.text(sp)))
	return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
}

func (lx *Lexer) text(sp source.Span) string {
	return string(lx.file.Content[sp.Start:sp.End])
}

func (lx *Lexer) emptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}
