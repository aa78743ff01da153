package parser

import (
	"errors"

	"ream/internal/ast"
	"ream/internal/diag"
	"ream/internal/lexer"
	"ream/internal/source"
	"ream/internal/token"
)

// Options configures a Parser.
type Options struct {
	Reporter diag.Reporter // may be nil; parsing still stops on the first error
}

// Parser is a fail-fast recursive descent parser with one token of
// lookahead. The first error is reported and parsing stops; there is no
// resynchronization.
type Parser struct {
	lx       *lexer.Lexer
	opts     Options
	tok      token.Token // current lookahead
	prevSpan source.Span
}

// errParse is the unwind sentinel. The diagnostic has already been
// reported by the time it is returned.
var errParse = errors.New("parse failed")

// New creates a parser reading tokens from lx.
func New(lx *lexer.Lexer, opts Options) *Parser {
	p := &Parser{lx: lx, opts: opts}
	p.tok = lx.Next()
	return p
}

// Parse consumes the whole token stream and returns the program.
// ok is false when a diagnostic was reported; the program is nil then.
func (p *Parser) Parse() (*ast.Program, bool) {
	prog := &ast.Program{}
	for p.tok.Kind != token.EOF {
		expr, err := p.parseExpression()
		if err != nil {
			return nil, false
		}
		prog.Exprs = append(prog.Exprs, expr)
	}
	if len(prog.Exprs) > 0 {
		prog.Span = prog.Exprs[0].Span
		for _, e := range prog.Exprs[1:] {
			prog.Span = prog.Span.Cover(e.Span)
		}
	}
	return prog, true
}

// advance moves to the next token, remembering the span just consumed.
func (p *Parser) advance() token.Token {
	t := p.tok
	p.prevSpan = t.Span
	p.tok = p.lx.Next()
	return t
}

func (p *Parser) at(kind token.Kind) bool {
	return p.tok.Kind == kind
}

// eofSpan is the zero-width span right after the last consumed token.
func (p *Parser) eofSpan() source.Span {
	return p.prevSpan.After()
}

// expect consumes a token of the given kind or reports UnexpectedToken
// (UnexpectedEof at end of input) naming what was expected.
func (p *Parser) expect(kind token.Kind, expected ...string) (token.Token, error) {
	if p.at(kind) {
		return p.advance(), nil
	}
	if len(expected) == 0 {
		expected = []string{kind.String()}
	}
	return token.Token{}, p.errUnexpected(expected)
}

// errUnexpected reports the shared "found X, expected one of [...]"
// diagnostic for the current token and returns the unwind sentinel.
func (p *Parser) errUnexpected(expected []string) error {
	switch p.tok.Kind {
	case token.EOF:
		p.report(diag.SynUnexpectedEof, p.eofSpan(),
			diag.FormatExpected("end of input", expected))
	case token.Invalid:
		// the lexer already reported; just unwind
	default:
		p.report(diag.SynUnexpectedToken, p.tok.Span,
			diag.FormatExpected(foundName(p.tok), expected))
	}
	return errParse
}

func (p *Parser) report(code diag.Code, sp source.Span, msg string) {
	if p.opts.Reporter != nil {
		p.opts.Reporter.Report(code, diag.SevError, sp, msg, nil)
	}
}

// foundName renders the current token for diagnostics.
func foundName(t token.Token) string {
	switch t.Kind {
	case token.Ident:
		return "identifier '" + t.Text + "'"
	case token.EOF:
		return "end of input"
	case token.BoolLit, token.IntLit, token.FloatLit, token.CharLit, token.StringLit, token.AtomLit:
		return t.Kind.String() + " '" + t.Text + "'"
	default:
		return "'" + t.Text + "'"
	}
}
