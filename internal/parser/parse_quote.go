package parser

import (
	"ream/internal/ast"
	"ream/internal/diag"
	"ream/internal/token"
)

// parseShorthandQuote parses `<datum>.
func (p *Parser) parseShorthandQuote() (*ast.Expr, error) {
	backtick := p.advance() // '`'

	datum, err := p.parseDatum()
	if err != nil {
		return nil, err
	}

	span := backtick.Span.Cover(datum.Span)
	return ast.NewLiteral(&ast.Literal{
		Kind:  ast.LitQuotation,
		Span:  span,
		Datum: datum,
	}), nil
}

// parseQuote parses (quote <datum>).
func (p *Parser) parseQuote(lparen token.Token) (*ast.Expr, error) {
	p.advance() // 'quote'

	datum, err := p.parseDatum()
	if err != nil {
		return nil, err
	}
	rparen, err := p.expect(token.RParen)
	if err != nil {
		return nil, err
	}

	return ast.NewLiteral(&ast.Literal{
		Kind:  ast.LitQuotation,
		Span:  lparen.Span.Cover(rparen.Span),
		Datum: datum,
	}), nil
}

// parseDatum parses one datum: a scalar, an identifier, or a list.
func (p *Parser) parseDatum() (*ast.Datum, error) {
	switch p.tok.Kind {
	case token.Ident:
		t := p.advance()
		return &ast.Datum{Kind: ast.DatumIdent, Span: t.Span, Str: t.Text}, nil
	case token.BoolLit:
		t := p.advance()
		return &ast.Datum{Kind: ast.DatumBoolean, Span: t.Span, Bool: t.Bool}, nil
	case token.IntLit:
		t := p.advance()
		return &ast.Datum{Kind: ast.DatumInteger, Span: t.Span, Int: t.Int}, nil
	case token.FloatLit:
		t := p.advance()
		return &ast.Datum{Kind: ast.DatumFloat, Span: t.Span, Float: t.Float}, nil
	case token.CharLit:
		t := p.advance()
		return &ast.Datum{Kind: ast.DatumCharacter, Span: t.Span, Rune: t.Rune}, nil
	case token.StringLit:
		t := p.advance()
		return &ast.Datum{Kind: ast.DatumString, Span: t.Span, Str: t.Str}, nil
	case token.AtomLit:
		t := p.advance()
		return &ast.Datum{Kind: ast.DatumAtom, Span: t.Span, Str: t.Str}, nil

	case token.LParen:
		lparen := p.advance()
		return p.parseDatumList(lparen)

	case token.EOF:
		return nil, p.errUnexpected([]string{"datum"})
	case token.Invalid:
		return nil, errParse
	default:
		p.report(diag.SynInvalidDatum, p.tok.Span,
			diag.FormatExpected(foundName(p.tok), []string{"datum"}))
		return nil, errParse
	}
}

// parseDatumList parses (<datum>*) or (<datum>+ . (<datum>*)).
// A dotted tail must itself be a parenthesized list and becomes the
// final nested element.
func (p *Parser) parseDatumList(lparen token.Token) (*ast.Datum, error) {
	list := &ast.Datum{Kind: ast.DatumList, Span: lparen.Span}

	if p.at(token.RParen) {
		rparen := p.advance()
		list.Span = list.Span.Cover(rparen.Span)
		return list, nil
	}

	for {
		datum, err := p.parseDatum()
		if err != nil {
			return nil, err
		}
		list.Elems = append(list.Elems, datum)
		list.Span = list.Span.Cover(datum.Span)

		switch p.tok.Kind {
		case token.RParen:
			rparen := p.advance()
			list.Span = list.Span.Cover(rparen.Span)
			return list, nil

		case token.Dot:
			p.advance() // '.'
			tailParen, err := p.expect(token.LParen)
			if err != nil {
				return nil, err
			}
			tail, err := p.parseDatumList(tailParen)
			if err != nil {
				return nil, err
			}
			list.Elems = append(list.Elems, tail)
			list.Span = list.Span.Cover(tail.Span)

			rparen, err := p.expect(token.RParen)
			if err != nil {
				return nil, err
			}
			list.Span = list.Span.Cover(rparen.Span)
			return list, nil

		case token.EOF:
			return nil, p.errUnexpected([]string{"datum", "')'", "'.'"})
		}
	}
}
