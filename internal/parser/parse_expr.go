package parser

import (
	"ream/internal/ast"
	"ream/internal/diag"
	"ream/internal/token"
)

// exprExpected is the expected-set reported at expression position.
var exprExpected = []string{
	"Identifier", "Boolean", "Integer", "Float", "Character", "String", "Atom",
	"'('", "'`'",
}

func (p *Parser) parseExpression() (*ast.Expr, error) {
	switch p.tok.Kind {
	case token.Ident:
		t := p.advance()
		return ast.NewIdent(t.Text, t.Span), nil

	case token.BoolLit:
		t := p.advance()
		return ast.NewLiteral(&ast.Literal{Kind: ast.LitBoolean, Span: t.Span, Bool: t.Bool}), nil
	case token.IntLit:
		t := p.advance()
		return ast.NewLiteral(&ast.Literal{Kind: ast.LitInteger, Span: t.Span, Int: t.Int}), nil
	case token.FloatLit:
		t := p.advance()
		return ast.NewLiteral(&ast.Literal{Kind: ast.LitFloat, Span: t.Span, Float: t.Float}), nil
	case token.CharLit:
		t := p.advance()
		return ast.NewLiteral(&ast.Literal{Kind: ast.LitCharacter, Span: t.Span, Rune: t.Rune}), nil
	case token.StringLit:
		t := p.advance()
		return ast.NewLiteral(&ast.Literal{Kind: ast.LitString, Span: t.Span, Str: t.Str}), nil
	case token.AtomLit:
		t := p.advance()
		return ast.NewLiteral(&ast.Literal{Kind: ast.LitAtom, Span: t.Span, Str: t.Str}), nil

	case token.Backtick:
		return p.parseShorthandQuote()

	case token.LParen:
		return p.parseParenthesized()

	default:
		return nil, p.errUnexpected(exprExpected)
	}
}

// parseParenthesized parses every form that starts with '('.
func (p *Parser) parseParenthesized() (*ast.Expr, error) {
	lparen := p.advance() // '('

	switch p.tok.Kind {
	case token.AtomLit:
		return p.parseAnnotation(lparen)
	case token.KwQuote:
		return p.parseQuote(lparen)
	case token.KwLet:
		return p.parseDefinition(lparen)
	case token.KwSeq:
		return p.parseSequence(lparen)
	case token.KwLambda:
		return p.parseLambda(lparen)
	case token.KwIf:
		return p.parseConditional(lparen)
	case token.KwInclude:
		return p.parseInclusion(lparen)
	case token.Ident:
		return p.parseCall(lparen)
	case token.Invalid:
		return nil, errParse
	default:
		p.report(diag.SynInvalidExpression, p.tok.Span,
			diag.FormatExpected(foundName(p.tok), []string{"Identifier", "Atom", "keyword"}))
		return nil, errParse
	}
}

// parseDefinition parses (let <ident> <expression>).
func (p *Parser) parseDefinition(lparen token.Token) (*ast.Expr, error) {
	p.advance() // 'let'

	target, err := p.expect(token.Ident, "Identifier")
	if err != nil {
		return nil, err
	}
	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	rparen, err := p.expect(token.RParen)
	if err != nil {
		return nil, err
	}

	return &ast.Expr{
		Kind:   ast.ExprDefinition,
		Span:   lparen.Span.Cover(rparen.Span),
		Target: ast.NewIdent(target.Text, target.Span),
		Value:  value,
	}, nil
}

// parseSequence parses (seq <expression>*).
func (p *Parser) parseSequence(lparen token.Token) (*ast.Expr, error) {
	p.advance() // 'seq' / 'begin'

	var body []*ast.Expr
	for !p.at(token.RParen) {
		if p.at(token.EOF) {
			return nil, p.errUnexpected([]string{"')'"})
		}
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		body = append(body, expr)
	}
	rparen := p.advance() // ')'

	return &ast.Expr{
		Kind: ast.ExprSequence,
		Span: lparen.Span.Cover(rparen.Span),
		Body: body,
	}, nil
}

// parseLambda parses (lambda <formals> <expression>*), where formals
// are either a parenthesized identifier list or a single bare
// identifier (shorthand for a one-element list).
func (p *Parser) parseLambda(lparen token.Token) (*ast.Expr, error) {
	p.advance() // 'lambda'

	var formals []*ast.Expr
	switch {
	case p.at(token.Ident):
		t := p.advance()
		formals = append(formals, ast.NewIdent(t.Text, t.Span))

	case p.at(token.LParen):
		p.advance() // '('
		for !p.at(token.RParen) {
			if p.at(token.EOF) {
				return nil, p.errUnexpected([]string{"Identifier", "')'"})
			}
			if !p.at(token.Ident) {
				if p.tok.Kind != token.Invalid {
					p.report(diag.SynInvalidLambdaFormals, p.tok.Span,
						diag.FormatExpected(foundName(p.tok), []string{"Identifier", "')'"}))
				}
				return nil, errParse
			}
			t := p.advance()
			formals = append(formals, ast.NewIdent(t.Text, t.Span))
		}
		p.advance() // ')'

	default:
		if p.at(token.EOF) {
			return nil, p.errUnexpected([]string{"'('", "Identifier"})
		}
		if p.tok.Kind != token.Invalid {
			p.report(diag.SynInvalidLambdaFormals, p.tok.Span,
				diag.FormatExpected(foundName(p.tok), []string{"'('", "Identifier"}))
		}
		return nil, errParse
	}

	var body []*ast.Expr
	for !p.at(token.RParen) {
		if p.at(token.EOF) {
			return nil, p.errUnexpected([]string{"')'"})
		}
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		body = append(body, expr)
	}
	rparen := p.advance() // ')'

	return &ast.Expr{
		Kind:    ast.ExprLambda,
		Span:    lparen.Span.Cover(rparen.Span),
		Formals: formals,
		Body:    body,
	}, nil
}

// parseConditional parses (if <test> <consequent> <alternate>?).
func (p *Parser) parseConditional(lparen token.Token) (*ast.Expr, error) {
	p.advance() // 'if'

	test, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	consequent, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	var alternate *ast.Expr
	if !p.at(token.RParen) {
		alternate, err = p.parseExpression()
		if err != nil {
			return nil, err
		}
	}
	rparen, err := p.expect(token.RParen)
	if err != nil {
		return nil, err
	}

	return &ast.Expr{
		Kind:       ast.ExprIf,
		Span:       lparen.Span.Cover(rparen.Span),
		Test:       test,
		Consequent: consequent,
		Alternate:  alternate,
	}, nil
}

// parseInclusion parses (include <string>+).
func (p *Parser) parseInclusion(lparen token.Token) (*ast.Expr, error) {
	p.advance() // 'include'

	var files []*ast.Literal
	first, err := p.expect(token.StringLit, "String")
	if err != nil {
		return nil, err
	}
	files = append(files, &ast.Literal{Kind: ast.LitString, Span: first.Span, Str: first.Str})

	for !p.at(token.RParen) {
		t, err := p.expect(token.StringLit, "String", "')'")
		if err != nil {
			return nil, err
		}
		files = append(files, &ast.Literal{Kind: ast.LitString, Span: t.Span, Str: t.Str})
	}
	rparen := p.advance() // ')'

	return &ast.Expr{
		Kind:  ast.ExprInclude,
		Span:  lparen.Span.Cover(rparen.Span),
		Files: files,
	}, nil
}

// parseCall parses (<ident> <expression>*). The operator is always an
// identifier; computed operators have no surface syntax.
func (p *Parser) parseCall(lparen token.Token) (*ast.Expr, error) {
	op := p.advance() // operator identifier

	var operands []*ast.Expr
	for !p.at(token.RParen) {
		if p.at(token.EOF) {
			return nil, p.errUnexpected([]string{"')'"})
		}
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		operands = append(operands, expr)
	}
	rparen := p.advance() // ')'

	return &ast.Expr{
		Kind:     ast.ExprCall,
		Span:     lparen.Span.Cover(rparen.Span),
		Operator: ast.NewIdent(op.Text, op.Span),
		Operands: operands,
	}, nil
}
