package parser

import (
	"ream/internal/ast"
	"ream/internal/diag"
	"ream/internal/token"
)

// parseTypeSpec parses a type specification:
//
//	TypeSpec  := Identifier | 'Bottom'
//	           | '(' 'Tuple' TypeSpec* ')'
//	           | '(' 'List' TypeSpec ')'
//	           | '(' 'Vector' TypeSpec ')'
//	           | '(' 'Function' '(' TypeSpec* ')' '(' TypeSpec* ')' ')'
//	           | '(' 'Sum' NamedField* ')'
//	           | '(' 'Product' NamedField* ')'
//	NamedField := '(' Atom TypeSpec? ')'
func (p *Parser) parseTypeSpec() (*ast.TypeSpec, error) {
	switch p.tok.Kind {
	case token.Ident:
		t := p.advance()
		return &ast.TypeSpec{Kind: ast.TypeSpecIdent, Span: t.Span, Name: t.Text}, nil

	case token.KwBottom:
		t := p.advance()
		return &ast.TypeSpec{Kind: ast.TypeSpecBottom, Span: t.Span}, nil

	case token.LParen:
		return p.parseTypeConstructor()

	case token.EOF:
		return nil, p.errUnexpected([]string{"type specification"})
	case token.Invalid:
		return nil, errParse
	default:
		p.report(diag.SynInvalidTypeSpec, p.tok.Span,
			diag.FormatExpected(foundName(p.tok), []string{"Identifier", "'Bottom'", "'('"}))
		return nil, errParse
	}
}

func (p *Parser) parseTypeConstructor() (*ast.TypeSpec, error) {
	lparen := p.advance() // '('

	switch p.tok.Kind {
	case token.KwTuple:
		p.advance()
		spec := &ast.TypeSpec{Kind: ast.TypeSpecTuple}
		for !p.at(token.RParen) {
			if p.at(token.EOF) {
				return nil, p.errUnexpected([]string{"type specification", "')'"})
			}
			elem, err := p.parseTypeSpec()
			if err != nil {
				return nil, err
			}
			spec.Elems = append(spec.Elems, elem)
		}
		rparen := p.advance()
		spec.Span = lparen.Span.Cover(rparen.Span)
		return spec, nil

	case token.KwList, token.KwVector:
		kind := ast.TypeSpecList
		if p.tok.Kind == token.KwVector {
			kind = ast.TypeSpecVector
		}
		p.advance()
		elem, err := p.parseTypeSpec()
		if err != nil {
			return nil, err
		}
		rparen, err := p.expect(token.RParen)
		if err != nil {
			return nil, err
		}
		return &ast.TypeSpec{
			Kind:  kind,
			Span:  lparen.Span.Cover(rparen.Span),
			Elems: []*ast.TypeSpec{elem},
		}, nil

	case token.KwFunction:
		p.advance()
		args, err := p.parseTypeSpecGroup()
		if err != nil {
			return nil, err
		}
		results, err := p.parseTypeSpecGroup()
		if err != nil {
			return nil, err
		}
		rparen, err := p.expect(token.RParen)
		if err != nil {
			return nil, err
		}
		return &ast.TypeSpec{
			Kind:      ast.TypeSpecFunction,
			Span:      lparen.Span.Cover(rparen.Span),
			Arguments: args,
			Results:   results,
		}, nil

	case token.KwSum, token.KwProduct:
		kind := ast.TypeSpecSum
		if p.tok.Kind == token.KwProduct {
			kind = ast.TypeSpecProduct
		}
		p.advance()
		spec := &ast.TypeSpec{Kind: kind}
		for !p.at(token.RParen) {
			if p.at(token.EOF) {
				return nil, p.errUnexpected([]string{"'('", "')'"})
			}
			field, err := p.parseNamedField()
			if err != nil {
				return nil, err
			}
			spec.Fields = append(spec.Fields, field)
		}
		rparen := p.advance()
		spec.Span = lparen.Span.Cover(rparen.Span)
		return spec, nil

	default:
		if p.tok.Kind == token.Invalid {
			return nil, errParse
		}
		p.report(diag.SynInvalidTypeSpec, p.tok.Span,
			diag.FormatExpected(foundName(p.tok),
				[]string{"'Tuple'", "'List'", "'Vector'", "'Function'", "'Sum'", "'Product'"}))
		return nil, errParse
	}
}

// parseTypeSpecGroup parses '(' TypeSpec* ')'.
func (p *Parser) parseTypeSpecGroup() ([]*ast.TypeSpec, error) {
	if _, err := p.expect(token.LParen); err != nil {
		return nil, err
	}
	var specs []*ast.TypeSpec
	for !p.at(token.RParen) {
		if p.at(token.EOF) {
			return nil, p.errUnexpected([]string{"type specification", "')'"})
		}
		spec, err := p.parseTypeSpec()
		if err != nil {
			return nil, err
		}
		specs = append(specs, spec)
	}
	p.advance() // ')'
	return specs, nil
}

// parseNamedField parses '(' Atom TypeSpec? ')'.
func (p *Parser) parseNamedField() (ast.NamedField, error) {
	if _, err := p.expect(token.LParen); err != nil {
		return ast.NamedField{}, err
	}
	name, err := p.expect(token.AtomLit, "Atom")
	if err != nil {
		return ast.NamedField{}, err
	}

	field := ast.NamedField{Name: name.Str, Span: name.Span}
	if !p.at(token.RParen) {
		spec, err := p.parseTypeSpec()
		if err != nil {
			return ast.NamedField{}, err
		}
		field.Spec = spec
	}
	if _, err := p.expect(token.RParen); err != nil {
		return ast.NamedField{}, err
	}
	return field, nil
}
