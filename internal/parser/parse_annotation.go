package parser

import (
	"fmt"

	"ream/internal/ast"
	"ream/internal/diag"
	"ream/internal/token"
)

// parseAnnotation parses the forms that start '(' Atom:
//
//	(:type <target> <typespec>)
//	(:doc  <target> <docstring>)
//
// Any other atom head is an invalid annotation.
func (p *Parser) parseAnnotation(lparen token.Token) (*ast.Expr, error) {
	head := p.advance() // the atom

	switch head.Str {
	case "type":
		return p.parseTypeAnnotation(lparen)
	case "doc":
		return p.parseDocAnnotation(lparen)
	default:
		p.report(diag.SynInvalidAnnotation, head.Span,
			fmt.Sprintf("invalid annotation %q, expected one of [:doc, :type]", head.Text))
		return nil, errParse
	}
}

// parseTypeAnnotation parses (:type <ident> <typespec>), the ':type'
// atom already consumed.
func (p *Parser) parseTypeAnnotation(lparen token.Token) (*ast.Expr, error) {
	target, err := p.expect(token.Ident, "Identifier")
	if err != nil {
		return nil, err
	}
	spec, err := p.parseTypeSpec()
	if err != nil {
		return nil, err
	}
	rparen, err := p.expect(token.RParen)
	if err != nil {
		return nil, err
	}

	return &ast.Expr{
		Kind:    ast.ExprAnnotation,
		Span:    lparen.Span.Cover(rparen.Span),
		AnnKind: ast.AnnotationType,
		Target:  ast.NewIdent(target.Text, target.Span),
		AnnType: spec,
	}, nil
}

// parseDocAnnotation parses (:doc <ident> <string>), the ':doc' atom
// already consumed.
func (p *Parser) parseDocAnnotation(lparen token.Token) (*ast.Expr, error) {
	target, err := p.expect(token.Ident, "Identifier")
	if err != nil {
		return nil, err
	}
	doc, err := p.expect(token.StringLit, "String")
	if err != nil {
		return nil, err
	}
	rparen, err := p.expect(token.RParen)
	if err != nil {
		return nil, err
	}

	return &ast.Expr{
		Kind:     ast.ExprAnnotation,
		Span:     lparen.Span.Cover(rparen.Span),
		AnnKind:  ast.AnnotationDoc,
		Target:   ast.NewIdent(target.Text, target.Span),
		AnnDoc:   doc.Str,
		AnnDocSp: doc.Span,
	}, nil
}
