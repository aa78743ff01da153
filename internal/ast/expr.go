package ast

import (
	"ream/internal/source"
)

// Program is an ordered sequence of top-level expressions.
type Program struct {
	Exprs []*Expr
	Span  source.Span
}

// ExprKind discriminates the expression variants.
type ExprKind uint8

const (
	ExprInvalid ExprKind = iota
	// ExprIdent is an identifier reference.
	ExprIdent
	// ExprLiteral wraps a Literal.
	ExprLiteral
	// ExprDefinition is (let target value).
	ExprDefinition
	// ExprTypeAlias names a type specification. No surface syntax builds
	// it yet; it exists so annotations and future forms share one tree.
	ExprTypeAlias
	// ExprAlgebraicType is a named Sum/Product definition. Reserved like
	// ExprTypeAlias.
	ExprAlgebraicType
	// ExprAnnotation attaches a type or doc annotation to an expression.
	ExprAnnotation
	// ExprSequence is (seq expr*) / (begin expr*).
	ExprSequence
	// ExprCall is (operator operand*).
	ExprCall
	// ExprLambda is (lambda formals body*).
	ExprLambda
	// ExprIf is (if test consequent alternate?).
	ExprIf
	// ExprInclude is (include "file"+).
	ExprInclude
)

var exprKindNames = [...]string{
	ExprInvalid:       "Invalid",
	ExprIdent:         "Identifier",
	ExprLiteral:       "Literal",
	ExprDefinition:    "Definition",
	ExprTypeAlias:     "TypeAlias",
	ExprAlgebraicType: "AlgebraicType",
	ExprAnnotation:    "Annotation",
	ExprSequence:      "Sequence",
	ExprCall:          "Call",
	ExprLambda:        "Lambda",
	ExprIf:            "If",
	ExprInclude:       "Include",
}

func (k ExprKind) String() string {
	if int(k) < len(exprKindNames) && exprKindNames[k] != "" {
		return exprKindNames[k]
	}
	return "Invalid"
}

// AnnotationKind distinguishes type annotations from doc annotations.
type AnnotationKind uint8

const (
	AnnotationType AnnotationKind = iota
	AnnotationDoc
)

// Expr is a single expression node. Kind selects which payload fields
// are meaningful; unused fields stay zero.
type Expr struct {
	Kind ExprKind
	Span source.Span

	// ExprIdent
	Name string

	// ExprLiteral
	Lit *Literal

	// ExprDefinition: Target is the bound identifier, Value its initializer.
	// ExprAnnotation: Target is the annotated expression.
	Target *Expr
	Value  *Expr

	// ExprAnnotation
	AnnKind  AnnotationKind
	AnnType  *TypeSpec // AnnotationType
	AnnDoc   string    // AnnotationDoc
	AnnDocSp source.Span

	// ExprTypeAlias / ExprAlgebraicType
	TypeName string
	TypeSpec *TypeSpec

	// ExprSequence: Body; ExprLambda: Body; ExprSequence reuses Body.
	Body []*Expr

	// ExprCall: Operator is always an identifier expression.
	Operator *Expr
	Operands []*Expr

	// ExprLambda
	Formals []*Expr // identifier expressions

	// ExprIf
	Test       *Expr
	Consequent *Expr
	Alternate  *Expr // nil when absent

	// ExprInclude
	Files []*Literal // string literals
}

// NewIdent builds an identifier expression.
func NewIdent(name string, span source.Span) *Expr {
	return &Expr{Kind: ExprIdent, Span: span, Name: name}
}

// NewLiteral wraps a literal as an expression.
func NewLiteral(lit *Literal) *Expr {
	return &Expr{Kind: ExprLiteral, Span: lit.Span, Lit: lit}
}
