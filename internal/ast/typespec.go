package ast

import (
	"ream/internal/source"
)

// TypeSpecKind discriminates type specification variants.
type TypeSpecKind uint8

const (
	TypeSpecInvalid TypeSpecKind = iota
	// TypeSpecIdent references a named type.
	TypeSpecIdent
	TypeSpecBottom
	TypeSpecTuple
	TypeSpecList
	TypeSpecVector
	TypeSpecFunction
	TypeSpecSum
	TypeSpecProduct
)

var typeSpecKindNames = [...]string{
	TypeSpecInvalid:  "Invalid",
	TypeSpecIdent:    "Identifier",
	TypeSpecBottom:   "Bottom",
	TypeSpecTuple:    "Tuple",
	TypeSpecList:     "List",
	TypeSpecVector:   "Vector",
	TypeSpecFunction: "Function",
	TypeSpecSum:      "Sum",
	TypeSpecProduct:  "Product",
}

func (k TypeSpecKind) String() string {
	if int(k) < len(typeSpecKindNames) && typeSpecKindNames[k] != "" {
		return typeSpecKindNames[k]
	}
	return "Invalid"
}

// TypeSpec is a parsed type specification. Annotations carry these;
// nothing validates them.
type TypeSpec struct {
	Kind TypeSpecKind
	Span source.Span

	Name string // TypeSpecIdent

	// TypeSpecTuple: all element specs.
	// TypeSpecList / TypeSpecVector: exactly one element spec.
	Elems []*TypeSpec

	// TypeSpecFunction
	Arguments []*TypeSpec
	Results   []*TypeSpec

	// TypeSpecSum / TypeSpecProduct
	Fields []NamedField
}

// NamedField is an atom-tagged member of a Sum or Product spec.
type NamedField struct {
	Name string // atom name without ':'
	Span source.Span
	Spec *TypeSpec // optional
}
