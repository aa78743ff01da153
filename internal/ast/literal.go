package ast

import (
	"ream/internal/source"
)

// LitKind discriminates literal variants.
type LitKind uint8

const (
	LitInvalid LitKind = iota
	// LitQuotation is (quote datum) or `datum.
	LitQuotation
	LitBoolean
	LitInteger
	LitFloat
	LitCharacter
	LitString
	LitAtom
)

var litKindNames = [...]string{
	LitInvalid:   "Invalid",
	LitQuotation: "Quotation",
	LitBoolean:   "Boolean",
	LitInteger:   "Integer",
	LitFloat:     "Float",
	LitCharacter: "Character",
	LitString:    "String",
	LitAtom:      "Atom",
}

func (k LitKind) String() string {
	if int(k) < len(litKindNames) && litKindNames[k] != "" {
		return litKindNames[k]
	}
	return "Invalid"
}

// Literal is a self-evaluating value in the source.
type Literal struct {
	Kind LitKind
	Span source.Span

	Bool  bool    // LitBoolean
	Int   uint64  // LitInteger
	Float float64 // LitFloat
	Rune  rune    // LitCharacter
	Str   string  // LitString, LitAtom (atom name without ':')

	Datum *Datum // LitQuotation
}

// DatumKind discriminates quoted data variants. Datum mirrors Literal
// and adds identifiers and lists; quoted data is never evaluated.
type DatumKind uint8

const (
	DatumInvalid DatumKind = iota
	DatumBoolean
	DatumInteger
	DatumFloat
	DatumCharacter
	DatumString
	DatumAtom
	DatumIdent
	DatumList
)

var datumKindNames = [...]string{
	DatumInvalid:   "Invalid",
	DatumBoolean:   "Boolean",
	DatumInteger:   "Integer",
	DatumFloat:     "Float",
	DatumCharacter: "Character",
	DatumString:    "String",
	DatumAtom:      "Atom",
	DatumIdent:     "Identifier",
	DatumList:      "List",
}

func (k DatumKind) String() string {
	if int(k) < len(datumKindNames) && datumKindNames[k] != "" {
		return datumKindNames[k]
	}
	return "Invalid"
}

// Datum is one piece of quoted data.
type Datum struct {
	Kind DatumKind
	Span source.Span

	Bool  bool
	Int   uint64
	Float float64
	Rune  rune
	Str   string // string value, atom name, or identifier name

	// DatumList. A dotted tail ((a . (b c))) parses its tail list as a
	// nested final element, so Elems is always the whole list.
	Elems []*Datum
}
