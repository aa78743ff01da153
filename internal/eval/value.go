package eval

import (
	"strconv"
	"strings"

	"ream/internal/ast"
	"ream/internal/source"
)

// ValueKind discriminates runtime value variants.
type ValueKind uint8

const (
	ValInvalid ValueKind = iota
	ValBoolean
	ValInteger
	ValFloat
	ValCharacter
	ValString
	// ValIdent is a quoted identifier. Quotation never resolves embedded
	// identifiers, so they survive as first-class symbol values.
	ValIdent
	ValAtom
	ValList
	ValClosure
	ValUnit
)

var valueKindNames = [...]string{
	ValInvalid:   "Invalid",
	ValBoolean:   "Boolean",
	ValInteger:   "Integer",
	ValFloat:     "Float",
	ValCharacter: "Character",
	ValString:    "String",
	ValIdent:     "Identifier",
	ValAtom:      "Atom",
	ValList:      "List",
	ValClosure:   "Closure",
	ValUnit:      "Unit",
}

func (k ValueKind) String() string {
	if int(k) < len(valueKindNames) && valueKindNames[k] != "" {
		return valueKindNames[k]
	}
	return "Invalid"
}

// Value is a runtime value. Kind selects which payload fields are
// meaningful. Span points at the expression that produced the value and
// feeds type-error diagnostics.
type Value struct {
	Kind ValueKind
	Span source.Span

	Bool    bool
	Int     uint64
	Float   float64
	Rune    rune
	Str     string // ValString, ValAtom, ValIdent
	List    []Value
	Closure *Closure
}

// Closure is a lambda value: formals, an unevaluated body, and the
// scope snapshot taken when the lambda expression was evaluated.
type Closure struct {
	Formals []Formal
	Body    []*ast.Expr
	Scope   ScopeID
}

// Formal is one named lambda parameter.
type Formal struct {
	Name string
	Span source.Span
}

// Unit is the result of definitions and empty bodies.
func Unit(sp source.Span) Value {
	return Value{Kind: ValUnit, Span: sp}
}

// Truthy reports whether the value selects the consequent branch of a
// conditional. Booleans use their own value, numbers are truthy when
// nonzero, strings and lists when non-empty, everything else always.
func (v Value) Truthy() bool {
	switch v.Kind {
	case ValBoolean:
		return v.Bool
	case ValInteger:
		return v.Int != 0
	case ValFloat:
		return v.Float != 0
	case ValString:
		return v.Str != ""
	case ValList:
		return len(v.List) > 0
	default:
		return true
	}
}

// String renders the value in surface syntax.
func (v Value) String() string {
	switch v.Kind {
	case ValBoolean:
		if v.Bool {
			return "#t"
		}
		return "#f"
	case ValInteger:
		return strconv.FormatUint(v.Int, 10)
	case ValFloat:
		return strconv.FormatFloat(v.Float, 'g', -1, 64)
	case ValCharacter:
		return "'" + string(v.Rune) + "'"
	case ValString:
		return strconv.Quote(v.Str)
	case ValIdent:
		return v.Str
	case ValAtom:
		return ":" + v.Str
	case ValList:
		var b strings.Builder
		b.WriteByte('(')
		for i, e := range v.List {
			if i > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(e.String())
		}
		b.WriteByte(')')
		return b.String()
	case ValClosure:
		return "#<closure/" + strconv.Itoa(len(v.Closure.Formals)) + ">"
	case ValUnit:
		return "()"
	default:
		return "#<invalid>"
	}
}

func (v Value) isNumeric() bool {
	return v.Kind == ValInteger || v.Kind == ValFloat
}
