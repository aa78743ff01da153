package eval

import (
	"io"
	"os"

	"ream/internal/ast"
	"ream/internal/diag"
)

// Options configures an Evaluator.
type Options struct {
	Out io.Writer // destination for print; defaults to os.Stdout
}

// Evaluator walks the tree against a scope arena. One evaluator per
// program run; the arena and the global scope live exactly as long as
// the evaluator.
type Evaluator struct {
	arena *Arena
	out   io.Writer
}

// New creates an evaluator with a fresh global scope.
func New(opts Options) *Evaluator {
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}
	return &Evaluator{arena: NewArena(), out: out}
}

// EvalProgram evaluates every top-level expression left to right
// against the shared global scope and returns the value of the last
// one, or Unit for an empty program. The first error stops the run.
func (ev *Evaluator) EvalProgram(prog *ast.Program) (Value, error) {
	result := Unit(prog.Span)
	for _, expr := range prog.Exprs {
		v, err := ev.Eval(expr, ev.arena.Global())
		if err != nil {
			return Value{}, err
		}
		result = v
	}
	return result, nil
}

// Eval evaluates one expression in the given scope.
func (ev *Evaluator) Eval(expr *ast.Expr, scope ScopeID) (Value, error) {
	switch expr.Kind {
	case ast.ExprIdent:
		v, ok := ev.arena.Get(scope, expr.Name)
		if !ok {
			return Value{}, errEval(diag.EvalUnknownIdentifier, expr.Span,
				"unknown identifier %q", expr.Name)
		}
		v.Span = expr.Span
		return v, nil

	case ast.ExprLiteral:
		return ev.evalLiteral(expr.Lit)

	case ast.ExprDefinition:
		v, err := ev.Eval(expr.Value, scope)
		if err != nil {
			return Value{}, err
		}
		ev.arena.Set(scope, expr.Target.Name, v)
		return Unit(expr.Span), nil

	case ast.ExprSequence:
		// One shared child frame for the whole body: later siblings see
		// earlier definitions, but nothing leaks into the parent.
		seqScope := ev.arena.Extend(scope)
		result := Unit(expr.Span)
		for _, e := range expr.Body {
			v, err := ev.Eval(e, seqScope)
			if err != nil {
				return Value{}, err
			}
			result = v
		}
		result.Span = expr.Span
		return result, nil

	case ast.ExprCall:
		return ev.apply(expr, scope)

	case ast.ExprLambda:
		formals := make([]Formal, len(expr.Formals))
		for i, f := range expr.Formals {
			formals[i] = Formal{Name: f.Name, Span: f.Span}
		}
		return Value{
			Kind: ValClosure,
			Span: expr.Span,
			Closure: &Closure{
				Formals: formals,
				Body:    expr.Body,
				Scope:   ev.arena.Close(scope),
			},
		}, nil

	case ast.ExprIf:
		test, err := ev.Eval(expr.Test, scope)
		if err != nil {
			return Value{}, err
		}
		if test.Truthy() {
			v, err := ev.Eval(expr.Consequent, scope)
			if err != nil {
				return Value{}, err
			}
			v.Span = expr.Span
			return v, nil
		}
		if expr.Alternate == nil {
			return Unit(expr.Span), nil
		}
		v, err := ev.Eval(expr.Alternate, scope)
		if err != nil {
			return Value{}, err
		}
		v.Span = expr.Span
		return v, nil

	case ast.ExprAnnotation, ast.ExprTypeAlias, ast.ExprAlgebraicType, ast.ExprInclude:
		return Value{}, errEval(diag.EvalUnsupported, expr.Span,
			"evaluating %s expressions is not supported yet", expr.Kind)

	default:
		return Value{}, errEval(diag.EvalUnsupported, expr.Span,
			"cannot evaluate %s expression", expr.Kind)
	}
}

func (ev *Evaluator) evalLiteral(lit *ast.Literal) (Value, error) {
	switch lit.Kind {
	case ast.LitBoolean:
		return Value{Kind: ValBoolean, Span: lit.Span, Bool: lit.Bool}, nil
	case ast.LitInteger:
		return Value{Kind: ValInteger, Span: lit.Span, Int: lit.Int}, nil
	case ast.LitFloat:
		return Value{Kind: ValFloat, Span: lit.Span, Float: lit.Float}, nil
	case ast.LitCharacter:
		return Value{Kind: ValCharacter, Span: lit.Span, Rune: lit.Rune}, nil
	case ast.LitString:
		return Value{Kind: ValString, Span: lit.Span, Str: lit.Str}, nil
	case ast.LitAtom:
		return Value{Kind: ValAtom, Span: lit.Span, Str: lit.Str}, nil
	case ast.LitQuotation:
		return evalDatum(lit.Datum), nil
	default:
		return Value{}, errEval(diag.EvalUnsupported, lit.Span,
			"cannot evaluate %s literal", lit.Kind)
	}
}

// evalDatum turns quoted data into its runtime representation. Embedded
// identifiers become symbol values, never lookups.
func evalDatum(d *ast.Datum) Value {
	switch d.Kind {
	case ast.DatumBoolean:
		return Value{Kind: ValBoolean, Span: d.Span, Bool: d.Bool}
	case ast.DatumInteger:
		return Value{Kind: ValInteger, Span: d.Span, Int: d.Int}
	case ast.DatumFloat:
		return Value{Kind: ValFloat, Span: d.Span, Float: d.Float}
	case ast.DatumCharacter:
		return Value{Kind: ValCharacter, Span: d.Span, Rune: d.Rune}
	case ast.DatumString:
		return Value{Kind: ValString, Span: d.Span, Str: d.Str}
	case ast.DatumAtom:
		return Value{Kind: ValAtom, Span: d.Span, Str: d.Str}
	case ast.DatumIdent:
		return Value{Kind: ValIdent, Span: d.Span, Str: d.Str}
	case ast.DatumList:
		elems := make([]Value, len(d.Elems))
		for i, e := range d.Elems {
			elems[i] = evalDatum(e)
		}
		return Value{Kind: ValList, Span: d.Span, List: elems}
	default:
		return Value{Kind: ValInvalid, Span: d.Span}
	}
}
