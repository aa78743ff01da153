package eval

import (
	"fmt"

	"ream/internal/ast"
	"ream/internal/diag"
)

// primitiveFn receives the call expression for spans and the already
// evaluated arguments. Each primitive checks its own arity and types.
type primitiveFn func(ev *Evaluator, call *ast.Expr, args []Value) (Value, error)

var primitives map[string]primitiveFn

func init() {
	primitives = map[string]primitiveFn{
		"+":     arithmetic("+"),
		"-":     arithmetic("-"),
		"*":     arithmetic("*"),
		"/":     arithmetic("/"),
		"==":    comparison("=="),
		"!=":    comparison("!="),
		">":     comparison(">"),
		">=":    comparison(">="),
		"<":     comparison("<"),
		"<=":    comparison("<="),
		"print": primPrint,
	}
}

func checkArity(call *ast.Expr, args []Value, want int) *Error {
	if len(args) != want {
		return errEval(diag.EvalWrongArgumentCount, call.Span,
			"wrong argument count for %q: expected %d, found %d",
			call.Operator.Name, want, len(args))
	}
	return nil
}

// numericPair validates that both operands share one numeric subtype.
// Mixed Integer/Float operands are an error, never coerced.
func numericPair(a, b Value) *Error {
	if !a.isNumeric() {
		return errEval(diag.EvalWrongType, a.Span,
			"wrong type: expected Integer or Float, found %s", a.Kind)
	}
	if b.Kind != a.Kind {
		return errEval(diag.EvalWrongType, b.Span,
			"wrong type: expected %s, found %s", a.Kind, b.Kind)
	}
	return nil
}

func arithmetic(op string) primitiveFn {
	return func(ev *Evaluator, call *ast.Expr, args []Value) (Value, error) {
		if err := checkArity(call, args, 2); err != nil {
			return Value{}, err
		}
		a, b := args[0], args[1]
		if err := numericPair(a, b); err != nil {
			return Value{}, err
		}

		if a.Kind == ValInteger {
			var n uint64
			switch op {
			case "+":
				n = a.Int + b.Int
			case "-":
				n = a.Int - b.Int
			case "*":
				n = a.Int * b.Int
			case "/":
				if b.Int == 0 {
					return Value{}, errEval(diag.EvalDivideByZero, b.Span, "division by zero")
				}
				n = a.Int / b.Int
			}
			return Value{Kind: ValInteger, Span: call.Span, Int: n}, nil
		}

		var f float64
		switch op {
		case "+":
			f = a.Float + b.Float
		case "-":
			f = a.Float - b.Float
		case "*":
			f = a.Float * b.Float
		case "/":
			if b.Float == 0 {
				return Value{}, errEval(diag.EvalDivideByZero, b.Span, "division by zero")
			}
			f = a.Float / b.Float
		}
		return Value{Kind: ValFloat, Span: call.Span, Float: f}, nil
	}
}

func comparison(op string) primitiveFn {
	return func(ev *Evaluator, call *ast.Expr, args []Value) (Value, error) {
		if err := checkArity(call, args, 2); err != nil {
			return Value{}, err
		}
		a, b := args[0], args[1]

		var result bool
		switch op {
		case "==", "!=":
			eq, err := valuesEqual(a, b)
			if err != nil {
				return Value{}, err
			}
			result = eq == (op == "==")
		default:
			if err := numericPair(a, b); err != nil {
				return Value{}, err
			}
			if a.Kind == ValInteger {
				result = orderedCompare(op, a.Int, b.Int)
			} else {
				result = orderedCompare(op, a.Float, b.Float)
			}
		}
		return Value{Kind: ValBoolean, Span: call.Span, Bool: result}, nil
	}
}

func orderedCompare[T uint64 | float64](op string, a, b T) bool {
	switch op {
	case ">":
		return a > b
	case ">=":
		return a >= b
	case "<":
		return a < b
	default:
		return a <= b
	}
}

// valuesEqual compares two scalar values of the same kind. Closures are
// not comparable; lists compare element-wise.
func valuesEqual(a, b Value) (bool, *Error) {
	if a.Kind == ValClosure {
		return false, errEval(diag.EvalWrongType, a.Span,
			"wrong type: %s values are not comparable", a.Kind)
	}
	if b.Kind != a.Kind {
		return false, errEval(diag.EvalWrongType, b.Span,
			"wrong type: expected %s, found %s", a.Kind, b.Kind)
	}

	switch a.Kind {
	case ValBoolean:
		return a.Bool == b.Bool, nil
	case ValInteger:
		return a.Int == b.Int, nil
	case ValFloat:
		return a.Float == b.Float, nil
	case ValCharacter:
		return a.Rune == b.Rune, nil
	case ValString, ValAtom, ValIdent:
		return a.Str == b.Str, nil
	case ValUnit:
		return true, nil
	case ValList:
		if len(a.List) != len(b.List) {
			return false, nil
		}
		for i := range a.List {
			eq, err := valuesEqual(a.List[i], b.List[i])
			if err != nil || !eq {
				return false, err
			}
		}
		return true, nil
	default:
		return false, nil
	}
}

func primPrint(ev *Evaluator, call *ast.Expr, args []Value) (Value, error) {
	if err := checkArity(call, args, 1); err != nil {
		return Value{}, err
	}
	v := args[0]
	if v.Kind == ValString {
		fmt.Fprintln(ev.out, v.Str)
	} else {
		fmt.Fprintln(ev.out, v.String())
	}
	return Unit(call.Span), nil
}
