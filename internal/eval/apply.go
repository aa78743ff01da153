package eval

import (
	"ream/internal/ast"
	"ream/internal/diag"
)

// apply evaluates a procedure call. The primitive table is consulted by
// operator text before any scope lookup, so primitives can never be
// shadowed. Operands are evaluated eagerly, left to right, in the
// caller's scope.
func (ev *Evaluator) apply(call *ast.Expr, scope ScopeID) (Value, error) {
	args := make([]Value, len(call.Operands))
	for i, operand := range call.Operands {
		v, err := ev.Eval(operand, scope)
		if err != nil {
			return Value{}, err
		}
		args[i] = v
	}

	name := call.Operator.Name
	if prim, ok := primitives[name]; ok {
		return prim(ev, call, args)
	}

	callee, ok := ev.arena.Get(scope, name)
	if !ok {
		return Value{}, errEval(diag.EvalUnknownIdentifier, call.Operator.Span,
			"unknown identifier %q", name)
	}
	if callee.Kind != ValClosure {
		return Value{}, errEval(diag.EvalNotAFunction, call.Operator.Span,
			"%q is not a function, found %s", name, callee.Kind)
	}

	closure := callee.Closure
	if len(args) != len(closure.Formals) {
		return Value{}, errEval(diag.EvalWrongArgumentCount, call.Span,
			"wrong argument count for %q: expected %d, found %d",
			name, len(closure.Formals), len(args))
	}

	execScope := ev.arena.Extend(closure.Scope)
	for i, formal := range closure.Formals {
		ev.arena.Set(execScope, formal.Name, args[i])
	}

	result := Unit(call.Span)
	for _, e := range closure.Body {
		v, err := ev.Eval(e, execScope)
		if err != nil {
			return Value{}, err
		}
		result = v
	}
	result.Span = call.Span
	return result, nil
}
