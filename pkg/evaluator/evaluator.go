// Package evaluator implements Eval/Combine (spec §4.3): the dispatch loop
// that discriminates Builtin, Macro and Closure callees under a polymorphic
// call protocol.
package evaluator

import (
	"github.com/leinonen/golisp-core/pkg/lisperr"
	"github.com/leinonen/golisp-core/pkg/values"
)

// Eval evaluates term under env.
func Eval(term values.Value, env values.Env) (values.Value, error) {
	switch t := term.(type) {
	case *values.ConsCell:
		return combine(t, env)
	case values.Symbol:
		return env.Lookup(string(t))
	default:
		// Self-evaluating: integers, strings, booleans, nil, blocks,
		// closures, macros, builtins.
		return term, nil
	}
}

// EvalSeq evaluates each term in env, left to right, returning the last
// result or values.Nil{} for an empty sequence (used by `begin` and by
// file loading).
func EvalSeq(terms []values.Value, env values.Env) (values.Value, error) {
	var result values.Value = values.Nil{}
	for _, t := range terms {
		v, err := Eval(t, env)
		if err != nil {
			return nil, err
		}
		result = v
	}
	return result, nil
}

func combine(form *values.ConsCell, env values.Env) (values.Value, error) {
	callee, err := Eval(form.Head, env)
	if err != nil {
		return nil, err
	}

	rawArgs, ok := values.ToSlice(form.Tail)
	if !ok {
		return nil, &lisperr.InvalidList{Message: "combination arguments must be a proper list"}
	}

	switch c := callee.(type) {
	case *values.Builtin:
		return applyBuiltin(c, rawArgs, env)
	case *values.Macro:
		return applyMacro(c, rawArgs, env)
	case *values.Closure:
		return applyClosure(c, rawArgs, env)
	default:
		return nil, &lisperr.CannotCall{Message: callee.String() + " cannot be applied"}
	}
}

func applyBuiltin(b *values.Builtin, rawArgs []values.Value, env values.Env) (values.Value, error) {
	if !b.Arity.Matches(len(rawArgs)) {
		return nil, &lisperr.WrongOperatorUsage{
			Message: wrongArityMessage(b, len(rawArgs)),
		}
	}
	result, err := b.Handler(env, rawArgs)
	if err != nil {
		form := callForm(b.Name, rawArgs)
		return nil, lisperr.WithFrame(err, form)
	}
	return result, nil
}

func applyMacro(m *values.Macro, rawArgs []values.Value, callerEnv values.Env) (values.Value, error) {
	if len(rawArgs) != len(m.Params) {
		return nil, lisperr.New("macro applied to a wrong number of arguments")
	}
	invocation := m.Env.Fork()
	for i, p := range m.Params {
		invocation.Update(p, rawArgs[i])
	}
	expansion, err := Eval(m.Body, invocation)
	if err != nil {
		return nil, err
	}
	return Eval(expansion, callerEnv)
}

func applyClosure(c *values.Closure, rawArgs []values.Value, callerEnv values.Env) (values.Value, error) {
	if len(rawArgs) != len(c.Params) {
		return nil, lisperr.New("function applied to a wrong number of arguments")
	}
	argValues := make([]values.Value, len(rawArgs))
	for i, a := range rawArgs {
		v, err := Eval(a, callerEnv)
		if err != nil {
			return nil, err
		}
		argValues[i] = v
	}
	invocation := c.Env.Fork()
	for i, p := range c.Params {
		invocation.Update(p, argValues[i])
	}
	return Eval(c.Body, invocation)
}

func wrongArityMessage(b *values.Builtin, got int) string {
	if b.Arity.Variadic {
		return b.Name + ": unexpected arity mismatch"
	}
	return lisperr.New("%s expects %d arguments but was given %d", b.Name, b.Arity.Count, got).Error()
}

// callForm renders "(op a1 … an)" from the unevaluated call-site arguments,
// for the error-wrapping frame spec §4.4 requires.
func callForm(name string, rawArgs []values.Value) string {
	elems := make([]values.Value, 0, len(rawArgs)+1)
	elems = append(elems, values.Symbol(name))
	elems = append(elems, rawArgs...)
	return values.FromSlice(elems).String()
}
