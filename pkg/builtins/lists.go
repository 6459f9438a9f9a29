package builtins

import (
	"github.com/leinonen/golisp-core/pkg/evaluator"
	"github.com/leinonen/golisp-core/pkg/lisperr"
	"github.com/leinonen/golisp-core/pkg/values"
)

func init() {
	registerVariadic("list", "(list e1 e2 ... ek) builds a proper list from its evaluated arguments.", listBuiltin)
	registerFixed("cons", 2, "(cons head tail) prepends head onto tail.", consBuiltin)
	registerFixed("head", 1, "(head list) returns the first element of a non-empty list.", headBuiltin)
	registerFixed("tail", 1, "(tail list) returns everything after the first element.", tailBuiltin)
	registerFixed("int?", 1, "(int? v) tests whether v is an integer.", isIntBuiltin)
	registerFixed("str?", 1, "(str? v) tests whether v is a string.", isStrBuiltin)
	registerFixed("list?", 1, "(list? v) tests whether v is nil or a cons cell.", isListBuiltin)
}

func listBuiltin(env values.Env, args []values.Value) (values.Value, error) {
	elems := make([]values.Value, len(args))
	for i, a := range args {
		v, err := evaluator.Eval(a, env)
		if err != nil {
			return nil, err
		}
		elems[i] = v
	}
	return values.FromSlice(elems), nil
}

func consBuiltin(env values.Env, args []values.Value) (values.Value, error) {
	head, err := evaluator.Eval(args[0], env)
	if err != nil {
		return nil, err
	}
	tail, err := evaluator.Eval(args[1], env)
	if err != nil {
		return nil, err
	}
	return values.NewConsCell(head, tail), nil
}

func headBuiltin(env values.Env, args []values.Value) (values.Value, error) {
	v, err := evaluator.Eval(args[0], env)
	if err != nil {
		return nil, err
	}
	cell, ok := v.(*values.ConsCell)
	if !ok {
		return nil, lisperr.New("head expects a non-empty list, got %s", v.String())
	}
	return cell.Head, nil
}

func tailBuiltin(env values.Env, args []values.Value) (values.Value, error) {
	v, err := evaluator.Eval(args[0], env)
	if err != nil {
		return nil, err
	}
	cell, ok := v.(*values.ConsCell)
	if !ok {
		return nil, lisperr.New("tail expects a non-empty list, got %s", v.String())
	}
	return cell.Tail, nil
}

func isIntBuiltin(env values.Env, args []values.Value) (values.Value, error) {
	v, err := evaluator.Eval(args[0], env)
	if err != nil {
		return nil, err
	}
	_, ok := v.(values.Integer)
	return values.Boolean(ok), nil
}

func isStrBuiltin(env values.Env, args []values.Value) (values.Value, error) {
	v, err := evaluator.Eval(args[0], env)
	if err != nil {
		return nil, err
	}
	_, ok := v.(values.String)
	return values.Boolean(ok), nil
}

func isListBuiltin(env values.Env, args []values.Value) (values.Value, error) {
	v, err := evaluator.Eval(args[0], env)
	if err != nil {
		return nil, err
	}
	switch v.(type) {
	case values.Nil, *values.ConsCell:
		return values.Boolean(true), nil
	default:
		return values.Boolean(false), nil
	}
}
