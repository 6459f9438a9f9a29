package builtins

import (
	"github.com/leinonen/golisp-core/pkg/evaluator"
	"github.com/leinonen/golisp-core/pkg/values"
)

func init() {
	registerVariadic("begin", "(begin e1 e2 ... en) evaluates each expression in order, returning the last.",
		beginBuiltin)
	registerFixed("if", 3, "(if cond then else) evaluates cond, then exactly one branch.",
		ifBuiltin)
}

func beginBuiltin(env values.Env, args []values.Value) (values.Value, error) {
	return evaluator.EvalSeq(args, env)
}

func ifBuiltin(env values.Env, args []values.Value) (values.Value, error) {
	cond, err := evaluator.Eval(args[0], env)
	if err != nil {
		return nil, err
	}
	if values.Truthy(cond) {
		return evaluator.Eval(args[1], env)
	}
	return evaluator.Eval(args[2], env)
}
