package builtins

import (
	"github.com/leinonen/golisp-core/pkg/evaluator"
	"github.com/leinonen/golisp-core/pkg/lisperr"
	"github.com/leinonen/golisp-core/pkg/values"
)

func init() {
	registerFixed("let", 2, "(let (name value) body) binds value to name inside body.",
		letBuiltin)
	registerFixed("letrec", 2, "(letrec ((name value) ...) body) allows mutually recursive bindings.",
		letrecBuiltin)
	registerFixed("define!", 2, "(define! name value) adds a binding to the current environment.",
		defineBuiltin)
}

func letBuiltin(env values.Env, args []values.Value) (values.Value, error) {
	binding, body := args[0], args[1]
	bindings := values.FromSlice([]values.Value{binding})
	return letrecBody(env, bindings, body)
}

func letrecBuiltin(env values.Env, args []values.Value) (values.Value, error) {
	return letrecBody(env, args[0], args[1])
}

func letrecBody(env values.Env, bindingsForm, body values.Value) (values.Value, error) {
	rawBindings, ok := values.ToSlice(bindingsForm)
	if !ok {
		return nil, lisperr.New("wrong let form: bindings must be a proper list, got %s", bindingsForm.String())
	}

	type binding struct {
		name string
		expr values.Value
	}
	bindings := make([]binding, 0, len(rawBindings))
	for _, b := range rawBindings {
		pair, ok := values.ToSlice(b)
		if !ok || len(pair) != 2 {
			return nil, lisperr.New("wrong let form: each binding must be (name value), got %s", b.String())
		}
		sym, isSym := pair[0].(values.Symbol)
		if !isSym {
			return nil, lisperr.New("wrong let form: binding name must be a symbol, got %s", pair[0].String())
		}
		bindings = append(bindings, binding{name: string(sym), expr: pair[1]})
	}

	inner := env.Fork()
	for _, b := range bindings {
		inner.AllocateForwardReference(b.name)
	}
	for _, b := range bindings {
		v, err := evaluator.Eval(b.expr, inner)
		if err != nil {
			return nil, err
		}
		if err := inner.FillForwardReference(b.name, v); err != nil {
			return nil, err
		}
	}
	return evaluator.Eval(body, inner)
}

func defineBuiltin(env values.Env, args []values.Value) (values.Value, error) {
	sym, ok := args[0].(values.Symbol)
	if !ok {
		return nil, lisperr.New("you can only bind to symbols, not to: %s", args[0].String())
	}
	v, err := evaluator.Eval(args[1], env)
	if err != nil {
		return nil, err
	}
	env.Update(string(sym), v)
	return values.Nil{}, nil
}
