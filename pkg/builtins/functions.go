package builtins

import (
	"github.com/leinonen/golisp-core/pkg/lisperr"
	"github.com/leinonen/golisp-core/pkg/values"
)

func init() {
	registerFixed("fun", 2, "(fun (params...) body) creates a closure over the current environment.",
		funBuiltin)
	registerFixed("macro", 2, "(macro (params...) body) creates a macro over the current environment.",
		macroBuiltin)
	registerFixed("quote", 1, "(quote code) returns code unevaluated.",
		quoteBuiltin)
}

func paramNames(form values.Value) ([]string, error) {
	rawParams, ok := values.ToSlice(form)
	if !ok {
		return nil, lisperr.New("parameter list must be a proper list, got %s", form.String())
	}
	names := make([]string, len(rawParams))
	for i, p := range rawParams {
		sym, isSym := p.(values.Symbol)
		if !isSym {
			return nil, lisperr.New("parameter names must be symbols, got %s", p.String())
		}
		names[i] = string(sym)
	}
	return names, nil
}

func funBuiltin(env values.Env, args []values.Value) (values.Value, error) {
	names, err := paramNames(args[0])
	if err != nil {
		return nil, err
	}
	return &values.Closure{Params: names, Body: args[1], Env: env.Fork()}, nil
}

func macroBuiltin(env values.Env, args []values.Value) (values.Value, error) {
	names, err := paramNames(args[0])
	if err != nil {
		return nil, err
	}
	return &values.Macro{Params: names, Body: args[1], Env: env.Fork()}, nil
}

func quoteBuiltin(env values.Env, args []values.Value) (values.Value, error) {
	return args[0], nil
}
