package builtins

import (
	"math/rand"

	"github.com/leinonen/golisp-core/pkg/evaluator"
	"github.com/leinonen/golisp-core/pkg/lisperr"
	"github.com/leinonen/golisp-core/pkg/values"
)

func init() {
	registerVariadic("+", "(+ n1 n2 ... nk) sums its integer arguments.", sumBuiltin)
	registerFixed("-", 2, "(- a b) subtracts b from a.", subBuiltin)
	registerFixed("*", 2, "(* a b) multiplies a and b.", mulBuiltin)
	registerFixed("/", 2, "(/ a b) divides a by b, always producing a real.", divBuiltin)
	registerFixed("mod", 2, "(mod a b) is the remainder of a divided by b.", modBuiltin)
	registerFixed("=", 2, "(= a b) tests integer equality.", eqBuiltin)
	registerFixed("<", 2, "(< a b) tests whether a is less than b.", ltBuiltin)
	registerFixed("<=", 2, "(<= a b) tests whether a is at most b.", leBuiltin)
	registerFixed(">", 2, "(> a b) tests whether a is greater than b.", gtBuiltin)
	registerFixed(">=", 2, "(>= a b) tests whether a is at least b.", geBuiltin)
	registerFixed("randint!", 2, "(randint! lo hi) returns a random integer uniformly chosen from [lo, hi].", randintBuiltin)
}

func evalInt(env values.Env, raw values.Value) (int64, error) {
	v, err := evaluator.Eval(raw, env)
	if err != nil {
		return 0, err
	}
	n, ok := v.(values.Integer)
	if !ok {
		return 0, lisperr.New("expected an integer, got %s", v.String())
	}
	return int64(n), nil
}

func evalInts(env values.Env, raws []values.Value) ([]int64, error) {
	out := make([]int64, len(raws))
	for i, r := range raws {
		n, err := evalInt(env, r)
		if err != nil {
			return nil, err
		}
		out[i] = n
	}
	return out, nil
}

func sumBuiltin(env values.Env, args []values.Value) (values.Value, error) {
	ns, err := evalInts(env, args)
	if err != nil {
		return nil, err
	}
	var total int64
	for _, n := range ns {
		total += n
	}
	return values.Integer(total), nil
}

func subBuiltin(env values.Env, args []values.Value) (values.Value, error) {
	a, b, err := twoInts(env, args)
	if err != nil {
		return nil, err
	}
	return values.Integer(a - b), nil
}

func mulBuiltin(env values.Env, args []values.Value) (values.Value, error) {
	a, b, err := twoInts(env, args)
	if err != nil {
		return nil, err
	}
	return values.Integer(a * b), nil
}

func divBuiltin(env values.Env, args []values.Value) (values.Value, error) {
	a, b, err := twoInts(env, args)
	if err != nil {
		return nil, err
	}
	if b == 0 {
		return nil, lisperr.New("division by zero")
	}
	return values.Real(float64(a) / float64(b)), nil
}

func modBuiltin(env values.Env, args []values.Value) (values.Value, error) {
	a, err := evalInt(env, args[0])
	if err != nil {
		return nil, err
	}
	b, err := evalInt(env, args[1])
	if err != nil {
		return nil, err
	}
	if b == 0 {
		return nil, lisperr.New("division by zero")
	}
	return values.Integer(a % b), nil
}

func eqBuiltin(env values.Env, args []values.Value) (values.Value, error) {
	a, err := evalInt(env, args[0])
	if err != nil {
		return nil, err
	}
	b, err := evalInt(env, args[1])
	if err != nil {
		return nil, err
	}
	return values.Boolean(a == b), nil
}

func ltBuiltin(env values.Env, args []values.Value) (values.Value, error) {
	a, b, err := twoInts(env, args)
	if err != nil {
		return nil, err
	}
	return values.Boolean(a < b), nil
}

func leBuiltin(env values.Env, args []values.Value) (values.Value, error) {
	a, b, err := twoInts(env, args)
	if err != nil {
		return nil, err
	}
	return values.Boolean(a <= b), nil
}

func gtBuiltin(env values.Env, args []values.Value) (values.Value, error) {
	a, b, err := twoInts(env, args)
	if err != nil {
		return nil, err
	}
	return values.Boolean(a > b), nil
}

func geBuiltin(env values.Env, args []values.Value) (values.Value, error) {
	a, b, err := twoInts(env, args)
	if err != nil {
		return nil, err
	}
	return values.Boolean(a >= b), nil
}

func twoInts(env values.Env, args []values.Value) (int64, int64, error) {
	a, err := evalInt(env, args[0])
	if err != nil {
		return 0, 0, err
	}
	b, err := evalInt(env, args[1])
	if err != nil {
		return 0, 0, err
	}
	return a, b, nil
}

func randintBuiltin(env values.Env, args []values.Value) (values.Value, error) {
	lo, hi, err := twoInts(env, args)
	if err != nil {
		return nil, err
	}
	if lo > hi {
		return nil, lisperr.New("randint! needs lo <= hi, got %d %d", lo, hi)
	}
	return values.Integer(lo + rand.Int63n(hi-lo+1)), nil
}
