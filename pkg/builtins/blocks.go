package builtins

import (
	"github.com/leinonen/golisp-core/pkg/evaluator"
	"github.com/leinonen/golisp-core/pkg/lisperr"
	"github.com/leinonen/golisp-core/pkg/values"
)

func init() {
	registerFixed("alloc!", 1, "(alloc! n) allocates a mutable block of n nil-initialized slots.", allocBuiltin)
	registerFixed("get!", 2, "(get! block i) reads slot i of block.", getBuiltin)
	registerFixed("set!", 3, "(set! block i v) writes v into slot i of block.", setBuiltin)
}

func blockIndex(block *values.Block, i int64) error {
	if i < 0 || int(i) >= len(block.Elements) {
		return lisperr.New("block index %d out of bounds (size %d)", i, len(block.Elements))
	}
	return nil
}

func allocBuiltin(env values.Env, args []values.Value) (values.Value, error) {
	n, err := evalInt(env, args[0])
	if err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, lisperr.New("alloc! needs a non-negative size, got %d", n)
	}
	return values.NewBlock(int(n)), nil
}

func getBuiltin(env values.Env, args []values.Value) (values.Value, error) {
	v, err := evaluator.Eval(args[0], env)
	if err != nil {
		return nil, err
	}
	block, ok := v.(*values.Block)
	if !ok {
		return nil, lisperr.New("get! expects a block, got %s", v.String())
	}
	i, err := evalInt(env, args[1])
	if err != nil {
		return nil, err
	}
	if err := blockIndex(block, i); err != nil {
		return nil, err
	}
	return block.Elements[i], nil
}

func setBuiltin(env values.Env, args []values.Value) (values.Value, error) {
	v, err := evaluator.Eval(args[0], env)
	if err != nil {
		return nil, err
	}
	block, ok := v.(*values.Block)
	if !ok {
		return nil, lisperr.New("set! expects a block, got %s", v.String())
	}
	i, err := evalInt(env, args[1])
	if err != nil {
		return nil, err
	}
	if err := blockIndex(block, i); err != nil {
		return nil, err
	}
	newVal, err := evaluator.Eval(args[2], env)
	if err != nil {
		return nil, err
	}
	block.Elements[i] = newVal
	return values.Nil{}, nil
}
