package builtins

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/leinonen/golisp-core/pkg/evaluator"
	"github.com/leinonen/golisp-core/pkg/lisperr"
	"github.com/leinonen/golisp-core/pkg/parser"
	"github.com/leinonen/golisp-core/pkg/reifier"
	"github.com/leinonen/golisp-core/pkg/values"
)

var stdin = bufio.NewReader(os.Stdin)

func init() {
	registerFixed("str", 1, "(str v) renders the printed form of v as a string.", strBuiltin)
	registerFixed("str2int", 1, "(str2int s) parses a string as an integer.", str2intBuiltin)
	registerVariadic("print!", "(print! v1 v2 ... vk) writes its arguments, space-separated, to standard output, followed by a newline; strings are written without quotes, other values in their printed form.", printBuiltin)
	registerFixed("readline!", 0, "(readline!) reads a line from standard input as a string.", readlineBuiltin)
	registerFixed("require!", 1, "(require! path) loads and evaluates a file's forms into the current environment.", requireBuiltin)
	registerFixed("help!", 1, "(help! op) prints the name and documentation of a builtin operator.", helpBuiltin)
}

func strBuiltin(env values.Env, args []values.Value) (values.Value, error) {
	v, err := evaluator.Eval(args[0], env)
	if err != nil {
		return nil, err
	}
	return values.String(v.String()), nil
}

func str2intBuiltin(env values.Env, args []values.Value) (values.Value, error) {
	v, err := evaluator.Eval(args[0], env)
	if err != nil {
		return nil, err
	}
	s, ok := v.(values.String)
	if !ok {
		return nil, lisperr.New("str2int expects a string, got %s", v.String())
	}
	n, convErr := strconv.ParseInt(string(s), 10, 64)
	if convErr != nil {
		return nil, lisperr.New("cannot parse %q as an integer", string(s))
	}
	return values.Integer(n), nil
}

func printBuiltin(env values.Env, args []values.Value) (values.Value, error) {
	parts := make([]string, len(args))
	for i, a := range args {
		v, err := evaluator.Eval(a, env)
		if err != nil {
			return nil, err
		}
		if s, ok := v.(values.String); ok {
			parts[i] = string(s)
		} else {
			parts[i] = v.String()
		}
	}
	fmt.Println(strings.Join(parts, " "))
	return values.Nil{}, nil
}

func readlineBuiltin(env values.Env, args []values.Value) (values.Value, error) {
	line, err := stdin.ReadString('\n')
	if err != nil && line == "" {
		return nil, lisperr.New("readline!: %s", err.Error())
	}
	for len(line) > 0 && (line[len(line)-1] == '\n' || line[len(line)-1] == '\r') {
		line = line[:len(line)-1]
	}
	return values.String(line), nil
}

func requireBuiltin(env values.Env, args []values.Value) (values.Value, error) {
	v, err := evaluator.Eval(args[0], env)
	if err != nil {
		return nil, err
	}
	path, ok := v.(values.String)
	if !ok {
		return nil, lisperr.New("require! expects a string path, got %s", v.String())
	}
	contents, readErr := os.ReadFile(string(path))
	if readErr != nil {
		return nil, lisperr.New("require!: %s", readErr.Error())
	}
	exprs, parseErr := parser.ParseFile(string(contents), string(path))
	if parseErr != nil {
		return nil, lisperr.New("require!: %s", parseErr.Error())
	}
	forms := reifier.ReifyAll(exprs)
	return evaluator.EvalSeq(forms, env)
}

func helpBuiltin(env values.Env, args []values.Value) (values.Value, error) {
	v, err := evaluator.Eval(args[0], env)
	if err != nil {
		return nil, err
	}
	switch b := v.(type) {
	case *values.Builtin:
		fmt.Printf("%s: %s\n", b.Name, b.Doc)
	default:
		fmt.Printf("no documentation available for %s\n", v.String())
	}
	return values.Nil{}, nil
}
