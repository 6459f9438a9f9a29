// Package builtins implements every primitive operator of spec §4.4 and
// assembles the seeded top-level environment table (spec §4.4's primitive
// registry). Each file groups one concern, mirroring the teacher's
// per-concern split (math.go, lists.go, control_flow.go, variables.go, ...)
// under pkg/evaluator.
package builtins

import "github.com/leinonen/golisp-core/pkg/values"

// table accumulates every registered builtin/constant as the package's
// init functions run, keyed by the name users invoke it under.
var table = map[string]values.Value{
	"true":  values.Boolean(true),
	"false": values.Boolean(false),
	"nil":   values.Nil{},
}

func register(name string, arity values.Arity, doc string, handler values.BuiltinHandler) {
	if _, exists := table[name]; exists {
		panic("builtins: duplicate registration for " + name)
	}
	table[name] = &values.Builtin{Name: name, Arity: arity, Doc: doc, Handler: handler}
}

func registerFixed(name string, n int, doc string, handler values.BuiltinHandler) {
	register(name, values.Fixed(n), doc, handler)
}

func registerVariadic(name string, doc string, handler values.BuiltinHandler) {
	register(name, values.Variadic(), doc, handler)
}

// Primitives returns a fresh copy of the seeded name→value table, suitable
// for environment.WithPrimitives. A fresh copy is returned on every call so
// that binding a top-level environment can never observe mutation from an
// earlier interpreter instance sharing the same process.
func Primitives() map[string]values.Value {
	out := make(map[string]values.Value, len(table))
	for k, v := range table {
		out[k] = v
	}
	return out
}
