// Package reifier converts parsed ast.Expr trees into code values (spec
// §4.1): the step that lets macros operate on code uniformly with data.
package reifier

import (
	"github.com/leinonen/golisp-core/pkg/ast"
	"github.com/leinonen/golisp-core/pkg/values"
)

// Reify is total and side-effect-free: every ast.Expr shape maps to exactly
// one code value.
func Reify(e ast.Expr) values.Value {
	switch n := e.(type) {
	case *ast.Identifier:
		return values.Symbol(n.Name)
	case *ast.IntLiteral:
		return values.Integer(n.Value)
	case *ast.StringLiteral:
		return values.String(n.Value)
	case *ast.ExpressionList:
		elems := make([]values.Value, len(n.Elements))
		for i, el := range n.Elements {
			elems[i] = Reify(el)
		}
		return values.FromSlice(elems)
	default:
		panic("reifier: unhandled ast node type")
	}
}

// ReifyAll reifies a sequence of top-level expressions, e.g. a parsed file.
func ReifyAll(exprs []ast.Expr) []values.Value {
	out := make([]values.Value, len(exprs))
	for i, e := range exprs {
		out[i] = Reify(e)
	}
	return out
}
