package reifier

import (
	"testing"

	"github.com/leinonen/golisp-core/pkg/parser"
	"github.com/leinonen/golisp-core/pkg/values"
)

func TestReifyAtoms(t *testing.T) {
	e, err := parser.ParseExpr(`42`, "t")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := Reify(e), values.Value(values.Integer(42)); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestReifyListIsConsCellChain(t *testing.T) {
	e, err := parser.ParseExpr(`(+ 1 2)`, "t")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	v := Reify(e)
	elems, ok := values.ToSlice(v)
	if !ok || len(elems) != 3 {
		t.Fatalf("got %#v, want a 3-element proper list", v)
	}
	if sym, ok := elems[0].(values.Symbol); !ok || sym != "+" {
		t.Errorf("got %#v, want Symbol +", elems[0])
	}
	if n, ok := elems[1].(values.Integer); !ok || n != 1 {
		t.Errorf("got %#v, want Integer 1", elems[1])
	}
}

func TestReifyAllPreservesOrder(t *testing.T) {
	exprs, err := parser.ParseFile(`1 2 3`, "t")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	vs := ReifyAll(exprs)
	if len(vs) != 3 {
		t.Fatalf("got %d values, want 3", len(vs))
	}
	for i, want := range []values.Integer{1, 2, 3} {
		if vs[i] != want {
			t.Errorf("value %d: got %v, want %v", i, vs[i], want)
		}
	}
}
