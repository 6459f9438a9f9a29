package values

import "testing"

func TestFromSliceToSliceRoundTrip(t *testing.T) {
	in := []Value{Integer(1), Integer(2), Integer(3)}
	list := FromSlice(in)

	out, ok := ToSlice(list)
	if !ok {
		t.Fatalf("expected a proper list")
	}
	if len(out) != len(in) {
		t.Fatalf("got %d elements, want %d", len(out), len(in))
	}
	for i := range in {
		if out[i] != in[i] {
			t.Errorf("element %d: got %v, want %v", i, out[i], in[i])
		}
	}
}

func TestFromSliceEmpty(t *testing.T) {
	list := FromSlice(nil)
	if _, isNil := list.(Nil); !isNil {
		t.Fatalf("expected Nil for an empty slice, got %T", list)
	}
}

func TestToSliceImproperList(t *testing.T) {
	improper := NewConsCell(Integer(1), Integer(2))
	_, ok := ToSlice(improper)
	if ok {
		t.Fatalf("expected improper list to report ok=false")
	}
}

func TestIsProperListAndLength(t *testing.T) {
	proper := FromSlice([]Value{Integer(1), Integer(2)})
	if !IsProperList(proper) {
		t.Errorf("expected proper list")
	}
	if got := Length(proper); got != 2 {
		t.Errorf("Length() = %d, want 2", got)
	}

	improper := NewConsCell(Integer(1), Symbol("x"))
	if IsProperList(improper) {
		t.Errorf("expected improper list to report false")
	}
	if got := Length(improper); got != -1 {
		t.Errorf("Length() = %d, want -1", got)
	}
}

func TestConsCellStringProperVsImproper(t *testing.T) {
	proper := FromSlice([]Value{Integer(1), Integer(2), Integer(3)})
	if got, want := proper.String(), "(1 2 3)"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}

	improper := NewConsCell(Integer(1), Symbol("rest"))
	if got, want := improper.String(), "(1 . rest)"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestNilString(t *testing.T) {
	if got, want := (Nil{}).String(), "()"; got != want {
		t.Errorf("Nil.String() = %q, want %q", got, want)
	}
}

func TestBooleanString(t *testing.T) {
	if got, want := Boolean(true).String(), "true"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if got, want := Boolean(false).String(), "false"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestTruthy(t *testing.T) {
	cases := []struct {
		v    Value
		want bool
	}{
		{Nil{}, false},
		{Boolean(false), false},
		{Boolean(true), true},
		{Integer(0), true},
		{String(""), true},
	}
	for _, c := range cases {
		if got := Truthy(c.v); got != c.want {
			t.Errorf("Truthy(%v) = %v, want %v", c.v, got, c.want)
		}
	}
}

func TestBlockAllocationAndString(t *testing.T) {
	b := NewBlock(3)
	if len(b.Elements) != 3 {
		t.Fatalf("got %d elements, want 3", len(b.Elements))
	}
	for i, v := range b.Elements {
		if _, isNil := v.(Nil); !isNil {
			t.Errorf("slot %d: got %v, want Nil", i, v)
		}
	}
	if got, want := b.String(), "<allocated block of size 3>"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestArityMatches(t *testing.T) {
	fixed := Fixed(2)
	if fixed.Matches(1) || !fixed.Matches(2) || fixed.Matches(3) {
		t.Errorf("Fixed(2) arity matching is wrong")
	}
	variadic := Variadic()
	if !variadic.Matches(0) || !variadic.Matches(100) {
		t.Errorf("Variadic() should match any count")
	}
}

func TestStringQuoting(t *testing.T) {
	if got, want := String("hi").String(), `"hi"`; got != want {
		t.Errorf("String.String() = %q, want %q", got, want)
	}
}
