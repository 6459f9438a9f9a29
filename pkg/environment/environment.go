// Package environment implements the lexical environment of spec §3.2 and
// §4.2: a mutable name→slot mapping that forks by shallow copy, with
// forward-reference slots shared by identity across forks so mutually
// recursive letrec bindings can see each other.
//
// The fork/forward-reference design is grounded directly in
// original_source/pylisp/environment.py — the teacher's own environments
// are parent-chained, not fork-based, so this package follows the original
// program the spec was distilled from rather than the teacher's shape.
package environment

import (
	"github.com/dolthub/swiss"
	"github.com/leinonen/golisp-core/pkg/lisperr"
	"github.com/leinonen/golisp-core/pkg/values"
)

// forwardRef is a single-assignment cell: at most one fill ever succeeds,
// and a lookup before fill fails (spec §5 resource model).
type forwardRef struct {
	name   string
	filled bool
	value  values.Value
}

func (f *forwardRef) set(v values.Value) error {
	if f.filled {
		return lisperr.New("forward reference %s has been filled a second time", f.name)
	}
	f.value = v
	f.filled = true
	return nil
}

func (f *forwardRef) get() (values.Value, error) {
	if !f.filled {
		return nil, lisperr.New("forward reference %s accessed before initialization, do you have a loop?", f.name)
	}
	return f.value, nil
}

// Environment owns a mapping from identifier names to slots. A slot holds
// either a values.Value directly or a *forwardRef.
type Environment struct {
	slots *swiss.Map[string, any]
}

// Empty returns a fresh environment with no bindings.
func Empty() *Environment {
	return &Environment{slots: swiss.NewMap[string, any](8)}
}

// WithPrimitives returns a fresh environment seeded from a name→value table.
func WithPrimitives(table map[string]values.Value) *Environment {
	env := &Environment{slots: swiss.NewMap[string, any](uint32(len(table) + 1))}
	for name, v := range table {
		env.slots.Put(name, v)
	}
	return env
}

// Lookup resolves name, following a forward-reference slot to its filled
// value. Fails with UndefinedIdentifier if absent, or a LispError if the
// slot is a forward reference that hasn't been filled yet.
func (e *Environment) Lookup(name string) (values.Value, error) {
	slot, ok := e.slots.Get(name)
	if !ok {
		return nil, &lisperr.UndefinedIdentifier{Name: name}
	}
	if ref, isRef := slot.(*forwardRef); isRef {
		return ref.get()
	}
	return slot.(values.Value), nil
}

// Update rebinds (or creates) a direct-value slot in this environment only.
func (e *Environment) Update(name string, v values.Value) {
	e.slots.Put(name, v)
}

// Fork produces a new environment whose slot map is a shallow copy: later
// updates on either side are independent, except that forward-reference
// slots present at fork time are shared by identity, so a later fill on one
// side is observed by the other (spec §4.2).
func (e *Environment) Fork() values.Env {
	forked := swiss.NewMap[string, any](uint32(e.slots.Count() + 1))
	e.slots.Iter(func(name string, slot any) (stop bool) {
		forked.Put(name, slot)
		return false
	})
	return &Environment{slots: forked}
}

// AllocateForwardReference installs an empty forward-reference slot.
func (e *Environment) AllocateForwardReference(name string) {
	e.slots.Put(name, &forwardRef{name: name})
}

// FillForwardReference requires a forward-reference slot under name. Fails
// with a LispError if the slot is missing, already filled, or not a
// forward reference.
func (e *Environment) FillForwardReference(name string, v values.Value) error {
	slot, ok := e.slots.Get(name)
	if !ok {
		return lisperr.New("forward reference %s has not been declared", name)
	}
	ref, isRef := slot.(*forwardRef)
	if !isRef {
		return lisperr.New("%s is not a forward reference", name)
	}
	return ref.set(v)
}

var _ values.Env = (*Environment)(nil)
