// Package ir contains the reduced expression representation used for
// compile-time constant evaluation, its value types, and the pure interpreter
// that reduces IR expressions to values.  IR values are distinct from the
// runtime values the virtual machine operates on: they exist only so the
// compiler can resolve values ahead of code generation.
package ir

// Value is a compile-time-computed value.  The set of value variants is
// closed.
type Value interface {
	irValue()
}

// Unit is the unit value `()`.
type Unit struct{}

// Bool is a boolean value.
type Bool bool

// Integer is an integer value.
type Integer int64

// Float is a floating point value.
type Float float64

// String is a string value.
type String string

// Tuple is a fixed-length sequence of values.  The underlying storage is
// held under shared ownership: a tuple value may be referenced from more than
// one place in the evaluation graph, so the sequence is frozen after
// construction and shared by handle instead of deep-copied.
type Tuple struct {
	Items *Shared
}

func (Unit) irValue()    {}
func (Bool) irValue()    {}
func (Integer) irValue() {}
func (Float) irValue()   {}
func (String) irValue()  {}
func (Tuple) irValue()   {}

// -----------------------------------------------------------------------------

// Shared is an immutable, cheaply-cloneable handle to a fixed-length sequence
// of values.  The handle may be copied freely; no referent may mutate the
// sequence once it is constructed.
type Shared struct {
	items []Value
}

// NewShared freezes the given sequence into a shared handle.  The caller
// transfers ownership of the slice and must not retain or mutate it.
func NewShared(items []Value) *Shared {
	return &Shared{items: items}
}

// Len returns the length of the sequence.
func (s *Shared) Len() int {
	return len(s.items)
}

// Get returns the value at index i.
func (s *Shared) Get(i int) Value {
	return s.items[i]
}

// Items returns the underlying sequence.  The returned slice must not be
// mutated.
func (s *Shared) Items() []Value {
	return s.items
}
