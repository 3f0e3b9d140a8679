package collections

import (
	"fmt"
	"strings"
)

// Tuple is an immutable, fixed-length ordered sequence.
//
// The backing slice is private and never handed out: constructors copy their
// input and [Tuple.All] returns a copy. A Tuple is therefore safe to share
// between goroutines without locking.
//
//	t := collections.NewTuple(1, 2, 3)
//	t.Len()   // 3
//	t.At(1)   // 2, true
//	t.String() // "(1, 2, 3)"
type Tuple[T any] struct {
	items []T
}

// NewTuple creates a Tuple from a variadic list of items (copied).
func NewTuple[T any](items ...T) *Tuple[T] {
	return TupleFrom(items)
}

// TupleFrom creates a Tuple from a slice (the slice is copied).
func TupleFrom[T any](items []T) *Tuple[T] {
	dst := make([]T, len(items))
	copy(dst, items)
	return &Tuple[T]{items: dst}
}

// All returns a copy of the items.
func (t *Tuple[T]) All() []T {
	out := make([]T, len(t.items))
	copy(out, t.items)
	return out
}

// Len returns the number of items.
func (t *Tuple[T]) Len() int { return len(t.items) }

// At returns the item at index together with a presence flag.
// Returns the zero value and false when index is out of range.
func (t *Tuple[T]) At(index int) (T, bool) {
	var zero T
	if index < 0 || index >= len(t.items) {
		return zero, false
	}
	return t.items[index], true
}

// Each calls fn(item, index) for every item.
func (t *Tuple[T]) Each(fn func(T, int)) {
	for i, item := range t.items {
		fn(item, i)
	}
}

// String renders the tuple as "(a, b, c)".
func (t *Tuple[T]) String() string {
	var b strings.Builder
	b.WriteByte('(')
	for i, item := range t.items {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprint(&b, item)
	}
	b.WriteByte(')')
	return b.String()
}
