package collections

import "fmt"

// Pair holds two values of possibly different types.
// It is the entry type yielded by [Dict.Items] and the value a mapping
// predicate receives.
type Pair[A, B any] struct {
	First  A
	Second B
}

// PairOf builds a Pair from its two halves.
func PairOf[A, B any](first A, second B) Pair[A, B] {
	return Pair[A, B]{First: first, Second: second}
}

// String returns a human-readable representation: "(first, second)".
func (p Pair[A, B]) String() string {
	return fmt.Sprintf("(%v, %v)", p.First, p.Second)
}
