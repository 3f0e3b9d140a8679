package collections

// Sequence is the read-only surface shared by ordered containers.
//
// [Tuple] satisfies it; a plain slice can be adapted with [TupleFrom].
// Accept Sequence in your own functions when the caller should not care
// whether the items are stored in a tuple or somewhere else.
type Sequence[T any] interface {
	// All returns a copy of every item as a plain Go slice.
	All() []T

	// Len returns the number of items.
	Len() int

	// Each calls fn(item, index) for every item, in order.
	Each(fn func(T, int))
}

var _ Sequence[int] = (*Tuple[int])(nil)
