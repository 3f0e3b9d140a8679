// Package collections provides the container kinds the functools helpers
// operate on, beyond plain Go slices.
//
// # Containers
//
//   - [Tuple][T]: an immutable, fixed-length ordered sequence. Constructors
//     copy their input and accessors return copies.
//   - [Dict][K, V]: a key-unique mapping that remembers insertion order, so
//     mapped and filtered results print and compare deterministically.
//   - [Pair][A, B]: a two-field value; the entry type of a Dict.
//
// Ordered, mutable sequences are ordinary Go slices and need no wrapper.
//
//	t := collections.NewTuple(1, 2, 3)
//	d := collections.DictOf(
//	    collections.PairOf("a", 1),
//	    collections.PairOf("b", 2),
//	)
//	fmt.Println(t, d) // (1, 2, 3) {a: 1, b: 2}
//
// # Immutability
//
// Tuple has no mutators. Dict exposes [Dict.Set] for building, but the
// functools helpers never mutate a Dict they receive; they always return a
// fresh one.
package collections
