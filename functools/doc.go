// Package functools provides three generic higher-order helpers over lists,
// tuples and dicts: transform, filter and combine.
//
// # Typed entry points
//
// When the container kind is known at compile time, call the helper for
// that kind. Every helper returns a [Result] instead of panicking:
//
//	squares := functools.MapSlice([]int{1, 2, 3}, func(n int) int { return n * n })
//	evens   := functools.FilterSlice([]int{1, 2, 3, 4}, func(n int) bool { return n%2 == 0 })
//	tenfold := functools.MapValues(prices, func(p int) int { return p * 10 })
//	total   := functools.Sum(0, 1, 2, 3, 4) // 10
//	line    := functools.Join(" ", "Python", "is", "cool")
//
// Available: [MapSlice], [MapTuple], [MapKeys], [MapValues], [MapItems],
// [TransformDict], [FilterSlice], [FilterTuple], [FilterDict], [Sum], [Join].
//
// # Dynamic entry points
//
// [Process], [Filter] and [Combine] accept untyped data ([]any,
// *collections.Tuple[any] or *collections.Dict[any, any]) and dispatch on its
// kind at run time. Anything else fails with [ErrUnsupportedType].
//
//	res := functools.Process(data, op, functools.TargetKeys)
//	res  = functools.Combine([]any{1.5, 2.5}, functools.WithInitial(1.0)) // Ok(5.0)
//
// # Errors
//
// A failed [Result] carries an *[Error] whose [Kind] says what went wrong.
// Kinds are also sentinel errors, so both of these work:
//
//	errors.Is(res.Err(), functools.ErrInvalidTarget)
//
//	var ferr *functools.Error
//	errors.As(res.Err(), &ferr) // then switch on ferr.Kind
//
// A panic inside a caller-supplied function is recovered and reported as
// [KindCallback]; the recovered value is available through [PanicError].
// [Result.String] renders a failure as a single line such as
// "processing error: invalid target: \"bogus\" (want keys, values or items)".
//
// # Named operations
//
// Data-driven callers can refer to operations and predicates by name:
//
//	op, _   := functools.LookupOperation("pow", 2)
//	pred, _ := functools.LookupPredicate("value", "gt", 1)
//
// Register more with [RegisterOperation] and [RegisterPredicate]. The
// registry is safe for concurrent use.
package functools
