package functools

import "github.com/hasbyte1/go-functools/collections"

// Predicate decides inclusion for the dynamic [Filter]. For a dict it
// receives a collections.Pair[any, any] holding the key and the value.
type Predicate func(any) (bool, error)

// FilterSlice returns the items for which pred returns true, in their
// original relative order.
func FilterSlice[T any](items []T, pred func(T) bool) (res Result[[]T]) {
	defer recoverInto(OpFilter, &res)
	out, err := filterItems(items, liftPred(pred))
	if err != nil {
		return Fail[[]T](callbackError(OpFilter, err))
	}
	return Ok(out)
}

// FilterTuple returns a new Tuple with the items of t for which pred
// returns true.
func FilterTuple[T any](t *collections.Tuple[T], pred func(T) bool) (res Result[*collections.Tuple[T]]) {
	defer recoverInto(OpFilter, &res)
	out, err := filterItems(t.All(), liftPred(pred))
	if err != nil {
		return Fail[*collections.Tuple[T]](callbackError(OpFilter, err))
	}
	return Ok(collections.TupleFrom(out))
}

// FilterDict returns a new Dict with the entries of d for which pred
// returns true. pred sees each entry as a key/value Pair.
//
//	functools.FilterDict(prices, func(p collections.Pair[string, int]) bool {
//	    return p.Second > 1
//	})
func FilterDict[K comparable, V any](d *collections.Dict[K, V], pred func(collections.Pair[K, V]) bool) (res Result[*collections.Dict[K, V]]) {
	defer recoverInto(OpFilter, &res)
	kept, err := filterItems(d.Items(), liftPred(pred))
	if err != nil {
		return Fail[*collections.Dict[K, V]](callbackError(OpFilter, err))
	}
	return Ok(collections.DictOf(kept...))
}

// Filter keeps the elements of data that satisfy pred and returns a new
// container of the same kind. Accepted data types are those of [Process].
// For a dict, pred receives collections.Pair[any, any]{key, value}.
func Filter(data any, pred Predicate) (res Result[any]) {
	defer recoverInto(OpFilter, &res)
	var (
		out any
		err error
	)
	switch d := data.(type) {
	case *collections.Dict[any, any]:
		var kept []collections.Pair[any, any]
		kept, err = filterItems(d.Items(), func(p collections.Pair[any, any]) (bool, error) {
			return pred(p)
		})
		out = collections.DictOf(kept...)
	case []any:
		out, err = filterItems(d, pred)
	case *collections.Tuple[any]:
		var kept []any
		kept, err = filterItems(d.All(), pred)
		out = collections.TupleFrom(kept)
	default:
		return Fail[any](unsupportedType(OpFilter, data))
	}
	if err != nil {
		return Fail[any](callbackError(OpFilter, err))
	}
	return Ok(out)
}

func filterItems[T any](items []T, pred func(T) (bool, error)) ([]T, error) {
	out := make([]T, 0, len(items))
	for _, item := range items {
		ok, err := pred(item)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, item)
		}
	}
	return out, nil
}

func liftPred[T any](pred func(T) bool) func(T) (bool, error) {
	return func(v T) (bool, error) { return pred(v), nil }
}
