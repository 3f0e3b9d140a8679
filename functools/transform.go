package functools

import "github.com/hasbyte1/go-functools/collections"

// Operation is a unary transform used by the dynamic helpers. Returning an
// error fails the whole call with a [KindCallback] error.
type Operation func(any) (any, error)

// ─────────────────────────────────────────────────────────────────────────────
// Typed entry points
// ─────────────────────────────────────────────────────────────────────────────

// MapSlice applies fn to every item and returns a new slice of the same
// length, with out[i] == fn(items[i]).
//
//	functools.MapSlice([]int{1, 2, 3}, func(n int) int { return n * n })
//	// → Ok([1 4 9])
func MapSlice[T, U any](items []T, fn func(T) U) (res Result[[]U]) {
	defer recoverInto(OpProcess, &res)
	out, err := mapItems(items, lift(fn))
	if err != nil {
		return Fail[[]U](callbackError(OpProcess, err))
	}
	return Ok(out)
}

// MapTuple applies fn to every item of t and returns a new Tuple.
func MapTuple[T, U any](t *collections.Tuple[T], fn func(T) U) (res Result[*collections.Tuple[U]]) {
	defer recoverInto(OpProcess, &res)
	out, err := mapItems(t.All(), lift(fn))
	if err != nil {
		return Fail[*collections.Tuple[U]](callbackError(OpProcess, err))
	}
	return Ok(collections.TupleFrom(out))
}

// MapValues applies fn to every value of d; keys are unchanged.
func MapValues[K comparable, V, W any](d *collections.Dict[K, V], fn func(V) W) (res Result[*collections.Dict[K, W]]) {
	defer recoverInto(OpProcess, &res)
	out, err := transformDict(d, keep[K], lift(fn))
	return dictResult(out, err)
}

// MapKeys applies fn to every key of d; values are unchanged.
// When two keys map to the same new key, the later value wins and the key
// keeps the position of its first occurrence.
func MapKeys[K, J comparable, V any](d *collections.Dict[K, V], fn func(K) J) (res Result[*collections.Dict[J, V]]) {
	defer recoverInto(OpProcess, &res)
	out, err := transformDict(d, lift(fn), keep[V])
	return dictResult(out, err)
}

// MapItems applies fn to both the key and the value of every entry. Keys and
// values must therefore share a type.
func MapItems[K, J comparable](d *collections.Dict[K, K], fn func(K) J) (res Result[*collections.Dict[J, J]]) {
	defer recoverInto(OpProcess, &res)
	out, err := transformDict(d, lift(fn), lift(fn))
	return dictResult(out, err)
}

// TransformDict applies fn to the part of each entry selected by target.
// It is the typed counterpart of [Process] for dicts whose keys and values
// share a type; a target other than keys, values, items or "" fails with
// [ErrInvalidTarget].
func TransformDict[K comparable](d *collections.Dict[K, K], fn func(K) K, target Target) (res Result[*collections.Dict[K, K]]) {
	defer recoverInto(OpProcess, &res)
	t, ok := target.resolve()
	if !ok {
		return Fail[*collections.Dict[K, K]](invalidTarget(target))
	}
	out, err := transformDict(d, selectKey(t, lift(fn)), selectValue(t, lift(fn)))
	return dictResult(out, err)
}

// ─────────────────────────────────────────────────────────────────────────────
// Dynamic entry point
// ─────────────────────────────────────────────────────────────────────────────

// Process applies op to the elements of data and returns a new container of
// the same kind:
//
//   - []any: a new []any, order preserved.
//   - *collections.Tuple[any]: a new Tuple.
//   - *collections.Dict[any, any]: a new Dict; target chooses keys, values
//     (the default) or items.
//
// target is ignored for sequences. Any other data type fails with
// [ErrUnsupportedType]; an error or panic from op fails with [ErrCallback].
func Process(data any, op Operation, target Target) (res Result[any]) {
	defer recoverInto(OpProcess, &res)
	switch d := data.(type) {
	case *collections.Dict[any, any]:
		t, ok := target.resolve()
		if !ok {
			return Fail[any](invalidTarget(target))
		}
		out, err := transformDict(d, selectKey(t, op), selectValue(t, op))
		return dictResult(out, err).Any()
	case []any:
		out, err := mapItems(d, op)
		if err != nil {
			return Fail[any](callbackError(OpProcess, err))
		}
		return Ok[any](out)
	case *collections.Tuple[any]:
		out, err := mapItems(d.All(), op)
		if err != nil {
			return Fail[any](callbackError(OpProcess, err))
		}
		return Ok[any](collections.TupleFrom(out))
	default:
		return Fail[any](unsupportedType(OpProcess, data))
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Internals
// ─────────────────────────────────────────────────────────────────────────────

func mapItems[T, U any](items []T, fn func(T) (U, error)) ([]U, error) {
	out := make([]U, len(items))
	for i, item := range items {
		v, err := fn(item)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// transformDict builds a new dict from d. For each entry the key function
// runs before the value function.
func transformDict[K, J comparable, V, W any](
	d *collections.Dict[K, V],
	keyFn func(K) (J, error),
	valueFn func(V) (W, error),
) (*collections.Dict[J, W], error) {
	out := collections.NewDictCap[J, W](d.Len())
	for _, e := range d.Items() {
		k, err := keyFn(e.First)
		if err != nil {
			return nil, err
		}
		v, err := valueFn(e.Second)
		if err != nil {
			return nil, err
		}
		out.Set(k, v)
	}
	return out, nil
}

func dictResult[K comparable, V any](d *collections.Dict[K, V], err error) Result[*collections.Dict[K, V]] {
	if err != nil {
		return Fail[*collections.Dict[K, V]](callbackError(OpProcess, err))
	}
	return Ok(d)
}

// selectKey returns fn when t maps keys and the identity otherwise.
func selectKey[T any](t Target, fn func(T) (T, error)) func(T) (T, error) {
	if t == TargetKeys || t == TargetItems {
		return fn
	}
	return keep[T]
}

// selectValue returns fn when t maps values and the identity otherwise.
func selectValue[T any](t Target, fn func(T) (T, error)) func(T) (T, error) {
	if t == TargetValues || t == TargetItems {
		return fn
	}
	return keep[T]
}

func lift[T, U any](fn func(T) U) func(T) (U, error) {
	return func(v T) (U, error) { return fn(v), nil }
}

func keep[T any](v T) (T, error) { return v, nil }

func invalidTarget(t Target) *Error {
	return newError(OpProcess, KindInvalidTarget, "%q (want keys, values or items)", string(t))
}

func unsupportedType(op Op, data any) *Error {
	return newError(op, KindUnsupportedType, "%T (want list, tuple or dict)", data)
}
