package functools

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
)

// Sum adds values to initial. It is the typed form of a numeric [Combine].
//
//	functools.Sum(0, 1, 2, 3, 4)     // 10
//	functools.Sum(1.0, 1.5, 2.5)     // 5
func Sum[N Number](initial N, values ...N) N {
	total := initial
	for _, v := range values {
		total += v
	}
	return total
}

// Join renders every value with fmt and joins them with sep. It is the typed
// form of a textual [Combine].
//
//	functools.Join(" ", "Python", "is", "cool") // "Python is cool"
func Join[T any](sep string, values ...T) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = textOf(v)
	}
	return strings.Join(parts, sep)
}

// CombineOption configures [Combine].
type CombineOption func(*combineOptions)

type combineOptions struct {
	separator string
	initial   any
}

// WithSeparator sets the string placed between joined values. The default
// is the empty string.
func WithSeparator(sep string) CombineOption {
	return func(o *combineOptions) { o.separator = sep }
}

// WithInitial sets the starting value of a numeric sum and the result of
// combining no values at all. A nil initial is the same as not setting one.
func WithInitial(v any) CombineOption {
	return func(o *combineOptions) { o.initial = v }
}

// Combine folds values into one, picking the mode from the first value:
//
//   - no values: the initial value if set, else "".
//   - numeric first value: the sum of initial (default 0) and every value.
//     Integers stay int; any float makes the sum a float64. A non-numeric
//     value fails with [ErrMixedTypes], an int overflow with [ErrOverflow].
//   - textual first value: every value rendered with fmt and joined with
//     the separator.
//   - anything else fails with [ErrInvalidFirstArg].
//
// Prefer [Sum] or [Join] when the element type is known statically.
func Combine(values []any, opts ...CombineOption) (res Result[any]) {
	defer recoverInto(OpCombine, &res)
	var o combineOptions
	for _, opt := range opts {
		opt(&o)
	}
	if len(values) == 0 {
		if o.initial != nil {
			return Ok(o.initial)
		}
		return Ok[any]("")
	}
	first := values[0]
	switch {
	case isNumeric(first):
		return sumValues(o.initial, values)
	case isText(first):
		return Ok[any](Join(o.separator, values...))
	default:
		return Fail[any](newError(OpCombine, KindInvalidFirstArg, "got %T", first))
	}
}

func sumValues(initial any, values []any) Result[any] {
	total := number{}
	if initial != nil {
		n, ok := toNumber(initial)
		if !ok {
			return Fail[any](newError(OpCombine, KindMixedTypes, "initial value is %T", initial))
		}
		total = n
	}
	for i, v := range values {
		n, ok := toNumber(v)
		if !ok {
			return Fail[any](newError(OpCombine, KindMixedTypes, "value %d is %T", i, v))
		}
		var err error
		if total, err = total.add(n); err != nil {
			return Fail[any](overflowError(err))
		}
	}
	return Ok(total.value())
}

func overflowError(err error) *Error {
	detail := err.Error()
	if errors.Is(err, ErrOverflow) {
		detail = strings.TrimPrefix(detail, ErrOverflow.Error()+": ")
	}
	return &Error{Op: OpCombine, Kind: KindOverflow, Detail: detail}
}

// isText reports whether v is a string or has a string underlying type.
func isText(v any) bool {
	if _, ok := v.(string); ok {
		return true
	}
	return v != nil && reflect.TypeOf(v).Kind() == reflect.String
}

func textOf(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}
