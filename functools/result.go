package functools

import (
	"errors"
	"fmt"
)

// Result is the outcome of a helper call: either a value or an *[Error].
//
// Callers branch on the error instead of inspecting the value's shape:
//
//	squares, err := functools.MapSlice([]int{1, 2, 3}, square).Get()
//	if err != nil {
//	    return err
//	}
//
// [Result.String] still renders a single display string for either case,
// which is what the demo CLI prints.
type Result[T any] struct {
	value T
	err   error
}

// Ok returns a successful Result holding v.
func Ok[T any](v T) Result[T] { return Result[T]{value: v} }

// Fail returns a failed Result carrying err.
func Fail[T any](err error) Result[T] { return Result[T]{err: err} }

// Get returns the value and the error.
func (r Result[T]) Get() (T, error) { return r.value, r.err }

// Value returns the value, or the zero value when the result failed.
func (r Result[T]) Value() T { return r.value }

// Err returns the error, or nil on success.
func (r Result[T]) Err() error { return r.err }

// IsOk reports whether the result holds a value.
func (r Result[T]) IsOk() bool { return r.err == nil }

// OrElse returns the value on success and def otherwise.
func (r Result[T]) OrElse(def T) T {
	if r.err != nil {
		return def
	}
	return r.value
}

// String renders the value with fmt, or on failure a message headed by the
// helper family, e.g. "processing error: invalid target: bogus".
func (r Result[T]) String() string {
	if r.err == nil {
		return fmt.Sprint(r.value)
	}
	var ferr *Error
	if errors.As(r.err, &ferr) {
		return ferr.Op.label() + ": " + ferr.reason()
	}
	return "error: " + r.err.Error()
}

// Any erases the value type, which lets typed and dynamic results be
// handled uniformly.
func (r Result[T]) Any() Result[any] {
	if r.err != nil {
		return Fail[any](r.err)
	}
	return Ok[any](r.value)
}
