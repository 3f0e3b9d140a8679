package functools

import "fmt"

// Op identifies which helper produced an [Error].
type Op uint8

const (
	// OpProcess is the transform helper family ([Process], [MapSlice], ...).
	OpProcess Op = iota + 1
	// OpFilter is the filter helper family ([Filter], [FilterSlice], ...).
	OpFilter
	// OpCombine is the combine helper family ([Combine]).
	OpCombine
)

// String returns the lower-case operation name.
func (o Op) String() string {
	switch o {
	case OpProcess:
		return "process"
	case OpFilter:
		return "filter"
	case OpCombine:
		return "combine"
	default:
		return fmt.Sprintf("op(%d)", uint8(o))
	}
}

// label is the heading used by [Result.String] for a failed result.
func (o Op) label() string {
	switch o {
	case OpProcess:
		return "processing error"
	case OpFilter:
		return "filtering error"
	case OpCombine:
		return "combining error"
	default:
		return "error"
	}
}

// Kind classifies an [Error]. Each Kind is also an error value, so the
// exported Err* sentinels below can be matched with [errors.Is]:
//
//	res := functools.Process(data, op, functools.TargetKeys)
//	if errors.Is(res.Err(), functools.ErrUnsupportedType) {
//	    // data was not a list, tuple or dict
//	}
type Kind uint8

const (
	// KindCallback means the caller-supplied function or predicate failed,
	// either by returning an error or by panicking.
	KindCallback Kind = iota + 1
	// KindInvalidTarget means a dict was processed with a selector other
	// than keys, values or items.
	KindInvalidTarget
	// KindUnsupportedType means the container is not a list, tuple or dict.
	KindUnsupportedType
	// KindMixedTypes means a numeric combine met a non-numeric value.
	KindMixedTypes
	// KindInvalidFirstArg means the first combined value is neither numeric
	// nor textual.
	KindInvalidFirstArg
	// KindOverflow means an integer sum left the range of int.
	KindOverflow
)

// String returns a short description of the kind.
func (k Kind) String() string {
	switch k {
	case KindCallback:
		return "callback failed"
	case KindInvalidTarget:
		return "invalid target"
	case KindUnsupportedType:
		return "unsupported container type"
	case KindMixedTypes:
		return "all values must be numeric"
	case KindInvalidFirstArg:
		return "first argument must be numeric or textual"
	case KindOverflow:
		return "integer overflow"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Error implements error so that a Kind can serve as a sentinel. Because
// fmt prefers Error over String, %v on a Kind prints the prefixed sentinel
// message; call String for the bare description.
func (k Kind) Error() string { return "functools: " + k.String() }

// Sentinel errors, one per [Kind]. Match them with [errors.Is].
var (
	ErrCallback        error = KindCallback
	ErrInvalidTarget   error = KindInvalidTarget
	ErrUnsupportedType error = KindUnsupportedType
	ErrMixedTypes      error = KindMixedTypes
	ErrInvalidFirstArg error = KindInvalidFirstArg
	ErrOverflow        error = KindOverflow
)

// Error is the failure carried by a [Result].
//
// Use [errors.As] to branch on the Kind programmatically instead of parsing
// the message:
//
//	var ferr *functools.Error
//	if errors.As(err, &ferr) && ferr.Kind == functools.KindInvalidTarget {
//	    ...
//	}
type Error struct {
	// Op is the helper family that failed.
	Op Op
	// Kind classifies the failure.
	Kind Kind
	// Detail adds context such as the offending type or selector.
	Detail string
	// Err is the callback's own error, when Kind is KindCallback.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("functools: %s: %s", e.Op, e.reason())
}

// reason is the message without the package and op prefix.
func (e *Error) reason() string {
	msg := e.Kind.String()
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the callback's error, if any.
func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is the sentinel for e's Kind.
func (e *Error) Is(target error) bool {
	k, ok := target.(Kind)
	return ok && k == e.Kind
}

func newError(op Op, kind Kind, format string, args ...any) *Error {
	return &Error{Op: op, Kind: kind, Detail: fmt.Sprintf(format, args...)}
}

// callbackError wraps a failure escaping a callback. A nested *Error, such
// as one returned by a Combine call inside a predicate, stays reachable
// through Unwrap but does not change the outer classification.
func callbackError(op Op, err error) *Error {
	return &Error{Op: op, Kind: KindCallback, Err: err}
}

// PanicError wraps a value recovered from a panicking callback.
type PanicError struct {
	Value any
}

func (p *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", p.Value)
}

// Unwrap returns the recovered value when it is itself an error, such as a
// runtime.Error for an integer division by zero.
func (p *PanicError) Unwrap() error {
	if err, ok := p.Value.(error); ok {
		return err
	}
	return nil
}

// recoverInto converts a panic raised by a callback into a failed result.
// It must be called directly by a deferred statement.
func recoverInto[T any](op Op, res *Result[T]) {
	if r := recover(); r != nil {
		*res = Fail[T](callbackError(op, &PanicError{Value: r}))
	}
}
