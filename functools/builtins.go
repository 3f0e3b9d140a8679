package functools

import (
	"encoding/hex"
	"errors"
	"fmt"
	"math"
	"reflect"
	"strings"
	"unicode/utf8"

	"golang.org/x/crypto/blake2b"

	"github.com/hasbyte1/go-functools/collections"
)

// errDivisionByZero is returned by the "reciprocal" builtin for a zero input.
var errDivisionByZero = errors.New("division by zero")

// builtinOperations returns a fresh map of the operations every registry
// starts with.
//
//	identity     x
//	add n        x + n
//	mul n        x * n
//	pow n        x ** n
//	negate       -x
//	reciprocal   1 / x (float64)
//	str          x rendered with fmt
//	upper, lower case-mapped string
//	len          length of a string (in runes), slice, map, tuple or dict
//	digest       hex BLAKE2b-256 of str(x)
func builtinOperations() map[string]OperationFactory {
	return map[string]OperationFactory{
		"identity": unaryOp(func(v any) (any, error) { return v, nil }),
		"add":      arithmeticOp(number.add),
		"mul":      arithmeticOp(number.mul),
		"pow":      arithmeticOp(number.pow),
		"negate": unaryOp(func(v any) (any, error) {
			n, err := numberOf(v)
			if err != nil {
				return nil, err
			}
			n, err = n.neg()
			if err != nil {
				return nil, err
			}
			return n.value(), nil
		}),
		"reciprocal": unaryOp(func(v any) (any, error) {
			n, err := numberOf(v)
			if err != nil {
				return nil, err
			}
			if n.isZero() {
				return nil, errDivisionByZero
			}
			return 1 / n.float(), nil
		}),
		"str":   unaryOp(func(v any) (any, error) { return textOf(v), nil }),
		"upper": stringOp(strings.ToUpper),
		"lower": stringOp(strings.ToLower),
		"len": unaryOp(func(v any) (any, error) {
			n, ok := lengthOf(v)
			if !ok {
				return nil, fmt.Errorf("%T has no length", v)
			}
			return n, nil
		}),
		"digest": unaryOp(func(v any) (any, error) {
			sum := blake2b.Sum256([]byte(textOf(v)))
			return hex.EncodeToString(sum[:]), nil
		}),
	}
}

// builtinPredicates returns a fresh map of the predicates every registry
// starts with.
//
//	even, odd          integral parity of a number
//	gt n, lt n         ordering against a number, or a string against a string
//	eq v               equality, numbers compared by value across widths
//	truthy             non-zero, non-empty, non-nil, true
//	not p args...      negation of predicate p
//	key p args...      p applied to a dict entry's key
//	value p args...    p applied to a dict entry's value
func builtinPredicates() map[string]PredicateFactory {
	return map[string]PredicateFactory{
		"even": unaryPred(func(v any) (bool, error) { return parity(v, 0) }),
		"odd":  unaryPred(func(v any) (bool, error) { return parity(v, 1) }),
		"gt":   comparePred(func(c int) bool { return c > 0 }),
		"lt":   comparePred(func(c int) bool { return c < 0 }),
		"eq": func(args ...any) (Predicate, error) {
			if len(args) != 1 {
				return nil, fmt.Errorf("%w: want 1 argument, got %d", ErrInvalidArgs, len(args))
			}
			want := args[0]
			return func(v any) (bool, error) { return equal(v, want), nil }, nil
		},
		"truthy": unaryPred(func(v any) (bool, error) { return truthy(v), nil }),
		"not": func(args ...any) (Predicate, error) {
			inner, err := innerPredicate(args)
			if err != nil {
				return nil, err
			}
			return func(v any) (bool, error) {
				ok, err := inner(v)
				return !ok, err
			}, nil
		},
		"key":   pairPred(func(p collections.Pair[any, any]) any { return p.First }),
		"value": pairPred(func(p collections.Pair[any, any]) any { return p.Second }),
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Factory helpers
// ─────────────────────────────────────────────────────────────────────────────

func unaryOp(op Operation) OperationFactory {
	return func(args ...any) (Operation, error) {
		if len(args) != 0 {
			return nil, fmt.Errorf("%w: want no arguments, got %d", ErrInvalidArgs, len(args))
		}
		return op, nil
	}
}

func arithmeticOp(apply func(number, number) (number, error)) OperationFactory {
	return func(args ...any) (Operation, error) {
		operand, err := numberArg(args)
		if err != nil {
			return nil, err
		}
		return func(v any) (any, error) {
			n, err := numberOf(v)
			if err != nil {
				return nil, err
			}
			out, err := apply(n, operand)
			if err != nil {
				return nil, err
			}
			return out.value(), nil
		}, nil
	}
}

func stringOp(fn func(string) string) OperationFactory {
	return unaryOp(func(v any) (any, error) {
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("want a string, got %T", v)
		}
		return fn(s), nil
	})
}

func unaryPred(pred Predicate) PredicateFactory {
	return func(args ...any) (Predicate, error) {
		if len(args) != 0 {
			return nil, fmt.Errorf("%w: want no arguments, got %d", ErrInvalidArgs, len(args))
		}
		return pred, nil
	}
}

func comparePred(accept func(int) bool) PredicateFactory {
	return func(args ...any) (Predicate, error) {
		if len(args) != 1 {
			return nil, fmt.Errorf("%w: want 1 argument, got %d", ErrInvalidArgs, len(args))
		}
		bound := args[0]
		if !isNumeric(bound) && !isText(bound) {
			return nil, fmt.Errorf("%w: want a number or string, got %T", ErrInvalidArgs, bound)
		}
		return func(v any) (bool, error) {
			c, err := compare(v, bound)
			if err != nil {
				return false, err
			}
			return accept(c), nil
		}, nil
	}
}

func pairPred(part func(collections.Pair[any, any]) any) PredicateFactory {
	return func(args ...any) (Predicate, error) {
		inner, err := innerPredicate(args)
		if err != nil {
			return nil, err
		}
		return func(v any) (bool, error) {
			p, ok := v.(collections.Pair[any, any])
			if !ok {
				return false, fmt.Errorf("want a dict entry, got %T", v)
			}
			return inner(part(p))
		}, nil
	}
}

// innerPredicate resolves args of the form (name, innerArgs...).
func innerPredicate(args []any) (Predicate, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("%w: want a predicate name", ErrInvalidArgs)
	}
	name, ok := args[0].(string)
	if !ok {
		return nil, fmt.Errorf("%w: predicate name must be a string, got %T", ErrInvalidArgs, args[0])
	}
	return LookupPredicate(name, args[1:]...)
}

func numberArg(args []any) (number, error) {
	if len(args) != 1 {
		return number{}, fmt.Errorf("%w: want 1 argument, got %d", ErrInvalidArgs, len(args))
	}
	n, ok := toNumber(args[0])
	if !ok {
		return number{}, fmt.Errorf("%w: want a number, got %T", ErrInvalidArgs, args[0])
	}
	return n, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Value helpers
// ─────────────────────────────────────────────────────────────────────────────

func numberOf(v any) (number, error) {
	n, ok := toNumber(v)
	if !ok {
		return number{}, fmt.Errorf("want a number, got %T", v)
	}
	return n, nil
}

func parity(v any, rem int) (bool, error) {
	n, err := numberOf(v)
	if err != nil {
		return false, err
	}
	if n.isFloat {
		m := math.Mod(n.f, 2)
		return m == float64(rem) || m == -float64(rem), nil
	}
	return abs(n.i%2) == rem, nil
}

// compare orders two numbers or two strings.
func compare(a, b any) (int, error) {
	if x, ok := toNumber(a); ok {
		if y, ok := toNumber(b); ok {
			return x.compare(y), nil
		}
	}
	if isText(a) && isText(b) {
		return strings.Compare(textOf(a), textOf(b)), nil
	}
	return 0, fmt.Errorf("cannot compare %T with %T", a, b)
}

func equal(a, b any) bool {
	if x, ok := toNumber(a); ok {
		if y, ok := toNumber(b); ok {
			return x.compare(y) == 0
		}
		return false
	}
	return reflect.DeepEqual(a, b)
}

func truthy(v any) bool {
	if v == nil {
		return false
	}
	if b, ok := v.(bool); ok {
		return b
	}
	if n, ok := toNumber(v); ok {
		return !n.isZero()
	}
	if n, ok := lengthOf(v); ok {
		return n > 0
	}
	return true
}

// lengthOf returns the number of elements of a string (runes), tuple, dict,
// slice, array or map.
func lengthOf(v any) (int, bool) {
	switch x := v.(type) {
	case string:
		return utf8.RuneCountInString(x), true
	case interface{ Len() int }:
		return x.Len(), true
	}
	if v == nil {
		return 0, false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return rv.Len(), true
	case reflect.String:
		return utf8.RuneCountInString(rv.String()), true
	default:
		return 0, false
	}
}
