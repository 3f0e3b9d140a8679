package functools_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-functools/functools"
)

type label string

func TestCombine(t *testing.T) {
	tests := []struct {
		name   string
		values []any
		opts   []functools.CombineOption
		want   any
	}{
		{"empty", nil, nil, ""},
		{"empty with initial", nil, []functools.CombineOption{functools.WithInitial(5)}, 5},
		{"empty with nil initial", []any{}, []functools.CombineOption{functools.WithInitial(nil)}, ""},
		{"ints", []any{1, 2, 3, 4}, nil, 10},
		{"floats with initial", []any{1.5, 2.5}, []functools.CombineOption{functools.WithInitial(1.0)}, 5.0},
		{"int then float", []any{1, 2.5}, nil, 3.5},
		{"int initial", []any{1, 2}, []functools.CombineOption{functools.WithInitial(10)}, 13},
		{"mixed widths", []any{int8(1), uint16(2), int64(3)}, nil, 6},
		{"strings", []any{"a", "b"}, []functools.CombineOption{functools.WithSeparator("-")}, "a-b"},
		{"words", []any{"Python", "is", "cool"}, []functools.CombineOption{functools.WithSeparator(" ")}, "Python is cool"},
		{"no separator", []any{"a", "b", "c"}, nil, "abc"},
		{"text then numbers", []any{"n=", 1, 2.5, true}, nil, "n=12.5true"},
		{"named string type", []any{label("x"), "y"}, []functools.CombineOption{functools.WithSeparator(",")}, "x,y"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := functools.Combine(tt.values, tt.opts...).Get()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCombineErrors(t *testing.T) {
	tests := []struct {
		name   string
		values []any
		opts   []functools.CombineOption
		want   error
		msg    string
	}{
		{"number then string", []any{1, "a"}, nil, functools.ErrMixedTypes,
			"combining error: all values must be numeric: value 1 is string"},
		{"bool among numbers", []any{1, true}, nil, functools.ErrMixedTypes, ""},
		{"string initial", []any{1, 2}, []functools.CombineOption{functools.WithInitial("x")}, functools.ErrMixedTypes,
			"combining error: all values must be numeric: initial value is string"},
		{"slice first", []any{[]int{1}}, nil, functools.ErrInvalidFirstArg,
			"combining error: first argument must be numeric or textual: got []int"},
		{"bool first", []any{true, false}, nil, functools.ErrInvalidFirstArg, ""},
		{"nil first", []any{nil}, nil, functools.ErrInvalidFirstArg, ""},
		{"overflow", []any{math.MaxInt, 1}, nil, functools.ErrOverflow, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := functools.Combine(tt.values, tt.opts...)
			require.ErrorIs(t, res.Err(), tt.want)
			if tt.msg != "" {
				assert.Equal(t, tt.msg, res.String())
			}
		})
	}
}

func TestSum(t *testing.T) {
	assert.Equal(t, 10, functools.Sum(0, 1, 2, 3, 4))
	assert.Equal(t, 5.0, functools.Sum(1.0, 1.5, 2.5))
	assert.Equal(t, uint8(7), functools.Sum[uint8](7))
}

func TestJoin(t *testing.T) {
	assert.Equal(t, "a-b", functools.Join("-", "a", "b"))
	assert.Equal(t, "1, 2, 3", functools.Join(", ", 1, 2, 3))
	assert.Equal(t, "", functools.Join[string](" "))
}
