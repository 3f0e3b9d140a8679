package functools_test

import (
	"errors"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-functools/collections"
	"github.com/hasbyte1/go-functools/functools"
)

// ─────────────────────────────────────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────────────────────────────────────

func square(n int) int { return n * n }

func anyDict(kv ...any) *collections.Dict[any, any] {
	d := collections.NewDict[any, any]()
	for i := 0; i+1 < len(kv); i += 2 {
		d.Set(kv[i], kv[i+1])
	}
	return d
}

func mustOp(t *testing.T, name string, args ...any) functools.Operation {
	t.Helper()
	op, err := functools.LookupOperation(name, args...)
	require.NoError(t, err)
	return op
}

// ─────────────────────────────────────────────────────────────────────────────
// Typed entry points
// ─────────────────────────────────────────────────────────────────────────────

func TestMapSlice(t *testing.T) {
	got, err := functools.MapSlice([]int{1, 2, 3}, square).Get()
	require.NoError(t, err)
	assert.Equal(t, []int{1, 4, 9}, got)
}

func TestMapSlicePositional(t *testing.T) {
	inputs := [][]int{nil, {}, {7}, {3, -1, 4, 1, -5, 9}}
	for _, in := range inputs {
		out := functools.MapSlice(in, square).Value()
		require.Len(t, out, len(in))
		for i := range in {
			assert.Equal(t, square(in[i]), out[i], "index %d", i)
		}
	}
}

func TestMapSliceChangesType(t *testing.T) {
	got := functools.MapSlice([]string{"a", "bb", "ccc"}, func(s string) int { return len(s) }).Value()
	assert.Equal(t, []int{1, 2, 3}, got)
}

func TestMapSliceDoesNotMutateInput(t *testing.T) {
	in := []int{1, 2, 3}
	functools.MapSlice(in, square)
	assert.Equal(t, []int{1, 2, 3}, in)
}

func TestMapTuple(t *testing.T) {
	in := collections.NewTuple(1, 2, 3)
	got, err := functools.MapTuple(in, func(n int) int { return n + 1 }).Get()
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3, 4}, got.All())
	assert.Equal(t, []int{1, 2, 3}, in.All())
	assert.Equal(t, "(2, 3, 4)", got.String())
}

func TestMapValues(t *testing.T) {
	d := collections.DictOf(collections.PairOf("a", 1), collections.PairOf("b", 2))
	got, err := functools.MapValues(d, func(n int) int { return n * 10 }).Get()
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, got.Keys())
	assert.Equal(t, []int{10, 20}, got.Values())
	assert.Equal(t, []int{1, 2}, d.Values(), "input must not change")
}

func TestMapKeys(t *testing.T) {
	d := collections.DictOf(collections.PairOf("a", 1), collections.PairOf("b", 2))
	got := functools.MapKeys(d, strings.ToUpper).Value()
	assert.Equal(t, []string{"A", "B"}, got.Keys())
	assert.Equal(t, []int{1, 2}, got.Values())
}

func TestMapKeysCollisionLastValueWins(t *testing.T) {
	d := collections.DictOf(
		collections.PairOf("a", 1),
		collections.PairOf("b", 2),
		collections.PairOf("A", 3),
	)
	got := functools.MapKeys(d, strings.ToLower).Value()
	assert.Equal(t, []string{"a", "b"}, got.Keys())
	assert.Equal(t, []int{3, 2}, got.Values())
}

func TestMapItems(t *testing.T) {
	d := collections.DictOf(collections.PairOf("a", "x"), collections.PairOf("b", "y"))
	got := functools.MapItems(d, strings.ToUpper).Value()
	assert.Equal(t, "{A: X, B: Y}", got.String())
}

func TestTransformDictTargets(t *testing.T) {
	d := collections.DictOf(collections.PairOf(1, 10), collections.PairOf(2, 20))
	double := func(n int) int { return n * 2 }

	tests := []struct {
		name   string
		target functools.Target
		keys   []int
		values []int
	}{
		{"default", "", []int{1, 2}, []int{20, 40}},
		{"values", functools.TargetValues, []int{1, 2}, []int{20, 40}},
		{"keys", functools.TargetKeys, []int{2, 4}, []int{10, 20}},
		{"items", functools.TargetItems, []int{2, 4}, []int{20, 40}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := functools.TransformDict(d, double, tt.target).Get()
			require.NoError(t, err)
			assert.Equal(t, tt.keys, got.Keys())
			assert.Equal(t, tt.values, got.Values())
		})
	}
}

func TestTransformDictInvalidTarget(t *testing.T) {
	d := collections.DictOf(collections.PairOf(1, 10))
	res := functools.TransformDict(d, func(n int) int { return n }, "bogus")
	require.False(t, res.IsOk())
	assert.ErrorIs(t, res.Err(), functools.ErrInvalidTarget)
	assert.Nil(t, res.Value())
	assert.Contains(t, res.String(), "processing error: invalid target")
}

func TestMapSliceRecoversPanic(t *testing.T) {
	res := functools.MapSlice([]int{1, 0}, func(n int) int { return 10 / n })
	require.Error(t, res.Err())
	assert.ErrorIs(t, res.Err(), functools.ErrCallback)

	var perr *functools.PanicError
	require.ErrorAs(t, res.Err(), &perr)
	var rerr runtime.Error
	assert.ErrorAs(t, res.Err(), &rerr)
	assert.Contains(t, res.String(), "integer divide by zero")
}

// ─────────────────────────────────────────────────────────────────────────────
// Process
// ─────────────────────────────────────────────────────────────────────────────

func TestProcessList(t *testing.T) {
	res := functools.Process([]any{1, 2, 3}, mustOp(t, "pow", 2), functools.TargetValues)
	require.NoError(t, res.Err())
	assert.Equal(t, []any{1, 4, 9}, res.Value())
	assert.Equal(t, "[1 4 9]", res.String())
}

func TestProcessListIgnoresTarget(t *testing.T) {
	res := functools.Process([]any{1}, mustOp(t, "add", 1), "bogus")
	require.NoError(t, res.Err())
	assert.Equal(t, []any{2}, res.Value())
}

func TestProcessTuple(t *testing.T) {
	res := functools.Process(collections.NewTuple[any](1, 2, 3), mustOp(t, "add", 1), "")
	require.NoError(t, res.Err())
	tup, ok := res.Value().(*collections.Tuple[any])
	require.True(t, ok, "result must stay a tuple, got %T", res.Value())
	assert.Equal(t, []any{2, 3, 4}, tup.All())
}

func TestProcessDict(t *testing.T) {
	upper := mustOp(t, "upper")
	d := anyDict("a", "x", "b", "y")

	tests := []struct {
		target functools.Target
		want   string
	}{
		{functools.TargetKeys, "{A: x, B: y}"},
		{functools.TargetValues, "{a: X, b: Y}"},
		{functools.TargetItems, "{A: X, B: Y}"},
		{"", "{a: X, b: Y}"},
	}
	for _, tt := range tests {
		t.Run(string(tt.target), func(t *testing.T) {
			res := functools.Process(d, upper, tt.target)
			require.NoError(t, res.Err())
			assert.Equal(t, tt.want, res.String())
		})
	}
	assert.Equal(t, "{a: x, b: y}", d.String())
}

func TestProcessDictInvalidTarget(t *testing.T) {
	res := functools.Process(anyDict("a", 1), mustOp(t, "identity"), "bogus")
	require.ErrorIs(t, res.Err(), functools.ErrInvalidTarget)

	var ferr *functools.Error
	require.ErrorAs(t, res.Err(), &ferr)
	assert.Equal(t, functools.OpProcess, ferr.Op)
	assert.Equal(t, functools.KindInvalidTarget, ferr.Kind)
}

func TestProcessUnsupportedType(t *testing.T) {
	inputs := []any{
		map[int]struct{}{1: {}},
		map[string]int{"a": 1},
		[]int{1, 2},
		"text",
		nil,
	}
	for _, in := range inputs {
		res := functools.Process(in, mustOp(t, "identity"), "")
		require.ErrorIs(t, res.Err(), functools.ErrUnsupportedType, "%T", in)
		assert.Contains(t, res.String(), "unsupported container type")
	}
}

func TestProcessCallbackError(t *testing.T) {
	boom := errors.New("boom")
	res := functools.Process([]any{1, 2}, func(any) (any, error) { return nil, boom }, "")
	assert.ErrorIs(t, res.Err(), functools.ErrCallback)
	assert.ErrorIs(t, res.Err(), boom)
	assert.Equal(t, "processing error: callback failed: boom", res.String())
}

func TestProcessUnhashableKey(t *testing.T) {
	toSlice := func(v any) (any, error) { return []any{v}, nil }
	res := functools.Process(anyDict("a", 1), toSlice, functools.TargetKeys)
	assert.ErrorIs(t, res.Err(), functools.ErrCallback)
	assert.Contains(t, res.String(), "unhashable")
}
