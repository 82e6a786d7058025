package miischeme

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xiam/miischeme/errs"
)

func TestBuiltins(t *testing.T) {
	names := Builtins()

	for _, name := range []string{"+", "-", "*", "/", "mod", "=", "bingana", "<", ">", "<=", ">=", "not", "nil", "true", "false"} {
		assert.Contains(t, names, name)
	}

	assert.IsIncreasing(t, names)
}

func TestDefn(t *testing.T) {
	Defn("answer", func(args []*Value) (*Value, error) {
		return NewInt(42), nil
	})
	defer delete(universe, "answer")

	value, err := evalString(t, NewEnvironment(), "(answer)")
	require.NoError(t, err)
	assert.Equal(t, int64(42), value.Int())
}

func TestCheckedArithmetic(t *testing.T) {
	testCases := []struct {
		Op   intOp
		A, B int64
		Out  int64
		OK   bool
	}{
		{addInt, 1, 2, 3, true},
		{addInt, math.MaxInt64, 0, math.MaxInt64, true},
		{addInt, math.MaxInt64, 1, 0, false},
		{addInt, math.MinInt64, -1, 0, false},
		{addInt, math.MinInt64, math.MaxInt64, -1, true},

		{subInt, 5, 7, -2, true},
		{subInt, math.MinInt64, 1, 0, false},
		{subInt, math.MaxInt64, -1, 0, false},
		{subInt, 0, math.MinInt64, 0, false},
		{subInt, -1, math.MinInt64, math.MaxInt64, true},

		{mulInt, 6, 7, 42, true},
		{mulInt, 0, math.MinInt64, 0, true},
		{mulInt, -1, math.MaxInt64, -math.MaxInt64, true},
		{mulInt, -1, math.MinInt64, 0, false},
		{mulInt, math.MinInt64, -1, 0, false},
		{mulInt, math.MaxInt64, 2, 0, false},
		{mulInt, 1 << 32, 1 << 31, 0, false},
	}

	for i := range testCases {
		out, ok := testCases[i].Op(testCases[i].A, testCases[i].B)
		assert.Equal(t, testCases[i].OK, ok, "case %d", i)
		if ok {
			assert.Equal(t, testCases[i].Out, out, "case %d", i)
		}
	}
}

func TestBuiltinNotANumber(t *testing.T) {
	for _, name := range []string{"+", "-", "*", "/", "mod", "<", ">", "<=", ">="} {
		fn := universe[name].Builtin()

		_, err := fn([]*Value{NewInt(1), NewSymbol("a")})
		require.Error(t, err, name)
		assert.True(t, errors.Is(err, errs.Sentinel(errs.KindRuntime, errs.MsgNotANumber)), name)
		assert.Contains(t, err.Error(), name)
	}
}

func TestBuiltinEqualOperators(t *testing.T) {
	eq := universe["="].Builtin()

	testCases := []struct {
		In  []*Value
		Out *Value
	}{
		{[]*Value{NewInt(1)}, True},
		{[]*Value{NewInt(1), NewInt(1), NewInt(1)}, True},
		{[]*Value{NewSymbol("a"), NewSymbol("a")}, True},
		{[]*Value{NewSymbol("a"), NewSymbol("b")}, False},
		{[]*Value{Nil, Nil}, True},
		{[]*Value{Nil, False}, False},
	}

	for i := range testCases {
		out, err := eq(testCases[i].In)
		require.NoError(t, err)
		assert.Equal(t, testCases[i].Out, out, "case %d", i)
	}

	_, err := eq(nil)
	assert.True(t, errors.Is(err, errs.Sentinel(errs.KindRuntime, errs.MsgMinArity)))
}
