package shell

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluator_Recognized(t *testing.T) {
	eval := NewEvaluator(NewPresetStore())

	tests := []struct {
		expr string
		want float64
	}{
		{expr: "2 + 3", want: 5},
		{expr: "2 + 3 * 4", want: 14},
		{expr: "10 / 2", want: 5},
		{expr: "3 * 3", want: 9},
		{expr: "Math.PI", want: 3.14159265359},
		{expr: "Math.E", want: 2.71828182846},
		{expr: "PI", want: 3.14159265359},
		{expr: "E", want: 2.71828182846},
		{expr: "Math.sqrt(16)", want: 4},
		{expr: "Math.sqrt( 2.25 )", want: 1.5},
		{expr: "Math.sqrt(.25)", want: 0.5},
		{expr: "Math.pow(2, 8)", want: 256},
		{expr: "Math.pow(2,10)", want: 1024},
		{expr: "Math.pow(-2, 3)", want: -8},
		{expr: "Math.pow(4, 0.5)", want: 2},
		{expr: "Math.pow(1e1, 2)", want: 100},
		{expr: "Math.sqrt(16) + 1", want: 4},
		{expr: "Math.sqrt(16))", want: 4},
		{expr: "Math.sqrt(9) garbage", want: 3},
		{expr: "Math.sqrt(1, 2)", want: 1},
		{expr: "Math.pow(2, 8, 1)", want: 256},
		{expr: "42", want: 42},
		{expr: "-3.5", want: -3.5},
		{expr: "+7", want: 7},
		{expr: "1e3", want: 1000},
		{expr: ".5", want: 0.5},
		{expr: "5.", want: 5},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			got, err := eval.Evaluate(tt.expr)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEvaluator_NotRecognized(t *testing.T) {
	eval := NewEvaluator(NewPresetStore())

	tests := []string{
		"foo bar",
		"2+3",
		"2 + 4",
		"x",
		"Math.sqrt(abc)",
		"Math.sqrt(16",
		"Math.sqrt()",
		"Math.sqrt (16)",
		"Math.pow(2)",
		"Math.pow(2 8)",
		"Math.pow(2, x)",
		"Math.pow(2, 8",
		"Math.sqrt(16 + 1)",
		"Math.sqrt(abc) + 1",
		"Math.cbrt(8)",
		"12abc",
		"1e999",
		"NaN",
		"Inf",
		"0x10",
		"a == b",
	}

	for _, expr := range tests {
		t.Run(expr, func(t *testing.T) {
			got, err := eval.Evaluate(expr)
			require.ErrorIs(t, err, ErrCannotEvaluate)
			assert.Contains(t, err.Error(), expr)
			assert.Zero(t, got)
		})
	}
}

func TestEvaluator_SqrtOfNegativeIsNaN(t *testing.T) {
	eval := NewEvaluator(NewStore())

	got, err := eval.Evaluate("Math.sqrt(-1)")
	require.NoError(t, err)
	assert.True(t, math.IsNaN(got))
	assert.Equal(t, "NaN", FormatNumber(got))
}

func TestEvaluator_VariablesShadowLiterals(t *testing.T) {
	store := NewPresetStore()
	store.Set("PI", 3)
	eval := NewEvaluator(store)

	got, err := eval.Evaluate("PI")
	require.NoError(t, err)
	assert.Equal(t, 3.0, got)

	// The dotted literal is independent of the PI variable.
	got, err = eval.Evaluate("Math.PI")
	require.NoError(t, err)
	assert.Equal(t, 3.14159265359, got)
}

func TestEvaluator_ReadsLiveStore(t *testing.T) {
	store := NewStore()
	eval := NewEvaluator(store)

	_, err := eval.Evaluate("x")
	require.ErrorIs(t, err, ErrCannotEvaluate)

	store.Set("x", 10)
	got, err := eval.Evaluate("x")
	require.NoError(t, err)
	assert.Equal(t, 10.0, got)
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{in: 5, want: "5"},
		{in: 256, want: "256"},
		{in: 3.14159265359, want: "3.14159265359"},
		{in: 2.71828182846, want: "2.71828182846"},
		{in: -0.5, want: "-0.5"},
		{in: math.NaN(), want: "NaN"},
		{in: math.Inf(1), want: "+Inf"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatNumber(tt.in))
		})
	}
}
