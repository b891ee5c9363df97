package expr_test

import (
	"errors"
	"strings"
	"testing"

	"devsecops-app/core/expr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEval(t *testing.T) {
	tests := []struct {
		input string
		want  float64
	}{
		{"1+1", 2},
		{"2+2", 4},
		{" 2 + 3 * 4 ", 14},
		{"(2 + 3) * 4", 20},
		{"10 - 4 - 3", 3},
		{"100 / 10 / 5", 2},
		{"7 % 3", 1},
		{"-5 % 3", -2},
		{"2 ** 10", 1024},
		{"2 ** 3 ** 2", 512},
		{"2 ** -1", 0.5},
		{"-2 ** 2", -4},
		{"(-2) ** 2", 4},
		{"--3", 3},
		{"+-+3", -3},
		{"1.5 * 2", 3},
		{".5 + 3.", 3.5},
		{"1e3", 1000},
		{"2.5E-1 * 4", 1},
		{"((((1))))", 1},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := expr.Eval(tt.input)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestEval_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		kind  expr.Kind
	}{
		{"OnlyOperators", "+++", expr.KindSyntax},
		{"Empty", "", expr.KindSyntax},
		{"Blank", "   ", expr.KindSyntax},
		{"TrailingOperator", "1+", expr.KindSyntax},
		{"UnclosedParen", "(1+2", expr.KindSyntax},
		{"StrayParen", "1+2)", expr.KindSyntax},
		{"EmptyParens", "()", expr.KindSyntax},
		{"Identifier", "process.exit()", expr.KindSyntax},
		{"Call", "require('fs')", expr.KindSyntax},
		{"AdjacentNumbers", "2 3", expr.KindSyntax},
		{"DoubleDot", "1.2.3", expr.KindSyntax},
		{"LoneDot", ".", expr.KindSyntax},
		{"BadExponent", "1e", expr.KindSyntax},
		{"NumberThenLetter", "12abc", expr.KindSyntax},
		{"DivisionByZero", "1/0", expr.KindRange},
		{"ModuloByZero", "5 % (2-2)", expr.KindRange},
		{"Overflow", "10 ** 400", expr.KindRange},
		{"TooDeep", strings.Repeat("(", expr.MaxDepth+1) + "1" + strings.Repeat(")", expr.MaxDepth+1), expr.KindRange},
		{"TooLong", strings.Repeat("1+", expr.MaxInputLength) + "1", expr.KindRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := expr.Eval(tt.input)
			require.Error(t, err)

			var evalErr *expr.Error
			require.True(t, errors.As(err, &evalErr))
			assert.Equal(t, tt.kind, evalErr.Kind)
			assert.True(t, strings.HasPrefix(err.Error(), string(tt.kind)+": "))
		})
	}
}

func TestEval_ErrorPosition(t *testing.T) {
	_, err := expr.Eval("1 + * 2")

	var evalErr *expr.Error
	require.ErrorAs(t, err, &evalErr)
	assert.Equal(t, 4, evalErr.Pos)
	assert.Equal(t, "SyntaxError: unexpected token '*' at position 4", err.Error())
}
