package rpn

import (
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/ArmaanMadanmohan/RPN-Truth-Tables/stack"
	"github.com/ArmaanMadanmohan/RPN-Truth-Tables/tokenizer"
)

func results(t *testing.T, table *Table) []int {
	t.Helper()

	out := make([]int, len(table.Rows))
	for i, row := range table.Rows {
		out[i] = row.Result
	}

	return out
}

func TestEvaluate_SingleVariable(t *testing.T) {
	table, err := Evaluate(1, "a")
	assert.NoError(t, err)

	assert.Equal(t, 2, len(table.Rows))
	assert.Equal(t, []int{0}, table.Rows[0].Bits)
	assert.Equal(t, 0, table.Rows[0].Result)
	assert.Equal(t, []int{1}, table.Rows[1].Bits)
	assert.Equal(t, 1, table.Rows[1].Result)
	assert.Equal(t, []string{"a"}, table.Variables())
}

func TestEvaluate_OperatorColumns(t *testing.T) {
	tests := []struct {
		numVariables int
		expression   string
		expected     []int
	}{
		{2, "ab&", []int{0, 0, 0, 1}},
		{2, "ab|", []int{0, 1, 1, 1}},
		{1, "a-", []int{1, 0}},
		{2, "ab#", []int{0, 1, 1, 0}},
		{2, "ab=", []int{1, 0, 0, 1}},
		{2, "ab>", []int{1, 1, 0, 1}},
		{2, "ba>", []int{1, 0, 1, 1}},
		{1, "1a&", []int{0, 1}},
		{1, "0a|", []int{0, 1}},
		{1, "0-", []int{1, 1}},
		{3, "ab&c|", []int{0, 1, 0, 1, 0, 1, 1, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.expression, func(t *testing.T) {
			table, err := Evaluate(tt.numVariables, tt.expression)
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, results(t, table))
		})
	}
}

func TestEvaluate_OperatorSpotChecks(t *testing.T) {
	tests := []struct {
		expression string
		numVars    int
		assignment uint64
		expected   int
	}{
		{"ab&", 2, 0b10, 0}, // a=1 b=0
		{"ab|", 2, 0b00, 0}, // a=0 b=0
		{"a-", 1, 0b1, 0},   // a=1
		{"ab#", 2, 0b11, 0}, // a=1 b=1
		{"ab=", 2, 0b01, 0}, // a=0 b=1
		{"ab>", 2, 0b00, 1}, // a=0 b=0
	}

	for _, tt := range tests {
		t.Run(tt.expression, func(t *testing.T) {
			e, err := NewEvaluator(tt.numVars, tt.expression)
			assert.NoError(t, err)

			row, err := e.Row(tt.assignment, stack.New(0))
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, row.Result)
		})
	}
}

func TestEvaluate_RowCountAndOrder(t *testing.T) {
	for numVariables := 1; numVariables <= 10; numVariables++ {
		expression := "a"
		for v := 1; v < numVariables; v++ {
			expression += tokenizer.VariableName(v) + "#"
		}

		table, err := Evaluate(numVariables, expression)
		assert.NoError(t, err)
		assert.Equal(t, int(RowCount(numVariables)), len(table.Rows))

		for i, row := range table.Rows {
			assert.Equal(t, uint64(i), row.Assignment)
			assert.Equal(t, numVariables, len(row.Bits))
		}
	}
}

func TestEvaluate_BitMapping(t *testing.T) {
	table, err := Evaluate(3, "ab&c&")
	assert.NoError(t, err)

	// assignment 4 == 0b100: a is the most significant bit
	assert.Equal(t, []int{1, 0, 0}, table.Rows[4].Bits)
	assert.Equal(t, []int{0, 0, 1}, table.Rows[1].Bits)
}

func TestEvaluate_Trace(t *testing.T) {
	table, err := Evaluate(3, "ab&c|")
	assert.NoError(t, err)

	row := table.Rows[5] // a=1 b=0 c=1
	assert.Equal(t, []Step{{Position: 2, Value: 0}, {Position: 4, Value: 1}}, row.Trace)
	assert.Equal(t, 1, row.Result)

	table, err = Evaluate(1, "a")
	assert.NoError(t, err)
	assert.Zero(t, table.Rows[0].Trace)
}

func TestEvaluate_Idempotent(t *testing.T) {
	first, err := Evaluate(4, "ab>c-d=|")
	assert.NoError(t, err)

	second, err := Evaluate(4, "ab>c-d=|")
	assert.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestEvaluate_ValidationError(t *testing.T) {
	table, err := Evaluate(1, "z")
	assert.IsError(t, err, ErrVariableOutOfRange)
	assert.Zero(t, table)
}

func TestEvaluate_MalformedExpression(t *testing.T) {
	// balanced counts, but the operator comes before its operand
	assert.NoError(t, Validate(1, "-a"))

	table, err := Evaluate(1, "-a")
	assert.IsError(t, err, ErrMalformedExpression)
	assert.IsError(t, err, stack.ErrUnderflow)
	assert.Zero(t, table)

	_, err = Evaluate(2, "&ab")
	assert.IsError(t, err, ErrMalformedExpression)
}

func TestEvaluateRow_UnvalidatedVariable(t *testing.T) {
	tokens, err := tokenizer.Tokenize("z")
	assert.NoError(t, err)

	_, err = EvaluateRow(tokens, 1, 0, stack.New(0))
	assert.IsError(t, err, ErrMalformedExpression)
	assert.IsError(t, err, ErrVariableOutOfRange)
}

func TestEvaluateRow_LeftoverValues(t *testing.T) {
	tokens, err := tokenizer.Tokenize("ab")
	assert.NoError(t, err)

	_, err = EvaluateRow(tokens, 2, 0, stack.New(0))
	assert.IsError(t, err, ErrMalformedExpression)
}

func TestEvaluateRow_StackOverflow(t *testing.T) {
	tokens, err := tokenizer.Tokenize("abc&&")
	assert.NoError(t, err)

	_, err = EvaluateRow(tokens, 3, 0, stack.New(2))
	assert.IsError(t, err, stack.ErrOverflow)
}

func TestRows_Streaming(t *testing.T) {
	var got []int

	for row, err := range Rows(2, "ab|") {
		assert.NoError(t, err)

		got = append(got, row.Result)
	}

	assert.Equal(t, []int{0, 1, 1, 1}, got)

	count := 0

	for _, err := range Rows(2, "ab") {
		assert.IsError(t, err, ErrUnbalancedFormula)

		count++
	}

	assert.Equal(t, 1, count)
}
