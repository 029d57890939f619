package rpn

import (
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/ArmaanMadanmohan/RPN-Truth-Tables/tokenizer"
)

func TestApply(t *testing.T) {
	// expected results indexed by (operand1<<1 | operand2)
	tests := []struct {
		op       tokenizer.Operator
		expected [4]int
	}{
		{tokenizer.OR, [4]int{0, 1, 1, 1}},
		{tokenizer.AND, [4]int{0, 0, 0, 1}},
		{tokenizer.XOR, [4]int{0, 1, 1, 0}},
		{tokenizer.EQUIVALENT, [4]int{1, 0, 0, 1}},
		{tokenizer.IMPLIES, [4]int{1, 1, 0, 1}},
		{tokenizer.NOT, [4]int{1, 0, 1, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.op.String(), func(t *testing.T) {
			for operand1 := range 2 {
				for operand2 := range 2 {
					result, err := Apply(tt.op, operand1, operand2)
					assert.NoError(t, err)
					assert.Equal(t, tt.expected[operand1<<1|operand2], result, "%d %s %d", operand1, tt.op.Symbol(), operand2)
				}
			}
		})
	}
}

func TestApplyUnknownOperator(t *testing.T) {
	result, err := Apply(tokenizer.Operator('+'), 1, 1)
	assert.IsError(t, err, ErrUnknownOperator)
	assert.Equal(t, 0, result)
}
