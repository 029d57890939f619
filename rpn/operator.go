package rpn

import (
	"fmt"

	"github.com/ArmaanMadanmohan/RPN-Truth-Tables/tokenizer"
)

// Apply evaluates op. operand1 is the earlier-pushed (left) operand and
// operand2 the later-pushed (right) one. NOT only reads operand2.
func Apply(op tokenizer.Operator, operand1, operand2 int) (int, error) {
	switch op {
	case tokenizer.OR:
		return operand1 | operand2, nil
	case tokenizer.AND:
		return operand1 & operand2, nil
	case tokenizer.NOT:
		return boolToInt(operand2 == 0), nil
	case tokenizer.XOR:
		return operand1 ^ operand2, nil
	case tokenizer.EQUIVALENT:
		return boolToInt(operand1 == operand2), nil
	case tokenizer.IMPLIES:
		return boolToInt(operand1 == 0) | operand2, nil
	default:
		return 0, fmt.Errorf("%w '%c'", ErrUnknownOperator, byte(op))
	}
}

func boolToInt(b bool) int {
	if b {
		return 1
	}

	return 0
}
