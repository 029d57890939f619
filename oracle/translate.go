package oracle

import (
	"fmt"

	"github.com/ArmaanMadanmohan/RPN-Truth-Tables/rpn"
	"github.com/ArmaanMadanmohan/RPN-Truth-Tables/tokenizer"
)

// Translate rewrites RPN tokens as a fully parenthesised CEL boolean expression.
func Translate(tokens []tokenizer.Token) (string, error) {
	var operands []string

	pop := func(token tokenizer.Token) (string, error) {
		if len(operands) == 0 {
			return "", fmt.Errorf("%w: '%c' at position %d lacks an operand", rpn.ErrMalformedExpression, token.Char, token.Position+1)
		}

		top := operands[len(operands)-1]
		operands = operands[:len(operands)-1]

		return top, nil
	}

	for _, token := range tokens {
		switch token.Type {
		case tokenizer.VARIABLE:
			operands = append(operands, tokenizer.VariableName(token.Index))
		case tokenizer.LITERAL:
			if token.Value == 1 {
				operands = append(operands, "true")
			} else {
				operands = append(operands, "false")
			}
		case tokenizer.OPERATOR:
			right, err := pop(token)
			if err != nil {
				return "", err
			}

			if token.Operator == tokenizer.NOT {
				operands = append(operands, "!"+right)

				continue
			}

			left, err := pop(token)
			if err != nil {
				return "", err
			}

			operands = append(operands, binary(token.Operator, left, right))
		default:
			return "", fmt.Errorf("%w '%c' at position %d", rpn.ErrInvalidCharacter, token.Char, token.Position+1)
		}
	}

	if len(operands) != 1 {
		return "", fmt.Errorf("%w: %d operands left after translation", rpn.ErrMalformedExpression, len(operands))
	}

	return operands[0], nil
}

func binary(op tokenizer.Operator, left, right string) string {
	switch op {
	case tokenizer.OR:
		return "(" + left + " || " + right + ")"
	case tokenizer.AND:
		return "(" + left + " && " + right + ")"
	case tokenizer.XOR:
		return "(" + left + " != " + right + ")"
	case tokenizer.EQUIVALENT:
		return "(" + left + " == " + right + ")"
	default: // IMPLIES
		return "(!" + left + " || " + right + ")"
	}
}
