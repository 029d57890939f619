package rpn

import "errors"

// Sentinel errors
var (
	// ErrInvalidCharacter indicates a character that is neither an operand nor an operator.
	ErrInvalidCharacter = errors.New("invalid character")
	// ErrTooLong indicates an expression longer than MaxExpressionLength.
	ErrTooLong = errors.New("expression too long")
	// ErrUnbalancedFormula indicates operator and operand counts that cannot form an RPN expression.
	ErrUnbalancedFormula = errors.New("invalid formula")
	// ErrVariableCountOutOfRange indicates a variable count outside 1..26.
	ErrVariableCountOutOfRange = errors.New("variable count out of range")
	// ErrVariableOutOfRange indicates a variable letter not covered by the variable count.
	ErrVariableOutOfRange = errors.New("variable out of range")

	// ErrUnknownOperator is returned by Apply for symbols outside the operator table.
	ErrUnknownOperator = errors.New("unknown operator")
	// ErrMalformedExpression reports a stack fault while evaluating an expression
	// that passed validation.
	ErrMalformedExpression = errors.New("malformed expression")
)
