package rpn

import (
	"fmt"

	"github.com/ArmaanMadanmohan/RPN-Truth-Tables/tokenizer"
)

const (
	// MaxExpressionLength is the longest accepted expression in characters.
	MaxExpressionLength = 1000
	// MinVariables and MaxVariables bound the variable count.
	MinVariables = 1
	MaxVariables = 26
)

// ErrorKind classifies a validation failure.
type ErrorKind int

const (
	InvalidCharacter ErrorKind = iota
	TooLong
	UnbalancedFormula
	VariableCountOutOfRange
	VariableOutOfRange
)

func (k ErrorKind) String() string {
	switch k {
	case InvalidCharacter:
		return "InvalidCharacter"
	case TooLong:
		return "TooLong"
	case UnbalancedFormula:
		return "UnbalancedFormula"
	case VariableCountOutOfRange:
		return "VariableCountOutOfRange"
	case VariableOutOfRange:
		return "VariableOutOfRange"
	default:
		return "Unknown"
	}
}

func (k ErrorKind) sentinel() error {
	switch k {
	case InvalidCharacter:
		return ErrInvalidCharacter
	case TooLong:
		return ErrTooLong
	case UnbalancedFormula:
		return ErrUnbalancedFormula
	case VariableCountOutOfRange:
		return ErrVariableCountOutOfRange
	default:
		return ErrVariableOutOfRange
	}
}

// ValidationError describes why an expression was rejected.
// Position is the 0-based offset of the offending character, or -1 when the
// failure is not tied to a single character.
type ValidationError struct {
	Kind     ErrorKind
	Position int
	Char     byte
	Message  string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Unwrap allows errors.Is against the package sentinels.
func (e *ValidationError) Unwrap() error {
	return e.Kind.sentinel()
}

// Validate checks that expression is a well-formed RPN expression over
// numVariables variables. The first failing check determines the result:
// characters and length (one scan), operator balance, variable count and
// finally variable range.
func Validate(numVariables int, expression string) error {
	var operands, operators int

	for i := 0; i < len(expression); i++ {
		token := tokenizer.Classify(expression[i], i)

		switch {
		case token.Type == tokenizer.INVALID:
			return &ValidationError{Kind: InvalidCharacter, Position: i, Char: token.Char, Message: "Invalid character."}
		case token.IsOperand():
			operands++
		case token.Operator != tokenizer.NOT:
			operators++
		}

		if i+1 > MaxExpressionLength {
			return &ValidationError{
				Kind:     TooLong,
				Position: i,
				Char:     token.Char,
				Message:  fmt.Sprintf("Invalid string. Must be no greater than %d characters.", MaxExpressionLength),
			}
		}
	}

	if operators != operands-1 {
		return &ValidationError{Kind: UnbalancedFormula, Position: -1, Message: "Invalid formula."}
	}

	if numVariables < MinVariables || numVariables > MaxVariables {
		return &ValidationError{
			Kind:     VariableCountOutOfRange,
			Position: -1,
			Message:  fmt.Sprintf("Invalid number of variables. Must be between %d-%d inclusive.", MinVariables, MaxVariables),
		}
	}

	for i := 0; i < len(expression); i++ {
		token := tokenizer.Classify(expression[i], i)
		if token.Type == tokenizer.VARIABLE && token.Index >= numVariables {
			return &ValidationError{
				Kind:     VariableOutOfRange,
				Position: i,
				Char:     token.Char,
				Message: fmt.Sprintf("Invalid variable '%c' at position %d. Only %s are available.",
					token.Char, i+1, variableRange(numVariables)),
			}
		}
	}

	return nil
}

func variableRange(numVariables int) string {
	if numVariables == 1 {
		return "a"
	}

	return "a-" + tokenizer.VariableName(numVariables-1)
}
