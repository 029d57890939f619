package tokenizer

import "errors"

// Sentinel errors
var (
	ErrUnexpectedCharacter = errors.New("unexpected character")
)

// TokenType represents the type of a token
type TokenType int

const (
	INVALID  TokenType = iota
	VARIABLE           // a..z
	LITERAL            // 0, 1
	OPERATOR           // | & - # = >
)

// String returns the string representation of TokenType
func (t TokenType) String() string {
	switch t {
	case INVALID:
		return "INVALID"
	case VARIABLE:
		return "VARIABLE"
	case LITERAL:
		return "LITERAL"
	case OPERATOR:
		return "OPERATOR"
	default:
		return "UNKNOWN"
	}
}

// Operator is a boolean operator symbol.
type Operator byte

const (
	OR         Operator = '|'
	AND        Operator = '&'
	NOT        Operator = '-'
	XOR        Operator = '#'
	EQUIVALENT Operator = '='
	IMPLIES    Operator = '>'
)

// Operators lists the operator vocabulary in table order.
var Operators = []Operator{OR, AND, NOT, XOR, EQUIVALENT, IMPLIES}

// LookupOperator reports whether c is a known operator symbol.
func LookupOperator(c byte) (Operator, bool) {
	switch op := Operator(c); op {
	case OR, AND, NOT, XOR, EQUIVALENT, IMPLIES:
		return op, true
	default:
		return 0, false
	}
}

// Arity returns how many operands the operator consumes.
func (o Operator) Arity() int {
	if o == NOT {
		return 1
	}

	return 2
}

// Symbol returns the operator as it is written in an expression.
func (o Operator) Symbol() string {
	return string(rune(o))
}

// String returns the operator name
func (o Operator) String() string {
	switch o {
	case OR:
		return "OR"
	case AND:
		return "AND"
	case NOT:
		return "NOT"
	case XOR:
		return "XOR"
	case EQUIVALENT:
		return "EQUIVALENT"
	case IMPLIES:
		return "IMPLIES"
	default:
		return "UNKNOWN"
	}
}

// Token is one character of an RPN expression.
type Token struct {
	Type     TokenType
	Char     byte
	Position int // 0-based byte offset

	Index    int // variable index, 'a' == 0
	Value    int // literal value
	Operator Operator
}

// IsOperand reports whether the token pushes a value.
func (t Token) IsOperand() bool {
	return t.Type == VARIABLE || t.Type == LITERAL
}

// String returns the string representation of Token
func (t Token) String() string {
	return t.Type.String() + ": " + string(rune(t.Char))
}

// VariableName returns the letter for a variable index.
func VariableName(index int) string {
	return string(rune('a' + index))
}
