package rpn

import (
	"fmt"
	"iter"

	"github.com/ArmaanMadanmohan/RPN-Truth-Tables/stack"
	"github.com/ArmaanMadanmohan/RPN-Truth-Tables/tokenizer"
)

// Step is the value an operator produced at Position while scanning a row.
type Step struct {
	Position int
	Value    int
}

// Row is one line of the truth table.
type Row struct {
	Assignment uint64
	Bits       []int // Bits[v] is the value of variable v ('a' == 0)
	Trace      []Step
	Result     int
}

// Table is a fully evaluated truth table.
type Table struct {
	NumVariables int
	Expression   string
	Tokens       []tokenizer.Token
	Rows         []Row
}

// Variables returns the variable names in column order.
func (t *Table) Variables() []string {
	return variableNames(t.NumVariables)
}

// RowCount returns the number of assignments for numVariables variables.
func RowCount(numVariables int) uint64 {
	return uint64(1) << uint(numVariables)
}

// Evaluator evaluates a validated expression row by row.
type Evaluator struct {
	numVariables int
	expression   string
	tokens       []tokenizer.Token
}

// NewEvaluator validates expression and prepares it for evaluation.
func NewEvaluator(numVariables int, expression string) (*Evaluator, error) {
	if err := Validate(numVariables, expression); err != nil {
		return nil, err
	}

	tokens, err := tokenizer.Tokenize(expression)
	if err != nil {
		return nil, err
	}

	// Stack depth depends only on the token sequence, so a malformed
	// expression fails on the first assignment exactly as on every other.
	if _, err := EvaluateRow(tokens, numVariables, 0, stack.New(stack.DefaultCapacity)); err != nil {
		return nil, err
	}

	return &Evaluator{
		numVariables: numVariables,
		expression:   expression,
		tokens:       tokens,
	}, nil
}

func (e *Evaluator) NumVariables() int {
	return e.numVariables
}

func (e *Evaluator) Expression() string {
	return e.expression
}

func (e *Evaluator) Tokens() []tokenizer.Token {
	return e.tokens
}

func (e *Evaluator) Variables() []string {
	return variableNames(e.numVariables)
}

// Row evaluates a single assignment using s as scratch space. s is reset first.
func (e *Evaluator) Row(assignment uint64, s *stack.Stack) (Row, error) {
	return EvaluateRow(e.tokens, e.numVariables, assignment, s)
}

// Rows yields every row in ascending assignment order, reusing one stack.
// Iteration stops after the first error.
func (e *Evaluator) Rows() iter.Seq2[Row, error] {
	return func(yield func(Row, error) bool) {
		s := stack.New(stack.DefaultCapacity)
		total := RowCount(e.numVariables)

		for i := uint64(0); i < total; i++ {
			row, err := e.Row(i, s)
			if !yield(row, err) || err != nil {
				return
			}
		}
	}
}

// Table evaluates every row and collects them. Rows grows as it goes; callers
// that only need to print or count rows should range over Rows instead.
func (e *Evaluator) Table() (*Table, error) {
	table := e.Header()

	for row, err := range e.Rows() {
		if err != nil {
			return nil, err
		}

		table.Rows = append(table.Rows, row)
	}

	return table, nil
}

// Header returns the table's metadata with no rows.
func (e *Evaluator) Header() *Table {
	return &Table{
		NumVariables: e.numVariables,
		Expression:   e.expression,
		Tokens:       e.tokens,
	}
}

// Evaluate validates expression and returns its complete truth table.
func Evaluate(numVariables int, expression string) (*Table, error) {
	e, err := NewEvaluator(numVariables, expression)
	if err != nil {
		return nil, err
	}

	return e.Table()
}

// Rows validates expression and streams its rows. A validation failure is
// yielded once as the error of an empty row.
func Rows(numVariables int, expression string) iter.Seq2[Row, error] {
	e, err := NewEvaluator(numVariables, expression)
	if err != nil {
		return func(yield func(Row, error) bool) {
			yield(Row{}, err)
		}
	}

	return e.Rows()
}

// EvaluateRow runs the stack machine over tokens for one assignment.
// tokens must come from an expression that passed Validate.
func EvaluateRow(tokens []tokenizer.Token, numVariables int, assignment uint64, s *stack.Stack) (Row, error) {
	s.Reset()

	row := Row{
		Assignment: assignment,
		Bits:       assignmentBits(assignment, numVariables),
	}

	for _, token := range tokens {
		switch token.Type {
		case tokenizer.VARIABLE:
			if token.Index >= numVariables {
				return Row{}, fmt.Errorf("%w: %w '%c' at position %d", ErrMalformedExpression, ErrVariableOutOfRange, token.Char, token.Position+1)
			}

			if err := s.Push(row.Bits[token.Index]); err != nil {
				return Row{}, malformed(token, err)
			}
		case tokenizer.LITERAL:
			if err := s.Push(token.Value); err != nil {
				return Row{}, malformed(token, err)
			}
		case tokenizer.OPERATOR:
			operand2, err := s.Pop()
			if err != nil {
				return Row{}, malformed(token, err)
			}

			operand1 := 0
			if token.Operator.Arity() == 2 {
				operand1, err = s.Pop()
				if err != nil {
					return Row{}, malformed(token, err)
				}
			}

			result, err := Apply(token.Operator, operand1, operand2)
			if err != nil {
				return Row{}, malformed(token, err)
			}

			if err := s.Push(result); err != nil {
				return Row{}, malformed(token, err)
			}

			row.Trace = append(row.Trace, Step{Position: token.Position, Value: result})
		default:
			return Row{}, fmt.Errorf("%w: %w '%c' at position %d", ErrMalformedExpression, ErrInvalidCharacter, token.Char, token.Position+1)
		}
	}

	result, err := s.Pop()
	if err != nil {
		return Row{}, fmt.Errorf("%w: %w", ErrMalformedExpression, err)
	}

	if !s.IsEmpty() {
		return Row{}, fmt.Errorf("%w: %d values left on stack", ErrMalformedExpression, s.Len()+1)
	}

	row.Result = result

	return row, nil
}

// assignmentBits maps an assignment to per-variable values; variable 'a' is
// the most significant of the numVariables bits.
func assignmentBits(assignment uint64, numVariables int) []int {
	bits := make([]int, numVariables)
	for v := range numVariables {
		bits[v] = int((assignment >> uint(numVariables-v-1)) & 1)
	}

	return bits
}

func variableNames(numVariables int) []string {
	names := make([]string, numVariables)
	for i := range numVariables {
		names[i] = tokenizer.VariableName(i)
	}

	return names
}

func malformed(token tokenizer.Token, err error) error {
	return fmt.Errorf("%w: '%c' at position %d: %w", ErrMalformedExpression, token.Char, token.Position+1, err)
}
