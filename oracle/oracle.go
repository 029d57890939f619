// Package oracle re-evaluates RPN expressions with CEL so truth tables
// produced by the stack machine can be cross-checked independently.
package oracle

import (
	"errors"
	"fmt"
	"iter"

	"github.com/google/cel-go/cel"

	"github.com/ArmaanMadanmohan/RPN-Truth-Tables/rpn"
	"github.com/ArmaanMadanmohan/RPN-Truth-Tables/tokenizer"
)

// Sentinel errors
var (
	ErrMismatch      = errors.New("oracle mismatch")
	ErrCompileFailed = errors.New("failed to compile CEL expression")
	ErrNotBoolean    = errors.New("CEL expression did not produce a boolean")
)

// MismatchError reports the first row where the evaluator and CEL disagree.
type MismatchError struct {
	Assignment uint64
	Bits       []int
	Expected   int // CEL result
	Actual     int // stack machine result
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("%s at assignment %v: expected %d, got %d", ErrMismatch, e.Bits, e.Expected, e.Actual)
}

func (e *MismatchError) Unwrap() error {
	return ErrMismatch
}

// Oracle holds a compiled CEL program equivalent to an RPN expression.
type Oracle struct {
	numVariables int
	source       string
	program      cel.Program
}

// New validates expression and compiles its CEL equivalent.
func New(numVariables int, expression string) (*Oracle, error) {
	if err := rpn.Validate(numVariables, expression); err != nil {
		return nil, err
	}

	tokens, err := tokenizer.Tokenize(expression)
	if err != nil {
		return nil, err
	}

	source, err := Translate(tokens)
	if err != nil {
		return nil, err
	}

	options := make([]cel.EnvOption, 0, numVariables)
	for v := range numVariables {
		options = append(options, cel.Variable(tokenizer.VariableName(v), cel.BoolType))
	}

	env, err := cel.NewEnv(options...)
	if err != nil {
		return nil, fmt.Errorf("failed to create CEL environment: %w", err)
	}

	ast, issues := env.Compile(source)
	if issues.Err() != nil {
		return nil, fmt.Errorf("%w '%s': %w", ErrCompileFailed, source, issues.Err())
	}

	program, err := env.Program(ast)
	if err != nil {
		return nil, fmt.Errorf("failed to create program for expression '%s': %w", source, err)
	}

	return &Oracle{
		numVariables: numVariables,
		source:       source,
		program:      program,
	}, nil
}

// Source returns the CEL expression the oracle evaluates.
func (o *Oracle) Source() string {
	return o.source
}

// Eval evaluates the expression for one assignment and returns 0 or 1.
func (o *Oracle) Eval(assignment uint64) (int, error) {
	activation := make(map[string]any, o.numVariables)
	for v := range o.numVariables {
		activation[tokenizer.VariableName(v)] = (assignment>>uint(o.numVariables-v-1))&1 == 1
	}

	result, _, err := o.program.Eval(activation)
	if err != nil {
		return 0, fmt.Errorf("failed to evaluate expression '%s': %w", o.source, err)
	}

	value, ok := result.Value().(bool)
	if !ok {
		return 0, fmt.Errorf("%w: %T", ErrNotBoolean, result.Value())
	}

	if value {
		return 1, nil
	}

	return 0, nil
}

// Check compares every row of table with the oracle.
func (o *Oracle) Check(table *rpn.Table) error {
	_, err := o.CheckRows(func(yield func(rpn.Row, error) bool) {
		for _, row := range table.Rows {
			if !yield(row, nil) {
				return
			}
		}
	})

	return err
}

// CheckRows compares each row yielded by rows with the oracle as it arrives
// and returns how many rows agreed. It stops at the first error or mismatch.
func (o *Oracle) CheckRows(rows iter.Seq2[rpn.Row, error]) (uint64, error) {
	var checked uint64

	for row, err := range rows {
		if err != nil {
			return checked, err
		}

		expected, err := o.Eval(row.Assignment)
		if err != nil {
			return checked, err
		}

		if expected != row.Result {
			return checked, &MismatchError{
				Assignment: row.Assignment,
				Bits:       row.Bits,
				Expected:   expected,
				Actual:     row.Result,
			}
		}

		checked++
	}

	return checked, nil
}

// Check builds an oracle for table's expression and verifies every row.
func Check(table *rpn.Table) error {
	o, err := New(table.NumVariables, table.Expression)
	if err != nil {
		return err
	}

	return o.Check(table)
}
