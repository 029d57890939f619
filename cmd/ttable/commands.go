package main

import (
	"context"
	"fmt"
	"iter"
	"math"

	"github.com/fatih/color"

	ttable "github.com/ArmaanMadanmohan/RPN-Truth-Tables"
	"github.com/ArmaanMadanmohan/RPN-Truth-Tables/rpn"
)

// ExpressionArgs holds the positional arguments shared by every table command
type ExpressionArgs struct {
	Args []string `arg:"" optional:"" name:"args" help:"<num-variables> <expression>: number of variables (1-26) and the RPN expression"`
}

// parse returns the variable count and expression from the two positional
// arguments. Any other argument count is rejected. The count is read like C's
// atoi, so a non-numeric count becomes 0 and is reported by validation.
func (a *ExpressionArgs) parse() (int, string, error) {
	if len(a.Args) != 2 {
		return 0, "", &ArgumentCountError{Got: len(a.Args)}
	}

	return atoi(a.Args[0]), a.Args[1], nil
}

// atoi parses optional leading whitespace, an optional sign and the longest
// run of digits that follows, ignoring the rest. Values beyond int32
// saturate.
func atoi(s string) int {
	i := 0
	for i < len(s) && (s[i] == ' ' || (s[i] >= '\t' && s[i] <= '\r')) {
		i++
	}

	sign := int64(1)
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		if s[i] == '-' {
			sign = -1
		}

		i++
	}

	var n int64
	for ; i < len(s) && s[i] >= '0' && s[i] <= '9'; i++ {
		if n <= math.MaxInt32 {
			n = n*10 + int64(s[i]-'0')
		}
	}

	return int(sign * min(n, math.MaxInt32))
}

// LoadConfig loads configuration from the specified file
func LoadConfig(configPath string) (*ttable.Config, error) {
	config, err := ttable.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	return config, nil
}

// resolveColor picks the color mode from flag, falling back to the config.
func resolveColor(config *ttable.Config, flag string, toFile bool) (bool, error) {
	mode := config.Output.Color
	if flag != "" {
		mode = flag
	}

	return colorEnabled(mode, toFile)
}

// colorEnabled resolves a color mode; "auto" follows fatih/color's terminal detection
// and is always off when writing to a file.
func colorEnabled(mode string, toFile bool) (bool, error) {
	switch mode {
	case ttable.ColorAlways:
		return true, nil
	case ttable.ColorNever:
		return false, nil
	case ttable.ColorAuto, "":
		return !toFile && !color.NoColor, nil
	default:
		return false, fmt.Errorf("%w: %s", ErrInvalidColorMode, mode)
	}
}

func statusColor(enabled bool, attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	if enabled {
		c.EnableColor()
	} else {
		c.DisableColor()
	}

	return c
}

// rowSource returns a row iterator for evaluator: sequential for workers == 0,
// otherwise split across workers goroutines. Each call of the returned
// iterator evaluates the table again from the first row.
func rowSource(ctx *Context, evaluator *rpn.Evaluator, workers int) iter.Seq2[rpn.Row, error] {
	if workers <= 0 {
		return evaluator.Rows()
	}

	if used := evaluator.Workers(workers); used < workers {
		ctx.Warnf("Requested %d workers but the table has only %d rows; using %d", workers, rpn.RowCount(evaluator.NumVariables()), used)
	}

	return evaluator.RowsParallel(context.Background(), workers)
}

// tally counts every row passing through rows into s.
func tally(rows iter.Seq2[rpn.Row, error], s *rpn.Summarizer) iter.Seq2[rpn.Row, error] {
	return func(yield func(rpn.Row, error) bool) {
		for row, err := range rows {
			if err == nil {
				s.Add(row)
			}

			if !yield(row, err) {
				return
			}
		}
	}
}
