package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ArmaanMadanmohan/RPN-Truth-Tables/oracle"
	"github.com/ArmaanMadanmohan/RPN-Truth-Tables/render"
	"github.com/ArmaanMadanmohan/RPN-Truth-Tables/rpn"
)

// EvalCmd represents the eval command
type EvalCmd struct {
	ExpressionArgs `embed:""`

	Format  string `short:"f" help:"Output format (text, json, yaml, csv, markdown, html, xml)"`
	Output  string `short:"o" help:"Output file (default: stdout)" type:"path"`
	Workers int    `help:"Evaluate rows on N parallel workers (0: sequential)" default:"-1"`
	Summary bool   `help:"Append row counts and classification"`
	NoTrace bool   `help:"Hide the intermediate value of each operator"`
	Color   string `help:"Color mode (auto, always, never)"`
	Verify  bool   `help:"Cross-check every row with CEL before printing"`
}

// Run executes the eval command
func (cmd *EvalCmd) Run(ctx *Context) error {
	numVariables, expression, err := cmd.parse()
	if err != nil {
		return err
	}

	config, err := LoadConfig(ctx.Config)
	if err != nil {
		return err
	}

	format := config.Output.Format
	if cmd.Format != "" {
		format = strings.ToLower(cmd.Format)
	}

	if !render.IsValidOutputFormat(format) {
		return fmt.Errorf("%w: %s", ErrInvalidOutputFormat, format)
	}

	outputPath := config.Output.File
	if cmd.Output != "" {
		outputPath = cmd.Output
	}

	workers := config.Evaluation.Workers
	if cmd.Workers >= 0 {
		workers = cmd.Workers
	}

	useColor, err := resolveColor(config, cmd.Color, outputPath != "")
	if err != nil {
		return err
	}

	options := render.Options{
		Trace:   config.Output.TraceEnabled() && !cmd.NoTrace,
		Summary: config.Output.Summary || cmd.Summary,
		Color:   useColor,
	}

	ctx.Infof("Evaluating %s over %d variable(s)", expression, numVariables)

	// Every input error, malformed expressions included, surfaces here, so
	// nothing below can fail after the first row has been written.
	evaluator, err := rpn.NewEvaluator(numVariables, expression)
	if err != nil {
		return err
	}

	rows := rowSource(ctx, evaluator, workers)

	if config.Evaluation.Verify || cmd.Verify {
		o, err := oracle.New(numVariables, expression)
		if err != nil {
			return err
		}

		checked, err := o.CheckRows(rows)
		if err != nil {
			return err
		}

		ctx.Infof("Verified %d rows against CEL", checked)
	}

	formatter := render.NewFormatter(render.OutputFormat(format), options)

	if outputPath == "" {
		return formatter.FormatRows(evaluator.Header(), rows, ctx.Stdout)
	}

	if err := writeFile(outputPath, func(w io.Writer) error { return formatter.FormatRows(evaluator.Header(), rows, w) }); err != nil {
		return err
	}

	ctx.Infof("Wrote %d rows to %s", rpn.RowCount(numVariables), outputPath)

	return nil
}

func writeFile(path string, write func(io.Writer) error) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	if err := write(file); err != nil {
		file.Close()
		return err
	}

	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close output file: %w", err)
	}

	return nil
}
