package main

import (
	"github.com/fatih/color"

	"github.com/ArmaanMadanmohan/RPN-Truth-Tables/oracle"
	"github.com/ArmaanMadanmohan/RPN-Truth-Tables/rpn"
)

// CheckCmd represents the check command
type CheckCmd struct {
	ExpressionArgs `embed:""`

	Workers int    `help:"Evaluate rows on N parallel workers (0: sequential)" default:"0"`
	Color   string `help:"Color mode (auto, always, never)"`
}

// Run executes the check command
func (cmd *CheckCmd) Run(ctx *Context) error {
	numVariables, expression, err := cmd.parse()
	if err != nil {
		return err
	}

	config, err := LoadConfig(ctx.Config)
	if err != nil {
		return err
	}

	useColor, err := resolveColor(config, cmd.Color, false)
	if err != nil {
		return err
	}

	evaluator, err := rpn.NewEvaluator(numVariables, expression)
	if err != nil {
		return err
	}

	o, err := oracle.New(numVariables, expression)
	if err != nil {
		return err
	}

	ctx.Infof("CEL expression: %s", o.Source())

	summarizer := rpn.NewSummarizer(numVariables, expression)
	if _, err := o.CheckRows(tally(rowSource(ctx, evaluator, cmd.Workers), summarizer)); err != nil {
		return err
	}

	if !ctx.Quiet {
		summary := summarizer.Summary()
		statusColor(useColor, color.FgGreen).Fprintf(ctx.Stdout, "OK: %d rows agree with %s (%s)\n",
			summary.Rows, o.Source(), summary.Class)
	}

	return nil
}
