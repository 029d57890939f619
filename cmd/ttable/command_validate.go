package main

import (
	"github.com/fatih/color"

	"github.com/ArmaanMadanmohan/RPN-Truth-Tables/rpn"
)

// ValidateCmd represents the validate command
type ValidateCmd struct {
	ExpressionArgs `embed:""`

	Color string `help:"Color mode (auto, always, never)"`
}

// Run executes the validate command
func (cmd *ValidateCmd) Run(ctx *Context) error {
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

	ctx.Infof("Validating %s over %d variable(s)", expression, numVariables)

	if err := rpn.Validate(numVariables, expression); err != nil {
		return err
	}

	if !ctx.Quiet {
		statusColor(useColor, color.FgGreen).Fprintf(ctx.Stdout, "Valid expression: %s (%d variable(s), %d rows)\n",
			expression, numVariables, rpn.RowCount(numVariables))
	}

	return nil
}
