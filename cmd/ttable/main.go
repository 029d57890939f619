package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fatih/color"
)

const version = "v0.1.0"

// Context represents the global context for commands
type Context struct {
	Config  string
	Verbose bool
	Quiet   bool
	Stdout  io.Writer
	Stderr  io.Writer
}

// Infof prints a progress message to stderr when verbose output is enabled
func (c *Context) Infof(format string, args ...any) {
	if !c.Verbose || c.Quiet {
		return
	}

	color.New(color.FgBlue).Fprintf(c.Stderr, format+"\n", args...)
}

// Warnf prints a warning to stderr unless quiet
func (c *Context) Warnf(format string, args ...any) {
	if c.Quiet {
		return
	}

	color.New(color.FgYellow).Fprintf(c.Stderr, format+"\n", args...)
}

// CLI represents the command-line interface
type CLI struct {
	Config   string      `help:"Configuration file path" default:"ttable.yaml"`
	Verbose  bool        `help:"Enable verbose output" short:"v"`
	Quiet    bool        `help:"Suppress output" short:"q"`
	Eval     EvalCmd     `cmd:"" default:"withargs" help:"Print the truth table of an RPN expression"`
	Validate ValidateCmd `cmd:"" help:"Validate an RPN expression without evaluating it"`
	Check    CheckCmd    `cmd:"" help:"Evaluate an RPN expression and cross-check every row with CEL"`
	Version  VersionCmd  `cmd:"" help:"Show version information"`
}

// VersionCmd represents the version command
type VersionCmd struct{}

// Run executes the version command
func (cmd *VersionCmd) Run(ctx *Context) error {
	_, err := fmt.Fprintln(ctx.Stdout, "ttable "+version)
	return err
}

func run(args []string, stdout, stderr io.Writer) error {
	var cli CLI

	parser, err := kong.New(&cli,
		kong.Name("ttable"),
		kong.Description("Print truth tables for boolean expressions written in Reverse Polish Notation.\n\n"+
			"Variables are a-z, literals 0 and 1, operators | (or) & (and) - (not) # (xor) = (equivalence) > (implication)."),
		kong.UsageOnError(),
		kong.Writers(stdout, stderr),
	)
	if err != nil {
		return err
	}

	kctx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	appCtx := &Context{
		Config:  cli.Config,
		Verbose: cli.Verbose,
		Quiet:   cli.Quiet,
		Stdout:  stdout,
		Stderr:  stderr,
	}

	return kctx.Run(appCtx)
}

func main() {
	err := run(os.Args[1:], os.Stdout, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
