// Package render turns evaluated truth tables into text, data and markup formats.
package render

import (
	"errors"
	"fmt"
	"io"
	"iter"
	"slices"
	"strings"

	"github.com/ArmaanMadanmohan/RPN-Truth-Tables/rpn"
)

var ErrInvalidOutputFormat = errors.New("invalid output format")

// OutputFormat represents the supported output formats
type OutputFormat string

const (
	FormatText     OutputFormat = "text"
	FormatJSON     OutputFormat = "json"
	FormatYAML     OutputFormat = "yaml"
	FormatCSV      OutputFormat = "csv"
	FormatMarkdown OutputFormat = "markdown"
	FormatHTML     OutputFormat = "html"
	FormatXML      OutputFormat = "xml"
)

var allFormats = []OutputFormat{FormatText, FormatJSON, FormatYAML, FormatCSV, FormatMarkdown, FormatHTML, FormatXML}

// Options tune what a Formatter emits.
type Options struct {
	// Trace includes the intermediate value of every operator.
	Trace bool
	// Summary appends row counts and the classification.
	Summary bool
	// Color highlights results in text output.
	Color bool
}

// Formatter formats truth tables
type Formatter struct {
	OutputFormat OutputFormat
	Options      Options
}

// NewFormatter creates a new table formatter
func NewFormatter(format OutputFormat, options Options) *Formatter {
	return &Formatter{
		OutputFormat: format,
		Options:      options,
	}
}

// Format writes table to output in the configured format
func (f *Formatter) Format(table *rpn.Table, output io.Writer) error {
	switch f.OutputFormat {
	case FormatText:
		return f.streamText(table, tableRows(table), output)
	case FormatJSON:
		return f.formatAsJSON(table, output)
	case FormatYAML:
		return f.formatAsYAML(table, output)
	case FormatCSV:
		return f.streamCSV(table, tableRows(table), output)
	case FormatMarkdown:
		return f.formatAsMarkdown(table, output)
	case FormatHTML:
		return f.formatAsHTML(table, output)
	case FormatXML:
		return f.formatAsXML(table, output)
	default:
		return fmt.Errorf("%w: %s", ErrInvalidOutputFormat, f.OutputFormat)
	}
}

// FormatRows writes the rows yielded by rows under the columns of header,
// whose Rows are ignored. Text and CSV are written as rows arrive, so a table
// of any size is printed in constant memory; the document formats collect the
// rows first. The first error from rows is returned as is.
func (f *Formatter) FormatRows(header *rpn.Table, rows iter.Seq2[rpn.Row, error], output io.Writer) error {
	switch f.OutputFormat {
	case FormatText:
		return f.streamText(header, rows, output)
	case FormatCSV:
		return f.streamCSV(header, rows, output)
	}

	if !slices.Contains(allFormats, f.OutputFormat) {
		return fmt.Errorf("%w: %s", ErrInvalidOutputFormat, f.OutputFormat)
	}

	table := *header
	table.Rows = nil

	for row, err := range rows {
		if err != nil {
			return err
		}

		table.Rows = append(table.Rows, row)
	}

	return f.Format(&table, output)
}

func tableRows(table *rpn.Table) iter.Seq2[rpn.Row, error] {
	return func(yield func(rpn.Row, error) bool) {
		for _, row := range table.Rows {
			if !yield(row, nil) {
				return
			}
		}
	}
}

// IsValidOutputFormat checks if the output format is valid
func IsValidOutputFormat(format string) bool {
	f := OutputFormat(strings.ToLower(format))
	for _, known := range allFormats {
		if f == known {
			return true
		}
	}

	return false
}

// Formats returns the names of all supported formats.
func Formats() []string {
	names := make([]string, len(allFormats))
	for i, f := range allFormats {
		names[i] = string(f)
	}

	return names
}

// operatorColumns returns a label for each operator position, e.g. "&@3".
func operatorColumns(table *rpn.Table) []string {
	var columns []string

	for _, token := range table.Tokens {
		if token.IsOperand() {
			continue
		}

		columns = append(columns, fmt.Sprintf("%s@%d", token.Operator.Symbol(), token.Position+1))
	}

	return columns
}

func traceValues(row rpn.Row) []string {
	values := make([]string, len(row.Trace))
	for i, step := range row.Trace {
		values[i] = fmt.Sprint(step.Value)
	}

	return values
}

func bitValues(row rpn.Row) []string {
	values := make([]string, len(row.Bits))
	for i, bit := range row.Bits {
		values[i] = fmt.Sprint(bit)
	}

	return values
}
