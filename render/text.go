package render

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/ArmaanMadanmohan/RPN-Truth-Tables/rpn"
)

// headerPadding is the number of '=' characters under the header beyond the
// variable and expression columns.
const headerPadding = 11

// streamText writes each row as it is yielded; only the summary counters
// outlive a row.
func (f *Formatter) streamText(table *rpn.Table, rows iter.Seq2[rpn.Row, error], output io.Writer) error {
	w := bufio.NewWriter(output)

	trueColor := color.New(color.FgGreen, color.Bold)
	falseColor := color.New(color.FgRed)

	if f.Options.Color {
		trueColor.EnableColor()
		falseColor.EnableColor()
	} else {
		trueColor.DisableColor()
		falseColor.DisableColor()
	}

	writeTextHeader(w, table)

	summarizer := rpn.NewSummarizer(table.NumVariables, table.Expression)

	for row, err := range rows {
		if err != nil {
			return err
		}

		summarizer.Add(row)

		for _, bit := range row.Bits {
			fmt.Fprintf(w, "%d ", bit)
		}

		w.WriteString(": ")

		step := 0

		for _, token := range table.Tokens {
			if token.IsOperand() {
				w.WriteByte(' ')

				continue
			}

			if f.Options.Trace && step < len(row.Trace) {
				fmt.Fprintf(w, "%d", row.Trace[step].Value)
			} else {
				w.WriteByte(' ')
			}

			step++
		}

		result := falseColor.Sprint(row.Result)
		if row.Result == 1 {
			result = trueColor.Sprint(row.Result)
		}

		fmt.Fprintf(w, " :   %s\n", result)
	}

	if f.Options.Summary {
		summary := summarizer.Summary()
		caser := cases.Title(language.English)

		fmt.Fprintf(w, "\n%s: %d of %d rows true (ratio %s)\n",
			caser.String(string(summary.Class)), summary.True, summary.Rows, summary.Ratio.String())
	}

	return w.Flush()
}

func writeTextHeader(w *bufio.Writer, table *rpn.Table) {
	for _, name := range table.Variables() {
		fmt.Fprintf(w, "%s ", name)
	}

	fmt.Fprintf(w, ": %s : Result\n", table.Expression)

	width := headerPadding + 2*table.NumVariables + len(table.Expression)
	w.WriteString(strings.Repeat("=", width))
	w.WriteByte('\n')
}
