package render

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"iter"

	"github.com/goccy/go-yaml"

	"github.com/ArmaanMadanmohan/RPN-Truth-Tables/rpn"
)

type report struct {
	TableID    string         `json:"table_id" yaml:"table_id"`
	Expression string         `json:"expression" yaml:"expression"`
	Variables  []string       `json:"variables" yaml:"variables"`
	Rows       []reportRow    `json:"rows" yaml:"rows"`
	Summary    *reportSummary `json:"summary,omitempty" yaml:"summary,omitempty"`
}

type reportRow struct {
	Assignment uint64       `json:"assignment" yaml:"assignment"`
	Bits       []int        `json:"bits" yaml:"bits"`
	Trace      []reportStep `json:"trace,omitempty" yaml:"trace,omitempty"`
	Result     int          `json:"result" yaml:"result"`
}

type reportStep struct {
	Position int    `json:"position" yaml:"position"`
	Operator string `json:"operator" yaml:"operator"`
	Value    int    `json:"value" yaml:"value"`
}

type reportSummary struct {
	Rows  uint64 `json:"rows" yaml:"rows"`
	True  uint64 `json:"true" yaml:"true"`
	False uint64 `json:"false" yaml:"false"`
	Ratio string `json:"ratio" yaml:"ratio"`
	Class string `json:"class" yaml:"class"`
}

func (f *Formatter) buildReport(table *rpn.Table) report {
	r := report{
		TableID:    rpn.TableID(table.NumVariables, table.Expression).String(),
		Expression: table.Expression,
		Variables:  table.Variables(),
		Rows:       make([]reportRow, len(table.Rows)),
	}

	for i, row := range table.Rows {
		out := reportRow{
			Assignment: row.Assignment,
			Bits:       row.Bits,
			Result:     row.Result,
		}

		if f.Options.Trace {
			for _, step := range row.Trace {
				out.Trace = append(out.Trace, reportStep{
					Position: step.Position + 1,
					Operator: table.Tokens[step.Position].Operator.Symbol(),
					Value:    step.Value,
				})
			}
		}

		r.Rows[i] = out
	}

	if f.Options.Summary {
		summary := rpn.Summarize(table)
		r.Summary = &reportSummary{
			Rows:  summary.Rows,
			True:  summary.True,
			False: summary.False,
			Ratio: summary.Ratio.String(),
			Class: string(summary.Class),
		}
	}

	return r
}

func (f *Formatter) formatAsJSON(table *rpn.Table, output io.Writer) error {
	encoder := json.NewEncoder(output)
	encoder.SetIndent("", "  ")

	return encoder.Encode(f.buildReport(table))
}

func (f *Formatter) formatAsYAML(table *rpn.Table, output io.Writer) error {
	data, err := yaml.Marshal(f.buildReport(table))
	if err != nil {
		return fmt.Errorf("failed to marshal table to YAML: %w", err)
	}

	_, err = output.Write(data)

	return err
}

func (f *Formatter) streamCSV(table *rpn.Table, rows iter.Seq2[rpn.Row, error], output io.Writer) error {
	writer := csv.NewWriter(output)

	header := table.Variables()
	if f.Options.Trace {
		header = append(header, operatorColumns(table)...)
	}

	header = append(header, "result")

	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for row, err := range rows {
		if err != nil {
			return err
		}

		record := bitValues(row)
		if f.Options.Trace {
			record = append(record, traceValues(row)...)
		}

		record = append(record, fmt.Sprint(row.Result))

		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	writer.Flush()

	return writer.Error()
}
