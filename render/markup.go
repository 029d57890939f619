package render

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/beevik/etree"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/ArmaanMadanmohan/RPN-Truth-Tables/rpn"
)

func (f *Formatter) writeMarkdown(table *rpn.Table, output io.Writer) error {
	var b strings.Builder

	fmt.Fprintf(&b, "Truth table for `%s`\n\n", table.Expression)

	header := table.Variables()
	if f.Options.Trace {
		header = append(header, operatorColumns(table)...)
	}

	header = append(header, "Result")

	writeMarkdownRow(&b, header)

	separator := make([]string, len(header))
	for i := range separator {
		separator[i] = ":-:"
	}

	writeMarkdownRow(&b, separator)

	for _, row := range table.Rows {
		cells := bitValues(row)
		if f.Options.Trace {
			cells = append(cells, traceValues(row)...)
		}

		cells = append(cells, fmt.Sprintf("**%d**", row.Result))
		writeMarkdownRow(&b, cells)
	}

	if f.Options.Summary {
		summary := rpn.Summarize(table)
		fmt.Fprintf(&b, "\n%d rows, %d true, %d false, ratio %s (%s)\n",
			summary.Rows, summary.True, summary.False, summary.Ratio.String(), summary.Class)
	}

	_, err := io.WriteString(output, b.String())

	return err
}

func writeMarkdownRow(b *strings.Builder, cells []string) {
	b.WriteString("|")

	for _, cell := range cells {
		b.WriteString(" ")
		b.WriteString(strings.ReplaceAll(cell, "|", `\|`))
		b.WriteString(" |")
	}

	b.WriteString("\n")
}

func (f *Formatter) formatAsMarkdown(table *rpn.Table, output io.Writer) error {
	return f.writeMarkdown(table, output)
}

// formatAsHTML renders the markdown table through goldmark's GFM extension.
func (f *Formatter) formatAsHTML(table *rpn.Table, output io.Writer) error {
	var source bytes.Buffer
	if err := f.writeMarkdown(table, &source); err != nil {
		return err
	}

	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
		),
	)

	if err := md.Convert(source.Bytes(), output); err != nil {
		return fmt.Errorf("failed to render HTML: %w", err)
	}

	return nil
}

func (f *Formatter) formatAsXML(table *rpn.Table, output io.Writer) error {
	r := f.buildReport(table)

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("truthtable")
	root.CreateAttr("id", r.TableID)
	root.CreateAttr("expression", r.Expression)
	root.CreateAttr("variables", strings.Join(r.Variables, " "))

	for _, row := range r.Rows {
		rowElem := root.CreateElement("row")
		rowElem.CreateAttr("assignment", fmt.Sprint(row.Assignment))
		rowElem.CreateAttr("result", fmt.Sprint(row.Result))

		for i, bit := range row.Bits {
			varElem := rowElem.CreateElement("var")
			varElem.CreateAttr("name", r.Variables[i])
			varElem.SetText(fmt.Sprint(bit))
		}

		for _, step := range row.Trace {
			stepElem := rowElem.CreateElement("step")
			stepElem.CreateAttr("position", fmt.Sprint(step.Position))
			stepElem.CreateAttr("operator", step.Operator)
			stepElem.SetText(fmt.Sprint(step.Value))
		}
	}

	if r.Summary != nil {
		summaryElem := root.CreateElement("summary")
		summaryElem.CreateAttr("rows", fmt.Sprint(r.Summary.Rows))
		summaryElem.CreateAttr("true", fmt.Sprint(r.Summary.True))
		summaryElem.CreateAttr("false", fmt.Sprint(r.Summary.False))
		summaryElem.CreateAttr("ratio", r.Summary.Ratio)
		summaryElem.CreateAttr("class", r.Summary.Class)
	}

	doc.Indent(2)

	if _, err := doc.WriteTo(output); err != nil {
		return fmt.Errorf("failed to write XML: %w", err)
	}

	return nil
}
