package rpn

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Classification describes how an expression behaves across all assignments.
type Classification string

const (
	Tautology     Classification = "tautology"
	Contradiction Classification = "contradiction"
	Contingent    Classification = "contingent"
)

// Summary aggregates the results of a truth table.
type Summary struct {
	TableID uuid.UUID
	Rows    uint64
	True    uint64
	False   uint64
	// Ratio is True/Rows, exact to decimal.DivisionPrecision places.
	Ratio decimal.Decimal
	Class Classification
}

// TableID returns a stable identifier for an expression over numVariables
// variables; identical inputs always map to the same UUID.
func TableID(numVariables int, expression string) uuid.UUID {
	return uuid.NewSHA1(uuid.NameSpaceOID, fmt.Appendf(nil, "%d:%s", numVariables, expression))
}

// Summarizer accumulates a Summary one row at a time, for tables that are
// streamed rather than collected.
type Summarizer struct {
	tableID uuid.UUID
	rows    uint64
	trues   uint64
}

// NewSummarizer starts an empty summary for expression over numVariables variables.
func NewSummarizer(numVariables int, expression string) *Summarizer {
	return &Summarizer{tableID: TableID(numVariables, expression)}
}

// Add counts one evaluated row.
func (s *Summarizer) Add(row Row) {
	s.rows++
	if row.Result == 1 {
		s.trues++
	}
}

// Summary returns the totals of every row added so far.
func (s *Summarizer) Summary() Summary {
	summary := Summary{
		TableID: s.tableID,
		Rows:    s.rows,
		True:    s.trues,
		False:   s.rows - s.trues,
	}

	if summary.Rows > 0 {
		summary.Ratio = decimal.NewFromInt(int64(summary.True)).Div(decimal.NewFromInt(int64(summary.Rows)))
	}

	switch {
	case summary.Rows > 0 && summary.False == 0:
		summary.Class = Tautology
	case summary.True == 0:
		summary.Class = Contradiction
	default:
		summary.Class = Contingent
	}

	return summary
}

// Summarize counts satisfying rows and classifies the expression.
func Summarize(table *Table) Summary {
	s := NewSummarizer(table.NumVariables, table.Expression)
	for _, row := range table.Rows {
		s.Add(row)
	}

	return s.Summary()
}
