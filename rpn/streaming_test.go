package rpn

import (
	"context"
	"iter"
	"runtime"
	"testing"

	"github.com/alecthomas/assert/v2"
)

// streamingHeapLimit is far below what collecting 2^20 rows would take
// (several hundred MiB) yet well above one parallel batch.
const streamingHeapLimit = 64 << 20

func liveHeap() int64 {
	runtime.GC()

	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	return int64(m.HeapAlloc)
}

func TestRows_ConstantMemory(t *testing.T) {
	const numVariables = 20

	e, err := NewEvaluator(numVariables, "ab&cd&|ef#-&")
	assert.NoError(t, err)

	tests := []struct {
		name string
		rows func() iter.Seq2[Row, error]
	}{
		{"Sequential", e.Rows},
		{"Parallel", func() iter.Seq2[Row, error] { return e.RowsParallel(context.Background(), 4) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := liveHeap()
			total := RowCount(numVariables)

			var count uint64

			var atLastRow int64

			for row, err := range tt.rows() {
				if err != nil {
					t.Fatal(err)
				}

				if row.Assignment != count {
					t.Fatalf("row %d has assignment %d", count, row.Assignment)
				}

				count++
				if count == total {
					atLastRow = liveHeap()
				}
			}

			assert.Equal(t, total, count)
			assert.True(t, atLastRow-before < streamingHeapLimit, "heap grew by %d bytes", atLastRow-before)
		})
	}
}

func TestRowsParallel_CrossesBatches(t *testing.T) {
	// Two workers take two batches of 2*batchRowsPerWorker rows each.
	const numVariables = 16

	e, err := NewEvaluator(numVariables, "ap#")
	assert.NoError(t, err)

	var sequential, parallel []int

	for row, err := range e.Rows() {
		assert.NoError(t, err)

		sequential = append(sequential, row.Result)
	}

	for row, err := range e.RowsParallel(context.Background(), 2) {
		assert.NoError(t, err)

		parallel = append(parallel, row.Result)
	}

	assert.Equal(t, int(RowCount(numVariables)), len(parallel))
	assert.Equal(t, sequential, parallel)
}

func TestRowsParallel_StopsEarly(t *testing.T) {
	e, err := NewEvaluator(4, "ab|")
	assert.NoError(t, err)

	count := 0

	for range e.RowsParallel(context.Background(), 2) {
		count++
		if count == 3 {
			break
		}
	}

	assert.Equal(t, 3, count)
}

func TestEvaluator_Workers(t *testing.T) {
	e, err := NewEvaluator(2, "ab&")
	assert.NoError(t, err)

	assert.Equal(t, 3, e.Workers(3))
	assert.Equal(t, 4, e.Workers(16))
	assert.Equal(t, min(runtime.NumCPU(), 4), e.Workers(0))
}

func TestNewEvaluator_RejectsMalformed(t *testing.T) {
	for _, expression := range []string{"-a", "-ab&"} {
		e, err := NewEvaluator(2, expression)
		assert.IsError(t, err, ErrMalformedExpression)
		assert.Zero(t, e)
	}

	count := 0

	for _, err := range Rows(1, "-a") {
		assert.IsError(t, err, ErrMalformedExpression)

		count++
	}

	assert.Equal(t, 1, count)
}

func TestSummarizer_MatchesSummarize(t *testing.T) {
	e, err := NewEvaluator(3, "abc||")
	assert.NoError(t, err)

	s := NewSummarizer(3, "abc||")

	for row, err := range e.Rows() {
		assert.NoError(t, err)
		s.Add(row)
	}

	table, err := e.Table()
	assert.NoError(t, err)

	streamed := s.Summary()
	collected := Summarize(table)

	assert.Equal(t, collected.TableID, streamed.TableID)
	assert.Equal(t, collected.Rows, streamed.Rows)
	assert.Equal(t, collected.True, streamed.True)
	assert.True(t, collected.Ratio.Equal(streamed.Ratio))
	assert.Equal(t, collected.Class, streamed.Class)

	empty := NewSummarizer(1, "a").Summary()
	assert.Equal(t, Contradiction, empty.Class)
	assert.True(t, empty.Ratio.IsZero())
}
