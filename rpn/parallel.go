package rpn

import (
	"context"
	"iter"
	"runtime"

	"github.com/ArmaanMadanmohan/RPN-Truth-Tables/stack"
	"golang.org/x/sync/errgroup"
)

const (
	// cancelCheckInterval is how many rows a worker evaluates between context checks.
	cancelCheckInterval = 4096
	// batchRowsPerWorker bounds how many rows RowsParallel holds per worker.
	batchRowsPerWorker = 1 << 14
)

// Workers returns the number of goroutines RowsParallel would use for the
// requested count: a non-positive request means runtime.NumCPU(), and there is
// never more than one worker per row.
func (e *Evaluator) Workers(requested int) int {
	workers := requested
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	if total := RowCount(e.numVariables); uint64(workers) > total {
		workers = int(total)
	}

	return workers
}

// RowsParallel yields the same sequence as Rows. Rows are evaluated in
// batches split across worker goroutines, each with its own stack, and
// yielded in ascending order once a batch completes, so memory stays bounded
// by the batch size rather than the table size.
func (e *Evaluator) RowsParallel(ctx context.Context, workers int) iter.Seq2[Row, error] {
	return func(yield func(Row, error) bool) {
		n := e.Workers(workers)
		total := RowCount(e.numVariables)
		batch := make([]Row, min(total, uint64(n)*batchRowsPerWorker))

		for start := uint64(0); start < total; start += uint64(len(batch)) {
			rows := batch[:min(uint64(len(batch)), total-start)]

			if err := e.evaluateBatch(ctx, start, rows, n); err != nil {
				yield(Row{}, err)
				return
			}

			for _, row := range rows {
				if !yield(row, nil) {
					return
				}
			}
		}
	}
}

// evaluateBatch fills rows with the assignments starting at first.
func (e *Evaluator) evaluateBatch(ctx context.Context, first uint64, rows []Row, workers int) error {
	size := uint64(len(rows))
	chunk := (size + uint64(workers) - 1) / uint64(workers)

	g, ctx := errgroup.WithContext(ctx)

	for start := uint64(0); start < size; start += chunk {
		end := min(start+chunk, size)

		g.Go(func() error {
			s := stack.New(stack.DefaultCapacity)

			for i := start; i < end; i++ {
				if (i-start)%cancelCheckInterval == 0 {
					if err := ctx.Err(); err != nil {
						return err
					}
				}

				row, err := e.Row(first+i, s)
				if err != nil {
					return err
				}

				rows[i] = row
			}

			return nil
		})
	}

	return g.Wait()
}

// TableParallel collects RowsParallel into a Table identical to Table().
func (e *Evaluator) TableParallel(ctx context.Context, workers int) (*Table, error) {
	table := e.Header()

	for row, err := range e.RowsParallel(ctx, workers) {
		if err != nil {
			return nil, err
		}

		table.Rows = append(table.Rows, row)
	}

	return table, nil
}

// EvaluateParallel is the parallel counterpart of Evaluate.
func EvaluateParallel(ctx context.Context, numVariables int, expression string, workers int) (*Table, error) {
	e, err := NewEvaluator(numVariables, expression)
	if err != nil {
		return nil, err
	}

	return e.TableParallel(ctx, workers)
}
