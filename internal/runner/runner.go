package runner

import (
	"context"
	"fmt"

	"github.com/garethgeorge/gominfree/internal/minfree"
	"github.com/garethgeorge/gominfree/internal/suite"
	"golang.org/x/sync/errgroup"
)

type options struct {
	parallelism int
}

type Option = func(*options)

// WithParallelism sets how many cases are evaluated concurrently. Each case
// is still searched sequentially; only the batch fans out. Defaults to 1.
func WithParallelism(n int) Option {
	return func(o *options) {
		o.parallelism = n
	}
}

// Result records the outcome of evaluating one case.
type Result struct {
	Label    string
	Expected uint64
	Actual   uint64
	OK       bool
}

// Run evaluates every case against the smallest-free-number search and
// returns one result per case, in case order. A mismatch between expected
// and actual is reported through Result.OK, never as an error.
func Run(ctx context.Context, cases []suite.Case, opts ...Option) ([]Result, error) {
	o := options{parallelism: 1}
	for _, opt := range opts {
		opt(&o)
	}
	if o.parallelism < 1 {
		return nil, fmt.Errorf("parallelism must be at least 1, got %d", o.parallelism)
	}

	results := make([]Result, len(cases))
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(o.parallelism)
	for i, c := range cases {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			actual := minfree.Find(c.Numbers)
			results[i] = Result{
				Label:    c.Label,
				Expected: c.Expected,
				Actual:   actual,
				OK:       actual == c.Expected,
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, fmt.Errorf("run cases: %w", err)
	}
	return results, nil
}

// Summarize counts passing and failing results.
func Summarize(results []Result) (passed, failed int) {
	for _, r := range results {
		if r.OK {
			passed++
		} else {
			failed++
		}
	}
	return passed, failed
}
