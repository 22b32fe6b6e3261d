// Package store loads and holds the four normalized datasets. The load joins
// four concurrent fetch+normalize operations and always runs to completion;
// per-dataset failures are captured in the result instead of aborting the
// whole load, so one unreachable file withholds only the charts that need it.
package store

import (
	"context"
	"log"

	"golang.org/x/sync/errgroup"

	"RetailRadar/internal/dataset"
	"RetailRadar/internal/fetcher"
	"RetailRadar/internal/model"
)

// Result aggregates the outcome of one load: the four series plus per-dataset
// errors and dropped-row counts. Read-only after Load returns.
type Result struct {
	Sales    model.Series
	Loans    model.Series
	Percent  model.Series
	Founding []model.FoundingRecord
	Errors   map[string]error
	Skipped  map[string]int
}

// Complete reports whether every dataset loaded without error.
func (r *Result) Complete() bool { return len(r.Errors) == 0 }

// Store holds the result of a single load. It is populated once and
// read-only thereafter; a refresh builds a new Store.
type Store struct {
	result *Result
}

func New() *Store { return &Store{} }

// Ready reports whether a load has completed. It says nothing about
// per-dataset success; consult the Result for that.
func (s *Store) Ready() bool { return s.result != nil }

// Result returns the loaded aggregation, or nil before Load has run.
func (s *Store) Result() *Result { return s.result }

// Load fetches and normalizes all four datasets concurrently, commits the
// aggregation and returns it. The four operations are independent and commit
// their results in any order; Load returns only after all four complete.
func (s *Store) Load(ctx context.Context, f fetcher.Fetcher) *Result {
	res := &Result{
		Errors:  make(map[string]error),
		Skipped: make(map[string]int),
	}

	type outcome struct {
		name    string
		err     error
		skipped int
	}
	results := make(chan outcome, 4)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		text, err := f.Fetch(ctx, dataset.FileSales)
		if err == nil {
			var n int
			res.Sales, n = dataset.ParseSales(text)
			results <- outcome{dataset.Sales, nil, n}
		} else {
			results <- outcome{dataset.Sales, err, 0}
		}
		return nil
	})
	g.Go(func() error {
		text, err := f.Fetch(ctx, dataset.FileLoans)
		if err == nil {
			var n int
			res.Loans, n = dataset.ParseLoans(text)
			results <- outcome{dataset.Loans, nil, n}
		} else {
			results <- outcome{dataset.Loans, err, 0}
		}
		return nil
	})
	g.Go(func() error {
		text, err := f.Fetch(ctx, dataset.FilePercent)
		if err == nil {
			var n int
			res.Percent, n = dataset.ParsePercent(text)
			results <- outcome{dataset.Percent, nil, n}
		} else {
			results <- outcome{dataset.Percent, err, 0}
		}
		return nil
	})
	g.Go(func() error {
		text, err := f.Fetch(ctx, dataset.FileFounding)
		if err == nil {
			var n int
			res.Founding, n = dataset.ParseFounding(text)
			results <- outcome{dataset.Founding, nil, n}
		} else {
			results <- outcome{dataset.Founding, err, 0}
		}
		return nil
	})

	_ = g.Wait()
	close(results)

	for o := range results {
		if o.err != nil {
			log.Printf("[WARN] load %s: %v", o.name, o.err)
			res.Errors[o.name] = o.err
			continue
		}
		if o.skipped > 0 {
			log.Printf("[WARN] load %s: dropped %d malformed rows", o.name, o.skipped)
			res.Skipped[o.name] = o.skipped
		}
	}

	s.result = res
	return res
}
