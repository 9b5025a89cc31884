// Package service runs sensor packages through the workout calculator and
// hands the results to the journal.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"fitness-tracker/internal/config"
	"fitness-tracker/internal/workout"
)

// Package is one sensor package: a workout code and its positional readings
type Package struct {
	Code   string
	Fields []float64
}

// Result is the outcome of one package. Err is set when the package was
// rejected or its summary could not be derived; the other fields are then
// zero except Index and Package.
type Result struct {
	Index    int
	Package  Package
	Training workout.Training
	Summary  workout.Summary
	Message  string
	Err      error
}

// ErrRecording wraps a Recorder failure. Process still returns the computed
// results alongside it.
var ErrRecording = errors.New("recording batch")

// Recorder persists a processed batch
type Recorder interface {
	RecordBatch(ctx context.Context, startedAt time.Time, results []Result) error
}

// Calculator processes batches of sensor packages
type Calculator struct {
	workers  int
	recorder Recorder
	now      func() time.Time
}

// NewCalculator creates a calculator. recorder may be nil.
func NewCalculator(cfg config.BatchConfig, recorder Recorder) *Calculator {
	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}
	return &Calculator{
		workers:  workers,
		recorder: recorder,
		now:      time.Now,
	}
}

// Process computes every package independently, with at most the configured
// number in flight, and returns the results in input order. A rejected
// package only affects its own Result. The returned error is reserved for
// cancellation and journal failures.
func (c *Calculator) Process(ctx context.Context, packages []Package) ([]Result, error) {
	startedAt := c.now()
	results := make([]Result, len(packages))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.workers)
	for i, p := range packages {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = Calculate(i, p)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("processing packages: %w", err)
	}

	if c.recorder != nil {
		if err := c.recorder.RecordBatch(ctx, startedAt, results); err != nil {
			return results, fmt.Errorf("%w: %w", ErrRecording, err)
		}
	}

	return results, nil
}

// Calculate runs a single package through reader, variant and formatter
func Calculate(index int, p Package) Result {
	result := Result{Index: index, Package: p}

	training, err := workout.ReadPackage(p.Code, p.Fields)
	if err != nil {
		result.Err = err
		return result
	}

	summary, err := training.Summary()
	if err != nil {
		result.Err = fmt.Errorf("summarizing %s: %w", training.Kind, err)
		return result
	}

	result.Training = training
	result.Summary = summary
	result.Message = summary.Message()
	return result
}

// ErrorCount returns how many results carry an error
func ErrorCount(results []Result) int {
	n := 0
	for _, r := range results {
		if r.Err != nil {
			n++
		}
	}
	return n
}
