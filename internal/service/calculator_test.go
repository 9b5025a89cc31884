package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fitness-tracker/internal/config"
	"fitness-tracker/internal/store"
	"fitness-tracker/internal/workout"
)

type fakeRecorder struct {
	mu        sync.Mutex
	startedAt time.Time
	results   []Result
	err       error
}

func (f *fakeRecorder) RecordBatch(_ context.Context, startedAt time.Time, results []Result) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.startedAt = startedAt
	f.results = results
	return f.err
}

func TestProcessSamplePackages(t *testing.T) {
	calc := NewCalculator(config.BatchConfig{Workers: 2}, nil)

	results, err := calc.Process(context.Background(), SamplePackages())
	require.NoError(t, err)
	require.Len(t, results, 3)

	want := []string{
		"Training type: Swimming; Duration: 1.000 h.; Distance: 0.994 km; Avg speed: 1.000 km/h; Calories spent: 336.000.",
		"Training type: Running; Duration: 1.000 h.; Distance: 9.750 km; Avg speed: 9.750 km/h; Calories spent: 699.750.",
		"Training type: SportsWalking; Duration: 1.000 h.; Distance: 5.850 km; Avg speed: 5.850 km/h; Calories spent: 157.500.",
	}
	for i, r := range results {
		require.NoError(t, r.Err)
		assert.Equal(t, i, r.Index)
		assert.Equal(t, want[i], r.Message)
	}
}

func TestProcessKeepsInputOrder(t *testing.T) {
	var packages []Package
	for i := 0; i < 200; i++ {
		packages = append(packages, Package{Code: "RUN", Fields: []float64{float64(1000 + i), 1, 75}})
	}

	calc := NewCalculator(config.BatchConfig{Workers: 8}, nil)
	results, err := calc.Process(context.Background(), packages)
	require.NoError(t, err)
	require.Len(t, results, len(packages))

	for i, r := range results {
		require.NoError(t, r.Err)
		assert.Equal(t, i, r.Index)
		assert.Equal(t, packages[i].Fields[0], r.Training.Action)
	}
}

func TestProcessErrorsStayLocal(t *testing.T) {
	packages := []Package{
		{Code: "SWM", Fields: []float64{720, 1, 80, 25, 40, 50}},
		{Code: "RUN", Fields: []float64{15000, 1, 75}},
		{Code: "BIKE", Fields: []float64{1, 2, 3}},
		{Code: "RUN", Fields: []float64{15000, 0, 75}},
	}

	calc := NewCalculator(config.BatchConfig{Workers: 4}, nil)
	results, err := calc.Process(context.Background(), packages)
	require.NoError(t, err)

	var countErr *workout.FieldCountError
	assert.True(t, errors.As(results[0].Err, &countErr))
	assert.Equal(t, 6, countErr.Got)
	assert.Equal(t, 5, countErr.Want)

	assert.NoError(t, results[1].Err)
	assert.NotEmpty(t, results[1].Message)

	var codeErr *workout.UnknownCodeError
	assert.True(t, errors.As(results[2].Err, &codeErr))

	assert.ErrorIs(t, results[3].Err, workout.ErrZeroDivisor)

	assert.Equal(t, 3, ErrorCount(results))
}

func TestProcessCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	calc := NewCalculator(config.BatchConfig{Workers: 1}, nil)
	results, err := calc.Process(ctx, SamplePackages())
	assert.ErrorIs(t, err, context.Canceled)
	assert.NotErrorIs(t, err, ErrRecording)
	assert.Nil(t, results)
}

func TestProcessRecordsBatch(t *testing.T) {
	rec := &fakeRecorder{}
	calc := NewCalculator(config.BatchConfig{Workers: 3}, rec)
	fixed := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)
	calc.now = func() time.Time { return fixed }

	results, err := calc.Process(context.Background(), SamplePackages())
	require.NoError(t, err)

	assert.Equal(t, fixed, rec.startedAt)
	assert.Equal(t, results, rec.results)
}

func TestProcessRecorderFailure(t *testing.T) {
	rec := &fakeRecorder{err: errors.New("disk full")}
	calc := NewCalculator(config.BatchConfig{Workers: 1}, rec)

	results, err := calc.Process(context.Background(), SamplePackages())
	require.ErrorIs(t, err, ErrRecording)
	assert.ErrorIs(t, err, rec.err)
	assert.Equal(t, "recording batch: disk full", err.Error())
	assert.Len(t, results, 3, "results are still returned")
}

func TestNewCalculatorClampsWorkers(t *testing.T) {
	calc := NewCalculator(config.BatchConfig{Workers: 0}, nil)
	assert.Equal(t, 1, calc.workers)
}

func TestJournalRecorder(t *testing.T) {
	sqlDB, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	db, err := store.NewTestDB(sqlDB)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	packages := append(SamplePackages(), Package{Code: "WLK", Fields: []float64{1, 2}})
	calc := NewCalculator(config.BatchConfig{Workers: 2}, NewJournalRecorder(db))

	results, err := calc.Process(context.Background(), packages)
	require.NoError(t, err)

	batches, err := db.ListBatches(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, batches, 1)
	assert.Equal(t, 4, batches[0].PackageCount)
	assert.Equal(t, 1, batches[0].ErrorCount)

	entries, err := db.ListBatchEntries(context.Background(), batches[0].ID)
	require.NoError(t, err)
	require.Len(t, entries, 4)

	for i, e := range entries {
		assert.Equal(t, i, e.Position)
		assert.Equal(t, packages[i].Code, e.Code)
		assert.Equal(t, results[i].Message, e.Message)
	}

	rejected := entries[3]
	assert.True(t, rejected.Failed())
	assert.Equal(t, "SportsWalking", rejected.Kind)
	assert.Nil(t, rejected.Calories)
	assert.Equal(t, []float64{1, 2}, rejected.Fields)

	require.NotNil(t, entries[1].Calories)
	assert.InDelta(t, 699.75, *entries[1].Calories, 1e-9)
}

func ExampleCalculate() {
	r := Calculate(0, Package{Code: "RUN", Fields: []float64{15000, 1, 75}})
	fmt.Println(r.Message)
	// Output: Training type: Running; Duration: 1.000 h.; Distance: 9.750 km; Avg speed: 9.750 km/h; Calories spent: 699.750.
}
