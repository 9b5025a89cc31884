package service

import (
	"context"
	"time"

	"fitness-tracker/internal/store"
	"fitness-tracker/internal/workout"
)

// JournalRecorder stores processed batches in the SQLite journal
type JournalRecorder struct {
	db *store.DB
}

// NewJournalRecorder creates a recorder backed by db
func NewJournalRecorder(db *store.DB) *JournalRecorder {
	return &JournalRecorder{db: db}
}

// RecordBatch writes the batch and one entry per result, in input order
func (j *JournalRecorder) RecordBatch(ctx context.Context, startedAt time.Time, results []Result) error {
	batch := &store.Batch{
		StartedAt:    startedAt,
		PackageCount: len(results),
		ErrorCount:   ErrorCount(results),
	}
	return j.db.SaveBatch(ctx, batch, toEntries(results))
}

func toEntries(results []Result) []store.Entry {
	entries := make([]store.Entry, len(results))
	for i, r := range results {
		e := store.Entry{
			Position: r.Index,
			Code:     r.Package.Code,
			Fields:   r.Package.Fields,
		}
		if r.Err != nil {
			e.Error = r.Err.Error()
			if kind, ok := workout.KindOf(r.Package.Code); ok {
				e.Kind = string(kind)
			}
		} else {
			e.Kind = r.Summary.TrainingType
			e.Duration = floatPtr(r.Summary.Duration)
			e.Distance = floatPtr(r.Summary.Distance)
			e.Speed = floatPtr(r.Summary.Speed)
			e.Calories = floatPtr(r.Summary.Calories)
			e.Message = r.Message
		}
		entries[i] = e
	}
	return entries
}

func floatPtr(f float64) *float64 {
	return &f
}
