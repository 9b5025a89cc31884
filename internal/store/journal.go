package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// SaveBatch stores a batch and its entries in one transaction. Empty IDs are
// filled with new UUIDs; entries inherit the batch ID and start time.
func (db *DB) SaveBatch(ctx context.Context, batch *Batch, entries []Entry) error {
	if batch.ID == "" {
		batch.ID = uuid.NewString()
	}
	if batch.StartedAt.IsZero() {
		batch.StartedAt = time.Now()
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO batches (id, started_at, package_count, error_count)
		VALUES (?, ?, ?, ?)
	`, batch.ID, formatTime(batch.StartedAt), batch.PackageCount, batch.ErrorCount)
	if err != nil {
		return fmt.Errorf("inserting batch: %w", err)
	}

	for i := range entries {
		e := &entries[i]
		e.BatchID = batch.ID
		if e.CreatedAt.IsZero() {
			e.CreatedAt = batch.StartedAt
		}
		if err := insertEntry(ctx, tx, e); err != nil {
			return fmt.Errorf("inserting entry %d: %w", e.Position, err)
		}
	}

	return tx.Commit()
}

func insertEntry(ctx context.Context, tx *sql.Tx, e *Entry) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}

	fields, err := json.Marshal(e.Fields)
	if err != nil {
		return fmt.Errorf("encoding fields: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO entries (id, batch_id, position, code, kind, fields,
			duration, distance, speed, calories, message, error, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, e.ID, e.BatchID, e.Position, e.Code, e.Kind, string(fields),
		e.Duration, e.Distance, e.Speed, e.Calories, e.Message, e.Error,
		formatTime(e.CreatedAt))
	return err
}

const entryColumns = `id, batch_id, position, code, kind, fields,
	duration, distance, speed, calories, message, error, created_at`

// GetEntry retrieves a single entry by ID
func (db *DB) GetEntry(ctx context.Context, id string) (*Entry, error) {
	row := db.QueryRowContext(ctx, `SELECT `+entryColumns+` FROM entries WHERE id = ?`, id)
	e, err := scanEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrEntryNotFound
	}
	if err != nil {
		return nil, err
	}
	return e, nil
}

// ListEntries returns up to limit entries, newest batch first and in
// package order within a batch.
func (db *DB) ListEntries(ctx context.Context, limit int) ([]Entry, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT `+entryColumns+`
		FROM entries
		ORDER BY created_at DESC, position ASC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, *e)
	}
	return entries, rows.Err()
}

// ListBatchEntries returns the entries of one batch in package order
func (db *DB) ListBatchEntries(ctx context.Context, batchID string) ([]Entry, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT `+entryColumns+`
		FROM entries
		WHERE batch_id = ?
		ORDER BY position ASC
	`, batchID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, *e)
	}
	return entries, rows.Err()
}

// ListBatches returns up to limit batches, newest first
func (db *DB) ListBatches(ctx context.Context, limit int) ([]Batch, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT id, started_at, package_count, error_count
		FROM batches
		ORDER BY started_at DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var batches []Batch
	for rows.Next() {
		var b Batch
		var startedAt string
		if err := rows.Scan(&b.ID, &startedAt, &b.PackageCount, &b.ErrorCount); err != nil {
			return nil, err
		}
		if b.StartedAt, err = parseTime(startedAt); err != nil {
			return nil, fmt.Errorf("parsing started_at %q: %w", startedAt, err)
		}
		batches = append(batches, b)
	}
	return batches, rows.Err()
}

// KindStats aggregates successful entries per workout kind, ordered by kind
func (db *DB) KindStats(ctx context.Context) ([]KindStat, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT kind, COUNT(*), SUM(duration), SUM(distance), SUM(calories), AVG(speed)
		FROM entries
		WHERE error = ''
		GROUP BY kind
		ORDER BY kind
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stats []KindStat
	for rows.Next() {
		var s KindStat
		if err := rows.Scan(&s.Kind, &s.Count, &s.TotalDuration, &s.TotalDistance, &s.TotalCalories, &s.AvgSpeed); err != nil {
			return nil, err
		}
		stats = append(stats, s)
	}
	return stats, rows.Err()
}

// CaloriesHistory returns the calories of the last limit successful entries
// of a kind, oldest first. An empty kind matches every kind.
func (db *DB) CaloriesHistory(ctx context.Context, kind string, limit int) ([]float64, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT calories
		FROM entries
		WHERE error = '' AND (? = '' OR kind = ?)
		ORDER BY created_at DESC, position DESC
		LIMIT ?
	`, kind, kind, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var history []float64
	for rows.Next() {
		var c float64
		if err := rows.Scan(&c); err != nil {
			return nil, err
		}
		history = append(history, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// Reverse to oldest first
	for i, j := 0, len(history)-1; i < j; i, j = i+1, j-1 {
		history[i], history[j] = history[j], history[i]
	}
	return history, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEntry(s scanner) (*Entry, error) {
	var e Entry
	var fields, createdAt string

	err := s.Scan(
		&e.ID, &e.BatchID, &e.Position, &e.Code, &e.Kind, &fields,
		&e.Duration, &e.Distance, &e.Speed, &e.Calories, &e.Message, &e.Error,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(fields), &e.Fields); err != nil {
		return nil, fmt.Errorf("decoding fields %q: %w", fields, err)
	}
	if e.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, fmt.Errorf("parsing created_at %q: %w", createdAt, err)
	}
	return &e, nil
}

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func parseTime(s string) (time.Time, error) {
	return time.Parse(timeLayout, s)
}
