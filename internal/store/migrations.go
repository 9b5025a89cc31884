package store

import "database/sql"

// migrate runs all database migrations
func migrate(db *sql.DB) error {
	migrations := []string{
		// One row per processed batch of sensor packages
		`CREATE TABLE IF NOT EXISTS batches (
			id TEXT PRIMARY KEY,
			started_at TEXT NOT NULL,
			package_count INTEGER NOT NULL,
			error_count INTEGER NOT NULL DEFAULT 0
		)`,

		`CREATE INDEX IF NOT EXISTS idx_batches_started_at ON batches(started_at)`,

		// One row per package; metrics are NULL when the package was rejected
		`CREATE TABLE IF NOT EXISTS entries (
			id TEXT PRIMARY KEY,
			batch_id TEXT NOT NULL,
			position INTEGER NOT NULL,
			code TEXT NOT NULL,
			kind TEXT NOT NULL DEFAULT '',
			fields TEXT NOT NULL,
			duration REAL,
			distance REAL,
			speed REAL,
			calories REAL,
			message TEXT NOT NULL DEFAULT '',
			error TEXT NOT NULL DEFAULT '',
			created_at TEXT NOT NULL,
			UNIQUE (batch_id, position),
			FOREIGN KEY (batch_id) REFERENCES batches(id) ON DELETE CASCADE
		)`,

		`CREATE INDEX IF NOT EXISTS idx_entries_batch ON entries(batch_id)`,
		`CREATE INDEX IF NOT EXISTS idx_entries_kind ON entries(kind)`,
		`CREATE INDEX IF NOT EXISTS idx_entries_created_at ON entries(created_at)`,
	}

	for _, m := range migrations {
		if _, err := db.Exec(m); err != nil {
			return err
		}
	}

	return nil
}
