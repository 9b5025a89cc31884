package store

import "time"

// Batch is one run of the calculator over a list of packages
type Batch struct {
	ID           string    `db:"id"`
	StartedAt    time.Time `db:"started_at"`
	PackageCount int       `db:"package_count"`
	ErrorCount   int       `db:"error_count"`
}

// Entry is the journaled outcome of a single sensor package
type Entry struct {
	ID        string    `db:"id"`
	BatchID   string    `db:"batch_id"`
	Position  int       `db:"position"` // index within the batch
	Code      string    `db:"code"`
	Kind      string    `db:"kind"`     // empty when the code was not recognized
	Fields    []float64 `db:"fields"`   // stored as JSON
	Duration  *float64  `db:"duration"` // hours, nullable
	Distance  *float64  `db:"distance"` // km, nullable
	Speed     *float64  `db:"speed"`    // km/h, nullable
	Calories  *float64  `db:"calories"` // nullable
	Message   string    `db:"message"`
	Error     string    `db:"error"`
	CreatedAt time.Time `db:"created_at"`
}

// Failed reports whether the package was rejected
func (e Entry) Failed() bool {
	return e.Error != ""
}

// KindStat aggregates successful entries of one workout kind
type KindStat struct {
	Kind          string  `db:"kind"`
	Count         int     `db:"count"`
	TotalDuration float64 `db:"total_duration"`
	TotalDistance float64 `db:"total_distance"`
	TotalCalories float64 `db:"total_calories"`
	AvgSpeed      float64 `db:"avg_speed"`
}
