// Package workout derives distance, mean speed and spent calories from raw
// sensor packages and renders them as a one-line summary.
//
// A package is a short code plus a positional list of readings:
//
//	RUN  action, duration, weight
//	WLK  action, duration, weight, height
//	SWM  action, duration, weight, pool_length, lap_count
//
// ReadPackage validates the code and arity against the dispatch table and
// returns a Training; Training.Summary computes the metrics and
// Summary.Message renders them. Everything here is pure: no I/O and no
// shared mutable state.
package workout
