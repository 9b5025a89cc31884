package workout

import (
	"errors"
	"fmt"
)

// ErrCaloriesNotImplemented is returned when a workout kind has no calorie
// formula. ReadPackage never builds such a kind.
var ErrCaloriesNotImplemented = errors.New("calorie formula not implemented")

// ErrZeroDivisor is matched by ZeroDivisorError
var ErrZeroDivisor = errors.New("reading used as divisor is zero")

// UnknownCodeError is returned when a package code is not in the dispatch table
type UnknownCodeError struct {
	Code string
}

func (e *UnknownCodeError) Error() string {
	return fmt.Sprintf("workout code %q is not recognized", e.Code)
}

// FieldCountError is returned when a package carries the wrong number of readings
type FieldCountError struct {
	Kind Kind
	Got  int
	Want int
}

func (e *FieldCountError) Error() string {
	return fmt.Sprintf("workout %s: got %d parameters, want %d", e.Kind, e.Got, e.Want)
}

// ZeroDivisorError is returned when a reading the formulas divide by is zero
type ZeroDivisorError struct {
	Kind  Kind
	Field Field
}

func (e *ZeroDivisorError) Error() string {
	return fmt.Sprintf("workout %s: %s must be nonzero", e.Kind, e.Field)
}

func (e *ZeroDivisorError) Is(target error) bool {
	return target == ErrZeroDivisor
}

// ErrInvalidReading is matched by InvalidReadingError
var ErrInvalidReading = errors.New("reading is not a usable number")

// InvalidReadingError is returned for NaN or infinite readings and for a
// negative duration
type InvalidReadingError struct {
	Kind  Kind
	Field Field
	Value float64
}

func (e *InvalidReadingError) Error() string {
	return fmt.Sprintf("workout %s: %s has invalid value %v", e.Kind, e.Field, e.Value)
}

func (e *InvalidReadingError) Is(target error) bool {
	return target == ErrInvalidReading
}
