package timesheet

import "errors"

// Timesheet domain errors
var (
	// ErrDataUnavailable wraps punch-storage failures. Surfaced per unit of
	// work; sibling computations in a batch keep their own results.
	ErrDataUnavailable = errors.New("punch data unavailable")

	// ErrInvalidRange rejects out-of-calendar days or months outside 1-12
	// before any computation starts.
	ErrInvalidRange = errors.New("invalid day or month range")
)
