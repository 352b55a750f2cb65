package dataset

import "errors"

var (
	// ErrEmpty indicates a CSV source with no data rows.
	ErrEmpty = errors.New("dataset: no data rows")

	// ErrTooFewColumns indicates that fewer than two columns survive truncation.
	ErrTooFewColumns = errors.New("dataset: at least two columns are required")

	// ErrNonNumeric indicates a cell that is not a finite number.
	ErrNonNumeric = errors.New("dataset: non-numeric cell")

	// ErrLengthMismatch indicates labels that do not match the points, or ragged points.
	ErrLengthMismatch = errors.New("dataset: length mismatch")

	// ErrColumnOutOfRange indicates a projection column outside the point width.
	ErrColumnOutOfRange = errors.New("dataset: column out of range")

	// ErrParse indicates a malformed CSV stream or frame construction failure.
	ErrParse = errors.New("dataset: malformed input")
)
