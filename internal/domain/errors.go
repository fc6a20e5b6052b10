package domain

import "errors"

var (
	ErrColumnNotFound = errors.New("column not found")
	ErrLengthMismatch = errors.New("column length mismatch")
	ErrEmptyTable     = errors.New("table has no rows")
	ErrNonNumeric     = errors.New("column is not numeric")
	ErrMissingValue   = errors.New("cell is empty")
	ErrInvalidSplit   = errors.New("validation split must be in [0, 1)")
	ErrNaN            = errors.New("metric is NaN")
)
