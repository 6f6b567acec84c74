package fit

import "errors"

var (
	// ErrEmptyInput indicates no samples were supplied.
	ErrEmptyInput = errors.New("fit: no samples")

	// ErrLengthMismatch indicates xs and ys differ in length.
	ErrLengthMismatch = errors.New("fit: xs and ys lengths differ")

	// ErrDiverged indicates the loss became NaN or ±Inf, usually because the
	// learning rate is too large for the data scale.
	ErrDiverged = errors.New("fit: loss is not finite")
)
