package solver

import "errors"

var (
	// ErrInvalidInput is returned when a request fails validation. The search
	// is not attempted.
	ErrInvalidInput = errors.New("invalid input")

	// ErrComputation is returned when the arithmetic degenerates (NaN or
	// infinite intermediates).
	ErrComputation = errors.New("computation failed")
)
