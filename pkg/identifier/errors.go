package identifier

import "errors"

// Sentinel errors for identifier generation failure modes.
// Callers should use errors.Is() to check for these.
var (
	// ErrInvalidInput indicates the requested count is not a valid
	// row count (negative).
	ErrInvalidInput = errors.New("identifier: invalid row count")

	// ErrEmptyInput indicates zero rows were provided.
	ErrEmptyInput = errors.New("identifier: dataset is empty")

	// ErrCapacityExceeded indicates the row count exceeds the
	// letter+number scheme's capacity of 676 labels.
	ErrCapacityExceeded = errors.New("identifier: capacity exceeded")
)
