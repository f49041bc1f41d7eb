// Package identifier assigns short positional labels to report rows.
//
// Labels are one uppercase letter followed by a number from 1 to 26:
// "A1" through "A26", then "B1", and so on up to "Z26". The scheme is
// purely positional — labels depend only on a row's index, so the same
// row count always yields the same sequence.
package identifier

import (
	"fmt"
	"strconv"
)

const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Capacity is the maximum number of labels the scheme can produce
// (26 letters x 26 numbers).
const Capacity = len(alphabet) * len(alphabet)

// Generate returns n unique labels, one per row index in order.
// Index 0 maps to "A1", index 26 to "B1", index 675 to "Z26".
func Generate(n int) ([]string, error) {
	switch {
	case n < 0:
		return nil, fmt.Errorf("%w: %d", ErrInvalidInput, n)
	case n == 0:
		return nil, ErrEmptyInput
	case n > Capacity:
		return nil, fmt.Errorf("%w: %d rows, max %d", ErrCapacityExceeded, n, Capacity)
	}

	ids := make([]string, n)
	for i := 0; i < n; i++ {
		ids[i] = string(alphabet[i/len(alphabet)]) + strconv.Itoa(i%len(alphabet)+1)
	}
	return ids, nil
}
