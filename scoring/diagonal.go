// SPDX-License-Identifier: MIT

package scoring

import "fmt"

// FromDiagonal builds an N×N matrix with values[i] at (i, i) and mismatch
// everywhere else. Pass DefaultMismatch for the conventional 0.
//
//	m, _ := scoring.FromDiagonal([]float32{1, 2, 3, 4}, -1, "ATGC")
//
// Errors: ErrDiagonalLength (matches ErrParse) when len(values) != N.
func FromDiagonal[T Number](values []T, mismatch T, alphabet string) (*Matrix, error) {
	alpha := []rune(alphabet)
	n := len(alpha)
	if len(values) != n {
		return nil, fmt.Errorf("%w: %d values for %d symbols", ErrDiagonalLength, len(values), n)
	}

	data := make([]float32, n*n)
	off := float32(mismatch)
	for i := range data {
		data[i] = off
	}
	for i, v := range values {
		data[i*n+i] = float32(v)
	}

	return newMatrix(alpha, data), nil
}
