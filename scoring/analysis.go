// SPDX-License-Identifier: MIT

package scoring

import (
	"math"
	"slices"
)

// IsSymmetric reports whether (i, j) == (j, i) for every pair, under exact
// comparison. Only the upper triangle is scanned; the first asymmetry stops it.
// Complexity: O(N²).
func (m *Matrix) IsSymmetric() bool {
	n := m.Len()
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if m.data[i*n+j] != m.data[j*n+i] {
				return false
			}
		}
	}

	return true
}

// Equal reports whether o has the same alphabet, in order, and numerically
// equal cells. Two nil matrices are equal; nil never equals non-nil.
func (m *Matrix) Equal(o *Matrix) bool {
	if m == nil || o == nil {
		return m == o
	}

	return slices.Equal(m.alphabet, o.alphabet) && slices.Equal(m.data, o.data)
}

// Min returns the lowest score, or 0 for an empty matrix.
func (m *Matrix) Min() float32 {
	if m.Empty() {
		return 0
	}

	return slices.Min(m.data)
}

// Max returns the highest score, or 0 for an empty matrix.
func (m *Matrix) Max() float32 {
	if m.Empty() {
		return 0
	}

	return slices.Max(m.data)
}

// IsInteger reports whether every score is a finite whole number, as in the
// standard BLOSUM and PAM tables.
func (m *Matrix) IsInteger() bool {
	if m == nil {
		return true
	}
	for _, v := range m.data {
		f := float64(v)
		if math.IsInf(f, 0) || f != math.Trunc(f) {
			return false
		}
	}

	return true
}
