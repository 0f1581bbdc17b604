// SPDX-License-Identifier: MIT

// Package scoring - Matrix storage (row-major float32) & key resolution.
//
// Purpose:
//   - Hold an ordered alphabet and an N×N score table in one flat buffer (offset = i*N + j).
//   - Resolve Index and Symbol keys through a single routine (offset) so wraparound
//     and symbol lookup behave identically for every accessor.
//   - Guarantee atomic construction: a *Matrix is returned only when fully valid.
//
// Complexity quicksheet:
//   - New/NewFlat: O(N²); symbol index build O(N); key resolution O(1).

package scoring

import (
	"fmt"
	"slices"
)

// Matrix is an immutable substitution-score matrix over an alphabet.
//   - alphabet holds the symbols in row/column order.
//   - data is a flat row-major buffer of len(alphabet)² scores.
//   - index maps each symbol to its first position in alphabet.
//
// The zero value is a valid empty matrix.
type Matrix struct {
	alphabet []rune
	data     []float32
	index    map[rune]int
}

// newMatrix assembles a Matrix from already validated parts; it takes
// ownership of alpha and data.
func newMatrix(alpha []rune, data []float32) *Matrix {
	idx := make(map[rune]int, len(alpha))
	for i, r := range alpha {
		if _, seen := idx[r]; !seen {
			idx[r] = i // first occurrence wins
		}
	}

	return &Matrix{alphabet: alpha, data: data, index: idx}
}

// checkShape is the one square-shape rule shared by every constructor.
//
// Implementation:
//   - Stage 1: len(rows) must equal n, else ErrRowCount.
//   - Stage 2: every len(rows[i]) must equal n, else ErrRowLength naming row i.
//
// Complexity: O(N).
func checkShape[T any](rows [][]T, n int) error {
	if len(rows) != n {
		return fmt.Errorf("%w: %d rows for %d symbols", ErrRowCount, len(rows), n)
	}
	for i, row := range rows {
		if len(row) != n {
			return fmt.Errorf("%w: row %d has %d values, want %d", ErrRowLength, i, len(row), n)
		}
	}

	return nil
}

// checkDistinct rejects an alphabet that names a symbol twice.
func checkDistinct(alpha []rune) error {
	seen := make(map[rune]int, len(alpha))
	for i, r := range alpha {
		if j, dup := seen[r]; dup {
			return fmt.Errorf("%w: %q at %d and %d", ErrDuplicateSymbol, r, j, i)
		}
		seen[r] = i
	}

	return nil
}

// New builds a matrix from nested rows over alphabet (one symbol per rune).
//
// Implementation:
//   - Stage 1: validate the square shape against len(alphabet).
//   - Stage 2: reject a repeated symbol.
//   - Stage 3: copy rows into a flat float32 buffer.
//   - Stage 4: build the symbol index.
//
// Behavior highlights:
//   - Empty values with an empty alphabet yield a valid 0×0 matrix.
//   - Inputs are copied; later edits to values do not affect the result.
//
// Errors:
//   - ErrRowCount, ErrRowLength (both match ErrShapeMismatch).
//   - ErrDuplicateSymbol (matches ErrParse).
//
// Complexity:
//   - Time O(N²), Space O(N²).
func New[T Number](values [][]T, alphabet string) (*Matrix, error) {
	alpha := []rune(alphabet)
	n := len(alpha)
	if err := checkShape(values, n); err != nil {
		return nil, err
	}
	if err := checkDistinct(alpha); err != nil {
		return nil, err
	}

	data := make([]float32, n*n)
	for i, row := range values {
		for j, v := range row {
			data[i*n+j] = float32(v)
		}
	}

	return newMatrix(alpha, data), nil
}

// NewFlat builds a matrix from row-major values; len(values) must be N².
// values is copied. Unlike New it accepts a repeated symbol, so that any
// Shuffle result can be rebuilt from its Record.
func NewFlat(values []float32, alphabet string) (*Matrix, error) {
	alpha := []rune(alphabet)
	n := len(alpha)
	if len(values) != n*n {
		return nil, fmt.Errorf("%w: %d values for %d symbols, want %d", ErrShapeMismatch, len(values), n, n*n)
	}

	return newMatrix(alpha, slices.Clone(values)), nil
}

// Len returns N, the alphabet length. A nil matrix has length 0.
func (m *Matrix) Len() int {
	if m == nil {
		return 0
	}

	return len(m.alphabet)
}

// Empty reports whether the matrix has no symbols.
func (m *Matrix) Empty() bool { return m.Len() == 0 }

// Alphabet returns the symbols in row/column order.
func (m *Matrix) Alphabet() string {
	if m == nil {
		return ""
	}

	return string(m.alphabet)
}

// Symbols returns a copy of the alphabet as runes.
func (m *Matrix) Symbols() []rune {
	if m == nil {
		return nil
	}

	return slices.Clone(m.alphabet)
}

// IndexOf returns the position of symbol in the alphabet.
func (m *Matrix) IndexOf(symbol rune) (int, error) {
	return m.offset(Symbol(symbol))
}

// offset resolves k to a validated position in [0, N).
//
// Implementation:
//   - Index: add N to negative values, then bounds-check.
//   - Symbol: O(1) lookup in the index built at construction.
//
// Errors:
//   - ErrNilMatrix, ErrOutOfRange, ErrUnknownSymbol (matches ErrNotFound).
//
// Complexity: O(1).
func (m *Matrix) offset(k Key) (int, error) {
	if m == nil {
		return 0, ErrNilMatrix
	}
	n := len(m.alphabet)
	switch k := k.(type) {
	case Index:
		i := int(k)
		if i < 0 {
			i += n
		}
		if i < 0 || i >= n {
			return 0, fmt.Errorf("%w: %d for %d symbols", ErrOutOfRange, int(k), n)
		}

		return i, nil
	case Symbol:
		i, ok := m.index[rune(k)]
		if !ok {
			return 0, fmt.Errorf("%w: %q", ErrUnknownSymbol, rune(k))
		}

		return i, nil
	default:
		return 0, fmt.Errorf("%w: unsupported key %T", ErrOutOfRange, k)
	}
}
