// SPDX-License-Identifier: MIT

package scoring

import (
	"fmt"
	"iter"
	"slices"
)

// At returns the score at (row, col). Each key is an Index or a Symbol and
// is resolved independently, so mixed pairs are allowed.
//
//	v, err := m.At(scoring.Symbol('W'), scoring.Index(-1))
//
// Errors: ErrOutOfRange, ErrUnknownSymbol, ErrNilMatrix.
func (m *Matrix) At(row, col Key) (float32, error) {
	i, err := m.offset(row)
	if err != nil {
		return 0, fmt.Errorf("At: row: %w", err)
	}
	j, err := m.offset(col)
	if err != nil {
		return 0, fmt.Errorf("At: col: %w", err)
	}

	return m.data[i*len(m.alphabet)+j], nil
}

// AtIndex is At for two integer keys.
func (m *Matrix) AtIndex(i, j int) (float32, error) { return m.At(Index(i), Index(j)) }

// Score is At for two symbols, the usual call from an aligner.
func (m *Matrix) Score(a, b rune) (float32, error) { return m.At(Symbol(a), Symbol(b)) }

// Row returns a copy of the row selected by k.
func (m *Matrix) Row(k Key) ([]float32, error) {
	i, err := m.offset(k)
	if err != nil {
		return nil, fmt.Errorf("Row: %w", err)
	}

	return slices.Clone(m.row(i)), nil
}

// row is the shared (uncopied) slice of row i; i must be valid.
func (m *Matrix) row(i int) []float32 {
	n := len(m.alphabet)

	return m.data[i*n : (i+1)*n : (i+1)*n]
}

// Rows yields (position, row copy) for every row in alphabet order.
func (m *Matrix) Rows() iter.Seq2[int, []float32] {
	return func(yield func(int, []float32) bool) {
		for i := range m.Len() {
			if !yield(i, slices.Clone(m.row(i))) {
				return
			}
		}
	}
}

// Diagonal returns the N self-substitution scores.
func (m *Matrix) Diagonal() []float32 {
	n := m.Len()
	out := make([]float32, n)
	for i := range n {
		out[i] = m.data[i*n+i]
	}

	return out
}
