// SPDX-License-Identifier: MIT

package scoring

import "fmt"

// Shuffle returns a new matrix over alphabet whose cell (i, j) is this
// matrix's score for (alphabet[i], alphabet[j]). It reorders, subsets or
// repeats symbols; the receiver is unchanged.
//
// Implementation:
//   - Stage 1: resolve every symbol of alphabet; stop at the first unknown one.
//   - Stage 2: gather the M×M cells from the source rows.
//
// Behavior highlights:
//   - No output is produced unless every symbol resolves.
//   - An empty alphabet yields an empty matrix, not an error.
//   - Repeated symbols are allowed and repeat the matching row and column.
//
// Errors: ErrUnknownSymbol (matches ErrNotFound), ErrNilMatrix.
//
// Complexity: O(M) resolution + O(M²) copy, M = len(alphabet).
func (m *Matrix) Shuffle(alphabet string) (*Matrix, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	alpha := []rune(alphabet)
	src := make([]int, len(alpha))
	for i, s := range alpha {
		off, err := m.offset(Symbol(s))
		if err != nil {
			return nil, fmt.Errorf("Shuffle: %w", err)
		}
		src[i] = off
	}

	k := len(alpha)
	data := make([]float32, k*k)
	for i, si := range src {
		row := m.row(si)
		out := data[i*k : (i+1)*k]
		for j, sj := range src {
			out[j] = row[sj]
		}
	}

	return newMatrix(alpha, data), nil
}
