package scoring_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/scoremat/scoring"
)

func abc(t *testing.T) *scoring.Matrix {
	t.Helper()

	return mustNew(t, [][]float32{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}, "ABC")
}

func TestAt_KeyForms(t *testing.T) {
	m := abc(t)
	cases := []struct {
		name     string
		row, col scoring.Key
		want     float32
	}{
		{"index pair", scoring.Index(1), scoring.Index(2), 6},
		{"symbol pair", scoring.Symbol('C'), scoring.Symbol('A'), 7},
		{"mixed", scoring.Symbol('B'), scoring.Index(0), 4},
		{"negative", scoring.Index(-1), scoring.Index(-3), 7},
		{"negative mixed", scoring.Index(-2), scoring.Symbol('C'), 6},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			v, err := m.At(tc.row, tc.col)
			require.NoError(t, err)
			assert.Equal(t, tc.want, v)
		})
	}
}

func TestAt_Errors(t *testing.T) {
	m := abc(t)
	_, err := m.AtIndex(3, 0)
	assert.ErrorIs(t, err, scoring.ErrOutOfRange)
	_, err = m.AtIndex(0, -4)
	assert.ErrorIs(t, err, scoring.ErrOutOfRange)

	_, err = m.Score('A', 'Z')
	require.ErrorIs(t, err, scoring.ErrNotFound)
	assert.ErrorIs(t, err, scoring.ErrUnknownSymbol)
	assert.Contains(t, err.Error(), "'Z'")

	_, err = m.At(nil, scoring.Index(0))
	assert.ErrorIs(t, err, scoring.ErrOutOfRange)
}

func TestRow(t *testing.T) {
	m := abc(t)
	row, err := m.Row(scoring.Symbol('B'))
	require.NoError(t, err)
	assert.Equal(t, []float32{4, 5, 6}, row)

	row[0] = 100 // copies never leak into the matrix
	again, err := m.Row(scoring.Index(1))
	require.NoError(t, err)
	assert.Equal(t, []float32{4, 5, 6}, again)

	last, err := m.Row(scoring.Index(-1))
	require.NoError(t, err)
	assert.Equal(t, []float32{7, 8, 9}, last)

	_, err = m.Row(scoring.Symbol('?'))
	assert.ErrorIs(t, err, scoring.ErrNotFound)
}

func TestRows_Blosum50(t *testing.T) {
	m := mustName(t, "BLOSUM50")
	count := 0
	for i, row := range m.Rows() {
		assert.Equal(t, count, i)
		assert.Len(t, row, 24)
		count++
	}
	assert.Equal(t, 24, count)
	assert.Equal(t, 24, len(m.Alphabet()))
}

func TestRows_EarlyStop(t *testing.T) {
	m := abc(t)
	seen := 0
	for range m.Rows() {
		seen++
		break
	}
	assert.Equal(t, 1, seen)
}

func TestDiagonal(t *testing.T) {
	assert.Equal(t, []float32{1, 5, 9}, abc(t).Diagonal())
	var empty scoring.Matrix
	assert.Empty(t, empty.Diagonal())
}
