package scoring_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/scoremat/scoring"
)

func TestFromDiagonal(t *testing.T) {
	m, err := scoring.FromDiagonal([]float64{1, 2, 3, 4}, 0.0, "ATGC")
	require.NoError(t, err)
	want := [][]float32{
		{1, 0, 0, 0},
		{0, 2, 0, 0},
		{0, 0, 3, 0},
		{0, 0, 0, 4},
	}
	for i, row := range want {
		got, err := m.Row(scoring.Index(i))
		require.NoError(t, err)
		assert.Equal(t, row, got, "row %d", i)
	}
}

func TestFromDiagonal_Mismatch(t *testing.T) {
	m, err := scoring.FromDiagonal([]float64{1, 2, 3, 4}, -1.0, "ATGC")
	require.NoError(t, err)
	r0, _ := m.Row(scoring.Index(0))
	r3, _ := m.Row(scoring.Index(3))
	assert.Equal(t, []float32{1, -1, -1, -1}, r0)
	assert.Equal(t, []float32{-1, -1, -1, 4}, r3)
	assert.True(t, m.IsSymmetric())
}

func TestFromDiagonal_DefaultMismatch(t *testing.T) {
	m, err := scoring.FromDiagonal([]int{5, 5}, scoring.DefaultMismatch, "AB")
	require.NoError(t, err)
	v, _ := m.Score('A', 'B')
	assert.Equal(t, float32(0), v)
}

func TestFromDiagonal_InvalidLength(t *testing.T) {
	for _, diag := range [][]int{{3, 3, 3, 3, 3, 3}, {3, 3, 3}} {
		_, err := scoring.FromDiagonal(diag, 0, "ATGC")
		assert.ErrorIs(t, err, scoring.ErrParse)
		assert.ErrorIs(t, err, scoring.ErrDiagonalLength)
	}
}
