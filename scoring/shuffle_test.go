package scoring_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/scoremat/scoring"
)

func TestShuffle_Permutation(t *testing.T) {
	src := mustName(t, "BLOSUM62")
	dst, err := src.Shuffle("WCA")
	require.NoError(t, err)
	assert.Equal(t, "WCA", dst.Alphabet())
	assert.Equal(t, 3, dst.Len())

	for _, a := range "WCA" {
		for _, b := range "WCA" {
			want, err := src.Score(a, b)
			require.NoError(t, err)
			got, err := dst.Score(a, b)
			require.NoError(t, err)
			assert.Equal(t, want, got, "%c/%c", a, b)
		}
	}
	assert.True(t, dst.IsSymmetric())
}

func TestShuffle_LeavesSourceIntact(t *testing.T) {
	src := mustName(t, "BLOSUM62")
	_, err := src.Shuffle("CA")
	require.NoError(t, err)
	assert.True(t, src.Equal(mustName(t, "BLOSUM62")))
}

func TestShuffle_Duplicates(t *testing.T) {
	m := abc(t)
	dup, err := m.Shuffle("CC")
	require.NoError(t, err)
	r0, _ := dup.Row(scoring.Index(0))
	r1, _ := dup.Row(scoring.Index(1))
	assert.Equal(t, []float32{9, 9}, r0)
	assert.Equal(t, r0, r1)
}

func TestShuffle_UnknownSymbol(t *testing.T) {
	m := mustName(t, "BLOSUM62")
	out, err := m.Shuffle("ARNJOU")
	assert.Nil(t, out)
	require.ErrorIs(t, err, scoring.ErrNotFound)
	assert.Contains(t, err.Error(), "'J'")
}

func TestShuffle_Empty(t *testing.T) {
	m := mustName(t, "BLOSUM62")
	empty, err := m.Shuffle("")
	require.NoError(t, err)
	assert.Equal(t, 0, empty.Len())
	assert.True(t, empty.Empty())
}
