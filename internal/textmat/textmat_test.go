package textmat_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/scoremat/internal/textmat"
)

func TestRead_LabeledAndPositional(t *testing.T) {
	src := `
# comment
   A  B
A  1 -2
  -2  3
`
	tab, err := textmat.Read(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, []rune("AB"), tab.Alphabet)
	assert.Equal(t, [][]float32{{1, -2}, {-2, 3}}, tab.Rows)
	assert.Equal(t, []float32{1, -2, -2, 3}, tab.Flat())
}

func TestRead_Empty(t *testing.T) {
	tab, err := textmat.Read(strings.NewReader("# only a comment\n\n"))
	require.NoError(t, err)
	assert.Empty(t, tab.Alphabet)
	assert.Empty(t, tab.Rows)
}

func TestRead_SyntaxErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		kind textmat.Kind
		line int
	}{
		{"header", "A BC\n", textmat.KindHeader, 1},
		{"token", "A B\nA 1 x\n", textmat.KindToken, 2},
		{"label", "A B\nB 1 2\n", textmat.KindLabel, 2},
		{"too few", "A B\n\nA 1\n", textmat.KindCount, 3},
		{"too many", "A B\n1 2 3\n", textmat.KindCount, 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := textmat.Read(strings.NewReader(tc.src))
			var se *textmat.SyntaxError
			require.True(t, errors.As(err, &se), "want *SyntaxError, got %v", err)
			assert.Equal(t, tc.kind, se.Kind)
			assert.Equal(t, tc.line, se.Line)
		})
	}
}

func TestIsNumber(t *testing.T) {
	assert.True(t, textmat.IsNumber("-4"))
	assert.True(t, textmat.IsNumber("1.5e3"))
	assert.False(t, textmat.IsNumber("A"))
	assert.False(t, textmat.IsNumber("*"))
}
