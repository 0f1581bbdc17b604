package scoring_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/scoremat/scoring"
)

// ExampleFromName looks up a standard matrix and scores a substitution.
func ExampleFromName() {
	m, err := scoring.FromName("BLOSUM62")
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	s, _ := m.Score('W', 'W')
	fmt.Println(m.Len(), s)
	// Output:
	// 24 11
}

// ExampleFromString parses a small nucleotide matrix.
func ExampleFromString() {
	m, err := scoring.FromString(`
    A  C  G  T
A   2 -1 -1 -1
C  -1  2 -1 -1
G  -1 -1  2 -1
T  -1 -1 -1  2
`)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	s, _ := m.Score('G', 'T')
	fmt.Println(m.Alphabet(), s, m.IsSymmetric())
	// Output:
	// ACGT -1 true
}

// ExampleFromDiagonal builds a match/mismatch matrix.
func ExampleFromDiagonal() {
	m, _ := scoring.FromDiagonal([]int{1, 1, 1, 1}, -1, "ACGT")
	fmt.Print(m)
	// Output:
	//    A  C  G  T
	// A  1 -1 -1 -1
	// C -1  1 -1 -1
	// G -1 -1  1 -1
	// T -1 -1 -1  1
}

// ExampleMatrix_Shuffle restricts BLOSUM62 to three residues.
func ExampleMatrix_Shuffle() {
	m, _ := scoring.FromName("BLOSUM62")
	sub, _ := m.Shuffle("WYF")
	fmt.Print(sub)

	_, err := m.Shuffle("AJ")
	fmt.Println(errors.Is(err, scoring.ErrNotFound))
	// Output:
	//    W  Y  F
	// W 11  2  1
	// Y  2  7  3
	// F  1  3  6
	// true
}

// ExampleMatrix_Buffer hands the raw scores to a numeric routine.
func ExampleMatrix_Buffer() {
	m, _ := scoring.FromName("BLOSUM50")
	buf := m.Buffer()
	rows, cols := buf.Shape()
	var trace float32
	data := buf.Float32s()
	for i := 0; i < rows; i++ {
		trace += data[i*buf.Stride()+i]
	}
	fmt.Println(rows, cols, trace)
	// Output:
	// 24 24 160
}
