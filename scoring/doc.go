// Package scoring provides typed, alphabet-indexed substitution-score
// matrices (BLOSUM, PAM, NUC) for sequence-alignment code.
//
// 🚀 Getting a matrix
//
//	m, err := scoring.FromName("BLOSUM62")            // embedded standard table
//	m, err := scoring.FromString(text)                  // textual block
//	m, err := scoring.FromDiagonal(diag, -1, "ATGC")    // match/mismatch synthesis
//	m, err := scoring.New([][]int{{1, 0}, {0, 1}}, "AB") // nested rows
//
// Reading it
//
//	s, _ := m.Score('W', 'Y')                         // symbol pair
//	s, _ := m.At(scoring.Index(-1), scoring.Symbol('A')) // mixed keys, -1 = last
//	row, _ := m.Row(scoring.Symbol('A'))
//	for i, row := range m.Rows() { ... }
//
// Deriving and exporting
//
//	sub, _ := m.Shuffle("ACGT")       // reorder / subset the alphabet
//	buf := m.Buffer()                 // zero-copy (N, N) float32 view
//	rec := m.Encode()                 // (alphabet, flat values); Decode(rec) == m
//
// A *Matrix never changes after construction, so it may be shared between
// goroutines freely. Constructors either return a complete matrix or an
// error matching one of ErrShapeMismatch, ErrNotFound, ErrOutOfRange or
// ErrParse.
package scoring
