// Package scoremat is the root of a small library of substitution-score
// matrices for biological sequence alignment.
//
// 🚀 What is in here?
//
//	scoring/  — the Matrix value type: constructors (FromName, FromString,
//	            FromDiagonal, New), symbol/index access, Shuffle, symmetry,
//	            zero-copy Buffer export, JSON/CBOR/text encodings
//	registry/ — the embedded standard tables (BLOSUM45..90, PAM30/70/250, NUC.4.4)
//	cmd/      — the scoremat command-line tool
//
// ✨ Quick example:
//
//	m, err := scoring.FromName("BLOSUM62")
//	if err != nil {
//		return err
//	}
//	s, _ := m.Score('W', 'Y') // 2
//
// Matrices are immutable once built and safe to share between goroutines.
package scoremat
