// Package registry is the embedded table of standard substitution matrices.
//
// The table is built from the plain-text matrix files under data/, compiled
// into the binary with go:embed and parsed once, on first use. Names are the
// file names without the ".txt" suffix, upper-cased: BLOSUM45, BLOSUM50,
// BLOSUM62, BLOSUM80, BLOSUM90, NUC.4.4, PAM30, PAM70 and PAM250. The table
// is never rewritten after loading, so lookups from any number of goroutines
// need no locking. Lookup and All hand out copies of the score values.
//
// Most callers want scoring.FromName rather than this package directly.
package registry
