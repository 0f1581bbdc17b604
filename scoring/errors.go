// SPDX-License-Identifier: MIT
// Package scoring: sentinel error set.
// Every failure returned by this package matches exactly one of the four
// top-level kinds below via errors.Is (ErrTokenCount matches two, see its
// note). Detail sentinels are derived from the kinds so callers can match
// either the precise cause or the broad family.

package scoring

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Messages are prefixed with "scoring: ". Detection sites wrap with
// fmt.Errorf("%w: detail", ErrX) so the sentinel survives for errors.Is.

var (
	// ErrShapeMismatch is the family of row-count / row-length violations.
	ErrShapeMismatch = errors.New("scoring: shape mismatch")

	// ErrNotFound is the family of failed name or symbol lookups.
	ErrNotFound = errors.New("scoring: not found")

	// ErrOutOfRange indicates an integer key outside [-N, N).
	ErrOutOfRange = errors.New("scoring: index out of range")

	// ErrParse is the family of malformed textual or diagonal input.
	ErrParse = errors.New("scoring: parse error")

	// ErrNilMatrix indicates a method that reports errors was called on a nil *Matrix.
	ErrNilMatrix = errors.New("scoring: nil matrix")

	// ErrUnencodable indicates an alphabet the textual format cannot carry
	// (whitespace symbols, or '#' as the first symbol).
	ErrUnencodable = errors.New("scoring: alphabet not representable as text")

	// ErrAlreadyBuilt indicates a decode into a matrix that a constructor or an
	// earlier decode already populated. Only the zero Matrix accepts a decode.
	ErrAlreadyBuilt = errors.New("scoring: matrix already built")
)

var (
	// ErrRowCount: the number of rows differs from the alphabet length.
	ErrRowCount = derive("scoring: row count differs from alphabet length", ErrShapeMismatch)

	// ErrRowLength: some row's length differs from the alphabet length.
	ErrRowLength = derive("scoring: row length differs from alphabet length", ErrShapeMismatch)

	// ErrTokenCount: a textual data line has too few or too many values.
	// It is both a parse failure and a shape failure.
	ErrTokenCount = derive("scoring: wrong number of values on line", ErrParse, ErrShapeMismatch)

	// ErrBadToken: a value token is not a number.
	ErrBadToken = derive("scoring: malformed numeric token", ErrParse)

	// ErrRowLabel: a row label differs from the alphabet symbol at that row.
	ErrRowLabel = derive("scoring: row label does not match alphabet", ErrParse)

	// ErrBadHeader: a header token is not a single symbol.
	ErrBadHeader = derive("scoring: malformed alphabet header", ErrParse)

	// ErrDuplicateSymbol: New or FromString got an alphabet that repeats a symbol.
	ErrDuplicateSymbol = derive("scoring: duplicate alphabet symbol", ErrParse)

	// ErrDiagonalLength: FromDiagonal got len(values) != len(alphabet).
	ErrDiagonalLength = derive("scoring: diagonal length differs from alphabet length", ErrParse)

	// ErrUnknownMatrix: FromName found no registry entry.
	ErrUnknownMatrix = derive("scoring: unknown matrix name", ErrNotFound)

	// ErrUnknownSymbol: a symbol key is absent from the alphabet.
	ErrUnknownSymbol = derive("scoring: symbol not in alphabet", ErrNotFound)
)

// kindError is a sentinel that also matches one or more parent kinds.
type kindError struct {
	msg     string
	parents []error
}

func derive(msg string, parents ...error) error {
	return &kindError{msg: msg, parents: parents}
}

func (e *kindError) Error() string   { return e.msg }
func (e *kindError) Unwrap() []error { return e.parents }
