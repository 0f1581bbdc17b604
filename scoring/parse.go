// SPDX-License-Identifier: MIT

package scoring

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/scoremat/internal/textmat"
)

// FromString parses a textual scoring-matrix block.
//
// Implementation:
//   - Stage 1: drop blank lines and lines whose first token starts with '#'.
//   - Stage 2: the first remaining line is the alphabet, one symbol per token.
//   - Stage 3: each later line is a row. If its first token is not a number it
//     is a label and must equal the alphabet symbol at that row position;
//     the rest must be exactly N numbers.
//   - Stage 4: the row count goes through the same shape check as New, and
//     a repeated header symbol is rejected.
//
// Behavior highlights:
//   - Labeled and unlabeled rows may be mixed; both yield equal matrices.
//   - Text with no header line yields an empty matrix.
//
// Errors:
//   - ErrBadHeader, ErrBadToken, ErrRowLabel, ErrDuplicateSymbol (match ErrParse).
//   - ErrTokenCount (matches ErrParse and ErrShapeMismatch).
//   - ErrRowCount (matches ErrShapeMismatch).
//
// Complexity: O(size of text).
func FromString(text string) (*Matrix, error) {
	return FromReader(strings.NewReader(text))
}

// FromReader is FromString over an io.Reader.
func FromReader(r io.Reader) (*Matrix, error) {
	return readText(r, true)
}

// readText parses one block. UnmarshalText passes distinct=false so that
// MarshalText output of a shuffled matrix with repeated symbols reads back.
func readText(r io.Reader, distinct bool) (*Matrix, error) {
	tab, err := textmat.Read(r)
	if err != nil {
		return nil, parseError(err)
	}
	if err := checkShape(tab.Rows, len(tab.Alphabet)); err != nil {
		return nil, err
	}
	if distinct {
		if err := checkDistinct(tab.Alphabet); err != nil {
			return nil, err
		}
	}

	return newMatrix(tab.Alphabet, tab.Flat()), nil
}

// parseError maps a reader failure onto the package sentinels.
func parseError(err error) error {
	var se *textmat.SyntaxError
	if !errors.As(err, &se) {
		return fmt.Errorf("scoring: %w", err)
	}

	var kind error
	switch se.Kind {
	case textmat.KindHeader:
		kind = ErrBadHeader
	case textmat.KindToken:
		kind = ErrBadToken
	case textmat.KindLabel:
		kind = ErrRowLabel
	case textmat.KindCount:
		kind = ErrTokenCount
	default:
		kind = ErrParse
	}

	return fmt.Errorf("%w: %s", kind, se.Error())
}
