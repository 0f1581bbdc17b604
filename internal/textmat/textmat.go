// SPDX-License-Identifier: MIT

// Package textmat reads the plain-text scoring-matrix block shared by the
// scoring parser and the embedded registry loader.
//
// Format:
//
//	# comment lines start with '#'
//	   A  T  G  C          <- header: one single-character symbol per token
//	A  5 -4 -4 -4          <- optional row label, then exactly N numbers
//	T -4  5 -4 -4
//
// A data line is labeled iff its first token does not parse as a number.
// The reader checks tokens and labels only; the row count is left to the
// caller, which owns the square-shape rule.
package textmat

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Kind classifies a SyntaxError.
type Kind int

const (
	// KindHeader: a header token is not exactly one character.
	KindHeader Kind = iota + 1
	// KindToken: a value token is not a number.
	KindToken
	// KindLabel: a row label differs from the alphabet symbol at that row.
	KindLabel
	// KindCount: a data line carries too few or too many values.
	KindCount
)

// SyntaxError reports a malformed line. Line is 1-based in the source text.
type SyntaxError struct {
	Line  int
	Kind  Kind
	Token string
	Want  int // expected value count (KindCount) or label symbol index (KindLabel)
	Got   int // observed value count (KindCount)
}

func (e *SyntaxError) Error() string {
	switch e.Kind {
	case KindHeader:
		return fmt.Sprintf("line %d: header token %q is not a single symbol", e.Line, e.Token)
	case KindToken:
		return fmt.Sprintf("line %d: %q is not a number", e.Line, e.Token)
	case KindLabel:
		return fmt.Sprintf("line %d: row label %q does not match alphabet position %d", e.Line, e.Token, e.Want)
	case KindCount:
		return fmt.Sprintf("line %d: expected %d values, found %d", e.Line, e.Want, e.Got)
	default:
		return fmt.Sprintf("line %d: malformed", e.Line)
	}
}

// Table is a parsed block. Rows holds one slice per data line in order of
// appearance; every row has len(Alphabet) values.
type Table struct {
	Alphabet []rune
	Rows     [][]float32
}

// Flat returns Rows concatenated in row-major order.
func (t *Table) Flat() []float32 {
	n := 0
	for _, r := range t.Rows {
		n += len(r)
	}
	out := make([]float32, 0, n)
	for _, r := range t.Rows {
		out = append(out, r...)
	}

	return out
}

// IsNumber reports whether tok parses as a floating point number.
// It drives the labeled-vs-positional decision for data lines.
func IsNumber(tok string) bool {
	_, err := strconv.ParseFloat(tok, 64)

	return err == nil
}

// Read parses a block from r. Input with no header line yields an empty
// Table (zero symbols, zero rows).
func Read(r io.Reader) (*Table, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), 1<<20)

	t := &Table{}
	header := false
	lineNo := 0
	for sc.Scan() {
		lineNo++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}
		if !header {
			header = true
			alpha, err := readHeader(lineNo, fields)
			if err != nil {
				return nil, err
			}
			t.Alphabet = alpha
			continue
		}
		row, err := readRow(lineNo, len(t.Rows), t.Alphabet, fields)
		if err != nil {
			return nil, err
		}
		t.Rows = append(t.Rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("textmat: read: %w", err)
	}

	return t, nil
}

func readHeader(lineNo int, fields []string) ([]rune, error) {
	alpha := make([]rune, len(fields))
	for i, tok := range fields {
		if utf8.RuneCountInString(tok) != 1 {
			return nil, &SyntaxError{Line: lineNo, Kind: KindHeader, Token: tok}
		}
		alpha[i], _ = utf8.DecodeRuneInString(tok)
	}

	return alpha, nil
}

// readRow parses the data line at position idx. A label on a line past the
// end of the alphabet is not checked; the caller reports the surplus row.
func readRow(lineNo, idx int, alpha []rune, fields []string) ([]float32, error) {
	if !IsNumber(fields[0]) {
		if idx < len(alpha) && fields[0] != string(alpha[idx]) {
			return nil, &SyntaxError{Line: lineNo, Kind: KindLabel, Token: fields[0], Want: idx}
		}
		fields = fields[1:]
	}
	if len(fields) != len(alpha) {
		return nil, &SyntaxError{Line: lineNo, Kind: KindCount, Want: len(alpha), Got: len(fields)}
	}

	row := make([]float32, len(fields))
	for j, tok := range fields {
		v, err := strconv.ParseFloat(tok, 32)
		if err != nil {
			return nil, &SyntaxError{Line: lineNo, Kind: KindToken, Token: tok}
		}
		row[j] = float32(v)
	}

	return row, nil
}
