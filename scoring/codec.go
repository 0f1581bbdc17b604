// SPDX-License-Identifier: MIT

package scoring

import (
	"bytes"
	"encoding"
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"
	"unicode"

	"github.com/fxamacker/cbor/v2"

	"github.com/katalvlaran/scoremat/internal/textmat"
)

// Compile-time assertions for the encoding interfaces.
var (
	_ encoding.BinaryMarshaler   = (*Matrix)(nil)
	_ encoding.BinaryUnmarshaler = (*Matrix)(nil)
	_ encoding.TextMarshaler     = (*Matrix)(nil)
	_ encoding.TextUnmarshaler   = (*Matrix)(nil)
	_ json.Marshaler             = (*Matrix)(nil)
	_ json.Unmarshaler           = (*Matrix)(nil)
	_ fmt.Stringer               = (*Matrix)(nil)
)

// Encode returns the (alphabet, flat values) form of m. Values is a copy.
func (m *Matrix) Encode() Record {
	if m == nil {
		return Record{}
	}

	return Record{Alphabet: string(m.alphabet), Values: slices.Clone(m.data)}
}

// Decode rebuilds a matrix from a Record. Decode(m.Encode()) equals m.
//
// Errors: ErrShapeMismatch when len(Values) != N².
func Decode(r Record) (*Matrix, error) {
	return NewFlat(r.Values, r.Alphabet)
}

// replace installs a decoded matrix into the receiver. The receiver must be
// the zero Matrix; a built matrix is immutable and is left as it was.
func (m *Matrix) replace(d *Matrix) error {
	if m == nil {
		return ErrNilMatrix
	}
	if m.index != nil {
		return ErrAlreadyBuilt
	}
	*m = *d

	return nil
}

// MarshalBinary encodes the Record as CBOR. float32 cells keep their width,
// so the round trip is exact.
func (m *Matrix) MarshalBinary() ([]byte, error) {
	b, err := cbor.Marshal(m.Encode())
	if err != nil {
		return nil, fmt.Errorf("scoring: cbor encode: %w", err)
	}

	return b, nil
}

// UnmarshalBinary decodes MarshalBinary output into m, which must be the
// zero Matrix (ErrAlreadyBuilt otherwise).
func (m *Matrix) UnmarshalBinary(data []byte) error {
	var r Record
	if err := cbor.Unmarshal(data, &r); err != nil {
		return fmt.Errorf("%w: cbor decode: %v", ErrParse, err)
	}
	d, err := Decode(r)
	if err != nil {
		return err
	}

	return m.replace(d)
}

// MarshalJSON encodes the Record as {"alphabet": ..., "values": [...]}.
func (m *Matrix) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.Encode())
}

// UnmarshalJSON decodes MarshalJSON output into m, which must be the zero
// Matrix (ErrAlreadyBuilt otherwise).
func (m *Matrix) UnmarshalJSON(data []byte) error {
	var r Record
	if err := json.Unmarshal(data, &r); err != nil {
		return fmt.Errorf("%w: json decode: %v", ErrParse, err)
	}
	d, err := Decode(r)
	if err != nil {
		return err
	}

	return m.replace(d)
}

// MarshalText writes the textual block format read by FromString, with row
// labels. Scores use the shortest form that parses back to the same float32.
//
// Errors: ErrUnencodable for whitespace symbols or a leading '#'. When a
// symbol would not read back as a label (a digit, or '#'), every row is
// written without one.
func (m *Matrix) MarshalText() ([]byte, error) {
	alpha := m.Symbols()
	for i, r := range alpha {
		if unicode.IsSpace(r) || (i == 0 && r == '#') {
			return nil, fmt.Errorf("%w: symbol %q at %d", ErrUnencodable, r, i)
		}
	}

	var buf bytes.Buffer
	if err := m.writeText(&buf, labeled(alpha)); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// UnmarshalText parses the textual block format into m, which must be the
// zero Matrix (ErrAlreadyBuilt otherwise). Unlike FromString it accepts a
// repeated symbol, as MarshalText writes one for shuffled matrices.
func (m *Matrix) UnmarshalText(text []byte) error {
	d, err := readText(bytes.NewReader(text), false)
	if err != nil {
		return err
	}

	return m.replace(d)
}

// String renders m in the textual block format. It makes the same row-label
// choice as MarshalText but skips its alphabet checks, so a whitespace or
// leading '#' symbol renders without error and does not read back.
func (m *Matrix) String() string {
	var sb strings.Builder
	_ = m.writeText(&sb, labeled(m.Symbols()))

	return sb.String()
}

// WriteTo writes the MarshalText form to w.
func (m *Matrix) WriteTo(w io.Writer) (int64, error) {
	b, err := m.MarshalText()
	if err != nil {
		return 0, err
	}
	n, err := w.Write(b)

	return int64(n), err
}

// labeled reports whether every symbol reads back as a row label, that is,
// none is '#' and none parses as a number.
func labeled(alpha []rune) bool {
	for _, r := range alpha {
		if r == '#' || textmat.IsNumber(string(r)) {
			return false
		}
	}

	return true
}

// writeText lays out the header and rows in right-aligned columns.
func (m *Matrix) writeText(w io.Writer, labels bool) error {
	n := m.Len()
	if n == 0 {
		return nil
	}
	cells := make([]string, n*n)
	width := 1
	for i, v := range m.data {
		cells[i] = strconv.FormatFloat(float64(v), 'g', -1, 32)
		width = max(width, len(cells[i]))
	}

	var sb strings.Builder
	if labels {
		sb.WriteString(" ")
	}
	for _, r := range m.alphabet {
		fmt.Fprintf(&sb, " %*s", width, string(r))
	}
	sb.WriteByte('\n')
	for i := range n {
		if labels {
			sb.WriteRune(m.alphabet[i])
		}
		for j := range n {
			fmt.Fprintf(&sb, " %*s", width, cells[i*n+j])
		}
		sb.WriteByte('\n')
	}
	_, err := io.WriteString(w, sb.String())

	return err
}
