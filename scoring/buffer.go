// SPDX-License-Identifier: MIT

package scoring

import (
	"fmt"
	"unsafe"
)

// ElemSize is the width in bytes of one Buffer element (float32).
const ElemSize = 4

// Buffer is a read-only, zero-copy view of a matrix's scores: shape (N, N),
// row-major, float32 elements. It shares storage with its Matrix and keeps
// that storage alive for as long as the view is reachable, so it can never
// outlive its data. Matrices are immutable, so the view never changes.
type Buffer struct {
	data []float32
	n    int
}

// Buffer returns the view over m's storage. No values are copied.
func (m *Matrix) Buffer() Buffer {
	if m == nil {
		return Buffer{}
	}

	return Buffer{data: m.data, n: len(m.alphabet)}
}

// Shape returns (N, N).
func (b Buffer) Shape() (rows, cols int) { return b.n, b.n }

// Stride is the element distance between the starts of consecutive rows.
func (b Buffer) Stride() int { return b.n }

// Len is the total element count, N².
func (b Buffer) Len() int { return len(b.data) }

// At returns element (i, j). Unlike Matrix.At it takes no negative indices.
func (b Buffer) At(i, j int) (float32, error) {
	if i < 0 || i >= b.n || j < 0 || j >= b.n {
		return 0, fmt.Errorf("Buffer.At(%d,%d): %w", i, j, ErrOutOfRange)
	}

	return b.data[i*b.n+j], nil
}

// Float32s exposes the backing slice for numeric routines.
// The slice is shared with the Matrix and must not be modified.
func (b Buffer) Float32s() []float32 { return b.data[:len(b.data):len(b.data)] }

// Bytes exposes the backing storage as raw bytes in host byte order,
// Len()*ElemSize long. Like Float32s it is shared and must not be modified.
func (b Buffer) Bytes() []byte {
	if len(b.data) == 0 {
		return nil
	}

	return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(b.data))), len(b.data)*ElemSize)
}
