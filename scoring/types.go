// SPDX-License-Identifier: MIT

package scoring

import "golang.org/x/exp/constraints"

// Number is any Go integer or floating point kind accepted by the
// constructors. Values are stored as float32.
type Number interface {
	constraints.Integer | constraints.Float
}

// DefaultMismatch is the conventional off-diagonal score for FromDiagonal.
const DefaultMismatch = 0

// Key selects a row or column: either an Index or a Symbol.
// The interface is sealed; both forms are resolved by one routine.
type Key interface {
	isKey()
}

// Index is a positional key. Negative values count from the end (-1 = last).
type Index int

// Symbol is an alphabet key.
type Symbol rune

func (Index) isKey()  {}
func (Symbol) isKey() {}

// Record is the serialized form of a Matrix: its alphabet and its
// row-major values. Decode(m.Encode()) reproduces m exactly.
type Record struct {
	Alphabet string    `json:"alphabet" cbor:"1,keyasint"`
	Values   []float32 `json:"values" cbor:"2,keyasint"`
}
