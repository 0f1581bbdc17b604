// SPDX-License-Identifier: MIT

package scoring

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/katalvlaran/scoremat/registry"
)

// FromName returns a standard matrix from the embedded registry.
// The lookup is case-insensitive: "blosum62" and "BLOSUM62" are the same.
//
// Errors: ErrUnknownMatrix (matches ErrNotFound).
func FromName(name string) (*Matrix, error) {
	// Casers carry state; one per call keeps FromName goroutine-safe.
	key := cases.Upper(language.Und).String(strings.TrimSpace(name))
	e, ok := registry.Lookup(key)
	if !ok {
		return nil, fmt.Errorf("%w: %q (see scoring.Names)", ErrUnknownMatrix, name)
	}

	return NewFlat(e.Values, e.Alphabet)
}

// Names lists the matrices FromName accepts, sorted.
func Names() []string { return registry.Names() }
