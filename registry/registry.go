// SPDX-License-Identifier: MIT

package registry

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"slices"
	"strings"
	"sync"

	"github.com/katalvlaran/scoremat/internal/textmat"
)

//go:embed data/*.txt
var dataFS embed.FS

const (
	dataDir = "data"
	dataExt = ".txt"
)

// ErrCorrupt marks an embedded resource that does not describe a square matrix.
var ErrCorrupt = errors.New("registry: corrupt matrix resource")

// Entry is one registry record. Values is the flat row-major Size×Size table.
// Every Entry handed out by Lookup or All owns its Values.
type Entry struct {
	Name     string
	Alphabet string
	Size     int
	Values   []float32
}

// Table is a loaded, name-sorted registry.
type Table struct {
	entries []Entry
	byName  map[string]int
}

var loadDefault = sync.OnceValues(func() (*Table, error) { return Load(dataFS) })

// Load parses every "*.txt" file under data/ in fsys into a Table.
// Exposed for tests and tools that ship their own matrix directory.
func Load(fsys fs.FS) (*Table, error) {
	files, err := fs.Glob(fsys, path.Join(dataDir, "*"+dataExt))
	if err != nil {
		return nil, fmt.Errorf("registry: list resources: %w", err)
	}

	t := &Table{byName: make(map[string]int, len(files))}
	for _, file := range files {
		e, err := loadEntry(fsys, file)
		if err != nil {
			return nil, err
		}
		if _, dup := t.byName[e.Name]; dup {
			return nil, fmt.Errorf("%w: duplicate name %s", ErrCorrupt, e.Name)
		}
		t.byName[e.Name] = -1
		t.entries = append(t.entries, e)
	}
	slices.SortFunc(t.entries, func(a, b Entry) int { return strings.Compare(a.Name, b.Name) })
	for i, e := range t.entries {
		t.byName[e.Name] = i
	}

	return t, nil
}

func loadEntry(fsys fs.FS, file string) (Entry, error) {
	f, err := fsys.Open(file)
	if err != nil {
		return Entry{}, fmt.Errorf("registry: open %s: %w", file, err)
	}
	defer f.Close()

	tab, err := textmat.Read(f)
	if err != nil {
		return Entry{}, fmt.Errorf("%w: %s: %v", ErrCorrupt, file, err)
	}
	n := len(tab.Alphabet)
	if len(tab.Rows) != n {
		return Entry{}, fmt.Errorf("%w: %s: %d rows for %d symbols", ErrCorrupt, file, len(tab.Rows), n)
	}

	return Entry{
		Name:     strings.ToUpper(strings.TrimSuffix(path.Base(file), dataExt)),
		Alphabet: string(tab.Alphabet),
		Size:     n,
		Values:   tab.Flat(),
	}, nil
}

// Lookup returns the entry for an exact, upper-case name.
func (t *Table) Lookup(name string) (Entry, bool) {
	i, ok := t.byName[name]
	if !ok {
		return Entry{}, false
	}

	return t.entries[i].clone(), true
}

func (e Entry) clone() Entry {
	e.Values = slices.Clone(e.Values)

	return e
}

// Names lists the table's names in sorted order.
func (t *Table) Names() []string {
	out := make([]string, len(t.entries))
	for i, e := range t.entries {
		out[i] = e.Name
	}

	return out
}

// Len is the number of entries.
func (t *Table) Len() int { return len(t.entries) }

// mustDefault returns the embedded table. The resources are part of the
// binary, so a parse failure is a build defect and panics.
func mustDefault() *Table {
	t, err := loadDefault()
	if err != nil {
		panic(err)
	}

	return t
}

// Lookup finds name in the embedded table. name must already be upper-case;
// scoring.FromName handles normalization.
func Lookup(name string) (Entry, bool) { return mustDefault().Lookup(name) }

// Names lists the embedded matrix names, sorted.
func Names() []string { return mustDefault().Names() }

// All returns a copy of the embedded entries, sorted by name.
func All() []Entry {
	entries := mustDefault().entries
	out := make([]Entry, len(entries))
	for i, e := range entries {
		out[i] = e.clone()
	}

	return out
}
