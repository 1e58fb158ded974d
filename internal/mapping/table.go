// Package mapping builds the host/share to mount point table used for
// path conversion.
package mapping

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"

	"github.com/rjdinis/uncpath/internal/types"
)

type key struct {
	host  string
	share string
}

// Table is an ordered set of mappings keyed case-insensitively by host and share
type Table struct {
	mappings []types.Mapping
	index    map[key]int
}

// NewTable creates an empty table
func NewTable() *Table {
	return &Table{index: make(map[key]int)}
}

// fold returns the comparison form of a host or share name.
func fold(s string) string {
	return cases.Fold().String(norm.NFC.String(s))
}

func keyOf(host, share string) key {
	return key{host: fold(host), share: fold(share)}
}

// Add inserts m, replacing in place any entry with the same host and share.
// It reports whether an existing entry was replaced.
func (t *Table) Add(m types.Mapping) bool {
	k := keyOf(m.Host, m.Share)
	if i, ok := t.index[k]; ok {
		t.mappings[i] = m
		return true
	}
	t.index[k] = len(t.mappings)
	t.mappings = append(t.mappings, m)
	return false
}

// Lookup finds the mapping for host and share
func (t *Table) Lookup(host, share string) (types.Mapping, bool) {
	i, ok := t.index[keyOf(host, share)]
	if !ok {
		return types.Mapping{}, false
	}
	return t.mappings[i], true
}

// Mappings returns a copy of the table in order
func (t *Table) Mappings() []types.Mapping {
	out := make([]types.Mapping, len(t.mappings))
	copy(out, t.mappings)
	return out
}

// Len returns the number of mappings
func (t *Table) Len() int { return len(t.mappings) }
