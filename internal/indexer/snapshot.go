package indexer

import (
	"github.com/Aman-CERP/fsindex/internal/entry"
	"github.com/Aman-CERP/fsindex/internal/hashindex"
)

// Snapshot is the result of one indexing cycle: the session state a caller
// holds between the build and its queries. Nothing is shared across
// cycles; discard the whole snapshot and walk again for a fresh view.
//
// Queries never fail. An absent match yields a zero value or an empty
// slice, not an error.
type Snapshot struct {
	// Root is the absolute path the walk started from.
	Root string

	// Dirs holds one ordered index per visited directory, in pre-order
	// visitation order. Each is paired with its directory path.
	Dirs []DirIndex

	// Table is the flat hash index of every directory under Root.
	Table *hashindex.Table
}

// LookupPath returns the indexed file at the given path, if any. Each
// per-directory tree is keyed by path, so this is a logarithmic search
// within the tree of the owning directory and a linear scan across trees.
func (s *Snapshot) LookupPath(path string) (entry.Entry, bool) {
	for _, d := range s.Dirs {
		if e, ok := d.Tree.LookupPath(path); ok {
			return e, true
		}
	}
	return entry.Entry{}, false
}

// LookupName returns every indexed file with the given base name, in walk
// order across directories and ascending path order within one.
func (s *Snapshot) LookupName(name string) []entry.Entry {
	var out []entry.Entry
	for _, d := range s.Dirs {
		out = append(out, d.Tree.LookupName(name)...)
	}
	return out
}

// LookupDirName returns every indexed directory with the given base name.
func (s *Snapshot) LookupDirName(name string) []entry.Entry {
	return s.Table.LookupName(name)
}

// LookupDirPath returns the indexed directory at the given path, if any.
func (s *Snapshot) LookupDirPath(path string) (entry.Entry, bool) {
	return s.Table.LookupPath(path)
}

// Files returns the total number of indexed files.
func (s *Snapshot) Files() int {
	n := 0
	for _, d := range s.Dirs {
		n += d.Tree.Len()
	}
	return n
}

// LoadFactor returns the hash table's fraction of non-empty buckets.
func (s *Snapshot) LoadFactor() float32 {
	return s.Table.LoadFactor()
}
