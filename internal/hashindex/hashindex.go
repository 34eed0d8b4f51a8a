// Package hashindex implements the directory hash index: a single flat
// table over every directory in an indexed subtree, keyed by FNV-1a of the
// (name, path, size) triple.
//
// The bucket array is sized once at construction and never grows. As the
// entry count exceeds the bucket count, lookups degrade to linear scans
// within a bucket; LoadFactor is exposed as a diagnostic, not a resize
// trigger.
package hashindex

import (
	"strconv"

	"github.com/Aman-CERP/fsindex/internal/entry"
)

// FNV-1a 64-bit parameters.
const (
	offsetBasis uint64 = 14695981039346656037
	prime       uint64 = 1099511628211
)

// DefaultBuckets is used when the caller does not configure a bucket count.
const DefaultBuckets = 64

// Table is a fixed-size hash table of directory entries.
type Table struct {
	buckets [][]entry.Entry
	count   int
}

// New creates a table with the given number of buckets. Counts below 1 are
// clamped to DefaultBuckets.
func New(buckets int) *Table {
	if buckets < 1 {
		buckets = DefaultBuckets
	}
	return &Table{buckets: make([][]entry.Entry, buckets)}
}

// Sum64 computes the FNV-1a hash of an entry's identity. The input is the
// byte concatenation of name, path and the decimal rendering of size, so
// two snapshots of the same path with different observed sizes are distinct
// keys. Pure and deterministic.
func Sum64(e entry.Entry) uint64 {
	h := offsetBasis
	h = fold(h, e.Name)
	h = fold(h, e.Path)
	h = fold(h, strconv.FormatUint(e.Size, 10))
	return h
}

func fold(h uint64, s string) uint64 {
	for i := 0; i < len(s); i++ {
		h ^= uint64(s[i])
		h *= prime
	}
	return h
}

// Insert appends the entry to its bucket. There is no duplicate
// suppression; re-inserting an equal entry yields two copies.
func (t *Table) Insert(e entry.Entry) {
	slot := Sum64(e) % uint64(len(t.buckets))
	t.buckets[slot] = append(t.buckets[slot], e)
	t.count++
}

// LookupName returns every entry whose name matches. The table is keyed by
// the full (name, path, size) triple, so a name-only query cannot use the
// hash: this scans every bucket and is O(total entries).
func (t *Table) LookupName(name string) []entry.Entry {
	var out []entry.Entry
	for _, bucket := range t.buckets {
		for _, e := range bucket {
			if e.Name == name {
				out = append(out, e)
			}
		}
	}
	return out
}

// LookupPath returns the first entry with the given path. Like LookupName
// this is a full-table scan; path alone is not the hash key.
func (t *Table) LookupPath(path string) (entry.Entry, bool) {
	for _, bucket := range t.buckets {
		for _, e := range bucket {
			if e.Path == path {
				return e, true
			}
		}
	}
	return entry.Entry{}, false
}

// Len returns the number of entries in the table.
func (t *Table) Len() int {
	return t.count
}

// BucketCount returns the fixed number of buckets.
func (t *Table) BucketCount() int {
	return len(t.buckets)
}

// LoadFactor returns the fraction of non-empty buckets, in [0, 1].
func (t *Table) LoadFactor() float32 {
	occupied := 0
	for _, bucket := range t.buckets {
		if len(bucket) > 0 {
			occupied++
		}
	}
	return float32(occupied) / float32(len(t.buckets))
}

// Range visits every entry with its bucket index, in bucket order. The
// visit stops early if fn returns false.
func (t *Table) Range(fn func(bucket int, e entry.Entry) bool) {
	for i, bucket := range t.buckets {
		for _, e := range bucket {
			if !fn(i, e) {
				return
			}
		}
	}
}
