// Package entry defines the value type describing one indexed filesystem
// object. Entries are immutable snapshots taken at index-build time; the
// engine never re-reads the filesystem to refresh them.
package entry

// Kind discriminates files from directories.
type Kind string

const (
	// KindFile represents a regular file (or anything that is not a directory).
	KindFile Kind = "file"
	// KindDirectory represents a directory.
	KindDirectory Kind = "directory"
)

// Entry is the metadata snapshot for one filesystem object.
// For directories, Size is the recursive byte total of the contents at
// build time; for files it is the file's own byte length.
type Entry struct {
	Name string // Base name, e.g. "main.go"
	Path string // Absolute path
	Size uint64 // Bytes
	Kind Kind
}

// IsDir reports whether the entry describes a directory.
func (e Entry) IsDir() bool {
	return e.Kind == KindDirectory
}
